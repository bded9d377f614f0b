package splice_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/yaklabco/linesplice/pkg/lines"
	"github.com/yaklabco/linesplice/pkg/splice"
)

func FuzzAddContent(f *testing.F) {
	// Add seed corpus.
	f.Add("", "", "", "", false)
	f.Add("A\nSTART\nB\nEND\nC", "X", "START", "END", false)
	f.Add("A\nEND\nB\nSTART\nC", "X", "START", "END", false)
	f.Add("A\r\nSTART\r\n\r\n\r\nEND\r\n", "\n\nX\n\n", "START", "END", true)
	f.Add("one\rtwo\nthree", " \t\n\n", "two", "", true)
	f.Add("MARK\nMARK", "", "MARK", "MARK", true)

	f.Fuzz(func(t *testing.T, document, content, below, above string, collapse bool) {
		opts := splice.Options{
			ReplaceBelow:           below,
			ReplaceAbove:           above,
			RemoveDoubleBlankLines: collapse,
		}

		got, err := splice.AddText(document, content, opts)
		if err != nil {
			if !errors.Is(err, splice.ErrMarkerOrder) {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != "" {
				t.Errorf("got %q alongside error", got)
			}
			return
		}

		// Output is joined with the document's ending only.
		if lines.DetectEnding(document) == lines.CRLF {
			if strings.ContainsAny(strings.ReplaceAll(got, "\r\n", ""), "\r\n") {
				t.Errorf("output %q mixes line endings", got)
			}
		} else if strings.Contains(got, "\r") {
			t.Errorf("output %q contains CR for an LF document", got)
		}

		if collapse {
			outLines := lines.Split(got)
			for idx := 1; idx < len(outLines); idx++ {
				if lines.IsBlank(outLines[idx]) && lines.IsBlank(outLines[idx-1]) {
					t.Fatalf("lines %d and %d are both blank in %q", idx-1, idx, got)
				}
			}

			opts.RemoveDoubleBlankLines = false
			plain, err := splice.AddText(document, content, opts)
			if err != nil {
				t.Fatalf("uncollapsed call failed: %v", err)
			}
			if len(lines.Split(plain)) < len(outLines) {
				t.Errorf("collapsing grew output from %d to %d lines", len(lines.Split(plain)), len(outLines))
			}
		}
	})
}
