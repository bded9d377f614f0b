// Package splice inserts or replaces a managed block of lines between two
// marker lines while keeping the rest of a document intact.
//
// The block starts after the first line beginning with Options.ReplaceBelow
// and ends before the first line beginning with Options.ReplaceAbove. A marker
// that is unset or not found leaves that side unbounded: nothing before the
// content is kept when ReplaceBelow is missing, and nothing after it when
// ReplaceAbove is missing.
package splice

import (
	"context"
	"strings"

	"github.com/yaklabco/linesplice/internal/logging"
	"github.com/yaklabco/linesplice/pkg/lines"
)

// Options controls where content is spliced and how the result is tidied.
type Options struct {
	// ReplaceBelow marks the last line kept before the inserted content.
	ReplaceBelow string `yaml:"replace_below,omitempty"`

	// ReplaceAbove marks the first line kept after the inserted content.
	ReplaceAbove string `yaml:"replace_above,omitempty"`

	// RemoveDoubleBlankLines collapses runs of blank lines in the result.
	RemoveDoubleBlankLines bool `yaml:"remove_double_blank_lines,omitempty"`
}

// AddText splices a single text value into document.
func AddText(document, text string, opts Options) (string, error) {
	return AddContentContext(context.Background(), document, []string{text}, opts)
}

// AddContent splices content into document according to opts.
// Each content item may itself span several lines.
// The result uses the line ending detected in document.
func AddContent(document string, content []string, opts Options) (string, error) {
	return AddContentContext(context.Background(), document, content, opts)
}

// AddContentContext is AddContent with debug logging sent to the logger
// carried by ctx.
func AddContentContext(ctx context.Context, document string, content []string, opts Options) (string, error) {
	logger := logging.FromContext(ctx)

	ending := lines.DetectEnding(document)
	docLines := lines.Split(document)

	belowIdx := FindMarker(docLines, opts.ReplaceBelow)
	aboveIdx := FindMarker(docLines, opts.ReplaceAbove)

	logger.Debug("markers located",
		logging.FieldReplaceBelow, opts.ReplaceBelow,
		logging.FieldBelowIndex, belowIdx,
		logging.FieldReplaceAbove, opts.ReplaceAbove,
		logging.FieldAboveIndex, aboveIdx,
		logging.FieldDocumentLines, len(docLines),
		logging.FieldLineEnding, ending,
	)

	if belowIdx >= 0 && aboveIdx >= 0 && aboveIdx < belowIdx {
		return "", &MarkerOrderError{
			ReplaceBelow: opts.ReplaceBelow,
			ReplaceAbove: opts.ReplaceAbove,
			BelowLine:    belowIdx + 1,
			AboveLine:    aboveIdx + 1,
		}
	}

	contentLines := flatten(content)

	// belowIdx of -1 keeps nothing before the content.
	before := docLines[:belowIdx+1]
	var after []string
	if aboveIdx >= 0 {
		after = docLines[aboveIdx:]
	}

	if belowIdx < 0 {
		logger.Debug("replace-below marker not found, content starts the document")
	}
	if aboveIdx < 0 {
		logger.Debug("replace-above marker not found, content ends the document")
	}

	result := make([]string, 0, len(before)+len(contentLines)+len(after))
	result = append(result, before...)
	result = append(result, contentLines...)
	result = append(result, after...)

	if opts.RemoveDoubleBlankLines {
		collapsed := CollapseBlankLines(result)
		logger.Debug("collapsed blank lines", logging.FieldRemovedLines, len(result)-len(collapsed))
		result = collapsed
	}

	logger.Debug("content spliced",
		logging.FieldContentLines, len(contentLines),
		logging.FieldOutputLines, len(result),
	)

	return lines.Join(result, ending), nil
}

// FindMarker returns the index of the first line starting with marker,
// or -1 if marker is empty or no line matches.
func FindMarker(docLines []string, marker string) int {
	if marker == "" {
		return -1
	}
	for idx, line := range docLines {
		if strings.HasPrefix(line, marker) {
			return idx
		}
	}
	return -1
}

// CollapseBlankLines drops every blank line that directly follows another
// blank line. The first line is always kept. The input is not modified.
func CollapseBlankLines(docLines []string) []string {
	out := make([]string, 0, len(docLines))
	prevBlank := false
	for idx, line := range docLines {
		blank := lines.IsBlank(line)
		if idx == 0 || !blank || !prevBlank {
			out = append(out, line)
		}
		prevBlank = blank
	}
	return out
}

func flatten(content []string) []string {
	var out []string
	for _, item := range content {
		out = append(out, lines.Split(item)...)
	}
	return out
}
