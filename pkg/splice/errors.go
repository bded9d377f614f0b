package splice

import (
	"errors"
	"fmt"
)

// ErrMarkerOrder is matched by every *MarkerOrderError via errors.Is.
var ErrMarkerOrder = errors.New("replace-above marker precedes replace-below marker")

// MarkerOrderError reports a replace-above marker found on an earlier line
// than the replace-below marker.
type MarkerOrderError struct {
	ReplaceBelow string
	ReplaceAbove string

	// BelowLine and AboveLine are 1-based line numbers of the matches.
	BelowLine int
	AboveLine int
}

func (e *MarkerOrderError) Error() string {
	return fmt.Sprintf(
		"replaceAbove marker %q (line %d) was found before replaceBelow marker %q (line %d); "+
			"the replaceBelow marker must come first",
		e.ReplaceAbove, e.AboveLine, e.ReplaceBelow, e.BelowLine)
}

func (e *MarkerOrderError) Unwrap() error {
	return ErrMarkerOrder
}
