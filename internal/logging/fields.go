package logging

// Field name constants for structured logging.
const (
	FieldError = "error"

	// Marker fields.
	FieldReplaceBelow = "replace_below"
	FieldReplaceAbove = "replace_above"
	FieldBelowIndex   = "below_index"
	FieldAboveIndex   = "above_index"

	// Document fields.
	FieldLineEnding    = "line_ending"
	FieldDocumentLines = "document_lines"
	FieldContentLines  = "content_lines"
	FieldOutputLines   = "output_lines"
	FieldRemovedLines  = "removed_lines"
)
