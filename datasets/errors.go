package datasets

import "fmt"

// DatasetFormatError reports malformed dataset input, such as a label with no values
type DatasetFormatError struct {
	// Line is the 1-based input line, zero when the error is not tied to a file
	Line   int
	Label  string
	Reason string
}

func (e *DatasetFormatError) Error() string {
	switch {
	case e.Line > 0 && e.Label != "":
		return fmt.Sprintf("dataset format error at line %d (label %q): %s", e.Line, e.Label, e.Reason)
	case e.Line > 0:
		return fmt.Sprintf("dataset format error at line %d: %s", e.Line, e.Reason)
	case e.Label != "":
		return fmt.Sprintf("dataset format error (label %q): %s", e.Label, e.Reason)
	}
	return "dataset format error: " + e.Reason
}
