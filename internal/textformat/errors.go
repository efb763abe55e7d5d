package textformat

import "fmt"

// FormatError reports a malformed graph text line, with the 1-based line
// number it occurred on.
type FormatError struct {
	Line    int
	Message string
}

func (e FormatError) Error() string {
	return fmt.Sprintf("format error (line %d): %v", e.Line, e.Message)
}
