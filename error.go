package mustacheusage

import "fmt"

var _ error = &parseError{}

// parseError reports a template syntax problem along with the position
// of the tag that caused it.
type parseError struct {
	message string
	line    int
	col     int
}

func newParseErrorf(line, col int, message string, args ...interface{}) *parseError {
	return &parseError{
		message: fmt.Sprintf(message, args...),
		line:    line,
		col:     col,
	}
}

func (e *parseError) Error() string {
	return fmt.Sprintf("line %d, col %d: %s", e.line, e.col, e.message)
}

// Line returns the 1-based line of the offending tag.
func (e *parseError) Line() int {
	return e.line
}

// Col returns the 1-based column of the offending tag.
func (e *parseError) Col() int {
	return e.col
}
