// Package meriyah holds the diagnostics shared by the ECMAScript scanner and parser in the js subpackage.
package meriyah

import (
	"fmt"
)

// Error is a syntax error returned by the parser. It contains a message and the position at which the error occurred.
type Error struct {
	Message string
	Offset  int
	Line    int
	Column  int
	Context string
}

// NewError creates a new error for the byte offset in src.
func NewError(msg string, src string, offset int) *Error {
	line, column, context := Position(src, offset)
	return &Error{
		Message: msg,
		Offset:  offset,
		Line:    line,
		Column:  column,
		Context: context,
	}
}

// Position returns the line, column, and context of the error.
// Context is the entire line at which the error occurred.
func (e *Error) Position() (int, int, string) {
	return e.Line, e.Column, e.Context
}

// Error returns the error string, containing the context and line + column number.
func (e *Error) Error() string {
	return fmt.Sprintf("%s on line %d and column %d\n%s", e.Message, e.Line, e.Column, e.Context)
}
