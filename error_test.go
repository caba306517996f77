package meriyah

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestError(t *testing.T) {
	err := NewError("message", "buffer", 3)

	line, column, context := err.Position()
	test.T(t, line, 1, "line")
	test.T(t, column, 4, "column")
	test.T(t, err.Offset, 3, "offset")
	test.T(t, "\n"+context, "\n    1: buffer\n          ^", "context")

	test.T(t, err.Error(), "message on line 1 and column 4\n    1: buffer\n          ^", "error")
}

func TestErrorSecondLine(t *testing.T) {
	err := NewError("Unterminated string literal", "a;\n'abc", 6)
	test.T(t, err.Line, 2, "line")
	test.T(t, err.Column, 4, "column")
	test.T(t, err.Context, "    2: 'abc\n          ^", "context")
}
