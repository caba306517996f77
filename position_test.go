package meriyah

import (
	"fmt"
	"strings"
	"testing"

	"github.com/tdewolff/test"
)

func TestPosition(t *testing.T) {
	var newlineTests = []struct {
		offset int
		buf    string
		line   int
		col    int
	}{
		{0, "x", 1, 1},
		{1, "xx", 1, 2},
		{2, "x\nx", 2, 1},
		{2, "\n\nx", 3, 1},
		{3, "\nxxx", 2, 3},
		{2, "\r\nx", 2, 1},
		{1, "\rx", 2, 1},
		{4, "a\u2028b", 2, 1},
		{4, "a\u2029b", 2, 1},
		{4, "\U0001F600x", 1, 3},
		{4, "ééx", 1, 3},

		// edge cases
		{0, "", 1, 1},
		{0, "\n", 1, 1},
		{1, "\r\n", 1, 2},
		{-1, "x", 1, 2}, // continue till the end
		{10, "ab", 1, 3},
	}
	for _, tt := range newlineTests {
		t.Run(fmt.Sprint(tt.buf, " ", tt.offset), func(t *testing.T) {
			line, col, _ := Position(tt.buf, tt.offset)
			test.T(t, line, tt.line, "line")
			test.T(t, col, tt.col, "column")
		})
	}
}

func TestPositionContext(t *testing.T) {
	var newlineTests = []struct {
		offset  int
		buf     string
		context string
	}{
		{1, "ab\ncd", "ab"},
		{4, "ab\ncd", "cd"},
		{10, strings.Repeat("0123456789", 8), "012345678901234567890123456789012345678901234567890123456..."}, // 80 characters -> 60 characters
		{40, strings.Repeat("0123456789", 8), "...345678901234567890123456789012345678901234567890123456..."},
		{70, strings.Repeat("0123456789", 8), "...345678901234567890123456789012345678901234567890123456789"},
	}
	for _, tt := range newlineTests {
		t.Run(fmt.Sprint(tt.buf, " ", tt.offset), func(t *testing.T) {
			_, _, context := Position(tt.buf, tt.offset)
			i := strings.IndexByte(context, '\n')
			context = context[7:i]
			test.T(t, context, tt.context)
		})
	}
}

func TestPositionCaret(t *testing.T) {
	_, _, context := Position(strings.Repeat("0123456789", 8), 40)
	lines := strings.Split(context, "\n")
	test.T(t, len(lines), 2)
	test.T(t, lines[0][strings.IndexByte(lines[1], '^')], byte('0'), "caret under offset")
}
