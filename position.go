package meriyah

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const maxContext = 60

// IsLineTerminator returns true for the ECMAScript line terminators \n, \r, U+2028 and U+2029.
func IsLineTerminator(r rune) bool {
	return r == '\n' || r == '\r' || r == '\u2028' || r == '\u2029'
}

// Position returns the line and column number for a byte offset in src. It is useful for recovering the position in a file that caused an error.
// Lines are 1-based and broken by \n, \r, \r\n, U+2028 and U+2029. Columns are 1-based and count UTF-16 code units, as ECMAScript engines do.
// An offset outside of src is clamped to its end.
func Position(src string, offset int) (line, col int, context string) {
	if offset < 0 || len(src) < offset {
		offset = len(src)
	}

	line = 1
	lineStart := 0
	for i := 0; i < offset; {
		r, n := utf8.DecodeRuneInString(src[i:])
		if r == '\r' && i+1 < len(src) && src[i+1] == '\n' {
			if i+1 == offset {
				break // offset points at \n of \r\n
			}
			n = 2
		}
		i += n
		if IsLineTerminator(r) {
			line++
			lineStart = i
		}
	}

	col = 1
	for _, r := range src[lineStart:offset] {
		col++
		if 0xFFFF < r {
			col++
		}
	}
	context = positionContext(src[lineStart:], line, offset-lineStart)
	return
}

func positionContext(src string, line, offset int) string {
	end := len(src)
	for i, r := range src {
		if IsLineTerminator(r) {
			end = i
			break
		}
	}
	b := src[:end]
	if len(b) < offset {
		offset = len(b)
	}

	// cut long lines to a window around the offset
	ellipsisStart, ellipsisEnd := "", ""
	if maxContext < utf8.RuneCountInString(b) {
		left := utf8.RuneCountInString(b[:offset])
		right := utf8.RuneCountInString(b[offset:])
		runes := []rune(b)
		from, to := 0, len(runes)
		if maxContext/2 < left && maxContext/2 < right {
			from, to = left-maxContext/2+3, left+maxContext/2-3
			ellipsisStart, ellipsisEnd = "...", "..."
		} else if left <= maxContext/2 {
			to = maxContext - 3
			ellipsisEnd = "..."
		} else {
			from = len(runes) - maxContext + 3
			ellipsisStart = "..."
		}
		offset = left - from + len(ellipsisStart)
		b = ellipsisStart + string(runes[from:to]) + ellipsisEnd
	} else {
		offset = utf8.RuneCountInString(b[:offset])
	}

	context := fmt.Sprintf("%5d: %s\n", line, b)
	context += fmt.Sprintf("%s^", strings.Repeat(" ", offset+7))
	return context
}
