package js

import (
	"unicode"

	"github.com/smasher164/xid"

	"github.com/GuyLewin/meriyah"
)

type charFlags uint8

const (
	charIdentifierStart charFlags = 1 << iota
	charIdentifierPart
	charDecimal
	charOctal
	charHex
	charSpace
	charLineTerminator
)

const (
	zwnj = '\u200c'
	zwj  = '\u200d'
	bom  = '\ufeff'
)

var asciiChars [128]charFlags

func init() {
	for c := 0; c < 128; c++ {
		var f charFlags
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', c == '$', c == '_':
			f |= charIdentifierStart | charIdentifierPart
		case '0' <= c && c <= '9':
			f |= charIdentifierPart | charDecimal
		case c == ' ', c == '\t', c == '\v', c == '\f':
			f |= charSpace
		case c == '\n', c == '\r':
			f |= charLineTerminator
		}
		if '0' <= c && c <= '7' {
			f |= charOctal
		}
		if '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F' {
			f |= charHex
		}
		asciiChars[c] = f
	}
}

func isIdentifierStart(r rune) bool {
	if r < 0 {
		return false
	} else if r < 128 {
		return asciiChars[r]&charIdentifierStart != 0
	}
	return xid.Start(r)
}

func isIdentifierPart(r rune) bool {
	if r < 0 {
		return false
	} else if r < 128 {
		return asciiChars[r]&charIdentifierPart != 0
	}
	return xid.Continue(r) || r == zwnj || r == zwj
}

func isDecimal(r rune) bool {
	return '0' <= r && r <= '9'
}

func isOctal(r rune) bool {
	return '0' <= r && r <= '7'
}

func isHex(r rune) bool {
	return 0 <= r && r < 128 && asciiChars[r]&charHex != 0
}

// isWhiteSpace excludes the line terminators.
func isWhiteSpace(r rune) bool {
	if r < 0 {
		return false
	} else if r < 128 {
		return asciiChars[r]&charSpace != 0
	}
	return r == '\u00a0' || r == bom || unicode.Is(unicode.Zs, r)
}

func isLineTerminator(r rune) bool {
	return meriyah.IsLineTerminator(r)
}

func hexValue(r rune) int {
	switch {
	case '0' <= r && r <= '9':
		return int(r - '0')
	case 'a' <= r && r <= 'f':
		return int(r-'a') + 10
	case 'A' <= r && r <= 'F':
		return int(r-'A') + 10
	}
	return -1
}
