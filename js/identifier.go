package js

import (
	"strings"
)

// scanIdentifier scans an identifier or keyword at its first character, which is an identifier start or a
// backslash. ASCII identifiers without escapes are sliced from the source directly.
func (p *Parser) scanIdentifier(ctx Context) Token {
	start := p.index
	c := p.nextCodePoint
	for 0 <= c && c < 128 && asciiChars[c]&charIdentifierPart != 0 {
		c = p.advance()
	}
	if c != '\\' && c < 128 {
		name := p.source[start:p.index]
		p.tokenValue = TokenValue{Str: name}
		return lookupKeyword(name)
	}
	return p.scanIdentifierSlow(start)
}

// scanIdentifierSlow continues an identifier with non-ASCII characters or unicode escapes, building its decoded
// name. A keyword spelled with escapes still yields the keyword token but sets FlagEscaped.
func (p *Parser) scanIdentifierSlow(start int) Token {
	var sb strings.Builder
	sb.WriteString(p.source[start:p.index])
	escaped := false
	for {
		c := p.nextCodePoint
		if c == '\\' {
			escaped = true
			if p.advance() != 'u' {
				p.report(ErrInvalidUnicodeEscapeSequence)
				return Error
			}
			p.advance()
			code, kind := p.scanUnicodeEscapeValue()
			switch kind {
			case escapeOutOfRange:
				p.report(ErrUnicodeOverflow)
				return Error
			case escapeInvalidHex:
				p.report(ErrInvalidHexEscapeSequence)
				return Error
			case escapeMissingBrace:
				p.report(ErrMissingClosingBrace)
				return Error
			}
			if sb.Len() == 0 && !isIdentifierStart(code) || !isIdentifierPart(code) {
				p.report(ErrInvalidEscapeIdentifier)
				return Error
			}
			sb.WriteRune(code)
			continue
		} else if !isIdentifierPart(c) {
			break
		}
		sb.WriteRune(c)
		p.advance()
	}

	name := sb.String()
	p.tokenValue = TokenValue{Str: name}
	tok := lookupKeyword(name)
	if escaped {
		p.flags |= FlagEscaped
	}
	return tok
}
