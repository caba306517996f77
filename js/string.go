package js

import (
	"strings"
	"unicode/utf16"
)

type escapeKind uint8

const (
	escapeOK           escapeKind = iota
	escapeEmpty                   // line continuation
	escapeOctal                   // legacy octal escape where it is not allowed
	escapeEightOrNine             // \8 or \9
	escapeInvalidHex              // malformed \x or \u
	escapeOutOfRange              // \u{...} above U+10FFFF
	escapeMissingBrace            // \u{... without its closing brace
)

// reportEscape reports the diagnostic for a failed escape sequence.
func (p *Parser) reportEscape(kind escapeKind, template bool) {
	switch kind {
	case escapeOctal:
		if template {
			p.report(ErrTemplateOctalLiteral)
		} else {
			p.report(ErrStrictOctalEscape)
		}
	case escapeEightOrNine:
		p.report(ErrInvalidEightAndNine)
	case escapeInvalidHex:
		p.report(ErrInvalidHexEscapeSequence)
	case escapeOutOfRange:
		p.report(ErrUnicodeOverflow)
	case escapeMissingBrace:
		p.report(ErrMissingClosingBrace)
	}
}

// scanEscape decodes the escape sequence whose backslash has been consumed.
func (p *Parser) scanEscape(ctx Context, template bool) (rune, escapeKind) {
	c := p.nextCodePoint
	switch c {
	case 'b':
		p.advance()
		return '\b', escapeOK
	case 'f':
		p.advance()
		return '\f', escapeOK
	case 'n':
		p.advance()
		return '\n', escapeOK
	case 'r':
		p.advance()
		return '\r', escapeOK
	case 't':
		p.advance()
		return '\t', escapeOK
	case 'v':
		p.advance()
		return '\v', escapeOK
	case '\r', '\n', '\u2028', '\u2029':
		p.advance()
		return 0, escapeEmpty
	case '0', '1', '2', '3', '4', '5', '6', '7':
		next := p.advance()
		if c == '0' && !isDecimal(next) {
			return 0, escapeOK
		} else if template || ctx&Strict != 0 {
			return 0, escapeOctal
		}
		p.flags |= FlagOctal
		code := c - '0'
		if isOctal(next) {
			code = code*8 + next - '0'
			next = p.advance()
			if c <= '3' && isOctal(next) {
				code = code*8 + next - '0'
				p.advance()
			}
		}
		return code, escapeOK
	case '8', '9':
		p.advance()
		return 0, escapeEightOrNine
	case 'x':
		hi := hexValue(p.advance())
		if hi < 0 {
			return 0, escapeInvalidHex
		}
		lo := hexValue(p.advance())
		if lo < 0 {
			return 0, escapeInvalidHex
		}
		p.advance()
		return rune(hi<<4 | lo), escapeOK
	case 'u':
		p.advance()
		code, kind := p.scanUnicodeEscapeValue()
		if kind == escapeOK && utf16.IsSurrogate(code) {
			code = p.combineSurrogate(code)
		}
		return code, kind
	}
	p.advance()
	return c, escapeOK
}

// scanUnicodeEscapeValue decodes XXXX or {X...} after \u.
func (p *Parser) scanUnicodeEscapeValue() (rune, escapeKind) {
	if p.nextCodePoint == '{' {
		code := 0
		digits := 0
		for {
			d := hexValue(p.advance())
			if d < 0 {
				break
			}
			code = code<<4 | d
			digits++
			if 0x10FFFF < code {
				return 0, escapeOutOfRange
			}
		}
		if digits == 0 && p.nextCodePoint != eof {
			return 0, escapeInvalidHex
		} else if p.nextCodePoint != '}' {
			return 0, escapeMissingBrace
		}
		p.advance()
		return rune(code), escapeOK
	}

	code := 0
	for i := 0; i < 4; i++ {
		d := hexValue(p.nextCodePoint)
		if d < 0 {
			return 0, escapeInvalidHex
		}
		code = code<<4 | d
		p.advance()
	}
	return rune(code), escapeOK
}

// combineSurrogate combines an escaped high surrogate with an escaped low surrogate that directly follows it.
// Unpaired surrogates cannot be represented in UTF-8 and decode to U+FFFD.
func (p *Parser) combineSurrogate(hi rune) rune {
	if hi <= 0xDBFF && p.peek(0) == '\\' && p.peek(1) == 'u' {
		lo := 0
		for i := 2; i < 6; i++ {
			d := hexValue(rune(p.peek(i)))
			if d < 0 {
				return '\uFFFD'
			}
			lo = lo<<4 | d
		}
		if r := utf16.DecodeRune(hi, rune(lo)); r != '\uFFFD' {
			for i := 0; i < 6; i++ {
				p.advance()
			}
			return r
		}
	}
	return '\uFFFD'
}

// scanString scans a single or double quoted string literal at its opening quote.
func (p *Parser) scanString(ctx Context, quote rune) Token {
	p.advance()
	start := p.index
	marker := start
	var sb *strings.Builder
	invalid := false
	for {
		switch c := p.nextCodePoint; c {
		case quote:
			p.tokenRaw = p.source[start:p.index]
			if sb == nil {
				p.tokenValue = TokenValue{Str: p.tokenRaw}
			} else {
				sb.WriteString(p.source[marker:p.index])
				p.tokenValue = TokenValue{Str: sb.String()}
			}
			p.advance()
			if invalid {
				return Error
			}
			return StringLiteral
		case eof:
			p.report(ErrUnterminatedString)
			return Error
		case '\r', '\n':
			p.report(ErrUnterminatedStringLineBreak)
			return Error
		case '\\':
			if sb == nil {
				sb = &strings.Builder{}
			}
			sb.WriteString(p.source[marker:p.index])
			if p.advance() == eof {
				p.report(ErrUnterminatedString)
				return Error
			}
			code, kind := p.scanEscape(ctx, false)
			if kind == escapeOK {
				sb.WriteRune(code)
			} else if kind != escapeEmpty {
				p.reportEscape(kind, false)
				invalid = true
			}
			marker = p.index
		default:
			p.advance()
		}
	}
}

// scanTemplate scans a template fragment at its opening backtick.
func (p *Parser) scanTemplate(ctx Context) Token {
	p.advance()
	return p.scanTemplateFragment(ctx, true)
}

// scanTemplateContinuation scans the template fragment after the } that closes a substitution.
func (p *Parser) scanTemplateContinuation(ctx Context) Token {
	return p.scanTemplateFragment(ctx, false)
}

// scanTemplateFragment scans template characters up to a backtick or ${. The cooked value normalizes \r\n and \r
// to \n, the raw value keeps the source text. With a tagged template an invalid escape marks the token as a bad
// template with an undefined cooked value instead of failing.
func (p *Parser) scanTemplateFragment(ctx Context, head bool) Token {
	start := p.index
	marker := start
	var sb strings.Builder
	bad := false
	var tok Token
	for tok == 0 {
		switch c := p.nextCodePoint; c {
		case '`':
			sb.WriteString(p.source[marker:p.index])
			p.tokenRaw = p.source[start:p.index]
			p.advance()
			tok = TemplateTail
			if head {
				tok = NoSubstitutionTemplate
			}
		case '$':
			if p.peek(1) != '{' {
				p.advance()
				break
			}
			sb.WriteString(p.source[marker:p.index])
			p.tokenRaw = p.source[start:p.index]
			p.advance()
			p.advance()
			tok = TemplateMiddle
			if head {
				tok = TemplateHead
			}
		case eof:
			p.report(ErrUnterminatedTemplate)
			return Error
		case '\r':
			sb.WriteString(p.source[marker:p.index])
			sb.WriteByte('\n')
			p.advance()
			marker = p.index
		case '\\':
			sb.WriteString(p.source[marker:p.index])
			if p.advance() == eof {
				p.report(ErrUnterminatedTemplate)
				return Error
			}
			code, kind := p.scanEscape(ctx, true)
			if kind == escapeOK {
				sb.WriteRune(code)
			} else if kind != escapeEmpty {
				if ctx&TaggedTemplate == 0 {
					p.reportEscape(kind, true)
				}
				bad = true
			}
			marker = p.index
		default:
			p.advance()
		}
	}

	if bad {
		p.tokenValue = TokenValue{Undefined: true}
		return tok | BadTemplate
	}
	p.tokenValue = TokenValue{Str: sb.String()}
	return tok
}
