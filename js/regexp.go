package js

// regular expression flags
const (
	flagHasIndices  uint8 = 1 << iota // d
	flagGlobal                        // g
	flagIgnoreCase                    // i
	flagMultiline                     // m
	flagDotAll                        // s
	flagUnicode                       // u
	flagUnicodeSets                   // v
	flagSticky                        // y
)

// scanRegularExpression scans a regular expression literal after its opening slash. Only the extent of the
// pattern is validated, its syntax is left to the regular expression engine.
func (p *Parser) scanRegularExpression(ctx Context) Token {
	start := p.index
	inClass := false
	for {
		c := p.nextCodePoint
		if c == '\\' {
			c = p.advance()
		} else if c == '[' {
			inClass = true
		} else if c == ']' {
			inClass = false
		} else if c == '/' && !inClass {
			break
		}
		if c == eof || isLineTerminator(c) {
			p.report(ErrUnterminatedRegExp)
			return Error
		}
		p.advance()
	}
	pattern := p.source[start:p.index]
	p.advance()

	flagsStart := p.index
	var seen uint8
	for c := p.nextCodePoint; isIdentifierPart(c) || c == '\\'; c = p.advance() {
		var flag uint8
		switch c {
		case 'd':
			flag = flagHasIndices
		case 'g':
			flag = flagGlobal
		case 'i':
			flag = flagIgnoreCase
		case 'm':
			flag = flagMultiline
		case 's':
			flag = flagDotAll
		case 'u':
			flag = flagUnicode
		case 'v':
			flag = flagUnicodeSets
		case 'y':
			flag = flagSticky
		default:
			p.report(ErrUnexpectedTokenRegExpFlag)
			return Error
		}
		if seen&flag != 0 {
			p.report(ErrDuplicateRegExpFlag, string(c))
			return Error
		}
		seen |= flag
	}
	p.tokenRegExp = RegExp{Pattern: pattern, Flags: p.source[flagsStart:p.index]}
	p.tokenValue = TokenValue{Str: pattern}
	return RegularExpression
}
