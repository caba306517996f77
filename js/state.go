package js

import (
	"unicode/utf8"

	"github.com/GuyLewin/meriyah"
)

const eof rune = -1

// TokenValue is the decoded value of the current token.
type TokenValue struct {
	Str       string  // identifier name, string or cooked template text, BigInt digits
	Num       float64 // numeric literal value
	Undefined bool    // cooked template text is undefined, see BadTemplate
}

// RegExp is the value of a regular expression token.
type RegExp struct {
	Pattern string
	Flags   string
}

// Parser is the state shared by the scanner and the recursive-descent parser. The scanner mutates the cursor
// and the current token, the parser reads them and decides on the context of the next scan.
type Parser struct {
	source string
	index  int // byte offset
	line   int // 1-based
	column int // 0-based, in UTF-16 code units

	tokenPos    int // start of the current token
	tokenLine   int
	tokenColumn int
	startPos    int // start of the current token including the preceding trivia
	lastEnd     int // end of the previous token

	token              Token
	tokenValue         TokenValue
	tokenRaw           string
	tokenRegExp        RegExp
	precedingLineBreak bool
	nextCodePoint      rune
	flags              Flags

	onError   func(string)
	onComment func(CommentKind, string, int, int)
	comments  *[]Comment
	onToken   func(Token, int, int)

	errors   []*meriyah.Error
	err      *meriyah.Error
	depth    int
	maxDepth int
}

// NewParser returns a new parser state positioned at the start of source.
func NewParser(source string, o Options) *Parser {
	p := &Parser{
		source:    source,
		line:      1,
		onError:   o.OnError,
		onComment: o.OnComment,
		comments:  o.Comments,
		onToken:   o.OnToken,
		maxDepth:  o.MaxDepth,
	}
	if p.maxDepth <= 0 {
		p.maxDepth = DefaultMaxDepth
	}
	p.nextCodePoint = p.codePointAt(0)
	return p
}

func (p *Parser) codePointAt(i int) rune {
	if len(p.source) <= i {
		return eof
	}
	if c := p.source[i]; c < utf8.RuneSelf {
		return rune(c)
	}
	r, _ := utf8.DecodeRuneInString(p.source[i:])
	return r
}

// peek returns the byte at offset n past the cursor, or 0 past the end.
func (p *Parser) peek(n int) byte {
	if i := p.index + n; i < len(p.source) {
		return p.source[i]
	}
	return 0
}

// advance consumes exactly one source character and returns the next one. A consumed line terminator increments
// the line and resets the column, with \r\n consumed as a single line break.
func (p *Parser) advance() rune {
	c := p.nextCodePoint
	switch {
	case c == eof:
		return eof
	case c < utf8.RuneSelf:
		p.index++
		p.column++
		if c == '\n' || c == '\r' {
			if c == '\r' && p.index < len(p.source) && p.source[p.index] == '\n' {
				p.index++
			}
			p.line++
			p.column = 0
		}
	default:
		_, n := utf8.DecodeRuneInString(p.source[p.index:])
		p.index += n
		p.column++
		if 0xFFFF < c {
			p.column++ // surrogate pair
		} else if c == '\u2028' || c == '\u2029' {
			p.line++
			p.column = 0
		}
	}
	p.nextCodePoint = p.codePointAt(p.index)
	return p.nextCodePoint
}

// consumeOpt advances when the next character is c.
func (p *Parser) consumeOpt(c rune) bool {
	if p.nextCodePoint != c {
		return false
	}
	p.advance()
	return true
}

// Pos returns the start and end offsets of the current token.
func (p *Parser) Pos() (int, int) {
	return p.tokenPos, p.index
}

// Token returns the current token.
func (p *Parser) Token() Token {
	return p.token
}

// Value returns the decoded value of the current token.
func (p *Parser) Value() TokenValue {
	return p.tokenValue
}

// Raw returns the source text of the current token.
func (p *Parser) Raw() string {
	return p.tokenRaw
}

// Err returns the fatal error, if any.
func (p *Parser) Err() error {
	if p.err == nil {
		return nil
	}
	return p.err
}
