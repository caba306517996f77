package js

func (p *Parser) addComment(kind CommentKind, value string, start, end int) {
	if p.onComment != nil {
		p.onComment(kind, value, start, end)
	}
	if p.comments != nil {
		*p.comments = append(*p.comments, Comment{kind, value, start, end})
	}
}

// allowHTMLComment reports HTML-like comments outside of web compatible scripts.
func (p *Parser) allowHTMLComment(ctx Context) bool {
	if ctx&OptionsWebCompat == 0 || ctx&Module != 0 {
		p.report(ErrHTMLComment)
		return false
	}
	return true
}

// skipSingleLineComment skips until the end of the line, leaving the line terminator in place. The comment value
// starts prefix bytes after the start of the token.
func (p *Parser) skipSingleLineComment(kind CommentKind, prefix int) {
	start := p.tokenPos
	for c := p.nextCodePoint; c != eof && !isLineTerminator(c); c = p.advance() {
	}
	p.addComment(kind, p.source[start+prefix:p.index], start, p.index)
}

// skipMultiLineComment skips a comment after its opening /*. A line terminator inside the comment counts as a
// preceding line break for the next token.
func (p *Parser) skipMultiLineComment() bool {
	start := p.tokenPos
	for c := p.nextCodePoint; c != eof; c = p.nextCodePoint {
		if c == '*' && p.peek(1) == '/' {
			p.advance()
			p.advance()
			p.addComment(MultiLineComment, p.source[start+2:p.index-2], start, p.index)
			return true
		} else if isLineTerminator(c) {
			p.precedingLineBreak = true
		}
		p.advance()
	}
	p.report(ErrUnterminatedComment)
	return false
}
