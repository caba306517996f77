package js

// nextToken consumes the current token and scans the next one in context ctx.
func (p *Parser) nextToken(ctx Context) {
	if p.onToken != nil && p.token != EndOfSource && p.index != 0 {
		p.onToken(p.token, p.tokenPos, p.index)
	}
	p.lastEnd = p.index
	p.startPos = p.index
	p.precedingLineBreak = false
	p.flags &^= FlagEscaped | FlagOctal
	if p.failed() {
		p.tokenPos = p.index
		p.token = EndOfSource
		return
	}
	p.token = p.scanSingleToken(ctx)
	p.setRaw()
}

func (p *Parser) setRaw() {
	switch p.token &^ BadTemplate {
	case StringLiteral, NoSubstitutionTemplate, TemplateHead, TemplateMiddle, TemplateTail:
		// set by the sub-scanner without delimiters
	default:
		p.tokenRaw = p.source[p.tokenPos:p.index]
	}
}

// scanSingleToken skips whitespace, line terminators and comments and returns the next token.
func (p *Parser) scanSingleToken(ctx Context) Token {
	for {
		p.tokenPos, p.tokenLine, p.tokenColumn = p.index, p.line, p.column
		c := p.nextCodePoint
		if c == eof {
			return EndOfSource
		} else if 128 <= c {
			if isLineTerminator(c) {
				p.precedingLineBreak = true
				p.advance()
				continue
			} else if isWhiteSpace(c) {
				p.advance()
				continue
			} else if isIdentifierStart(c) {
				return p.scanIdentifier(ctx)
			}
			p.report(ErrInvalidCharacter)
			p.advance()
			return Error
		}

		switch tok := firstChar[c]; tok {
		case charWhiteSpace:
			p.advance()
		case charLineFeed, charCarriageReturn:
			p.precedingLineBreak = true
			p.advance()
		case LeftParen, RightParen, LeftBrace, RightBrace, LeftBracket, RightBracket, Colon, Semicolon, Comma, Complement:
			p.advance()
			return tok
		case Identifier, charBackslash:
			return p.scanIdentifier(ctx)
		case NumericLiteral:
			return p.scanNumber(ctx, false)
		case StringLiteral:
			return p.scanString(ctx, c)
		case NoSubstitutionTemplate:
			return p.scanTemplate(ctx)
		case charHash:
			if p.index == 0 && p.peek(1) == '!' {
				p.skipSingleLineComment(HashbangComment, 2)
				continue
			}
			return p.scanPrivateName(ctx)
		case Period:
			if isDecimal(rune(p.peek(1))) {
				return p.scanNumber(ctx, true)
			}
			p.advance()
			if p.nextCodePoint == '.' && p.peek(1) == '.' {
				p.advance()
				p.advance()
				return Ellipsis
			}
			return Period
		case LessThan:
			p.advance()
			switch p.nextCodePoint {
			case '=':
				p.advance()
				return LessThanOrEqual
			case '<':
				if p.advance() == '=' {
					p.advance()
					return ShiftLeftAssign
				}
				return ShiftLeft
			case '!':
				if p.peek(1) == '-' && p.peek(2) == '-' {
					ok := p.allowHTMLComment(ctx)
					p.skipSingleLineComment(HTMLOpenComment, 4)
					if !ok {
						return Error
					}
					continue
				}
			}
			return LessThan
		case GreaterThan:
			p.advance()
			switch p.nextCodePoint {
			case '=':
				p.advance()
				return GreaterThanOrEqual
			case '>':
				switch p.advance() {
				case '=':
					p.advance()
					return ShiftRightAssign
				case '>':
					if p.advance() == '=' {
						p.advance()
						return LogicalShiftRightAssign
					}
					return LogicalShiftRight
				}
				return ShiftRight
			}
			return GreaterThan
		case Assign:
			switch p.advance() {
			case '=':
				if p.advance() == '=' {
					p.advance()
					return StrictEqual
				}
				return LooseEqual
			case '>':
				p.advance()
				return Arrow
			}
			return Assign
		case Negate:
			if p.advance() == '=' {
				if p.advance() == '=' {
					p.advance()
					return StrictNotEqual
				}
				return LooseNotEqual
			}
			return Negate
		case Add:
			switch p.advance() {
			case '+':
				p.advance()
				return Increment
			case '=':
				p.advance()
				return AddAssign
			}
			return Add
		case Subtract:
			switch p.advance() {
			case '-':
				if p.peek(1) == '>' && (p.precedingLineBreak || p.lastEnd == 0) {
					ok := p.allowHTMLComment(ctx)
					p.skipSingleLineComment(HTMLCloseComment, 3)
					if !ok {
						return Error
					}
					continue
				}
				p.advance()
				return Decrement
			case '=':
				p.advance()
				return SubtractAssign
			}
			return Subtract
		case Multiply:
			switch p.advance() {
			case '=':
				p.advance()
				return MultiplyAssign
			case '*':
				if p.advance() == '=' {
					p.advance()
					return ExponentiateAssign
				}
				return Exponentiate
			}
			return Multiply
		case Modulo:
			if p.advance() == '=' {
				p.advance()
				return ModuloAssign
			}
			return Modulo
		case Divide:
			switch p.advance() {
			case '/':
				p.advance()
				p.skipSingleLineComment(SingleLineComment, 2)
				continue
			case '*':
				p.advance()
				if !p.skipMultiLineComment() {
					return Error
				}
				continue
			}
			if ctx&AllowRegExp != 0 {
				return p.scanRegularExpression(ctx)
			} else if p.consumeOpt('=') {
				return DivideAssign
			}
			return Divide
		case BitwiseAnd:
			switch p.advance() {
			case '&':
				if p.advance() == '=' {
					p.advance()
					return LogicalAndAssign
				}
				return LogicalAnd
			case '=':
				p.advance()
				return BitwiseAndAssign
			}
			return BitwiseAnd
		case BitwiseOr:
			switch p.advance() {
			case '|':
				if p.advance() == '=' {
					p.advance()
					return LogicalOrAssign
				}
				return LogicalOr
			case '=':
				p.advance()
				return BitwiseOrAssign
			}
			return BitwiseOr
		case BitwiseXor:
			if p.advance() == '=' {
				p.advance()
				return BitwiseXorAssign
			}
			return BitwiseXor
		case QuestionMark:
			switch p.advance() {
			case '?':
				if p.advance() == '=' {
					p.advance()
					return CoalesceAssign
				}
				return Coalesce
			case '.':
				if !isDecimal(rune(p.peek(1))) {
					p.advance()
					return QuestionMarkPeriod
				}
			}
			return QuestionMark
		default:
			p.report(ErrInvalidCharacter)
			p.advance()
			return Error
		}
	}
}

// scanPrivateName scans #name, which is only recognized with proposed syntax enabled.
func (p *Parser) scanPrivateName(ctx Context) Token {
	p.advance()
	if ctx&OptionsNext == 0 || !isIdentifierStart(p.nextCodePoint) {
		p.report(ErrInvalidCharacter)
		return Error
	}
	if p.scanIdentifier(ctx) == Error {
		return Error
	}
	return PrivateName
}
