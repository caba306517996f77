package js

import (
	"io"
)

// Parse parses a script, or a module when o.Module is set, read from r. Without an OnError callback the first
// diagnostic is returned as a *meriyah.Error together with the partial tree.
func Parse(r io.Reader, o Options) (*AST, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseString(string(b), o)
}

// ParseString parses source. See Parse.
func ParseString(source string, o Options) (*AST, error) {
	p := NewParser(source, o)
	ast := p.parseProgram(o.context())
	if p.err != nil {
		return ast, p.err
	}
	return ast, nil
}

func (p *Parser) parseProgram(ctx Context) *AST {
	p.nextToken(ctx | AllowRegExp)
	ast := &AST{
		Module: ctx&Module != 0,
	}
	ast.List, _ = p.parseDirectivesAndStatements(ctx, EndOfSource)
	if ctx&OptionsRanges != 0 {
		ast.Range = Range{0, len(p.source)}
	}
	ast.Errors = p.errors
	return ast
}

////////////////////////////////////////////////////////////////

// rangeFrom returns the range from start to the end of the last consumed token.
func (p *Parser) rangeFrom(ctx Context, start int) Range {
	if ctx&OptionsRanges == 0 {
		return Range{}
	}
	return Range{start, p.lastEnd}
}

// consume consumes the current token when it is tok and scans the next one in ctx.
func (p *Parser) consume(ctx Context, tok Token) bool {
	if p.token != tok {
		p.expected(tok)
		return false
	}
	p.nextToken(ctx)
	return true
}

func (p *Parser) expected(tok Token) {
	switch p.token {
	case Error:
	case EndOfSource:
		p.fail(ErrUnexpectedEndOfSource)
	default:
		p.fail(ErrExpected, tok.String())
	}
}

func (p *Parser) consumeRightBrace(ctx Context) {
	if p.token != RightBrace {
		if p.token != Error {
			p.fail(ErrMissingClosingBrace)
		}
		return
	}
	p.nextToken(ctx)
}

// consumeSemicolon consumes an explicit semicolon, or accepts an automatically inserted one before a }, at the
// end of the source or after a line break.
func (p *Parser) consumeSemicolon(ctx Context) {
	if p.token == Semicolon {
		p.nextToken(ctx | AllowRegExp)
	} else if p.token&IsAutoSemicolon == 0 && !p.precedingLineBreak {
		p.expected(Semicolon)
	}
}

// enter guards recursion depth. Exceeding the limit is fatal in every mode so that deeply nested input
// terminates.
func (p *Parser) enter() bool {
	p.depth++
	if p.depth <= p.maxDepth {
		return true
	}
	if p.err == nil {
		p.fail(ErrTooDeep)
		if p.err == nil {
			p.err = p.errors[len(p.errors)-1]
		}
	}
	p.token = EndOfSource
	return false
}

func (p *Parser) leave() {
	p.depth--
}

// checkEscapedKeyword reports a reserved word that was spelled with unicode escapes.
func (p *Parser) checkEscapedKeyword() {
	if p.flags&FlagEscaped != 0 && p.token&IsReserved != 0 {
		p.fail(ErrEscapedKeyword)
	}
}

// validateIdentifier reports tok when it cannot be used as an identifier reference or binding in ctx.
func (p *Parser) validateIdentifier(ctx Context, tok Token) {
	name := p.tokenValue.Str
	switch {
	case tok&IsReserved != 0:
		if p.flags&FlagEscaped != 0 {
			p.fail(ErrEscapedKeyword)
		} else {
			p.fail(ErrUnexpectedReserved, name)
		}
	case ctx&Strict != 0 && tok&IsFutureReserved != 0:
		p.fail(ErrStrictReserved, name)
	case tok == AwaitKeyword && ctx&(Module|InAsync) != 0:
		p.fail(ErrUnexpectedReserved, name)
	case tok == YieldKeyword && ctx&InGenerator != 0:
		p.fail(ErrUnexpectedReserved, name)
	}
}

////////////////////////////////////////////////////////////////

// parseDirectivesAndStatements parses a statement list preceded by its directive prologue until end. A
// "use strict" directive makes the rest of the list strict, including the token directly after the directive,
// and retroactively rejects octal escapes in the directives before it. It returns the context of the list.
func (p *Parser) parseDirectivesAndStatements(ctx Context, end Token) ([]IStmt, Context) {
	list := []IStmt{}
	octal := false
	for p.token == StringLiteral {
		if p.flags&FlagOctal != 0 {
			octal = true
		}
		start := p.tokenPos
		raw := p.tokenRaw
		lit := &StringExpr{Value: p.tokenValue.Str}
		if ctx&OptionsRaw != 0 {
			lit.Raw = raw
		}

		strict := raw == "use strict"
		nextCtx := ctx
		if strict {
			nextCtx |= Strict
		}
		p.nextToken(nextCtx | TaggedTemplate)
		lit.Range = p.rangeFrom(ctx, start)

		if p.token == Semicolon || p.token == RightBrace || p.token == EndOfSource || p.precedingLineBreak && !continuesExpression(p.token) {
			if strict {
				ctx = nextCtx
				if octal {
					p.reportAt(start, ErrStrictOctalEscape)
				}
			}
			p.consumeSemicolon(ctx)
			list = append(list, &ExprStmt{Range: p.rangeFrom(ctx, start), Value: lit, Directive: raw})
			continue
		}

		// the string starts an ordinary expression statement and ends the prologue
		expr := p.parseExpressionRest(ctx, start, lit)
		expr = p.parseSequenceRest(ctx, start, expr)
		p.consumeSemicolon(ctx)
		list = append(list, &ExprStmt{Range: p.rangeFrom(ctx, start), Value: expr})
		break
	}

	for p.token != end && p.token != EndOfSource {
		list = append(list, p.parseStatementListItem(ctx))
	}
	return list, ctx
}

// continuesExpression returns true when tok after a string literal would make it part of a larger expression.
func continuesExpression(tok Token) bool {
	return tok&(IsBinaryOp|IsAssignOp|IsMemberOrCall) != 0 || tok == Comma || tok == QuestionMark
}

func (p *Parser) parseStatementListItem(ctx Context) IStmt {
	switch p.token {
	case FunctionKeyword:
		p.checkEscapedKeyword()
		return p.parseFunction(ctx, p.tokenPos, false, false, ctx|AllowRegExp)
	case ClassKeyword:
		p.checkEscapedKeyword()
		return p.parseClass(ctx, false, ctx|AllowRegExp)
	case ConstKeyword:
		p.checkEscapedKeyword()
		return p.parseVarStatement(ctx)
	}
	return p.parseStatement(ctx)
}

func (p *Parser) parseStatement(ctx Context) IStmt {
	if !p.enter() {
		return &EmptyStmt{}
	}
	defer p.leave()

	start := p.tokenPos
	if p.token&IsReserved != 0 {
		p.checkEscapedKeyword()
	}
	switch p.token {
	case LeftBrace:
		return p.parseBlock(ctx, ctx|AllowRegExp)
	case Semicolon:
		p.nextToken(ctx | AllowRegExp)
		return &EmptyStmt{p.rangeFrom(ctx, start)}
	case VarKeyword:
		return p.parseVarStatement(ctx)
	case LetKeyword:
		if p.flags&FlagEscaped == 0 {
			return p.parseLetStatement(ctx)
		}
	case IfKeyword:
		return p.parseIfStatement(ctx)
	case ForKeyword:
		return p.parseForStatement(ctx)
	case WhileKeyword:
		p.nextToken(ctx)
		cond := p.parseCondition(ctx)
		body := p.parseStatement(ctx | InIteration)
		return &WhileStmt{p.rangeFrom(ctx, start), cond, body}
	case DoKeyword:
		p.nextToken(ctx | AllowRegExp)
		body := p.parseStatement(ctx | InIteration)
		p.consume(ctx, WhileKeyword)
		cond := p.parseCondition(ctx)
		if p.token == Semicolon {
			p.nextToken(ctx | AllowRegExp)
		}
		return &DoWhileStmt{p.rangeFrom(ctx, start), cond, body}
	case ReturnKeyword:
		p.nextToken(ctx | AllowRegExp)
		var value IExpr
		if p.token != Semicolon && p.token&IsAutoSemicolon == 0 && !p.precedingLineBreak {
			value = p.parseExpressions(ctx)
		}
		p.consumeSemicolon(ctx)
		return &ReturnStmt{p.rangeFrom(ctx, start), value}
	case BreakKeyword, ContinueKeyword:
		return p.parseBranchStatement(ctx)
	case ThrowKeyword:
		p.nextToken(ctx | AllowRegExp)
		if p.precedingLineBreak {
			p.fail(ErrIllegalNewlineAfterThrow)
		}
		value := p.parseExpressions(ctx)
		p.consumeSemicolon(ctx)
		return &ThrowStmt{p.rangeFrom(ctx, start), value}
	case TryKeyword:
		return p.parseTryStatement(ctx)
	case SwitchKeyword:
		return p.parseSwitchStatement(ctx)
	case WithKeyword:
		if ctx&Strict != 0 {
			p.fail(ErrStrictWith)
		}
		p.nextToken(ctx)
		cond := p.parseCondition(ctx)
		body := p.parseStatement(ctx)
		return &WithStmt{p.rangeFrom(ctx, start), cond, body}
	case DebuggerKeyword:
		p.nextToken(ctx)
		p.consumeSemicolon(ctx)
		return &DebuggerStmt{p.rangeFrom(ctx, start)}
	case FunctionKeyword:
		p.fail(ErrFunctionInStatement)
		return p.parseFunction(ctx, start, false, false, ctx|AllowRegExp)
	case ClassKeyword:
		p.unexpected()
		return p.parseClass(ctx, false, ctx|AllowRegExp)
	case ConstKeyword:
		p.unexpected()
		return p.parseVarStatement(ctx)
	}
	if p.token&IsIdentifier != 0 && p.token&IsReserved == 0 {
		return p.parseIdentifierStatement(ctx)
	}

	expr := p.parseExpressions(ctx)
	p.consumeSemicolon(ctx)
	return &ExprStmt{Range: p.rangeFrom(ctx, start), Value: expr}
}

// parseSubStatement parses the body of an if statement or a label, where web compatible sloppy code may declare
// a function.
func (p *Parser) parseSubStatement(ctx Context) IStmt {
	if p.token == FunctionKeyword && ctx&(OptionsWebCompat|Strict) == OptionsWebCompat {
		return p.parseFunction(ctx, p.tokenPos, false, false, ctx|AllowRegExp)
	}
	return p.parseStatement(ctx)
}

func (p *Parser) parseBlock(ctx, after Context) *BlockStmt {
	start := p.tokenPos
	block := &BlockStmt{}
	if !p.consume(ctx|AllowRegExp, LeftBrace) {
		return block
	}
	block.List = []IStmt{}
	for p.token != RightBrace && p.token != EndOfSource {
		block.List = append(block.List, p.parseStatementListItem(ctx))
	}
	p.consumeRightBrace(after)
	block.Range = p.rangeFrom(ctx, start)
	return block
}

// parseCondition parses a parenthesized expression, as in the head of if, while and switch statements.
func (p *Parser) parseCondition(ctx Context) IExpr {
	p.consume(ctx|AllowRegExp, LeftParen)
	cond := p.parseExpressions(ctx &^ DisallowIn)
	p.consume(ctx|AllowRegExp, RightParen)
	return cond
}

func (p *Parser) parseIfStatement(ctx Context) IStmt {
	start := p.tokenPos
	p.nextToken(ctx)
	cond := p.parseCondition(ctx)
	body := p.parseSubStatement(ctx)
	var elseBody IStmt
	if p.token == ElseKeyword {
		p.checkEscapedKeyword()
		p.nextToken(ctx | AllowRegExp)
		elseBody = p.parseSubStatement(ctx)
	}
	return &IfStmt{p.rangeFrom(ctx, start), cond, body, elseBody}
}

func (p *Parser) parseBranchStatement(ctx Context) IStmt {
	start := p.tokenPos
	tok := p.token
	p.nextToken(ctx)
	label := ""
	if !p.precedingLineBreak && p.token&IsIdentifier != 0 && p.token&IsReserved == 0 {
		p.validateIdentifier(ctx, p.token)
		label = p.tokenValue.Str
		p.nextToken(ctx)
	} else if tok == BreakKeyword && ctx&(InIteration|InSwitch) == 0 {
		p.reportAt(start, ErrIllegalBreak)
	} else if tok == ContinueKeyword && ctx&InIteration == 0 {
		p.reportAt(start, ErrIllegalContinue)
	}
	p.consumeSemicolon(ctx)
	return &BranchStmt{p.rangeFrom(ctx, start), tok, label}
}

// parseIdentifierStatement parses a statement that starts with an identifier: a labelled statement, an async
// function declaration or an expression statement.
func (p *Parser) parseIdentifierStatement(ctx Context) IStmt {
	start := p.tokenPos
	tok := p.token
	escaped := p.flags&FlagEscaped != 0
	name := p.tokenValue.Str
	if tok == YieldKeyword && ctx&InGenerator != 0 || tok == AwaitKeyword && ctx&InAsync != 0 {
		expr := p.parseExpressions(ctx)
		p.consumeSemicolon(ctx)
		return &ExprStmt{Range: p.rangeFrom(ctx, start), Value: expr}
	}
	p.validateIdentifier(ctx, tok)
	p.nextToken(ctx | TaggedTemplate)

	if p.token == Colon {
		p.nextToken(ctx | AllowRegExp)
		body := p.parseSubStatement(ctx)
		return &LabelledStmt{p.rangeFrom(ctx, start), name, body}
	}

	var left IExpr = &Var{p.rangeFrom(ctx, start), name}
	if tok == AsyncKeyword && !escaped && !p.precedingLineBreak {
		if p.token == FunctionKeyword {
			return p.parseFunction(ctx, start, true, false, ctx|AllowRegExp)
		}
		left = p.parseAsyncArrowOrVar(ctx, start, left)
	}
	expr := p.parseExpressionRest(ctx, start, left)
	expr = p.parseSequenceRest(ctx, start, expr)
	p.consumeSemicolon(ctx)
	return &ExprStmt{Range: p.rangeFrom(ctx, start), Value: expr}
}

////////////////////////////////////////////////////////////////

func (p *Parser) parseVarStatement(ctx Context) IStmt {
	decl := p.parseVarDecl(ctx, false)
	p.consumeSemicolon(ctx)
	decl.Range = p.rangeFrom(ctx, decl.Start)
	return decl
}

// parseLetStatement parses a lexical declaration, or an expression statement when let is used as an identifier
// in sloppy mode.
func (p *Parser) parseLetStatement(ctx Context) IStmt {
	start := p.tokenPos
	if ctx&Strict != 0 {
		return p.parseVarStatement(ctx)
	}
	p.nextToken(ctx | TaggedTemplate)
	if p.isLetDeclaration() {
		decl := p.parseVarDeclRest(ctx, start, LetKeyword, false)
		p.consumeSemicolon(ctx)
		decl.Range = p.rangeFrom(ctx, start)
		return decl
	}

	left := &Var{p.rangeFrom(ctx, start), "let"}
	expr := p.parseExpressionRest(ctx, start, left)
	expr = p.parseSequenceRest(ctx, start, expr)
	p.consumeSemicolon(ctx)
	return &ExprStmt{Range: p.rangeFrom(ctx, start), Value: expr}
}

// isLetDeclaration returns true when the token after let starts a binding.
func (p *Parser) isLetDeclaration() bool {
	switch p.token {
	case LeftBracket, LeftBrace:
		return true
	case InKeyword, InstanceofKeyword:
		return false
	}
	return p.token&IsIdentifier != 0 && (!p.precedingLineBreak || p.token&IsReserved == 0)
}

func (p *Parser) parseVarDecl(ctx Context, forHead bool) *VarDecl {
	start := p.tokenPos
	tok := p.token
	p.nextToken(ctx)
	return p.parseVarDeclRest(ctx, start, tok, forHead)
}

func (p *Parser) parseVarDeclRest(ctx Context, start int, tok Token, forHead bool) *VarDecl {
	decl := &VarDecl{Type: tok}
	for {
		elemStart := p.tokenPos
		binding := p.parseBindingIdentifier(ctx)
		var def IExpr
		if p.token == Assign {
			p.nextToken(ctx | AllowRegExp)
			def = p.parseExpression(ctx)
		} else if tok == ConstKeyword && !forHead {
			p.expected(Assign)
		}
		decl.List = append(decl.List, &BindingElement{p.rangeFrom(ctx, elemStart), binding, def})
		if p.token != Comma {
			break
		}
		p.nextToken(ctx)
	}
	decl.Range = p.rangeFrom(ctx, start)
	return decl
}

// parseBindingIdentifier parses a binding identifier. Destructuring patterns are not supported.
func (p *Parser) parseBindingIdentifier(ctx Context) *BindingName {
	start := p.tokenPos
	if p.token&IsIdentifier == 0 {
		p.unexpected()
		return &BindingName{Range: p.rangeFrom(ctx, start)}
	}
	p.validateIdentifier(ctx, p.token)
	name := p.tokenValue.Str
	p.nextToken(ctx)
	return &BindingName{p.rangeFrom(ctx, start), name}
}

////////////////////////////////////////////////////////////////

func (p *Parser) parseForStatement(ctx Context) IStmt {
	start := p.tokenPos
	p.nextToken(ctx)
	p.consume(ctx|AllowRegExp, LeftParen)

	var init IExpr
	switch {
	case p.token == Semicolon:
	case p.token == VarKeyword || p.token == ConstKeyword || p.token == LetKeyword && ctx&Strict != 0:
		init = p.parseForDecl(ctx, p.parseVarDecl(ctx|DisallowIn, true))
	case p.token == LetKeyword:
		letStart := p.tokenPos
		p.nextToken(ctx | TaggedTemplate)
		if p.isLetDeclaration() && p.token != OfKeyword {
			init = p.parseForDecl(ctx, p.parseVarDeclRest(ctx|DisallowIn, letStart, LetKeyword, true))
			break
		}
		left := &Var{p.rangeFrom(ctx, letStart), "let"}
		init = p.parseExpressionRest(ctx|DisallowIn, letStart, left)
		init = p.parseSequenceRest(ctx|DisallowIn, letStart, init)
	default:
		init = p.parseExpressions(ctx | DisallowIn)
	}

	if p.token == InKeyword || p.token == OfKeyword {
		if _, ok := init.(*VarDecl); !ok && !isSimpleTarget(init) {
			if p.token == InKeyword {
				p.fail(ErrInvalidLHSInFor, "in")
			} else {
				p.fail(ErrInvalidLHSInFor, "of")
			}
		}
		return p.parseForInOfRest(ctx, start, init)
	}

	p.consume(ctx|AllowRegExp, Semicolon)
	var cond, post IExpr
	if p.token != Semicolon {
		cond = p.parseExpressions(ctx)
	}
	p.consume(ctx|AllowRegExp, Semicolon)
	if p.token != RightParen {
		post = p.parseExpressions(ctx)
	}
	p.consume(ctx|AllowRegExp, RightParen)
	body := p.parseStatement(ctx | InIteration)
	return &ForStmt{p.rangeFrom(ctx, start), init, cond, post, body}
}

// parseForDecl validates a declaration in a for-in or for-of head, which must have a single binding without an
// initializer. Annex B allows an initializer for a sloppy mode var in a for-in loop.
func (p *Parser) parseForDecl(ctx Context, decl *VarDecl) IExpr {
	if p.token != InKeyword && p.token != OfKeyword {
		if decl.Type == ConstKeyword {
			for _, item := range decl.List {
				if item.Default == nil {
					p.fail(ErrExpected, Assign.String())
					break
				}
			}
		}
		return decl
	}

	kind := "in"
	if p.token == OfKeyword {
		kind = "of"
	}
	if len(decl.List) != 1 {
		p.fail(ErrInvalidLHSInFor, kind)
	} else if decl.List[0].Default != nil {
		if p.token == OfKeyword || decl.Type != VarKeyword || ctx&(OptionsWebCompat|Strict) != OptionsWebCompat {
			p.fail(ErrForLoopInit, kind)
		}
	}
	return decl
}

func (p *Parser) parseForInOfRest(ctx Context, start int, init IExpr) IStmt {
	of := p.token == OfKeyword
	p.nextToken(ctx | AllowRegExp)
	var value IExpr
	if of {
		value = p.parseExpression(ctx &^ DisallowIn)
	} else {
		value = p.parseExpressions(ctx &^ DisallowIn)
	}
	p.consume(ctx|AllowRegExp, RightParen)
	body := p.parseStatement(ctx | InIteration)
	if of {
		return &ForOfStmt{p.rangeFrom(ctx, start), init, value, body}
	}
	return &ForInStmt{p.rangeFrom(ctx, start), init, value, body}
}

func (p *Parser) parseSwitchStatement(ctx Context) IStmt {
	start := p.tokenPos
	p.nextToken(ctx)
	init := p.parseCondition(ctx)
	switchStmt := &SwitchStmt{Init: init}
	p.consume(ctx, LeftBrace)

	bodyCtx := ctx | InSwitch
	hasDefault := false
	for p.token != RightBrace && p.token != EndOfSource {
		clauseStart := p.tokenPos
		clause := &CaseClause{Type: p.token}
		if p.token == CaseKeyword {
			p.nextToken(ctx | AllowRegExp)
			clause.Cond = p.parseExpressions(ctx &^ DisallowIn)
		} else if p.token == DefaultKeyword {
			if hasDefault {
				p.unexpected()
			}
			hasDefault = true
			p.nextToken(ctx)
		} else {
			p.unexpected()
			break
		}
		p.consume(ctx|AllowRegExp, Colon)
		for p.token != CaseKeyword && p.token != DefaultKeyword && p.token != RightBrace && p.token != EndOfSource {
			clause.Body = append(clause.Body, p.parseStatementListItem(bodyCtx))
		}
		clause.Range = p.rangeFrom(ctx, clauseStart)
		switchStmt.List = append(switchStmt.List, clause)
	}
	p.consumeRightBrace(ctx | AllowRegExp)
	switchStmt.Range = p.rangeFrom(ctx, start)
	return switchStmt
}

func (p *Parser) parseTryStatement(ctx Context) IStmt {
	start := p.tokenPos
	p.nextToken(ctx)
	tryStmt := &TryStmt{}
	tryStmt.Body = p.parseBlock(ctx, ctx|AllowRegExp)
	if p.token == CatchKeyword {
		p.nextToken(ctx)
		if p.token == LeftParen {
			p.nextToken(ctx)
			tryStmt.Binding = p.parseBindingIdentifier(ctx)
			p.consume(ctx, RightParen)
		}
		tryStmt.Catch = p.parseBlock(ctx, ctx|AllowRegExp)
	}
	if p.token == FinallyKeyword {
		p.nextToken(ctx)
		tryStmt.Finally = p.parseBlock(ctx, ctx|AllowRegExp)
	}
	if tryStmt.Catch == nil && tryStmt.Finally == nil {
		p.expected(CatchKeyword)
	}
	tryStmt.Range = p.rangeFrom(ctx, start)
	return tryStmt
}

////////////////////////////////////////////////////////////////

// functionContext returns the context of a function body, which does not inherit the enclosing loop, switch,
// generator or async state.
func functionContext(ctx Context, async, generator bool) Context {
	ctx = ctx&^(InGenerator|InAsync|InIteration|InSwitch|DisallowIn) | InFunction
	if async {
		ctx |= InAsync
	}
	if generator {
		ctx |= InGenerator
	}
	return ctx
}

// parseFunction parses a function declaration or expression at the function keyword. The token after the body
// is scanned in after.
func (p *Parser) parseFunction(ctx Context, start int, async, expr bool, after Context) *FuncDecl {
	p.nextToken(ctx)
	f := &FuncDecl{Async: async}
	if p.token == Multiply {
		f.Generator = true
		p.nextToken(ctx)
	}
	if p.token != LeftParen {
		nameCtx := ctx
		if expr {
			// the name of a function expression is bound inside the function
			nameCtx = functionContext(ctx, async, f.Generator)
		}
		f.Name = p.parseBindingIdentifier(nameCtx)
	} else if !expr {
		p.expected(Identifier)
	}
	p.parseFunctionRest(ctx, f, after)
	f.Range = p.rangeFrom(ctx, start)
	return f
}

// parseFunctionRest parses the parameters and body of a function, method or accessor.
func (p *Parser) parseFunctionRest(ctx Context, f *FuncDecl, after Context) {
	fctx := functionContext(ctx, f.Async, f.Generator)
	f.Params = p.parseParams(fctx)
	f.Body = p.parseFunctionBody(fctx, after)
}

func (p *Parser) parseParams(ctx Context) Params {
	start := p.tokenPos
	params := Params{}
	if !p.consume(ctx, LeftParen) {
		return params
	}
	for p.token != RightParen && p.token != EndOfSource {
		elemStart := p.tokenPos
		if p.token == Ellipsis {
			p.nextToken(ctx)
			binding := p.parseBindingIdentifier(ctx)
			params.Rest = &BindingElement{p.rangeFrom(ctx, elemStart), binding, nil}
			break
		}
		binding := p.parseBindingIdentifier(ctx)
		var def IExpr
		if p.token == Assign {
			p.nextToken(ctx | AllowRegExp)
			def = p.parseExpression(ctx)
		}
		params.List = append(params.List, &BindingElement{p.rangeFrom(ctx, elemStart), binding, def})
		if p.token != Comma {
			break
		}
		p.nextToken(ctx)
	}
	p.consume(ctx, RightParen)
	params.Range = p.rangeFrom(ctx, start)
	return params
}

// parseFunctionBody parses a function body with its own directive prologue. Strict mode set by the prologue does
// not leak into the code after the function, whose first token is scanned in after.
func (p *Parser) parseFunctionBody(ctx, after Context) BlockStmt {
	start := p.tokenPos
	body := BlockStmt{}
	if !p.consume(ctx|AllowRegExp, LeftBrace) {
		return body
	}
	body.List, _ = p.parseDirectivesAndStatements(ctx, RightBrace)
	p.consumeRightBrace(after)
	body.Range = p.rangeFrom(ctx, start)
	return body
}

// parseClass parses a class declaration or expression at the class keyword. Class bodies are strict mode code.
func (p *Parser) parseClass(ctx Context, expr bool, after Context) *ClassDecl {
	start := p.tokenPos
	p.nextToken(ctx)
	cctx := ctx | Strict
	class := &ClassDecl{}
	if p.token&IsIdentifier != 0 && p.token != ExtendsKeyword {
		class.Name = p.parseBindingIdentifier(cctx)
	} else if !expr {
		p.expected(Identifier)
	}
	if p.token == ExtendsKeyword {
		p.nextToken(cctx | AllowRegExp)
		class.Extends = p.parseLeftHandSideExpression(cctx)
	}

	p.consume(cctx, LeftBrace)
	for p.token != RightBrace && p.token != EndOfSource {
		if p.token == Semicolon {
			p.nextToken(cctx)
			continue
		}
		class.Methods = append(class.Methods, p.parseMethod(cctx))
	}
	p.consumeRightBrace(after)
	class.Range = p.rangeFrom(ctx, start)
	return class
}

// parseMethod parses a class method with its static, async, generator and accessor modifiers. A modifier
// directly followed by ( is the method name instead.
func (p *Parser) parseMethod(ctx Context) *MethodDecl {
	start := p.tokenPos
	m := &MethodDecl{}
	var name *PropertyName
	if p.token == StaticKeyword {
		if name = p.parseModifier(ctx); name == nil {
			m.Static = true
		}
	}
	if name == nil && p.token == AsyncKeyword {
		if name = p.parseModifier(ctx); name == nil {
			m.Async = true
		}
	}
	if name == nil && p.token == Multiply {
		m.Generator = true
		p.nextToken(ctx)
	}
	if name == nil && !m.Async && !m.Generator && (p.token == GetKeyword || p.token == SetKeyword) {
		tok := p.token
		if name = p.parseModifier(ctx); name == nil {
			m.Get = tok == GetKeyword
			m.Set = tok == SetKeyword
		}
	}
	if name == nil {
		pn := p.parsePropertyName(ctx)
		name = &pn
	}
	m.Name = *name

	f := &FuncDecl{Async: m.Async, Generator: m.Generator}
	p.parseFunctionRest(ctx, f, ctx)
	m.Params = f.Params
	m.Body = f.Body
	m.Range = p.rangeFrom(ctx, start)
	return m
}

// parseModifier consumes a contextual modifier keyword. It returns the keyword as a property name when it turns
// out to be the name itself, and nil otherwise.
func (p *Parser) parseModifier(ctx Context) *PropertyName {
	start := p.tokenPos
	name := p.tokenValue.Str
	p.nextToken(ctx)
	switch p.token {
	case LeftParen, Colon, Comma, RightBrace, Assign:
		r := p.rangeFrom(ctx, start)
		return &PropertyName{Range: r, Key: &Var{r, name}}
	}
	if p.precedingLineBreak && name == "async" {
		p.fail(ErrUnexpectedToken, name)
	}
	return nil
}
