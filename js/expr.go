package js

import (
	"math/big"
)

// parseExpressions parses a comma separated expression.
func (p *Parser) parseExpressions(ctx Context) IExpr {
	start := p.tokenPos
	expr := p.parseExpression(ctx)
	return p.parseSequenceRest(ctx, start, expr)
}

func (p *Parser) parseSequenceRest(ctx Context, start int, expr IExpr) IExpr {
	if p.token != Comma {
		return expr
	}
	list := []IExpr{expr}
	for p.token == Comma {
		p.nextToken(ctx | AllowRegExp)
		list = append(list, p.parseExpression(ctx))
	}
	return &SeqExpr{p.rangeFrom(ctx, start), list}
}

// parseExpression parses an assignment expression, the operand of a comma.
func (p *Parser) parseExpression(ctx Context) IExpr {
	if !p.enter() {
		return &ErrorExpr{}
	}
	defer p.leave()

	start := p.tokenPos
	if p.token == YieldKeyword && ctx&InGenerator != 0 {
		return p.parseYield(ctx)
	}
	left := p.parseLeftHandSideExpression(ctx)
	return p.parseAssignmentExpression(ctx, start, left)
}

// parseExpressionRest continues an expression whose leading primary expression has already been parsed.
func (p *Parser) parseExpressionRest(ctx Context, start int, left IExpr) IExpr {
	left = p.parseMemberExpression(ctx, start, left, true)
	left = p.parsePostfix(ctx, start, left)
	return p.parseAssignmentExpression(ctx, start, left)
}

// parseAssignmentExpression continues an assignment expression after its left-hand side operand: an arrow
// function, an assignment, or a binary and conditional expression.
func (p *Parser) parseAssignmentExpression(ctx Context, start int, left IExpr) IExpr {
	if p.token == Arrow {
		params, async, ok := p.arrowParams(ctx, left)
		if !ok || p.precedingLineBreak {
			p.fail(ErrInvalidArrowParams)
		}
		return p.parseArrowFunction(ctx, start, params, async)
	}

	if p.token&IsAssignOp != 0 {
		if !isSimpleTarget(left) {
			p.fail(ErrInvalidLHSInAssignment)
		}
		op := p.token
		p.nextToken(ctx | AllowRegExp)
		right := p.parseExpression(ctx)
		return &AssignExpr{p.rangeFrom(ctx, start), op, left, right}
	}

	left = p.parseBinaryExpression(ctx, start, 0, 0, left)
	if p.token&IsAssignOp != 0 {
		p.fail(ErrInvalidLHSInAssignment)
		op := p.token
		p.nextToken(ctx | AllowRegExp)
		right := p.parseExpression(ctx)
		return &AssignExpr{p.rangeFrom(ctx, start), op, left, right}
	}

	if p.token == QuestionMark {
		p.nextToken(ctx | AllowRegExp)
		x := p.parseExpression(ctx &^ DisallowIn)
		p.consume(ctx|AllowRegExp, Colon)
		y := p.parseExpression(ctx)
		return &CondExpr{p.rangeFrom(ctx, start), left, x, y}
	}
	return left
}

// binaryPrecedence returns the binding power of a binary operator token, or 0 when tok does not continue a binary
// expression in ctx. Precedences are doubled so that the right associative ** binds tighter on its right side.
func binaryPrecedence(ctx Context, tok Token) int {
	if tok&IsBinaryOp == 0 || tok == InKeyword && ctx&DisallowIn != 0 {
		return 0
	}
	prec := tok.Precedence() << 1
	if tok == Exponentiate {
		prec |= 1
	}
	return prec
}

// parseBinaryExpression parses binary operators binding tighter than minPrec using precedence climbing. The
// parent is the operator whose right operand is being parsed, used together with the previous operator at this
// level to reject ?? mixed with && or || without parentheses.
func (p *Parser) parseBinaryExpression(ctx Context, start, minPrec int, parent Token, left IExpr) IExpr {
	var last Token
	for {
		tok := p.token
		prec := binaryPrecedence(ctx, tok)
		if prec <= minPrec {
			return left
		}
		if mixesCoalesce(tok, parent) || mixesCoalesce(tok, last) {
			p.fail(ErrInvalidCoalescing)
		}
		if tok == Exponentiate {
			if _, ok := left.(*UnaryExpr); ok {
				p.fail(ErrUnaryBeforeExponentiation)
			} else if _, ok := left.(*AwaitExpr); ok {
				p.fail(ErrUnaryBeforeExponentiation)
			}
		}

		p.nextToken(ctx | AllowRegExp)
		rightStart := p.tokenPos
		right := p.parseLeftHandSideExpression(ctx)
		if !p.enter() {
			return left
		}
		right = p.parseBinaryExpression(ctx, rightStart, tok.Precedence()<<1, tok, right)
		p.leave()
		left = &BinaryExpr{p.rangeFrom(ctx, start), tok, left, right}
		last = tok
	}
}

func mixesCoalesce(a, b Token) bool {
	return a&IsLogical != 0 && b&IsCoalesce != 0 || a&IsCoalesce != 0 && b&IsLogical != 0
}

// parseLeftHandSideExpression parses a unary or update expression, or a primary expression followed by member
// accesses, calls and a postfix operator.
func (p *Parser) parseLeftHandSideExpression(ctx Context) IExpr {
	if p.token&(IsUnaryOp|IsUpdateOp) != 0 || p.token == AwaitKeyword && ctx&InAsync != 0 {
		return p.parseUnaryExpression(ctx)
	}
	start := p.tokenPos
	expr := p.parsePrimaryExpression(ctx)
	expr = p.parseMemberExpression(ctx, start, expr, true)
	return p.parsePostfix(ctx, start, expr)
}

// parsePostfix parses a postfix ++ or --, which may not be preceded by a line break.
func (p *Parser) parsePostfix(ctx Context, start int, expr IExpr) IExpr {
	if p.token&IsUpdateOp == 0 || p.precedingLineBreak {
		return expr
	}
	if !isSimpleTarget(expr) {
		p.fail(ErrInvalidLHSInUpdate, "postfix")
	}
	op := p.token
	p.nextToken(ctx)
	return &UpdateExpr{p.rangeFrom(ctx, start), op, false, expr}
}

// parseMemberExpression parses property accesses, calls, tagged templates and optional chains after expr. Calls
// are not parsed for the callee of new.
func (p *Parser) parseMemberExpression(ctx Context, start int, expr IExpr, allowCall bool) IExpr {
	optional := false
	for p.token&IsMemberOrCall != 0 {
		switch p.token &^ BadTemplate {
		case Period:
			p.nextToken(ctx)
			name := p.parseMemberName(ctx)
			expr = &DotExpr{p.rangeFrom(ctx, start), expr, name, false}
		case LeftBracket:
			p.nextToken(ctx | AllowRegExp)
			index := p.parseExpressions(ctx &^ DisallowIn)
			p.consume(ctx|TaggedTemplate, RightBracket)
			expr = &IndexExpr{p.rangeFrom(ctx, start), expr, index, false}
		case LeftParen:
			if !allowCall {
				return expr
			}
			args := p.parseArguments(ctx)
			expr = &CallExpr{p.rangeFrom(ctx, start), expr, args, false}
		case QuestionMarkPeriod:
			if !allowCall {
				p.unexpected()
				return expr
			}
			optional = true
			p.nextToken(ctx)
			switch p.token {
			case LeftParen:
				args := p.parseArguments(ctx)
				expr = &CallExpr{p.rangeFrom(ctx, start), expr, args, true}
			case LeftBracket:
				p.nextToken(ctx | AllowRegExp)
				index := p.parseExpressions(ctx &^ DisallowIn)
				p.consume(ctx|TaggedTemplate, RightBracket)
				expr = &IndexExpr{p.rangeFrom(ctx, start), expr, index, true}
			default:
				if p.token&IsIdentifier == 0 && p.token != PrivateName {
					p.unexpected()
					return &OptChainExpr{p.rangeFrom(ctx, start), expr}
				}
				name := p.parseMemberName(ctx)
				expr = &DotExpr{p.rangeFrom(ctx, start), expr, name, true}
			}
		default: // template
			if optional {
				p.fail(ErrUnexpectedToken, "`")
			}
			expr = p.parseTemplate(ctx, start, expr)
		}
	}
	if optional {
		expr = &OptChainExpr{p.rangeFrom(ctx, start), expr}
	}
	return expr
}

// parseMemberName parses the identifier name or private name after a period.
func (p *Parser) parseMemberName(ctx Context) IExpr {
	start := p.tokenPos
	name := p.tokenValue.Str
	switch {
	case p.token == PrivateName:
		p.nextToken(ctx | TaggedTemplate)
		return &PrivateExpr{p.rangeFrom(ctx, start), name}
	case p.token&IsIdentifier != 0:
		p.nextToken(ctx | TaggedTemplate)
		return &Var{p.rangeFrom(ctx, start), name}
	}
	p.expected(Identifier)
	return &ErrorExpr{p.rangeFrom(ctx, start)}
}

func (p *Parser) parseArguments(ctx Context) Arguments {
	start := p.tokenPos
	args := Arguments{}
	p.nextToken(ctx | AllowRegExp)
	actx := ctx &^ DisallowIn
	for p.token != RightParen && p.token != EndOfSource {
		if p.token == Ellipsis {
			spreadStart := p.tokenPos
			p.nextToken(ctx | AllowRegExp)
			x := p.parseExpression(actx)
			args.List = append(args.List, &SpreadExpr{p.rangeFrom(ctx, spreadStart), x})
		} else {
			args.List = append(args.List, p.parseExpression(actx))
		}
		if p.token != Comma {
			break
		}
		p.nextToken(ctx | AllowRegExp)
	}
	p.consume(ctx|TaggedTemplate, RightParen)
	args.Range = p.rangeFrom(ctx, start)
	return args
}

// parseUnaryExpression parses a prefix operator or await. Member accesses, calls and postfix operators that
// follow belong to the operand.
func (p *Parser) parseUnaryExpression(ctx Context) IExpr {
	if !p.enter() {
		return &ErrorExpr{}
	}
	defer p.leave()

	start := p.tokenPos
	tok := p.token
	if tok&IsReserved != 0 {
		p.checkEscapedKeyword()
	}
	p.nextToken(ctx | AllowRegExp)
	x := p.parseLeftHandSideExpression(ctx)
	switch {
	case tok == AwaitKeyword:
		return &AwaitExpr{p.rangeFrom(ctx, start), x}
	case tok&IsUpdateOp != 0:
		if !isSimpleTarget(x) {
			p.fail(ErrInvalidLHSInUpdate, "prefix")
		}
		return &UpdateExpr{p.rangeFrom(ctx, start), tok, true, x}
	}
	return &UnaryExpr{p.rangeFrom(ctx, start), tok, x}
}

////////////////////////////////////////////////////////////////

func (p *Parser) parsePrimaryExpression(ctx Context) IExpr {
	if !p.enter() {
		return &ErrorExpr{}
	}
	defer p.leave()

	start := p.tokenPos
	tok := p.token
	if tok&IsReserved != 0 {
		p.checkEscapedKeyword()
	}

	switch tok &^ BadTemplate {
	case NumericLiteral:
		n := &NumberExpr{Value: p.tokenValue.Num}
		if ctx&OptionsRaw != 0 {
			n.Raw = p.tokenRaw
		}
		p.nextToken(ctx | TaggedTemplate)
		n.Range = p.rangeFrom(ctx, start)
		return n
	case BigIntLiteral:
		n := &BigIntExpr{}
		n.Value, _ = new(big.Int).SetString(p.tokenValue.Str, 0)
		if ctx&OptionsRaw != 0 {
			n.Raw = p.tokenRaw
		}
		p.nextToken(ctx | TaggedTemplate)
		n.Range = p.rangeFrom(ctx, start)
		return n
	case StringLiteral:
		s := &StringExpr{Value: p.tokenValue.Str}
		if ctx&OptionsRaw != 0 {
			s.Raw = p.tokenRaw
		}
		p.nextToken(ctx | TaggedTemplate)
		s.Range = p.rangeFrom(ctx, start)
		return s
	case RegularExpression:
		re := p.tokenRegExp
		p.nextToken(ctx | TaggedTemplate)
		return &RegExpExpr{p.rangeFrom(ctx, start), re.Pattern, re.Flags}
	case NoSubstitutionTemplate, TemplateHead:
		return p.parseTemplate(ctx, start, nil)
	case TrueKeyword, FalseKeyword:
		p.nextToken(ctx | TaggedTemplate)
		return &BoolExpr{p.rangeFrom(ctx, start), tok == TrueKeyword}
	case NullKeyword:
		p.nextToken(ctx | TaggedTemplate)
		return &NullExpr{p.rangeFrom(ctx, start)}
	case ThisKeyword:
		p.nextToken(ctx | TaggedTemplate)
		return &ThisExpr{p.rangeFrom(ctx, start)}
	case SuperKeyword:
		p.nextToken(ctx | TaggedTemplate)
		if p.token != LeftParen && p.token != Period && p.token != LeftBracket {
			p.reportAt(start, ErrInvalidSuper)
		}
		return &SuperExpr{p.rangeFrom(ctx, start)}
	case LeftParen:
		return p.parseParenthesized(ctx)
	case LeftBracket:
		return p.parseArrayLiteral(ctx)
	case LeftBrace:
		return p.parseObjectLiteral(ctx)
	case FunctionKeyword:
		return p.parseFunction(ctx, start, false, true, ctx|TaggedTemplate)
	case ClassKeyword:
		return p.parseClass(ctx, true, ctx|TaggedTemplate)
	case NewKeyword:
		return p.parseNewExpression(ctx)
	case AsyncKeyword:
		escaped := p.flags&FlagEscaped != 0
		p.nextToken(ctx | TaggedTemplate)
		left := &Var{p.rangeFrom(ctx, start), "async"}
		if escaped || p.precedingLineBreak {
			if p.token != LeftParen {
				return left
			}
			args := p.parseArguments(ctx)
			if p.token == Arrow {
				p.fail(ErrInvalidArrowParams)
			}
			return &CallExpr{p.rangeFrom(ctx, start), left, args, false}
		} else if p.token == FunctionKeyword {
			return p.parseFunction(ctx, start, true, true, ctx|TaggedTemplate)
		}
		return p.parseAsyncArrowOrVar(ctx, start, left)
	case LessThan:
		if ctx&OptionsJSX != 0 {
			p.fail(ErrJSXUnsupported)
			p.nextToken(ctx)
			return &ErrorExpr{p.rangeFrom(ctx, start)}
		}
	case Error:
		p.nextToken(ctx | AllowRegExp)
		return &ErrorExpr{p.rangeFrom(ctx, start)}
	}

	if tok&IsIdentifier != 0 && tok&IsReserved == 0 {
		p.validateIdentifier(ctx, tok)
		name := p.tokenValue.Str
		p.nextToken(ctx | TaggedTemplate)
		return &Var{p.rangeFrom(ctx, start), name}
	}

	p.unexpected()
	if tok != EndOfSource {
		p.nextToken(ctx | AllowRegExp)
	}
	return &ErrorExpr{p.rangeFrom(ctx, start)}
}

// parseTemplate parses a template literal at its first fragment, tagged by tag when it is not nil. After each
// substitution the scanner continues the template from the closing brace.
func (p *Parser) parseTemplate(ctx Context, start int, tag IExpr) *TemplateExpr {
	tmpl := &TemplateExpr{Tag: tag}
	tctx := ctx
	if tag != nil {
		tctx |= TaggedTemplate
	}
	for {
		tok := p.token &^ BadTemplate
		elem := TemplateElement{
			Cooked:    p.tokenValue.Str,
			Undefined: p.tokenValue.Undefined,
			Raw:       p.tokenRaw,
		}
		if ctx&OptionsRanges != 0 {
			elem.Range = Range{p.tokenPos, p.index}
		}
		tmpl.Quasis = append(tmpl.Quasis, elem)
		if tok == NoSubstitutionTemplate || tok == TemplateTail {
			p.nextToken(ctx | TaggedTemplate)
			break
		}

		p.nextToken(ctx | AllowRegExp)
		tmpl.Exprs = append(tmpl.Exprs, p.parseExpressions(ctx&^DisallowIn))
		if p.token != RightBrace {
			p.expected(RightBrace)
			tmpl.Quasis = append(tmpl.Quasis, TemplateElement{})
			break
		}
		p.token = p.scanTemplateContinuation(tctx)
		p.setRaw()
		if p.token == Error {
			tmpl.Quasis = append(tmpl.Quasis, TemplateElement{})
			p.nextToken(ctx)
			break
		}
	}
	tmpl.Range = p.rangeFrom(ctx, start)
	return tmpl
}

// parseNewExpression parses new with its callee and optional arguments, or new.target.
func (p *Parser) parseNewExpression(ctx Context) IExpr {
	start := p.tokenPos
	p.nextToken(ctx | AllowRegExp)
	if p.token == Period {
		p.nextToken(ctx)
		if p.token != TargetKeyword || p.flags&FlagEscaped != 0 {
			p.expected(TargetKeyword)
			return &ErrorExpr{p.rangeFrom(ctx, start)}
		}
		p.nextToken(ctx | TaggedTemplate)
		if ctx&InFunction == 0 {
			p.reportAt(start, ErrUnexpectedToken, "new.target")
		}
		return &NewTargetExpr{p.rangeFrom(ctx, start)}
	}

	calleeStart := p.tokenPos
	var callee IExpr
	if p.token == NewKeyword {
		if !p.enter() {
			return &ErrorExpr{p.rangeFrom(ctx, start)}
		}
		callee = p.parseNewExpression(ctx)
		p.leave()
	} else if p.token&(IsUnaryOp|IsUpdateOp) != 0 {
		p.unexpected()
		callee = p.parseUnaryExpression(ctx)
	} else {
		callee = p.parsePrimaryExpression(ctx)
	}
	callee = p.parseMemberExpression(ctx, calleeStart, callee, false)

	var args *Arguments
	if p.token == LeftParen {
		a := p.parseArguments(ctx)
		args = &a
	}
	return &NewExpr{p.rangeFrom(ctx, start), callee, args}
}

func (p *Parser) parseYield(ctx Context) IExpr {
	start := p.tokenPos
	if p.flags&FlagEscaped != 0 {
		p.fail(ErrEscapedKeyword)
	}
	p.nextToken(ctx | AllowRegExp)
	yield := &YieldExpr{}
	if p.token == Multiply && !p.precedingLineBreak {
		yield.Generator = true
		p.nextToken(ctx | AllowRegExp)
		yield.Value = p.parseExpression(ctx)
	} else if startsExpression(p.token) && !p.precedingLineBreak {
		yield.Value = p.parseExpression(ctx)
	}
	yield.Range = p.rangeFrom(ctx, start)
	return yield
}

// startsExpression returns true when tok can be the first token of an expression.
func startsExpression(tok Token) bool {
	switch tok {
	case RightParen, RightBracket, RightBrace, Comma, Colon, Semicolon, QuestionMark, Arrow, Period, QuestionMarkPeriod, EndOfSource:
		return false
	}
	return tok&IsAssignOp == 0 && (tok&IsBinaryOp == 0 || tok&IsUnaryOp != 0)
}

////////////////////////////////////////////////////////////////

// parseParenthesized parses a parenthesized expression or the parameters of an arrow function. A group that is
// followed by => is converted to parameters by parseAssignmentExpression. Empty parentheses and rest parameters
// can only be arrow parameters and are parsed directly.
func (p *Parser) parseParenthesized(ctx Context) IExpr {
	start := p.tokenPos
	p.nextToken(ctx | AllowRegExp)
	inner := ctx &^ DisallowIn

	var list []IExpr
	var rest *BindingElement
	trailingComma := false
	for p.token != RightParen && p.token != EndOfSource {
		if p.token == Ellipsis {
			restStart := p.tokenPos
			p.nextToken(ctx)
			binding := p.parseBindingIdentifier(ctx)
			rest = &BindingElement{p.rangeFrom(ctx, restStart), binding, nil}
			break
		}
		list = append(list, p.parseExpression(inner))
		if p.token != Comma {
			break
		}
		p.nextToken(ctx | AllowRegExp)
		trailingComma = p.token == RightParen
	}
	end := p.tokenPos
	p.consume(ctx|TaggedTemplate, RightParen)
	if trailingComma && (p.token != Arrow || p.precedingLineBreak) {
		p.reportAt(end, ErrUnexpected)
	}

	if len(list) == 0 || rest != nil {
		if p.token != Arrow || p.precedingLineBreak {
			p.expected(Arrow)
			return &ErrorExpr{p.rangeFrom(ctx, start)}
		}
		params := Params{Rest: rest}
		for _, item := range list {
			elem, ok := p.bindingElement(ctx, item)
			if !ok {
				p.fail(ErrInvalidArrowParams)
				break
			}
			params.List = append(params.List, elem)
		}
		params.Range = p.rangeFrom(ctx, start)
		return p.parseArrowFunction(ctx, start, params, false)
	}

	if len(list) == 1 {
		return &GroupExpr{p.rangeFrom(ctx, start), list[0]}
	}
	seq := &SeqExpr{List: list}
	if ctx&OptionsRanges != 0 {
		seq.Range = Range{list[0].Span().Start, list[len(list)-1].Span().End}
	}
	return &GroupExpr{p.rangeFrom(ctx, start), seq}
}

// parseAsyncArrowOrVar parses the parameter and arrow of async x => ..., or returns left, the identifier async.
func (p *Parser) parseAsyncArrowOrVar(ctx Context, start int, left IExpr) IExpr {
	if p.token&IsIdentifier == 0 || p.token&IsReserved != 0 || p.precedingLineBreak {
		return left
	}
	paramStart := p.tokenPos
	binding := p.parseBindingIdentifier(functionContext(ctx, true, false))
	if p.token != Arrow || p.precedingLineBreak {
		p.expected(Arrow)
		return &ErrorExpr{p.rangeFrom(ctx, start)}
	}
	params := Params{
		Range: p.rangeFrom(ctx, paramStart),
		List:  []*BindingElement{{p.rangeFrom(ctx, paramStart), binding, nil}},
	}
	return p.parseArrowFunction(ctx, start, params, true)
}

// arrowParams converts the expression before => into arrow function parameters. A call of async is the
// parameter list of an async arrow function.
func (p *Parser) arrowParams(ctx Context, expr IExpr) (Params, bool, bool) {
	params := Params{Range: expr.Span()}
	var list []IExpr
	async := false
	switch expr := expr.(type) {
	case *Var:
		list = []IExpr{expr}
	case *GroupExpr:
		if seq, ok := expr.X.(*SeqExpr); ok {
			list = seq.List
		} else {
			list = []IExpr{expr.X}
		}
	case *CallExpr:
		if v, ok := expr.X.(*Var); !ok || v.Name != "async" || expr.Optional {
			return params, false, false
		}
		async = true
		list = expr.Args.List
		if n := len(list); 0 < n {
			if spread, ok := list[n-1].(*SpreadExpr); ok {
				v, ok := spread.X.(*Var)
				if !ok {
					return params, true, false
				}
				params.Rest = &BindingElement{spread.Range, &BindingName{v.Range, v.Name}, nil}
				list = list[:n-1]
			}
		}
	default:
		return params, false, false
	}
	for _, item := range list {
		elem, ok := p.bindingElement(ctx, item)
		if !ok {
			return params, async, false
		}
		params.List = append(params.List, elem)
	}
	return params, async, true
}

// bindingElement converts an identifier or an assignment to an identifier into a parameter.
func (p *Parser) bindingElement(ctx Context, expr IExpr) (*BindingElement, bool) {
	switch expr := expr.(type) {
	case *Var:
		if expr.Name == "eval" || expr.Name == "arguments" {
			if ctx&Strict != 0 {
				return nil, false
			}
		}
		return &BindingElement{expr.Range, &BindingName{expr.Range, expr.Name}, nil}, true
	case *AssignExpr:
		if v, ok := expr.Left.(*Var); ok && expr.Op == Assign {
			return &BindingElement{expr.Range, &BindingName{v.Range, v.Name}, expr.Right}, true
		}
	}
	return nil, false
}

func (p *Parser) parseArrowFunction(ctx Context, start int, params Params, async bool) IExpr {
	p.nextToken(ctx | AllowRegExp)
	fctx := functionContext(ctx, async, false) | ctx&DisallowIn
	arrow := &ArrowFunc{Async: async, Params: params}
	if p.token == LeftBrace {
		arrow.Body = p.parseFunctionBody(fctx&^DisallowIn, ctx)
	} else {
		arrow.Expr = p.parseExpression(fctx)
	}
	arrow.Range = p.rangeFrom(ctx, start)
	return arrow
}

////////////////////////////////////////////////////////////////

func (p *Parser) parseArrayLiteral(ctx Context) IExpr {
	start := p.tokenPos
	p.nextToken(ctx | AllowRegExp)
	inner := ctx &^ DisallowIn
	array := &ArrayExpr{}
	for p.token != RightBracket && p.token != EndOfSource {
		if p.token == Comma {
			array.List = append(array.List, nil)
			p.nextToken(ctx | AllowRegExp)
			continue
		}
		if p.token == Ellipsis {
			spreadStart := p.tokenPos
			p.nextToken(ctx | AllowRegExp)
			x := p.parseExpression(inner)
			array.List = append(array.List, &SpreadExpr{p.rangeFrom(ctx, spreadStart), x})
		} else {
			array.List = append(array.List, p.parseExpression(inner))
		}
		if p.token == Comma {
			p.nextToken(ctx | AllowRegExp)
		} else if p.token != RightBracket {
			break
		}
	}
	p.consume(ctx|TaggedTemplate, RightBracket)
	array.Range = p.rangeFrom(ctx, start)
	return array
}

func (p *Parser) parseObjectLiteral(ctx Context) IExpr {
	start := p.tokenPos
	p.nextToken(ctx)
	inner := ctx &^ DisallowIn
	object := &ObjectExpr{}
	for p.token != RightBrace && p.token != EndOfSource {
		object.List = append(object.List, p.parseProperty(inner))
		if p.token == Comma {
			p.nextToken(ctx)
		} else if p.token != RightBrace {
			p.expected(Comma)
			break
		}
	}
	p.consumeRightBrace(ctx | TaggedTemplate)
	object.Range = p.rangeFrom(ctx, start)
	return object
}

// parseProperty parses a property definition of an object literal: a spread, a key-value pair, a shorthand
// property or a method, getter or setter.
func (p *Parser) parseProperty(ctx Context) *Property {
	start := p.tokenPos
	if p.token == Ellipsis {
		p.nextToken(ctx | AllowRegExp)
		x := p.parseExpression(ctx)
		return &Property{Range: p.rangeFrom(ctx, start), Kind: SpreadProperty, Value: x}
	}

	kind := InitProperty
	async, generator := false, false
	var name *PropertyName
	tok := p.token
	ident := p.token&IsIdentifier != 0 && p.token&IsReserved == 0
	if tok == AsyncKeyword || tok == GetKeyword || tok == SetKeyword {
		if name = p.parseModifier(ctx); name == nil {
			switch tok {
			case AsyncKeyword:
				async = true
				kind = MethodProperty
			case GetKeyword:
				kind = GetProperty
			case SetKeyword:
				kind = SetProperty
			}
		}
	}
	if name == nil && p.token == Multiply && kind != GetProperty && kind != SetProperty {
		generator = true
		kind = MethodProperty
		p.nextToken(ctx)
	}
	if name == nil {
		tok = p.token
		ident = p.token&IsIdentifier != 0 && p.token&IsReserved == 0
		pn := p.parsePropertyName(ctx)
		name = &pn
	}

	if kind != InitProperty || p.token == LeftParen {
		if kind == InitProperty {
			kind = MethodProperty
		}
		f := &FuncDecl{Async: async, Generator: generator}
		fnStart := p.tokenPos
		p.parseFunctionRest(ctx, f, ctx)
		f.Range = p.rangeFrom(ctx, fnStart)
		return &Property{p.rangeFrom(ctx, start), kind, *name, f}
	}

	switch p.token {
	case Colon:
		p.nextToken(ctx | AllowRegExp)
		value := p.parseExpression(ctx)
		return &Property{p.rangeFrom(ctx, start), InitProperty, *name, value}
	case Assign:
		// cover initialized name, only valid in destructuring patterns
		p.unexpected()
		p.nextToken(ctx | AllowRegExp)
		p.parseExpression(ctx)
	}

	v, ok := name.Key.(*Var)
	if !ok || name.Computed || !ident {
		p.expected(Colon)
		return &Property{p.rangeFrom(ctx, start), InitProperty, *name, &ErrorExpr{}}
	}
	if ctx&Strict != 0 && tok&IsFutureReserved != 0 {
		p.reportAt(start, ErrStrictReserved, v.Name)
	} else if tok == AwaitKeyword && ctx&(Module|InAsync) != 0 || tok == YieldKeyword && ctx&InGenerator != 0 {
		p.reportAt(start, ErrUnexpectedReserved, v.Name)
	}
	return &Property{p.rangeFrom(ctx, start), ShorthandProperty, *name, v}
}

// parsePropertyName parses a literal, identifier, private or computed property key.
func (p *Parser) parsePropertyName(ctx Context) PropertyName {
	start := p.tokenPos
	if p.token == LeftBracket {
		p.nextToken(ctx | AllowRegExp)
		key := p.parseExpression(ctx &^ DisallowIn)
		p.consume(ctx, RightBracket)
		return PropertyName{p.rangeFrom(ctx, start), key, true}
	} else if p.token&(IsIdentifier|IsStringOrNumber) == 0 && p.token != PrivateName {
		p.unexpected()
		if p.token != RightBrace && p.token != EndOfSource {
			p.nextToken(ctx)
		}
		return PropertyName{p.rangeFrom(ctx, start), &ErrorExpr{}, false}
	}

	tok, value, raw := p.token, p.tokenValue, p.tokenRaw
	if ctx&OptionsRaw == 0 {
		raw = ""
	}
	p.nextToken(ctx)
	r := p.rangeFrom(ctx, start)
	var key IExpr
	switch tok {
	case StringLiteral:
		key = &StringExpr{r, value.Str, raw}
	case NumericLiteral:
		key = &NumberExpr{r, value.Num, raw}
	case BigIntLiteral:
		n, _ := new(big.Int).SetString(value.Str, 0)
		key = &BigIntExpr{r, n, raw}
	case PrivateName:
		key = &PrivateExpr{r, value.Str}
	default:
		key = &Var{r, value.Str}
	}
	return PropertyName{r, key, false}
}
