package js

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tdewolff/test"
)

func TestParse(t *testing.T) {
	var parseTests = []struct {
		js       string
		expected string
	}{
		// statements
		{"", ""},
		{";", "Stmt(;)"},
		{"{}", "Stmt({ })"},
		{"{; a}", "Stmt({ Stmt(;) Stmt(a) })"},
		{"var a = 1, b", "Decl(var Binding(a = 1) Binding(b))"},
		{"let x = 5", "Decl(let Binding(x = 5))"},
		{"let = 5", "Stmt(let=5)"},
		{"let\nx = 1", "Decl(let Binding(x = 1))"},
		{"const a = 1", "Decl(const Binding(a = 1))"},
		{"if (a) b; else c", "Stmt(if a Stmt(b) else Stmt(c))"},
		{"if (a) {} else if (b) {}", "Stmt(if a Stmt({ }) else Stmt(if b Stmt({ })))"},
		{"while (i--) {}", "Stmt(while (i--) Stmt({ }))"},
		{"do x++; while (x < 5)", "Stmt(do Stmt(x++) while (x<5))"},
		{"do ; while (a) b", "Stmt(do Stmt(;) while a) Stmt(b)"},
		{"for (;;) {}", "Stmt(for ; ; Stmt({ }))"},
		{"for (var i = 0; i < n; i++) ;", "Stmt(for Decl(var Binding(i = 0)) ; (i<n) ; (i++) Stmt(;))"},
		{"for (i = 0, j = 1; ; ) ;", "Stmt(for ((i=0),(j=1)) ; ; Stmt(;))"},
		{"for (const k in o) {}", "Stmt(for Decl(const Binding(k)) in o Stmt({ }))"},
		{"for (x of [1, 2]) ;", "Stmt(for x of [1, 2] Stmt(;))"},
		{"for (let in a) ;", "Stmt(for let in a Stmt(;))"},
		{"for (a.b in c) ;", "Stmt(for a.b in c Stmt(;))"},
		{"for ((\"a\" in b);;) ;", "Stmt(for ((\"a\" in b)) ; ; Stmt(;))"},
		{"switch (a) { case 1: b; default: c }", "Stmt(switch a Clause(case 1 Stmt(b)) Clause(default Stmt(c)))"},
		{"switch (a) { case 1: case 2: break }", "Stmt(switch a Clause(case 1) Clause(case 2 Stmt(break)))"},
		{"try {} catch (e) {} finally {}", "Stmt(try Stmt({ }) catch Binding(e) Stmt({ }) finally Stmt({ }))"},
		{"try {} catch {}", "Stmt(try Stmt({ }) catch Stmt({ }))"},
		{"l: for (;;) { continue l }", "Stmt(l : Stmt(for ; ; Stmt({ Stmt(continue l) })))"},
		{"l: { break l }", "Stmt(l : Stmt({ Stmt(break l) }))"},
		{"return", "Stmt(return)"},
		{"return\na", "Stmt(return) Stmt(a)"},
		{"throw new Error()", "Stmt(throw (new Error()))"},
		{"with (a) b", "Stmt(with a Stmt(b))"},
		{"debugger", "Stmt(debugger)"},
		{"a+\nb", "Stmt(a+b)"},
		{"return /ab/", "Stmt(return /ab/)"},
		{"(a ?? b) || c", "Stmt(((a??b))||c)"},
		{"function f(){}", "Decl(function f Params() Stmt({ }))"},

		// declarations
		{"function f(a, b = 2, ...c) { return a }", "Decl(function f Params(Binding(a) , Binding(b = 2) , ... Binding(c)) Stmt({ Stmt(return a) }))"},
		{"async function* g() { yield* x; await y }", "Decl(async function* g Params() Stmt({ Stmt(yield* x) Stmt(await y) }))"},
		{"function* g() { yield\na }", "Decl(function* g Params() Stmt({ Stmt(yield) Stmt(a) }))"},
		{"function* g() { x = yield 1, 2 }", "Decl(function* g Params() Stmt({ Stmt((x=(yield 1)),2) }))"},
		{"function f() { new.target }", "Decl(function f Params() Stmt({ Stmt(new.target) }))"},
		{"class A extends B { static m() {} get x() {} }", "Decl(class A extends B Method(static m Params() Stmt({ })) Method(get x Params() Stmt({ })))"},
		{"class A { static() {} async *gen() {} set v(a) {}; ['c']() {} }", "Decl(class A Method(static Params() Stmt({ })) Method(async * gen Params() Stmt({ })) Method(set v Params(Binding(a)) Stmt({ })) Method([\"c\"] Params() Stmt({ })))"},
		{"class A { constructor() { super() } }", "Decl(class A Method(constructor Params() Stmt({ Stmt(super()) })))"},
		{"async\nfunction f() {}", "Stmt(async) Decl(function f Params() Stmt({ }))"},

		// expressions
		{"a = b + c * d;", "Stmt(a=(b+(c*d)))"},
		{"a - b - c", "Stmt((a-b)-c)"},
		{"a ** b ** c", "Stmt(a**(b**c))"},
		{"(-a) ** b", "Stmt(((-a))**b)"},
		{"a = b = c", "Stmt(a=(b=c))"},
		{"a += 1", "Stmt(a+=1)"},
		{"a ??= b", "Stmt(a??=b)"},
		{"a ? b : c ? d : e", "Stmt(a ? b : (c ? d : e))"},
		{"a || b && c", "Stmt(a||(b&&c))"},
		{"a ?? b", "Stmt(a??b)"},
		{"(a || b) ?? c", "Stmt(((a||b))??c)"},
		{"a < b == c", "Stmt((a<b)==c)"},
		{"a instanceof B", "Stmt(a instanceof B)"},
		{"'a' in b", "Stmt(\"a\" in b)"},
		{"typeof a === 'b'", "Stmt((typeof a)===\"b\")"},
		{"void 0", "Stmt(void 0)"},
		{"!a", "Stmt(!a)"},
		{"- -a", "Stmt(-(-a))"},
		{"a, b", "Stmt(a,b)"},
		{"a\n++b", "Stmt(a) Stmt(++b)"},
		{"a++\nb", "Stmt(a++) Stmt(b)"},
		{"a\n(b)", "Stmt(a(b))"},
		{"x = y\n/re/g", "Stmt(x=((y/re)/g))"},
		{"/ab+c/gi.test(s)", "Stmt(/ab+c/gi.test(s))"},
		{"a.b[c](d, ...e)", "Stmt(a.b[c](d, ...e))"},
		{"a.if.class", "Stmt(a.if.class)"},
		{"a?.b.c", "Stmt(a?.b.c)"},
		{"a?.[0]?.(1)", "Stmt(a?.[0]?.(1))"},
		{"new A(1, 2)", "Stmt(new A(1, 2))"},
		{"new A", "Stmt(new A)"},
		{"new new A", "Stmt(new (new A))"},
		{"new A.b()", "Stmt(new A.b())"},
		{"new A().b", "Stmt(new A()).b"},
		{"this.x", "Stmt(this.x)"},
		{"null", "Stmt(null)"},
		{"true", "Stmt(true)"},
		{"0x10n", "Stmt(16n)"},
		{"1.5e3", "Stmt(1500)"},
		{".5", "Stmt(0.5)"},
		{"'\\x41'", "Stmt(\"A\")"},
		{"[1, , 2]", "Stmt([1, , 2])"},
		{"[a, ...b]", "Stmt([a, ...b])"},
		{"[,]", "Stmt([,])"},
		{"x = {}", "Stmt(x={})"},
		{"x = {a, b: 1, [c]: 2, 'd': 3, 4: 5, m() {}, get g() {}, ...d}", "Stmt(x={a, b: 1, [c]: 2, \"d\": 3, 4: 5, m Params() Stmt({ }), get g Params() Stmt({ }), ...d})"},
		{"x = {get, set: 1, async}", "Stmt(x={get, set: 1, async})"},
		{"x = {async *m() {}, *n() {}}", "Stmt(x={m Params() Stmt({ }), n Params() Stmt({ })})"},
		{"x = {if: 1}", "Stmt(x={if: 1})"},
		{"`a${b}c`", "Stmt(`a${b}c`)"},
		{"`a${b}c${d}e`", "Stmt(`a${b}c${d}e`)"},
		{"`a${`b${c}`}`", "Stmt(`a${`b${c}`}`)"},
		{"`${ {a} }`", "Stmt(`${{a}}`)"},
		{"tag`x`", "Stmt(tag`x`)"},
		{"a.b`\\unicode`", "Stmt(a.b`\\unicode`)"},
		{"x = function () {}", "Stmt(x=Decl(function Params() Stmt({ })))"},
		{"x = class {}", "Stmt(x=Decl(class))"},
		{"x => x * 2", "Stmt(Params(Binding(x)) => (x*2))"},
		{"(a, b = 1) => {}", "Stmt(Params(Binding(a) , Binding(b = 1)) => Stmt({ }))"},
		{"() => 1", "Stmt(Params() => 1)"},
		{"(...a) => a", "Stmt(Params(... Binding(a)) => a)"},
		{"(a, ...b) => a", "Stmt(Params(Binding(a) , ... Binding(b)) => a)"},
		{"async x => x", "Stmt(async Params(Binding(x)) => x)"},
		{"async (a) => await a", "Stmt(async Params(Binding(a)) => (await a))"},
		{"(a,) => a", "Stmt(Params(Binding(a)) => a)"},
		{"async (a)", "Stmt(async(a))"},
		{"async", "Stmt(async)"},
		{"x = async function () {}", "Stmt(x=Decl(async function Params() Stmt({ })))"},
		{"(a)", "Stmt(a)"},
		{"(a, b)", "Stmt((a,b))"},
		{"(a) = 1", "Stmt((a)=1)"},
		{"yield = 1", "Stmt(yield=1)"},
		{"await = 1", "Stmt(await=1)"},
		{"let.a", "Stmt(let.a)"},
		{"of + as", "Stmt(of+as)"},

		// directives
		{"'use strict'; x", "Stmt(\"use strict\") Stmt(x)"},
		{"'use strict'\nx", "Stmt(\"use strict\") Stmt(x)"},
		{"'use strict' + x", "Stmt(\"use strict\"+x)"},
		{"'a'\n+ x", "Stmt(\"a\"+x)"},
		{"function f() { 'use strict' } with (a) b", "Decl(function f Params() Stmt({ Stmt(\"use strict\") })) Stmt(with a Stmt(b))"},

		// automatic semicolon insertion
		{"a\nb", "Stmt(a) Stmt(b)"},
		{"{ a } b", "Stmt({ Stmt(a) }) Stmt(b)"},
		{"var a\nvar b", "Decl(var Binding(a)) Decl(var Binding(b))"},
		{"x\n`a`", "Stmt(x`a`)"},
	}
	for _, tt := range parseTests {
		t.Run(tt.js, func(t *testing.T) {
			ast, err := ParseString(tt.js, Options{})
			test.Error(t, err)
			test.String(t, ast.String(), tt.expected)
		})
	}
}

func TestParseOptions(t *testing.T) {
	var parseTests = []struct {
		js       string
		o        Options
		expected string
	}{
		{"if (a) function f() {}", Options{WebCompat: true}, "Stmt(if a Decl(function f Params() Stmt({ })))"},
		{"l: function f() {}", Options{WebCompat: true}, "Stmt(l : Decl(function f Params() Stmt({ })))"},
		{"for (var a = 1 in b) ;", Options{WebCompat: true}, "Stmt(for Decl(var Binding(a = 1)) in b Stmt(;))"},
		{"x <!-- y\n--> z\ny", Options{WebCompat: true}, "Stmt(x) Stmt(y)"},
		{"0x1F", Options{Raw: true}, "Stmt(0x1F)"},
		{"1_000n", Options{Raw: true}, "Stmt(1_000n)"},
		{"this.#x", Options{Next: true}, "Stmt(this.#x)"},
		{"a?.#x", Options{Next: true}, "Stmt(a?.#x)"},
		{"x = 1", Options{Module: true}, "Stmt(x=1)"},
	}
	for _, tt := range parseTests {
		t.Run(tt.js, func(t *testing.T) {
			ast, err := ParseString(tt.js, tt.o)
			test.Error(t, err)
			test.String(t, ast.String(), tt.expected)
		})
	}
}

func TestParseError(t *testing.T) {
	var parseTests = []struct {
		js     string
		o      Options
		err    string
		offset int
	}{
		{"a b", Options{}, "Expected ';'", 2},
		{"(a", Options{}, "Unexpected end of source", 2},
		{"1 = 2", Options{}, "Invalid left-hand side in assignment", 2},
		{"a + b = 2", Options{}, "Invalid left-hand side in assignment", 6},
		{"a++ = 1", Options{}, "Invalid left-hand side in assignment", 4},
		{"1++", Options{}, "Invalid left-hand side expression in postfix operation", 1},
		{"++1", Options{}, "Invalid left-hand side expression in prefix operation", 3},
		{"break;", Options{}, "Illegal break statement", 0},
		{"continue", Options{}, "Illegal continue statement: no surrounding iteration statement", 0},
		{"switch (a) { case 1: continue }", Options{}, "Illegal continue statement: no surrounding iteration statement", 21},
		{"function f() { for (;;) { function g() { break } } }", Options{}, "Illegal break statement", 41},
		{"throw\na", Options{}, "Illegal newline after throw", 6},
		{"var if = 1", Options{}, "Unexpected reserved word 'if'", 4},
		{"a = {if}", Options{}, "Expected ':'", 7},
		{"\\u0069f (a) b", Options{}, "Keywords cannot contain escape characters", 0},
		{"var \\u0069f", Options{}, "Keywords cannot contain escape characters", 4},
		{"'\\07'; 'use strict'", Options{}, "Octal escape sequences are not allowed in strict mode", 7},
		{"function f() { '\\07'; 'use strict' }", Options{}, "Octal escape sequences are not allowed in strict mode", 22},
		{"'a'; '\\07'; 'use strict'", Options{}, "Octal escape sequences are not allowed in strict mode", 12},
		{"'use strict'; 010", Options{}, "Octal literals are not allowed in strict mode", 17},
		{"'use strict'; with (a) b", Options{}, "Strict mode code may not include a with statement", 14},
		{"'use strict'; var let = 1", Options{}, "Unexpected strict mode reserved word 'let'", 18},
		{"'use strict'; x = {static}", Options{}, "Unexpected strict mode reserved word 'static'", 19},
		{"function f() { 'use strict'; with (a) b }", Options{}, "Strict mode code may not include a with statement", 29},
		{"class A { m() { with (a) b } }", Options{}, "Strict mode code may not include a with statement", 16},
		{"'use strict'; if (a) function f() {}", Options{WebCompat: true}, "In strict mode code or without web compatibility, functions can only be declared at top level or inside a block", 21},
		{"if (a) function f() {}", Options{}, "In strict mode code or without web compatibility, functions can only be declared at top level or inside a block", 7},
		{"while (a) class A {}", Options{}, "Unexpected token: 'class'", 10},
		{"for (var a = 1 of b) {}", Options{}, "for-of loop variable declaration may not have an initializer", 15},
		{"for (let a = 1 in b) {}", Options{WebCompat: true}, "for-in loop variable declaration may not have an initializer", 15},
		{"for (a + b in c) ;", Options{}, "Invalid left-hand side in for-in loop", 11},
		{"for (let a, b of c) ;", Options{}, "Invalid left-hand side in for-of loop", 14},
		{"for (const a; ;) ;", Options{}, "Expected '='", 12},
		{"const a;", Options{}, "Expected '='", 7},
		{"(a + b) => 1", Options{}, "Invalid arrow function parameters", 8},
		{"a\n=> 1", Options{}, "Invalid arrow function parameters", 2},
		{"'use strict'; (eval) => 1", Options{}, "Invalid arrow function parameters", 21},
		{"async\n(a) => b", Options{}, "Invalid arrow function parameters", 10},
		{"(a,)", Options{}, "Unexpected token", 3},
		{"(a, b,) + 1", Options{}, "Unexpected token", 6},
		{"-a++(b)", Options{}, "Expected ';'", 4},
		{"typeof a++ .x", Options{}, "Expected ';'", 11},
		{"async function f() { await a++ (b) }", Options{}, "Expected ';'", 31},
		{"()", Options{}, "Unexpected end of source", 2},
		{"(...a)", Options{}, "Unexpected end of source", 6},
		{"a ?? b || c", Options{}, "Coalescing and logical operators used together in the same expression must be disambiguated with parentheses", 7},
		{"a || b ?? c", Options{}, "Coalescing and logical operators used together in the same expression must be disambiguated with parentheses", 7},
		{"a ?? b + c || d", Options{}, "Coalescing and logical operators used together in the same expression must be disambiguated with parentheses", 11},
		{"-a ** b", Options{}, "Unary operator used immediately before exponentiation expression. Parenthesis must be used to disambiguate operator precedence", 3},
		{"async function f() { await a ** b }", Options{}, "Unary operator used immediately before exponentiation expression. Parenthesis must be used to disambiguate operator precedence", 29},
		{"super", Options{}, "'super' keyword unexpected here", 0},
		{"new.target", Options{}, "Unexpected token: 'new.target'", 0},
		{"new.foo", Options{}, "Expected 'target'", 4},
		{"a?.b`c`", Options{}, "Unexpected token: '`'", 4},
		{"new a?.b", Options{}, "Unexpected token: '?.'", 5},
		{"try {} x", Options{}, "Expected 'catch'", 7},
		{"{ a", Options{}, "Expected a closing curly brace `}`", 3},
		{"x = {a = 1}", Options{}, "Unexpected token: '='", 7},
		{"x = {a b}", Options{}, "Expected ','", 7},
		{"switch (a) { default: default: }", Options{}, "Unexpected token: 'default'", 22},
		{"function* g() { var yield }", Options{}, "Unexpected reserved word 'yield'", 20},
		{"async function f() { var await }", Options{}, "Unexpected reserved word 'await'", 25},
		{"var await", Options{Module: true}, "Unexpected reserved word 'await'", 4},
		{"with (a) b", Options{Module: true}, "Strict mode code may not include a with statement", 0},
		{"<!-- x", Options{WebCompat: true, Module: true}, "HTML comments are only allowed with web compatibility (Annex B)", 1},
		{"<div/>", Options{JSX: true}, "JSX syntax is not supported", 0},
		{"this.#x", Options{}, "Invalid character", 6},
		{"function f(", Options{}, "Unexpected end of source", 11},
		{"class { }", Options{}, "Expected 'identifier'", 6},
		{"function () {}", Options{}, "Expected 'identifier'", 9},
		{"a = 'b", Options{}, "Unterminated string literal", 6},
		{")", Options{}, "Unexpected token: ')'", 0},
	}
	for _, tt := range parseTests {
		t.Run(tt.js, func(t *testing.T) {
			_, err := ParseString(tt.js, tt.o)
			if !assert.Error(t, err) {
				return
			}
			e := asError(err)
			test.String(t, e.Message, tt.err)
			test.T(t, e.Offset, tt.offset, "offset")
		})
	}
}

func TestParseErrorPosition(t *testing.T) {
	_, err := ParseString("var a = 1;\nvar b = ;", Options{})
	e := asError(err)
	test.String(t, e.Message, "Unexpected token: ';'")
	line, column, context := e.Position()
	test.T(t, line, 2)
	test.T(t, column, 9)
	test.String(t, context, "    2: var b = ;\n"+strings.Repeat(" ", 15)+"^")
	test.String(t, err.Error(), "Unexpected token: ';' on line 2 and column 9\n"+context)
}

func TestParseRecovery(t *testing.T) {
	var parseTests = []struct {
		js       string
		expected string
		errs     []string
	}{
		{"a b; c", "Stmt(a) Stmt(b) Stmt(c)", []string{"Expected ';'"}},
		{"a = ;\nb", "Stmt(a=Error) Stmt(b)", []string{"Unexpected token: ';'"}},
		{"x = 'abc\ny", "Stmt(x=Error) Stmt(y)", []string{"Unterminated string literal, strings cannot span lines without escaping"}},
		{"1 = 2; break", "Stmt(1=2) Stmt(break)", []string{"Invalid left-hand side in assignment", "Illegal break statement"}},
		{"a @ b", "Stmt(a) Stmt(Error) Stmt(b)", []string{"Invalid character", "Expected ';'"}},
		{"'\\8'; x = 1__0", "Stmt(Error) Stmt(x=Error) Stmt(_0)", []string{"Escapes \\8 or \\9 are not syntactically valid escapes", "Only one underscore is allowed as numeric separator", "Expected ';'"}},
	}
	for _, tt := range parseTests {
		t.Run(tt.js, func(t *testing.T) {
			var msgs []string
			ast, err := ParseString(tt.js, Options{OnError: func(msg string) {
				msgs = append(msgs, msg)
			}})
			test.Error(t, err)
			test.String(t, ast.String(), tt.expected)
			test.T(t, msgs, tt.errs)
			test.T(t, len(ast.Errors), len(tt.errs))
		})
	}
}

func TestParseTooDeep(t *testing.T) {
	js := strings.Repeat("(", 100) + "a" + strings.Repeat(")", 100)
	_, err := ParseString(js, Options{MaxDepth: 50})
	test.String(t, errorMessage(err), "Maximum nesting depth exceeded")

	// fatal in recovery mode as well
	n := 0
	_, err = ParseString(js, Options{MaxDepth: 50, OnError: func(string) { n++ }})
	test.String(t, errorMessage(err), "Maximum nesting depth exceeded")
	test.T(t, n, 1)

	_, err = ParseString(strings.Repeat("{", 100)+strings.Repeat("}", 100), Options{MaxDepth: 50})
	test.String(t, errorMessage(err), "Maximum nesting depth exceeded")

	_, err = ParseString(strings.Repeat("new ", 50)+"a", Options{MaxDepth: 10})
	test.String(t, errorMessage(err), "Maximum nesting depth exceeded")

	_, err = ParseString(strings.Repeat("a ** ", 50)+"a", Options{MaxDepth: 10})
	test.String(t, errorMessage(err), "Maximum nesting depth exceeded")

	_, err = ParseString(js, Options{})
	test.Error(t, err)
}

func TestParseRanges(t *testing.T) {
	ast, err := ParseString("a + b;\n  f(1)", Options{Ranges: true})
	test.Error(t, err)
	test.T(t, ast.Range, Range{0, 13})
	test.T(t, len(ast.List), 2)

	stmt := ast.List[0].(*ExprStmt)
	test.T(t, stmt.Range, Range{0, 6})
	binary := stmt.Value.(*BinaryExpr)
	test.T(t, binary.Range, Range{0, 5})
	test.T(t, binary.Y.Span(), Range{4, 5})

	call := ast.List[1].(*ExprStmt).Value.(*CallExpr)
	test.T(t, call.Range, Range{9, 13})
	test.T(t, call.Args.Range, Range{10, 13})
	test.T(t, call.Args.List[0].Span(), Range{11, 12})

	ast, err = ParseString("a + b;", Options{})
	test.Error(t, err)
	test.T(t, ast.List[0].Span(), Range{})
}

func TestParseDirective(t *testing.T) {
	ast, err := ParseString("'use strict'; 'b'\n'c' + d", Options{})
	test.Error(t, err)
	test.T(t, len(ast.List), 3)
	test.String(t, ast.List[0].(*ExprStmt).Directive, "use strict")
	test.String(t, ast.List[1].(*ExprStmt).Directive, "b")
	test.String(t, ast.List[2].(*ExprStmt).Directive, "")

	// an escaped spelling is not a use strict directive
	_, err = ParseString("'use\\x20strict'; with (a) b", Options{})
	test.Error(t, err)
}

func TestParseTemplateElements(t *testing.T) {
	ast, err := ParseString("tag`\\unicode${a}\\n\r\n`", Options{})
	test.Error(t, err)
	tmpl := ast.List[0].(*ExprStmt).Value.(*TemplateExpr)
	test.T(t, len(tmpl.Quasis), 2)
	test.That(t, tmpl.Quasis[0].Undefined, "cooked value of an invalid escape is undefined")
	test.String(t, tmpl.Quasis[0].Raw, "\\unicode")
	test.String(t, tmpl.Quasis[1].Cooked, "\n\n")
	test.String(t, tmpl.Quasis[1].Raw, "\\n\r\n")
	test.String(t, tmpl.Tag.String(), "tag")
}

func TestParseTokens(t *testing.T) {
	var toks []Token
	var spans [][2]int
	_, err := ParseString("a = 1; `b${c}`", Options{OnToken: func(tok Token, start, end int) {
		toks = append(toks, tok)
		spans = append(spans, [2]int{start, end})
	}})
	test.Error(t, err)
	test.T(t, toks, []Token{Identifier, Assign, NumericLiteral, Semicolon, TemplateHead, Identifier, TemplateTail})
	test.T(t, spans[:4], [][2]int{{0, 1}, {2, 3}, {4, 5}, {5, 6}})
}

func TestParseComments(t *testing.T) {
	var comments []Comment
	ast, err := Parse(strings.NewReader("/* a */ x // b"), Options{Comments: &comments})
	test.Error(t, err)
	test.String(t, ast.String(), "Stmt(x)")
	test.T(t, comments, []Comment{{MultiLineComment, " a ", 0, 7}, {SingleLineComment, " b", 10, 14}})
}

func TestParseRealWorld(t *testing.T) {
	js := "var counter = (function () {\n" +
		"\t'use strict';\n" +
		"\tvar count = 0, items = ['a', \"b\", `c${1 + 2}`];\n" +
		"\tfunction next(step = 1) {\n" +
		"\t\tcount += step;\n" +
		"\t\treturn count > 10 ? null : items[count % items.length];\n" +
		"\t}\n" +
		"\treturn { next, reset() { count = 0 }, get value() { return count } };\n" +
		"}());\n" +
		"for (let i = 0; i < 3; i++) console.log(counter.next(i) ?? 'none');\n" +
		"loop: while (true) { if (!counter.value) break loop; else continue loop; }\n"

	ast, err := ParseString(js, Options{})
	test.Error(t, err)
	test.T(t, len(ast.List), 3)
}

func TestParseModule(t *testing.T) {
	ast, err := ParseString("x", Options{Module: true})
	test.Error(t, err)
	test.That(t, ast.Module, "module goal")

	ast, err = ParseString("x", Options{})
	test.Error(t, err)
	test.That(t, !ast.Module, "script goal")
}

////////////////////////////////////////////////////////////////

func ExampleParseString() {
	ast, err := ParseString("x = y ?? 5 + 3", Options{})
	if err != nil {
		panic(err)
	}
	fmt.Println(ast)
	// Output: Stmt(x=(y??(5+3)))
}

func ExampleParseString_recovery() {
	ast, _ := ParseString("a = ;\nb", Options{
		OnError: func(msg string) {
			fmt.Println("error:", msg)
		},
	})
	fmt.Println(ast)
	// Output:
	// error: Unexpected token: ';'
	// Stmt(a=Error) Stmt(b)
}
