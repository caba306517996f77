package js

import (
	"testing"

	"github.com/tdewolff/test"
)

type renamer struct {
	from, to string
}

func (w *renamer) Enter(n INode) IVisitor {
	switch n := n.(type) {
	case *Var:
		if n.Name == w.from {
			n.Name = w.to
		}
	case *BindingName:
		if n.Name == w.from {
			n.Name = w.to
		}
	}
	return w
}

type counter struct {
	nodes int
	skip  bool
}

func (w *counter) Enter(n INode) IVisitor {
	w.nodes++
	if _, ok := n.(*FuncDecl); ok && w.skip {
		return nil
	}
	return w
}

func TestWalk(t *testing.T) {
	js := `
	var a = x;
	function f(x, b = x) { return x + b }
	if (true) {
		for (i = 0; i < 1; i++) {
			x.y = {x, [x]: x}
		}
	}`

	ast, err := ParseString(js, Options{})
	test.Error(t, err)

	Walk(&renamer{"x", "obj"}, ast)
	test.String(t, ast.String(), "Decl(var Binding(a = obj)) Decl(function f Params(Binding(obj) , Binding(b = obj)) Stmt({ Stmt(return (obj+b)) })) Stmt(if true Stmt({ Stmt(for (i=0) ; (i<1) ; (i++) Stmt({ Stmt(obj.y={obj, [obj]: obj}) })) }))")
}

func TestWalkSkip(t *testing.T) {
	ast, err := ParseString("function f() { a; b } c", Options{})
	test.Error(t, err)

	v := &counter{}
	Walk(v, ast)
	all := v.nodes

	v = &counter{skip: true}
	Walk(v, ast)
	test.T(t, v.nodes, 4, "AST, FuncDecl, ExprStmt and Var")
	test.That(t, v.nodes < all, "children of a skipped node are not visited")
}

func TestWalkNil(t *testing.T) {
	v := &counter{}
	Walk(v, nil)
	test.T(t, v.nodes, 0)
}
