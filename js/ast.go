package js

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/GuyLewin/meriyah"
)

// AST is the syntax tree of a script or module.
type AST struct {
	Range
	Module bool
	List   []IStmt
	Errors []*meriyah.Error // recovered diagnostics, only in recovery mode
}

func (n AST) String() string {
	return strings.Join(nodeStrings(n.List), " ")
}

////////////////////////////////////////////////////////////////

// Range is the source range of a node as byte offsets. It is only filled in when the Ranges option is set.
type Range struct {
	Start, End int
}

// Span returns the source range of the node.
func (r Range) Span() Range {
	return r
}

type INode interface {
	String() string
	Span() Range
}

type IStmt interface {
	INode
	stmtNode()
}

type IBinding interface {
	INode
	bindingNode()
}

type IExpr interface {
	INode
	exprNode()
}

// printNode formats a node as kind(parts) with the non-empty parts separated by spaces.
func printNode(kind string, parts ...string) string {
	sb := strings.Builder{}
	sb.WriteString(kind)
	sb.WriteByte('(')
	n := 0
	for _, part := range parts {
		if part == "" {
			continue
		}
		if n != 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(part)
		n++
	}
	sb.WriteByte(')')
	return sb.String()
}

func nodeStrings[T INode](list []T) []string {
	ss := make([]string, 0, len(list))
	for _, item := range list {
		ss = append(ss, item.String())
	}
	return ss
}

// optional returns the node preceded by prefix, or the empty string when the node is nil.
func optional(prefix string, n INode) string {
	if n == nil {
		return ""
	} else if prefix == "" {
		return n.String()
	}
	return prefix + " " + n.String()
}

////////////////////////////////////////////////////////////////

type BlockStmt struct {
	Range
	List []IStmt
}

func (n BlockStmt) String() string {
	parts := append([]string{"{"}, nodeStrings(n.List)...)
	return printNode("Stmt", append(parts, "}")...)
}

type BranchStmt struct {
	Range
	Type  Token  // BreakKeyword or ContinueKeyword
	Label string // can be empty
}

func (n BranchStmt) String() string {
	return printNode("Stmt", n.Type.String(), n.Label)
}

type LabelledStmt struct {
	Range
	Label string
	Value IStmt
}

func (n LabelledStmt) String() string {
	return printNode("Stmt", n.Label, ":", n.Value.String())
}

type ReturnStmt struct {
	Range
	Value IExpr // can be nil
}

func (n ReturnStmt) String() string {
	return printNode("Stmt", "return", optional("", n.Value))
}

type IfStmt struct {
	Range
	Cond IExpr
	Body IStmt
	Else IStmt // can be nil
}

func (n IfStmt) String() string {
	return printNode("Stmt", "if", n.Cond.String(), n.Body.String(), optional("else", n.Else))
}

type WithStmt struct {
	Range
	Cond IExpr
	Body IStmt
}

func (n WithStmt) String() string {
	return printNode("Stmt", "with", n.Cond.String(), n.Body.String())
}

type DoWhileStmt struct {
	Range
	Cond IExpr
	Body IStmt
}

func (n DoWhileStmt) String() string {
	return printNode("Stmt", "do", n.Body.String(), "while", n.Cond.String())
}

type WhileStmt struct {
	Range
	Cond IExpr
	Body IStmt
}

func (n WhileStmt) String() string {
	return printNode("Stmt", "while", n.Cond.String(), n.Body.String())
}

type ForStmt struct {
	Range
	Init IExpr // can be nil, VarDecl or expression
	Cond IExpr // can be nil
	Post IExpr // can be nil
	Body IStmt
}

func (n ForStmt) String() string {
	return printNode("Stmt", "for", optional("", n.Init), ";", optional("", n.Cond), ";", optional("", n.Post), n.Body.String())
}

type ForInStmt struct {
	Range
	Init  IExpr // VarDecl or assignment target
	Value IExpr
	Body  IStmt
}

func (n ForInStmt) String() string {
	return printNode("Stmt", "for", n.Init.String(), "in", n.Value.String(), n.Body.String())
}

type ForOfStmt struct {
	Range
	Init  IExpr // VarDecl or assignment target
	Value IExpr
	Body  IStmt
}

func (n ForOfStmt) String() string {
	return printNode("Stmt", "for", n.Init.String(), "of", n.Value.String(), n.Body.String())
}

type CaseClause struct {
	Range
	Type Token // CaseKeyword or DefaultKeyword
	Cond IExpr // can be nil
	Body []IStmt
}

func (n CaseClause) String() string {
	parts := []string{n.Type.String(), optional("", n.Cond)}
	return printNode("Clause", append(parts, nodeStrings(n.Body)...)...)
}

type SwitchStmt struct {
	Range
	Init IExpr
	List []*CaseClause
}

func (n SwitchStmt) String() string {
	parts := []string{"switch", n.Init.String()}
	return printNode("Stmt", append(parts, nodeStrings(n.List)...)...)
}

type ThrowStmt struct {
	Range
	Value IExpr
}

func (n ThrowStmt) String() string {
	return printNode("Stmt", "throw", n.Value.String())
}

type TryStmt struct {
	Range
	Body    *BlockStmt
	Binding IBinding   // can be nil
	Catch   *BlockStmt // can be nil
	Finally *BlockStmt // can be nil
}

func (n TryStmt) String() string {
	parts := []string{"try", n.Body.String()}
	if n.Catch != nil {
		parts = append(parts, "catch")
		if n.Binding != nil {
			parts = append(parts, printNode("Binding", n.Binding.String()))
		}
		parts = append(parts, n.Catch.String())
	}
	if n.Finally != nil {
		parts = append(parts, "finally", n.Finally.String())
	}
	return printNode("Stmt", parts...)
}

type DebuggerStmt struct {
	Range
}

func (n DebuggerStmt) String() string {
	return "Stmt(debugger)"
}

type EmptyStmt struct {
	Range
}

func (n EmptyStmt) String() string {
	return "Stmt(;)"
}

type ExprStmt struct {
	Range
	Value     IExpr
	Directive string // raw directive text for directive prologue strings, such as use strict
}

func (n ExprStmt) String() string {
	val := n.Value.String()
	if val[0] == '(' {
		return "Stmt" + val
	}
	return "Stmt(" + val + ")"
}

func (n BlockStmt) stmtNode()    {}
func (n BranchStmt) stmtNode()   {}
func (n LabelledStmt) stmtNode() {}
func (n ReturnStmt) stmtNode()   {}
func (n IfStmt) stmtNode()       {}
func (n WithStmt) stmtNode()     {}
func (n DoWhileStmt) stmtNode()  {}
func (n WhileStmt) stmtNode()    {}
func (n ForStmt) stmtNode()      {}
func (n ForInStmt) stmtNode()    {}
func (n ForOfStmt) stmtNode()    {}
func (n SwitchStmt) stmtNode()   {}
func (n ThrowStmt) stmtNode()    {}
func (n TryStmt) stmtNode()      {}
func (n DebuggerStmt) stmtNode() {}
func (n EmptyStmt) stmtNode()    {}
func (n ExprStmt) stmtNode()     {}

////////////////////////////////////////////////////////////////

type BindingName struct {
	Range
	Name string
}

func (n BindingName) String() string {
	return n.Name
}

type BindingElement struct {
	Range
	Binding IBinding
	Default IExpr // can be nil
}

func (n BindingElement) String() string {
	return printNode("Binding", n.Binding.String(), optional("=", n.Default))
}

func (n BindingName) bindingNode() {}

type Params struct {
	Range
	List []*BindingElement
	Rest *BindingElement // can be nil
}

func (n Params) String() string {
	parts := nodeStrings(n.List)
	if n.Rest != nil {
		parts = append(parts, "... "+n.Rest.String())
	}
	return "Params(" + strings.Join(parts, " , ") + ")"
}

type VarDecl struct {
	Range
	Type Token // VarKeyword, LetKeyword or ConstKeyword
	List []*BindingElement
}

func (n VarDecl) String() string {
	parts := append([]string{n.Type.String()}, nodeStrings(n.List)...)
	return printNode("Decl", parts...)
}

type FuncDecl struct {
	Range
	Async     bool
	Generator bool
	Name      *BindingName // can be nil
	Params    Params
	Body      BlockStmt
}

func (n FuncDecl) String() string {
	keyword := "function"
	if n.Async {
		keyword = "async function"
	}
	if n.Generator {
		keyword += "*"
	}
	name := ""
	if n.Name != nil {
		name = n.Name.Name
	}
	return printNode("Decl", keyword, name, n.Params.String(), n.Body.String())
}

type ClassDecl struct {
	Range
	Name    *BindingName // can be nil
	Extends IExpr        // can be nil
	Methods []*MethodDecl
}

func (n ClassDecl) String() string {
	parts := []string{"class"}
	if n.Name != nil {
		parts = append(parts, n.Name.Name)
	}
	parts = append(parts, optional("extends", n.Extends))
	return printNode("Decl", append(parts, nodeStrings(n.Methods)...)...)
}

type MethodDecl struct {
	Range
	Static    bool
	Async     bool
	Generator bool
	Get       bool
	Set       bool
	Name      PropertyName
	Params    Params
	Body      BlockStmt
}

func (n MethodDecl) String() string {
	var parts []string
	for _, mod := range []struct {
		set  bool
		name string
	}{{n.Static, "static"}, {n.Async, "async"}, {n.Generator, "*"}, {n.Get, "get"}, {n.Set, "set"}} {
		if mod.set {
			parts = append(parts, mod.name)
		}
	}
	parts = append(parts, n.Name.String(), n.Params.String(), n.Body.String())
	return printNode("Method", parts...)
}

type ArrowFunc struct {
	Range
	Async  bool
	Params Params
	Body   BlockStmt
	Expr   IExpr // concise body, can be nil
}

func (n ArrowFunc) String() string {
	s := "("
	if n.Async {
		s += "async "
	}
	s += n.Params.String() + " => "
	if n.Expr != nil {
		return s + n.Expr.String() + ")"
	}
	return s + n.Body.String() + ")"
}

func (n VarDecl) stmtNode()   {}
func (n FuncDecl) stmtNode()  {}
func (n ClassDecl) stmtNode() {}

func (n VarDecl) exprNode()    {}
func (n FuncDecl) exprNode()   {}
func (n ClassDecl) exprNode()  {}
func (n MethodDecl) exprNode() {}
func (n ArrowFunc) exprNode()  {}

////////////////////////////////////////////////////////////////

// PropertyName is the key of a property or method.
type PropertyName struct {
	Range
	Key      IExpr // Var for identifier names, StringExpr, NumberExpr, PrivateExpr or the computed expression
	Computed bool
}

func (n PropertyName) String() string {
	if n.Computed {
		return "[" + n.Key.String() + "]"
	}
	return n.Key.String()
}

// PropertyKind is the kind of object literal property.
type PropertyKind uint8

// PropertyKind values.
const (
	InitProperty PropertyKind = iota // key: value
	ShorthandProperty
	MethodProperty
	GetProperty
	SetProperty
	SpreadProperty
)

type Property struct {
	Range
	Kind  PropertyKind
	Name  PropertyName // empty for spread
	Value IExpr        // value, FuncDecl for methods, or spread argument
}

func (n Property) String() string {
	switch n.Kind {
	case ShorthandProperty:
		return n.Name.String()
	case SpreadProperty:
		return "..." + n.Value.String()
	case MethodProperty, GetProperty, SetProperty:
		s := ""
		if n.Kind == GetProperty {
			s = "get "
		} else if n.Kind == SetProperty {
			s = "set "
		}
		if f, ok := n.Value.(*FuncDecl); ok {
			return s + n.Name.String() + " " + f.Params.String() + " " + f.Body.String()
		}
	}
	return n.Name.String() + ": " + n.Value.String()
}

type Var struct {
	Range
	Name string
}

func (n Var) String() string {
	return n.Name
}

type PrivateExpr struct {
	Range
	Name string
}

func (n PrivateExpr) String() string {
	return "#" + n.Name
}

type NumberExpr struct {
	Range
	Value float64
	Raw   string // only with the Raw option
}

func (n NumberExpr) String() string {
	if n.Raw != "" {
		return n.Raw
	}
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

type BigIntExpr struct {
	Range
	Value *big.Int
	Raw   string // only with the Raw option
}

func (n BigIntExpr) String() string {
	if n.Raw != "" {
		return n.Raw
	}
	return n.Value.String() + "n"
}

type StringExpr struct {
	Range
	Value string
	Raw   string // source text between the quotes, only with the Raw option
}

func (n StringExpr) String() string {
	return strconv.Quote(n.Value)
}

type BoolExpr struct {
	Range
	Value bool
}

func (n BoolExpr) String() string {
	return strconv.FormatBool(n.Value)
}

type NullExpr struct {
	Range
}

func (n NullExpr) String() string {
	return "null"
}

type ThisExpr struct {
	Range
}

func (n ThisExpr) String() string {
	return "this"
}

type SuperExpr struct {
	Range
}

func (n SuperExpr) String() string {
	return "super"
}

type RegExpExpr struct {
	Range
	Pattern string
	Flags   string
}

func (n RegExpExpr) String() string {
	return "/" + n.Pattern + "/" + n.Flags
}

// TemplateElement is a literal fragment of a template. Cooked is undefined for an invalid escape in a tagged
// template.
type TemplateElement struct {
	Range
	Cooked    string
	Undefined bool
	Raw       string
}

type TemplateExpr struct {
	Range
	Tag    IExpr // can be nil
	Quasis []TemplateElement
	Exprs  []IExpr // len(Exprs) == len(Quasis)-1
}

func (n TemplateExpr) String() string {
	s := ""
	if n.Tag != nil {
		s += n.Tag.String()
	}
	s += "`"
	for i, item := range n.Quasis {
		s += item.Raw
		if i < len(n.Exprs) {
			s += "${" + n.Exprs[i].String() + "}"
		}
	}
	return s + "`"
}

type GroupExpr struct {
	Range
	X IExpr
}

func (n GroupExpr) String() string {
	return "(" + n.X.String() + ")"
}

type SeqExpr struct {
	Range
	List []IExpr
}

func (n SeqExpr) String() string {
	s := "("
	for i, item := range n.List {
		if i != 0 {
			s += ","
		}
		s += item.String()
	}
	return s + ")"
}

type ArrayExpr struct {
	Range
	List []IExpr // nil for holes
}

func (n ArrayExpr) String() string {
	s := "["
	for i, item := range n.List {
		if i != 0 {
			s += ", "
		}
		if item != nil {
			s += item.String()
		}
	}
	if 0 < len(n.List) && n.List[len(n.List)-1] == nil {
		s += ","
	}
	return s + "]"
}

type ObjectExpr struct {
	Range
	List []*Property
}

func (n ObjectExpr) String() string {
	s := "{"
	for i, item := range n.List {
		if i != 0 {
			s += ", "
		}
		s += item.String()
	}
	return s + "}"
}

type SpreadExpr struct {
	Range
	X IExpr
}

func (n SpreadExpr) String() string {
	return "..." + n.X.String()
}

type Arguments struct {
	Range
	List []IExpr // can contain SpreadExpr
}

func (n Arguments) String() string {
	s := "("
	for i, item := range n.List {
		if i != 0 {
			s += ", "
		}
		s += item.String()
	}
	return s + ")"
}

type NewExpr struct {
	Range
	X    IExpr
	Args *Arguments // can be nil
}

func (n NewExpr) String() string {
	if n.Args != nil {
		return "(new " + n.X.String() + n.Args.String() + ")"
	}
	return "(new " + n.X.String() + ")"
}

type NewTargetExpr struct {
	Range
}

func (n NewTargetExpr) String() string {
	return "(new.target)"
}

type YieldExpr struct {
	Range
	Generator bool
	Value     IExpr // can be nil
}

func (n YieldExpr) String() string {
	if n.Value == nil {
		return "(yield)"
	}
	s := "(yield"
	if n.Generator {
		s += "*"
	}
	return s + " " + n.Value.String() + ")"
}

type AwaitExpr struct {
	Range
	X IExpr
}

func (n AwaitExpr) String() string {
	return "(await " + n.X.String() + ")"
}

type CondExpr struct {
	Range
	Cond, X, Y IExpr
}

func (n CondExpr) String() string {
	return "(" + n.Cond.String() + " ? " + n.X.String() + " : " + n.Y.String() + ")"
}

type CallExpr struct {
	Range
	X        IExpr
	Args     Arguments
	Optional bool
}

func (n CallExpr) String() string {
	if n.Optional {
		return n.X.String() + "?." + n.Args.String()
	}
	return n.X.String() + n.Args.String()
}

type DotExpr struct {
	Range
	X        IExpr
	Y        IExpr // Var or PrivateExpr
	Optional bool
}

func (n DotExpr) String() string {
	if n.Optional {
		return n.X.String() + "?." + n.Y.String()
	}
	return n.X.String() + "." + n.Y.String()
}

type IndexExpr struct {
	Range
	X        IExpr
	Index    IExpr
	Optional bool
}

func (n IndexExpr) String() string {
	if n.Optional {
		return n.X.String() + "?.[" + n.Index.String() + "]"
	}
	return n.X.String() + "[" + n.Index.String() + "]"
}

// OptChainExpr wraps a member and call chain that contains at least one optional link.
type OptChainExpr struct {
	Range
	X IExpr
}

func (n OptChainExpr) String() string {
	return n.X.String()
}

type UnaryExpr struct {
	Range
	Op Token
	X  IExpr
}

func (n UnaryExpr) String() string {
	if n.Op.IsIdentifierName() {
		return "(" + n.Op.String() + " " + n.X.String() + ")"
	}
	return "(" + n.Op.String() + n.X.String() + ")"
}

type UpdateExpr struct {
	Range
	Op     Token // Increment or Decrement
	Prefix bool
	X      IExpr
}

func (n UpdateExpr) String() string {
	if n.Prefix {
		return "(" + n.Op.String() + n.X.String() + ")"
	}
	return "(" + n.X.String() + n.Op.String() + ")"
}

type BinaryExpr struct {
	Range
	Op   Token
	X, Y IExpr
}

func (n BinaryExpr) String() string {
	if n.Op.IsIdentifierName() {
		return "(" + n.X.String() + " " + n.Op.String() + " " + n.Y.String() + ")"
	}
	return "(" + n.X.String() + n.Op.String() + n.Y.String() + ")"
}

type AssignExpr struct {
	Range
	Op          Token
	Left, Right IExpr
}

func (n AssignExpr) String() string {
	return "(" + n.Left.String() + n.Op.String() + n.Right.String() + ")"
}

// ErrorExpr stands in for an expression that could not be parsed in recovery mode.
type ErrorExpr struct {
	Range
}

func (n ErrorExpr) String() string {
	return "Error"
}

func (n Var) exprNode()           {}
func (n PrivateExpr) exprNode()   {}
func (n NumberExpr) exprNode()    {}
func (n BigIntExpr) exprNode()    {}
func (n StringExpr) exprNode()    {}
func (n BoolExpr) exprNode()      {}
func (n NullExpr) exprNode()      {}
func (n ThisExpr) exprNode()      {}
func (n SuperExpr) exprNode()     {}
func (n RegExpExpr) exprNode()    {}
func (n TemplateExpr) exprNode()  {}
func (n GroupExpr) exprNode()     {}
func (n SeqExpr) exprNode()       {}
func (n ArrayExpr) exprNode()     {}
func (n ObjectExpr) exprNode()    {}
func (n SpreadExpr) exprNode()    {}
func (n NewExpr) exprNode()       {}
func (n NewTargetExpr) exprNode() {}
func (n YieldExpr) exprNode()     {}
func (n AwaitExpr) exprNode()     {}
func (n CondExpr) exprNode()      {}
func (n CallExpr) exprNode()      {}
func (n DotExpr) exprNode()       {}
func (n IndexExpr) exprNode()     {}
func (n OptChainExpr) exprNode()  {}
func (n UnaryExpr) exprNode()     {}
func (n UpdateExpr) exprNode()    {}
func (n BinaryExpr) exprNode()    {}
func (n AssignExpr) exprNode()    {}
func (n ErrorExpr) exprNode()     {}
