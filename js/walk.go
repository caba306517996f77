package js

// IVisitor represents the AST Visitor
// Each INode encountered by `Walk` is passed to `Enter`, children nodes will be ignored if the returned IVisitor is nil
type IVisitor interface {
	Enter(n INode) IVisitor
}

// Walk traverses an AST in depth-first order
func Walk(v IVisitor, n INode) {
	if n == nil {
		return
	}

	if v = v.Enter(n); v == nil {
		return
	}

	switch n := n.(type) {
	case *AST:
		walkStmts(v, n.List)
	case *BlockStmt:
		walkStmts(v, n.List)
	case *ExprStmt:
		Walk(v, n.Value)
	case *IfStmt:
		Walk(v, n.Cond)
		Walk(v, n.Body)
		Walk(v, n.Else)
	case *DoWhileStmt:
		Walk(v, n.Body)
		Walk(v, n.Cond)
	case *WhileStmt:
		Walk(v, n.Cond)
		Walk(v, n.Body)
	case *ForStmt:
		Walk(v, n.Init)
		Walk(v, n.Cond)
		Walk(v, n.Post)
		Walk(v, n.Body)
	case *ForInStmt:
		Walk(v, n.Init)
		Walk(v, n.Value)
		Walk(v, n.Body)
	case *ForOfStmt:
		Walk(v, n.Init)
		Walk(v, n.Value)
		Walk(v, n.Body)
	case *CaseClause:
		Walk(v, n.Cond)
		walkStmts(v, n.Body)
	case *SwitchStmt:
		Walk(v, n.Init)
		for _, item := range n.List {
			Walk(v, item)
		}
	case *ReturnStmt:
		Walk(v, n.Value)
	case *WithStmt:
		Walk(v, n.Cond)
		Walk(v, n.Body)
	case *LabelledStmt:
		Walk(v, n.Value)
	case *ThrowStmt:
		Walk(v, n.Value)
	case *TryStmt:
		Walk(v, n.Body)
		Walk(v, n.Binding)
		if n.Catch != nil {
			Walk(v, n.Catch)
		}
		if n.Finally != nil {
			Walk(v, n.Finally)
		}
	case *BindingElement:
		Walk(v, n.Binding)
		Walk(v, n.Default)
	case *Params:
		for _, item := range n.List {
			Walk(v, item)
		}
		if n.Rest != nil {
			Walk(v, n.Rest)
		}
	case *VarDecl:
		for _, item := range n.List {
			Walk(v, item)
		}
	case *FuncDecl:
		if n.Name != nil {
			Walk(v, n.Name)
		}
		Walk(v, &n.Params)
		Walk(v, &n.Body)
	case *MethodDecl:
		Walk(v, &n.Name)
		Walk(v, &n.Params)
		Walk(v, &n.Body)
	case *ClassDecl:
		if n.Name != nil {
			Walk(v, n.Name)
		}
		Walk(v, n.Extends)
		for _, item := range n.Methods {
			Walk(v, item)
		}
	case *ArrowFunc:
		Walk(v, &n.Params)
		if n.Expr != nil {
			Walk(v, n.Expr)
		} else {
			Walk(v, &n.Body)
		}
	case *PropertyName:
		Walk(v, n.Key)
	case *Property:
		if n.Kind != SpreadProperty && n.Kind != ShorthandProperty {
			Walk(v, &n.Name)
		}
		Walk(v, n.Value)
	case *ArrayExpr:
		for _, item := range n.List {
			Walk(v, item)
		}
	case *ObjectExpr:
		for _, item := range n.List {
			Walk(v, item)
		}
	case *TemplateExpr:
		Walk(v, n.Tag)
		for _, item := range n.Exprs {
			Walk(v, item)
		}
	case *GroupExpr:
		Walk(v, n.X)
	case *SeqExpr:
		for _, item := range n.List {
			Walk(v, item)
		}
	case *SpreadExpr:
		Walk(v, n.X)
	case *Arguments:
		for _, item := range n.List {
			Walk(v, item)
		}
	case *NewExpr:
		Walk(v, n.X)
		if n.Args != nil {
			Walk(v, n.Args)
		}
	case *YieldExpr:
		Walk(v, n.Value)
	case *AwaitExpr:
		Walk(v, n.X)
	case *CondExpr:
		Walk(v, n.Cond)
		Walk(v, n.X)
		Walk(v, n.Y)
	case *CallExpr:
		Walk(v, n.X)
		Walk(v, &n.Args)
	case *DotExpr:
		Walk(v, n.X)
		Walk(v, n.Y)
	case *IndexExpr:
		Walk(v, n.X)
		Walk(v, n.Index)
	case *OptChainExpr:
		Walk(v, n.X)
	case *UnaryExpr:
		Walk(v, n.X)
	case *UpdateExpr:
		Walk(v, n.X)
	case *BinaryExpr:
		Walk(v, n.X)
		Walk(v, n.Y)
	case *AssignExpr:
		Walk(v, n.Left)
		Walk(v, n.Right)
	}
}

func walkStmts(v IVisitor, list []IStmt) {
	for _, item := range list {
		Walk(v, item)
	}
}
