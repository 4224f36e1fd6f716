package ast

import "github.com/loxlang/loxcore/token"

// Stmt is the sum type of every statement node.
type Stmt interface {
	stmtNode()
}

// Print is `print expr;`.
type Print struct {
	Expr Expr
}

func (*Print) stmtNode() {}

// ExprStmt is a bare expression statement, evaluated and discarded.
type ExprStmt struct {
	Expr Expr
}

func (*ExprStmt) stmtNode() {}

// VarDecl is `var name = initializer;` (initializer is nil when absent,
// in which case the variable is bound to nil).
type VarDecl struct {
	Var         *Variable
	Initializer Expr
}

func (*VarDecl) stmtNode() {}

// Block is a `{ ... }` statement sequence. NumLocals is filled in by the
// resolver with the count of distinct names declared directly in this
// block (not counting names declared in nested blocks).
type Block struct {
	Statements []Stmt
	NumLocals  uint16
}

func (*Block) stmtNode() {}

// If is `if (cond) then [else else]`.
type If struct {
	Cond Expr
	Then Stmt
	Else Stmt // nil when absent
}

func (*If) stmtNode() {}

// While is `while (cond) body`. The parser also uses this node to
// desugar `for`.
type While struct {
	Cond Expr
	Body Stmt
}

func (*While) stmtNode() {}

// FnDecl is a function or method declaration. NumLocals counts the
// parameters plus any locals declared directly in the body's top frame
// (the resolver treats the parameter scope and the body's top scope as
// one frame, per spec.md §4.3's resolve_function algorithm).
type FnDecl struct {
	Var       *Variable
	Params    []*Variable
	Body      []Stmt
	NumLocals uint16
}

func (*FnDecl) stmtNode() {}

// Return is `return [expr];`. Span covers the `return` keyword itself,
// used for InvalidReturn diagnostics when it appears outside a function.
type Return struct {
	Span token.Span
	Expr Expr // nil for a bare `return;`
}

func (*Return) stmtNode() {}

// ClassDecl is a class declaration with an optional single superclass.
type ClassDecl struct {
	Var        *Variable
	SuperClass *Variable // nil when there is no `< Super` clause
	Methods    []*FnDecl
}

func (*ClassDecl) stmtNode() {}
