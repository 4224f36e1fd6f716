package ast

import "github.com/loxlang/loxcore/token"

// Expr is the sum type of every expression node. The unexported marker
// method seals the interface to this package's node types.
type Expr interface {
	Span() token.Span
	exprNode()
}

// LitKind discriminates the four literal value shapes the grammar
// produces directly (numbers, strings, booleans, nil).
type LitKind int

const (
	LitNumber LitKind = iota
	LitString
	LitBool
	LitNil
)

// Lit is a literal value attached to a Literal expression node.
type Lit struct {
	Kind   LitKind
	Number float64
	String string
	Bool   bool
}

// BinaryOp enumerates the infix operators that produce a Binary node,
// including the logical and/or (see IsLogical), which the interpreter
// evaluates with short-circuiting. Assignment is not listed here: the
// parser's left-value rewrite turns it into its own Assign/Set nodes.
type BinaryOp int

const (
	OpPlus BinaryOp = iota
	OpMinus
	OpMultiply
	OpDivide
	OpEqual
	OpNotEqual
	OpGreater
	OpGreaterEqual
	OpLess
	OpLessEqual
	OpAnd
	OpOr
)

func (op BinaryOp) String() string {
	switch op {
	case OpPlus:
		return "+"
	case OpMinus:
		return "-"
	case OpMultiply:
		return "*"
	case OpDivide:
		return "/"
	case OpEqual:
		return "=="
	case OpNotEqual:
		return "!="
	case OpGreater:
		return ">"
	case OpGreaterEqual:
		return ">="
	case OpLess:
		return "<"
	case OpLessEqual:
		return "<="
	case OpAnd:
		return "and"
	case OpOr:
		return "or"
	default:
		return "?"
	}
}

// IsLogical reports whether op short-circuits (and/or) instead of
// evaluating both operands unconditionally.
func (op BinaryOp) IsLogical() bool {
	return op == OpAnd || op == OpOr
}

// UnaryOp enumerates the two prefix operators.
type UnaryOp int

const (
	OpNegate UnaryOp = iota
	OpNot
)

// Binary is an infix expression: arithmetic, equality, relational, or
// logical and/or.
type Binary struct {
	Op          BinaryOp
	Left, Right Expr
}

func (b *Binary) Span() token.Span { return b.Left.Span().ExtendWith(b.Right.Span()) }
func (*Binary) exprNode()          {}

// Unary is a prefix expression (`-x`, `!x`). OpSpan is the span of the
// operator token itself, kept separately so diagnostics can point either
// at the operator or at the whole expression.
type Unary struct {
	Op      UnaryOp
	OpSpan  token.Span
	Operand Expr
}

func (u *Unary) Span() token.Span { return u.OpSpan.ExtendWith(u.Operand.Span()) }
func (*Unary) exprNode()          {}

// Group is a parenthesized expression; it exists as its own node (rather
// than being elided) so its span includes the enclosing parentheses.
type Group struct {
	GroupSpan token.Span
	Inner     Expr
}

func (g *Group) Span() token.Span { return g.GroupSpan }
func (*Group) exprNode()          {}

// Literal is a number/string/bool/nil constant.
type Literal struct {
	LitSpan token.Span
	Value   Lit
}

func (l *Literal) Span() token.Span { return l.LitSpan }
func (*Literal) exprNode()          {}

// Ternary is `cond ? truthy : falsy`.
type Ternary struct {
	Cond, Truthy, Falsy Expr
}

func (t *Ternary) Span() token.Span { return t.Cond.Span().ExtendWith(t.Falsy.Span()) }
func (*Ternary) exprNode()          {}

// Assign is `var = value`, produced by the parser's left-value rewrite
// when the left operand of `=` is a plain Var reference.
type Assign struct {
	Var   *Variable
	Value Expr
}

func (a *Assign) Span() token.Span { return a.Var.Ident.Span.ExtendWith(a.Value.Span()) }
func (*Assign) exprNode()          {}

// VarExpr reads a resolved variable.
type VarExpr struct {
	Var *Variable
}

func (v *VarExpr) Span() token.Span { return v.Var.Ident.Span }
func (*VarExpr) exprNode()          {}

// Call is a function/class invocation `callee(args...)`. End is the byte
// offset just past the closing paren.
type Call struct {
	Callee Expr
	Args   []Expr
	End    uint32
}

func (c *Call) Span() token.Span { return c.Callee.Span().ExtendWithPos(c.End) }
func (*Call) exprNode()          {}

// Get is a property read `object.field`.
type Get struct {
	Object Expr
	Field  Ident
}

func (g *Get) Span() token.Span { return g.Object.Span().ExtendWith(g.Field.Span) }
func (*Get) exprNode()          {}

// Set is a property write `object.field = value`, produced by the
// parser's left-value rewrite when the left operand of `=` is a Get. The
// Target field is always the original Get node, preserved verbatim so its
// Object can be re-evaluated at interpretation time.
type Set struct {
	Target *Get
	Value  Expr
}

func (s *Set) Span() token.Span { return s.Target.Span().ExtendWith(s.Value.Span()) }
func (*Set) exprNode()          {}

// SuperExpr is `super.method`. Var is the resolved reference to the
// synthetic `super` binding the resolver installs one frame out from
// `this`.
type SuperExpr struct {
	Var    *Variable
	Method Ident
}

func (s *SuperExpr) Span() token.Span { return s.Var.Ident.Span.ExtendWith(s.Method.Span) }
func (*SuperExpr) exprNode()          {}
