package value

import "github.com/loxlang/loxcore/ast"

// Function is a user-defined Lox function or method: its declaration
// plus the frame that was active at its declaration site (nil for a
// top-level function with no enclosing locals). Reference identity is
// its equality (spec.md §4.5).
type Function struct {
	Decl    *ast.FnDecl
	Closure *Frame
}

func (*Function) Type() string { return "function" }
func (*Function) valueNode()   {}

func (f *Function) String() string {
	return "<function " + f.Decl.Var.Ident.Name + ">"
}

// Arity is the declared parameter count.
func (f *Function) Arity() int { return len(f.Decl.Params) }

// Name is the declared function/method name.
func (f *Function) Name() string { return f.Decl.Var.Ident.Name }

// Bind returns a copy of f whose closure adds one frame holding `this`
// at slot 0, used when a method is read off an instance (spec.md §4.5).
func (f *Function) Bind(this Value) *Function {
	frame := NewFrame(1, f.Closure)
	frame.Slots[0] = this
	return &Function{Decl: f.Decl, Closure: frame}
}
