package interpreter

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/loxlang/loxcore/ast"
	"github.com/loxlang/loxcore/environment"
	"github.com/loxlang/loxcore/value"
)

// returnSignal is the internal, non-user-visible control-flow error a
// Return statement raises to unwind to its enclosing call boundary
// (spec.md §7).
type returnSignal struct {
	Value value.Value
}

func (*returnSignal) Error() string { return "return outside of a function call" }

// Interpreter walks a resolved AST, maintaining the global namespace and
// a single current-frame pointer (nil at top level).
type Interpreter struct {
	Global *environment.Global
	Out    io.Writer

	frame *value.Frame
}

// New returns an Interpreter with the standard built-ins defined.
func New() *Interpreter {
	it := &Interpreter{Global: environment.NewGlobal(), Out: os.Stdout}
	it.Global.Define("clock", &value.NativeFunction{
		Name:  "clock",
		Arity: 0,
		Fn: func(args []value.Value) (value.Value, error) {
			return value.Number(float64(time.Now().UnixNano()) / 1e9), nil
		},
	})
	return it
}

// Interpret executes stmts in order, aborting on the first runtime
// error.
func (it *Interpreter) Interpret(stmts []ast.Stmt) error {
	for _, stmt := range stmts {
		if err := it.execStmt(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (it *Interpreter) execStmt(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.Print:
		v, err := it.evalExpr(s.Expr)
		if err != nil {
			return err
		}
		fmt.Fprintln(it.Out, value.Display(v))
		return nil

	case *ast.ExprStmt:
		_, err := it.evalExpr(s.Expr)
		return err

	case *ast.VarDecl:
		var v value.Value = value.Nil{}
		if s.Initializer != nil {
			var err error
			v, err = it.evalExpr(s.Initializer)
			if err != nil {
				return err
			}
		}
		it.defineVar(s.Var, v)
		return nil

	case *ast.Block:
		return it.execBlock(s.Statements, value.NewFrame(s.NumLocals, it.frame))

	case *ast.If:
		cond, err := it.evalExpr(s.Cond)
		if err != nil {
			return err
		}
		if value.Truthy(cond) {
			return it.execStmt(s.Then)
		}
		if s.Else != nil {
			return it.execStmt(s.Else)
		}
		return nil

	case *ast.While:
		for {
			cond, err := it.evalExpr(s.Cond)
			if err != nil {
				return err
			}
			if !value.Truthy(cond) {
				return nil
			}
			if err := it.execStmt(s.Body); err != nil {
				return err
			}
		}

	case *ast.FnDecl:
		it.defineVar(s.Var, &value.Function{Decl: s, Closure: it.frame})
		return nil

	case *ast.Return:
		v := value.Value(value.Nil{})
		if s.Expr != nil {
			var err error
			v, err = it.evalExpr(s.Expr)
			if err != nil {
				return err
			}
		}
		return &returnSignal{Value: v}

	case *ast.ClassDecl:
		return it.execClassDecl(s)

	default:
		return nil
	}
}

// execBlock swaps in frame for the duration of statements, guaranteeing
// the previous frame is restored on every exit path (spec.md §5).
func (it *Interpreter) execBlock(statements []ast.Stmt, frame *value.Frame) error {
	previous := it.frame
	it.frame = frame
	defer func() { it.frame = previous }()

	for _, stmt := range statements {
		if err := it.execStmt(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (it *Interpreter) execClassDecl(c *ast.ClassDecl) error {
	var superClass *value.Class
	closure := it.frame

	if c.SuperClass != nil {
		superVal, err := it.readVar(c.SuperClass)
		if err != nil {
			return err
		}
		class, ok := superVal.(*value.Class)
		if !ok {
			return &RuntimeError{Kind: InvalidSuperClass, Span: c.SuperClass.Ident.Span}
		}
		superClass = class

		superFrame := value.NewFrame(1, it.frame)
		superFrame.Slots[0] = superClass
		closure = superFrame
	}

	methods := make(map[string]*value.Function, len(c.Methods))
	for _, decl := range c.Methods {
		methods[decl.Var.Ident.Name] = &value.Function{Decl: decl, Closure: closure}
	}

	class := &value.Class{Name: c.Var.Ident.Name, Super: superClass, Methods: methods}
	it.defineVar(c.Var, class)
	return nil
}

// defineVar binds v in the current frame if the resolver gave it a
// local target, otherwise in the global namespace.
func (it *Interpreter) defineVar(v *ast.Variable, val value.Value) {
	if v.Target != nil {
		it.frame.Set(0, v.Target.Index, val)
		return
	}
	it.Global.Define(v.Ident.Name, val)
}

func (it *Interpreter) readVar(v *ast.Variable) (value.Value, error) {
	if v.Target != nil {
		return it.frame.Get(v.Target.ScopeCount, v.Target.Index), nil
	}
	got, err := it.Global.Get(v.Ident.Name)
	if err != nil {
		return nil, &RuntimeError{Kind: UndefinedVariable, Span: v.Ident.Span, Name: v.Ident.Name}
	}
	return got, nil
}

func (it *Interpreter) writeVar(v *ast.Variable, val value.Value) error {
	if v.Target != nil {
		it.frame.Set(v.Target.ScopeCount, v.Target.Index, val)
		return nil
	}
	if err := it.Global.Assign(v.Ident.Name, val); err != nil {
		return &RuntimeError{Kind: UndefinedVariable, Span: v.Ident.Span, Name: v.Ident.Name}
	}
	return nil
}
