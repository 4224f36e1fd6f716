package interpreter

import (
	"strconv"

	"github.com/loxlang/loxcore/ast"
	"github.com/loxlang/loxcore/token"
	"github.com/loxlang/loxcore/value"
)

func (it *Interpreter) evalExpr(expr ast.Expr) (value.Value, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return litValue(e.Value), nil

	case *ast.Group:
		return it.evalExpr(e.Inner)

	case *ast.Unary:
		return it.evalUnary(e)

	case *ast.Binary:
		return it.evalBinary(e)

	case *ast.Ternary:
		cond, err := it.evalExpr(e.Cond)
		if err != nil {
			return nil, err
		}
		if value.Truthy(cond) {
			return it.evalExpr(e.Truthy)
		}
		return it.evalExpr(e.Falsy)

	case *ast.Assign:
		v, err := it.evalExpr(e.Value)
		if err != nil {
			return nil, err
		}
		if err := it.writeVar(e.Var, v); err != nil {
			return nil, err
		}
		return v, nil

	case *ast.VarExpr:
		return it.readVar(e.Var)

	case *ast.Call:
		return it.evalCall(e)

	case *ast.Get:
		obj, err := it.evalExpr(e.Object)
		if err != nil {
			return nil, err
		}
		inst, ok := obj.(*value.Instance)
		if !ok {
			return nil, &RuntimeError{Kind: InvalidFieldTarget, Span: e.Field.Span, Target: obj.Type(), Field: e.Field.Name}
		}
		v, ok := inst.Get(e.Field.Name)
		if !ok {
			return nil, &RuntimeError{Kind: UndefinedField, Span: e.Field.Span, Field: e.Field.Name}
		}
		return v, nil

	case *ast.Set:
		obj, err := it.evalExpr(e.Target.Object)
		if err != nil {
			return nil, err
		}
		inst, ok := obj.(*value.Instance)
		if !ok {
			return nil, &RuntimeError{Kind: InvalidFieldTarget, Span: e.Target.Field.Span, Target: obj.Type(), Field: e.Target.Field.Name}
		}
		v, err := it.evalExpr(e.Value)
		if err != nil {
			return nil, err
		}
		inst.Set(e.Target.Field.Name, v)
		return v, nil

	case *ast.SuperExpr:
		return it.evalSuper(e)

	default:
		return value.Nil{}, nil
	}
}

func litValue(l ast.Lit) value.Value {
	switch l.Kind {
	case ast.LitNumber:
		return value.Number(l.Number)
	case ast.LitString:
		return value.String(l.String)
	case ast.LitBool:
		return value.Bool(l.Bool)
	default:
		return value.Nil{}
	}
}

func (it *Interpreter) evalUnary(e *ast.Unary) (value.Value, error) {
	switch e.Op {
	case ast.OpNegate:
		n, err := it.evalNumber(e.Operand)
		if err != nil {
			return nil, err
		}
		return -n, nil
	case ast.OpNot:
		v, err := it.evalExpr(e.Operand)
		if err != nil {
			return nil, err
		}
		return value.Bool(!value.Truthy(v)), nil
	default:
		return nil, typeError(e.Span(), "unary operator", "unknown")
	}
}

func (it *Interpreter) evalNumber(expr ast.Expr) (value.Number, error) {
	v, err := it.evalExpr(expr)
	if err != nil {
		return 0, err
	}
	n, ok := v.(value.Number)
	if !ok {
		return 0, typeError(expr.Span(), "number", v.Type())
	}
	return n, nil
}

func (it *Interpreter) evalBinary(e *ast.Binary) (value.Value, error) {
	if e.Op.IsLogical() {
		return it.evalLogical(e)
	}
	if e.Op == ast.OpPlus {
		left, err := it.evalExpr(e.Left)
		if err != nil {
			return nil, err
		}
		right, err := it.evalExpr(e.Right)
		if err != nil {
			return nil, err
		}
		return evalPlus(left, right, e.Left.Span(), e.Right.Span())
	}

	switch e.Op {
	case ast.OpEqual, ast.OpNotEqual:
		left, err := it.evalExpr(e.Left)
		if err != nil {
			return nil, err
		}
		right, err := it.evalExpr(e.Right)
		if err != nil {
			return nil, err
		}
		eq := value.Equal(left, right)
		if e.Op == ast.OpNotEqual {
			eq = !eq
		}
		return value.Bool(eq), nil

	case ast.OpMinus, ast.OpMultiply, ast.OpDivide, ast.OpGreater, ast.OpGreaterEqual, ast.OpLess, ast.OpLessEqual:
		left, err := it.evalNumber(e.Left)
		if err != nil {
			return nil, err
		}
		right, err := it.evalNumber(e.Right)
		if err != nil {
			return nil, err
		}
		switch e.Op {
		case ast.OpMinus:
			return left - right, nil
		case ast.OpMultiply:
			return left * right, nil
		case ast.OpDivide:
			return left / right, nil
		case ast.OpGreater:
			return value.Bool(left > right), nil
		case ast.OpGreaterEqual:
			return value.Bool(left >= right), nil
		case ast.OpLess:
			return value.Bool(left < right), nil
		default:
			return value.Bool(left <= right), nil
		}

	default:
		return nil, typeError(e.Span(), "binary operator", "unknown")
	}
}

// evalPlus implements `+`'s overload rule (spec.md §4.6): two numbers
// add; if either operand is a string, the other is coerced to its
// textual form and the two are concatenated; any other combination is a
// type error pointing at the first operand that isn't a number or
// string.
func evalPlus(left, right value.Value, leftSpan, rightSpan token.Span) (value.Value, error) {
	ln, lIsNum := left.(value.Number)
	rn, rIsNum := right.(value.Number)
	if lIsNum && rIsNum {
		return ln + rn, nil
	}

	_, lIsStr := left.(value.String)
	_, rIsStr := right.(value.String)
	if lIsStr || rIsStr {
		return value.String(value.Display(left) + value.Display(right)), nil
	}

	if lIsNum {
		return nil, typeError(rightSpan, "number or string", right.Type())
	}
	return nil, typeError(leftSpan, "number or string", left.Type())
}

func (it *Interpreter) evalLogical(e *ast.Binary) (value.Value, error) {
	left, err := it.evalExpr(e.Left)
	if err != nil {
		return nil, err
	}
	truthy := value.Truthy(left)
	if (e.Op == ast.OpAnd && !truthy) || (e.Op == ast.OpOr && truthy) {
		return left, nil
	}
	return it.evalExpr(e.Right)
}

func (it *Interpreter) evalCall(e *ast.Call) (value.Value, error) {
	callee, err := it.evalExpr(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]value.Value, len(e.Args))
	for i, argExpr := range e.Args {
		v, err := it.evalExpr(argExpr)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	span := e.Callee.Span()
	arity, ok := arityOf(callee)
	if !ok {
		return nil, &RuntimeError{Kind: NotCallable, Span: span, Target: value.Display(callee)}
	}
	if len(args) != arity {
		return nil, &RuntimeError{
			Kind:     ArgumentsNotMatch,
			Span:     span,
			Expected: strconv.Itoa(arity),
			Found:    strconv.Itoa(len(args)),
		}
	}

	switch fn := callee.(type) {
	case *value.NativeFunction:
		return fn.Fn(args)
	case *value.Function:
		return it.invoke(fn, args)
	case *value.Class:
		return it.instantiate(fn, args)
	default:
		return nil, &RuntimeError{Kind: NotCallable, Span: span, Target: value.Display(callee)}
	}
}

func arityOf(v value.Value) (int, bool) {
	switch fn := v.(type) {
	case *value.NativeFunction:
		return fn.Arity, true
	case *value.Function:
		return fn.Arity(), true
	case *value.Class:
		return fn.Arity(), true
	default:
		return 0, false
	}
}

// invoke runs fn's body in a fresh frame descending from its closure,
// catching the returnSignal raised by a Return statement at this
// boundary (spec.md §4.6).
func (it *Interpreter) invoke(fn *value.Function, args []value.Value) (value.Value, error) {
	frame := value.NewFrame(fn.Decl.NumLocals, fn.Closure)
	for i, param := range fn.Decl.Params {
		frame.Set(0, param.Target.Index, args[i])
	}

	previous := it.frame
	it.frame = frame
	defer func() { it.frame = previous }()

	for _, stmt := range fn.Decl.Body {
		if err := it.execStmt(stmt); err != nil {
			if ret, ok := err.(*returnSignal); ok {
				return ret.Value, nil
			}
			return nil, err
		}
	}
	return value.Nil{}, nil
}

// instantiate allocates an Instance of class and, if it declares init,
// binds and invokes it with the call arguments (spec.md §4.5).
func (it *Interpreter) instantiate(class *value.Class, args []value.Value) (value.Value, error) {
	inst := value.NewInstance(class)
	if init, ok := class.GetMethod("init"); ok {
		if _, err := it.invoke(init.Bind(inst), args); err != nil {
			return nil, err
		}
	}
	return inst, nil
}

// evalSuper resolves a `super.method` reference: the `super` binding sits
// one frame further out than the `this` binding the resolver installed
// alongside it (spec.md §4.3's synthetic class scopes).
func (it *Interpreter) evalSuper(e *ast.SuperExpr) (value.Value, error) {
	target := e.Var.Target
	superVal := it.frame.Get(target.ScopeCount, target.Index)
	superClass := superVal.(*value.Class)
	thisVal := it.frame.Get(target.ScopeCount-1, 0)

	method, ok := superClass.GetMethod(e.Method.Name)
	if !ok {
		return nil, &RuntimeError{Kind: UndefinedField, Span: e.Method.Span, Field: e.Method.Name}
	}
	return method.Bind(thisVal), nil
}
