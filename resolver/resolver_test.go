package resolver_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/loxlang/loxcore/ast"
	"github.com/loxlang/loxcore/parser"
	"github.com/loxlang/loxcore/resolver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, src string) []ast.Stmt {
	t.Helper()
	stmts, err := parser.New(src).Parse()
	require.NoError(t, err)
	return stmts
}

func TestResolveLocalFunctionParameter(t *testing.T) {
	stmts := parse(t, "fun f(a) { print a; }")
	require.NoError(t, resolver.New().Resolve(stmts))

	fn := stmts[0].(*ast.FnDecl)
	body := fn.Body[0].(*ast.Print)
	v := body.Expr.(*ast.VarExpr).Var
	require.NotNil(t, v.Target)
	assert.Equal(t, uint16(0), v.Target.ScopeCount)
	assert.Equal(t, uint16(0), v.Target.Index)
	assert.Equal(t, uint16(1), fn.NumLocals)
}

func TestResolveGlobalLeavesTargetNil(t *testing.T) {
	stmts := parse(t, "var g = 1; print g;")
	require.NoError(t, resolver.New().Resolve(stmts))

	printStmt := stmts[1].(*ast.Print)
	v := printStmt.Expr.(*ast.VarExpr).Var
	assert.Nil(t, v.Target)
}

func TestBlockNumLocals(t *testing.T) {
	stmts := parse(t, "{ var a = 1; var b = 2; }")
	require.NoError(t, resolver.New().Resolve(stmts))
	block := stmts[0].(*ast.Block)
	assert.Equal(t, uint16(2), block.NumLocals)
}

func TestRedefineVarIsDiagnosed(t *testing.T) {
	stmts := parse(t, "{ var a = 1; var a = 2; }")
	err := resolver.New().Resolve(stmts)
	require.Error(t, err)
}

func TestInvalidReturnOutsideFunction(t *testing.T) {
	stmts := parse(t, "return 1;")
	err := resolver.New().Resolve(stmts)
	require.Error(t, err)
}

func TestReturnInConstructor(t *testing.T) {
	stmts := parse(t, "class Bad { init() { return 1; } }")
	err := resolver.New().Resolve(stmts)
	require.Error(t, err)
}

func TestBareReturnInConstructorIsAllowed(t *testing.T) {
	stmts := parse(t, "class Ok { init() { return; } }")
	require.NoError(t, resolver.New().Resolve(stmts))
}

func TestInvalidThisOutsideMethod(t *testing.T) {
	stmts := parse(t, "print this;")
	err := resolver.New().Resolve(stmts)
	require.Error(t, err)
}

func TestInvalidSuperOutsideSubclass(t *testing.T) {
	stmts := parse(t, "class A { f() { super.f(); } }")
	err := resolver.New().Resolve(stmts)
	require.Error(t, err)
}

func TestSuperResolvesWithScopeCountAtLeastOne(t *testing.T) {
	stmts := parse(t, "class A { f() {} } class B < A { f() { super.f(); } }")
	require.NoError(t, resolver.New().Resolve(stmts))

	classB := stmts[1].(*ast.ClassDecl)
	method := classB.Methods[0]
	exprStmt := method.Body[0].(*ast.ExprStmt)
	call := exprStmt.Expr.(*ast.Call)
	super := call.Callee.(*ast.SuperExpr)
	require.NotNil(t, super.Var.Target)
	assert.GreaterOrEqual(t, super.Var.Target.ScopeCount, uint16(1))
}

func TestThisResolvesInsideMethod(t *testing.T) {
	stmts := parse(t, "class Point { init(x) { this.x = x; } }")
	require.NoError(t, resolver.New().Resolve(stmts))

	class := stmts[0].(*ast.ClassDecl)
	init := class.Methods[0]
	exprStmt := init.Body[0].(*ast.ExprStmt)
	set := exprStmt.Expr.(*ast.Set)
	this := set.Target.Object.(*ast.VarExpr).Var
	require.NotNil(t, this.Target)
}

// TestResolverIdempotence exercises testable property 5 from spec.md §8:
// re-running the resolver over an already-resolved AST must not change
// any target or counter and must produce no new errors.
func TestResolverIdempotence(t *testing.T) {
	stmts := parse(t, `
		class Greeter {
			init(name) { this.name = name; }
			greet() { print this.name; }
		}
		var g = Greeter("Lox");
		g.greet();
	`)
	require.NoError(t, resolver.New().Resolve(stmts))

	before := snapshotTargets(stmts)
	require.NoError(t, resolver.New().Resolve(stmts))
	after := snapshotTargets(stmts)

	if diff := cmp.Diff(before, after); diff != "" {
		t.Fatalf("resolver was not idempotent (-before +after):\n%s", diff)
	}
}

// snapshotTargets collects every resolved Variable.Target in source
// order as a plain comparable slice, for go-cmp diffing across two
// resolver passes.
func snapshotTargets(stmts []ast.Stmt) []ast.Target {
	var out []ast.Target
	var walkExpr func(ast.Expr)
	var walkStmt func(ast.Stmt)

	record := func(v *ast.Variable) {
		if v == nil {
			return
		}
		if v.Target != nil {
			out = append(out, *v.Target)
		} else {
			out = append(out, ast.Target{ScopeCount: 0xFFFF, Index: 0xFFFF})
		}
	}

	walkExpr = func(e ast.Expr) {
		switch n := e.(type) {
		case *ast.Binary:
			walkExpr(n.Left)
			walkExpr(n.Right)
		case *ast.Unary:
			walkExpr(n.Operand)
		case *ast.Group:
			walkExpr(n.Inner)
		case *ast.Ternary:
			walkExpr(n.Cond)
			walkExpr(n.Truthy)
			walkExpr(n.Falsy)
		case *ast.Assign:
			record(n.Var)
			walkExpr(n.Value)
		case *ast.VarExpr:
			record(n.Var)
		case *ast.Call:
			walkExpr(n.Callee)
			for _, a := range n.Args {
				walkExpr(a)
			}
		case *ast.Get:
			walkExpr(n.Object)
		case *ast.Set:
			walkExpr(n.Target.Object)
			walkExpr(n.Value)
		case *ast.SuperExpr:
			record(n.Var)
		}
	}

	walkStmt = func(s ast.Stmt) {
		switch n := s.(type) {
		case *ast.Print:
			walkExpr(n.Expr)
		case *ast.ExprStmt:
			walkExpr(n.Expr)
		case *ast.VarDecl:
			record(n.Var)
			if n.Initializer != nil {
				walkExpr(n.Initializer)
			}
		case *ast.Block:
			for _, inner := range n.Statements {
				walkStmt(inner)
			}
		case *ast.If:
			walkExpr(n.Cond)
			walkStmt(n.Then)
			if n.Else != nil {
				walkStmt(n.Else)
			}
		case *ast.While:
			walkExpr(n.Cond)
			walkStmt(n.Body)
		case *ast.FnDecl:
			record(n.Var)
			for _, p := range n.Params {
				record(p)
			}
			for _, inner := range n.Body {
				walkStmt(inner)
			}
		case *ast.Return:
			if n.Expr != nil {
				walkExpr(n.Expr)
			}
		case *ast.ClassDecl:
			record(n.Var)
			if n.SuperClass != nil {
				record(n.SuperClass)
			}
			for _, m := range n.Methods {
				walkStmt(m)
			}
		}
	}

	for _, s := range stmts {
		walkStmt(s)
	}
	return out
}
