package parser_test

import (
	"testing"

	"github.com/loxlang/loxcore/ast"
	"github.com/loxlang/loxcore/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArithmeticPrecedence(t *testing.T) {
	stmts, err := parser.New("print 1 + 2 * 3;").Parse()
	require.NoError(t, err)
	require.Len(t, stmts, 1)

	p := stmts[0].(*ast.Print)
	bin := p.Expr.(*ast.Binary)
	assert.Equal(t, ast.OpPlus, bin.Op)

	right := bin.Right.(*ast.Binary)
	assert.Equal(t, ast.OpMultiply, right.Op)
}

func TestParseRightAssociativeAssignment(t *testing.T) {
	stmts, err := parser.New("a = b = 1;").Parse()
	require.NoError(t, err)

	outer := stmts[0].(*ast.ExprStmt).Expr.(*ast.Assign)
	assert.Equal(t, "a", outer.Var.Ident.Name)
	inner := outer.Value.(*ast.Assign)
	assert.Equal(t, "b", inner.Var.Ident.Name)
}

func TestParseTernary(t *testing.T) {
	stmts, err := parser.New("print true ? 1 : 2;").Parse()
	require.NoError(t, err)
	p := stmts[0].(*ast.Print)
	tern := p.Expr.(*ast.Ternary)
	assert.Equal(t, ast.LitBool, tern.Cond.(*ast.Literal).Value.Kind)
}

func TestParseInvalidLeftValue(t *testing.T) {
	_, err := parser.New("1 + 2 = 3;").Parse()
	require.Error(t, err)
}

func TestParseCallAndGetChain(t *testing.T) {
	stmts, err := parser.New("a.b().c;").Parse()
	require.NoError(t, err)
	get := stmts[0].(*ast.ExprStmt).Expr.(*ast.Get)
	assert.Equal(t, "c", get.Field.Name)
	call := get.Object.(*ast.Call)
	innerGet := call.Callee.(*ast.Get)
	assert.Equal(t, "b", innerGet.Field.Name)
}

func TestForDesugaring(t *testing.T) {
	stmts, err := parser.New("for (var i = 0; i < 3; i = i + 1) print i;").Parse()
	require.NoError(t, err)

	block := stmts[0].(*ast.Block)
	require.Len(t, block.Statements, 2)
	_, isVarDecl := block.Statements[0].(*ast.VarDecl)
	assert.True(t, isVarDecl)

	while := block.Statements[1].(*ast.While)
	innerBlock := while.Body.(*ast.Block)
	require.Len(t, innerBlock.Statements, 2)
	_, isPrint := innerBlock.Statements[0].(*ast.Print)
	assert.True(t, isPrint)
}

func TestForWithoutClausesDefaultsConditionTrue(t *testing.T) {
	stmts, err := parser.New("for (;;) print 1;").Parse()
	require.NoError(t, err)
	while := stmts[0].(*ast.While)
	lit := while.Cond.(*ast.Literal)
	assert.Equal(t, ast.LitBool, lit.Value.Kind)
	assert.True(t, lit.Value.Bool)
}

func TestTooManyParametersDiagnosed(t *testing.T) {
	src := "fun f("
	for i := 0; i < 256; i++ {
		if i > 0 {
			src += ", "
		}
		src += "a" + string(rune('A'+i%26))
	}
	src += ") {}"
	_, err := parser.New(src).Parse()
	require.Error(t, err)
}

func TestExactly255ParametersAccepted(t *testing.T) {
	src := "fun f("
	for i := 0; i < 255; i++ {
		if i > 0 {
			src += ", "
		}
		src += "a" + string(rune('A'+i%26)) + string(rune('0'+i%10))
	}
	src += ") {}"
	_, err := parser.New(src).Parse()
	require.NoError(t, err)
}

func TestClassDeclWithSuperclass(t *testing.T) {
	stmts, err := parser.New(`class B < A { greet() { super.greet(); } }`).Parse()
	require.NoError(t, err)
	class := stmts[0].(*ast.ClassDecl)
	require.NotNil(t, class.SuperClass)
	assert.Equal(t, "A", class.SuperClass.Ident.Name)
	require.Len(t, class.Methods, 1)
	assert.Equal(t, "greet", class.Methods[0].Var.Ident.Name)
}

func TestErrorRecoveryContinuesParsingNextStatement(t *testing.T) {
	stmts, err := parser.New("1 + ; print 2;").Parse()
	require.Error(t, err)
	require.NotEmpty(t, stmts)
	last := stmts[len(stmts)-1]
	_, isPrint := last.(*ast.Print)
	assert.True(t, isPrint)
}
