package interpreter_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/loxlang/loxcore/ast"
	"github.com/loxlang/loxcore/interpreter"
	"github.com/loxlang/loxcore/parser"
	"github.com/loxlang/loxcore/resolver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, src string) (string, error) {
	t.Helper()
	stmts, err := parser.New(src).Parse()
	require.NoError(t, err)
	require.NoError(t, resolver.New().Resolve(stmts))

	var out bytes.Buffer
	it := interpreter.New()
	it.Out = &out
	err = it.Interpret(stmts)
	return out.String(), err
}

func TestPrintArithmetic(t *testing.T) {
	out, err := run(t, "print 1 + 2 * 3;")
	require.NoError(t, err)
	assert.Equal(t, "7\n", out)
}

func TestStringConcatenationCoercesOtherSide(t *testing.T) {
	out, err := run(t, `print "n=" + 1;`)
	require.NoError(t, err)
	assert.Equal(t, "n=1\n", out)
}

func TestPlusWithNeitherNumberNorStringIsTypeError(t *testing.T) {
	_, err := run(t, "print true + false;")
	require.Error(t, err)
}

func TestZeroAndEmptyStringAreTruthy(t *testing.T) {
	out, err := run(t, `if (0) print "zero-truthy"; if ("") print "empty-truthy";`)
	require.NoError(t, err)
	assert.Equal(t, "zero-truthy\nempty-truthy\n", out)
}

func TestWhileLoopAndAssignment(t *testing.T) {
	out, err := run(t, `
		var i = 0;
		while (i < 3) {
			print i;
			i = i + 1;
		}
	`)
	require.NoError(t, err)
	assert.Equal(t, "0\n1\n2\n", out)
}

func TestClosureCapturesEnclosingVariable(t *testing.T) {
	out, err := run(t, `
		fun makeCounter() {
			var count = 0;
			fun increment() {
				count = count + 1;
				print count;
			}
			return increment;
		}
		var counter = makeCounter();
		counter();
		counter();
	`)
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n", out)
}

func TestClassInitAndMethodCall(t *testing.T) {
	out, err := run(t, `
		class Point {
			init(x, y) {
				this.x = x;
				this.y = y;
			}
			show() {
				print this.x + this.y;
			}
		}
		var p = Point(1, 2);
		p.show();
	`)
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)
}

func TestSuperCallsParentMethod(t *testing.T) {
	out, err := run(t, `
		class Animal {
			speak() { print "..."; }
		}
		class Dog < Animal {
			speak() {
				super.speak();
				print "woof";
			}
		}
		Dog().speak();
	`)
	require.NoError(t, err)
	assert.Equal(t, "...\nwoof\n", out)
}

func TestReturnInInitializerWithValueFailsAtResolve(t *testing.T) {
	stmts, err := parser.New("class Bad { init() { return 1; } }").Parse()
	require.NoError(t, err)
	err = resolver.New().Resolve(stmts)
	require.Error(t, err)
}

func TestCallingNonCallableIsRuntimeError(t *testing.T) {
	_, err := run(t, `var x = 1; x();`)
	require.Error(t, err)
}

func TestWrongArityIsRuntimeError(t *testing.T) {
	_, err := run(t, `fun f(a) { return a; } f(1, 2);`)
	require.Error(t, err)
}

func TestUndefinedGlobalAssignmentIsRuntimeError(t *testing.T) {
	_, err := run(t, `x = 1;`)
	require.Error(t, err)
}

func TestFieldAccessOnNonInstanceIsRuntimeError(t *testing.T) {
	_, err := run(t, `var n = 1; print n.foo;`)
	require.Error(t, err)
}

func TestClockReturnsNumber(t *testing.T) {
	stmts, err := parser.New("var t = clock();").Parse()
	require.NoError(t, err)
	require.NoError(t, resolver.New().Resolve(stmts))

	it := interpreter.New()
	require.NoError(t, it.Interpret(stmts))

	v, err := it.Global.Get("t")
	require.NoError(t, err)
	_, isLit := stmts[0].(*ast.VarDecl)
	assert.True(t, isLit)
	assert.True(t, strings.Contains(v.Type(), "number"))
}
