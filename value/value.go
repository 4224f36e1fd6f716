// Package value defines the Lox runtime data model: the tagged union of
// scalar and callable values the interpreter produces and consumes, per
// spec.md §4.5.
package value

import (
	"fmt"
	"strconv"
)

// Value is the sum type every Lox expression evaluates to. The marker
// method seals the interface to this package's concrete types.
type Value interface {
	Type() string
	valueNode()
}

// Number is an IEEE-754 double.
type Number float64

func (Number) Type() string  { return "number" }
func (Number) valueNode()    {}
func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}

// String is a Lox string value.
type String string

func (String) Type() string     { return "string" }
func (String) valueNode()       {}
func (s String) String() string { return string(s) }

// Bool is a Lox boolean value.
type Bool bool

func (Bool) Type() string     { return "bool" }
func (Bool) valueNode()       {}
func (b Bool) String() string { return strconv.FormatBool(bool(b)) }

// Nil is the singleton nil value.
type Nil struct{}

func (Nil) Type() string   { return "nil" }
func (Nil) valueNode()     {}
func (Nil) String() string { return "nil" }

// Truthy reports whether v is considered true by `if`/`while`/`!`/`and`/`or`.
// Only Nil and Bool(false) are falsy: a Lox-specific choice — number 0 and
// the empty string are both truthy, diverging from the language's usual
// reading of "falsy" scalars.
func Truthy(v Value) bool {
	switch t := v.(type) {
	case Nil:
		return false
	case Bool:
		return bool(t)
	default:
		return true
	}
}

// Equal implements Lox's `==`: structural equality for scalars, name
// equality for native functions, reference identity for everything else
// callable or stateful (spec.md §4.5).
func Equal(a, b Value) bool {
	switch x := a.(type) {
	case Number:
		y, ok := b.(Number)
		return ok && x == y
	case String:
		y, ok := b.(String)
		return ok && x == y
	case Bool:
		y, ok := b.(Bool)
		return ok && x == y
	case Nil:
		_, ok := b.(Nil)
		return ok
	case *NativeFunction:
		y, ok := b.(*NativeFunction)
		return ok && x.Name == y.Name
	case *Function:
		y, ok := b.(*Function)
		return ok && x == y
	case *Class:
		y, ok := b.(*Class)
		return ok && x == y
	case *Instance:
		y, ok := b.(*Instance)
		return ok && x == y
	default:
		return false
	}
}

// Display renders v the way `print` does (spec.md §6).
func Display(v Value) string {
	switch t := v.(type) {
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
