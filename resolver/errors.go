// Package resolver performs static lexical-scope analysis over a parsed
// Lox AST: it binds every name occurrence to either a local frame slot or
// leaves it unbound (meaning global), and diagnoses the handful of
// semantic errors the grammar itself cannot catch — redeclaration,
// invalid `this`/`super`, and invalid or value-returning `return` in a
// constructor. It mutates the AST in place, per spec.md §4.3.
package resolver

import (
	"fmt"

	"github.com/loxlang/loxcore/token"
)

// ErrorKind discriminates the resolver's diagnostic taxonomy (spec.md
// §4.3/§7).
type ErrorKind int

const (
	RedefineVar ErrorKind = iota
	InvalidReturn
	ReturnInConstructor
	InvalidThis
	InvalidSuper
	NotSubClass
)

// Error is a single resolver diagnostic. Resolve never stops at the
// first one: it walks the whole AST and accumulates every diagnostic it
// finds into a *multierror.Error.
type Error struct {
	Kind      ErrorKind
	Span      token.Span
	Name      string
	DefinedAt token.Span // only meaningful for RedefineVar
}

func (e *Error) Error() string {
	switch e.Kind {
	case RedefineVar:
		return fmt.Sprintf("%s: variable %q is already defined at %s", e.Span, e.Name, e.DefinedAt)
	case InvalidReturn:
		return fmt.Sprintf("%s: 'return' outside a function", e.Span)
	case ReturnInConstructor:
		return fmt.Sprintf("%s: can't return a value from an initializer", e.Span)
	case InvalidThis:
		return fmt.Sprintf("%s: can't use 'this' outside a method", e.Span)
	case InvalidSuper:
		return fmt.Sprintf("%s: can't use 'super' outside a class with a superclass", e.Span)
	case NotSubClass:
		return fmt.Sprintf("%s: can't use 'super' in a class with no superclass", e.Span)
	default:
		return fmt.Sprintf("%s: resolver error", e.Span)
	}
}
