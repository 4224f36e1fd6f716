// Package interpreter walks a resolved Lox AST and evaluates it directly
// against value.Value, maintaining a single current-frame pointer and a
// global namespace (spec.md §4.6).
package interpreter

import (
	"fmt"

	"github.com/loxlang/loxcore/token"
)

// ErrorKind discriminates the runtime error taxonomy of spec.md §7. The
// Return signal is deliberately not a member: it is represented by the
// unexported returnSignal type and never escapes the call boundary that
// consumes it.
type ErrorKind int

const (
	TypeError ErrorKind = iota
	UndefinedVariable
	InvalidLeftValue
	NotCallable
	ArgumentsNotMatch
	UndefinedField
	InvalidFieldTarget
	InvalidSuperClass
	ReturnInConstructor
)

// RuntimeError is a single diagnosed failure. The interpreter aborts the
// whole run on the first one (spec.md §7): unlike the parser and
// resolver, it does not accumulate.
type RuntimeError struct {
	Kind     ErrorKind
	Span     token.Span
	Expected string
	Found    string
	Name     string
	Target   string
	Field    string
}

func (e *RuntimeError) Error() string {
	switch e.Kind {
	case TypeError:
		return fmt.Sprintf("%s: expected %s, found %s", e.Span, e.Expected, e.Found)
	case UndefinedVariable:
		return fmt.Sprintf("%s: undefined variable '%s'", e.Span, e.Name)
	case InvalidLeftValue:
		return fmt.Sprintf("%s: invalid assignment target", e.Span)
	case NotCallable:
		return fmt.Sprintf("%s: '%s' is not callable", e.Span, e.Target)
	case ArgumentsNotMatch:
		return fmt.Sprintf("%s: expected %s arguments, got %s", e.Span, e.Expected, e.Found)
	case UndefinedField:
		return fmt.Sprintf("%s: undefined field '%s'", e.Span, e.Field)
	case InvalidFieldTarget:
		return fmt.Sprintf("%s: can't access field '%s' on a %s", e.Span, e.Field, e.Target)
	case InvalidSuperClass:
		return fmt.Sprintf("%s: superclass must be a class", e.Span)
	case ReturnInConstructor:
		return fmt.Sprintf("%s: can't return a value from an initializer", e.Span)
	default:
		return fmt.Sprintf("%s: runtime error", e.Span)
	}
}

func typeError(span token.Span, expected, found string) *RuntimeError {
	return &RuntimeError{Kind: TypeError, Span: span, Expected: expected, Found: found}
}
