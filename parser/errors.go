package parser

import (
	"fmt"

	"github.com/loxlang/loxcore/token"
)

// ErrorKind discriminates the parser's diagnostic taxonomy (spec.md §7).
type ErrorKind int

const (
	UnexpectedToken ErrorKind = iota
	ExpectStructure
	TooManyParameters
	InvalidLeftValue
)

// Error is a single parser diagnostic. Parsing never stops at the first
// one: errors accumulate into a *multierror.Error (see Parser.Parse) and
// parsing resumes at the next statement boundary.
type Error struct {
	Kind     ErrorKind
	Span     token.Span
	Expected string
	Found    string
}

func (e *Error) Error() string {
	switch e.Kind {
	case ExpectStructure:
		return fmt.Sprintf("%s: expected %s, found %s", e.Span, e.Expected, e.Found)
	case TooManyParameters:
		return fmt.Sprintf("%s: too many parameters (max 255)", e.Span)
	case InvalidLeftValue:
		return fmt.Sprintf("%s: invalid left value in assignment", e.Span)
	default:
		return fmt.Sprintf("%s: unexpected token %s", e.Span, e.Found)
	}
}
