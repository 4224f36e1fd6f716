// Package ast defines the Lox abstract syntax tree: expressions,
// statements, and the identifier/variable types the resolver annotates in
// place. Nodes are created once by the parser, mutated exactly once by the
// resolver (to fill Variable.Target and the NumLocals counters), and are
// read-only thereafter.
package ast

import "github.com/loxlang/loxcore/token"

// Ident is a bare name occurrence together with its source span.
type Ident struct {
	Name string
	Span token.Span
}

// Target is the (scope_count, index) pair a resolved local Variable
// carries: scope_count is the number of enclosing frames to skip (0 =
// current frame), and index is the 0-based slot within that frame.
type Target struct {
	ScopeCount uint16
	Index      uint16
}

// Variable wraps an identifier occurrence with its resolved storage
// location. Target is nil until the resolver runs; a nil Target after a
// successful resolve means the name is a global.
type Variable struct {
	Ident  Ident
	Target *Target
}

// IsLocal reports whether the resolver bound this variable to a local
// frame slot.
func (v *Variable) IsLocal() bool {
	return v.Target != nil
}
