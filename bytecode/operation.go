// Package bytecode implements the opcode encoding spec.md's §9 design
// notes describe as intentionally incomplete: an Operation enum and a
// fixed-width little-endian codec for it, plus the string interning pool
// that is this layer's one deliberate exception to "no interning beyond
// the opcode module". There is no compiler or VM here — only the wire
// format a future one would target.
package bytecode

import "github.com/loxlang/loxcore/ast"

// Operation is a single bytecode instruction.
type Operation int

const (
	LoadNumber Operation = iota
	LoadString
	LoadBool
	LoadNil
	Negative
	Not
	Plus
	Minus
	Multiply
	Divide
	And
	Or
	Greater
	GreaterEqual
	Less
	LessEqual
	Equal
	NotEqual
)

// FromBinaryOp maps a parsed binary operator to its opcode. The switch is
// exhaustive over ast.BinaryOp; a value outside that set is a caller bug.
func FromBinaryOp(op ast.BinaryOp) Operation {
	switch op {
	case ast.OpAnd:
		return And
	case ast.OpOr:
		return Or
	case ast.OpPlus:
		return Plus
	case ast.OpMinus:
		return Minus
	case ast.OpMultiply:
		return Multiply
	case ast.OpDivide:
		return Divide
	case ast.OpEqual:
		return Equal
	case ast.OpNotEqual:
		return NotEqual
	case ast.OpGreater:
		return Greater
	case ast.OpGreaterEqual:
		return GreaterEqual
	case ast.OpLess:
		return Less
	case ast.OpLessEqual:
		return LessEqual
	default:
		panic("bytecode: unhandled ast.BinaryOp")
	}
}

// FromUnaryOp maps a parsed unary operator to its opcode. The switch is
// exhaustive over ast.UnaryOp; a value outside that set is a caller bug.
func FromUnaryOp(op ast.UnaryOp) Operation {
	switch op {
	case ast.OpNegate:
		return Negative
	case ast.OpNot:
		return Not
	default:
		panic("bytecode: unhandled ast.UnaryOp")
	}
}
