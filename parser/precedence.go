package parser

import "github.com/loxlang/loxcore/token"

// Precedence levels from spec.md §4.2's table. Higher binds tighter.
// Levels are sparse (not contiguous) to leave room in the source grammar
// this was distilled from; the gaps carry no meaning here.
const (
	precNone           = 0
	precAssign         = 2
	precTernary        = 4
	precOr             = 9
	precAnd            = 10
	precEquality       = 11
	precAdditive       = 12
	precMultiplicative = 13
	precUnary          = 14
	precCall           = 15
)

type fixity int

const (
	fixLeft fixity = iota
	fixRight
)

// operatorInfo reports the precedence and fixity of tt when it appears in
// infix/postfix position, or ok=false if tt never starts an infix/postfix
// continuation (i.e. it is not an operator at all, or only a prefix one).
func operatorInfo(tt token.Type) (prec int, fix fixity, ok bool) {
	switch tt {
	case token.Equal:
		return precAssign, fixRight, true
	case token.Question:
		return precTernary, fixRight, true
	case token.Or:
		return precOr, fixLeft, true
	case token.And:
		return precAnd, fixLeft, true
	case token.EqualEqual, token.BangEqual,
		token.Less, token.LessEqual,
		token.Greater, token.GreaterEqual:
		return precEquality, fixLeft, true
	case token.Plus, token.Minus:
		return precAdditive, fixLeft, true
	case token.Star, token.Slash:
		return precMultiplicative, fixLeft, true
	case token.LeftParen, token.Dot:
		return precCall, fixLeft, true
	default:
		return precNone, fixLeft, false
	}
}
