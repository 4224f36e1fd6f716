// Package token defines the lexical token taxonomy shared by the lexer,
// parser and resolver: byte-offset spans, token types and the fixed
// keyword table.
package token

import "fmt"

// Span is a half-open interval [Start, End) of byte offsets into the
// original source text. Spans compose: a parent node's span is built by
// extending the span of its first child with the span of its last.
type Span struct {
	Start uint32
	End   uint32
}

// DummySpan returns the zero-value span, for synthesized nodes that have
// no corresponding source text.
func DummySpan() Span {
	return Span{}
}

// ExtendWith returns a span that starts where s starts and ends where
// other ends.
func (s Span) ExtendWith(other Span) Span {
	return Span{Start: s.Start, End: other.End}
}

// ExtendWithPos returns a span that starts where s starts and ends at the
// given byte offset.
func (s Span) ExtendWithPos(end uint32) Span {
	return Span{Start: s.Start, End: end}
}

func (s Span) String() string {
	return fmt.Sprintf("from %d to %d", s.Start, s.End)
}
