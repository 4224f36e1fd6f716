package lexer_test

import (
	"testing"

	"github.com/loxlang/loxcore/lexer"
	"github.com/loxlang/loxcore/token"
	"github.com/stretchr/testify/assert"
)

func scanAll(src string) []token.Token {
	l := lexer.New(src)
	var toks []token.Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Type == token.Eof {
			return toks
		}
	}
}

func TestArithmeticTokens(t *testing.T) {
	toks := scanAll("1 + 2 * 3;")
	types := make([]token.Type, len(toks))
	for i, tok := range toks {
		types[i] = tok.Type
	}
	assert.Equal(t, []token.Type{
		token.Number, token.Plus, token.Number, token.Star, token.Number,
		token.Semicolon, token.Eof,
	}, types)
}

func TestKeywordsAndIdentifiers(t *testing.T) {
	toks := scanAll("var fund = 1;")
	assert.Equal(t, token.Var, toks[0].Type)
	assert.Equal(t, token.Identifier, toks[1].Type)
	assert.Equal(t, "fund", toks[1].Lexeme)
}

func TestStringEscapes(t *testing.T) {
	toks := scanAll(`"a\nb\t\"c\"" `)
	assert.Equal(t, token.String, toks[0].Type)
	assert.Equal(t, "a\nb\t\"c\"", toks[0].Lexeme)
}

func TestUnterminatedString(t *testing.T) {
	toks := scanAll(`"unterminated`)
	assert.Equal(t, token.UnterminatedString, toks[0].Type)
}

func TestNestedBlockComments(t *testing.T) {
	toks := scanAll("/* outer /* inner */ still-outer */ 42;")
	assert.Equal(t, token.Number, toks[0].Type)
	assert.Equal(t, float64(42), toks[0].Number)
}

func TestUnterminatedBlockComment(t *testing.T) {
	toks := scanAll("/* never closes")
	assert.Equal(t, token.UnterminatedComment, toks[0].Type)
}

func TestUnknownByte(t *testing.T) {
	toks := scanAll("@")
	assert.Equal(t, token.Unknown, toks[0].Type)
	assert.Equal(t, "@", toks[0].Lexeme)
}

func TestLineComment(t *testing.T) {
	toks := scanAll("1; // a comment\n2;")
	assert.Equal(t, token.Number, toks[0].Type)
	assert.Equal(t, token.Semicolon, toks[1].Type)
	assert.Equal(t, token.Number, toks[2].Type)
}

func TestSpanRoundTrip(t *testing.T) {
	src := "foobar"
	toks := scanAll(src)
	span := toks[0].Span
	assert.Equal(t, src, src[span.Start:span.End])
}
