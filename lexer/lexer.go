// Package lexer scans Lox source text into a stream of token.Token values.
// The scanner is byte-offset based: it never interprets source position in
// terms of lines or columns, matching spec.md's explicit non-goal of
// column-accurate diagnostics.
package lexer

import (
	"strconv"
	"strings"

	"github.com/loxlang/loxcore/token"
)

const eofChar = 0

// Lexer turns source bytes into tokens on demand. It holds only the
// source buffer and a cursor; NextToken never allocates except for the
// Lexeme payload of identifier/string/number tokens.
type Lexer struct {
	src []byte
	pos int
}

// New creates a Lexer over the given UTF-8 source text.
func New(src string) *Lexer {
	return &Lexer{src: []byte(src)}
}

func (l *Lexer) atEnd() bool {
	return l.pos >= len(l.src)
}

func (l *Lexer) peek() byte {
	if l.atEnd() {
		return eofChar
	}
	return l.src[l.pos]
}

func (l *Lexer) peekNext() byte {
	if l.pos+1 >= len(l.src) {
		return eofChar
	}
	return l.src[l.pos+1]
}

func (l *Lexer) advance() byte {
	c := l.src[l.pos]
	l.pos++
	return c
}

func (l *Lexer) match(c byte) bool {
	if l.peek() != c {
		return false
	}
	l.pos++
	return true
}

func isWhitespace(c byte) bool {
	return c == '\t' || c == '\n' || c == '\r' || c == ' '
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentContinue(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

// NextToken always returns a token; end-of-input yields an Eof token.
func (l *Lexer) NextToken() token.Token {
	if tok, ok := l.skipTrivia(); ok {
		return tok
	}

	start := uint32(l.pos)
	if l.atEnd() {
		return l.yield(token.Eof, start)
	}

	c := l.advance()
	switch c {
	case '(':
		return l.yield(token.LeftParen, start)
	case ')':
		return l.yield(token.RightParen, start)
	case '{':
		return l.yield(token.LeftBrace, start)
	case '}':
		return l.yield(token.RightBrace, start)
	case ',':
		return l.yield(token.Comma, start)
	case '.':
		return l.yield(token.Dot, start)
	case '-':
		return l.yield(token.Minus, start)
	case '+':
		return l.yield(token.Plus, start)
	case ';':
		return l.yield(token.Semicolon, start)
	case '*':
		return l.yield(token.Star, start)
	case '?':
		return l.yield(token.Question, start)
	case ':':
		return l.yield(token.Colon, start)
	case '/':
		return l.yield(token.Slash, start)
	case '!':
		if l.match('=') {
			return l.yield(token.BangEqual, start)
		}
		return l.yield(token.Bang, start)
	case '=':
		if l.match('=') {
			return l.yield(token.EqualEqual, start)
		}
		return l.yield(token.Equal, start)
	case '<':
		if l.match('=') {
			return l.yield(token.LessEqual, start)
		}
		return l.yield(token.Less, start)
	case '>':
		if l.match('=') {
			return l.yield(token.GreaterEqual, start)
		}
		return l.yield(token.Greater, start)
	case '"':
		return l.string(start)
	default:
		if isDigit(c) {
			return l.number(start)
		}
		if isIdentStart(c) {
			return l.identifier(start)
		}
		tok := l.yield(token.Unknown, start)
		tok.Lexeme = string(c)
		return tok
	}
}

func (l *Lexer) yield(typ token.Type, start uint32) token.Token {
	return token.Token{Type: typ, Span: token.Span{Start: start, End: uint32(l.pos)}}
}

// skipTrivia consumes whitespace and comments. It returns a token (and
// true) only when it runs into an unterminated block comment, which must
// itself surface as a token per spec.md §4.1.
func (l *Lexer) skipTrivia() (token.Token, bool) {
	for {
		switch {
		case isWhitespace(l.peek()):
			l.advance()
		case l.peek() == '/' && l.peekNext() == '/':
			for !l.atEnd() && l.peek() != '\n' {
				l.advance()
			}
		case l.peek() == '/' && l.peekNext() == '*':
			if tok, unterminated := l.skipBlockComment(); unterminated {
				return tok, true
			}
		default:
			return token.Token{}, false
		}
	}
}

// skipBlockComment consumes a (possibly nested) /* ... */ comment. It
// returns an UnterminatedComment token if EOF is reached while still
// nested.
func (l *Lexer) skipBlockComment() (token.Token, bool) {
	start := uint32(l.pos)
	depth := 1
	l.advance() // '/'
	l.advance() // '*'

	for !l.atEnd() {
		switch {
		case l.peek() == '/' && l.peekNext() == '*':
			l.advance()
			l.advance()
			depth++
		case l.peek() == '*' && l.peekNext() == '/':
			l.advance()
			l.advance()
			depth--
			if depth == 0 {
				return token.Token{}, false
			}
		default:
			l.advance()
		}
	}
	return l.yield(token.UnterminatedComment, start), true
}

func (l *Lexer) string(start uint32) token.Token {
	var b strings.Builder
	for !l.atEnd() {
		c := l.advance()
		switch c {
		case '"':
			tok := l.yield(token.String, start)
			tok.Lexeme = b.String()
			return tok
		case '\\':
			if l.atEnd() {
				return l.yield(token.UnterminatedString, start)
			}
			switch l.advance() {
			case '\\':
				b.WriteByte('\\')
			case 'n':
				b.WriteByte('\n')
			case 'r':
				b.WriteByte('\r')
			case 't':
				b.WriteByte('\t')
			case '"':
				b.WriteByte('"')
			default:
				// Unrecognized escape: keep the backslash and the
				// following byte verbatim rather than failing the scan.
				b.WriteByte('\\')
				b.WriteByte(l.src[l.pos-1])
			}
		default:
			b.WriteByte(c)
		}
	}
	return l.yield(token.UnterminatedString, start)
}

func (l *Lexer) number(start uint32) token.Token {
	for isDigit(l.peek()) {
		l.advance()
	}
	if l.peek() == '.' && isDigit(l.peekNext()) {
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
	}
	text := string(l.src[start:l.pos])
	n, _ := strconv.ParseFloat(text, 64)
	tok := l.yield(token.Number, start)
	tok.Lexeme = text
	tok.Number = n
	return tok
}

func (l *Lexer) identifier(start uint32) token.Token {
	for isIdentContinue(l.peek()) {
		l.advance()
	}
	text := string(l.src[start:l.pos])
	if kw, ok := token.Keywords[text]; ok {
		return l.yield(kw, start)
	}
	tok := l.yield(token.Identifier, start)
	tok.Lexeme = text
	return tok
}
