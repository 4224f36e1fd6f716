package token

import "fmt"

// Type identifies the lexical category of a Token.
type Type int

const (
	// Special
	Eof Type = iota
	Unknown
	UnterminatedComment
	UnterminatedString

	// Single/double-char punctuators
	Bang
	BangEqual
	Comma
	Dot
	Equal
	EqualEqual
	Greater
	GreaterEqual
	LeftBrace
	LeftParen
	Less
	LessEqual
	Minus
	Plus
	Question
	Colon
	RightBrace
	RightParen
	Semicolon
	Slash
	Star

	// Literals / identifiers
	Identifier
	Number
	String

	// Keywords
	And
	Class
	Else
	False
	For
	Fun
	If
	Nil
	Or
	Print
	Return
	Super
	This
	True
	Var
	While
)

// Keywords maps the closed set of reserved words to their token type.
// Misses in this table become Identifier tokens.
var Keywords = map[string]Type{
	"and":    And,
	"class":  Class,
	"else":   Else,
	"false":  False,
	"for":    For,
	"fun":    Fun,
	"if":     If,
	"nil":    Nil,
	"or":     Or,
	"print":  Print,
	"return": Return,
	"super":  Super,
	"this":   This,
	"true":   True,
	"var":    Var,
	"while":  While,
}

var typeNames = map[Type]string{
	Eof:                  "end of input",
	Unknown:              "unknown character",
	UnterminatedComment:  "unterminated comment",
	UnterminatedString:   "unterminated string",
	Bang:                 "!",
	BangEqual:            "!=",
	Comma:                ",",
	Dot:                  ".",
	Equal:                "=",
	EqualEqual:           "==",
	Greater:              ">",
	GreaterEqual:         ">=",
	LeftBrace:            "{",
	LeftParen:            "(",
	Less:                 "<",
	LessEqual:            "<=",
	Minus:                "-",
	Plus:                 "+",
	Question:             "?",
	Colon:                ":",
	RightBrace:           "}",
	RightParen:           ")",
	Semicolon:            ";",
	Slash:                "/",
	Star:                 "*",
	Identifier:           "identifier",
	Number:               "number",
	String:               "string",
	And:                  "and",
	Class:                "class",
	Else:                 "else",
	False:                "false",
	For:                  "for",
	Fun:                  "fun",
	If:                   "if",
	Nil:                  "nil",
	Or:                   "or",
	Print:                "print",
	Return:               "return",
	Super:                "super",
	This:                 "this",
	True:                 "true",
	Var:                  "var",
	While:                "while",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Token is a single lexical unit: its type, source span, and — for
// identifiers, numbers, strings and the Unknown marker — its payload.
type Token struct {
	Type Type
	Span Span

	// Lexeme is the raw source text for Identifier/Number/String tokens,
	// and holds the single offending byte (as a one-rune string) for
	// Unknown tokens.
	Lexeme string

	// Number is populated for Number tokens only.
	Number float64
}

func (t Token) String() string {
	switch t.Type {
	case Identifier, String:
		return t.Lexeme
	case Number:
		return fmt.Sprintf("%v", t.Number)
	case Unknown:
		return t.Lexeme
	default:
		return t.Type.String()
	}
}

// IsStatementBoundary reports whether t begins a new statement — used by
// the parser's panic-mode error recovery to resynchronize.
func (t Token) IsStatementBoundary() bool {
	switch t.Type {
	case Class, For, Fun, If, Print, Return, Var, While:
		return true
	default:
		return false
	}
}
