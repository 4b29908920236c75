// Package token defines the lexical token kinds and source-position tracking
// shared by the lexer, parser and interpreter.
package token

import "fmt"

// Type identifies the lexical category of a Token.
type Type int

// Token type constants, grouped the way the grammar in spec.md §3 groups them.
const (
	ILLEGAL Type = iota
	EOF

	// Literals and identifiers.
	INT
	FLOAT
	STRING
	IDENT
	KEYWORD

	// Single- and multi-char operators and punctuation.
	PLUS
	MINUS
	MUL
	DIV
	POW
	EQ
	LPAREN
	RPAREN
	LSQUARE
	RSQUARE
	EE
	NE
	LT
	GT
	LTE
	GTE
	COMMA
	ARROW
	NEWLINE
)

var typeNames = map[Type]string{
	ILLEGAL: "ILLEGAL",
	EOF:     "EOF",
	INT:     "INT",
	FLOAT:   "FLOAT",
	STRING:  "STRING",
	IDENT:   "IDENTIFIER",
	KEYWORD: "KEYWORD",
	PLUS:    "PLUS",
	MINUS:   "MINUS",
	MUL:     "MUL",
	DIV:     "DIV",
	POW:     "POW",
	EQ:      "EQ",
	LPAREN:  "LPAREN",
	RPAREN:  "RPAREN",
	LSQUARE: "LSQUARE",
	RSQUARE: "RSQUARE",
	EE:      "EE",
	NE:      "NE",
	LT:      "LT",
	GT:      "GT",
	LTE:     "LTE",
	GTE:     "GTE",
	COMMA:   "COMMA",
	ARROW:   "ARROW",
	NEWLINE: "NEWLINE",
}

// String renders the type's symbolic name, used in error messages and tests.
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Keywords is the set of reserved identifiers (spec.md §3).
var Keywords = map[string]bool{
	"var": true, "and": true, "or": true, "not": true,
	"if": true, "then": true, "elif": true, "else": true,
	"for": true, "to": true, "step": true, "while": true,
	"func": true, "end": true, "return": true, "continue": true, "break": true,
}

// IsKeyword reports whether ident is one of the reserved words above.
func IsKeyword(ident string) bool {
	return Keywords[ident]
}

// Position locates a single point in a source file: byte index, 0-based line
// and column, the file name and the full source text (needed later to render
// a caret-underlined excerpt). Mirrors go-dws's lexer.Position.
type Position struct {
	Index    int
	Line     int
	Column   int
	FileName string
	Source   string
}

// Advance moves the position past ch, rolling Line/Column over on a newline.
func (p Position) Advance(ch rune) Position {
	p.Index++
	p.Column++
	if ch == '\n' {
		p.Line++
		p.Column = 0
	}
	return p
}

// Token is a single lexical unit: its Type, optional literal payload, and the
// half-open source span [Start, End) it was read from.
type Token struct {
	Type    Type
	Literal string
	Start   Position
	End     Position
}

// Matches reports whether the token is a KEYWORD (or any other Type) token
// carrying the given literal text — used throughout the parser the way
// basic.py's Token.matches is.
func (t Token) Matches(typ Type, literal string) bool {
	return t.Type == typ && t.Literal == literal
}

// String gives a debug representation, e.g. "INT:5" or "NEWLINE".
func (t Token) String() string {
	if t.Literal != "" {
		return fmt.Sprintf("%s:%s", t.Type, t.Literal)
	}
	return t.Type.String()
}
