// Package lexer turns gobasic source text into a token stream (spec.md §4.1),
// structured the way go-dws's internal/lexer walks its input: a single
// forward pass tracking a Position, with dedicated make* helpers per token
// family.
package lexer

import (
	"strings"

	cerrors "github.com/rshaporenkov/gobasic/internal/errors"
	"github.com/rshaporenkov/gobasic/internal/token"
)

const (
	digits  = "0123456789"
	letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// Lexer is a one-pass, non-backtracking scanner over a source string.
type Lexer struct {
	fileName string
	text     string
	pos      token.Position
	ch       rune // 0 signals end of input, matching Python's current_char = None
}

// New creates a Lexer positioned just before the first rune of text.
func New(fileName, text string) *Lexer {
	l := &Lexer{
		fileName: fileName,
		text:     text,
		pos:      token.Position{Index: -1, Line: 0, Column: -1, FileName: fileName, Source: text},
	}
	l.advance()
	return l
}

func (l *Lexer) advance() {
	l.pos = l.pos.Advance(l.ch)
	if l.pos.Index < len(l.text) {
		l.ch = rune(l.text[l.pos.Index])
	} else {
		l.ch = 0
	}
}

func (l *Lexer) atEnd() bool {
	return l.pos.Index >= len(l.text)
}

// Tokenize scans the entire input and returns its token stream terminated by
// EOF, or the first lexical error encountered — mirroring make_tokens's
// abort-on-illegal-character behavior (spec.md §4.1): on error the returned
// slice is empty.
func (l *Lexer) Tokenize() ([]token.Token, *cerrors.Error) {
	var tokens []token.Token

	for !l.atEnd() {
		switch {
		case l.ch == ' ' || l.ch == '\t':
			l.advance()
		case l.ch == ';' || l.ch == '\n':
			tokens = append(tokens, l.simpleToken(token.NEWLINE))
			l.advance()
		case strings.ContainsRune(digits, l.ch):
			tokens = append(tokens, l.makeNumber())
		case strings.ContainsRune(letters, l.ch):
			tokens = append(tokens, l.makeIdentifier())
		case l.ch == '"':
			tok, err := l.makeString()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
		case l.ch == '+':
			tokens = append(tokens, l.simpleToken(token.PLUS))
			l.advance()
		case l.ch == '-':
			tokens = append(tokens, l.makeMinusOrArrow())
		case l.ch == '*':
			tokens = append(tokens, l.simpleToken(token.MUL))
			l.advance()
		case l.ch == '/':
			tokens = append(tokens, l.simpleToken(token.DIV))
			l.advance()
		case l.ch == '^':
			tokens = append(tokens, l.simpleToken(token.POW))
			l.advance()
		case l.ch == '(':
			tokens = append(tokens, l.simpleToken(token.LPAREN))
			l.advance()
		case l.ch == ')':
			tokens = append(tokens, l.simpleToken(token.RPAREN))
			l.advance()
		case l.ch == '[':
			tokens = append(tokens, l.simpleToken(token.LSQUARE))
			l.advance()
		case l.ch == ']':
			tokens = append(tokens, l.simpleToken(token.RSQUARE))
			l.advance()
		case l.ch == '!':
			tok, err := l.makeNotEquals()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
		case l.ch == '=':
			tokens = append(tokens, l.makeEquals())
		case l.ch == '<':
			tokens = append(tokens, l.makeLessThan())
		case l.ch == '>':
			tokens = append(tokens, l.makeGreaterThan())
		case l.ch == ',':
			tokens = append(tokens, l.simpleToken(token.COMMA))
			l.advance()
		default:
			start := l.pos
			ch := l.ch
			l.advance()
			return nil, cerrors.New(cerrors.IllegalCharacter, start, l.pos, string(ch))
		}
	}

	tokens = append(tokens, token.Token{Type: token.EOF, Start: l.pos, End: l.pos})
	return tokens, nil
}

// simpleToken builds a one-character token whose span is exactly the
// current position advanced by one, matching Token(type, pos_start=self.pos)
// in basic.py.
func (l *Lexer) simpleToken(typ token.Type) token.Token {
	start := l.pos
	end := start.Advance(l.ch)
	return token.Token{Type: typ, Start: start, End: end}
}

func (l *Lexer) makeNumber() token.Token {
	start := l.pos
	var sb strings.Builder
	dotSeen := false

	for !l.atEnd() && (strings.ContainsRune(digits, l.ch) || l.ch == '.') {
		if l.ch == '.' {
			if dotSeen {
				break
			}
			dotSeen = true
		}
		sb.WriteRune(l.ch)
		l.advance()
	}

	typ := token.INT
	if dotSeen {
		typ = token.FLOAT
	}
	return token.Token{Type: typ, Literal: sb.String(), Start: start, End: l.pos}
}

func (l *Lexer) makeIdentifier() token.Token {
	start := l.pos
	var sb strings.Builder

	for !l.atEnd() && (strings.ContainsRune(letters, l.ch) || strings.ContainsRune(digits, l.ch) || l.ch == '_') {
		sb.WriteRune(l.ch)
		l.advance()
	}

	text := sb.String()
	typ := token.IDENT
	if token.IsKeyword(text) {
		typ = token.KEYWORD
	}
	return token.Token{Type: typ, Literal: text, Start: start, End: l.pos}
}

var escapes = map[rune]rune{
	'n': '\n', 't': '\t', '\\': '\\', '"': '"',
}

// makeString reads a double-quoted string literal. An unterminated string
// (no closing quote before EOF) is reported as an IllegalCharError at EOF,
// per spec.md §4.1 and §9's note on the original's fallthrough behavior.
func (l *Lexer) makeString() (token.Token, *cerrors.Error) {
	start := l.pos
	var sb strings.Builder
	l.advance() // skip opening quote

	escaped := false
	closed := false

	for !l.atEnd() {
		if escaped {
			if r, ok := escapes[l.ch]; ok {
				sb.WriteRune(r)
			} else {
				sb.WriteRune(l.ch)
			}
			escaped = false
		} else if l.ch == '\\' {
			escaped = true
		} else if l.ch == '"' {
			closed = true
			break
		} else {
			sb.WriteRune(l.ch)
		}
		l.advance()
	}

	if !closed {
		return token.Token{}, cerrors.New(cerrors.IllegalCharacter, start, l.pos, "unterminated string")
	}

	l.advance() // skip closing quote
	return token.Token{Type: token.STRING, Literal: sb.String(), Start: start, End: l.pos}, nil
}

func (l *Lexer) makeMinusOrArrow() token.Token {
	start := l.pos
	typ := token.MINUS
	l.advance()

	if l.ch == '>' {
		l.advance()
		typ = token.ARROW
	}
	return token.Token{Type: typ, Start: start, End: l.pos}
}

func (l *Lexer) makeNotEquals() (token.Token, *cerrors.Error) {
	start := l.pos
	l.advance()

	if l.ch == '=' {
		l.advance()
		return token.Token{Type: token.NE, Start: start, End: l.pos}, nil
	}

	l.advance()
	return token.Token{}, cerrors.New(cerrors.ExpectedCharacter, start, l.pos, "'=' (after '!')")
}

func (l *Lexer) makeEquals() token.Token {
	start := l.pos
	typ := token.EQ
	l.advance()

	if l.ch == '=' {
		l.advance()
		typ = token.EE
	}
	return token.Token{Type: typ, Start: start, End: l.pos}
}

func (l *Lexer) makeLessThan() token.Token {
	start := l.pos
	typ := token.LT
	l.advance()

	if l.ch == '=' {
		l.advance()
		typ = token.LTE
	}
	return token.Token{Type: typ, Start: start, End: l.pos}
}

func (l *Lexer) makeGreaterThan() token.Token {
	start := l.pos
	typ := token.GT
	l.advance()

	if l.ch == '=' {
		l.advance()
		typ = token.GTE
	}
	return token.Token{Type: typ, Start: start, End: l.pos}
}
