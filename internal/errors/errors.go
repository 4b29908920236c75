// Package errors formats the four diagnostic kinds produced by the lexer,
// parser and interpreter (spec.md §7) with source-highlighted context,
// mirroring the caret-underline rendering of go-dws's internal/errors package
// while adding the traceback rendering spec.md §4.5 requires for runtime
// errors.
package errors

import (
	"fmt"
	"strings"

	"github.com/rshaporenkov/gobasic/internal/token"
)

// Kind names one of the four diagnostic categories (spec.md §7).
type Kind int

const (
	IllegalCharacter Kind = iota
	ExpectedCharacter
	InvalidSyntax
	RuntimeErrorKind
)

func (k Kind) String() string {
	switch k {
	case IllegalCharacter:
		return "Illegal Character"
	case ExpectedCharacter:
		return "Expected Character"
	case InvalidSyntax:
		return "Invalid Syntax"
	case RuntimeErrorKind:
		return "Runtime Error"
	default:
		return "Error"
	}
}

// Frame is the minimal view of a dynamic call frame the traceback renderer
// needs. interp.Context implements this; errors stays free of any
// dependency on the interpreter package.
type Frame interface {
	DisplayName() string
	// EntryPos is the call-site position in the parent frame, or nil for the
	// root program frame.
	EntryPos() *token.Position
	// Parent is the caller's frame, or nil at the root.
	Parent() Frame
}

// Error is a single diagnostic: a source span, a kind, human-readable
// details, and — for runtime errors only — the call frame active when the
// error was raised.
type Error struct {
	Kind    Kind
	Start   token.Position
	End     token.Position
	Details string
	Frame   Frame // non-nil only for RuntimeErrorKind
}

// New builds a non-runtime diagnostic (illegal character, expected character,
// invalid syntax).
func New(kind Kind, start, end token.Position, details string) *Error {
	return &Error{Kind: kind, Start: start, End: end, Details: details}
}

// NewRuntime builds a runtime error, carrying the frame active at the
// failure site so a traceback can be rendered.
func NewRuntime(start, end token.Position, details string, frame Frame) *Error {
	return &Error{Kind: RuntimeErrorKind, Start: start, End: end, Details: details, Frame: frame}
}

// Error implements the standard error interface.
func (e *Error) Error() string {
	var sb strings.Builder

	if e.Kind == RuntimeErrorKind && e.Frame != nil {
		sb.WriteString(Traceback(e.Frame, e.Start))
	}

	sb.WriteString(fmt.Sprintf("%s: %s\n", e.Kind, e.Details))
	sb.WriteString(fmt.Sprintf("File %s, line %d", e.Start.FileName, e.Start.Line+1))
	sb.WriteString("\n\n")
	sb.WriteString(CaretUnderline(e.Start.Source, e.Start, e.End))

	return sb.String()
}

// CaretUnderline renders the source lines spanned by [start, end) with '^'
// markers beneath the spanned columns on every line the span touches — the
// Go rendition of the original `strings_with_arrows` helper (spec.md §4.5).
// When the span crosses multiple lines, each intermediate line is
// underlined in full between its own bounds.
func CaretUnderline(source string, start, end token.Position) string {
	var result strings.Builder

	startIdx := clampIndex(start.Index, len(source))
	lastNewline := strings.LastIndex(source[:startIdx], "\n")
	lineIdxStart := lastNewline
	nextNewline := strings.Index(source[startIdx:], "\n")
	var lineIdxEnd int
	if nextNewline == -1 {
		lineIdxEnd = len(source)
	} else {
		lineIdxEnd = startIdx + nextNewline
	}

	lineCount := end.Line - start.Line + 1
	if lineCount < 1 {
		lineCount = 1
	}

	for i := 0; i < lineCount; i++ {
		line := source[clampIndex(lineIdxStart+1, len(source)):clampIndex(lineIdxEnd, len(source))]

		colStart := 0
		if i == 0 {
			colStart = start.Column
		}
		colEnd := len(line)
		if i == lineCount-1 {
			colEnd = end.Column
		}
		if colEnd < colStart || colEnd > len(line) {
			colEnd = len(line)
		}

		result.WriteString(line)
		result.WriteString("\n")
		result.WriteString(strings.Repeat(" ", colStart))
		if colEnd-colStart > 0 {
			result.WriteString(strings.Repeat("^", colEnd-colStart))
		} else {
			result.WriteString("^")
		}

		lineIdxStart = lineIdxEnd
		next := strings.Index(source[clampIndex(lineIdxStart+1, len(source)):], "\n")
		if next == -1 {
			lineIdxEnd = len(source)
		} else {
			lineIdxEnd = lineIdxStart + 1 + next
		}

		if i != lineCount-1 {
			result.WriteString("\n")
		}
	}

	return strings.ReplaceAll(result.String(), "\t", "")
}

func clampIndex(idx, max int) int {
	if idx < 0 {
		return 0
	}
	if idx > max {
		return max
	}
	return idx
}
