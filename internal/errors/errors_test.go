package errors

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/rshaporenkov/gobasic/internal/token"
)

func pos(fileName, source string, index, line, column int) token.Position {
	return token.Position{Index: index, Line: line, Column: column, FileName: fileName, Source: source}
}

func TestCaretUnderlineSingleLine(t *testing.T) {
	source := "1 + foo"
	start := pos("<test>", source, 4, 0, 4)
	end := pos("<test>", source, 7, 0, 7)

	snaps.MatchSnapshot(t, CaretUnderline(source, start, end))
}

func TestErrorRendersFileAndLine(t *testing.T) {
	source := "1 +"
	start := pos("<test>", source, 2, 0, 2)
	end := pos("<test>", source, 3, 0, 3)

	err := New(InvalidSyntax, start, end, "Expected int, float, identifier")
	snaps.MatchSnapshot(t, err.Error())
}

// fakeFrame is a minimal Frame implementation for traceback tests, standing
// in for interp.Context without pulling in the interp package.
type fakeFrame struct {
	name     string
	entryPos *token.Position
	parent   Frame
}

func (f *fakeFrame) DisplayName() string       { return f.name }
func (f *fakeFrame) EntryPos() *token.Position { return f.entryPos }
func (f *fakeFrame) Parent() Frame             { return f.parent }

func TestTracebackWalksParentChain(t *testing.T) {
	source := "f()\ng()\n5 / 0"
	callSite := pos("<test>", source, 4, 1, 0)

	root := &fakeFrame{name: "<program>"}
	inner := &fakeFrame{name: "g", entryPos: &callSite, parent: root}

	errPos := pos("<test>", source, 9, 2, 0)
	snaps.MatchSnapshot(t, Traceback(inner, errPos))
}

func TestRuntimeErrorIncludesTraceback(t *testing.T) {
	source := "5 / 0"
	start := pos("<test>", source, 0, 0, 0)
	end := pos("<test>", source, 5, 0, 5)

	root := &fakeFrame{name: "<program>"}
	err := NewRuntime(start, end, "Division by zero", root)

	snaps.MatchSnapshot(t, err.Error())
}
