package errors

import (
	"fmt"
	"strings"

	"github.com/rshaporenkov/gobasic/internal/token"
)

// Traceback renders the dynamic call chain starting at frame, the way
// basic.py's RTError.generate_traceback does: walking Context.parent from
// the error site outward, then printing outermost-first so the line that
// actually raised the error reads last (spec.md §4.5).
//
// errPos is the position of the expression that raised the error; every
// other line in the trace uses the call-site position recorded by the
// frame the call entered (Frame.EntryPos).
func Traceback(frame Frame, errPos token.Position) string {
	type line struct {
		pos  token.Position
		name string
	}

	var lines []line
	pos := errPos
	f := frame

	for f != nil {
		lines = append(lines, line{pos: pos, name: f.DisplayName()})
		entry := f.EntryPos()
		next := f.Parent()
		if entry != nil {
			pos = *entry
		}
		f = next
	}

	var sb strings.Builder
	sb.WriteString("Traceback (most recent call last):\n")
	for i := len(lines) - 1; i >= 0; i-- {
		sb.WriteString(fmt.Sprintf("    File %s, line %d, in %s\n", lines[i].pos.FileName, lines[i].pos.Line+1, lines[i].name))
	}
	return sb.String()
}
