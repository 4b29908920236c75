package interp

import (
	cerrors "github.com/rshaporenkov/gobasic/internal/errors"
	"github.com/rshaporenkov/gobasic/internal/token"
)

// Context is a dynamic call frame: the chain formed by ParentCtx links is
// independent of the lexical SymbolTable chain and exists purely to build
// tracebacks (spec.md §4.5), exactly as basic.py's Context class keeps
// display_name/parent/symbol_table separate from lexical scoping.
type Context struct {
	Name          string
	ParentCtx     *Context
	EntryPosition *token.Position // call-site position in ParentCtx; nil at the root frame
	SymbolTable   *Environment
}

// NewContext creates a root context with no parent, used for the top-level
// program frame.
func NewContext(name string, symbolTable *Environment) *Context {
	return &Context{Name: name, SymbolTable: symbolTable}
}

// NewChildContext creates a call frame entered from parent at entryPos.
func NewChildContext(name string, parent *Context, entryPos token.Position, symbolTable *Environment) *Context {
	return &Context{
		Name:          name,
		ParentCtx:     parent,
		EntryPosition: &entryPos,
		SymbolTable:   symbolTable,
	}
}

// DisplayName implements errors.Frame.
func (c *Context) DisplayName() string { return c.Name }

// EntryPos implements errors.Frame.
func (c *Context) EntryPos() *token.Position { return c.EntryPosition }

// Parent implements errors.Frame. A nil ParentCtx must surface as a literal
// nil interface, not a non-nil cerrors.Frame wrapping a nil *Context.
func (c *Context) Parent() cerrors.Frame {
	if c == nil || c.ParentCtx == nil {
		return nil
	}
	return c.ParentCtx
}

var _ cerrors.Frame = (*Context)(nil)

// frameOf converts a possibly-nil *Context into a possibly-nil cerrors.Frame
// without wrapping a nil pointer in a non-nil interface value — the same
// care Context.Parent takes above, needed everywhere a *Context is handed to
// a cerrors.NewRuntime call.
func frameOf(ctx *Context) cerrors.Frame {
	if ctx == nil {
		return nil
	}
	return ctx
}
