// Package basic is gobasic's public facade: construct an Engine, then call
// Run repeatedly against it the way a REPL or test harness would, sharing
// one global symbol table across calls (spec.md §5, §6). Grounded on
// go-dws's pkg/dwscript engine shape and its functional-options convention
// (internal/interp/options.go).
package basic

import (
	"bufio"
	"io"
	"os"

	"github.com/rshaporenkov/gobasic/internal/errors"
	"github.com/rshaporenkov/gobasic/internal/interp"
	"github.com/rshaporenkov/gobasic/internal/lexer"
	"github.com/rshaporenkov/gobasic/internal/parser"
)

// Engine holds the state that must persist across successive Run calls
// within one session: the global symbol table and the interpreter's
// recursion-depth limit.
type Engine struct {
	global      *interp.Environment
	interpreter *interp.Interpreter
	io          *interp.IO
}

// Option configures an Engine at construction time.
type Option func(*engineConfig)

type engineConfig struct {
	out          io.Writer
	in           io.Reader
	maxCallDepth int
}

// WithOutput redirects print/clear output; defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(c *engineConfig) { c.out = w }
}

// WithInput redirects input()/input_int() reads; defaults to os.Stdin.
func WithInput(r io.Reader) Option {
	return func(c *engineConfig) { c.in = r }
}

// WithMaxCallDepth overrides the default recursion-depth guard
// (interp.DefaultMaxCallDepth); 0 disables the check entirely.
func WithMaxCallDepth(max int) Option {
	return func(c *engineConfig) { c.maxCallDepth = max }
}

// New constructs an Engine with its global symbol table pre-populated with
// the preset constants and built-in functions (spec.md §5).
func New(opts ...Option) *Engine {
	cfg := engineConfig{out: os.Stdout, in: os.Stdin, maxCallDepth: interp.DefaultMaxCallDepth}
	for _, opt := range opts {
		opt(&cfg)
	}

	ioBundle := &interp.IO{Out: cfg.out, In: bufio.NewReader(cfg.in)}

	return &Engine{
		global:      interp.NewGlobalEnvironment(ioBundle),
		interpreter: interp.NewWithMaxCallDepth(cfg.maxCallDepth),
		io:          ioBundle,
	}
}

// Run lexes, parses, and evaluates source against this Engine's shared
// global symbol table, matching spec.md §6's entry-point contract: exactly
// one of (value, error) is non-nil.
func (e *Engine) Run(fileName, source string) (interp.Value, *errors.Error) {
	tokens, lexErr := lexer.New(fileName, source).Tokenize()
	if lexErr != nil {
		return nil, lexErr
	}

	root, parseErr := parser.Parse(tokens)
	if parseErr != nil {
		return nil, parseErr
	}

	programCtx := interp.NewContext("<program>", e.global)
	outcome := e.interpreter.Visit(root, programCtx)
	if outcome.Err != nil {
		return nil, outcome.Err
	}
	if outcome.Value == nil {
		// A continue or break that escapes to the top level carries no value.
		return interp.NewInt(0), nil
	}
	return outcome.Value, nil
}
