package interp

import (
	"fmt"

	"github.com/rshaporenkov/gobasic/internal/ast"
	cerrors "github.com/rshaporenkov/gobasic/internal/errors"
	"github.com/rshaporenkov/gobasic/internal/token"
)

// Function is a user-defined closure: it captures its body, parameter names,
// auto-return flag, and the context active at its definition site so calls
// resolve free variables lexically (spec.md §3/§4.4 FuncDef).
type Function struct {
	valueBase
	name        string
	paramNames  []string
	body        ast.Node
	autoReturn  bool
	definingCtx *Context
}

// NewFunction builds a Function value. An empty name is rendered as
// "<anonymous>" in diagnostics, matching basic.py's BaseFunction default.
func NewFunction(name string, paramNames []string, body ast.Node, autoReturn bool, definingCtx *Context) *Function {
	if name == "" {
		name = "<anonymous>"
	}
	return &Function{name: name, paramNames: paramNames, body: body, autoReturn: autoReturn, definingCtx: definingCtx}
}

func (f *Function) Type() string   { return "Function" }
func (f *Function) Render() string { return fmt.Sprintf("<function %s>", f.name) }
func (f *Function) Inspect() string { return f.Render() }
func (f *Function) String() string { return f.Render() }
func (f *Function) IsTrue() bool   { return true }

func (f *Function) Copy() Value {
	cp := &Function{name: f.name, paramNames: f.paramNames, body: f.body, autoReturn: f.autoReturn, definingCtx: f.definingCtx}
	cp.SetSpan(f.Span())
	cp.SetContext(f.Context())
	return cp
}

// Execute implements CallableValue: check arity, bind params in a fresh
// frame chained to the function's defining context, evaluate the body, and
// select the return value per spec.md §4.4's "Function invocation" rules.
func (f *Function) Execute(i *Interpreter, args []Value, callSpan [2]token.Position) Outcome {
	execCtx, outcome := generateCallContext(f.name, f.definingCtx, f.Span, f.paramNames, args)
	if outcome.ShouldPropagate() {
		return outcome
	}

	result := i.visit(f.body, execCtx)
	if result.Err != nil {
		return result
	}
	if result.LoopContinue || result.LoopBreak {
		return result
	}

	switch {
	case f.autoReturn && result.FuncReturn == nil:
		return Ok(result.Value)
	case result.FuncReturn != nil:
		return Ok(result.FuncReturn)
	default:
		return Ok(numberNone.Copy())
	}
}

// BuiltinFunction is a name-tagged dispatcher to a host-implemented
// operation, matching basic.py's BuiltInFunction (spec.md §3/§6).
type BuiltinFunction struct {
	valueBase
	name       string
	paramNames []string
	impl       func(i *Interpreter, ctx *Context) Outcome
}

// NewBuiltinFunction registers a built-in with its declared parameter names.
func NewBuiltinFunction(name string, paramNames []string, impl func(i *Interpreter, ctx *Context) Outcome) *BuiltinFunction {
	return &BuiltinFunction{name: name, paramNames: paramNames, impl: impl}
}

func (b *BuiltinFunction) Type() string    { return "BuiltInFunction" }
func (b *BuiltinFunction) Render() string  { return fmt.Sprintf("<built-in function %s>", b.name) }
func (b *BuiltinFunction) Inspect() string { return b.Render() }
func (b *BuiltinFunction) String() string  { return b.Render() }
func (b *BuiltinFunction) IsTrue() bool    { return true }

func (b *BuiltinFunction) Copy() Value {
	cp := &BuiltinFunction{name: b.name, paramNames: b.paramNames, impl: b.impl}
	cp.SetSpan(b.Span())
	cp.SetContext(b.Context())
	return cp
}

func (b *BuiltinFunction) Execute(i *Interpreter, args []Value, callSpan [2]token.Position) Outcome {
	execCtx, outcome := generateCallContext(b.name, nil, b.Span, b.paramNames, args)
	if outcome.ShouldPropagate() {
		return outcome
	}
	return b.impl(i, execCtx)
}

// generateCallContext implements basic.py's BaseFunction.generate_new_context
// plus check_and_populate_args: a fresh Context whose SymbolTable's parent is
// the callee's defining scope (nil for built-ins, which have no lexical
// scope of their own), with a dynamic parent of... the callee's own captured
// context — spec.md §4.4 says the new context's parent is "the function's
// *defining* context", establishing the traceback chain.
func generateCallContext(name string, definingCtx *Context, span func() (token.Position, token.Position), paramNames []string, args []Value) (*Context, Outcome) {
	start, end := span()

	var outerSymbols *Environment
	if definingCtx != nil {
		outerSymbols = definingCtx.SymbolTable
	}

	execCtx := NewChildContext(name, definingCtx, start, NewEnclosedEnvironment(outerSymbols))

	if len(args) > len(paramNames) {
		return nil, Fail(cerrors.NewRuntime(start, end,
			fmt.Sprintf("%d too many args passed into '%s'", len(args)-len(paramNames), name),
			frameOf(execCtx)))
	}
	if len(args) < len(paramNames) {
		return nil, Fail(cerrors.NewRuntime(start, end,
			fmt.Sprintf("%d too few args passed into '%s'", len(paramNames)-len(args), name),
			frameOf(execCtx)))
	}

	for idx, paramName := range paramNames {
		arg := args[idx]
		arg.SetContext(execCtx)
		execCtx.SymbolTable.Set(paramName, arg)
	}

	return execCtx, Ok(nil)
}
