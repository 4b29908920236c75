package interp

import "github.com/rshaporenkov/gobasic/internal/token"

// Value is the runtime value interface every Number/String/List/Function/
// BuiltinFunction satisfies, mirroring the capability-interface style of
// go-dws's runtime.Value family (internal/interp/runtime/value_interfaces.go)
// rather than a single closed tagged union.
type Value interface {
	// Type returns the value kind's name. The is_num/is_str/is_list/is_func
	// built-ins test the concrete Go type instead.
	Type() string
	// Render is the str()-equivalent: raw text for String, used when a value
	// is printed directly or embedded via + concatenation.
	Render() string
	// Inspect is the repr()-equivalent: quoted for String, used when a value
	// is rendered as a List element (spec.md SPEC_FULL §5).
	Inspect() string
	// String satisfies fmt.Stringer for debug output/tests.
	String() string
	// IsTrue implements the language's truthiness rule (spec.md §4.3).
	IsTrue() bool
	// Copy returns a shallow duplicate suitable for re-stamping with a new
	// span/context at an access site (spec.md "Ownership"). For List, the
	// element sequence handle is shared, not duplicated.
	Copy() Value

	Span() (start, end token.Position)
	SetSpan(start, end token.Position)
	SetContext(ctx *Context)
	Context() *Context
}

// valueBase factors the span/context bookkeeping shared by every Value kind,
// the same way go-dws embeds a common position/context mixin across its
// value types.
type valueBase struct {
	start, end token.Position
	ctx        *Context
}

func (b *valueBase) Span() (token.Position, token.Position) { return b.start, b.end }
func (b *valueBase) SetSpan(start, end token.Position)      { b.start, b.end = start, end }
func (b *valueBase) SetContext(ctx *Context)                { b.ctx = ctx }
func (b *valueBase) Context() *Context                      { return b.ctx }

// NumericValue is implemented by values usable as arithmetic operands.
type NumericValue interface {
	Value
	Float() float64
}

// CallableValue is implemented by Function and BuiltinFunction.
type CallableValue interface {
	Value
	// Execute invokes the callable with already-evaluated arguments. callSpan
	// is the call site; Function and BuiltinFunction take the same positions
	// from their own span, which visitCall stamps with the call site, for
	// error reporting and the new frame's traceback entry.
	Execute(i *Interpreter, args []Value, callSpan [2]token.Position) Outcome
}

// WithSpan stamps v with a span and returns it, a small convenience used
// throughout the interpreter when constructing fresh values.
func WithSpan[T Value](v T, start, end token.Position) T {
	v.SetSpan(start, end)
	return v
}
