package interp

import cerrors "github.com/rshaporenkov/gobasic/internal/errors"

// Outcome is the single sum type every node evaluation produces: a Value, an
// Error, or one of the three non-local control signals (return/continue/
// break). It plays the role of basic.py's RTResult, collapsing the
// register()/should_return() dance into explicit checks on the struct
// itself — idiomatic Go favors an inspectable value over an implicit
// exception channel.
type Outcome struct {
	Value        Value
	Err          *cerrors.Error
	FuncReturn   Value // non-nil when a `return` is propagating
	LoopContinue bool
	LoopBreak    bool
}

// Ok wraps a plain value with no control signal active.
func Ok(v Value) Outcome {
	return Outcome{Value: v}
}

// Fail wraps an error.
func Fail(err *cerrors.Error) Outcome {
	return Outcome{Err: err}
}

// ReturnSignal wraps a `return` statement's value. A bare `return` passes
// none; a nil v would leave FuncReturn nil and the Outcome would not
// propagate.
func ReturnSignal(v Value) Outcome {
	return Outcome{FuncReturn: v, Value: v}
}

// ContinueSignal represents a `continue` statement.
func ContinueSignal() Outcome {
	return Outcome{LoopContinue: true}
}

// BreakSignal represents a `break` statement.
func BreakSignal() Outcome {
	return Outcome{LoopBreak: true}
}

// ShouldPropagate reports whether evaluation of the enclosing node must stop
// immediately and bubble this Outcome up unchanged — true for an error or any
// of the three control signals.
func (o Outcome) ShouldPropagate() bool {
	return o.Err != nil || o.FuncReturn != nil || o.LoopContinue || o.LoopBreak
}

// ShouldPropagateInLoop reports whether, inside a loop body, this Outcome
// should stop executing further statements of the CURRENT iteration. This is
// true for everything ShouldPropagate is true for; continue/break are
// consumed by the loop node itself rather than bubbling further, which the
// interpreter's for/while handling distinguishes explicitly.
func (o Outcome) ShouldPropagateInLoop() bool {
	return o.ShouldPropagate()
}
