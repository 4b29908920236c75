package interp

import (
	"math"
	"strconv"

	cerrors "github.com/rshaporenkov/gobasic/internal/errors"
	"github.com/rshaporenkov/gobasic/internal/token"
)

// Number is the language's only numeric kind; booleans are Number 1/0
// (spec.md §3). It tracks whether the payload originated from integer-only
// operations so Render prints "3" rather than "3" vs "3.0" inconsistently,
// the way basic.py's Number keeps Python's native int/float distinction.
type Number struct {
	valueBase
	value float64
	isInt bool
}

// NewInt builds an integer-valued Number.
func NewInt(n int64) *Number { return &Number{value: float64(n), isInt: true} }

// NewFloat builds a float-valued Number.
func NewFloat(f float64) *Number { return &Number{value: f} }

// Preset singletons (spec.md §6 "Preset symbols"); each access copies one of
// these via Copy() before it reaches a symbol table read, same as every
// other Value.
var (
	numberNone  = NewInt(0)
	numberTrue  = NewInt(1)
	numberFalse = NewInt(0)
	numberPi    = NewFloat(math.Pi)
)

func (n *Number) Type() string { return "Number" }

func (n *Number) Render() string {
	if n.isInt {
		return strconv.FormatInt(int64(n.value), 10)
	}
	return strconv.FormatFloat(n.value, 'g', -1, 64)
}

func (n *Number) Inspect() string { return n.Render() }
func (n *Number) String() string  { return n.Render() }
func (n *Number) IsTrue() bool    { return n.value != 0 }
func (n *Number) Float() float64  { return n.value }

func (n *Number) Copy() Value {
	cp := &Number{value: n.value, isInt: n.isInt}
	cp.SetSpan(n.Span())
	cp.SetContext(n.Context())
	return cp
}

// AddedTo, SubbedBy, ... implement spec.md §4.3's Number×Number row.
// Each mirrors basic.py's Number.added_to/subbed_by/etc: same-kind-only,
// Value.illegal_operation otherwise.

func (n *Number) AddedTo(other Value) (Value, *cerrors.Error) {
	o, ok := other.(*Number)
	if !ok {
		return nil, illegalOperation(n, other)
	}
	return n.arith(o, func(a, b float64) float64 { return a + b }), nil
}

func (n *Number) SubbedBy(other Value) (Value, *cerrors.Error) {
	o, ok := other.(*Number)
	if !ok {
		return nil, illegalOperation(n, other)
	}
	return n.arith(o, func(a, b float64) float64 { return a - b }), nil
}

func (n *Number) MultedBy(other Value) (Value, *cerrors.Error) {
	o, ok := other.(*Number)
	if !ok {
		return nil, illegalOperation(n, other)
	}
	return n.arith(o, func(a, b float64) float64 { return a * b }), nil
}

// DivedBy implements true division: the result is always a float, and
// division by zero is a runtime error (spec.md §4.3).
func (n *Number) DivedBy(other Value, start, end token.Position) (Value, *cerrors.Error) {
	o, ok := other.(*Number)
	if !ok {
		return nil, illegalOperation(n, other)
	}
	if o.value == 0 {
		return nil, cerrors.NewRuntime(start, end, "Division by zero", frameOf(n.Context()))
	}
	return stamp(NewFloat(n.value/o.value), n), nil
}

// PoweredBy truncates to int, matching basic.py's int(self.value ** other.value).
func (n *Number) PoweredBy(other Value) (Value, *cerrors.Error) {
	o, ok := other.(*Number)
	if !ok {
		return nil, illegalOperation(n, other)
	}
	return stamp(NewInt(int64(math.Pow(n.value, o.value))), n), nil
}

func (n *Number) arith(o *Number, op func(a, b float64) float64) Value {
	result := op(n.value, o.value)
	v := &Number{value: result, isInt: n.isInt && o.isInt}
	if v.isInt {
		v.value = float64(int64(result))
	}
	return stamp(v, n)
}

func boolNumber(b bool) *Number {
	if b {
		return NewInt(1)
	}
	return NewInt(0)
}

func (n *Number) ComparisonEQ(other Value) (Value, *cerrors.Error) {
	o, ok := other.(*Number)
	if !ok {
		return nil, illegalOperation(n, other)
	}
	return stamp(boolNumber(n.value == o.value), n), nil
}

func (n *Number) ComparisonNE(other Value) (Value, *cerrors.Error) {
	o, ok := other.(*Number)
	if !ok {
		return nil, illegalOperation(n, other)
	}
	return stamp(boolNumber(n.value != o.value), n), nil
}

func (n *Number) ComparisonLT(other Value) (Value, *cerrors.Error) {
	o, ok := other.(*Number)
	if !ok {
		return nil, illegalOperation(n, other)
	}
	return stamp(boolNumber(n.value < o.value), n), nil
}

func (n *Number) ComparisonGT(other Value) (Value, *cerrors.Error) {
	o, ok := other.(*Number)
	if !ok {
		return nil, illegalOperation(n, other)
	}
	return stamp(boolNumber(n.value > o.value), n), nil
}

func (n *Number) ComparisonLTE(other Value) (Value, *cerrors.Error) {
	o, ok := other.(*Number)
	if !ok {
		return nil, illegalOperation(n, other)
	}
	return stamp(boolNumber(n.value <= o.value), n), nil
}

func (n *Number) ComparisonGTE(other Value) (Value, *cerrors.Error) {
	o, ok := other.(*Number)
	if !ok {
		return nil, illegalOperation(n, other)
	}
	return stamp(boolNumber(n.value >= o.value), n), nil
}

// AndedBy/OredBy preserve whichever operand's raw value short-circuiting
// picked, not a forced 0/1 — exactly basic.py's `self.value and other.value`
// / `... or ...` on native Python numbers.
func (n *Number) AndedBy(other Value) (Value, *cerrors.Error) {
	o, ok := other.(*Number)
	if !ok {
		return nil, illegalOperation(n, other)
	}
	if !n.IsTrue() {
		return stamp(n.cloneValue(), n), nil
	}
	return stamp(o.cloneValue(), n), nil
}

func (n *Number) OredBy(other Value) (Value, *cerrors.Error) {
	o, ok := other.(*Number)
	if !ok {
		return nil, illegalOperation(n, other)
	}
	if n.IsTrue() {
		return stamp(n.cloneValue(), n), nil
	}
	return stamp(o.cloneValue(), n), nil
}

func (n *Number) cloneValue() *Number { return &Number{value: n.value, isInt: n.isInt} }

func (n *Number) Notted() Value {
	return stamp(boolNumber(n.value == 0), n)
}

func (n *Number) Negated() Value {
	v, _ := n.MultedBy(NewInt(-1))
	return v
}

// stamp copies from's span/context onto v and returns it, factoring the
// repeated `.set_context(self.context)` pattern from basic.py's operators.
func stamp(v Value, from Value) Value {
	start, end := from.Span()
	v.SetSpan(start, end)
	v.SetContext(from.Context())
	return v
}

func illegalOperation(left, right Value) *cerrors.Error {
	lStart, _ := left.Span()
	_, rEnd := right.Span()
	return cerrors.NewRuntime(lStart, rEnd, "Illegal operation", frameOf(left.Context()))
}
