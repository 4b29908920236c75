package interp

import "testing"

func TestNumberArithmeticPreservesIntOnlyWhenBothOperandsAreInt(t *testing.T) {
	sum, err := NewInt(2).AddedTo(NewInt(3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	n := sum.(*Number)
	if !n.isInt || n.value != 5 {
		t.Fatalf("expected int 5, got isInt=%v value=%v", n.isInt, n.value)
	}

	mixed, err := NewInt(2).AddedTo(NewFloat(3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m := mixed.(*Number)
	if m.isInt {
		t.Fatal("expected a float result when one operand is a float")
	}
}

func TestNumberDivisionIsAlwaysFloat(t *testing.T) {
	six := NewInt(6)
	start, end := six.Span()
	result, err := six.DivedBy(NewInt(2), start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	n := result.(*Number)
	if n.isInt {
		t.Fatal("division must always produce a float-tagged Number, matching true division")
	}
	if n.value != 3 {
		t.Fatalf("expected 3, got %v", n.value)
	}
}

func TestNumberDivisionByZeroIsRuntimeError(t *testing.T) {
	one := NewInt(1)
	start, end := one.Span()
	_, err := one.DivedBy(NewInt(0), start, end)
	if err == nil {
		t.Fatal("expected a division-by-zero runtime error")
	}
}

func TestNumberPowerTruncatesToInt(t *testing.T) {
	result, err := NewFloat(2).PoweredBy(NewFloat(3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	n := result.(*Number)
	if !n.isInt || n.value != 8 {
		t.Fatalf("expected truncated int 8, got isInt=%v value=%v", n.isInt, n.value)
	}
}

func TestNumberAndOrReturnRawOperand(t *testing.T) {
	// Python-style short circuit: `5 and 0` evaluates to 0 (the falsy operand),
	// not a forced boolean.
	result, err := NewInt(5).AndedBy(NewInt(0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.(*Number).value != 0 {
		t.Fatalf("expected raw operand 0, got %v", result.(*Number).value)
	}

	result, err = NewInt(0).OredBy(NewInt(7))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.(*Number).value != 7 {
		t.Fatalf("expected raw operand 7, got %v", result.(*Number).value)
	}
}

func TestNumberNegated(t *testing.T) {
	neg := NewInt(5).Negated()
	n := neg.(*Number)
	if n.value != -5 || !n.isInt {
		t.Fatalf("expected int -5, got isInt=%v value=%v", n.isInt, n.value)
	}
}
