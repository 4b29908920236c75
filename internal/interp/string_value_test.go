package interp

import "testing"

func TestStringRenderVsInspect(t *testing.T) {
	s := NewString(`hi "there"`)
	if s.Render() != `hi "there"` {
		t.Fatalf("Render should be raw text, got %q", s.Render())
	}
	if s.Inspect() != `"hi \"there\""` {
		t.Fatalf("Inspect should be quoted, got %q", s.Inspect())
	}
}

func TestStringAddedToRequiresString(t *testing.T) {
	_, err := NewString("a").AddedTo(NewInt(1))
	if err == nil {
		t.Fatal("expected an illegal-operation error concatenating a String with a Number")
	}
}

func TestStringMultedByNegativeYieldsEmpty(t *testing.T) {
	result, err := NewString("ab").MultedBy(NewInt(-3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.(*String).value != "" {
		t.Fatalf("expected empty string, got %q", result.(*String).value)
	}
}

func TestStringMultedByRepeats(t *testing.T) {
	result, err := NewString("ab").MultedBy(NewInt(3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.(*String).value != "ababab" {
		t.Fatalf("expected ababab, got %q", result.(*String).value)
	}
}
