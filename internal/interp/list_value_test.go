package interp

import "testing"

func numberList(vals ...int64) *List {
	elems := make([]Value, len(vals))
	for i, v := range vals {
		elems[i] = NewInt(v)
	}
	return NewList(elems)
}

func TestListCopySharesBackingSlice(t *testing.T) {
	original := numberList(1, 2, 3)
	alias := original.Copy().(*List)

	alias.Append(NewInt(4))

	if len(original.Elements()) != 4 {
		t.Fatalf("expected mutation through a Copy()'d alias to be visible on the original, got %d elements", len(original.Elements()))
	}
}

func TestListNegativeIndexDiv(t *testing.T) {
	list := numberList(10, 20, 30)
	v, err := list.DivedBy(NewInt(-1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.(*Number).value != 30 {
		t.Fatalf("expected last element 30, got %v", v.(*Number).value)
	}
}

func TestListOutOfRangeDivIsRuntimeError(t *testing.T) {
	list := numberList(1, 2)
	_, err := list.DivedBy(NewInt(5))
	if err == nil {
		t.Fatal("expected an out-of-range runtime error")
	}
}

func TestListSubbedByRemovesElement(t *testing.T) {
	list := numberList(1, 2, 3)
	result, err := list.SubbedBy(NewInt(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	remaining := result.(*List).Elements()
	if len(remaining) != 2 || remaining[0].(*Number).value != 1 || remaining[1].(*Number).value != 3 {
		t.Fatalf("expected [1, 3], got %v", result.(*List).Render())
	}
}

func TestListAddedToAppendsSingleElement(t *testing.T) {
	list := numberList(1, 2)
	result, err := list.AddedTo(NewInt(3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.(*List).Render() != "[1, 2, 3]" {
		t.Fatalf("expected [1, 2, 3], got %s", result.(*List).Render())
	}
}

func TestListPopNegativeIndex(t *testing.T) {
	list := numberList(1, 2, 3)
	v, ok := list.Pop(-1)
	if !ok {
		t.Fatal("expected Pop(-1) to succeed")
	}
	if v.(*Number).value != 3 {
		t.Fatalf("expected popped value 3, got %v", v.(*Number).value)
	}
	if len(list.Elements()) != 2 {
		t.Fatalf("expected 2 remaining elements, got %d", len(list.Elements()))
	}
}

func TestListRenderUsesInspectForElements(t *testing.T) {
	list := NewList([]Value{NewString("a"), NewInt(1)})
	want := `["a", 1]`
	if list.Render() != want {
		t.Fatalf("expected %s, got %s", want, list.Render())
	}
}

func TestListEmptyIsFalsy(t *testing.T) {
	if NewList(nil).IsTrue() {
		t.Fatal("expected an empty list to be falsy")
	}
	if !numberList(1).IsTrue() {
		t.Fatal("expected a non-empty list to be truthy")
	}
}
