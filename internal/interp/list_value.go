package interp

import (
	"strings"

	cerrors "github.com/rshaporenkov/gobasic/internal/errors"
)

// List is a mutable, reference-shared sequence of Values (spec.md §3). The
// element sequence lives behind a pointer so that Copy() aliases the same
// backing slice rather than duplicating it — mirroring basic.py's
// `List.copy()` returning `List(self.elements)`, which hands out the same
// Python list object. append/extend/pop and the `+`/`*` operators all
// observe this sharing.
type List struct {
	valueBase
	elements *[]Value
}

// NewList builds a List owning elems as its initial backing slice.
func NewList(elems []Value) *List {
	return &List{elements: &elems}
}

// Elements returns the current backing slice (not a copy).
func (l *List) Elements() []Value { return *l.elements }

func (l *List) Type() string { return "List" }

// Render joins elements with Inspect() (repr()), matching basic.py's
// `List.__str__`: `', '.join(repr(x) for x in elements)`.
func (l *List) Render() string {
	parts := make([]string, len(*l.elements))
	for i, e := range *l.elements {
		parts[i] = e.Inspect()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (l *List) Inspect() string { return l.Render() }
func (l *List) String() string  { return l.Render() }

// IsTrue: empty list is falsy, non-empty is truthy (spec.md §9 open question,
// resolved per the recommendation; see DESIGN.md).
func (l *List) IsTrue() bool { return len(*l.elements) > 0 }

// Copy shares the SAME backing slice pointer as l — this is the aliasing
// the built-ins and the `+`/`*` operators depend on.
func (l *List) Copy() Value {
	cp := &List{elements: l.elements}
	cp.SetSpan(l.Span())
	cp.SetContext(l.Context())
	return cp
}

// AddedTo appends other as a single element onto a copy sharing l's backing
// slice, so the mutation is visible through every other alias of this list
// (spec.md §4.3 List×any `+` row).
func (l *List) AddedTo(other Value) (Value, *cerrors.Error) {
	newList := l.Copy().(*List)
	*newList.elements = append(*newList.elements, other)
	return newList, nil
}

// resolveIndex applies Python-style negative indexing (counts from the end)
// before bounds-checking, per SPEC_FULL.md §5.
func resolveIndex(idx, length int) (int, bool) {
	if idx < 0 {
		idx += length
	}
	if idx < 0 || idx >= length {
		return 0, false
	}
	return idx, true
}

// SubbedBy removes and discards the element at an integer index, returning
// the (possibly out-of-range) error span on other (spec.md §4.3 List×Number
// `-` row).
func (l *List) SubbedBy(other Value) (Value, *cerrors.Error) {
	o, ok := other.(*Number)
	if !ok {
		return nil, illegalOperation(l, other)
	}
	idx, ok := resolveIndex(int(o.value), len(*l.elements))
	if !ok {
		start, end := other.Span()
		return nil, cerrors.NewRuntime(start, end,
			"Element at this index could not be removed from list because list index out of range",
			frameOf(l.Context()))
	}
	newList := l.Copy().(*List)
	elems := *newList.elements
	*newList.elements = append(elems[:idx:idx], elems[idx+1:]...)
	return newList, nil
}

// MultedBy concatenates another List's elements onto a copy sharing l's
// backing slice, so l and its other aliases see the added elements too
// (spec.md §4.3 List×List `*` row).
func (l *List) MultedBy(other Value) (Value, *cerrors.Error) {
	o, ok := other.(*List)
	if !ok {
		return nil, illegalOperation(l, other)
	}
	newList := l.Copy().(*List)
	*newList.elements = append(*newList.elements, *o.elements...)
	return newList, nil
}

// DivedBy accesses the element at an integer index (spec.md §4.3 List×Number
// `/` row).
func (l *List) DivedBy(other Value) (Value, *cerrors.Error) {
	o, ok := other.(*Number)
	if !ok {
		return nil, illegalOperation(l, other)
	}
	idx, ok := resolveIndex(int(o.value), len(*l.elements))
	if !ok {
		start, end := other.Span()
		return nil, cerrors.NewRuntime(start, end,
			"Element at this index could not be accessed because list index out of range",
			frameOf(l.Context()))
	}
	return (*l.elements)[idx], nil
}

// Append mutates l in place, used by the `append` built-in.
func (l *List) Append(v Value) {
	*l.elements = append(*l.elements, v)
}

// Pop removes and returns the element at idx (negative counts from the
// end), used by the `pop` built-in.
func (l *List) Pop(idx int) (Value, bool) {
	resolved, ok := resolveIndex(idx, len(*l.elements))
	if !ok {
		return nil, false
	}
	elems := *l.elements
	v := elems[resolved]
	*l.elements = append(elems[:resolved:resolved], elems[resolved+1:]...)
	return v, true
}

// Extend appends other's elements onto l in place, used by the `extend`
// built-in.
func (l *List) Extend(other *List) {
	*l.elements = append(*l.elements, *other.elements...)
}
