package interp

import (
	"fmt"
	"strings"

	cerrors "github.com/rshaporenkov/gobasic/internal/errors"
)

// String is an immutable character sequence (spec.md §3).
type String struct {
	valueBase
	value string
}

// NewString builds a String value.
func NewString(s string) *String { return &String{value: s} }

func (s *String) Type() string { return "String" }

// Render is str()-equivalent: raw text.
func (s *String) Render() string { return s.value }

// Inspect is repr()-equivalent: quoted, matching basic.py's String.__repr__.
func (s *String) Inspect() string { return fmt.Sprintf("%q", s.value) }

func (s *String) String() string { return s.Render() }
func (s *String) IsTrue() bool   { return len(s.value) > 0 }

func (s *String) Copy() Value {
	cp := &String{value: s.value}
	cp.SetSpan(s.Span())
	cp.SetContext(s.Context())
	return cp
}

// AddedTo concatenates two Strings (spec.md §4.3 String×String row).
func (s *String) AddedTo(other Value) (Value, *cerrors.Error) {
	o, ok := other.(*String)
	if !ok {
		return nil, illegalOperation(s, other)
	}
	return stamp(NewString(s.value+o.value), s), nil
}

// MultedBy repeats the string n times (spec.md §4.3 String×Number row). A
// negative repeat count yields the empty string, matching Python's `str * n`
// for negative n.
func (s *String) MultedBy(other Value) (Value, *cerrors.Error) {
	o, ok := other.(*Number)
	if !ok {
		return nil, illegalOperation(s, other)
	}
	n := int(o.value)
	if n < 0 {
		n = 0
	}
	return stamp(NewString(strings.Repeat(s.value, n)), s), nil
}
