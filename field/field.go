// Package field implements a single typed CRM contact field.
//
// A Field owns one canonical name, one type and one value. The type is fixed
// at construction; every later write must agree with it. Read-only fields
// accept exactly one non-nil value, later writes are silently ignored.
package field

import (
	"errors"
	"fmt"

	"contact-mapper/fieldname"
	"contact-mapper/fieldtype"
)

// ErrTypeMismatch is matched by every *TypeMismatchError.
var ErrTypeMismatch = errors.New("type value mismatch")

// TypeMismatchError reports a non-empty value whose type disagrees with the
// type the field was created with.
type TypeMismatchError struct {
	Field    string
	Expected fieldtype.Type
	Got      fieldtype.Type
	Value    any
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type value mismatch! Expected: %s, got: %s (%v) on field %s",
		e.Expected, e.Got, e.Value, e.Field)
}

func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

// cast is the behavior a field name forces on its field.
type cast struct {
	readOnly bool
	typ      fieldtype.Type
}

// casts lists fields that require a specific behavior.
var casts = map[string]cast{
	fieldname.ContactID:    {readOnly: true},
	fieldname.Custom:       {readOnly: true},
	fieldname.OwnerName:    {readOnly: true},
	fieldname.SessionID:    {readOnly: true},
	fieldname.List:         {readOnly: true},
	fieldname.Unsubscribed: {typ: fieldtype.Boolean},
}

// Field is a single named, typed contact value.
type Field struct {
	name     string
	typ      fieldtype.Type
	value    any
	readOnly bool
	reserved bool
}

// New creates a field.
//
// A name in the "type--Name--Parts" form fixes the type from its tag and
// bypasses name resolution; any other name is canonicalized with
// fieldname.Resolve. When the type is not fixed by the name it comes from, in
// order: the name's cast rule, explicit (when non-zero), the inferred type of value.
func New(name string, value any, explicit fieldtype.Type) (*Field, error) {
	f := &Field{}

	typ, decoded, typed := fieldname.SplitTyped(name)
	if typed {
		f.name = decoded
		f.typ = typ
	} else {
		f.name = fieldname.Resolve(name)
	}

	c := casts[f.name]
	f.readOnly = c.readOnly
	f.reserved = fieldname.IsReserved(f.name)

	if !typed {
		switch {
		case c.typ != 0:
			f.typ = c.typ
		case explicit != 0:
			if !explicit.IsValid() {
				return nil, &fieldtype.InvalidTypeError{Kind: explicit.String()}
			}

			f.typ = explicit
		default:
			inferred, err := fieldtype.Infer(value, 0)
			if err != nil {
				return nil, fmt.Errorf("field %s: %w", f.name, err)
			}

			f.typ = inferred
		}
	}

	if _, err := f.SetValue(value); err != nil {
		return nil, err
	}

	return f, nil
}

// Name returns the canonical field name.
func (f *Field) Name() string {
	return f.name
}

// Type returns the field type.
func (f *Field) Type() fieldtype.Type {
	return f.typ
}

// Value returns the stored value.
func (f *Field) Value() any {
	return f.value
}

// IsReadOnly reports whether the field accepts only its first non-nil value.
func (f *Field) IsReadOnly() bool {
	return f.readOnly
}

// IsReserved reports whether the field is CRM-defined rather than custom.
func (f *Field) IsReserved() bool {
	return f.reserved
}

// SetValue stores value and returns the stored value. Writes to a read-only
// field that already holds a value are ignored and return the current value.
//
// Integers written to a float field are stored as float64, and 0/1 written to
// a boolean field are stored as bool.
func (f *Field) SetValue(value any) (any, error) {
	if f.readOnly && f.value != nil {
		return f.value, nil
	}

	typ, err := fieldtype.Infer(value, f.typ)
	if err != nil {
		return nil, fmt.Errorf("field %s: %w", f.name, err)
	}

	if typ != f.typ {
		if !isEmpty(value) {
			return nil, &TypeMismatchError{Field: f.name, Expected: f.typ, Got: typ, Value: value}
		}

		f.value = value

		return f.value, nil
	}

	f.value = fieldtype.Coerce(value, typ)

	return f.value, nil
}

// FormatName returns the wire name: the bare name for reserved fields,
// "type--Name--Parts" for custom ones.
func (f *Field) FormatName() string {
	if f.reserved {
		return f.name
	}

	return fieldname.Encode(f.typ, f.name)
}

// String implements fmt.Stringer.
func (f *Field) String() string {
	return fmt.Sprintf("%s(%s)=%v", f.name, f.typ, f.value)
}

// isEmpty reports values exempt from the type check: nil and zero-length strings.
func isEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	default:
		return false
	}
}
