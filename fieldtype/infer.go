package fieldtype

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"time"
)

// ErrInvalidType is matched by every *InvalidTypeError.
var ErrInvalidType = errors.New("invalid data type")

// InvalidTypeError reports a value or tag that cannot be mapped to any Type.
type InvalidTypeError struct {
	// Kind is the offending Go kind or tag, empty when unknown.
	Kind string
}

func (e *InvalidTypeError) Error() string {
	if e.Kind == "" {
		return "invalid data type"
	}

	return fmt.Sprintf("%q is not a valid field data type", e.Kind)
}

func (e *InvalidTypeError) Is(target error) bool {
	return target == ErrInvalidType
}

// datePattern matches an ISO-8601-like timestamp anywhere in a string.
var datePattern = regexp.MustCompile(`(\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2})(\s|\+\d{4}|\+\d{2}:\d{2}|Z)?`)

// IsDateString reports whether s contains a timestamp the CRM treats as a date.
func IsDateString(s string) bool {
	return datePattern.MatchString(s)
}

// Infer determines the type of value. The expected type only widens, never narrows:
//   - an integer is reported as Float when Float is expected
//   - the integers 0 and 1 are reported as Boolean when Boolean is expected
//
// Composite values (maps, slices, structs other than time.Time, pointers...) are rejected.
func Infer(value any, expected Type) (Type, error) {
	switch v := value.(type) {
	case nil:
		return Null, nil
	case bool:
		return Boolean, nil
	case float32, float64:
		return Float, nil
	case time.Time:
		return Date, nil
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return widenInteger(i, expected), nil
		}

		if _, err := v.Float64(); err != nil {
			return 0, &InvalidTypeError{Kind: "number"}
		}

		return Float, nil
	case string:
		return inferString(v), nil
	}

	// named scalar types (type Email string, type Age int...)
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Bool:
		return Boolean, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return widenInteger(rv.Int(), expected), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if rv.Uint() > 1 {
			return widenInteger(2, expected), nil
		}

		return widenInteger(int64(rv.Uint()), expected), nil
	case reflect.Float32, reflect.Float64:
		return Float, nil
	case reflect.String:
		return inferString(rv.String()), nil
	default:
		return 0, &InvalidTypeError{Kind: kindName(rv)}
	}
}

func inferString(s string) Type {
	if IsDateString(s) {
		return Date
	}

	return String
}

func widenInteger(i int64, expected Type) Type {
	switch {
	case expected == Float:
		return Float
	case expected == Boolean && (i == 0 || i == 1):
		return Boolean
	default:
		return Integer
	}
}

func kindName(rv reflect.Value) string {
	switch rv.Kind() {
	case reflect.Map, reflect.Struct:
		return "object"
	case reflect.Slice, reflect.Array:
		return "array"
	default:
		return rv.Kind().String()
	}
}

// Coerce converts value to the Go representation of t when Infer widened it,
// and unwraps json.Number. Any other value is returned unchanged.
func Coerce(value any, t Type) any {
	if n, ok := value.(json.Number); ok {
		if i, err := n.Int64(); err == nil {
			value = i
		} else if f, err := n.Float64(); err == nil {
			value = f
		}
	}

	rv := reflect.ValueOf(value)

	var (
		i     int64
		isInt bool
	)

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, isInt = rv.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		switch t {
		case Float:
			return float64(rv.Uint())
		case Boolean:
			return rv.Uint() != 0
		default:
			return value
		}
	}

	if !isInt {
		return value
	}

	switch t {
	case Float:
		return float64(i)
	case Boolean:
		return i != 0
	default:
		return value
	}
}
