package contact

import (
	"errors"
	"fmt"
	"reflect"
	"slices"

	"contact-mapper/fieldtype"
)

// Option keys with a meaning of their own.
const (
	// KeyCustomFields holds a sequence of CustomField triples.
	KeyCustomFields = "custom_fields"
	// KeyLists holds the identifiers of the lists the contact belongs to.
	KeyLists = "lists"
)

// ErrMalformedOptions is returned when a custom_fields or lists entry has the wrong shape.
var ErrMalformedOptions = errors.New("malformed contact options")

// Option is a single raw key/value pair.
type Option struct {
	Key   string
	Value any
}

// Options is an ordered raw option mapping. Entries are applied in order.
type Options []Option

// OptionsFromMap converts m to Options, sorted by key.
func OptionsFromMap(m map[string]any) Options {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	opts := make(Options, 0, len(keys))
	for _, k := range keys {
		opts = append(opts, Option{Key: k, Value: m[k]})
	}

	return opts
}

// CustomField is a field as the CRM reports it: Kind is the raw name, possibly
// in the "type--Name" form, FieldType an optional wire type tag.
type CustomField struct {
	Kind      string `json:"kind" yaml:"kind"`
	Value     any    `json:"value" yaml:"value"`
	FieldType string `json:"fieldType,omitempty" yaml:"fieldType,omitempty"`
}

// Type parses FieldType. An empty FieldType yields the zero Type.
func (cf CustomField) Type() (fieldtype.Type, error) {
	if cf.FieldType == "" {
		return 0, nil
	}

	t, ok := fieldtype.Parse(cf.FieldType)
	if !ok {
		return 0, &fieldtype.InvalidTypeError{Kind: cf.FieldType}
	}

	return t, nil
}

// decodeCustomFields accepts []CustomField or a decoded sequence of
// {kind, value, fieldType} mappings.
func decodeCustomFields(value any) ([]CustomField, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case []CustomField:
		return v, nil
	case []map[string]any:
		out := make([]CustomField, 0, len(v))
		for i, m := range v {
			cf, err := customFieldFromMap(m)
			if err != nil {
				return nil, fmt.Errorf("entry %d: %w", i, err)
			}

			out = append(out, cf)
		}

		return out, nil
	case []any:
		out := make([]CustomField, 0, len(v))
		for i, item := range v {
			var (
				cf  CustomField
				err error
			)

			switch it := item.(type) {
			case CustomField:
				cf = it
			case map[string]any:
				cf, err = customFieldFromMap(it)
			default:
				err = fmt.Errorf("%w: expected a mapping, got %T", ErrMalformedOptions, item)
			}

			if err != nil {
				return nil, fmt.Errorf("entry %d: %w", i, err)
			}

			out = append(out, cf)
		}

		return out, nil
	default:
		return nil, fmt.Errorf("%w: expected a sequence, got %T", ErrMalformedOptions, value)
	}
}

func customFieldFromMap(m map[string]any) (CustomField, error) {
	kind, ok := m["kind"].(string)
	if !ok {
		return CustomField{}, fmt.Errorf("%w: kind must be a string, got %T", ErrMalformedOptions, m["kind"])
	}

	cf := CustomField{Kind: kind, Value: m["value"]}

	switch ft := m["fieldType"].(type) {
	case nil:
	case string:
		cf.FieldType = ft
	default:
		return CustomField{}, fmt.Errorf("%w: fieldType must be a string, got %T", ErrMalformedOptions, ft)
	}

	return cf, nil
}

// decodeLists accepts any sequence; items that are not strings are formatted with %v.
func decodeLists(value any) ([]string, error) {
	switch v := value.(type) {
	case nil:
		return []string{}, nil
	case []string:
		return slices.Clone(v), nil
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, fmt.Errorf("%w: lists must be a sequence, got %T", ErrMalformedOptions, value)
	}

	lists := make([]string, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		item := rv.Index(i).Interface()
		if s, ok := item.(string); ok {
			lists = append(lists, s)
		} else {
			lists = append(lists, fmt.Sprint(item))
		}
	}

	return lists, nil
}

// isNested reports values that are structures rather than scalars.
func isNested(value any) bool {
	if value == nil {
		return false
	}

	switch reflect.TypeOf(value).Kind() {
	case reflect.Map, reflect.Slice, reflect.Array:
		return true
	default:
		return false
	}
}
