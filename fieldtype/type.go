package fieldtype

import (
	"slices"
)

//go:generate go tool stringer -type=Type -linecomment -output=type_string.go

// Type is the closed set of value types a CRM contact field can carry.
// String returns the wire tag used in custom field names (e.g. "integer--Age").
type Type int

const (
	_ Type = iota // skip zero value, use it as a default (invalid) value for Type

	Boolean // boolean
	Date    // date
	Float   // float
	Integer // integer
	Null    // NULL
	String  // string

	// TypeTotal is a constant that represents the total number of types defined
	TypeTotal = int(iota)
)

var wireTags = func() map[string]Type {
	tags := make(map[string]Type, TypeTotal-1)
	for t := Type(1); int(t) < TypeTotal; t++ {
		tags[t.String()] = t
	}

	return tags
}()

// All returns every valid type in declaration order.
func All() []Type {
	types := make([]Type, 0, TypeTotal-1)
	for t := Type(1); int(t) < TypeTotal; t++ {
		types = append(types, t)
	}

	return types
}

// Tags returns the wire tags of every valid type, sorted.
func Tags() []string {
	tags := make([]string, 0, len(wireTags))
	for tag := range wireTags {
		tags = append(tags, tag)
	}

	slices.Sort(tags)

	return tags
}

// Parse returns the type for a wire tag. Tags are case-sensitive: "NULL" is valid, "null" is not.
func Parse(tag string) (Type, bool) {
	t, ok := wireTags[tag]
	return t, ok
}

// IsValid reports whether t is one of the declared types.
func (t Type) IsValid() bool {
	return 0 < t && int(t) < TypeTotal
}
