package contact

import (
	"fmt"
	"slices"

	jsoniter "github.com/json-iterator/go"

	"contact-mapper/apierror"
	"contact-mapper/field"
	"contact-mapper/fieldname"
	"contact-mapper/internal/diagnostic"
)

// RequestKey wraps a prepended upsert request.
const RequestKey = "contact"

// Contact is a CRM contact: fields keyed by canonical name plus a cache of
// list memberships. The zero value is an empty contact ready to use.
type Contact struct {
	fields map[string]*field.Field
	order  []string // insertion order of fields, for deterministic iteration

	// lists is a cache of list membership, not authoritative.
	lists []string

	diagnostics diagnostic.Diagnostics
}

// New creates a contact filled from opts.
func New(opts Options) (*Contact, error) {
	c := &Contact{
		fields: make(map[string]*field.Field),
		lists:  []string{},
	}

	return c.Fill(opts)
}

// FromOptions is an alias of New.
func FromOptions(opts Options) (*Contact, error) {
	return New(opts)
}

// FromMap creates a contact from an unordered mapping; keys are applied in sorted order.
func FromMap(m map[string]any) (*Contact, error) {
	return New(OptionsFromMap(m))
}

// Fill applies opts in order and returns the contact for chaining.
//
//   - custom_fields: every {kind, value, fieldType} entry replaces the field of the same name
//   - lists: replaces the list membership cache
//   - any other key with a scalar value creates or updates its field, like SetField
//   - any other key with a nested value is skipped and reported in Diagnostics
//
// Entries applied before a failing one are kept.
func (c *Contact) Fill(opts Options) (*Contact, error) {
	for _, opt := range opts {
		switch {
		case opt.Key == KeyCustomFields:
			customs, err := decodeCustomFields(opt.Value)
			if err != nil {
				return c, fmt.Errorf("%s: %w", opt.Key, err)
			}

			for _, cf := range customs {
				typ, err := cf.Type()
				if err != nil {
					return c, fmt.Errorf("%s %s: %w", opt.Key, cf.Kind, err)
				}

				f, err := field.New(cf.Kind, cf.Value, typ)
				if err != nil {
					return c, fmt.Errorf("%s %s: %w", opt.Key, cf.Kind, err)
				}

				c.put(f)
			}

		case opt.Key == KeyLists:
			lists, err := decodeLists(opt.Value)
			if err != nil {
				return c, fmt.Errorf("%s: %w", opt.Key, err)
			}

			c.lists = lists

		case isNested(opt.Value):
			c.diagnostics.AddWarning(diagnostic.CodeSkippedNested,
				fmt.Sprintf("nested %T value skipped", opt.Value), opt.Key)

		default:
			if _, err := c.SetField(opt.Key, opt.Value); err != nil {
				return c, fmt.Errorf("%s: %w", opt.Key, err)
			}

			if suggestion, ok := fieldname.Suggest(opt.Key); ok {
				c.diagnostics.AddWarning(diagnostic.CodeNearMissName,
					fmt.Sprintf("stored as custom field %q", fieldname.Resolve(opt.Key)), opt.Key, suggestion)
			}
		}
	}

	return c, nil
}

// Field returns the field name resolves to.
func (c *Contact) Field(name string) (*field.Field, bool) {
	f, ok := c.fields[fieldname.Resolve(name)]
	return f, ok
}

// GetField returns the value of the field name resolves to, or nil.
func (c *Contact) GetField(name string) any {
	if f, ok := c.Field(name); ok {
		return f.Value()
	}

	return nil
}

// SetField creates or updates the field name resolves to and returns its
// stored value, which differs from value when the field is read-only or the
// value was widened.
func (c *Contact) SetField(name string, value any) (any, error) {
	if f, ok := c.Field(name); ok {
		return f.SetValue(value)
	}

	f, err := field.New(name, value, 0)
	if err != nil {
		return nil, err
	}

	c.put(f)

	return f.Value(), nil
}

// ConfirmSaved records the contact id the CRM returned for a save. A contact
// that already holds a different id is left unchanged and fails with
// *apierror.ContactIDConflictError.
func (c *Contact) ConfirmSaved(id string) error {
	if current, _ := c.GetField(fieldname.ContactID).(string); current != "" && current != id {
		return &apierror.ContactIDConflictError{Original: current, New: id}
	}

	_, err := c.SetField(fieldname.ContactID, id)

	return err
}

// HasField reports whether the contact holds the field name resolves to.
func (c *Contact) HasField(name string) bool {
	_, ok := c.Field(name)
	return ok
}

// RemoveField deletes the field name resolves to.
func (c *Contact) RemoveField(name string) {
	resolved := fieldname.Resolve(name)
	if _, ok := c.fields[resolved]; !ok {
		return
	}

	delete(c.fields, resolved)

	c.order = slices.DeleteFunc(c.order, func(n string) bool { return n == resolved })
}

// Fields returns the fields in insertion order.
func (c *Contact) Fields() []*field.Field {
	fields := make([]*field.Field, 0, len(c.order))
	for _, name := range c.order {
		fields = append(fields, c.fields[name])
	}

	return fields
}

// Len returns the number of fields.
func (c *Contact) Len() int {
	return len(c.fields)
}

// Lists returns the cached list identifiers. This is a cache, not an API call.
func (c *Contact) Lists() []string {
	return slices.Clone(c.lists)
}

// HasList reports whether list is in the cached memberships. This is a cache, not an API call.
func (c *Contact) HasList(list string) bool {
	return slices.Contains(c.lists, list)
}

// Diagnostics returns the warnings collected by Fill.
func (c *Contact) Diagnostics() diagnostic.Diagnostics {
	return c.diagnostics
}

// ToRequest builds the upsert request: reserved fields at the top level,
// custom fields under "custom" (omitted when there are none). With prependKey
// the result is wrapped as {"contact": ...}.
func (c *Contact) ToRequest(prependKey bool) map[string]any {
	result := make(map[string]any, len(c.fields))
	custom := make(map[string]any)

	for _, f := range c.Fields() {
		if f.IsReserved() {
			result[f.FormatName()] = f.Value()
		} else {
			custom[f.FormatName()] = f.Value()
		}
	}

	if len(custom) > 0 {
		result[fieldname.Custom] = custom
	}

	if prependKey {
		return map[string]any{RequestKey: result}
	}

	return result
}

// ToArray returns every field value keyed by canonical name.
func (c *Contact) ToArray() map[string]any {
	result := make(map[string]any, len(c.fields))
	for name, f := range c.fields {
		result[name] = f.Value()
	}

	return result
}

// MarshalJSON encodes ToArray.
func (c *Contact) MarshalJSON() ([]byte, error) {
	return jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(c.ToArray())
}

func (c *Contact) put(f *field.Field) {
	if c.fields == nil {
		c.fields = make(map[string]*field.Field)
	}

	if _, ok := c.fields[f.Name()]; !ok {
		c.order = append(c.order, f.Name())
	}

	c.fields[f.Name()] = f
}
