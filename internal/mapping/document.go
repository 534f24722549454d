package mapping

import (
	"fmt"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"contact-mapper/contact"
)

// CurrentVersion is the only document version understood.
const CurrentVersion = "1"

const (
	keyVersion  = "version"
	keyDefaults = "defaults"
	keyContacts = "contacts"
)

// Document is a loaded options document.
type Document struct {
	// Source is the file the document was read from, if any.
	Source   string
	Version  string
	Defaults contact.Options
	Records  []contact.Options
}

// Options returns the options of record i with the defaults applied first.
func (d *Document) Options(i int) contact.Options {
	rec := d.Records[i]
	if len(d.Defaults) == 0 {
		return rec
	}

	opts := make(contact.Options, 0, len(d.Defaults)+len(rec))
	opts = append(opts, d.Defaults...)

	return append(opts, rec...)
}

// Build fills one contact per record. Records that fail are left out and
// their errors combined; the contacts that did build are still returned.
func (d *Document) Build() ([]*contact.Contact, error) {
	var (
		contacts []*contact.Contact
		err      error
	)

	for i := range d.Records {
		c, cerr := contact.New(d.Options(i))
		if cerr != nil {
			err = multierr.Append(err, fmt.Errorf("%s: %w", d.recordKey(i), cerr))
			continue
		}

		contacts = append(contacts, c)
	}

	return contacts, err
}

func (d *Document) recordKey(i int) string {
	if d.Source == "" {
		return fmt.Sprintf("contacts[%d]", i)
	}

	return fmt.Sprintf("%s: contacts[%d]", d.Source, i)
}

// UnmarshalYAML implements yaml.Unmarshaler, keeping mapping key order.
func (d *Document) UnmarshalYAML(node *yaml.Node) error {
	node = resolveAlias(node)

	switch node.Kind {
	case yaml.SequenceNode:
		records, err := yamlRecords(node)
		if err != nil {
			return err
		}

		d.Records = records

		return nil

	case yaml.MappingNode:
		if !isYAMLWrapper(node) {
			rec, err := yamlOptions(node)
			if err != nil {
				return err
			}

			d.Records = []contact.Options{rec}

			return nil
		}

		return d.unmarshalYAMLWrapper(node)

	default:
		return fmt.Errorf("line %d: expected a mapping or a list of mappings", node.Line)
	}
}

func (d *Document) unmarshalYAMLWrapper(node *yaml.Node) error {
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], resolveAlias(node.Content[i+1])

		var err error

		switch key.Value {
		case keyVersion:
			err = value.Decode(&d.Version)
		case keyDefaults:
			d.Defaults, err = yamlOptions(value)
		case keyContacts:
			d.Records, err = yamlRecords(value)
		default:
			err = fmt.Errorf("line %d: unknown document key %q", key.Line, key.Value)
		}

		if err != nil {
			return err
		}
	}

	return nil
}

// isYAMLWrapper reports whether node holds a "contacts" list.
func isYAMLWrapper(node *yaml.Node) bool {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == keyContacts {
			return resolveAlias(node.Content[i+1]).Kind == yaml.SequenceNode
		}
	}

	return false
}

func yamlRecords(node *yaml.Node) ([]contact.Options, error) {
	if node.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("line %d: expected a list of mappings", node.Line)
	}

	records := make([]contact.Options, 0, len(node.Content))

	for _, item := range node.Content {
		rec, err := yamlOptions(resolveAlias(item))
		if err != nil {
			return nil, err
		}

		records = append(records, rec)
	}

	return records, nil
}

func yamlOptions(node *yaml.Node) (contact.Options, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected a mapping", node.Line)
	}

	opts := make(contact.Options, 0, len(node.Content)/2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i]
		if key.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: expected a scalar key", key.Line)
		}

		var value any

		err := node.Content[i+1].Decode(&value)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid value for %q: %w", key.Line, key.Value, err)
		}

		opts = append(opts, contact.Option{Key: key.Value, Value: value})
	}

	return opts, nil
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}

	return node
}
