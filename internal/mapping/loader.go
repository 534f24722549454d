package mapping

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is a document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ErrUnknownFormat is returned for a format name other than yaml or json.
var ErrUnknownFormat = errors.New("unknown document format")

// ParseFormat parses a format name, case-insensitively. "yml" is accepted.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// DetectFormat picks the format from the file extension, falling back to
// sniffing the data: JSON when it starts with '{' or '[', YAML otherwise.
func DetectFormat(path string, data []byte) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return FormatJSON
	}

	return FormatYAML
}

// LoadFile loads and parses an options document from the given path.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document %s: %w", path, err)
	}

	doc, err := Parse(data, DetectFormat(path, data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	doc.Source = path

	return doc, nil
}

// Parse parses data in the given format into a Document.
func Parse(data []byte, format Format) (*Document, error) {
	var (
		doc *Document
		err error
	)

	switch format {
	case FormatYAML:
		doc = &Document{}
		err = yaml.Unmarshal(data, doc)
		if err != nil {
			err = fmt.Errorf("failed to parse YAML document: %w", err)
		}
	case FormatJSON:
		doc, err = parseJSON(data)
		if err != nil {
			err = fmt.Errorf("failed to parse JSON document: %w", err)
		}
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	if err != nil {
		return nil, err
	}

	applyDefaults(doc)

	return doc, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(doc *Document) {
	if doc.Version == "" {
		doc.Version = CurrentVersion
	}
}
