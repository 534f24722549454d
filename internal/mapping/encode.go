package mapping

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"
)

// Encode writes v to w in the given format, indented by two spaces.
func Encode(w io.Writer, v any, format Format) error {
	switch format {
	case FormatJSON:
		enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(v)

	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}

		return enc.Close()

	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
