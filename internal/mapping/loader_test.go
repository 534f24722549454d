package mapping

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contact-mapper/contact"
)

func keys(opts contact.Options) []string {
	out := make([]string, len(opts))
	for i, o := range opts {
		out[i] = o.Key
	}

	return out
}

func TestParseYAMLWrapper(t *testing.T) {
	data := `
version: "1"
defaults:
  lists: [newsletter]
contacts:
  - zip: "10001"
    email: ann@example.com
    first_name: Ann
    custom_fields:
      - kind: integer--Age
        value: 30
  - email: bob@example.com
    unsubscribed: 1
`

	doc, err := Parse([]byte(data), FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, "1", doc.Version)
	require.Len(t, doc.Records, 2)
	assert.Equal(t, []string{"zip", "email", "first_name", "custom_fields"}, keys(doc.Records[0]))
	assert.Equal(t, []string{"lists", "email", "unsubscribed"}, keys(doc.Options(1)))

	contacts, err := doc.Build()
	require.NoError(t, err)
	require.Len(t, contacts, 2)

	ann := contacts[0]
	assert.Equal(t, "10001", ann.GetField("MailingPostalCode"))
	assert.Equal(t, 30, ann.GetField("integer--Age"))
	assert.True(t, ann.HasList("newsletter"))
	assert.Equal(t, true, contacts[1].GetField("unsubscribed"))
}

func TestParseYAMLShapes(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		records int
	}{
		{name: "single record", data: "email: ann@example.com\nage: 30\n", records: 1},
		{name: "list of records", data: "- email: a@example.com\n- email: b@example.com\n", records: 2},
		{name: "empty", data: "", records: 0},
		{name: "contacts that are not a list", data: "contacts: none\nemail: a@example.com\n", records: 1},
		{name: "anchors", data: "contacts:\n  - &ann {email: a@example.com}\n  - *ann\n", records: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse([]byte(tt.data), FormatYAML)
			require.NoError(t, err)
			assert.Len(t, doc.Records, tt.records)
		})
	}
}

func TestParseYAMLErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "scalar document", data: "hello\n"},
		{name: "list of scalars", data: "- a\n- b\n"},
		{name: "unknown wrapper key", data: "contacts: []\nextra: 1\n"},
		{name: "defaults not a mapping", data: "contacts: []\ndefaults: [a]\n"},
		{name: "complex key", data: "? [a, b]\n: c\n"},
		{name: "syntax", data: "a: [b\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), FormatYAML)
			assert.Error(t, err)
		})
	}
}

func TestParseJSON(t *testing.T) {
	data := `{
  "version": 1,
  "defaults": {"lists": ["newsletter"]},
  "contacts": [
    {"zip": "10001", "email": "ann@example.com", "score": 1.5, "age": 30,
     "custom_fields": [{"kind": "integer--Age", "value": 30}]},
    {"email": "bob@example.com"}
  ]
}`

	doc, err := Parse([]byte(data), FormatJSON)
	require.NoError(t, err)

	assert.Equal(t, "1", doc.Version)
	assert.Equal(t, []string{"lists"}, keys(doc.Defaults))
	require.Len(t, doc.Records, 2)
	assert.Equal(t, []string{"zip", "email", "score", "age", "custom_fields"}, keys(doc.Records[0]))
	assert.Equal(t, json.Number("30"), doc.Records[0][3].Value)

	contacts, err := doc.Build()
	require.NoError(t, err)
	require.Len(t, contacts, 2)

	ann := contacts[0]
	assert.Equal(t, int64(30), ann.GetField("Age"))
	assert.Equal(t, 1.5, ann.GetField("Score"))
	assert.Equal(t, int64(30), ann.GetField("integer--Age"))
	assert.True(t, contacts[1].HasList("newsletter"))
}

func TestParseJSONShapes(t *testing.T) {
	doc, err := Parse([]byte(`{"email": "ann@example.com", "contacts": 3}`), FormatJSON)
	require.NoError(t, err)
	require.Len(t, doc.Records, 1)
	assert.Equal(t, []string{"email", "contacts"}, keys(doc.Records[0]))

	doc, err = Parse([]byte(`[{"email": "a@example.com"}, {}]`), FormatJSON)
	require.NoError(t, err)
	assert.Len(t, doc.Records, 2)

	doc, err = Parse([]byte("  \n"), FormatJSON)
	require.NoError(t, err)
	assert.Empty(t, doc.Records)
	assert.Equal(t, CurrentVersion, doc.Version)
}

func TestParseJSONErrors(t *testing.T) {
	for _, data := range []string{
		`"hello"`,
		`[1, 2]`,
		`{"contacts": [], "extra": 1}`,
		`{"contacts": [], "defaults": [1]}`,
		`{"email": }`,
	} {
		t.Run(data, func(t *testing.T) {
			_, err := Parse([]byte(data), FormatJSON)
			assert.Error(t, err)
		})
	}
}

func TestParseUnknownFormat(t *testing.T) {
	_, err := Parse([]byte("{}"), Format("toml"))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"yaml": FormatYAML, "YML": FormatYAML, "Json": FormatJSON} {
		got, err := ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseFormat("xml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, DetectFormat("a.JSON", nil))
	assert.Equal(t, FormatYAML, DetectFormat("a.yml", []byte("{}")))
	assert.Equal(t, FormatJSON, DetectFormat("a.txt", []byte("  [{}]")))
	assert.Equal(t, FormatYAML, DetectFormat("a", []byte("email: x")))
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "contacts.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"first_name": "Ann"}]`), 0o600))

	doc, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, doc.Source)
	require.Len(t, doc.Records, 1)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestBuildCollectsErrors(t *testing.T) {
	data := `
- first_name: Ann
- age: [1, 2]
- lists: 3
- custom_fields: [{kind: Age, value: 1, fieldType: decimal}]
`

	doc, err := Parse([]byte(data), FormatYAML)
	require.NoError(t, err)

	contacts, err := doc.Build()
	require.Error(t, err)
	// nested values are skipped, not rejected
	assert.Len(t, contacts, 2)
	assert.Contains(t, err.Error(), "contacts[2]")
	assert.Contains(t, err.Error(), "contacts[3]")
}

func TestEncode(t *testing.T) {
	v := map[string]any{"contact": map[string]any{"Email": "ann@example.com"}}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, v, FormatJSON))
	assert.JSONEq(t, `{"contact": {"Email": "ann@example.com"}}`, buf.String())

	buf.Reset()
	require.NoError(t, Encode(&buf, v, FormatYAML))
	assert.YAMLEq(t, "contact:\n  Email: ann@example.com\n", buf.String())

	assert.ErrorIs(t, Encode(&buf, v, Format("xml")), ErrUnknownFormat)
}
