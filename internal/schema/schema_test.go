package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contact-mapper/contact"
)

func TestContactRequestValidAgainstSchema(t *testing.T) {
	c, err := contact.New(contact.Options{
		{Key: "email", Value: "ann@example.com"},
		{Key: "age", Value: 30},
		{Key: "unsubscribed", Value: 0},
		{Key: "nickname", Value: nil},
		{Key: contact.KeyCustomFields, Value: []contact.CustomField{
			{Kind: "date--Renewal", Value: "2024-01-31T10:20:30Z"},
		}},
	})
	require.NoError(t, err)

	assert.NoError(t, ValidateRequest(c.ToRequest(true)))
}

func TestEmptyContactRequestValidAgainstSchema(t *testing.T) {
	c, err := contact.New(nil)
	require.NoError(t, err)

	assert.NoError(t, ValidateRequest(c.ToRequest(true)))
}

func TestValidateRequestRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  any
	}{
		{
			name: "missing contact key",
			doc:  map[string]any{"Email": "ann@example.com"},
		},
		{
			name: "nested reserved field",
			doc:  map[string]any{"contact": map[string]any{"Email": map[string]any{"x": 1}}},
		},
		{
			name: "untyped custom field name",
			doc:  map[string]any{"contact": map[string]any{"custom": map[string]any{"Age": 30}}},
		},
		{
			name: "lower-case null tag",
			doc:  map[string]any{"contact": map[string]any{"custom": map[string]any{"null--Nothing": nil}}},
		},
		{
			name: "empty custom",
			doc:  map[string]any{"contact": map[string]any{"custom": map[string]any{}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, ValidateRequest(tt.doc))
		})
	}
}

func TestValidateBulk(t *testing.T) {
	c, err := contact.New(contact.Options{{Key: "email", Value: "ann@example.com"}})
	require.NoError(t, err)

	assert.NoError(t, ValidateBulk(map[string]any{"contacts": []any{c.ToRequest(false)}}))

	tooMany := make([]any, 101)
	for i := range tooMany {
		tooMany[i] = c.ToRequest(false)
	}

	assert.Error(t, ValidateBulk(map[string]any{"contacts": tooMany}))
	assert.Error(t, ValidateBulk(map[string]any{"contacts": []any{c.ToRequest(true)}}))
}
