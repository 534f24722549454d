package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics(t *testing.T) {
	var d Diagnostics

	assert.Zero(t, d.Len())
	assert.NoError(t, d.Error())

	d.AddInfo("note", "just so you know", "")
	d.AddWarning(CodeNearMissName, "resolved to a custom field", "Emal", "Email")
	assert.False(t, d.HasErrors())
	assert.NoError(t, d.Error())

	d.AddError("broken", "cannot continue", "custom_fields")
	require.True(t, d.HasErrors())
	assert.EqualError(t, d.Error(), "custom_fields: [broken] cannot continue")

	all := d.All()
	require.Len(t, all, 3)
	assert.Equal(t, SeverityError, all[0].Severity)
	assert.Equal(t, SeverityWarning, all[1].Severity)
	assert.Equal(t, SeverityInfo, all[2].Severity)

	var other Diagnostics
	other.AddWarning(CodeSkippedNested, "nested value skipped", "address")
	d.Merge(other)
	assert.Equal(t, 4, d.Len())
}

func TestDiagnosticString(t *testing.T) {
	tests := []struct {
		name     string
		diag     Diagnostic
		expected string
	}{
		{
			name:     "message only",
			diag:     Diagnostic{Message: "hello"},
			expected: "hello",
		},
		{
			name:     "with code and key",
			diag:     Diagnostic{Code: CodeSkippedNested, Message: "nested value skipped", Key: "address"},
			expected: "address: [skipped-nested] nested value skipped",
		},
		{
			name: "with suggestions",
			diag: Diagnostic{
				Code:        CodeNearMissName,
				Message:     "resolved to a custom field",
				Key:         "Emal",
				Suggestions: []string{"Email"},
			},
			expected: "Emal: [near-miss-name] resolved to a custom field (did you mean Email?)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.diag.String())
		})
	}
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "unknown", Severity(9).String())
}
