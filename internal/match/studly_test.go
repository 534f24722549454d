package match

import (
	"testing"
)

func TestStudly(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// Basic cases
		{"first_name", "FirstName"},
		{"first-name", "FirstName"},
		{"first name", "FirstName"},
		{"FirstName", "FirstName"},
		{"email", "Email"},

		// Only the first letter of a word changes
		{"webPage", "WebPage"},
		{"EMAIL", "EMAIL"},
		{"mailing_postalCode", "MailingPostalCode"},

		// Separators collapse
		{"zip__code", "ZipCode"},
		{" leading", "Leading"},
		{"trailing_", "Trailing"},

		// Other whitespace starts a word but is kept
		{"a\tb", "A\tB"},

		// Edge cases
		{"", ""},
		{"a", "A"},
		{"_", ""},
		{"élan vital", "élanVital"},
		{"über_name", "überName"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := Studly(tt.input)
			if result != tt.expected {
				t.Errorf("Studly(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestStudlyWords(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"favorite color", "Favorite Color"},
		{"favorite_color shade", "FavoriteColor Shade"},
		{"Favorite Color", "Favorite Color"},
		{"a  b", "A  B"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := StudlyWords(tt.input)
			if result != tt.expected {
				t.Errorf("StudlyWords(%q) = %q, want %q", tt.input, result, tt.expected)
			}

			// Applying twice changes nothing
			if again := StudlyWords(result); again != result {
				t.Errorf("StudlyWords not idempotent: %q -> %q", result, again)
			}
		})
	}
}

func TestFold(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"FirstName", "firstname"},
		{"first_name", "firstname"},
		{"first-name", "firstname"},
		{"First Name", "firstname"},
		{"_autopilot_list", "autopilotlist"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := Fold(tt.input)
			if result != tt.expected {
				t.Errorf("Fold(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}
