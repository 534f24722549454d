package fieldname

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"contact-mapper/fieldtype"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// Exact reserved names
		{"Email", "Email"},
		{"contact_id", "contact_id"},
		{"owner_name", "owner_name"},
		{"_NewEmail", "_NewEmail"},
		{"_autopilot_list", "_autopilot_list"},
		{"unsubscribed", "unsubscribed"},

		// StudlyCase reserved names
		{"email", "Email"},
		{"first_name", "FirstName"},
		{"first name", "FirstName"},
		{"last-name", "LastName"},
		{"lead source", "LeadSource"},
		{"linked_in", "LinkedIn"},
		{"number_of_employees", "NumberOfEmployees"},

		// Aliases
		{"zip", "MailingPostalCode"},
		{"Zip", "MailingPostalCode"},
		{"mobile", "MobilePhone"},
		{"site", "Website"},
		{"webpage", "Website"},
		{"WebPage", "Website"},
		{"web_page", "Website"},

		// Mailing prefix
		{"city", "MailingCity"},
		{"street", "MailingStreet"},
		{"postal_code", "MailingPostalCode"},
		{"country", "MailingCountry"},

		// Delimited custom field names
		{"integer--Age", "Age"},
		{"string--Favorite--Color", "Favorite Color"},
		{"NULL--Nothing", "Nothing"},
		{"null--Nothing", "null Nothing"},
		{"foo--bar", "foo bar"},
		{"integer--Email", "Email"},

		// Custom field fallback
		{"favorite color", "Favorite Color"},
		{"favorite_color", "FavoriteColor"},
		{"FIRST_NAME", "FIRSTNAME"},
		{"new_email", "NewEmail"},
		{"ContactId", "ContactId"},
		{"école", "école"},
		{"école_maternelle", "écoleMaternelle"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Resolve(tt.input))
		})
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	inputs := []string{
		"Email", "email", "first_name", "zip", "mobile", "site", "webpage", "WebPage",
		"city", "postal_code", "favorite color", "favorite_color", "Favorite Color",
		"integer--Age", "string--Favorite--Color", "a  b", "owner_name", "", "x",
		"Unsubscribed", "_NewEmail", "new_email", "NumberOfEmployees",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			once := Resolve(in)
			assert.Equal(t, once, Resolve(once))
		})
	}
}

func TestReservedIsACopy(t *testing.T) {
	names := Reserved()
	assert.Len(t, names, 30)
	assert.Contains(t, names, "MailingPostalCode")

	names[0] = "mutated"
	assert.True(t, IsReserved(ContactID))
	assert.False(t, IsReserved("mutated"))
	assert.Equal(t, ContactID, Reserved()[0])
}

func TestIsReservedIsCaseSensitive(t *testing.T) {
	assert.True(t, IsReserved("Email"))
	assert.False(t, IsReserved("email"))
	assert.False(t, IsReserved("EMAIL"))
}

func TestSplitTyped(t *testing.T) {
	tests := []struct {
		input    string
		wantType fieldtype.Type
		wantName string
		wantOK   bool
	}{
		{"integer--Age", fieldtype.Integer, "Age", true},
		{"date--Last--Seen--At", fieldtype.Date, "Last Seen At", true},
		{"NULL--Nothing", fieldtype.Null, "Nothing", true},
		{"null--Nothing", 0, "", false},
		{"Age", 0, "", false},
		{"bogus--Age", 0, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			typ, name, ok := SplitTyped(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantType, typ)
			assert.Equal(t, tt.wantName, name)
		})
	}
}

func TestEncode(t *testing.T) {
	assert.Equal(t, "integer--Age", Encode(fieldtype.Integer, "Age"))
	assert.Equal(t, "string--Favorite--Color", Encode(fieldtype.String, "Favorite Color"))
	assert.Equal(t, "NULL--Nothing", Encode(fieldtype.Null, "Nothing"))

	// Encode and SplitTyped are inverse for single-spaced names
	typ, name, ok := SplitTyped(Encode(fieldtype.Float, "Lifetime Value"))
	assert.True(t, ok)
	assert.Equal(t, fieldtype.Float, typ)
	assert.Equal(t, "Lifetime Value", name)
}

func TestSuggest(t *testing.T) {
	tests := []struct {
		input  string
		want   string
		wantOK bool
	}{
		{"Emal", "Email", true},
		{"first_nmae", "FirstName", true},
		{"Phones", "Phone", true},
		{"faxx", "Fax", true},

		// Below match.DefaultMinScore
		{"fx", "", false},

		// Reserved names need no suggestion
		{"email", "", false},
		{"zip", "", false},

		// Unrelated custom fields
		{"favorite color", "", false},
		{"integer--Age", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := Suggest(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
