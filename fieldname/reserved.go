package fieldname

import (
	"slices"
)

// Markers with a special meaning in the contact payload.
const (
	ContactID = "contact_id"
	CreatedAt = "created_at"
	UpdatedAt = "updated_at"
	Email     = "Email"
	OwnerName = "owner_name"

	Unsubscribed = "unsubscribed"

	// Custom is the reserved marker for the collection of custom fields.
	Custom = "custom"

	SessionID = "_autopilot_session_id"
	List      = "_autopilot_list"
	NewEmail  = "_NewEmail"
)

// reserved holds every CRM-defined contact field name (case-sensitive).
var reserved = []string{
	ContactID,
	CreatedAt,
	UpdatedAt,
	Email,
	"Twitter",
	"FirstName",
	"LastName",
	"Salutation",
	"Company",
	"NumberOfEmployees",
	"Title",
	"Industry",
	"Phone",
	"MobilePhone",
	"Fax",
	"Website",
	"MailingStreet",
	"MailingCity",
	"MailingState",
	"MailingPostalCode",
	"MailingCountry",
	OwnerName,
	"LeadSource",
	"Status",
	"LinkedIn",
	Unsubscribed,
	Custom,
	SessionID,
	List,
	NewEmail,
}

var reservedSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(reserved))
	for _, name := range reserved {
		set[name] = struct{}{}
	}

	return set
}()

// aliases force-match common spellings onto reserved fields (saves on custom fields).
// Keys are StudlyCase.
var aliases = map[string]string{
	"Zip":     "MailingPostalCode",
	"Mobile":  "MobilePhone",
	"Site":    "Website",
	"Webpage": "Website",
	"WebPage": "Website",
}

// mailingPrefix is tried in front of unknown names ("City" -> "MailingCity").
const mailingPrefix = "Mailing"

// IsReserved reports whether name is a CRM-defined field name.
func IsReserved(name string) bool {
	_, ok := reservedSet[name]
	return ok
}

// Reserved returns a copy of the reserved field names in declaration order.
func Reserved() []string {
	return slices.Clone(reserved)
}
