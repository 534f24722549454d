// Package bulk assembles bulk upsert payloads.
package bulk

import (
	"fmt"

	"go.uber.org/multierr"

	"contact-mapper/apierror"
	"contact-mapper/contact"
	"contact-mapper/fieldname"
	"contact-mapper/utils"
)

// RequestKey wraps the contact list of a bulk payload.
const RequestKey = "contacts"

// Build returns {"contacts": [ToRequest(false)...]} for contacts.
//
// More than apierror.MaxUpload contacts fail with apierror.ErrUploadLimitExceeded.
// Every contact without an email yields a *apierror.BulkSaveError; all of
// them are combined into the returned error and no payload is produced.
func Build(contacts []*contact.Contact) (map[string]any, error) {
	if !utils.IsInRange(0, len(contacts), apierror.MaxUpload) {
		return nil, fmt.Errorf("%d contacts: %w", len(contacts), apierror.ErrUploadLimitExceeded)
	}

	var err error

	items := make([]any, 0, len(contacts))

	for i, c := range contacts {
		email, _ := c.GetField(fieldname.Email).(string)
		if email == "" {
			err = multierr.Append(err, &apierror.BulkSaveError{Index: i, Email: email})
			continue
		}

		items = append(items, c.ToRequest(false))
	}

	if err != nil {
		return nil, err
	}

	return map[string]any{RequestKey: items}, nil
}

// Split cuts contacts into batches of at most apierror.MaxUpload.
func Split(contacts []*contact.Contact) [][]*contact.Contact {
	var batches [][]*contact.Contact

	for len(contacts) > apierror.MaxUpload {
		batches = append(batches, contacts[:apierror.MaxUpload:apierror.MaxUpload])
		contacts = contacts[apierror.MaxUpload:]
	}

	if len(contacts) > 0 {
		batches = append(batches, contacts)
	}

	return batches
}
