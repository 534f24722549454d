// Package contact implements the CRM contact aggregate.
//
// A Contact owns a set of named, typed fields (see package field) and a cached
// set of list identifiers. It is filled from loosely-structured options and
// exported either as the CRM upsert request or as a flat name/value mapping:
//
//	c, err := contact.New(contact.Options{
//		{Key: "first_name", Value: "Ann"},
//		{Key: "zip", Value: "10001"},
//		{Key: "custom_fields", Value: []contact.CustomField{
//			{Kind: "integer--Age", Value: 30},
//		}},
//	})
//
//	c.ToArray()       // {"FirstName": "Ann", "MailingPostalCode": "10001", "Age": 30}
//	c.ToRequest(true) // {"contact": {"FirstName": "Ann", "MailingPostalCode": "10001", "custom": {"integer--Age": 30}}}
//
// A Contact is not safe for concurrent mutation.
package contact
