// Package fieldname canonicalizes arbitrary record keys into the field names
// the CRM expects on a contact.
//
// # Resolution order
//
// Resolve applies these rules in order, the first match wins:
//  1. exact reserved name ("Email", "contact_id", ...)
//  2. "type--Name--Parts" custom field encoding, type tag dropped, parts joined by spaces
//  3. StudlyCase of the key, when reserved ("first_name" -> "FirstName")
//  4. fixed aliases ("zip" -> "MailingPostalCode", "mobile" -> "MobilePhone", "site" -> "Website")
//  5. "Mailing" prefix, when reserved ("city" -> "MailingCity")
//  6. StudlyCase of every space separated word, a custom field ("favorite color" -> "Favorite Color")
//
// Exact matches short-circuit before any case transformation so that reserved
// names with non-standard casing ("_NewEmail", "owner_name") stay intact.
package fieldname
