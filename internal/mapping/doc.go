// Package mapping loads contact option documents from YAML or JSON.
//
// A document is either a single record, a list of records, or a wrapper with
// shared defaults:
//
//	version: "1"
//	defaults:
//	  lists: [newsletter]
//	contacts:
//	  - email: ann@example.com
//	    first_name: Ann
//	    custom_fields:
//	      - kind: integer--Age
//	        value: 30
//	  - email: bob@example.com
//	    zip: "10001"
//
// Key order is kept as written, so fields are filled in document order.
// JSON numbers are decoded as json.Number and typed by the contact package.
package mapping
