// Package schema holds the JSON Schema of the contact upsert request and
// validates request documents against it.
package schema

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	jsoniter "github.com/json-iterator/go"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Request is the JSON Schema (Draft 2020-12) for a prepended contact upsert
// request, as produced by Contact.ToRequest(true).
const Request = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "$id": "https://contact-mapper/contact-request.schema.json",
  "title": "Contact Upsert Request",
  "type": "object",
  "required": ["contact"],
  "additionalProperties": false,
  "properties": {
    "contact": { "$ref": "#/$defs/Contact" }
  },
  "$defs": {
    "Scalar": {
      "type": ["string", "number", "boolean", "null"]
    },
    "Contact": {
      "type": "object",
      "properties": {
        "custom": { "$ref": "#/$defs/Custom" }
      },
      "additionalProperties": { "$ref": "#/$defs/Scalar" }
    },
    "Custom": {
      "type": "object",
      "minProperties": 1,
      "propertyNames": {
        "pattern": "^(boolean|date|float|integer|NULL|string)--"
      },
      "additionalProperties": { "$ref": "#/$defs/Scalar" }
    }
  }
}`

// Bulk is the JSON Schema for a bulk upsert request.
const Bulk = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "$id": "https://contact-mapper/contact-bulk.schema.json",
  "title": "Contact Bulk Upsert Request",
  "type": "object",
  "required": ["contacts"],
  "additionalProperties": false,
  "properties": {
    "contacts": {
      "type": "array",
      "maxItems": 100,
      "items": { "$ref": "contact-request.schema.json#/$defs/Contact" }
    }
  }
}`

const (
	requestURL = "https://contact-mapper/contact-request.schema.json"
	bulkURL    = "https://contact-mapper/contact-bulk.schema.json"
)

var (
	compileOnce sync.Once
	compiled    map[string]*jsonschema.Schema
	compileErr  error
)

func compile() (map[string]*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()

		for url, src := range map[string]string{requestURL: Request, bulkURL: Bulk} {
			doc, err := jsonschema.UnmarshalJSON(strings.NewReader(src))
			if err != nil {
				compileErr = fmt.Errorf("parse schema %s: %w", url, err)
				return
			}

			if err := compiler.AddResource(url, doc); err != nil {
				compileErr = fmt.Errorf("add schema %s: %w", url, err)
				return
			}
		}

		compiled = make(map[string]*jsonschema.Schema, 2)

		for _, url := range []string{requestURL, bulkURL} {
			sch, err := compiler.Compile(url)
			if err != nil {
				compileErr = fmt.Errorf("compile schema %s: %w", url, err)
				return
			}

			compiled[url] = sch
		}
	})

	return compiled, compileErr
}

// ValidateRequest checks a request document (any value that encodes to JSON)
// against Request.
func ValidateRequest(doc any) error {
	return validate(requestURL, doc)
}

// ValidateBulk checks a bulk request document against Bulk.
func ValidateBulk(doc any) error {
	return validate(bulkURL, doc)
}

func validate(url string, doc any) error {
	schemas, err := compile()
	if err != nil {
		return err
	}

	// round-trip through JSON so that Go values (time.Time, named types...)
	// are validated the way the CRM will see them
	data, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decode document: %w", err)
	}

	return schemas[url].Validate(inst)
}
