package mapping

import (
	"fmt"

	"contact-mapper/contact"
	"contact-mapper/fieldname"
	"contact-mapper/internal/diagnostic"
)

// Diagnostic codes reported by Validate.
const (
	CodeUnsupportedVersion = "unsupported-version"
	CodeEmptyRecord        = "empty-record"
	CodeDuplicateKey       = "duplicate-key"
	CodeDefaultsApplied    = "defaults-applied"
)

// Validate checks a document for problems that loading tolerates: an unknown
// version, records without options, and keys of one record that resolve to
// the same field. Records that receive default options are noted as infos.
func Validate(doc *Document) diagnostic.Diagnostics {
	var res diagnostic.Diagnostics

	if doc == nil {
		res.AddError("document-is-nil", "document is nil", "")
		return res
	}

	if doc.Version != CurrentVersion {
		res.AddError(CodeUnsupportedVersion,
			fmt.Sprintf("unsupported version %q, expected %q", doc.Version, CurrentVersion), keyVersion)
	}

	checkDuplicates(&res, keyDefaults, doc.Defaults)

	for i, rec := range doc.Records {
		key := doc.recordKey(i)

		if len(rec) == 0 {
			res.AddWarning(CodeEmptyRecord, "record has no options", key)
			continue
		}

		checkDuplicates(&res, key, rec)

		if len(doc.Defaults) > 0 {
			res.AddInfo(CodeDefaultsApplied,
				fmt.Sprintf("%d default options applied", len(doc.Defaults)), key)
		}
	}

	return res
}

func checkDuplicates(res *diagnostic.Diagnostics, key string, opts contact.Options) {
	seen := make(map[string]string, len(opts))

	for _, opt := range opts {
		name := opt.Key
		if name != contact.KeyCustomFields && name != contact.KeyLists {
			name = fieldname.Resolve(name)
		}

		if first, ok := seen[name]; ok {
			res.AddWarning(CodeDuplicateKey,
				fmt.Sprintf("%q and %q both set %s", first, opt.Key, name), key)

			continue
		}

		seen[name] = opt.Key
	}
}
