package fieldname

import (
	"strings"

	"contact-mapper/fieldtype"
	"contact-mapper/internal/match"
)

// Delimiter separates the type tag and the words of an encoded custom field name.
const Delimiter = "--"

// Resolve returns the canonical field name for raw. It never fails: names that
// match nothing the CRM defines become custom field names.
func Resolve(raw string) string {
	if IsReserved(raw) {
		return raw
	}

	if name, ok := decodeCustom(raw); ok {
		return name
	}

	studly := match.Studly(raw)
	if IsReserved(studly) {
		return studly
	}

	if alias, ok := aliases[studly]; ok {
		return alias
	}

	if IsReserved(mailingPrefix + studly) {
		return mailingPrefix + studly
	}

	return match.StudlyWords(raw)
}

// decodeCustom handles the "type--Name--Parts" encoding. The type tag is
// dropped when valid, otherwise every part is kept.
func decodeCustom(raw string) (string, bool) {
	parts := strings.Split(raw, Delimiter)
	if len(parts) < 2 {
		return "", false
	}

	if _, ok := fieldtype.Parse(parts[0]); ok {
		parts = parts[1:]
	}

	return strings.Join(parts, " "), true
}

// SplitTyped splits an encoded custom field name into its type and name.
// ok is false unless raw is delimited and starts with a valid type tag.
func SplitTyped(raw string) (t fieldtype.Type, name string, ok bool) {
	parts := strings.Split(raw, Delimiter)
	if len(parts) < 2 {
		return 0, "", false
	}

	t, ok = fieldtype.Parse(parts[0])
	if !ok {
		return 0, "", false
	}

	return t, strings.Join(parts[1:], " "), true
}

// Encode returns the custom field wire name for a field: "type--Words--Of--Name".
func Encode(t fieldtype.Type, name string) string {
	return t.String() + Delimiter + strings.ReplaceAll(name, " ", Delimiter)
}

// Suggest returns the reserved name raw most likely meant, when raw resolves
// to a custom field that is a near-miss of a reserved one ("Emal" -> "Email").
func Suggest(raw string) (string, bool) {
	name := Resolve(raw)
	if IsReserved(name) {
		return "", false
	}

	best := match.Rank(name, reserved).Best(match.DefaultMinScore)
	if best == nil {
		return "", false
	}

	return best.Name, true
}
