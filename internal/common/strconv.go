package common

import (
	"strconv"
	"strings"
)

// ParseBool parses a boolean setting such as an environment variable. ok is
// false for a blank or unparsable value so callers keep their default.
func ParseBool(raw string) (bool, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, false
	}

	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}

	return v, true
}
