package common

// First returns s[0] and true, or the zero value and false for an empty slice.
func First[S ~[]E, E any](s S) (E, bool) {
	if len(s) == 0 {
		var zero E
		return zero, false
	}

	return s[0], true
}
