package match

import (
	"strings"
	"unicode"
)

// Studly converts s to StudlyCase:
// 1. Hyphens and underscores become spaces.
// 2. The first letter of every whitespace-delimited word is upper-cased,
//    the rest of the word is left untouched ("webPage" -> "WebPage").
// 3. Spaces are removed.
func Studly(s string) string {
	s = strings.NewReplacer("-", " ", "_", " ").Replace(s)

	var out strings.Builder

	out.Grow(len(s))

	wordStart := true

	for _, r := range s {
		if r == ' ' {
			wordStart = true

			continue
		}

		if isWordBoundary(r) {
			out.WriteRune(r)

			wordStart = true

			continue
		}

		// only ASCII letters are upper-cased, other runes are kept as written
		if wordStart {
			if 'a' <= r && r <= 'z' {
				r -= 'a' - 'A'
			}

			wordStart = false
		}

		out.WriteRune(r)
	}

	return out.String()
}

// StudlyWords applies Studly to every single-space separated word of s and
// joins the results back with single spaces. Empty words are preserved.
func StudlyWords(s string) string {
	words := strings.Split(s, " ")
	for i, w := range words {
		words[i] = Studly(w)
	}

	return strings.Join(words, " ")
}

// Fold lower-cases s and strips separators (_, -, spaces), so that
// "First_Name", "first-name" and "FirstName" compare equal.
func Fold(s string) string {
	var result strings.Builder

	result.Grow(len(s))

	for _, r := range s {
		if isSeparator(r) {
			continue
		}

		result.WriteRune(unicode.ToLower(r))
	}

	return result.String()
}

// isSeparator returns true if the rune is a common separator.
func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}

// isWordBoundary reports whitespace other than a plain space. Such runes
// start a new word but are kept in the output.
func isWordBoundary(r rune) bool {
	switch r {
	case '\t', '\r', '\n', '\f', '\v':
		return true
	default:
		return false
	}
}
