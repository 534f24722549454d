// Package match provides the casing and fuzzy-matching primitives behind
// field name resolution.
//
// Key functions:
//   - Studly: the CRM's StudlyCase convention (first_name -> FirstName)
//   - StudlyWords: StudlyCase applied to each space-separated word
//   - Fold: case and separator folding for fuzzy comparison
//   - Levenshtein: computes edit distance between strings
//   - Rank: ranks known names by similarity to an unknown one
package match
