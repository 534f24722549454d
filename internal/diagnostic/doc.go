// Package diagnostic provides structured warnings raised while a contact is
// filled from loosely-structured options.
//
// Key capabilities:
//   - Skipped nested value warnings
//   - Near-miss reserved field name hints with suggestions
//
// Diagnostics never change ingestion semantics; they only report them.
package diagnostic
