// Package entry accepts daily production output submissions.
//
// A submission is one date and shift with a row per machine. Validation
// enforces the form's rules: rows may only name machines from the configured
// machine list, and a zero-output row must be explicitly marked
// "no schedule". Accepted rows land in the SQLite store (which dedupes exact
// re-submissions), the CSV mirror is regenerated from the store under an
// advisory file lock, and, when configured, the mirror is pushed to its
// git-hosted copy.
package entry
