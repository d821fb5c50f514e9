// Package store persists the daily production output log in SQLite.
//
// Rows capture one machine's output for one shift on one date. Full-row
// uniqueness dedupes re-submissions, matching the behaviour of the old
// spreadsheet merge. Aggregate queries back the daily report; the table is
// also the source of truth the CSV mirror is regenerated from.
//
// Schema changes bump schemaVersion in schema.go.
package store
