// Package reports renders the terminal reports: the daily output summary
// built from the local SQLite store and the open-order workload report built
// from the ERP. Both render as go-pretty tables; color is the caller's call
// since only it knows whether stdout is a terminal.
package reports
