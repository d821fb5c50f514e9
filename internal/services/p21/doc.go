// Package p21 reads open production orders from the P21 ERP database.
//
// The client is read-only. It runs a single query against the production
// order tables, scoped to one plant location, and returns the rows the
// open-order report aggregates. Connections go through the SQL Server
// driver; tests inject a *sql.DB instead of dialing out.
package p21
