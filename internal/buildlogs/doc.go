// Package buildlogs assembles per-machine production-log workbooks.
//
// It joins the two halves of the pipeline: machine detection over per-page
// OCR text decides which machine owns each page, and the page's extracted
// tables are routed onto a sheet named after that machine. Pages without a
// confident machine fall back to a "Page N" sheet name; pages without
// tables are skipped.
package buildlogs
