// Command prodlogs is the production log toolkit CLI: it prepares scanned
// log PDFs (rotate, split, OCR), builds machine-routed Excel workbooks from
// analyzed pages, records daily output submissions, and renders the daily
// and open-order reports.
package main
