// Package pdf prepares scanned production logs for the OCR training corpus.
//
// It rotates single files or whole directories of PDFs by a fixed angle and
// splits "<machine> training set" PDFs into per-page, per-machine files whose
// names encode the machine and page number. All page manipulation is done
// through pdfcpu; no PDF internals are handled here.
package pdf
