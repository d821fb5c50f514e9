// Package ocr rasterizes scanned production-log PDFs and recognizes their
// text with Tesseract.
//
// Pages render through go-fitz with a DPI backoff chain so oversized scans
// fall back to a coarser resolution instead of failing the batch. Each page
// is recognized independently; the result is a Document mapping 1-based page
// numbers to recognized text, serializable as JSON in the same shape the
// build-logs pipeline accepts.
package ocr
