// Package docintel parses document-analysis JSON for scanned production
// logs.
//
// The upstream analyzer emits an analyzeResult object with per-page line
// content and cell-addressed tables. This package turns that into the two
// shapes the rest of the pipeline consumes: a page-number-to-text mapping
// for machine detection, and rectangular table grids (header row selected,
// duplicate headers deduplicated, empty rows and columns pruned) for
// per-machine routing.
package docintel
