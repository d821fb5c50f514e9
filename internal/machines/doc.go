// Package machines maps noisy OCR page text to named production machines.
//
// A Catalog holds the ordered machine display names, the alternate spellings
// expected in scanned production logs, and separator-tolerant patterns
// compiled from those spellings. Detect runs a two-stage classification per
// page: a case-insensitive regex pass in catalog order (first hit wins),
// then a weighted-ratio fuzzy fallback over normalized text when no pattern
// matches. Pages with no confident match are simply absent from the result.
//
// The catalog is immutable after construction; detection is a pure function
// of its inputs apart from diagnostic logging.
package machines
