package ocr

import (
	"encoding/json"
	"fmt"
	"os"
)

// Document is the OCR output for one PDF.
type Document struct {
	Source string         `json:"source"`
	Pages  map[int]string `json:"pages"`
}

// PageText returns the page-number-to-text mapping machine detection
// consumes.
func (d *Document) PageText() map[int]string {
	out := make(map[int]string, len(d.Pages))
	for page, text := range d.Pages {
		out[page] = text
	}
	return out
}

// WriteFile serializes the document as indented JSON at path.
func (d *Document) WriteFile(path string) error {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal ocr document: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write ocr document: %w", err)
	}
	return nil
}

// ReadDocumentFile loads a document previously written by WriteFile.
func ReadDocumentFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read ocr document: %w", err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse ocr document: %w", err)
	}
	return &doc, nil
}
