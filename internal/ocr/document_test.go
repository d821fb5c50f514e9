package ocr_test

import (
	"path/filepath"
	"testing"

	"prodlogs/internal/ocr"
)

func TestDocumentRoundTrip(t *testing.T) {
	doc := &ocr.Document{
		Source: "912 Production Logs_rotated.pdf",
		Pages: map[int]string{
			1: "CUTTER #1 shift totals",
			2: "",
			3: "Sheeter 2 output",
		},
	}
	path := filepath.Join(t.TempDir(), "doc.json")
	if err := doc.WriteFile(path); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	loaded, err := ocr.ReadDocumentFile(path)
	if err != nil {
		t.Fatalf("ReadDocumentFile: %v", err)
	}
	if loaded.Source != doc.Source {
		t.Fatalf("source: got %q want %q", loaded.Source, doc.Source)
	}
	text := loaded.PageText()
	if len(text) != 3 {
		t.Fatalf("expected 3 pages, got %v", text)
	}
	if text[1] != "CUTTER #1 shift totals" || text[3] != "Sheeter 2 output" {
		t.Fatalf("unexpected page text: %v", text)
	}
}

func TestReadDocumentFileMissing(t *testing.T) {
	if _, err := ocr.ReadDocumentFile(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
