package docintel_test

import (
	"strings"
	"testing"

	"prodlogs/internal/docintel"
)

const sampleAnalysis = `{
  "analyzeResult": {
    "pages": [
      {"pageNumber": 1, "lines": [{"content": " CUTTER #1 "}, {"content": ""}, {"content": "shift totals"}]},
      {"pageNumber": 2, "lines": []}
    ],
    "tables": [
      {
        "rowCount": 3,
        "columnCount": 3,
        "boundingRegions": [{"pageNumber": 1}],
        "cells": [
          {"rowIndex": 0, "columnIndex": 0, "content": "Shift"},
          {"rowIndex": 0, "columnIndex": 1, "content": "Shift"},
          {"rowIndex": 0, "columnIndex": 2, "content": ""},
          {"rowIndex": 1, "columnIndex": 0, "content": "1"},
          {"rowIndex": 1, "columnIndex": 1, "content": "4200"},
          {"rowIndex": 1, "columnIndex": 2, "content": ""},
          {"rowIndex": 2, "columnIndex": 0, "content": ""},
          {"rowIndex": 2, "columnIndex": 1, "content": ""},
          {"rowIndex": 2, "columnIndex": 2, "content": ""}
        ]
      },
      {
        "rowCount": 1,
        "columnCount": 1,
        "cells": []
      }
    ]
  }
}`

func TestParseAcceptsEnvelopeAndBareResult(t *testing.T) {
	wrapped, err := docintel.Parse(strings.NewReader(sampleAnalysis))
	if err != nil {
		t.Fatalf("Parse(envelope) error: %v", err)
	}
	if len(wrapped.Pages) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(wrapped.Pages))
	}

	bare := `{"pages": [{"pageNumber": 5, "lines": [{"content": "x"}]}]}`
	result, err := docintel.Parse(strings.NewReader(bare))
	if err != nil {
		t.Fatalf("Parse(bare) error: %v", err)
	}
	if len(result.Pages) != 1 || result.Pages[0].PageNumber != 5 {
		t.Fatalf("unexpected bare result: %+v", result)
	}

	if _, err := docintel.Parse(strings.NewReader("not json")); err == nil {
		t.Fatal("expected error for malformed json")
	}
}

func TestPageTextJoinsTrimmedLines(t *testing.T) {
	result, err := docintel.Parse(strings.NewReader(sampleAnalysis))
	if err != nil {
		t.Fatal(err)
	}
	text := docintel.PageText(result)
	if got := text[1]; got != "CUTTER #1 shift totals" {
		t.Fatalf("page 1 text: %q", got)
	}
	if got := text[2]; got != "" {
		t.Fatalf("page 2 should be empty, got %q", got)
	}
}

func TestTablesByPagePrunesAndDedupes(t *testing.T) {
	result, err := docintel.Parse(strings.NewReader(sampleAnalysis))
	if err != nil {
		t.Fatal(err)
	}
	byPage := docintel.TablesByPage(result)
	tables := byPage[1]
	if len(tables) != 1 {
		t.Fatalf("expected 1 table on page 1, got %d", len(tables))
	}
	tbl := tables[0]

	// Third column had no body content and is dropped; duplicate headers
	// get numeric suffixes.
	if len(tbl.Headers) != 2 || tbl.Headers[0] != "Shift" || tbl.Headers[1] != "Shift_2" {
		t.Fatalf("unexpected headers: %v", tbl.Headers)
	}
	// The all-empty trailing row is pruned.
	if len(tbl.Rows) != 1 {
		t.Fatalf("expected 1 body row, got %v", tbl.Rows)
	}
	if tbl.Rows[0][0] != "1" || tbl.Rows[0][1] != "4200" {
		t.Fatalf("unexpected row: %v", tbl.Rows[0])
	}

	// The cell-less table is skipped entirely.
	total := 0
	for _, tabs := range byPage {
		total += len(tabs)
	}
	if total != 1 {
		t.Fatalf("expected exactly one table overall, got %d", total)
	}
}
