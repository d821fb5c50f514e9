package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"prodlogs/internal/ocr"
)

const analysisFixture = `{
  "analyzeResult": {
    "pages": [
      {"pageNumber": 1, "lines": [{"content": "Daily Production Log"}, {"content": "CUTTER #1"}]}
    ],
    "tables": [
      {
        "rowCount": 2,
        "columnCount": 2,
        "boundingRegions": [{"pageNumber": 1}],
        "cells": [
          {"rowIndex": 0, "columnIndex": 0, "content": "Shift"},
          {"rowIndex": 0, "columnIndex": 1, "content": "LB"},
          {"rowIndex": 1, "columnIndex": 0, "content": "1"},
          {"rowIndex": 1, "columnIndex": 1, "content": "3900"}
        ]
      }
    ]
  }
}`

func TestBuildLogsFromAnalysisJSON(t *testing.T) {
	env := setupCLITestEnv(t)

	inPath := filepath.Join(env.baseDir, "scan.json")
	if err := os.WriteFile(inPath, []byte(analysisFixture), 0o644); err != nil {
		t.Fatal(err)
	}
	outPath := filepath.Join(env.baseDir, "logs.xlsx")

	out, _, err := runCLI(t, []string{"build-logs", inPath, "--out", outPath}, env.configPath)
	if err != nil {
		t.Fatalf("build-logs: %v", err)
	}
	requireContains(t, out, "1 sheet(s)")
	requireContains(t, out, "page 1: Cutter1")

	if _, err := os.Stat(outPath); err != nil {
		t.Fatalf("workbook missing: %v", err)
	}
}

func TestBuildLogsListsPagesInOrder(t *testing.T) {
	env := setupCLITestEnv(t)

	const multiPage = `{
  "analyzeResult": {
    "pages": [
      {"pageNumber": 1, "lines": [{"content": "CUTTER #1"}]},
      {"pageNumber": 2, "lines": [{"content": "PC2 Daily Log"}]},
      {"pageNumber": 3, "lines": [{"content": "Sheeter 1"}]}
    ],
    "tables": [
      {
        "rowCount": 1, "columnCount": 1,
        "boundingRegions": [{"pageNumber": 2}],
        "cells": [{"rowIndex": 0, "columnIndex": 0, "content": "Shift"}]
      }
    ]
  }
}`
	inPath := filepath.Join(env.baseDir, "multi.json")
	if err := os.WriteFile(inPath, []byte(multiPage), 0o644); err != nil {
		t.Fatal(err)
	}
	outPath := filepath.Join(env.baseDir, "multi.xlsx")

	out, _, err := runCLI(t, []string{"build-logs", inPath, "--out", outPath}, env.configPath)
	if err != nil {
		t.Fatalf("build-logs: %v", err)
	}

	first := strings.Index(out, "page 1:")
	second := strings.Index(out, "page 2:")
	third := strings.Index(out, "page 3:")
	if first < 0 || second < 0 || third < 0 {
		t.Fatalf("missing page lines:\n%s", out)
	}
	if !(first < second && second < third) {
		t.Fatalf("pages not listed in ascending order:\n%s", out)
	}
}

func TestLoadBuildInputSniffsOCRDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scan.pages.json")
	doc := ocr.Document{Source: "scan.pdf", Pages: map[int]string{1: "Cutter 1 Daily Log"}}
	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	input, err := loadBuildInput(path)
	if err != nil {
		t.Fatalf("loadBuildInput: %v", err)
	}
	if input.PageText[1] != "Cutter 1 Daily Log" {
		t.Fatalf("unexpected page text: %+v", input.PageText)
	}
	if len(input.Tables) != 0 {
		t.Fatalf("OCR input should carry no tables: %+v", input.Tables)
	}
}
