package docintel

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// AnalyzeResult is the subset of the analyzer output the pipeline reads.
type AnalyzeResult struct {
	Pages  []Page  `json:"pages"`
	Tables []Table `json:"tables"`
}

// Page carries the recognized lines for one document page.
type Page struct {
	PageNumber int    `json:"pageNumber"`
	Lines      []Line `json:"lines"`
}

// Line is one recognized text line.
type Line struct {
	Content string `json:"content"`
}

// Table is a cell-addressed table with the pages it spans.
type Table struct {
	RowCount        int              `json:"rowCount"`
	ColumnCount     int              `json:"columnCount"`
	Cells           []Cell           `json:"cells"`
	BoundingRegions []BoundingRegion `json:"boundingRegions"`
}

// Cell addresses one table cell; spans default to 1.
type Cell struct {
	RowIndex    int    `json:"rowIndex"`
	ColumnIndex int    `json:"columnIndex"`
	RowSpan     int    `json:"rowSpan"`
	ColumnSpan  int    `json:"columnSpan"`
	Content     string `json:"content"`
}

// BoundingRegion ties table geometry to a page.
type BoundingRegion struct {
	PageNumber int `json:"pageNumber"`
}

type envelope struct {
	AnalyzeResult *AnalyzeResult `json:"analyzeResult"`
}

// Parse reads analysis JSON, accepting either a bare analyzeResult object or
// the service envelope that wraps one.
func Parse(r io.Reader) (*AnalyzeResult, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read analysis json: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err == nil && env.AnalyzeResult != nil {
		return env.AnalyzeResult, nil
	}

	var result AnalyzeResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("parse analysis json: %w", err)
	}
	return &result, nil
}

// ParseFile parses the analysis JSON at path.
func ParseFile(path string) (*AnalyzeResult, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open analysis json: %w", err)
	}
	defer file.Close()
	return Parse(file)
}
