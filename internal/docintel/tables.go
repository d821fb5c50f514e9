package docintel

import (
	"fmt"
	"sort"
	"strings"
)

// TableData is a rectangular table ready for sheet output.
type TableData struct {
	Headers []string
	Rows    [][]string
}

// Empty reports whether the table carries no body rows.
func (t TableData) Empty() bool {
	return len(t.Rows) == 0
}

// TablesByPage converts every table in the result and groups the non-empty
// ones by page number. Tables with no bounding region land on page 1.
func TablesByPage(result *AnalyzeResult) map[int][]TableData {
	byPage := make(map[int][]TableData)
	for _, table := range result.Tables {
		data := convertTable(table)
		if data.Empty() {
			continue
		}
		for _, page := range tablePages(table) {
			byPage[page] = append(byPage[page], data)
		}
	}
	return byPage
}

func tablePages(table Table) []int {
	set := map[int]struct{}{}
	for _, region := range table.BoundingRegions {
		if region.PageNumber > 0 {
			set[region.PageNumber] = struct{}{}
		}
	}
	if len(set) == 0 {
		return []int{1}
	}
	pages := make([]int, 0, len(set))
	for page := range set {
		pages = append(pages, page)
	}
	sort.Ints(pages)
	return pages
}

// convertTable places cells on a grid, picks the first non-empty row as the
// header, deduplicates header labels, and prunes empty rows and columns.
func convertTable(table Table) TableData {
	grid := cellGrid(table)
	if len(grid) == 0 {
		return TableData{}
	}

	headerIdx := -1
	for i, row := range grid {
		if !rowEmpty(row) {
			headerIdx = i
			break
		}
	}
	if headerIdx == -1 {
		return TableData{}
	}

	headers := dedupeHeaders(grid[headerIdx])
	body := grid[headerIdx+1:]

	keep := nonEmptyColumns(headers, body)
	headers = project(headers, keep)

	rows := make([][]string, 0, len(body))
	for _, row := range body {
		projected := project(row, keep)
		if !rowEmpty(projected) {
			rows = append(rows, projected)
		}
	}
	return TableData{Headers: headers, Rows: rows}
}

func cellGrid(table Table) [][]string {
	if len(table.Cells) == 0 {
		return nil
	}
	maxRow, maxCol := 0, 0
	for _, cell := range table.Cells {
		if r := cell.RowIndex + span(cell.RowSpan) - 1; r > maxRow {
			maxRow = r
		}
		if c := cell.ColumnIndex + span(cell.ColumnSpan) - 1; c > maxCol {
			maxCol = c
		}
	}
	grid := make([][]string, maxRow+1)
	for i := range grid {
		grid[i] = make([]string, maxCol+1)
	}
	for _, cell := range table.Cells {
		if cell.RowIndex < 0 || cell.ColumnIndex < 0 {
			continue
		}
		grid[cell.RowIndex][cell.ColumnIndex] = strings.TrimSpace(cell.Content)
	}
	return grid
}

func span(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

func dedupeHeaders(raw []string) []string {
	seen := map[string]int{}
	headers := make([]string, len(raw))
	for i, h := range raw {
		h = strings.TrimSpace(h)
		if h == "" {
			h = "col"
		}
		seen[h]++
		if seen[h] > 1 {
			h = fmt.Sprintf("%s_%d", h, seen[h])
		}
		headers[i] = h
	}
	return headers
}

// nonEmptyColumns keeps a column when any body cell in it has content.
func nonEmptyColumns(headers []string, body [][]string) []bool {
	keep := make([]bool, len(headers))
	for _, row := range body {
		for i := range keep {
			if i < len(row) && strings.TrimSpace(row[i]) != "" {
				keep[i] = true
			}
		}
	}
	return keep
}

func project(row []string, keep []bool) []string {
	out := make([]string, 0, len(keep))
	for i, k := range keep {
		if !k {
			continue
		}
		if i < len(row) {
			out = append(out, row[i])
		} else {
			out = append(out, "")
		}
	}
	return out
}

func rowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
