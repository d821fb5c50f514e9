package buildlogs

import (
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"

	"prodlogs/internal/docintel"
	"prodlogs/internal/logging"
	"prodlogs/internal/machines"
	"prodlogs/internal/ocr"
)

// Input carries the per-page text and tables a workbook is built from.
type Input struct {
	PageText map[int]string
	Tables   map[int][]docintel.TableData
}

// FromAnalysis builds an Input from document-analysis JSON.
func FromAnalysis(result *docintel.AnalyzeResult) Input {
	return Input{
		PageText: docintel.PageText(result),
		Tables:   docintel.TablesByPage(result),
	}
}

// FromOCRDocument builds an Input from a locally recognized document. Local
// OCR yields no table geometry, so only machine detection applies.
func FromOCRDocument(doc *ocr.Document) Input {
	return Input{PageText: doc.PageText()}
}

// Options tunes workbook assembly.
type Options struct {
	Catalog        machines.Catalog
	FuzzyThreshold int
	// MaxSheets caps the number of table-bearing pages written; 0 means all.
	MaxSheets int
}

// Summary reports what Build produced.
type Summary struct {
	OutPath      string
	PageMachines map[int]string
	Sheets       []string
}

// Build detects machines, routes each page's tables onto a sheet named after
// the detected machine, and writes the workbook to outPath.
func Build(in Input, opts Options, outPath string, logger *slog.Logger) (*Summary, error) {
	logger = logging.NewComponentLogger(logger, "buildlogs")

	pageMachines := machines.Detect(in.PageText, opts.Catalog, opts.FuzzyThreshold, logger)

	pages := make([]int, 0, len(in.Tables))
	for page := range in.Tables {
		pages = append(pages, page)
	}
	sort.Ints(pages)
	if opts.MaxSheets > 0 && len(pages) > opts.MaxSheets {
		pages = pages[:opts.MaxSheets]
	}

	workbook := excelize.NewFile()
	defer workbook.Close()

	summary := &Summary{OutPath: outPath, PageMachines: pageMachines}
	used := map[string]int{}

	if len(pages) == 0 {
		const sheet = "No Tables"
		if err := workbook.SetSheetName(workbook.GetSheetName(0), sheet); err != nil {
			return nil, fmt.Errorf("rename sheet: %w", err)
		}
		if err := setRow(workbook, sheet, 1, []string{"note"}); err != nil {
			return nil, err
		}
		if err := setRow(workbook, sheet, 2, []string{"No tables detected."}); err != nil {
			return nil, err
		}
		summary.Sheets = []string{sheet}
		return summary, save(workbook, outPath)
	}

	for i, page := range pages {
		base := pageMachines[page]
		if base == "" {
			base = fmt.Sprintf("Page %d", page)
		}
		sheet := uniqueSheetName(SanitizeSheetName(base), used)

		if i == 0 {
			if err := workbook.SetSheetName(workbook.GetSheetName(0), sheet); err != nil {
				return nil, fmt.Errorf("rename sheet: %w", err)
			}
		} else if _, err := workbook.NewSheet(sheet); err != nil {
			return nil, fmt.Errorf("create sheet %q: %w", sheet, err)
		}
		summary.Sheets = append(summary.Sheets, sheet)

		row := 1
		for _, table := range in.Tables[page] {
			if table.Empty() {
				continue
			}
			if err := setRow(workbook, sheet, row, table.Headers); err != nil {
				return nil, err
			}
			row++
			for _, body := range table.Rows {
				if err := setRow(workbook, sheet, row, body); err != nil {
					return nil, err
				}
				row++
			}
			row++ // blank separator between tables
		}
		logger.Info("sheet written",
			logging.Int("page", page),
			logging.String("sheet", sheet),
			logging.Int("tables", len(in.Tables[page])))
	}

	return summary, save(workbook, outPath)
}

func save(workbook *excelize.File, outPath string) error {
	if err := workbook.SaveAs(outPath); err != nil {
		return fmt.Errorf("write workbook %s: %w", outPath, err)
	}
	return nil
}

func setRow(workbook *excelize.File, sheet string, row int, values []string) error {
	for col, value := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return fmt.Errorf("address cell: %w", err)
		}
		if err := workbook.SetCellValue(sheet, cell, value); err != nil {
			return fmt.Errorf("set cell %s!%s: %w", sheet, cell, err)
		}
	}
	return nil
}

var sheetNameDisallowed = regexp.MustCompile(`[^A-Za-z0-9 _\-#]`)

// SanitizeSheetName strips characters spreadsheets reject and enforces the
// 31-character sheet-name limit.
func SanitizeSheetName(name string) string {
	s := strings.TrimSpace(sheetNameDisallowed.ReplaceAllString(name, "_"))
	if s == "" {
		return "Sheet"
	}
	if len(s) > 31 {
		s = s[:31]
	}
	return s
}

// uniqueSheetName suffixes repeats so two pages of the same machine both get
// a sheet.
func uniqueSheetName(name string, used map[string]int) string {
	used[name]++
	if used[name] == 1 {
		return name
	}
	suffix := fmt.Sprintf(" (%d)", used[name])
	if len(name)+len(suffix) > 31 {
		name = name[:31-len(suffix)]
	}
	return name + suffix
}
