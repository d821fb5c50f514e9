package buildlogs_test

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"prodlogs/internal/buildlogs"
	"prodlogs/internal/docintel"
	"prodlogs/internal/machines"
)

func TestSanitizeSheetName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Cutter1", "Cutter1"},
		{"Die-cutter", "Die-cutter"},
		{"bad/name:here?", "bad_name_here_"},
		{"", "Sheet"},
		{"???", "Sheet"},
		{"A very long machine sheet name exceeding the cap", "A very long machine sheet name "},
	}
	for _, tc := range cases {
		if got := buildlogs.SanitizeSheetName(tc.in); got != tc.want {
			t.Errorf("SanitizeSheetName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func buildInput() buildlogs.Input {
	table := docintel.TableData{
		Headers: []string{"Shift", "Total Produced (LB)"},
		Rows:    [][]string{{"1", "4200"}, {"2", "3900"}},
	}
	return buildlogs.Input{
		PageText: map[int]string{
			1: "CUTTER   #1 run log",
			2: "no machine on this page",
		},
		Tables: map[int][]docintel.TableData{
			1: {table},
			2: {table},
		},
	}
}

func TestBuildRoutesTablesToMachineSheets(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "logs.xlsx")
	summary, err := buildlogs.Build(buildInput(), buildlogs.Options{
		Catalog:        machines.Default(),
		FuzzyThreshold: machines.DefaultFuzzyThreshold,
	}, outPath, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if summary.PageMachines[1] != "Cutter1" {
		t.Fatalf("page 1 machine: got %q", summary.PageMachines[1])
	}
	if _, present := summary.PageMachines[2]; present {
		t.Fatalf("page 2 should be unassigned: %v", summary.PageMachines)
	}
	if len(summary.Sheets) != 2 || summary.Sheets[0] != "Cutter1" || summary.Sheets[1] != "Page 2" {
		t.Fatalf("unexpected sheets: %v", summary.Sheets)
	}

	workbook, err := excelize.OpenFile(outPath)
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer workbook.Close()

	header, err := workbook.GetCellValue("Cutter1", "A1")
	if err != nil {
		t.Fatal(err)
	}
	if header != "Shift" {
		t.Fatalf("Cutter1!A1 = %q, want Shift", header)
	}
	value, err := workbook.GetCellValue("Cutter1", "B3")
	if err != nil {
		t.Fatal(err)
	}
	if value != "3900" {
		t.Fatalf("Cutter1!B3 = %q, want 3900", value)
	}
}

func TestBuildMaxSheetsCap(t *testing.T) {
	in := buildInput()
	outPath := filepath.Join(t.TempDir(), "capped.xlsx")
	summary, err := buildlogs.Build(in, buildlogs.Options{
		Catalog:        machines.Default(),
		FuzzyThreshold: machines.DefaultFuzzyThreshold,
		MaxSheets:      1,
	}, outPath, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(summary.Sheets) != 1 || summary.Sheets[0] != "Cutter1" {
		t.Fatalf("expected only the first page's sheet, got %v", summary.Sheets)
	}
}

func TestBuildWithoutTablesWritesNote(t *testing.T) {
	in := buildlogs.Input{PageText: map[int]string{1: "Sheeter1"}}
	outPath := filepath.Join(t.TempDir(), "empty.xlsx")
	summary, err := buildlogs.Build(in, buildlogs.Options{
		Catalog:        machines.Default(),
		FuzzyThreshold: machines.DefaultFuzzyThreshold,
	}, outPath, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(summary.Sheets) != 1 || summary.Sheets[0] != "No Tables" {
		t.Fatalf("unexpected sheets: %v", summary.Sheets)
	}
	if summary.PageMachines[1] != "Sheeter1" {
		t.Fatalf("detection should still run: %v", summary.PageMachines)
	}
}
