package main

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"prodlogs/internal/buildlogs"
	"prodlogs/internal/config"
	"prodlogs/internal/docintel"
	"prodlogs/internal/machines"
	"prodlogs/internal/ocr"
)

func newBuildLogsCommand(ctx *commandContext) *cobra.Command {
	var outPath string
	var fuzzyThreshold int
	var maxSheets int

	cmd := &cobra.Command{
		Use:   "build-logs <pages.json>",
		Short: "Build a machine-routed Excel workbook from analyzed pages",
		Long: "Read a document-analysis result or an OCR pages document, detect\n" +
			"the machine named on each page, and write one worksheet per\n" +
			"table-bearing page named after its machine.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.configValue()
			logger := ctx.ensureLogger()

			inPath, err := config.ExpandPath(args[0])
			if err != nil {
				return err
			}

			input, err := loadBuildInput(inPath)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("fuzzy") {
				fuzzyThreshold = cfg.Detection.FuzzyThreshold
			}

			target := strings.TrimSpace(outPath)
			if target == "" {
				base := strings.TrimSuffix(filepath.Base(inPath), filepath.Ext(inPath))
				base = strings.TrimSuffix(base, ".pages")
				target = filepath.Join(cfg.Paths.OutputDir, base+".xlsx")
			} else if target, err = config.ExpandPath(target); err != nil {
				return err
			}

			summary, err := buildlogs.Build(input, buildlogs.Options{
				Catalog:        machines.Default(),
				FuzzyThreshold: fuzzyThreshold,
				MaxSheets:      maxSheets,
			}, target, logger)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote %s with %d sheet(s)\n", summary.OutPath, len(summary.Sheets))
			pages := make([]int, 0, len(summary.PageMachines))
			for page := range summary.PageMachines {
				pages = append(pages, page)
			}
			sort.Ints(pages)
			for _, page := range pages {
				fmt.Fprintf(out, "  page %d: %s\n", page, summary.PageMachines[page])
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Destination for the workbook (default: output dir)")
	cmd.Flags().IntVar(&fuzzyThreshold, "fuzzy", machines.DefaultFuzzyThreshold, "Fuzzy match acceptance threshold (0-100)")
	cmd.Flags().IntVar(&maxSheets, "max-sheets", 3, "Maximum table sheets to write (0 for all)")
	return cmd
}

// loadBuildInput sniffs the input format: an OCR pages document keys pages
// by number, an analysis result carries a pages array, so whichever decoder
// succeeds identifies the file.
func loadBuildInput(path string) (buildlogs.Input, error) {
	if doc, err := ocr.ReadDocumentFile(path); err == nil && len(doc.Pages) > 0 {
		return buildlogs.FromOCRDocument(doc), nil
	}
	result, err := docintel.ParseFile(path)
	if err != nil {
		return buildlogs.Input{}, fmt.Errorf("parse %s as analysis or OCR document: %w", filepath.Base(path), err)
	}
	return buildlogs.FromAnalysis(result), nil
}
