package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"prodlogs/internal/config"
	"prodlogs/internal/ocr"
)

func newOCRCommand(ctx *commandContext) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "ocr <pdf>",
		Short: "Recognize a scanned log PDF into per-page text",
		Long: "Render each page at the configured DPI chain, run tesseract over\n" +
			"the images, and write a pages JSON document that build-logs accepts.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.configValue()
			logger := ctx.ensureLogger()

			pdfPath, err := config.ExpandPath(args[0])
			if err != nil {
				return err
			}

			engine := ocr.NewEngine(cfg.OCR.Languages, cfg.OCR.DPIChain)
			doc, err := engine.RecognizePDF(cmd.Context(), pdfPath, logger)
			if err != nil {
				return err
			}

			target := strings.TrimSpace(outPath)
			if target == "" {
				base := strings.TrimSuffix(filepath.Base(pdfPath), filepath.Ext(pdfPath))
				target = filepath.Join(cfg.Paths.OutputDir, base+".pages.json")
			} else if target, err = config.ExpandPath(target); err != nil {
				return err
			}

			if err := doc.WriteFile(target); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recognized %d page(s) -> %s\n", len(doc.Pages), target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Destination for the pages JSON (default: output dir)")
	return cmd
}
