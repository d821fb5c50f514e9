package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"prodlogs/internal/config"
	"prodlogs/internal/pdf"
)

func newRotateCommand(ctx *commandContext) *cobra.Command {
	var rotation int
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "rotate [path]",
		Short: "Rotate scanned log PDFs upright",
		Long: "Rotate a PDF, or every PDF under a directory, by the configured\n" +
			"angle. Rotated copies get a _rotated suffix unless --overwrite\n" +
			"rewrites the originals in place.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.configValue()
			logger := ctx.ensureLogger()

			if !cmd.Flags().Changed("rotation") {
				rotation = cfg.PDF.Rotation
			}
			if !cmd.Flags().Changed("overwrite") {
				overwrite = cfg.PDF.Overwrite
			}

			target := cfg.Paths.TrainingDir
			if len(args) == 1 {
				expanded, err := config.ExpandPath(args[0])
				if err != nil {
					return err
				}
				target = expanded
			}

			info, err := os.Stat(target)
			if err != nil {
				return fmt.Errorf("stat %s: %w", target, err)
			}

			out := cmd.OutOrStdout()
			if !info.IsDir() {
				written, err := pdf.RotateFile(target, rotation, overwrite)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Rotated %s -> %s\n", filepath.Base(target), filepath.Base(written))
				return nil
			}

			written, err := pdf.RotateDir(target, rotation, overwrite, logger)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Rotated %d PDF(s) under %s\n", len(written), target)
			return nil
		},
	}

	cmd.Flags().IntVar(&rotation, "rotation", 0, "Rotation angle in degrees (multiple of 90)")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Rewrite PDFs in place instead of writing _rotated copies")
	return cmd
}
