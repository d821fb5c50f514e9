package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"prodlogs/internal/config"
	"prodlogs/internal/pdf"
)

func newSplitCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "split [dir]",
		Short: "Split training-set PDFs into per-machine page files",
		Long: "Split every \"<machine> training set\" PDF in the directory into\n" +
			"single-page files under a folder named after the machine.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.configValue()
			logger := ctx.ensureLogger()

			dir := cfg.Paths.TrainingDir
			if len(args) == 1 {
				expanded, err := config.ExpandPath(args[0])
				if err != nil {
					return err
				}
				dir = expanded
			}

			results, err := pdf.SplitDir(dir, logger)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(results) == 0 {
				fmt.Fprintf(out, "No training-set PDFs found in %s\n", dir)
				return nil
			}
			for _, result := range results {
				fmt.Fprintf(out, "%s: %d page(s) -> %s\n", result.Machine, result.Pages, result.Dir)
			}
			return nil
		},
	}
	return cmd
}
