package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"prodlogs/internal/entry"
	"prodlogs/internal/services/githost"
	"prodlogs/internal/store"
)

func newLogOutputCommand(ctx *commandContext) *cobra.Command {
	var dateFlag string
	var shiftFlag string
	var notes []string

	cmd := &cobra.Command{
		Use:   "log-output <machine=pounds> [machine=pounds ...]",
		Short: "Record one shift's production output",
		Long: "Record pounds produced per machine for one date and shift. Use\n" +
			"\"machine=x\" for a machine with no schedule. Rows are stored in\n" +
			"the output log, mirrored to CSV, and pushed to the configured\n" +
			"git host. Exact duplicates of rows already logged are skipped.\n\n" +
			"Example:\n" +
			"  prodlogs log-output --shift \"Shift 1\" \"Cutter 1=4200\" \"PC2=x\" --note \"PC2=Sick Operator\"",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.configValue()
			logger := ctx.ensureLogger()

			date := time.Now()
			if strings.TrimSpace(dateFlag) != "" {
				parsed, err := time.Parse("2006-01-02", dateFlag)
				if err != nil {
					return fmt.Errorf("parse --date: %w", err)
				}
				date = parsed
			}

			noteByMachine, err := parseNotes(notes)
			if err != nil {
				return err
			}

			rows, err := parseRows(args, noteByMachine)
			if err != nil {
				return err
			}

			st, err := store.Open(cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			host := githost.NewClient(cfg.GitHost)
			svc := entry.NewService(st, host, cfg.Paths.DataDir, cfg.Entry, logger)

			result, err := svc.Submit(cmd.Context(), entry.Submission{
				Date:  date,
				Shift: shiftFlag,
				Rows:  rows,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Logged %d row(s) for %s (%s)\n", result.Inserted, date.Format("2006-01-02"), shiftFlag)
			if result.Inserted < len(rows) {
				fmt.Fprintf(out, "%d row(s) were already logged and were skipped\n", len(rows)-result.Inserted)
			}
			fmt.Fprintf(out, "Mirror: %s\n", result.MirrorPath)
			if result.Pushed {
				fmt.Fprintln(out, "Pushed mirror to git host")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Entry date as YYYY-MM-DD (default: today)")
	cmd.Flags().StringVar(&shiftFlag, "shift", "", "Shift label, e.g. \"Shift 1\"")
	cmd.Flags().StringArrayVar(&notes, "note", nil, "Note for a machine as machine=text (repeatable)")
	_ = cmd.MarkFlagRequired("shift")
	return cmd
}

// parseRows turns machine=pounds arguments into entry rows. The value "x"
// marks a machine that had no schedule for the shift.
func parseRows(args []string, noteByMachine map[string]string) ([]entry.Row, error) {
	rows := make([]entry.Row, 0, len(args))
	for _, arg := range args {
		machine, value, found := strings.Cut(arg, "=")
		machine = strings.TrimSpace(machine)
		value = strings.TrimSpace(value)
		if !found || machine == "" || value == "" {
			return nil, fmt.Errorf("row %q: expected machine=pounds or machine=x", arg)
		}

		row := entry.Row{Machine: machine, Notes: noteByMachine[machine]}
		if strings.EqualFold(value, "x") {
			row.NoSchedule = true
		} else {
			pounds, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return nil, fmt.Errorf("row %q: %q is not a number (use x for no schedule)", arg, value)
			}
			row.ProducedLB = pounds
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseNotes(notes []string) (map[string]string, error) {
	byMachine := make(map[string]string, len(notes))
	for _, note := range notes {
		machine, text, found := strings.Cut(note, "=")
		machine = strings.TrimSpace(machine)
		if !found || machine == "" {
			return nil, fmt.Errorf("note %q: expected machine=text", note)
		}
		byMachine[machine] = strings.TrimSpace(text)
	}
	return byMachine, nil
}
