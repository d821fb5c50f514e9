package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"prodlogs/internal/reports"
	"prodlogs/internal/services/p21"
	"prodlogs/internal/store"
)

func newReportCommand(ctx *commandContext) *cobra.Command {
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Production reports",
	}

	reportCmd.AddCommand(newReportDailyCommand(ctx))
	reportCmd.AddCommand(newReportOrdersCommand(ctx))

	return reportCmd
}

func newReportDailyCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "daily",
		Short: "Summarize logged production output per machine and shift",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.configValue()

			st, err := store.Open(cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			machines, err := st.MachineSummaries(cmd.Context())
			if err != nil {
				return err
			}
			shifts, err := st.ShiftAverages(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(machines) == 0 {
				fmt.Fprintln(out, "No scheduled output logged yet")
				return nil
			}

			fmt.Fprintln(out, reports.RenderDailyReport(reports.DailyReport{
				Machines:      machines,
				ShiftAverages: shifts,
			}, styledOutput()))
			return nil
		},
	}
}

func newReportOrdersCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "orders",
		Short: "Show open-order workload by machine and scheduler",
		Long: "Query the ERP for open production orders due on or before the\n" +
			"Friday of next week and aggregate their weight by machine and\n" +
			"by scheduler.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.configValue()
			logger := ctx.ensureLogger()

			client, err := p21.NewClient(cfg.P21, logger)
			if err != nil {
				return err
			}
			defer client.Close()

			orders, err := client.OpenOrders(cmd.Context())
			if err != nil {
				return err
			}

			report := reports.BuildOrdersReport(orders, time.Now())
			fmt.Fprintln(cmd.OutOrStdout(), reports.RenderOrdersReport(report, styledOutput()))
			return nil
		},
	}
}
