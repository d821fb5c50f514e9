package reports

import (
	"strings"

	"prodlogs/internal/store"
)

// DailyReport is the machine performance summary from the output log.
type DailyReport struct {
	Machines      []store.MachineSummary
	ShiftAverages []store.ShiftAverage
}

// RenderDailyReport renders machine summaries and per-shift averages.
// No-schedule shifts are already excluded by the store aggregates, so the
// averages reflect days the machine actually ran.
func RenderDailyReport(report DailyReport, styled bool) string {
	machineRows := make([][]string, 0, len(report.Machines))
	for _, m := range report.Machines {
		machineRows = append(machineRows, []string{
			m.Machine,
			formatLB(float64(m.Shifts)),
			formatLB(m.AvgLB),
			formatLB(m.MaxLB),
			formatLB(m.MinLB),
		})
	}
	machines := renderTable("Output by Machine",
		[]string{"Machine", "Shifts", "Avg (LB)", "Max (LB)", "Min (LB)"},
		machineRows,
		[]columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignRight},
		styled)

	shiftRows := make([][]string, 0, len(report.ShiftAverages))
	for _, s := range report.ShiftAverages {
		shiftRows = append(shiftRows, []string{
			s.Machine,
			s.Shift,
			formatLB(float64(s.Shifts)),
			formatLB(s.AvgLB),
		})
	}
	shifts := renderTable("Average Output by Shift",
		[]string{"Machine", "Shift", "Shifts", "Avg (LB)"},
		shiftRows,
		[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight},
		styled)

	return strings.Join([]string{machines, shifts}, "\n\n")
}
