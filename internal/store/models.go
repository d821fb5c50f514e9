package store

import "time"

// Entry is one machine's output for one shift on one date.
type Entry struct {
	ID           int64
	Date         string // YYYY-MM-DD
	DayOfWeek    string
	Shift        string
	Machine      string
	ProducedLB   float64
	NoSchedule   bool
	Notes        string
	SubmissionID string
	CreatedAt    time.Time
}

// MachineSummary aggregates scheduled shifts for one machine.
type MachineSummary struct {
	Machine string
	Shifts  int
	AvgLB   float64
	MaxLB   float64
	MinLB   float64
}

// ShiftAverage is the per-machine, per-shift average output.
type ShiftAverage struct {
	Machine string
	Shift   string
	Shifts  int
	AvgLB   float64
}
