package entry

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"prodlogs/internal/store"
)

// Row is one machine's line on the daily entry form.
type Row struct {
	Machine    string
	ProducedLB float64
	NoSchedule bool
	Notes      string
}

// Submission is one shift's worth of rows for one date.
type Submission struct {
	Date  time.Time
	Shift string
	Rows  []Row
}

// Validate enforces the form rules: a shift label is required, output cannot
// be negative, and a machine reporting zero pounds must be marked as having
// no schedule so idle days are deliberate rather than forgotten.
func (s Submission) Validate() error {
	var errs []error
	if s.Date.IsZero() {
		errs = append(errs, errors.New("entry date is required"))
	}
	if strings.TrimSpace(s.Shift) == "" {
		errs = append(errs, errors.New("shift is required"))
	}
	if len(s.Rows) == 0 {
		errs = append(errs, errors.New("at least one machine row is required"))
	}
	for _, row := range s.Rows {
		machine := strings.TrimSpace(row.Machine)
		if machine == "" {
			errs = append(errs, errors.New("machine name missing on a row"))
			continue
		}
		if row.ProducedLB < 0 {
			errs = append(errs, fmt.Errorf("%s: produced pounds cannot be negative", machine))
		}
		if row.ProducedLB == 0 && !row.NoSchedule {
			errs = append(errs, fmt.Errorf("%s: zero output requires the no-schedule flag", machine))
		}
	}
	return errors.Join(errs...)
}

// Entries converts the submission into store rows stamped with submissionID.
func (s Submission) Entries(submissionID string) []store.Entry {
	entries := make([]store.Entry, 0, len(s.Rows))
	date := s.Date.Format("2006-01-02")
	day := s.Date.Weekday().String()
	for _, row := range s.Rows {
		entries = append(entries, store.Entry{
			Date:         date,
			DayOfWeek:    day,
			Shift:        strings.TrimSpace(s.Shift),
			Machine:      strings.TrimSpace(row.Machine),
			ProducedLB:   row.ProducedLB,
			NoSchedule:   row.NoSchedule,
			Notes:        strings.TrimSpace(row.Notes),
			SubmissionID: submissionID,
		})
	}
	return entries
}
