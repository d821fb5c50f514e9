package entry

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"prodlogs/internal/config"
	"prodlogs/internal/logging"
	"prodlogs/internal/services/githost"
	"prodlogs/internal/store"
)

// csvHeader matches the columns of the mirrored output log.
var csvHeader = []string{
	"Date", "Day of Week", "Shift", "Machine Name",
	"Total Produced (LB)", "No Schedule", "Notes",
}

// Service accepts submissions and keeps the CSV mirror current.
type Service struct {
	store      *store.Store
	host       *githost.Client
	mirrorPath string
	machines   map[string]struct{}
	logger     *slog.Logger
}

// NewService wires the submission flow. host may be nil when the git mirror
// is disabled. An empty machine list disables the form restriction.
func NewService(st *store.Store, host *githost.Client, dataDir string, entryCfg config.Entry, logger *slog.Logger) *Service {
	var machines map[string]struct{}
	if len(entryCfg.Machines) > 0 {
		machines = make(map[string]struct{}, len(entryCfg.Machines))
		for _, machine := range entryCfg.Machines {
			machines[strings.TrimSpace(machine)] = struct{}{}
		}
	}
	return &Service{
		store:      st,
		host:       host,
		mirrorPath: filepath.Join(dataDir, entryCfg.MirrorFile),
		machines:   machines,
		logger:     logging.NewComponentLogger(logger, "entry"),
	}
}

// checkMachines enforces the form's machine list: rows may only name
// machines the configuration offers.
func (s *Service) checkMachines(rows []Row) error {
	if s.machines == nil {
		return nil
	}
	var errs []error
	for _, row := range rows {
		machine := strings.TrimSpace(row.Machine)
		if _, ok := s.machines[machine]; !ok {
			errs = append(errs, fmt.Errorf("%s: not on the entry form machine list", machine))
		}
	}
	return errors.Join(errs...)
}

// Result reports what a submission changed.
type Result struct {
	SubmissionID string
	Inserted     int
	MirrorPath   string
	Pushed       bool
}

// Submit validates, stores, and mirrors one submission. Exact duplicates of
// existing rows are skipped; when nothing new was added the push is skipped
// too.
func (s *Service) Submit(ctx context.Context, sub Submission) (*Result, error) {
	if err := sub.Validate(); err != nil {
		return nil, fmt.Errorf("invalid submission: %w", err)
	}
	if err := s.checkMachines(sub.Rows); err != nil {
		return nil, fmt.Errorf("invalid submission: %w", err)
	}

	id := uuid.NewString()
	entries := sub.Entries(id)

	lock := flock.New(s.mirrorPath + ".lock")
	if err := lock.Lock(); err != nil {
		return nil, fmt.Errorf("lock output log: %w", err)
	}
	defer lock.Unlock()

	inserted, err := s.store.AppendEntries(ctx, entries)
	if err != nil {
		return nil, err
	}

	all, err := s.store.Entries(ctx)
	if err != nil {
		return nil, err
	}
	content := RenderCSV(all)
	if err := os.WriteFile(s.mirrorPath, []byte(content), 0o644); err != nil {
		return nil, fmt.Errorf("write mirror csv: %w", err)
	}

	result := &Result{SubmissionID: id, Inserted: inserted, MirrorPath: s.mirrorPath}
	s.logger.Info("submission stored",
		logging.String("submission_id", id),
		logging.String("date", sub.Date.Format("2006-01-02")),
		logging.String("shift", sub.Shift),
		logging.Int("inserted", inserted))

	if s.host == nil || inserted == 0 {
		return result, nil
	}

	remote, err := s.host.FetchFile(ctx)
	if err != nil {
		return result, fmt.Errorf("fetch remote mirror: %w", err)
	}
	message := fmt.Sprintf("Add daily output log for %s (%s)", sub.Date.Format("2006-01-02"), sub.Shift)
	if err := s.host.CommitFile(ctx, content, remote.SHA, message); err != nil {
		return result, fmt.Errorf("push mirror: %w", err)
	}
	result.Pushed = true
	s.logger.Info("mirror pushed", logging.String("submission_id", id))
	return result, nil
}

// RenderCSV serializes store rows in mirror-file column order.
func RenderCSV(entries []store.Entry) string {
	var sb strings.Builder
	w := csv.NewWriter(&sb)
	_ = w.Write(csvHeader)
	for _, entry := range entries {
		noSchedule := ""
		if entry.NoSchedule {
			noSchedule = "X"
		}
		_ = w.Write([]string{
			entry.Date,
			entry.DayOfWeek,
			entry.Shift,
			entry.Machine,
			strconv.FormatFloat(entry.ProducedLB, 'f', -1, 64),
			noSchedule,
			entry.Notes,
		})
	}
	w.Flush()
	return sb.String()
}
