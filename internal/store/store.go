package store

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"prodlogs/internal/config"
)

// Store manages output-log persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the output-log database.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}
	return OpenPath(filepath.Join(cfg.Paths.DataDir, "output_log.db"))
}

// OpenPath opens the database at an explicit path and applies the schema.
func OpenPath(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.applySchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) applySchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM schema_info`).Scan(&count); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if count == 0 {
		if _, err := s.db.ExecContext(ctx, `INSERT INTO schema_info (version) VALUES (?)`, schemaVersion); err != nil {
			return fmt.Errorf("record schema version: %w", err)
		}
	}
	return nil
}

// AppendEntries inserts entries, silently skipping exact duplicates of rows
// already present. Returns how many rows were actually added.
func (s *Store) AppendEntries(ctx context.Context, entries []Entry) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin append: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
        INSERT OR IGNORE INTO output_entries (
            entry_date, day_of_week, shift, machine,
            produced_lb, no_schedule, notes, submission_id, created_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("prepare append: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	now := time.Now().UTC().Format(time.RFC3339Nano)
	for _, entry := range entries {
		res, err := stmt.ExecContext(ctx,
			entry.Date,
			entry.DayOfWeek,
			entry.Shift,
			entry.Machine,
			entry.ProducedLB,
			boolToInt(entry.NoSchedule),
			entry.Notes,
			entry.SubmissionID,
			now,
		)
		if err != nil {
			return 0, fmt.Errorf("insert entry for %s: %w", entry.Machine, err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("rows affected: %w", err)
		}
		inserted += int(affected)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit append: %w", err)
	}
	return inserted, nil
}

// Entries returns every row ordered by date, shift, and machine. The CSV
// mirror is regenerated from this.
func (s *Store) Entries(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT id, entry_date, day_of_week, shift, machine,
               produced_lb, no_schedule, notes, submission_id, created_at
        FROM output_entries
        ORDER BY entry_date, shift, machine`)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var entry Entry
		var noSchedule int
		var createdAt string
		if err := rows.Scan(
			&entry.ID, &entry.Date, &entry.DayOfWeek, &entry.Shift, &entry.Machine,
			&entry.ProducedLB, &noSchedule, &entry.Notes, &entry.SubmissionID, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		entry.NoSchedule = noSchedule != 0
		if ts, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
			entry.CreatedAt = ts
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// MachineSummaries aggregates scheduled output per machine, highest average
// first. No-schedule rows are excluded so idle days do not drag averages.
func (s *Store) MachineSummaries(ctx context.Context) ([]MachineSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT machine, COUNT(*), AVG(produced_lb), MAX(produced_lb), MIN(produced_lb)
        FROM output_entries
        WHERE no_schedule = 0
        GROUP BY machine
        ORDER BY AVG(produced_lb) DESC`)
	if err != nil {
		return nil, fmt.Errorf("query machine summaries: %w", err)
	}
	defer rows.Close()

	var summaries []MachineSummary
	for rows.Next() {
		var s MachineSummary
		if err := rows.Scan(&s.Machine, &s.Shifts, &s.AvgLB, &s.MaxLB, &s.MinLB); err != nil {
			return nil, fmt.Errorf("scan machine summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

// ShiftAverages aggregates scheduled output per machine and shift.
func (s *Store) ShiftAverages(ctx context.Context) ([]ShiftAverage, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT machine, shift, COUNT(*), AVG(produced_lb)
        FROM output_entries
        WHERE no_schedule = 0
        GROUP BY machine, shift
        ORDER BY machine, shift`)
	if err != nil {
		return nil, fmt.Errorf("query shift averages: %w", err)
	}
	defer rows.Close()

	var averages []ShiftAverage
	for rows.Next() {
		var a ShiftAverage
		if err := rows.Scan(&a.Machine, &a.Shift, &a.Shifts, &a.AvgLB); err != nil {
			return nil, fmt.Errorf("scan shift average: %w", err)
		}
		averages = append(averages, a)
	}
	return averages, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
