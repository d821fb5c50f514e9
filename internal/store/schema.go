package store

const schemaVersion = 1

const schema = `
CREATE TABLE IF NOT EXISTS schema_info (
    version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS output_entries (
    id            INTEGER PRIMARY KEY AUTOINCREMENT,
    entry_date    TEXT NOT NULL,
    day_of_week   TEXT NOT NULL,
    shift         TEXT NOT NULL,
    machine       TEXT NOT NULL,
    produced_lb   REAL NOT NULL,
    no_schedule   INTEGER NOT NULL DEFAULT 0,
    notes         TEXT NOT NULL DEFAULT '',
    submission_id TEXT NOT NULL,
    created_at    TEXT NOT NULL,
    UNIQUE (entry_date, shift, machine, produced_lb, no_schedule, notes)
);

CREATE INDEX IF NOT EXISTS idx_output_entries_machine
    ON output_entries (machine);
CREATE INDEX IF NOT EXISTS idx_output_entries_date
    ON output_entries (entry_date, shift);
`
