// Package logging assembles the structured slog loggers used across the
// prodlogs commands.
//
// It owns level and format plumbing, standardized attribute constructors,
// component tagging, and a no-op logger for tests and wiring code that
// cannot fail. Prefer these constructors over hand-rolled slog setup so
// every command emits log lines with the same shape.
package logging
