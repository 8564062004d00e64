// Package logging assembles structured slog loggers and formatting helpers
// used across xwc.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so engine code automatically
// tags log lines with the run ID and the document being scanned. The package
// also provides a no-op logger for tests and wiring code that cannot fail.
//
// Diagnostics default to standard error: standard output belongs to the
// report.
package logging
