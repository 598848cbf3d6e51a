// Package logging assembles structured slog loggers used across coursework.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and provides a no-op logger for tests and wiring code that cannot
// fail. Console output goes to stderr so it never interleaves with the
// session transcript printed on stdout.
package logging
