// Package logging constructs the slog loggers used across gamedex.
//
// It supports console and JSON output formats, optional file output alongside
// stdout, and exposes small helpers (attribute aliases, component loggers,
// a no-op logger) so callers never import log/slog handler details directly.
package logging
