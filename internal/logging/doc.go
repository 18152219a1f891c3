// Package logging builds the slog loggers used across cinelog.
//
// Two output formats are supported: a console handler meant for humans
// running the CLI (colorized when stdout is a terminal) and a JSON handler
// for log files. Loggers fan out to stdout and the configured log file.
// Helper constructors mirror the slog attr API so call sites never import
// log/slog directly, and standardized field keys keep run output greppable.
package logging
