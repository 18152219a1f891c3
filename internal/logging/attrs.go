package logging

import (
	"context"
	"log/slog"
)

type Attr = slog.Attr

func Int(key string, value int) Attr { return slog.Int(key, value) }

func String(key string, value string) Attr { return slog.String(key, value) }

// Standardized structured logging keys.
const (
	// FieldComponent names the emitting component (loader, index, linker...).
	FieldComponent = "component"
	// FieldRunID correlates every record of one link run.
	FieldRunID = "run_id"
	// FieldTitle carries the journal or catalog title under discussion.
	FieldTitle = "title"
	// FieldOutcome carries a linker outcome tag.
	FieldOutcome = "outcome"
	// FieldRows counts rows read from a tabular source.
	FieldRows = "rows"
	// FieldSkipped counts malformed rows dropped during a load.
	FieldSkipped = "skipped"
	// FieldPath names a file acted upon.
	FieldPath = "path"
)

// NewNop returns a logger that discards everything.
func NewNop() *slog.Logger {
	return slog.New(NoopHandler{})
}

// NewComponentLogger tags logger with a standardized component attribute.
// A nil logger yields a component-tagged no-op logger.
func NewComponentLogger(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	return logger.With(String(FieldComponent, component))
}

// NoopHandler discards all log output.
type NoopHandler struct{}

func (NoopHandler) Enabled(context.Context, slog.Level) bool { return false }

func (NoopHandler) Handle(context.Context, slog.Record) error { return nil }

func (NoopHandler) WithAttrs([]slog.Attr) slog.Handler { return NoopHandler{} }

func (NoopHandler) WithGroup(string) slog.Handler { return NoopHandler{} }
