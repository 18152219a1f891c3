package logging

import (
	"log/slog"

	"cinelog/internal/config"
)

// NewFromConfig creates a logger using application config defaults: console
// output on stdout plus a JSON-formatted line per record appended to the
// configured log file. A nil config yields a plain console logger.
func NewFromConfig(cfg *config.Config) (*slog.Logger, error) {
	if cfg == nil {
		return New(Options{Level: "info", Format: "console", OutputPaths: []string{"stdout"}})
	}

	outputPaths := []string{"stdout"}
	if logPath := cfg.LogFilePath(); logPath != "" {
		outputPaths = append(outputPaths, logPath)
	}
	return New(Options{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		OutputPaths: outputPaths,
	})
}
