package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateJournal(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	required := []struct {
		name  string
		value string
	}{
		{"paths.data_dir", c.Paths.DataDir},
		{"paths.catalog_path", c.Paths.CatalogPath},
		{"paths.index_path", c.Paths.IndexPath},
		{"paths.journal_path", c.Paths.JournalPath},
		{"paths.linked_path", c.Paths.LinkedPath},
	}
	for _, field := range required {
		if field.value == "" {
			return fmt.Errorf("%s must be set", field.name)
		}
	}
	if c.Paths.CatalogPath == c.Paths.LinkedPath {
		return errors.New("paths.catalog_path and paths.linked_path must differ")
	}
	return nil
}

func (c *Config) validateJournal() error {
	switch c.Journal.Format {
	case "csv", "log":
		return nil
	default:
		return fmt.Errorf("journal.format must be \"csv\" or \"log\", got %q", c.Journal.Format)
	}
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be \"console\" or \"json\", got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
}
