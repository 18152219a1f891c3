package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeCatalog()
	c.normalizeJournal()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	fields := []struct {
		name  string
		value *string
	}{
		{"paths.data_dir", &c.Paths.DataDir},
		{"paths.catalog_path", &c.Paths.CatalogPath},
		{"paths.people_path", &c.Paths.PeoplePath},
		{"paths.index_path", &c.Paths.IndexPath},
		{"paths.journal_path", &c.Paths.JournalPath},
		{"paths.linked_path", &c.Paths.LinkedPath},
		{"paths.log_dir", &c.Paths.LogDir},
	}
	for _, field := range fields {
		expanded, err := expandPath(strings.TrimSpace(*field.value))
		if err != nil {
			return fmt.Errorf("%s: %w", field.name, err)
		}
		*field.value = expanded
	}
	return nil
}

func (c *Config) normalizeCatalog() {
	c.Catalog.BasicsFile = strings.TrimSpace(c.Catalog.BasicsFile)
	if c.Catalog.BasicsFile == "" {
		c.Catalog.BasicsFile = defaultBasicsFile
	}
	c.Catalog.CrewFile = strings.TrimSpace(c.Catalog.CrewFile)
	if c.Catalog.CrewFile == "" {
		c.Catalog.CrewFile = defaultCrewFile
	}
	c.Catalog.RatingsFile = strings.TrimSpace(c.Catalog.RatingsFile)
	if c.Catalog.RatingsFile == "" {
		c.Catalog.RatingsFile = defaultRatingsFile
	}
	c.Catalog.NamesFile = strings.TrimSpace(c.Catalog.NamesFile)
	if c.Catalog.NamesFile == "" {
		c.Catalog.NamesFile = defaultNamesFile
	}

	types := make([]string, 0, len(c.Catalog.TitleTypes))
	seen := make(map[string]struct{}, len(c.Catalog.TitleTypes))
	for _, titleType := range c.Catalog.TitleTypes {
		normalized := strings.ToLower(strings.TrimSpace(titleType))
		if normalized == "" {
			continue
		}
		if _, exists := seen[normalized]; exists {
			continue
		}
		seen[normalized] = struct{}{}
		types = append(types, normalized)
	}
	if len(types) == 0 {
		types = []string{"movie"}
	}
	c.Catalog.TitleTypes = types
}

func (c *Config) normalizeJournal() {
	c.Journal.Format = strings.ToLower(strings.TrimSpace(c.Journal.Format))
	if c.Journal.Format == "" {
		c.Journal.Format = defaultJournalFormat
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
