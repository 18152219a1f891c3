package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"cinelog/internal/config"
	"cinelog/internal/logging"
	"cinelog/internal/textutil"
)

// Loader builds the normalized catalog from the bulk dataset dumps.
type Loader struct {
	cfg    *config.Config
	logger *slog.Logger
}

// NewLoader constructs a Loader. A nil logger disables logging.
func NewLoader(cfg *config.Config, logger *slog.Logger) *Loader {
	return &Loader{cfg: cfg, logger: logging.NewComponentLogger(logger, "loader")}
}

// Summary reports what a load pass did.
type Summary struct {
	Records    int
	Skipped    int
	Duplicates int
	People     int
}

type titleRow struct {
	id    string
	title string
	year  int
}

// Run streams the dumps, joins titles with crew (and optionally ratings)
// on the title identifier, and atomically publishes the catalog CSV plus,
// when configured, the director name table. On any structural error the
// files already on disk are left untouched.
func (l *Loader) Run(ctx context.Context) (*Summary, error) {
	summary := &Summary{}

	titles, order, err := l.readBasics(ctx, summary)
	if err != nil {
		return nil, err
	}
	l.logger.Info("title rows loaded",
		logging.Int(logging.FieldRows, len(order)),
		logging.Int(logging.FieldSkipped, summary.Skipped))

	directors, err := l.readCrew(ctx, titles, summary)
	if err != nil {
		return nil, err
	}

	ratings := map[string][2]string{}
	if l.cfg.Catalog.IncludeRatings {
		ratings, err = l.readRatings(ctx, titles, summary)
		if err != nil {
			return nil, err
		}
	}

	records := make([]Record, 0, len(order))
	for _, id := range order {
		row := titles[id]
		record := Record{
			ID:        id,
			Title:     row.title,
			Year:      row.year,
			Directors: directors[id],
		}
		if rv, ok := ratings[id]; ok {
			record.Rating, record.Votes = rv[0], rv[1]
		}
		records = append(records, record)
	}
	summary.Records = len(records)

	if err := WriteCatalog(l.cfg.Paths.CatalogPath, records); err != nil {
		return nil, fmt.Errorf("publish catalog: %w", err)
	}
	l.logger.Info("catalog published",
		logging.String(logging.FieldPath, l.cfg.Paths.CatalogPath),
		logging.Int(logging.FieldRows, summary.Records))

	if l.cfg.Catalog.IncludePeople {
		people, err := l.readNames(ctx, records, summary)
		if err != nil {
			return nil, err
		}
		if err := WritePeople(l.cfg.Paths.PeoplePath, people); err != nil {
			return nil, fmt.Errorf("publish people table: %w", err)
		}
		summary.People = len(people)
		l.logger.Info("people table published",
			logging.String(logging.FieldPath, l.cfg.Paths.PeoplePath),
			logging.Int(logging.FieldRows, summary.People))
	}

	return summary, nil
}

// readBasics loads the title dump into id-keyed rows, preserving first-seen
// order and dropping exact-duplicate identifiers.
func (l *Loader) readBasics(ctx context.Context, summary *Summary) (map[string]titleRow, []string, error) {
	reader, err := openTSV(l.cfg.DatasetPath(l.cfg.Catalog.BasicsFile),
		"tconst", "titleType", "primaryTitle", "isAdult", "startYear")
	if err != nil {
		return nil, nil, err
	}
	defer reader.Close()

	wanted := make(map[string]struct{}, len(l.cfg.Catalog.TitleTypes))
	for _, titleType := range l.cfg.Catalog.TitleTypes {
		wanted[titleType] = struct{}{}
	}

	titles := make(map[string]titleRow)
	var order []string
	for {
		if err := checkContext(ctx, reader.line); err != nil {
			return nil, nil, err
		}
		row, err := reader.next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, err
		}

		id, ok := reader.field(row, "tconst")
		if !ok {
			l.skipRow(summary, reader, "missing tconst")
			continue
		}
		titleType, _ := reader.field(row, "titleType")
		if _, keep := wanted[titleType]; !keep {
			continue
		}
		if !l.cfg.Catalog.IncludeAdult {
			if adult, ok := reader.field(row, "isAdult"); ok && adult != "0" {
				continue
			}
		}
		title, ok := reader.field(row, "primaryTitle")
		if !ok {
			l.skipRow(summary, reader, "missing primaryTitle")
			continue
		}

		year := 0
		if rawYear, ok := reader.field(row, "startYear"); ok {
			year, err = strconv.Atoi(rawYear)
			if err != nil {
				l.skipRow(summary, reader, "unparseable startYear")
				continue
			}
		}

		if _, seen := titles[id]; seen {
			summary.Duplicates++
			continue
		}
		titles[id] = titleRow{id: id, title: title, year: year}
		order = append(order, id)
	}
	return titles, order, nil
}

// readCrew maps title identifiers to their ordered director identifiers,
// restricted to titles the basics pass kept.
func (l *Loader) readCrew(ctx context.Context, titles map[string]titleRow, summary *Summary) (map[string][]string, error) {
	reader, err := openTSV(l.cfg.DatasetPath(l.cfg.Catalog.CrewFile), "tconst", "directors")
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	directors := make(map[string][]string)
	for {
		if err := checkContext(ctx, reader.line); err != nil {
			return nil, err
		}
		row, err := reader.next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		id, ok := reader.field(row, "tconst")
		if !ok {
			l.skipRow(summary, reader, "missing tconst")
			continue
		}
		if _, keep := titles[id]; !keep {
			continue
		}
		field, ok := reader.field(row, "directors")
		if !ok {
			continue
		}
		if _, seen := directors[id]; seen {
			// The dump repeats crew rows across source files; first wins.
			summary.Duplicates++
			continue
		}
		if ids := textutil.SplitIDs(field); len(ids) > 0 {
			directors[id] = ids
		}
	}
	return directors, nil
}

func (l *Loader) readRatings(ctx context.Context, titles map[string]titleRow, summary *Summary) (map[string][2]string, error) {
	reader, err := openTSV(l.cfg.DatasetPath(l.cfg.Catalog.RatingsFile),
		"tconst", "averageRating", "numVotes")
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	ratings := make(map[string][2]string)
	for {
		if err := checkContext(ctx, reader.line); err != nil {
			return nil, err
		}
		row, err := reader.next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		id, ok := reader.field(row, "tconst")
		if !ok {
			l.skipRow(summary, reader, "missing tconst")
			continue
		}
		if _, keep := titles[id]; !keep {
			continue
		}
		rating, _ := reader.field(row, "averageRating")
		votes, _ := reader.field(row, "numVotes")
		ratings[id] = [2]string{rating, votes}
	}
	return ratings, nil
}

// readNames resolves the person identifiers referenced as directors to
// display names. Unreferenced people are never materialized.
func (l *Loader) readNames(ctx context.Context, records []Record, summary *Summary) ([]Person, error) {
	referenced := make(map[string]struct{})
	for _, record := range records {
		for _, director := range record.Directors {
			referenced[director] = struct{}{}
		}
	}

	reader, err := openTSV(l.cfg.DatasetPath(l.cfg.Catalog.NamesFile), "nconst", "primaryName")
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	seen := make(map[string]struct{}, len(referenced))
	var people []Person
	for {
		if err := checkContext(ctx, reader.line); err != nil {
			return nil, err
		}
		row, err := reader.next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		id, ok := reader.field(row, "nconst")
		if !ok {
			l.skipRow(summary, reader, "missing nconst")
			continue
		}
		if _, keep := referenced[id]; !keep {
			continue
		}
		if _, dup := seen[id]; dup {
			summary.Duplicates++
			continue
		}
		name, ok := reader.field(row, "primaryName")
		if !ok {
			l.skipRow(summary, reader, "missing primaryName")
			continue
		}
		seen[id] = struct{}{}
		people = append(people, Person{ID: id, Name: name})
	}
	return people, nil
}

func (l *Loader) skipRow(summary *Summary, reader *tsvReader, reason string) {
	summary.Skipped++
	l.logger.Debug("skipping malformed row",
		logging.String("file", reader.name),
		logging.Int("line", reader.line),
		logging.String("reason", reason))
}

func checkContext(ctx context.Context, line int) error {
	if line%65536 == 0 {
		return ctx.Err()
	}
	return nil
}
