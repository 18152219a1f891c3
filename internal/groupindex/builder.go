package groupindex

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"

	"cinelog/internal/catalog"
	"cinelog/internal/config"
	"cinelog/internal/fileutil"
	"cinelog/internal/logging"
	"cinelog/internal/textutil"
)

//go:embed schema.sql
var schemaSQL string

// schemaVersion tags the persisted index format. Bump on schema changes;
// readers refuse mismatched versions so stale-format reads fail loudly.
const schemaVersion = 1

// Meta keys recorded alongside the index.
const (
	metaVersionKey     = "schema_version"
	metaSourceHashKey  = "source_sha256"
	metaCreatedAtKey   = "created_at"
	metaRecordCountKey = "record_count"
	metaGroupCountKey  = "group_count"
)

// Builder rebuilds the persisted index from the normalized catalog.
type Builder struct {
	cfg    *config.Config
	logger *slog.Logger
}

// NewBuilder constructs a Builder. A nil logger disables logging.
func NewBuilder(cfg *config.Config, logger *slog.Logger) *Builder {
	return &Builder{cfg: cfg, logger: logging.NewComponentLogger(logger, "index")}
}

// BuildSummary reports what a rebuild did.
type BuildSummary struct {
	Records int
	Groups  int
}

// Run rebuilds the index from the catalog file. The build happens in a
// temporary database renamed into place, under the exclusive build lock,
// so concurrent linkers never observe a half-written index.
func (b *Builder) Run(ctx context.Context) (*BuildSummary, error) {
	records, err := catalog.ReadCatalog(b.cfg.Paths.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	sourceHash, err := fileutil.HashFile(b.cfg.Paths.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("hash catalog: %w", err)
	}

	lock := flock.New(lockPath(b.cfg.Paths.IndexPath))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire build lock: %w", err)
	}
	if !locked {
		return nil, ErrBuildLocked
	}
	defer func() {
		_ = lock.Unlock()
	}()

	dir := filepath.Dir(b.cfg.Paths.IndexPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create index directory: %w", err)
	}
	tmpPath := filepath.Join(dir, fmt.Sprintf(".%s.build-%d", filepath.Base(b.cfg.Paths.IndexPath), os.Getpid()))
	defer func() {
		_ = os.Remove(tmpPath)
	}()

	summary, err := b.buildAt(ctx, tmpPath, records, sourceHash)
	if err != nil {
		return nil, err
	}
	if err := os.Rename(tmpPath, b.cfg.Paths.IndexPath); err != nil {
		return nil, fmt.Errorf("publish index: %w", err)
	}

	b.logger.Info("index rebuilt",
		logging.String(logging.FieldPath, b.cfg.Paths.IndexPath),
		logging.Int("records", summary.Records),
		logging.Int("groups", summary.Groups))
	return summary, nil
}

func (b *Builder) buildAt(ctx context.Context, path string, records []catalog.Record, sourceHash string) (*BuildSummary, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("create index db: %w", err)
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=OFF"); err != nil {
		return nil, fmt.Errorf("apply pragma: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin build tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, schemaSQL); err != nil {
		return nil, fmt.Errorf("create schema: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO schema_version (version) VALUES (?)", schemaVersion); err != nil {
		return nil, fmt.Errorf("record schema version: %w", err)
	}

	insert, err := tx.PrepareContext(ctx,
		`INSERT INTO records (tconst, norm_title, title, year, directors, rating, votes, pos)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return nil, fmt.Errorf("prepare insert: %w", err)
	}
	defer insert.Close()

	groups := make(map[Key]struct{}, len(records))
	for pos, record := range records {
		key := KeyFor(record.Title, record.Year)
		groups[key] = struct{}{}

		var year any
		if record.HasYear() {
			year = record.Year
		}
		if _, err := insert.ExecContext(ctx,
			record.ID,
			key.Title,
			record.Title,
			year,
			textutil.JoinIDs(record.Directors),
			record.Rating,
			record.Votes,
			pos,
		); err != nil {
			return nil, fmt.Errorf("insert record %q: %w", record.ID, err)
		}
	}

	meta := map[string]string{
		metaVersionKey:     strconv.Itoa(schemaVersion),
		metaSourceHashKey:  sourceHash,
		metaCreatedAtKey:   time.Now().UTC().Format(time.RFC3339),
		metaRecordCountKey: strconv.Itoa(len(records)),
		metaGroupCountKey:  strconv.Itoa(len(groups)),
	}
	for key, value := range meta {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO index_meta (key, value) VALUES (?, ?)", key, value); err != nil {
			return nil, fmt.Errorf("record meta %q: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit build: %w", err)
	}
	return &BuildSummary{Records: len(records), Groups: len(groups)}, nil
}

func lockPath(indexPath string) string {
	return indexPath + ".lock"
}
