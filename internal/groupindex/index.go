package groupindex

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"

	"cinelog/internal/catalog"
	"cinelog/internal/fileutil"
)

// Index is a read-only handle on the persisted group index. Callers own
// its lifecycle explicitly: open, use, close. There is no lazy singleton
// that could serve a stale index across runs.
type Index struct {
	db   *sql.DB
	lock *flock.Flock
	path string
}

// Meta describes the persisted index.
type Meta struct {
	SourceHash string
	CreatedAt  string
	Records    int
	Groups     int
}

// Open opens the persisted index for reading, holding the shared file lock
// until Close so a rebuild cannot swap the database mid-run. The schema
// version tag and the recorded catalog hash are validated; any problem is
// reported via ErrIndexUnavailable and the caller must rebuild first.
func Open(ctx context.Context, indexPath, catalogPath string) (*Index, error) {
	if _, err := os.Stat(indexPath); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s does not exist (run `cinelog index build`)", ErrIndexUnavailable, indexPath)
		}
		return nil, fmt.Errorf("%w: stat %s: %v", ErrIndexUnavailable, indexPath, err)
	}

	lock := flock.New(lockPath(indexPath))
	locked, err := lock.TryRLock()
	if err != nil {
		return nil, fmt.Errorf("acquire read lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("%w: a rebuild is in progress", ErrIndexUnavailable)
	}

	db, err := sql.Open("sqlite", indexPath)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("%w: open %s: %v", ErrIndexUnavailable, indexPath, err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA query_only=ON"); err != nil {
		_ = db.Close()
		_ = lock.Unlock()
		return nil, fmt.Errorf("%w: apply pragma: %v", ErrIndexUnavailable, err)
	}

	index := &Index{db: db, lock: lock, path: indexPath}
	if err := index.validate(ctx, catalogPath); err != nil {
		_ = index.Close()
		return nil, err
	}
	return index, nil
}

func (ix *Index) validate(ctx context.Context, catalogPath string) error {
	var version int
	err := ix.db.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1").Scan(&version)
	if err != nil {
		return fmt.Errorf("%w: read version tag: %v", ErrIndexUnavailable, err)
	}
	if version != schemaVersion {
		return fmt.Errorf("%w: index has version %d, this build expects %d (run `cinelog index build`)",
			ErrIndexUnavailable, version, schemaVersion)
	}

	recorded, err := ix.metaValue(ctx, metaSourceHashKey)
	if err != nil {
		return fmt.Errorf("%w: read source hash: %v", ErrIndexUnavailable, err)
	}
	current, err := fileutil.HashFile(catalogPath)
	if err != nil {
		return fmt.Errorf("%w: hash catalog: %v", ErrIndexUnavailable, err)
	}
	if recorded != current {
		return fmt.Errorf("%w: catalog changed since the index was built (run `cinelog index build`)", ErrIndexUnavailable)
	}
	return nil
}

// Close releases the database handle and the shared lock.
func (ix *Index) Close() error {
	if ix == nil {
		return nil
	}
	var firstErr error
	if ix.db != nil {
		if err := ix.db.Close(); err != nil {
			firstErr = err
		}
	}
	if ix.lock != nil {
		if err := ix.lock.Unlock(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

const recordColumns = "tconst, title, year, directors, rating, votes"

// Lookup returns the group for key in catalog insertion order. Year 0
// selects records with no recorded year.
func (ix *Index) Lookup(ctx context.Context, key Key) ([]catalog.Record, error) {
	query := "SELECT " + recordColumns + " FROM records WHERE norm_title = ? AND year = ? ORDER BY pos"
	args := []any{key.Title, key.Year}
	if key.Year == 0 {
		query = "SELECT " + recordColumns + " FROM records WHERE norm_title = ? AND year IS NULL ORDER BY pos"
		args = args[:1]
	}
	return ix.queryRecords(ctx, query, args...)
}

// LookupTitle returns every record sharing the normalized title, across
// all years including unknown, in catalog insertion order. This is the
// secondary title-only index behind the year-fallback step.
func (ix *Index) LookupTitle(ctx context.Context, normTitle string) ([]catalog.Record, error) {
	return ix.queryRecords(ctx,
		"SELECT "+recordColumns+" FROM records WHERE norm_title = ? ORDER BY pos", normTitle)
}

// LookupID fetches a single record by its external identifier.
func (ix *Index) LookupID(ctx context.Context, id string) (*catalog.Record, error) {
	records, err := ix.queryRecords(ctx,
		"SELECT "+recordColumns+" FROM records WHERE tconst = ?", id)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	return &records[0], nil
}

// Meta returns the persisted index metadata.
func (ix *Index) Meta(ctx context.Context) (*Meta, error) {
	meta := &Meta{}
	var err error
	if meta.SourceHash, err = ix.metaValue(ctx, metaSourceHashKey); err != nil {
		return nil, err
	}
	if meta.CreatedAt, err = ix.metaValue(ctx, metaCreatedAtKey); err != nil {
		return nil, err
	}
	if err := ix.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM records").Scan(&meta.Records); err != nil {
		return nil, fmt.Errorf("count records: %w", err)
	}
	if err := ix.db.QueryRowContext(ctx,
		"SELECT COUNT(DISTINCT norm_title || '/' || COALESCE(year, '')) FROM records").Scan(&meta.Groups); err != nil {
		return nil, fmt.Errorf("count groups: %w", err)
	}
	return meta, nil
}

func (ix *Index) metaValue(ctx context.Context, key string) (string, error) {
	var value string
	err := ix.db.QueryRowContext(ctx, "SELECT value FROM index_meta WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("meta key %q missing", key)
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

func (ix *Index) queryRecords(ctx context.Context, query string, args ...any) ([]catalog.Record, error) {
	rows, err := ix.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query index: %w", err)
	}
	defer rows.Close()

	var records []catalog.Record
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate index rows: %w", err)
	}
	return records, nil
}
