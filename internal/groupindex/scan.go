package groupindex

import (
	"database/sql"
	"fmt"

	"cinelog/internal/catalog"
	"cinelog/internal/textutil"
)

func scanRecord(rows *sql.Rows) (catalog.Record, error) {
	var (
		record    catalog.Record
		year      sql.NullInt64
		directors string
	)
	if err := rows.Scan(&record.ID, &record.Title, &year, &directors, &record.Rating, &record.Votes); err != nil {
		return catalog.Record{}, fmt.Errorf("scan index row: %w", err)
	}
	if year.Valid {
		record.Year = int(year.Int64)
	}
	record.Directors = textutil.SplitIDs(directors)
	return record, nil
}
