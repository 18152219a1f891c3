// Package catalog loads the bulk IMDb dataset dumps into the normalized
// catalog file the rest of cinelog consumes.
//
// The loader streams the gzipped TSV dumps row by row, joins title rows
// with crew (and optionally ratings) rows on the title identifier, and
// publishes one record per identifier to the catalog CSV atomically. A
// missing schema column aborts the whole load with a DataFormatError that
// names the column; individual malformed rows are counted, logged, and
// dropped. The raw dumps are never held in memory in full.
package catalog
