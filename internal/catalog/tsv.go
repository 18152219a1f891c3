package catalog

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// nullValue is the bulk dataset's marker for an absent field.
const nullValue = `\N`

// tsvReader streams one gzipped tab-separated dump, decompressing on the
// fly so only the current row is ever materialized.
type tsvReader struct {
	name    string
	file    *os.File
	gz      *gzip.Reader
	scanner *bufio.Scanner
	columns map[string]int
	line    int
}

// openTSV opens a gzipped TSV dump and validates that every required
// column is present in its header. A missing column is a *DataFormatError.
func openTSV(path string, required ...string) (*tsvReader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset %q: %w", path, err)
	}
	gz, err := gzip.NewReader(file)
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("decompress dataset %q: %w", path, err)
	}

	scanner := bufio.NewScanner(gz)
	// Some dump rows (aka lists, known-for titles) run long.
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	reader := &tsvReader{
		name:    filepath.Base(path),
		file:    file,
		gz:      gz,
		scanner: scanner,
		columns: make(map[string]int),
	}

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			_ = reader.Close()
			return nil, fmt.Errorf("read header of %q: %w", path, err)
		}
		_ = reader.Close()
		return nil, &DataFormatError{File: reader.name, Column: firstRequired(required)}
	}
	reader.line = 1
	for i, column := range strings.Split(scanner.Text(), "\t") {
		reader.columns[strings.TrimSpace(column)] = i
	}
	for _, column := range required {
		if _, ok := reader.columns[column]; !ok {
			_ = reader.Close()
			return nil, &DataFormatError{File: reader.name, Column: column}
		}
	}
	return reader, nil
}

func firstRequired(required []string) string {
	if len(required) == 0 {
		return "(header)"
	}
	return required[0]
}

// next returns the fields of the next data row, or io.EOF.
func (t *tsvReader) next() ([]string, error) {
	if !t.scanner.Scan() {
		if err := t.scanner.Err(); err != nil {
			return nil, fmt.Errorf("read %s line %d: %w", t.name, t.line+1, err)
		}
		return nil, io.EOF
	}
	t.line++
	return strings.Split(t.scanner.Text(), "\t"), nil
}

// field extracts a named column from row. ok is false when the row is too
// short for the column or the value is the dataset null marker.
func (t *tsvReader) field(row []string, column string) (value string, ok bool) {
	idx, known := t.columns[column]
	if !known || idx >= len(row) {
		return "", false
	}
	value = strings.TrimSpace(row[idx])
	if value == "" || value == nullValue {
		return "", false
	}
	return value, true
}

func (t *tsvReader) Close() error {
	var firstErr error
	if t.gz != nil {
		if err := t.gz.Close(); err != nil {
			firstErr = err
		}
	}
	if t.file != nil {
		if err := t.file.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
