package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"cinelog/internal/fileutil"
	"cinelog/internal/textutil"
)

// catalogHeader is the normalized catalog's on-disk contract. The index
// builder and the presentation layer both depend on these exact names.
var catalogHeader = []string{"tconst", "title", "year", "directors", "rating", "votes"}

var peopleHeader = []string{"nconst", "name"}

// WriteCatalog publishes records to path atomically.
func WriteCatalog(path string, records []Record) error {
	return fileutil.WriteAtomic(path, func(w io.Writer) error {
		out := csv.NewWriter(w)
		if err := out.Write(catalogHeader); err != nil {
			return fmt.Errorf("write catalog header: %w", err)
		}
		for _, record := range records {
			year := ""
			if record.HasYear() {
				year = strconv.Itoa(record.Year)
			}
			row := []string{
				record.ID,
				record.Title,
				year,
				textutil.JoinIDs(record.Directors),
				record.Rating,
				record.Votes,
			}
			if err := out.Write(row); err != nil {
				return fmt.Errorf("write catalog row %q: %w", record.ID, err)
			}
		}
		out.Flush()
		return out.Error()
	})
}

// ReadCatalog loads a normalized catalog file produced by WriteCatalog.
// A header that does not match the contract is a *DataFormatError.
func ReadCatalog(path string) ([]Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog %q: %w", path, err)
	}
	defer file.Close()

	in := csv.NewReader(file)
	in.FieldsPerRecord = len(catalogHeader)

	header, err := in.Read()
	if err != nil {
		return nil, fmt.Errorf("read catalog header: %w", err)
	}
	for i, column := range catalogHeader {
		if i >= len(header) || header[i] != column {
			return nil, &DataFormatError{File: path, Column: column}
		}
	}

	var records []Record
	for {
		row, err := in.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read catalog row: %w", err)
		}
		record := Record{
			ID:        row[0],
			Title:     row[1],
			Directors: textutil.SplitIDs(row[3]),
			Rating:    row[4],
			Votes:     row[5],
		}
		if row[2] != "" {
			year, err := strconv.Atoi(row[2])
			if err != nil {
				return nil, fmt.Errorf("catalog row %q: bad year %q", record.ID, row[2])
			}
			record.Year = year
		}
		records = append(records, record)
	}
	return records, nil
}

// WritePeople publishes the director name table to path atomically.
func WritePeople(path string, people []Person) error {
	return fileutil.WriteAtomic(path, func(w io.Writer) error {
		out := csv.NewWriter(w)
		if err := out.Write(peopleHeader); err != nil {
			return fmt.Errorf("write people header: %w", err)
		}
		for _, person := range people {
			if err := out.Write([]string{person.ID, person.Name}); err != nil {
				return fmt.Errorf("write people row %q: %w", person.ID, err)
			}
		}
		out.Flush()
		return out.Error()
	})
}

// ReadPeople loads the director name table as an id-to-name map. A missing
// file yields an empty map; the table is an optional nicety.
func ReadPeople(path string) (map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("open people table %q: %w", path, err)
	}
	defer file.Close()

	in := csv.NewReader(file)
	in.FieldsPerRecord = len(peopleHeader)

	if _, err := in.Read(); err != nil {
		if err == io.EOF {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("read people header: %w", err)
	}

	names := make(map[string]string)
	for {
		row, err := in.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read people row: %w", err)
		}
		names[row[0]] = row[1]
	}
	return names, nil
}
