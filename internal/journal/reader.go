package journal

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// csvHeader is the tabular journal contract.
var csvHeader = []string{"title", "watched", "mark", "year", "notes"}

// ReadCSV loads a tabular journal file. Every row is independent; a
// malformed row is an error naming its line, since the journal is small
// and user-maintained.
func ReadCSV(path string) ([]Entry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open journal %q: %w", path, err)
	}
	defer file.Close()

	in := csv.NewReader(file)
	in.FieldsPerRecord = len(csvHeader)

	header, err := in.Read()
	if err != nil {
		return nil, fmt.Errorf("read journal header: %w", err)
	}
	for i, column := range csvHeader {
		if i >= len(header) || strings.TrimSpace(header[i]) != column {
			return nil, fmt.Errorf("journal %q: header column %d is %q, want %q", path, i+1, header[i], column)
		}
	}

	var entries []Entry
	line := 1
	for {
		row, err := in.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read journal row: %w", err)
		}
		line++

		title := strings.TrimSpace(row[0])
		if title == "" {
			return nil, fmt.Errorf("journal line %d: empty title", line)
		}
		mark, err := ParseMark(row[2])
		if err != nil {
			return nil, fmt.Errorf("journal line %d: %w", line, err)
		}
		entry := Entry{
			Position: line,
			Title:    title,
			Watched:  strings.TrimSpace(row[1]),
			Mark:     mark,
			Notes:    strings.TrimSpace(row[4]),
		}
		if rawYear := strings.TrimSpace(row[3]); rawYear != "" {
			year, err := strconv.Atoi(rawYear)
			if err != nil {
				return nil, fmt.Errorf("journal line %d: bad year %q", line, rawYear)
			}
			entry.Year = year
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
