package linker

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"cinelog/internal/catalog"
	"cinelog/internal/fileutil"
	"cinelog/internal/journal"
	"cinelog/internal/textutil"
)

// linkedHeader extends the journal contract with the resolution columns.
// The year column carries the catalog's year for resolved entries, since
// the catalog is authoritative once an identifier is committed; otherwise
// it carries the user's recorded year.
var linkedHeader = []string{
	"title", "watched", "mark", "year", "notes",
	"tconst", "directors", "confidence", "candidates", "rating", "votes",
}

// WriteLinked publishes the enriched journal to path atomically.
func WriteLinked(path string, entries []LinkedEntry) error {
	return fileutil.WriteAtomic(path, func(w io.Writer) error {
		out := csv.NewWriter(w)
		if err := out.Write(linkedHeader); err != nil {
			return fmt.Errorf("write linked header: %w", err)
		}
		for _, linked := range entries {
			entry := linked.Entry

			year := ""
			rating, votes := "", ""
			if linked.Resolved != nil {
				if linked.Resolved.HasYear() {
					year = strconv.Itoa(linked.Resolved.Year)
				}
				rating, votes = linked.Resolved.Rating, linked.Resolved.Votes
			} else if entry.HasYear() {
				year = strconv.Itoa(entry.Year)
			}

			row := []string{
				entry.Title,
				entry.Watched,
				string(entry.Mark),
				year,
				entry.Notes,
				linked.ResolvedID(),
				textutil.JoinIDs(linked.Directors()),
				string(linked.Outcome),
				textutil.JoinIDs(linked.CandidateIDs()),
				rating,
				votes,
			}
			if err := out.Write(row); err != nil {
				return fmt.Errorf("write linked row %q: %w", entry.Title, err)
			}
		}
		out.Flush()
		return out.Error()
	})
}

// ReadLinked loads a linked journal file back. Candidate records carry
// identifiers only; the full records live in the index, not the output.
func ReadLinked(path string) ([]LinkedEntry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open linked journal %q: %w", path, err)
	}
	defer file.Close()

	in := csv.NewReader(file)
	in.FieldsPerRecord = len(linkedHeader)

	header, err := in.Read()
	if err != nil {
		return nil, fmt.Errorf("read linked header: %w", err)
	}
	for i, column := range linkedHeader {
		if i >= len(header) || strings.TrimSpace(header[i]) != column {
			return nil, fmt.Errorf("linked journal %q: header column %d is %q, want %q", path, i+1, header[i], column)
		}
	}

	var entries []LinkedEntry
	line := 1
	for {
		row, err := in.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read linked row: %w", err)
		}
		line++

		linked, err := parseLinkedRow(row, line)
		if err != nil {
			return nil, fmt.Errorf("linked journal line %d: %w", line, err)
		}
		entries = append(entries, linked)
	}
	return entries, nil
}

// parseLinkedRow rebuilds one LinkedEntry. For resolved rows the year
// column holds the catalog's authoritative year, so it is restored into
// Resolved.Year and the journal's originally recorded year is gone;
// Entry.Year stays 0. Unresolved and ambiguous rows keep the journal
// year in Entry.Year.
func parseLinkedRow(row []string, line int) (LinkedEntry, error) {
	mark, err := journal.ParseMark(row[2])
	if err != nil {
		return LinkedEntry{}, err
	}
	outcome, err := ParseOutcome(row[7])
	if err != nil {
		return LinkedEntry{}, err
	}

	entry := journal.Entry{
		Position: line,
		Title:    row[0],
		Watched:  row[1],
		Mark:     mark,
		Notes:    row[4],
	}
	year := 0
	if row[3] != "" {
		year, err = strconv.Atoi(row[3])
		if err != nil {
			return LinkedEntry{}, fmt.Errorf("bad year %q", row[3])
		}
	}

	linked := LinkedEntry{Entry: entry, Outcome: outcome}
	switch {
	case outcome.Resolved():
		if row[5] == "" {
			return LinkedEntry{}, fmt.Errorf("confidence %q without an identifier", outcome)
		}
		linked.Resolved = &catalog.Record{
			ID:        row[5],
			Title:     row[0],
			Year:      year,
			Directors: textutil.SplitIDs(row[6]),
			Rating:    row[9],
			Votes:     row[10],
		}
	case outcome == OutcomeAmbiguous:
		linked.Entry.Year = year
		for _, id := range textutil.SplitIDs(row[8]) {
			linked.Candidates = append(linked.Candidates, catalog.Record{ID: id})
		}
	default:
		linked.Entry.Year = year
	}
	return linked, nil
}
