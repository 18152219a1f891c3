package journal

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
)

const segmentSeparator = " :: "

var (
	pinnedPattern   = regexp.MustCompile(`\[(tt[0-9]+)\]`)
	backfillPattern = regexp.MustCompile(`\[bf:([^\]]*)\]`)
	yearPattern     = regexp.MustCompile(`^(.*?)(?:\s*\(\s*([’']?\d{2,4})\s*\))?$`)
	spacePattern    = regexp.MustCompile(`\s+`)
)

// ReadLog loads a free-text watch-log file. Blank lines are skipped; each
// remaining line holds one or more entries separated by " :: ".
func ReadLog(path string) ([]Entry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open journal %q: %w", path, err)
	}
	defer file.Close()

	var entries []Entry
	position := 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		position++
		for subposition, segment := range strings.Split(line, segmentSeparator) {
			entry, err := parseLogEntry(segment, position, subposition)
			if err != nil {
				return nil, fmt.Errorf("journal line %d: %w", position, err)
			}
			entries = append(entries, entry)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read journal %q: %w", path, err)
	}
	return entries, nil
}

func parseLogEntry(segment string, position, subposition int) (Entry, error) {
	entry := Entry{Position: position, Subposition: subposition}

	segment, entry.Mark = extractMark(segment)

	if m := pinnedPattern.FindStringSubmatch(segment); m != nil {
		entry.PinnedID = m[1]
		segment = pinnedPattern.ReplaceAllString(segment, " ")
	}
	if m := backfillPattern.FindStringSubmatch(segment); m != nil {
		entry.Watched = strings.TrimSpace(m[1])
		segment = backfillPattern.ReplaceAllString(segment, " ")
	}

	segment = strings.TrimSpace(spacePattern.ReplaceAllString(segment, " "))

	m := yearPattern.FindStringSubmatch(segment)
	if m == nil || strings.TrimSpace(m[1]) == "" {
		return Entry{}, fmt.Errorf("no title in segment %q", segment)
	}
	entry.Title = strings.TrimSpace(m[1])
	if rawYear := m[2]; rawYear != "" {
		year, err := parseLogYear(rawYear)
		if err != nil {
			return Entry{}, err
		}
		entry.Year = year
	}
	return entry, nil
}

// extractMark pulls the personal mark out of a segment and removes its
// notation. The typographic star and check variants the original journal
// accumulated are accepted alongside the ASCII forms.
func extractMark(segment string) (string, Mark) {
	mark := MarkNone
	switch {
	case strings.Contains(segment, "*") || strings.Contains(segment, "⭐"):
		mark = MarkStar
	case strings.Contains(segment, "✓") || strings.Contains(segment, "✅"):
		mark = MarkCheck
	case strings.Contains(segment, "(bomb)") || strings.Contains(segment, "💣"):
		mark = MarkBomb
	}
	for _, token := range []string{"(bomb)", "*", "✓", "⭐", "✅", "💣"} {
		segment = strings.ReplaceAll(segment, token, " ")
	}
	return segment, mark
}

// parseLogYear expands the journal's year shorthand. Two-digit years such
// as '95 pivot at 30: 30-99 are 19xx, 00-29 are 20xx.
func parseLogYear(raw string) (int, error) {
	raw = strings.TrimLeft(strings.ReplaceAll(raw, "’", "'"), "'")
	year, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("bad year %q", raw)
	}
	if len(raw) == 2 {
		if year >= 30 {
			return 1900 + year, nil
		}
		return 2000 + year, nil
	}
	return year, nil
}
