package journal

import (
	"fmt"
	"strings"
)

// Mark is the user's personal rating of a watched film.
type Mark string

const (
	MarkNone  Mark = ""
	MarkStar  Mark = "star"
	MarkCheck Mark = "check"
	MarkBomb  Mark = "bomb"
)

// ParseMark interprets a mark field from the tabular journal format.
func ParseMark(value string) (Mark, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "":
		return MarkNone, nil
	case "star":
		return MarkStar, nil
	case "check":
		return MarkCheck, nil
	case "bomb":
		return MarkBomb, nil
	default:
		return MarkNone, fmt.Errorf("unknown mark %q (want star, check, bomb, or empty)", value)
	}
}

// Entry is one watched film as recorded by the user. Entries are read-only
// inputs; linking never mutates them.
type Entry struct {
	// Position and Subposition identify the entry's place in the source:
	// 1-based line number, then index within a multi-entry line.
	Position    int
	Subposition int

	Title string
	// Watched is the watch date, verbatim from the source; may be empty.
	Watched string
	Mark    Mark
	// Year is the user-recorded release year, 0 when absent. It may be
	// wrong; the catalog year wins in resolved output.
	Year  int
	Notes string
	// PinnedID is an explicit catalog identifier the user recorded inline,
	// empty for ordinary entries.
	PinnedID string
}

// HasYear reports whether the user recorded a release year.
func (e Entry) HasYear() bool { return e.Year != 0 }
