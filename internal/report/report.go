// Package report derives user-facing findings from a linked journal:
// candidate duplicate watch-log entries, the actionable list of entries
// needing manual resolution, and outcome statistics. Everything here is a
// pure function over the linked sequence, safe to re-run as the journal
// grows.
package report

import (
	"sort"

	"cinelog/internal/linker"
)

// DuplicateGroup collects journal entries that resolved to the same
// catalog identifier: the same film logged more than once. A warning for
// the user, not an error.
type DuplicateGroup struct {
	ResolvedID string
	Entries    []linker.LinkedEntry
}

// Duplicates reports every resolved identifier shared by two or more
// entries. Groups are ordered by identifier; members keep journal order.
// Membership is symmetric: every entry of a group is reported alongside
// all the others.
func Duplicates(entries []linker.LinkedEntry) []DuplicateGroup {
	byID := make(map[string][]linker.LinkedEntry)
	for _, entry := range entries {
		if !entry.Outcome.Resolved() {
			continue
		}
		id := entry.ResolvedID()
		byID[id] = append(byID[id], entry)
	}

	var groups []DuplicateGroup
	for id, members := range byID {
		if len(members) < 2 {
			continue
		}
		groups = append(groups, DuplicateGroup{ResolvedID: id, Entries: members})
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].ResolvedID < groups[j].ResolvedID
	})
	return groups
}

// Actionable returns the subsequence of entries the user has to fix:
// ambiguous and unresolved outcomes, in journal order.
func Actionable(entries []linker.LinkedEntry) []linker.LinkedEntry {
	var actionable []linker.LinkedEntry
	for _, entry := range entries {
		if entry.Outcome == linker.OutcomeAmbiguous || entry.Outcome == linker.OutcomeUnresolved {
			actionable = append(actionable, entry)
		}
	}
	return actionable
}

// Stats counts link outcomes.
type Stats struct {
	Total        int
	Exact        int
	YearFallback int
	Ambiguous    int
	Unresolved   int
}

// Count tallies outcomes over the linked sequence.
func Count(entries []linker.LinkedEntry) Stats {
	stats := Stats{Total: len(entries)}
	for _, entry := range entries {
		switch entry.Outcome {
		case linker.OutcomeExact:
			stats.Exact++
		case linker.OutcomeYearFallback:
			stats.YearFallback++
		case linker.OutcomeAmbiguous:
			stats.Ambiguous++
		case linker.OutcomeUnresolved:
			stats.Unresolved++
		}
	}
	return stats
}

// Resolved returns how many entries committed to an identifier.
func (s Stats) Resolved() int { return s.Exact + s.YearFallback }

// MatchRate is the resolved fraction, 0 for an empty journal.
func (s Stats) MatchRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Resolved()) / float64(s.Total)
}
