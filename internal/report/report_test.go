package report

import (
	"math"
	"testing"

	"cinelog/internal/catalog"
	"cinelog/internal/journal"
	"cinelog/internal/linker"
)

func resolved(position int, title, id string) linker.LinkedEntry {
	return linker.LinkedEntry{
		Entry:    journal.Entry{Position: position, Title: title},
		Outcome:  linker.OutcomeExact,
		Resolved: &catalog.Record{ID: id, Title: title},
	}
}

func TestDuplicates(t *testing.T) {
	entries := []linker.LinkedEntry{
		resolved(1, "Heat", "tt001"),
		resolved(2, "Alien", "tt100"),
		resolved(3, "Heat", "tt001"),
		resolved(4, "Solaris", "tt200"),
		resolved(5, "Heat (rewatch)", "tt001"),
		{Entry: journal.Entry{Position: 6, Title: "Mystery"}, Outcome: linker.OutcomeUnresolved},
	}

	groups := Duplicates(entries)
	if len(groups) != 1 {
		t.Fatalf("groups = %d, want 1", len(groups))
	}
	group := groups[0]
	if group.ResolvedID != "tt001" {
		t.Errorf("ResolvedID = %q, want tt001", group.ResolvedID)
	}
	if len(group.Entries) != 3 {
		t.Fatalf("group size = %d, want 3", len(group.Entries))
	}
	// Symmetric membership: every duplicate appears in the shared group.
	positions := map[int]bool{}
	for _, member := range group.Entries {
		positions[member.Entry.Position] = true
	}
	for _, want := range []int{1, 3, 5} {
		if !positions[want] {
			t.Errorf("entry at position %d missing from duplicate group", want)
		}
	}
}

func TestDuplicatesIdempotent(t *testing.T) {
	entries := []linker.LinkedEntry{
		resolved(1, "Heat", "tt001"),
		resolved(2, "Heat", "tt001"),
	}
	first := Duplicates(entries)
	second := Duplicates(entries)
	if len(first) != 1 || len(second) != 1 || len(first[0].Entries) != len(second[0].Entries) {
		t.Errorf("Duplicates not idempotent: %v vs %v", first, second)
	}

	// Growing the journal only grows the report.
	entries = append(entries, resolved(3, "Alien", "tt100"))
	if got := Duplicates(entries); len(got) != 1 {
		t.Errorf("groups after growth = %d, want 1", len(got))
	}
}

func TestActionable(t *testing.T) {
	entries := []linker.LinkedEntry{
		resolved(1, "Heat", "tt001"),
		{Entry: journal.Entry{Position: 2, Title: "Solaris"}, Outcome: linker.OutcomeAmbiguous,
			Candidates: []catalog.Record{{ID: "tt005"}, {ID: "tt006"}}},
		{Entry: journal.Entry{Position: 3, Title: "Mystery"}, Outcome: linker.OutcomeUnresolved},
		{Entry: journal.Entry{Position: 4, Title: "The Thing"}, Outcome: linker.OutcomeYearFallback,
			Resolved: &catalog.Record{ID: "tt004"}},
	}

	actionable := Actionable(entries)
	if len(actionable) != 2 {
		t.Fatalf("actionable = %d, want 2", len(actionable))
	}
	if actionable[0].Entry.Position != 2 || actionable[1].Entry.Position != 3 {
		t.Errorf("actionable order = %d,%d want 2,3", actionable[0].Entry.Position, actionable[1].Entry.Position)
	}
}

func TestCount(t *testing.T) {
	entries := []linker.LinkedEntry{
		resolved(1, "Heat", "tt001"),
		resolved(2, "Alien", "tt100"),
		{Entry: journal.Entry{Position: 3}, Outcome: linker.OutcomeYearFallback, Resolved: &catalog.Record{ID: "tt004"}},
		{Entry: journal.Entry{Position: 4}, Outcome: linker.OutcomeAmbiguous},
		{Entry: journal.Entry{Position: 5}, Outcome: linker.OutcomeUnresolved},
	}

	stats := Count(entries)
	if stats.Total != 5 || stats.Exact != 2 || stats.YearFallback != 1 || stats.Ambiguous != 1 || stats.Unresolved != 1 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.Resolved() != 3 {
		t.Errorf("Resolved() = %d, want 3", stats.Resolved())
	}
	if math.Abs(stats.MatchRate()-0.6) > 1e-9 {
		t.Errorf("MatchRate() = %f, want 0.6", stats.MatchRate())
	}

	empty := Count(nil)
	if empty.MatchRate() != 0 {
		t.Errorf("empty MatchRate() = %f, want 0", empty.MatchRate())
	}
}
