package linker

import (
	"fmt"

	"cinelog/internal/catalog"
	"cinelog/internal/journal"
)

// Outcome tags how a journal entry resolved. Downstream code branches on
// this tag, never on a nullable identifier.
type Outcome string

const (
	// OutcomeExact means exactly one candidate matched title and year.
	OutcomeExact Outcome = "exact"
	// OutcomeYearFallback means exactly one candidate matched by title
	// only; the journal's recorded year was absent or wrong.
	OutcomeYearFallback Outcome = "year-fallback"
	// OutcomeAmbiguous means multiple candidates matched at the lookup
	// stage used; the full candidate set is preserved.
	OutcomeAmbiguous Outcome = "ambiguous"
	// OutcomeUnresolved means no candidate matched at any stage.
	OutcomeUnresolved Outcome = "unresolved"
)

// ParseOutcome interprets a confidence field from the linked output file.
func ParseOutcome(value string) (Outcome, error) {
	switch Outcome(value) {
	case OutcomeExact, OutcomeYearFallback, OutcomeAmbiguous, OutcomeUnresolved:
		return Outcome(value), nil
	default:
		return "", fmt.Errorf("unknown match confidence %q", value)
	}
}

// Resolved reports whether the outcome committed to a single identifier.
func (o Outcome) Resolved() bool {
	return o == OutcomeExact || o == OutcomeYearFallback
}

// LinkedEntry pairs a journal entry with its resolution outcome. It is
// created once per entry and never mutated.
type LinkedEntry struct {
	Entry   journal.Entry
	Outcome Outcome
	// Resolved is the committed catalog record; nil unless Outcome is
	// exact or year-fallback.
	Resolved *catalog.Record
	// Candidates holds the full set considered when Outcome is ambiguous,
	// in catalog insertion order.
	Candidates []catalog.Record
}

// ResolvedID returns the committed identifier, or "" when unresolved.
func (e LinkedEntry) ResolvedID() string {
	if e.Resolved == nil {
		return ""
	}
	return e.Resolved.ID
}

// Directors returns the committed record's director identifiers.
func (e LinkedEntry) Directors() []string {
	if e.Resolved == nil {
		return nil
	}
	return e.Resolved.Directors
}

// CandidateIDs returns the identifiers of the ambiguous candidate set.
func (e LinkedEntry) CandidateIDs() []string {
	if len(e.Candidates) == 0 {
		return nil
	}
	ids := make([]string, 0, len(e.Candidates))
	for _, candidate := range e.Candidates {
		ids = append(ids, candidate.ID)
	}
	return ids
}
