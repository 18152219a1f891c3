package linker

import (
	"context"
	"fmt"
	"log/slog"

	"cinelog/internal/groupindex"
	"cinelog/internal/journal"
	"cinelog/internal/logging"
	"cinelog/internal/textutil"
)

// Linker resolves journal entries against an open group index. The index
// handle is passed in explicitly; the linker never opens, rebuilds, or
// caches one on its own.
type Linker struct {
	index  *groupindex.Index
	logger *slog.Logger
}

// New constructs a Linker over an open index. A nil logger disables logging.
func New(index *groupindex.Index, logger *slog.Logger) *Linker {
	return &Linker{index: index, logger: logging.NewComponentLogger(logger, "linker")}
}

// Run resolves every entry independently, in order. The outcome for each
// entry is deterministic given the same index.
func (l *Linker) Run(ctx context.Context, entries []journal.Entry) ([]LinkedEntry, error) {
	linked := make([]LinkedEntry, 0, len(entries))
	for _, entry := range entries {
		resolved, err := l.Resolve(ctx, entry)
		if err != nil {
			return nil, fmt.Errorf("resolve %q: %w", entry.Title, err)
		}
		linked = append(linked, resolved)
	}
	return linked, nil
}

// Resolve commits one entry to a single outcome per the tie-break policy.
// Ambiguity and non-resolution are valid outcomes, not errors; only index
// failures are returned as errors.
func (l *Linker) Resolve(ctx context.Context, entry journal.Entry) (LinkedEntry, error) {
	if entry.PinnedID != "" {
		resolved, err := l.resolvePinned(ctx, entry)
		if err != nil {
			return LinkedEntry{}, err
		}
		if resolved != nil {
			return *resolved, nil
		}
		// Unknown pinned id: fall through to the normal lookup.
	}

	normTitle := textutil.Normalize(entry.Title)

	if entry.HasYear() {
		group, err := l.index.Lookup(ctx, groupindex.Key{Title: normTitle, Year: entry.Year})
		if err != nil {
			return LinkedEntry{}, err
		}
		switch len(group) {
		case 1:
			return l.outcome(entry, LinkedEntry{Entry: entry, Outcome: OutcomeExact, Resolved: &group[0]}), nil
		case 0:
			// Fall through to the title-only stage.
		default:
			return l.outcome(entry, LinkedEntry{Entry: entry, Outcome: OutcomeAmbiguous, Candidates: group}), nil
		}
	}

	candidates, err := l.index.LookupTitle(ctx, normTitle)
	if err != nil {
		return LinkedEntry{}, err
	}
	switch len(candidates) {
	case 0:
		return l.outcome(entry, LinkedEntry{Entry: entry, Outcome: OutcomeUnresolved}), nil
	case 1:
		return l.outcome(entry, LinkedEntry{Entry: entry, Outcome: OutcomeYearFallback, Resolved: &candidates[0]}), nil
	default:
		return l.outcome(entry, LinkedEntry{Entry: entry, Outcome: OutcomeAmbiguous, Candidates: candidates}), nil
	}
}

// resolvePinned honors an explicit catalog id recorded in the journal.
// Returns nil when the index does not know the id.
func (l *Linker) resolvePinned(ctx context.Context, entry journal.Entry) (*LinkedEntry, error) {
	record, err := l.index.LookupID(ctx, entry.PinnedID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		l.logger.Warn("pinned id not in catalog",
			logging.String(logging.FieldTitle, entry.Title),
			logging.String("pinned_id", entry.PinnedID))
		return nil, nil
	}
	resolved := l.outcome(entry, LinkedEntry{Entry: entry, Outcome: OutcomeExact, Resolved: record})
	return &resolved, nil
}

func (l *Linker) outcome(entry journal.Entry, linked LinkedEntry) LinkedEntry {
	l.logger.Debug("entry resolved",
		logging.String(logging.FieldTitle, entry.Title),
		logging.String(logging.FieldOutcome, string(linked.Outcome)),
		logging.Int("candidates", len(linked.Candidates)))
	return linked
}
