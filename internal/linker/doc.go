// Package linker resolves journal entries against the persisted group
// index and commits each one to a single typed outcome.
//
// The tie-break policy is explicit and total: exactly one candidate at the
// (title, year) key is "exact"; one candidate found only by the title-only
// fallback is "year-fallback" (the catalog year is authoritative in the
// output); more than one candidate at whichever stage was used is
// "ambiguous", with the full candidate set preserved for manual
// resolution; none is "unresolved". No heuristic ever picks a winner from
// an ambiguous set. Ambiguity and non-resolution are ordinary per-entry
// outcomes, never errors; the linker fails only on structural problems
// with the index itself.
package linker
