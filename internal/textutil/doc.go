// Package textutil provides the title normalization applied to both catalog
// and journal titles, plus helpers for delimited identifier lists.
//
// Normalization is a single frozen ruleset: Unicode NFKC, full case folding,
// non-alphanumeric runs collapsed to single spaces, trimmed. It is pure,
// deterministic, and idempotent; catalog and journal lookups silently miss
// each other unless both sides use it, so no caller may pre- or post-process
// titles on its own.
package textutil
