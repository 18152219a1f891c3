// Package journal reads the user's watch journal. Two source formats are
// supported: the tabular CSV contract (title, watched, mark, year, notes)
// and the original free-text watch-log format, where a line holds one or
// more entries separated by " :: ", marks are * (star), ✓ (check), or
// (bomb), years appear as a trailing "(1995)" or "('95)", and square
// brackets carry pinned catalog ids ([tt...]) or backfilled watch dates
// ([bf:...]).
//
// The journal is owned by the user; this package only ever reads it.
package journal
