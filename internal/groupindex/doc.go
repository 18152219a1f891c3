// Package groupindex persists the catalog grouped by (normalized title,
// year) in SQLite and exposes read-only lookups over it.
//
// The Builder is the single writer: it rebuilds the whole index from the
// normalized catalog under an exclusive file lock, staging into a
// temporary database and renaming it into place so readers never see a
// half-written index. Open validates the schema version tag and the
// recorded catalog content hash before serving lookups; any mismatch is
// ErrIndexUnavailable and the caller must rebuild explicitly. The index is
// never rebuilt implicitly, so a stale-catalog bug cannot hide behind a
// silent expensive rebuild.
//
// Group members keep catalog insertion order, which keeps ambiguous
// candidate sets reproducible run over run.
package groupindex
