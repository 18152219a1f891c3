package groupindex

import "errors"

// ErrIndexUnavailable marks the persisted index as missing, corrupt,
// version-mismatched, or stale relative to the catalog it was built from.
// It is fatal for a link run; rebuild via the Builder before retrying.
var ErrIndexUnavailable = errors.New("group index unavailable")

// ErrBuildLocked is returned when another process holds the build lock.
var ErrBuildLocked = errors.New("group index build already in progress")
