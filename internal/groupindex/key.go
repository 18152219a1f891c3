package groupindex

import "cinelog/internal/textutil"

// Key is the composite group key: normalized title plus year (0 = unknown,
// grouped separately so year-less records are reachable by title-only
// fallback).
type Key struct {
	Title string
	Year  int
}

// KeyFor builds a Key from a raw title, applying the shared normalization.
func KeyFor(title string, year int) Key {
	return Key{Title: textutil.Normalize(title), Year: year}
}
