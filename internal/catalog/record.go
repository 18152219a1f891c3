package catalog

// Record is one normalized catalog row: a single title instance from the
// bulk dataset. Records are immutable once loaded; a dataset refresh
// replaces the whole catalog file.
type Record struct {
	// ID is the stable external title identifier (tconst).
	ID    string
	Title string
	// Year is the release year, 0 when the dump has none.
	Year int
	// Directors holds ordered external person identifiers; may be empty.
	Directors []string
	// Rating and Votes are carried verbatim from the ratings dump and are
	// empty when the ratings join is disabled or the title is unrated.
	Rating string
	Votes  string
}

// HasYear reports whether the record carries a known release year.
func (r Record) HasYear() bool { return r.Year != 0 }

// Person is one row of the director name table.
type Person struct {
	// ID is the stable external person identifier (nconst).
	ID   string
	Name string
}
