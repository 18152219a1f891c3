package journal

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeJournal(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "journal")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadCSV(t *testing.T) {
	path := writeJournal(t, strings.Join([]string{
		"title,watched,mark,year,notes",
		"Heat,2024-03-01,star,1995,rewatch",
		"Alien,2024-03-05,,,",
		`"Heat",2024-04-01,bomb,,fell asleep`,
	}, "\n")+"\n")

	entries, err := ReadCSV(path)
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("entries = %d, want 3", len(entries))
	}

	first := entries[0]
	if first.Title != "Heat" || first.Mark != MarkStar || first.Year != 1995 {
		t.Errorf("first = %+v", first)
	}
	if first.Watched != "2024-03-01" || first.Notes != "rewatch" {
		t.Errorf("first = %+v", first)
	}

	second := entries[1]
	if second.Mark != MarkNone || second.HasYear() {
		t.Errorf("second = %+v", second)
	}

	if entries[2].Mark != MarkBomb {
		t.Errorf("third mark = %q, want bomb", entries[2].Mark)
	}
}

func TestReadCSVErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			"wrong header",
			"name,watched,mark,year,notes\n",
			"header",
		},
		{
			"bad mark",
			"title,watched,mark,year,notes\nHeat,,excellent,,\n",
			"unknown mark",
		},
		{
			"bad year",
			"title,watched,mark,year,notes\nHeat,,,ninety-five,\n",
			"bad year",
		},
		{
			"empty title",
			"title,watched,mark,year,notes\n,,,,\n",
			"empty title",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeJournal(t, tt.content)
			_, err := ReadCSV(path)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("ReadCSV() error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestReadLog(t *testing.T) {
	path := writeJournal(t, strings.Join([]string{
		"Heat (1995) *",
		"",
		"Alien ('79) :: Aliens ('86) ✓",
		"The Room (bomb)",
		"Solaris [tt0069293]",
		"Old Favorite [bf:2019-06-01] (2001)",
	}, "\n")+"\n")

	entries, err := ReadLog(path)
	if err != nil {
		t.Fatalf("ReadLog() error = %v", err)
	}
	if len(entries) != 6 {
		t.Fatalf("entries = %d, want 6", len(entries))
	}

	tests := []struct {
		idx      int
		title    string
		year     int
		mark     Mark
		pinned   string
		watched  string
		position int
		subpos   int
	}{
		{0, "Heat", 1995, MarkStar, "", "", 1, 0},
		{1, "Alien", 1979, MarkNone, "", "", 2, 0},
		{2, "Aliens", 1986, MarkCheck, "", "", 2, 1},
		{3, "The Room", 0, MarkBomb, "", "", 3, 0},
		{4, "Solaris", 0, MarkNone, "tt0069293", "", 4, 0},
		{5, "Old Favorite", 2001, MarkNone, "", "2019-06-01", 5, 0},
	}
	for _, tt := range tests {
		got := entries[tt.idx]
		if got.Title != tt.title || got.Year != tt.year || got.Mark != tt.mark ||
			got.PinnedID != tt.pinned || got.Watched != tt.watched ||
			got.Position != tt.position || got.Subposition != tt.subpos {
			t.Errorf("entry %d = %+v", tt.idx, got)
		}
	}
}

func TestParseLogYearPivot(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"1995", 1995},
		{"'95", 1995},
		{"’29", 2029},
		{"'30", 1930},
		{"05", 2005},
	}
	for _, tt := range tests {
		got, err := parseLogYear(tt.raw)
		if err != nil {
			t.Errorf("parseLogYear(%q) error = %v", tt.raw, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseLogYear(%q) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}
