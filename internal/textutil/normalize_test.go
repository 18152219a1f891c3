package textutil

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercase passthrough", "heat", "heat"},
		{"case folding", "HEAT", "heat"},
		{"interior punctuation", "M*A*S*H", "m a s h"},
		{"apostrophe", "Don't Look Up", "don t look up"},
		{"whitespace collapse", "  The   Thing  ", "the thing"},
		{"hyphenated", "Spider-Man", "spider man"},
		{"unicode accents kept", "Amélie", "amélie"},
		{"fullwidth digits folded", "２００１", "2001"},
		{"colon subtitle", "Alien: Resurrection", "alien resurrection"},
		{"empty", "", ""},
		{"punctuation only", "...!?", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Heat", "M*A*S*H", "  The   Thing  ", "Amélie", "WALL·E",
		"8½", "Das Boot", "2001: A Space Odyssey", "", "ÆON FLUX",
	}
	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}

func TestNormalizeKeepsArticles(t *testing.T) {
	if got := Normalize("The Thing"); got != "the thing" {
		t.Fatalf("Normalize(%q) = %q, want %q", "The Thing", got, "the thing")
	}
	if Normalize("The Thing") == Normalize("Thing") {
		t.Fatal("article stripping must not merge distinct titles")
	}
}

func TestJoinSplitIDs(t *testing.T) {
	tests := []struct {
		name  string
		field string
		want  []string
	}{
		{"empty", "", nil},
		{"single", "nm0000520", []string{"nm0000520"}},
		{"multiple", "nm0000520,nm0000116", []string{"nm0000520", "nm0000116"}},
		{"spaces and blanks", " nm0001 ,, nm0002 ", []string{"nm0001", "nm0002"}},
		{"delimiters only", ",,,", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SplitIDs(tt.field); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitIDs(%q) = %v, want %v", tt.field, got, tt.want)
			}
		})
	}

	joined := JoinIDs([]string{"nm0000520", "nm0000116"})
	if joined != "nm0000520,nm0000116" {
		t.Errorf("JoinIDs() = %q, want %q", joined, "nm0000520,nm0000116")
	}
}
