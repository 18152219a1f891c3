package main

import (
	"strings"
	"testing"
)

func TestRenderTable(t *testing.T) {
	out := renderTable(
		[]string{"Outcome", "Count"},
		[][]string{
			{"exact", "12"},
			{"unresolved", "3"},
		},
		2,
	)

	for _, want := range []string{"Outcome", "Count", "exact", "unresolved"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}

	// The count column is right-aligned: padding lands before the digits.
	if !strings.Contains(out, " 12 ") || strings.Contains(out, " 3  ") {
		t.Errorf("count column not right-aligned:\n%s", out)
	}
}

func TestRenderTableNoNumericColumns(t *testing.T) {
	out := renderTable(
		[]string{"Setting", "Value"},
		[][]string{{"Data dir", "/srv/imdb"}},
	)
	if !strings.Contains(out, "Data dir") || !strings.Contains(out, "/srv/imdb") {
		t.Errorf("table missing cells:\n%s", out)
	}
}
