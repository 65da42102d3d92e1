package storage

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
)

func TestParseLegacyScores(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []LegacyEntry
	}{
		{"empty", "", nil},
		{"no separator", "ada:10", nil},
		{"single", "ada:10;", []LegacyEntry{{"ada", 10}}},
		{
			"sorted and trimmed",
			" bob :5;ada:30;cy:12;",
			[]LegacyEntry{{"ada", 30}, {"cy", 12}, {"bob", 5}},
		},
		{
			"zero and garbage dropped",
			"a:0;b:x;c;d:7;",
			[]LegacyEntry{{"d", 7}},
		},
		{
			"ties keep file order",
			"a:5;b:5;",
			[]LegacyEntry{{"a", 5}, {"b", 5}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseLegacyScores(tt.in, 10)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseLegacyScores(%q) = %v, expected %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseLegacyScoresLimit(t *testing.T) {
	var sb strings.Builder
	for i := 1; i <= 12; i++ {
		fmt.Fprintf(&sb, "p%d:%d;", i, i*10)
	}

	got := ParseLegacyScores(sb.String(), 10)
	if len(got) != 10 {
		t.Fatalf("expected 10 entries, got %d", len(got))
	}
	if got[0].Score != 120 || got[9].Score != 30 {
		t.Errorf("kept range = %d..%d, expected 120..30", got[0].Score, got[9].Score)
	}
}

func TestFormatLegacyScores(t *testing.T) {
	entries := []LegacyEntry{{" bob ", 5}, {"ada", 30}}

	if got := FormatLegacyScores(entries, 10); got != "ada:30;bob:5;" {
		t.Errorf("FormatLegacyScores = %q", got)
	}
	if got := FormatLegacyScores(entries, 1); got != "ada:30;" {
		t.Errorf("FormatLegacyScores with limit = %q", got)
	}
}

func TestStoreImportExportLegacy(t *testing.T) {
	store := openTestStore(t)

	n, err := store.ImportLegacy("tetris", strings.NewReader("  ada :30;bob:0;   :12;cy:9;"))
	if err != nil {
		t.Fatalf("ImportLegacy() failed: %v", err)
	}
	if n != 2 {
		t.Errorf("imported %d entries, expected 2", n)
	}

	var out strings.Builder
	if err := store.ExportLegacy("tetris", &out); err != nil {
		t.Fatalf("ExportLegacy() failed: %v", err)
	}
	if out.String() != "ada:30;cy:9;" {
		t.Errorf("exported %q", out.String())
	}
}
