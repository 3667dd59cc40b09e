package library

import (
	"testing"

	"github.com/jkeller/etude/internal/milestone"
	"github.com/jkeller/etude/internal/piece"
)

func TestNextDifficultyCycles(t *testing.T) {
	seen := map[piece.Difficulty]bool{}
	d := piece.DifficultyUnknown
	for i := 0; i < len(piece.AllDifficulties())+1; i++ {
		d = nextDifficulty(d)
		if seen[d] {
			t.Fatalf("difficulty %q repeated before the cycle closed", d)
		}
		seen[d] = true
	}
	if d != piece.DifficultyUnknown {
		t.Errorf("cycle ended on %q, want no-filter", d)
	}
}

func TestNextStatusCycles(t *testing.T) {
	st := milestone.Status("")
	for i := 0; i < len(milestone.AllStatuses()); i++ {
		st = nextStatus(st)
		if st == "" {
			t.Fatalf("cycle returned to no-filter after %d steps", i+1)
		}
	}
	if got := nextStatus(st); got != "" {
		t.Errorf("nextStatus(%q) = %q, want no-filter", st, got)
	}
}

func TestNextSortModeWraps(t *testing.T) {
	all := piece.AllSortModes()
	m := all[len(all)-1]
	if got := nextSortMode(m); got != all[0] {
		t.Errorf("nextSortMode(%q) = %q, want %q", m, got, all[0])
	}
	if got := nextSortMode(piece.SortMode("bogus")); got != piece.SortDefault {
		t.Errorf("nextSortMode(bogus) = %q, want default", got)
	}
}

func TestTruncate(t *testing.T) {
	cases := []struct {
		in   string
		n    int
		want string
	}{
		{"Gymnopédie No. 1", 40, "Gymnopédie No. 1"},
		{"abcdef", 4, "abc…"},
		{"abcdef", 1, "a"},
		{"Gymnopédie No. 1", 11, "Gymnopédie…"},
		{"héhéhéhé", 5, "héhé…"},
	}
	for _, tc := range cases {
		if got := truncate(tc.in, tc.n); got != tc.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tc.in, tc.n, got, tc.want)
		}
	}
}
