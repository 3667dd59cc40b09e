package piece

import (
	"math/rand/v2"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jkeller/etude/internal/milestone"
	"github.com/jkeller/etude/internal/practice"
	"github.com/jkeller/etude/internal/trending"
)

// SortMode selects the ordering applied by Query.
type SortMode string

const (
	SortDefault       SortMode = "default"       // createdAt, newest first
	SortTrending      SortMode = "trending"      // decay score, highest first
	SortRandom        SortMode = "random"        // fresh shuffle per call
	SortLastPracticed SortMode = "lastPracticed" // most recently practiced first
	SortProgress      SortMode = "progress"      // status rank ascending
	SortDifficulty    SortMode = "difficulty"    // difficulty scale ascending
	SortTitle         SortMode = "title"         // locale-aware title ascending
	SortPracticeTime  SortMode = "practiceTime"  // total time, highest first
)

// AllSortModes returns the selectable sort modes in display order.
func AllSortModes() []SortMode {
	return []SortMode{
		SortDefault, SortTrending, SortRandom, SortLastPracticed,
		SortProgress, SortDifficulty, SortTitle, SortPracticeTime,
	}
}

// ParseSortMode maps a stored string to a SortMode, defaulting to
// SortDefault for anything unrecognized.
func ParseSortMode(s string) SortMode {
	for _, m := range AllSortModes() {
		if string(m) == s {
			return m
		}
	}
	return SortDefault
}

// QueryOpts configures the search/filter/sort pipeline. Empty filter
// sets pass everything through rather than matching nothing.
type QueryOpts struct {
	Search       string
	Difficulties []Difficulty
	Statuses     []milestone.Status
	Sort         SortMode
	Reverse      bool
}

// Query applies search, filters, sort, and reversal over the catalog
// and returns a new ordered slice. Every non-random ordering is total:
// ties fall back to piece id, so repeated calls agree exactly.
//
// SortRandom reshuffles on every call. Callers that re-render without
// new data must cache the result themselves.
func Query(pieces []Piece, log practice.Log, opts QueryOpts, now time.Time) []Piece {
	out := make([]Piece, 0, len(pieces))

	search := strings.ToLower(strings.TrimSpace(opts.Search))
	for _, p := range pieces {
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Title), search) &&
			!strings.Contains(strings.ToLower(p.Artist), search) {
			continue
		}
		if !difficultyMatches(p.Difficulty, opts.Difficulties) {
			continue
		}
		if !statusMatches(p.Status(), opts.Statuses) {
			continue
		}
		out = append(out, p)
	}

	sortPieces(out, log, opts.Sort, now)

	if opts.Reverse && opts.Sort != SortRandom {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}

func difficultyMatches(d Difficulty, filter []Difficulty) bool {
	if len(filter) == 0 {
		return true
	}
	for _, f := range filter {
		if d == f {
			return true
		}
	}
	return false
}

func statusMatches(s milestone.Status, filter []milestone.Status) bool {
	if len(filter) == 0 {
		return true
	}
	for _, f := range filter {
		if s == f {
			return true
		}
	}
	return false
}

func sortPieces(pieces []Piece, log practice.Log, mode SortMode, now time.Time) {
	switch mode {
	case SortRandom:
		rand.Shuffle(len(pieces), func(i, j int) {
			pieces[i], pieces[j] = pieces[j], pieces[i]
		})

	case SortTrending:
		scores := make(map[string]float64, len(pieces))
		for _, p := range pieces {
			scores[p.ID] = trending.Score(log.ForPiece(p.ID), now)
		}
		sortBy(pieces, func(a, b Piece) (bool, bool) {
			return scores[a.ID] > scores[b.ID], scores[a.ID] == scores[b.ID]
		})

	case SortLastPracticed:
		sortBy(pieces, func(a, b Piece) (bool, bool) {
			at, bt := lastPracticed(a), lastPracticed(b)
			return at.After(bt), at.Equal(bt)
		})

	case SortProgress:
		sortBy(pieces, func(a, b Piece) (bool, bool) {
			ar, br := a.Status().Rank(), b.Status().Rank()
			return ar < br, ar == br
		})

	case SortDifficulty:
		sortBy(pieces, func(a, b Piece) (bool, bool) {
			ar, br := a.Difficulty.Rank(), b.Difficulty.Rank()
			return ar < br, ar == br
		})

	case SortTitle:
		c := collate.New(language.Und, collate.Loose)
		sortBy(pieces, func(a, b Piece) (bool, bool) {
			cmp := c.CompareString(a.Title, b.Title)
			return cmp < 0, cmp == 0
		})

	case SortPracticeTime:
		totals := make(map[string]int, len(pieces))
		for _, p := range pieces {
			for _, s := range log.ForPiece(p.ID) {
				totals[p.ID] += s.Duration
			}
		}
		sortBy(pieces, func(a, b Piece) (bool, bool) {
			return totals[a.ID] > totals[b.ID], totals[a.ID] == totals[b.ID]
		})

	default: // SortDefault
		sortBy(pieces, func(a, b Piece) (bool, bool) {
			return a.CreatedAt.After(b.CreatedAt), a.CreatedAt.Equal(b.CreatedAt)
		})
	}
}

// sortBy sorts with the given less/equal comparator, breaking ties on
// piece id to keep every ordering total.
func sortBy(pieces []Piece, cmp func(a, b Piece) (less, equal bool)) {
	sort.SliceStable(pieces, func(i, j int) bool {
		less, equal := cmp(pieces[i], pieces[j])
		if equal {
			return pieces[i].ID < pieces[j].ID
		}
		return less
	})
}

// lastPracticed treats never-practiced pieces as the oldest possible
// value so they sink to the end of the lastPracticed ordering.
func lastPracticed(p Piece) time.Time {
	if p.LastPracticedAt == nil {
		return time.Time{}
	}
	return *p.LastPracticedAt
}
