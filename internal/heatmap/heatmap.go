// Package heatmap groups the practice log into per-day buckets for the
// calendar view: one bucket per calendar day in the requested range,
// classified into a discrete intensity level, padded with placeholder
// cells so a 7-row week grid stays aligned.
package heatmap

import (
	"time"

	"github.com/jkeller/etude/internal/practice"
)

// Intensity level boundaries, in seconds of practice per day.
const (
	level2Secs = 600  // 10 min
	level3Secs = 1800 // 30 min
	level4Secs = 3600 // 1 h
)

// MaxLevel is the highest intensity classification.
const MaxLevel = 4

// DayBucket is one cell of the calendar. Placeholder cells pad the
// first and last week of the range; they carry no date and are distinct
// from real days with zero practice.
type DayBucket struct {
	Date        time.Time
	Seconds     int
	Level       int
	Placeholder bool
}

// Range selects which days Build produces.
type Range struct {
	// TrailingDays requests the last N days ending at today.
	TrailingDays int
	// SinceFirstSession extends the range back to the earliest logged
	// session instead, capped at today. Wins over TrailingDays.
	SinceFirstSession bool
}

// Level classifies a day's total practice seconds into 0..4.
func Level(seconds int) int {
	switch {
	case seconds <= 0:
		return 0
	case seconds < level2Secs:
		return 1
	case seconds < level3Secs:
		return 2
	case seconds < level4Secs:
		return 3
	default:
		return 4
	}
}

// Build produces the day buckets for the requested range, oldest first.
// Leading placeholders pad the sequence back to the start of the first
// day's week (weeks start on Sunday), and trailing placeholders fill
// out the last week, so chunking by 7 yields aligned columns.
func Build(log practice.Log, rng Range, now time.Time) []DayBucket {
	loc := now.Location()

	totals := make(map[string]int)
	var earliest time.Time
	for _, s := range log.All() {
		totals[practice.DayKey(s.Timestamp, loc)] += s.Duration
		local := s.Timestamp.In(loc)
		if earliest.IsZero() || local.Before(earliest) {
			earliest = local
		}
	}

	today := practice.DayStart(now)
	start := today
	switch {
	case rng.SinceFirstSession && !earliest.IsZero():
		start = practice.DayStart(earliest)
		if start.After(today) {
			start = today
		}
	case rng.TrailingDays > 1:
		start = today.AddDate(0, 0, -(rng.TrailingDays - 1))
	}

	var buckets []DayBucket
	for pad := int(start.Weekday()); pad > 0; pad-- {
		buckets = append(buckets, DayBucket{Placeholder: true})
	}
	for day := start; !day.After(today); day = day.AddDate(0, 0, 1) {
		secs := totals[practice.DayKey(day, loc)]
		buckets = append(buckets, DayBucket{
			Date:    day,
			Seconds: secs,
			Level:   Level(secs),
		})
	}
	for len(buckets)%7 != 0 {
		buckets = append(buckets, DayBucket{Placeholder: true})
	}
	return buckets
}

// Weeks chunks Build's output into week columns of 7 buckets each.
func Weeks(buckets []DayBucket) [][]DayBucket {
	var weeks [][]DayBucket
	for i := 0; i < len(buckets); i += 7 {
		end := i + 7
		if end > len(buckets) {
			end = len(buckets)
		}
		weeks = append(weeks, buckets[i:end])
	}
	return weeks
}
