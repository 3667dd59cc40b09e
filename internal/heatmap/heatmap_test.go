package heatmap

import (
	"testing"
	"time"

	"github.com/jkeller/etude/internal/practice"
)

// A Sunday, so trailing ranges ending here exercise week padding.
var now = time.Date(2025, 6, 15, 18, 0, 0, 0, time.UTC)

func sessionAt(t time.Time, duration int) practice.Session {
	return practice.Session{PieceID: "p1", Timestamp: t, Duration: duration}
}

func TestLevelBoundaries(t *testing.T) {
	tests := []struct {
		seconds int
		want    int
	}{
		{0, 0},
		{-5, 0},
		{1, 1},
		{599, 1},
		{600, 2},
		{1799, 2},
		{1800, 3},
		{3599, 3},
		{3600, 4},
		{90000, 4},
	}

	for _, tt := range tests {
		if got := Level(tt.seconds); got != tt.want {
			t.Errorf("Level(%d) = %d, want %d", tt.seconds, got, tt.want)
		}
	}
}

func TestBuildTrailingDays(t *testing.T) {
	log := practice.Log{"p1": {
		sessionAt(now, 700),
		sessionAt(now.AddDate(0, 0, -2), 200),
	}}

	buckets := Build(log, Range{TrailingDays: 7}, now)

	if len(buckets)%7 != 0 {
		t.Fatalf("len = %d, want a multiple of 7", len(buckets))
	}

	var days []DayBucket
	for _, b := range buckets {
		if !b.Placeholder {
			days = append(days, b)
		}
	}
	if len(days) != 7 {
		t.Fatalf("real days = %d, want 7", len(days))
	}

	last := days[len(days)-1]
	if !last.Date.Equal(practice.DayStart(now)) {
		t.Errorf("last day = %v, want today", last.Date)
	}
	if last.Seconds != 700 || last.Level != 2 {
		t.Errorf("today bucket = %+v, want 700s level 2", last)
	}

	twoAgo := days[len(days)-3]
	if twoAgo.Seconds != 200 || twoAgo.Level != 1 {
		t.Errorf("two-days-ago bucket = %+v, want 200s level 1", twoAgo)
	}

	// Days without sessions are real zero days, not placeholders.
	if days[0].Placeholder || days[0].Seconds != 0 || days[0].Level != 0 {
		t.Errorf("empty day bucket = %+v", days[0])
	}
}

func TestBuildWeekAlignment(t *testing.T) {
	// now is a Sunday; a 7-day trailing range starts on Monday, so the
	// first week needs exactly one leading placeholder (for Sunday).
	buckets := Build(practice.Log{}, Range{TrailingDays: 7}, now)

	if len(buckets) != 14 {
		t.Fatalf("len = %d, want 14 (1 pad + 7 days + 6 pad)", len(buckets))
	}
	if !buckets[0].Placeholder {
		t.Error("expected leading placeholder before Monday start")
	}
	if buckets[1].Placeholder || buckets[1].Date.Weekday() != time.Monday {
		t.Errorf("buckets[1] = %+v, want real Monday", buckets[1])
	}
	for i := 8; i < 14; i++ {
		if !buckets[i].Placeholder {
			t.Errorf("buckets[%d] should be a trailing placeholder", i)
		}
	}

	weeks := Weeks(buckets)
	if len(weeks) != 2 || len(weeks[0]) != 7 || len(weeks[1]) != 7 {
		t.Errorf("weeks shape = %d, want 2x7", len(weeks))
	}
}

func TestBuildSinceFirstSession(t *testing.T) {
	log := practice.Log{"p1": {
		sessionAt(now.AddDate(0, 0, -20), 60),
		sessionAt(now, 60),
	}}

	buckets := Build(log, Range{SinceFirstSession: true}, now)

	var days []DayBucket
	for _, b := range buckets {
		if !b.Placeholder {
			days = append(days, b)
		}
	}
	if len(days) != 21 {
		t.Errorf("real days = %d, want 21 (first session through today)", len(days))
	}
	if !days[0].Date.Equal(practice.DayStart(now.AddDate(0, 0, -20))) {
		t.Errorf("first day = %v, want 20 days ago", days[0].Date)
	}
}

func TestBuildEmptyLog(t *testing.T) {
	buckets := Build(practice.Log{}, Range{SinceFirstSession: true}, now)

	var days []DayBucket
	for _, b := range buckets {
		if !b.Placeholder {
			days = append(days, b)
		}
	}
	// With no sessions the range collapses to just today.
	if len(days) != 1 {
		t.Errorf("real days = %d, want 1", len(days))
	}
	if days[0].Seconds != 0 || days[0].Level != 0 {
		t.Errorf("today = %+v, want zero", days[0])
	}
}

func TestBuildMidnightPlacement(t *testing.T) {
	// A session at 00:00:01 belongs to that day, not the previous one.
	log := practice.Log{"p1": {
		sessionAt(time.Date(2025, 6, 15, 0, 0, 1, 0, time.UTC), 500),
	}}
	buckets := Build(log, Range{TrailingDays: 2}, now)

	for _, b := range buckets {
		if b.Placeholder {
			continue
		}
		switch b.Date.Day() {
		case 15:
			if b.Seconds != 500 {
				t.Errorf("June 15 = %d secs, want 500", b.Seconds)
			}
		case 14:
			if b.Seconds != 0 {
				t.Errorf("June 14 = %d secs, want 0", b.Seconds)
			}
		}
	}
}
