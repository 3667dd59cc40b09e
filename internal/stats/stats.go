// Package stats reduces the raw practice log into derived metrics:
// totals, today/week windows, streaks, and collection-wide summaries.
//
// Every function takes "now" explicitly so results are deterministic
// under test. Day boundaries follow now's time zone throughout.
package stats

import (
	"time"

	"github.com/jkeller/etude/internal/milestone"
	"github.com/jkeller/etude/internal/piece"
	"github.com/jkeller/etude/internal/practice"
)

// Stats is the collection-wide summary shown on the stats screen.
type Stats struct {
	TotalSecs      int
	TodaySecs      int
	WeekSecs       int
	SessionCount   int
	AvgSessionSecs int
	Streak         int
	MasteredCount  int
}

// TotalTime sums the duration of all valid sessions.
func TotalTime(sessions []practice.Session) int {
	total := 0
	for _, s := range sessions {
		if s.Valid() {
			total += s.Duration
		}
	}
	return total
}

// TodayTime sums durations of sessions on the same calendar day as now.
func TodayTime(sessions []practice.Session, now time.Time) int {
	total := 0
	for _, s := range sessions {
		if s.Valid() && practice.SameDay(s.Timestamp, now) {
			total += s.Duration
		}
	}
	return total
}

// WeekTime sums durations within the trailing 7*24h rolling window.
func WeekTime(sessions []practice.Session, now time.Time) int {
	cutoff := now.Add(-7 * 24 * time.Hour)
	total := 0
	for _, s := range sessions {
		if s.Valid() && !s.Timestamp.Before(cutoff) {
			total += s.Duration
		}
	}
	return total
}

// Streak returns the length of the run of consecutive calendar days
// with at least one session, ending at today or yesterday. A day
// without practice yet (today) doesn't break a streak that ran through
// yesterday; any older gap ends the count.
func Streak(log practice.Log, now time.Time) int {
	days := make(map[string]bool)
	loc := now.Location()
	for _, s := range log.All() {
		days[practice.DayKey(s.Timestamp, loc)] = true
	}
	if len(days) == 0 {
		return 0
	}

	start := practice.DayStart(now)
	if !days[practice.DayKey(start, loc)] {
		start = start.AddDate(0, 0, -1)
		if !days[practice.DayKey(start, loc)] {
			return 0
		}
	}

	streak := 0
	for day := start; days[practice.DayKey(day, loc)]; day = day.AddDate(0, 0, -1) {
		streak++
	}
	return streak
}

// Aggregate computes the full stats summary for the collection.
func Aggregate(pieces []piece.Piece, log practice.Log, now time.Time) Stats {
	all := log.All()

	st := Stats{
		TotalSecs:    TotalTime(all),
		TodaySecs:    TodayTime(all, now),
		WeekSecs:     WeekTime(all, now),
		SessionCount: len(all),
		Streak:       Streak(log, now),
	}
	if st.SessionCount > 0 {
		st.AvgSessionSecs = st.TotalSecs / st.SessionCount
	}
	for _, p := range pieces {
		if milestone.StatusOf(p.Milestones) == milestone.StatusMastered {
			st.MasteredCount++
		}
	}
	return st
}
