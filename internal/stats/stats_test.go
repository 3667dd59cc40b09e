package stats

import (
	"testing"
	"time"

	"github.com/jkeller/etude/internal/milestone"
	"github.com/jkeller/etude/internal/piece"
	"github.com/jkeller/etude/internal/practice"
)

var now = time.Date(2025, 6, 15, 18, 0, 0, 0, time.UTC)

func sessionAt(t time.Time, duration int) practice.Session {
	return practice.Session{PieceID: "p1", Timestamp: t, Duration: duration}
}

func TestTotalTime(t *testing.T) {
	sessions := []practice.Session{
		sessionAt(now, 300),
		sessionAt(now.AddDate(0, 0, -40), 1200),
	}
	if got := TotalTime(sessions); got != 1500 {
		t.Errorf("TotalTime = %d, want 1500", got)
	}
}

func TestTotalTimeSkipsMalformed(t *testing.T) {
	sessions := []practice.Session{
		sessionAt(now, 300),
		{PieceID: "p1", Timestamp: now, Duration: -50},
		{PieceID: "p1", Duration: 999},
	}
	if got := TotalTime(sessions); got != 300 {
		t.Errorf("TotalTime = %d, want 300", got)
	}
}

func TestTodayTimeUsesCalendarDay(t *testing.T) {
	// First session is just past midnight today; the second ended only
	// twenty minutes earlier but on yesterday's date.
	sessions := []practice.Session{
		sessionAt(time.Date(2025, 6, 15, 0, 10, 0, 0, time.UTC), 100),
		sessionAt(time.Date(2025, 6, 14, 23, 50, 0, 0, time.UTC), 200),
		sessionAt(now, 300),
	}
	if got := TodayTime(sessions, now); got != 400 {
		t.Errorf("TodayTime = %d, want 400 (calendar day, not 24h window)", got)
	}
}

func TestWeekTimeRollingWindow(t *testing.T) {
	// The second session sits exactly on the 7-day boundary (included);
	// the third is one second past it (excluded).
	sessions := []practice.Session{
		sessionAt(now.Add(-6*24*time.Hour), 100),
		sessionAt(now.Add(-7*24*time.Hour), 200),
		sessionAt(now.Add(-7*24*time.Hour-time.Second), 400),
	}
	if got := WeekTime(sessions, now); got != 300 {
		t.Errorf("WeekTime = %d, want 300", got)
	}
}

func TestStreakEmpty(t *testing.T) {
	if got := Streak(practice.Log{}, now); got != 0 {
		t.Errorf("Streak(empty) = %d, want 0", got)
	}
}

func TestStreakConsecutiveDaysEndingToday(t *testing.T) {
	log := practice.Log{"p1": {
		sessionAt(now, 60),
		sessionAt(now.AddDate(0, 0, -1), 60),
		sessionAt(now.AddDate(0, 0, -2), 60),
		// gap on day -3
		sessionAt(now.AddDate(0, 0, -4), 60),
	}}
	if got := Streak(log, now); got != 3 {
		t.Errorf("Streak = %d, want 3", got)
	}
}

func TestStreakYesterdayGrace(t *testing.T) {
	// Practiced yesterday and the day before, nothing yet today: the
	// streak holds at 2 instead of resetting.
	log := practice.Log{"p1": {
		sessionAt(now.AddDate(0, 0, -1), 60),
		sessionAt(now.AddDate(0, 0, -2), 60),
	}}
	if got := Streak(log, now); got != 2 {
		t.Errorf("Streak = %d, want 2", got)
	}
}

func TestStreakBrokenByGap(t *testing.T) {
	log := practice.Log{"p1": {
		sessionAt(now.AddDate(0, 0, -2), 60),
		sessionAt(now.AddDate(0, 0, -3), 60),
	}}
	if got := Streak(log, now); got != 0 {
		t.Errorf("Streak = %d, want 0 (last session two days ago)", got)
	}
}

func TestStreakMultiplePiecesSameDay(t *testing.T) {
	log := practice.Log{
		"p1": {sessionAt(now, 60)},
		"p2": {sessionAt(now, 60), sessionAt(now.AddDate(0, 0, -1), 60)},
	}
	if got := Streak(log, now); got != 2 {
		t.Errorf("Streak = %d, want 2", got)
	}
}

func TestAggregate(t *testing.T) {
	pieces := []piece.Piece{
		{ID: "p1", Title: "A", Artist: "B"},
		{ID: "p2", Title: "C", Artist: "D", Milestones: milestone.All()[:7]},
	}
	log := practice.Log{
		"p1": {sessionAt(now, 300), sessionAt(now.AddDate(0, 0, -40), 1200)},
		"p2": {sessionAt(now.AddDate(0, 0, -1), 500)},
		"gone-piece": {sessionAt(now, 100)}, // session for a deleted piece
	}

	st := Aggregate(pieces, log, now)

	if st.TotalSecs != 2100 {
		t.Errorf("TotalSecs = %d, want 2100", st.TotalSecs)
	}
	if st.TodaySecs != 400 {
		t.Errorf("TodaySecs = %d, want 400", st.TodaySecs)
	}
	if st.WeekSecs != 900 {
		t.Errorf("WeekSecs = %d, want 900", st.WeekSecs)
	}
	if st.SessionCount != 4 {
		t.Errorf("SessionCount = %d, want 4", st.SessionCount)
	}
	if st.AvgSessionSecs != 525 {
		t.Errorf("AvgSessionSecs = %d, want 525", st.AvgSessionSecs)
	}
	if st.Streak != 2 {
		t.Errorf("Streak = %d, want 2", st.Streak)
	}
	if st.MasteredCount != 1 {
		t.Errorf("MasteredCount = %d, want 1", st.MasteredCount)
	}
}

func TestAggregateEmpty(t *testing.T) {
	st := Aggregate(nil, practice.Log{}, now)
	if st != (Stats{}) {
		t.Errorf("Aggregate(empty) = %+v, want zero value", st)
	}
}

func TestFavorites(t *testing.T) {
	pieces := []piece.Piece{
		{ID: "p1", Title: "A"},
		{ID: "p2", Title: "B"},
		{ID: "p3", Title: "C"},
	}
	log := practice.Log{
		"p1": {sessionAt(now, 300)},
		"p2": {sessionAt(now, 900), sessionAt(now, 100)},
	}

	favs := Favorites(pieces, log, 3)
	if len(favs) != 2 {
		t.Fatalf("len = %d, want 2 (p3 has no sessions)", len(favs))
	}
	if favs[0].Piece.ID != "p2" || favs[0].TotalSecs != 1000 || favs[0].SessionCount != 2 {
		t.Errorf("favs[0] = %+v", favs[0])
	}
	if favs[1].Piece.ID != "p1" {
		t.Errorf("favs[1] = %+v", favs[1])
	}

	if got := Favorites(pieces, log, 1); len(got) != 1 {
		t.Errorf("Favorites limit: len = %d, want 1", len(got))
	}
}

func TestNextTimeMilestone(t *testing.T) {
	tm := NextTimeMilestone(0)
	if tm.Completed || tm.NextHours != 5 {
		t.Errorf("at 0: %+v, want next 5h", tm)
	}

	tm = NextTimeMilestone(5 * 3600)
	if tm.NextHours != 10 {
		t.Errorf("at exactly 5h: next = %dh, want 10h", tm.NextHours)
	}

	tm = NextTimeMilestone(120 * 3600)
	if tm.NextHours != 150 {
		t.Errorf("at 120h: next = %dh, want 150h", tm.NextHours)
	}

	tm = NextTimeMilestone(2000*3600 + 1)
	if !tm.Completed {
		t.Errorf("beyond the ladder should be completed: %+v", tm)
	}

	// Half way from 5h to 10h.
	tm = NextTimeMilestone(75 * 60 * 6)
	if tm.Progress < 0.49 || tm.Progress > 0.51 {
		t.Errorf("progress = %f, want ~0.5", tm.Progress)
	}
}
