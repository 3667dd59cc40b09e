package trending

import (
	"testing"
	"time"

	"github.com/jkeller/etude/internal/practice"
)

var now = time.Date(2025, 6, 15, 18, 0, 0, 0, time.UTC)

func sessionDaysAgo(days, duration int) practice.Session {
	return practice.Session{
		PieceID:   "p1",
		Timestamp: now.Add(-time.Duration(days) * 24 * time.Hour),
		Duration:  duration,
	}
}

func TestScoreEmptyHistory(t *testing.T) {
	if got := Score(nil, now); got != 0 {
		t.Errorf("Score(nil) = %f, want 0", got)
	}
	if got := Score([]practice.Session{}, now); got != 0 {
		t.Errorf("Score(empty) = %f, want 0", got)
	}
}

func TestScoreMonotonicInAge(t *testing.T) {
	prev := Score([]practice.Session{sessionDaysAgo(0, 600)}, now)
	for days := 1; days <= 120; days++ {
		got := Score([]practice.Session{sessionDaysAgo(days, 600)}, now)
		if got > prev {
			t.Fatalf("score increased with age at day %d: %f > %f", days, got, prev)
		}
		if got <= 0 {
			t.Fatalf("score hit zero at day %d; decay must never cut off", days)
		}
		prev = got
	}
}

func TestScoreTodayDominatesOldSession(t *testing.T) {
	// 300s today vs 1200s forty days ago: the recent session should
	// contribute roughly 3000 and the old one only a few hundred.
	sessions := []practice.Session{
		sessionDaysAgo(0, 300),
		sessionDaysAgo(40, 1200),
	}
	got := Score(sessions, now)

	todayPart := Score(sessions[:1], now)
	oldPart := Score(sessions[1:], now)

	if todayPart < 2999 || todayPart > 3001 {
		t.Errorf("today contribution = %f, want 3000", todayPart)
	}
	if oldPart >= todayPart/4 {
		t.Errorf("old contribution %f too large vs today %f", oldPart, todayPart)
	}
	if got != todayPart+oldPart {
		t.Errorf("score %f != sum of parts %f", got, todayPart+oldPart)
	}
}

func TestScoreClampsFutureSessions(t *testing.T) {
	future := practice.Session{PieceID: "p1", Timestamp: now.Add(6 * time.Hour), Duration: 100}
	today := practice.Session{PieceID: "p1", Timestamp: now, Duration: 100}
	if Score([]practice.Session{future}, now) != Score([]practice.Session{today}, now) {
		t.Error("future session should be clamped to daysAgo = 0")
	}
}

func TestScoreSkipsMalformedRecords(t *testing.T) {
	sessions := []practice.Session{
		{PieceID: "p1", Duration: 500},
		{PieceID: "p1", Timestamp: now, Duration: -10},
		{PieceID: "p1", Timestamp: now, Duration: 100},
	}
	// Only the third record is valid; a zero timestamp or negative
	// duration must be skipped, not fatal.
	want := Score(sessions[2:], now)
	if got := Score(sessions, now); got != want {
		t.Errorf("Score with malformed records = %f, want %f", got, want)
	}
}

func TestWeightReference(t *testing.T) {
	if w := Weight(0); w != 10.0 {
		t.Errorf("Weight(0) = %f, want 10", w)
	}
	// Around day 30 the weight should be near 1.0.
	if w := Weight(30); w < 0.8 || w > 1.2 {
		t.Errorf("Weight(30) = %f, want ~1.0", w)
	}
	if w := Weight(-3); w != Weight(0) {
		t.Errorf("Weight(-3) = %f, want clamped to Weight(0)", w)
	}
}
