package practice

import (
	"testing"
	"time"
)

func TestSameDay(t *testing.T) {
	base := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		a, b time.Time
		want bool
	}{
		{"same instant", base, base, true},
		{"same day different hour", base.Add(9 * time.Hour), base, true},
		{"across midnight", time.Date(2025, 6, 16, 0, 0, 1, 0, time.UTC), base, false},
		{"previous day", base.AddDate(0, 0, -1), base, false},
		// 21:00 and 23:00 UTC are both June 16 when viewed in UTC+5;
		// the comparison follows b's zone.
		{"zone decides the day", base.Add(9 * time.Hour),
			base.Add(11 * time.Hour).In(time.FixedZone("UTC+5", 5*3600)), true},
	}

	for _, tt := range tests {
		if got := SameDay(tt.a, tt.b); got != tt.want {
			t.Errorf("%s: SameDay = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestDayStart(t *testing.T) {
	loc := time.FixedZone("UTC-3", -3*3600)
	ts := time.Date(2025, 6, 15, 23, 59, 59, 0, loc)
	start := DayStart(ts)
	if start.Hour() != 0 || start.Minute() != 0 || start.Second() != 0 {
		t.Errorf("DayStart = %v, want midnight", start)
	}
	if start.Location() != loc {
		t.Errorf("DayStart changed zone: %v", start.Location())
	}
}

func TestLogAllSkipsInvalid(t *testing.T) {
	ts := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	log := Log{
		"p1": {
			{PieceID: "p1", Timestamp: ts, Duration: 100},
			{PieceID: "p1", Duration: 100},
			{PieceID: "p1", Timestamp: ts, Duration: -1},
		},
		"p2": {
			{PieceID: "p2", Timestamp: ts, Duration: 50},
		},
	}

	if got := len(log.All()); got != 2 {
		t.Errorf("All() kept %d sessions, want 2", got)
	}
	if got := len(log.ForPiece("p1")); got != 1 {
		t.Errorf("ForPiece(p1) kept %d sessions, want 1", got)
	}
	if got := len(log.ForPiece("missing")); got != 0 {
		t.Errorf("ForPiece(missing) = %d sessions, want 0", got)
	}
}
