// Package practice defines the practice session log shared by the
// scoring, stats, and calendar engines.
package practice

import "time"

// MinSessionSecs is the shortest activity that produces a durable
// session record. Shorter activity still bumps a piece's last-practiced
// time but leaves no log entry.
const MinSessionSecs = 30

// Session is one timed practice interval logged against a piece.
// Timestamp marks when the session ended.
type Session struct {
	PieceID   string    `json:"pieceId"`
	Timestamp time.Time `json:"timestamp"`
	Duration  int       `json:"duration"` // seconds
}

// Valid reports whether the session is usable by aggregation. Records
// with a zero timestamp or negative duration come from corrupt imports
// and are skipped rather than aborting a computation.
func (s Session) Valid() bool {
	return !s.Timestamp.IsZero() && s.Duration >= 0
}

// Log maps a piece id to its sessions in insertion order. Consumers
// that care about time order re-sort by timestamp.
type Log map[string][]Session

// All returns every valid session across the log.
func (l Log) All() []Session {
	var out []Session
	for _, sessions := range l {
		for _, s := range sessions {
			if s.Valid() {
				out = append(out, s)
			}
		}
	}
	return out
}

// ForPiece returns the valid sessions of one piece.
func (l Log) ForPiece(pieceID string) []Session {
	var out []Session
	for _, s := range l[pieceID] {
		if s.Valid() {
			out = append(out, s)
		}
	}
	return out
}

// SameDay reports whether a and b fall on the same calendar day in b's
// time zone. All day-boundary comparisons in this program go through
// here so midnight and DST edges behave consistently.
func SameDay(a, b time.Time) bool {
	a = a.In(b.Location())
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// DayStart truncates t to midnight in its own time zone.
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DayKey returns the canonical per-day grouping key (local date).
func DayKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("2006-01-02")
}
