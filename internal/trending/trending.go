// Package trending scores pieces by recency-weighted practice volume.
//
// Each session contributes duration * w(daysAgo), where the weight
// decays exponentially with age. The curve is continuous, so a piece's
// score never jumps when a session crosses a day-bucket boundary, and
// it is monotonically decreasing in age: an identical session always
// scores at least as much as an older one.
package trending

import (
	"math"
	"time"

	"github.com/jkeller/etude/internal/practice"
)

const (
	// baseWeight is the weight of a session practiced today.
	baseWeight = 10.0
	// decayDays controls how fast weight falls off; weight is ~1.0
	// around day 30 and approaches zero without ever cutting off.
	decayDays = 13.0
)

// Weight returns the decay weight for a session daysAgo days old.
func Weight(daysAgo int) float64 {
	if daysAgo < 0 {
		daysAgo = 0
	}
	return baseWeight * math.Exp(-float64(daysAgo)/decayDays)
}

// DaysAgo returns the whole days elapsed between t and now, clamped at
// zero so sessions with future timestamps count as today.
func DaysAgo(t, now time.Time) int {
	d := int(math.Floor(now.Sub(t).Hours() / 24))
	if d < 0 {
		return 0
	}
	return d
}

// Score computes the trending score for one piece's sessions. Invalid
// records are skipped; an empty history scores 0.
func Score(sessions []practice.Session, now time.Time) float64 {
	var score float64
	for _, s := range sessions {
		if !s.Valid() {
			continue
		}
		score += float64(s.Duration) * Weight(DaysAgo(s.Timestamp, now))
	}
	return score
}
