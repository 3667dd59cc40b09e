package milestone

// Status represents a piece's position in the learning lifecycle.
// It is always derived from the milestone set, never stored.
type Status string

const (
	StatusNotStarted Status = "not-started"
	StatusLearning   Status = "learning"
	StatusPracticing Status = "practicing"
	StatusPolishing  Status = "polishing"
	StatusMastered   Status = "mastered"
)

// AllStatuses returns the statuses in rank order.
func AllStatuses() []Status {
	return []Status{
		StatusNotStarted, StatusLearning, StatusPracticing,
		StatusPolishing, StatusMastered,
	}
}

// StatusOf maps a milestone set to its status classification.
func StatusOf(set []Milestone) Status {
	switch n := Count(set); {
	case n == 0:
		return StatusNotStarted
	case n <= 2:
		return StatusLearning
	case n <= 4:
		return StatusPracticing
	case n <= 6:
		return StatusPolishing
	default:
		return StatusMastered
	}
}

// Rank returns the numeric order of the status (0..4), used as a sort
// key. Unknown statuses rank lowest.
func (s Status) Rank() int {
	switch s {
	case StatusLearning:
		return 1
	case StatusPracticing:
		return 2
	case StatusPolishing:
		return 3
	case StatusMastered:
		return 4
	default:
		return 0
	}
}

// DisplayName returns a human-readable label for the status.
func (s Status) DisplayName() string {
	switch s {
	case StatusNotStarted:
		return "Not Started"
	case StatusLearning:
		return "Learning"
	case StatusPracticing:
		return "Practicing"
	case StatusPolishing:
		return "Polishing"
	case StatusMastered:
		return "Mastered"
	default:
		return string(s)
	}
}

// Icon returns the display icon for the status.
func (s Status) Icon() string {
	switch s {
	case StatusNotStarted:
		return "○"
	case StatusLearning:
		return "◔"
	case StatusPracticing:
		return "◑"
	case StatusPolishing:
		return "◕"
	case StatusMastered:
		return "●"
	default:
		return "○"
	}
}

// ParseStatus maps a stored string to a Status, defaulting to
// StatusNotStarted for anything unrecognized.
func ParseStatus(s string) Status {
	for _, st := range AllStatuses() {
		if string(st) == s {
			return st
		}
	}
	return StatusNotStarted
}
