// Package milestone defines the fixed vocabulary of learning milestones
// and the progress status derived from how many a piece has earned.
package milestone

// Milestone identifies one discrete learning achievement on a piece.
type Milestone string

const (
	NotesLearned     Milestone = "notes-learned"
	RightHand        Milestone = "right-hand"
	LeftHand         Milestone = "left-hand"
	HandsTogether    Milestone = "hands-together"
	Tempo            Milestone = "tempo"
	Dynamics         Milestone = "dynamics"
	PerformanceReady Milestone = "performance-ready"
	Memorized        Milestone = "memorized"
)

// Max is the size of the milestone vocabulary.
const Max = 8

// All returns every milestone in display order.
func All() []Milestone {
	return []Milestone{
		NotesLearned, RightHand, LeftHand, HandsTogether,
		Tempo, Dynamics, PerformanceReady, Memorized,
	}
}

// Valid reports whether m is part of the vocabulary.
func (m Milestone) Valid() bool {
	for _, known := range All() {
		if m == known {
			return true
		}
	}
	return false
}

// DisplayName returns a human-readable label for the milestone.
func (m Milestone) DisplayName() string {
	switch m {
	case NotesLearned:
		return "Notes Learned"
	case RightHand:
		return "Right Hand"
	case LeftHand:
		return "Left Hand"
	case HandsTogether:
		return "Hands Together"
	case Tempo:
		return "Up to Tempo"
	case Dynamics:
		return "Dynamics"
	case PerformanceReady:
		return "Performance Ready"
	case Memorized:
		return "Memorized"
	default:
		return string(m)
	}
}

// Contains reports whether set holds m.
func Contains(set []Milestone, m Milestone) bool {
	for _, s := range set {
		if s == m {
			return true
		}
	}
	return false
}

// Toggle removes m when present and adds it when absent. Unknown
// milestones are rejected unchanged so a corrupt import can't grow the
// set past the vocabulary. The input slice is not mutated.
func Toggle(set []Milestone, m Milestone) []Milestone {
	if !m.Valid() {
		out := make([]Milestone, len(set))
		copy(out, set)
		return out
	}
	out := make([]Milestone, 0, len(set)+1)
	removed := false
	for _, s := range set {
		if s == m {
			removed = true
			continue
		}
		out = append(out, s)
	}
	if !removed {
		out = append(out, m)
	}
	return out
}

// Count returns the number of distinct valid milestones in set.
// Duplicates and unknown values (possible in imported data) don't count.
func Count(set []Milestone) int {
	seen := make(map[Milestone]bool, len(set))
	for _, m := range set {
		if m.Valid() {
			seen[m] = true
		}
	}
	return len(seen)
}

// Completion returns the earned fraction of the vocabulary, in [0,1].
func Completion(set []Milestone) float64 {
	return float64(Count(set)) / float64(Max)
}
