package piece

// Difficulty grades how hard a piece is to learn. The scale is ordered
// for sort comparisons; Unknown sorts lowest.
type Difficulty string

const (
	DifficultyUnknown   Difficulty = ""
	DifficultyFree      Difficulty = "Free"
	DifficultyEasy      Difficulty = "Easy"
	DifficultyMedium    Difficulty = "Medium"
	DifficultyHard      Difficulty = "Hard"
	DifficultyUltrahard Difficulty = "Ultrahard"
)

// AllDifficulties returns the selectable difficulties in scale order
// (Unknown is the zero value, not a choice).
func AllDifficulties() []Difficulty {
	return []Difficulty{
		DifficultyFree, DifficultyEasy, DifficultyMedium,
		DifficultyHard, DifficultyUltrahard,
	}
}

// Rank returns the position on the scale (0..5). Unknown ranks 0.
func (d Difficulty) Rank() int {
	switch d {
	case DifficultyFree:
		return 1
	case DifficultyEasy:
		return 2
	case DifficultyMedium:
		return 3
	case DifficultyHard:
		return 4
	case DifficultyUltrahard:
		return 5
	default:
		return 0
	}
}

// DisplayName returns the label shown in the UI.
func (d Difficulty) DisplayName() string {
	if d == DifficultyUnknown {
		return "Unknown"
	}
	return string(d)
}

// ParseDifficulty maps a stored string to a Difficulty, treating
// anything unrecognized as Unknown.
func ParseDifficulty(s string) Difficulty {
	for _, d := range AllDifficulties() {
		if string(d) == s {
			return d
		}
	}
	return DifficultyUnknown
}
