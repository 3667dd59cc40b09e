package piece

import (
	"testing"

	"github.com/jkeller/etude/internal/milestone"
)

func TestFindDuplicateSameVideoID(t *testing.T) {
	pieces := []Piece{
		{ID: "a", Title: "X", Artist: "Y", YouTubeURL: "https://youtu.be/abc123"},
	}

	dup := FindDuplicate(pieces, "https://www.youtube.com/watch?v=abc123", "")
	if dup == nil || dup.ID != "a" {
		t.Fatalf("expected duplicate of piece a, got %v", dup)
	}
}

func TestFindDuplicateEditInPlace(t *testing.T) {
	pieces := []Piece{
		{ID: "a", Title: "X", Artist: "Y", YouTubeURL: "https://youtu.be/abc123"},
	}

	// Editing piece a with its own URL is not a duplicate.
	if dup := FindDuplicate(pieces, "https://youtu.be/abc123", "a"); dup != nil {
		t.Errorf("edit-in-place flagged as duplicate: %v", dup)
	}
}

func TestFindDuplicateUnresolvableURL(t *testing.T) {
	pieces := []Piece{
		{ID: "a", Title: "X", Artist: "Y", YouTubeURL: "not a url at all"},
	}

	// Neither side resolves, so nothing can collide.
	if dup := FindDuplicate(pieces, "also not a url", ""); dup != nil {
		t.Errorf("unresolvable URL flagged as duplicate: %v", dup)
	}
}

func TestValidateRequiresTitleAndArtist(t *testing.T) {
	tests := []struct {
		title  string
		artist string
		ok     bool
	}{
		{"River Flows in You", "Yiruma", true},
		{"", "Yiruma", false},
		{"River Flows in You", "", false},
		{"   ", "Yiruma", false},
	}

	for _, tt := range tests {
		err := Piece{Title: tt.title, Artist: tt.artist}.Validate()
		if (err == nil) != tt.ok {
			t.Errorf("Validate(%q, %q) err = %v, want ok=%v", tt.title, tt.artist, err, tt.ok)
		}
	}
}

func TestStatusAndThumbnailAreDerived(t *testing.T) {
	p := Piece{
		ID:         "a",
		YouTubeURL: "https://youtu.be/abc123",
		Milestones: milestone.All()[:7],
	}
	if got := p.Status(); got != milestone.StatusMastered {
		t.Errorf("Status() = %s, want mastered", got)
	}
	if got := p.Thumbnail(); got != "https://img.youtube.com/vi/abc123/mqdefault.jpg" {
		t.Errorf("Thumbnail() = %q", got)
	}

	// Changing the source fields changes the derivations with no
	// separate write needed.
	p.YouTubeURL = "https://youtu.be/zzz999"
	if got := p.Thumbnail(); got != "https://img.youtube.com/vi/zzz999/mqdefault.jpg" {
		t.Errorf("Thumbnail() after URL change = %q", got)
	}
}

func TestDifficultyRankOrdering(t *testing.T) {
	scale := append([]Difficulty{DifficultyUnknown}, AllDifficulties()...)
	for i := 1; i < len(scale); i++ {
		if scale[i-1].Rank() >= scale[i].Rank() {
			t.Errorf("rank(%s)=%d not below rank(%s)=%d",
				scale[i-1], scale[i-1].Rank(), scale[i], scale[i].Rank())
		}
	}
}

func TestParseDifficulty(t *testing.T) {
	if got := ParseDifficulty("Medium"); got != DifficultyMedium {
		t.Errorf("ParseDifficulty(Medium) = %v", got)
	}
	if got := ParseDifficulty("nightmare"); got != DifficultyUnknown {
		t.Errorf("ParseDifficulty(nightmare) = %v, want Unknown", got)
	}
}
