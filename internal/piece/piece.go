// Package piece defines the piece catalog: the piece model, the ordered
// difficulty scale, duplicate detection, and the query pipeline that
// backs the library view.
package piece

import (
	"errors"
	"strings"
	"time"

	"github.com/jkeller/etude/internal/milestone"
	"github.com/jkeller/etude/internal/youtube"
)

// ErrDuplicateVideo is returned when a piece would share its resolved
// YouTube video id with an existing piece.
var ErrDuplicateVideo = errors.New("a piece with this video already exists")

// ErrInvalidPiece is returned when required fields are missing.
var ErrInvalidPiece = errors.New("piece needs a title and an artist")

// Piece is a catalogued musical work being learned.
type Piece struct {
	ID              string
	Title           string
	Artist          string
	YouTubeURL      string
	Difficulty      Difficulty
	Milestones      []milestone.Milestone
	LastPracticedAt *time.Time
	CreatedAt       time.Time
}

// Validate checks the fields required at creation time.
func (p Piece) Validate() error {
	if strings.TrimSpace(p.Title) == "" || strings.TrimSpace(p.Artist) == "" {
		return ErrInvalidPiece
	}
	return nil
}

// Status derives the progress classification from the milestone set.
// It is computed on read, never stored, so it can't go stale.
func (p Piece) Status() milestone.Status {
	return milestone.StatusOf(p.Milestones)
}

// Completion derives the milestone completion fraction in [0,1].
func (p Piece) Completion() float64 {
	return milestone.Completion(p.Milestones)
}

// VideoID derives the piece's video identity from its URL, or "" when
// the URL doesn't resolve.
func (p Piece) VideoID() string {
	return youtube.ExtractVideoID(p.YouTubeURL)
}

// Thumbnail derives the display thumbnail URL from the video identity.
func (p Piece) Thumbnail() string {
	return youtube.ThumbnailURL(p.YouTubeURL)
}

// FindDuplicate returns the existing piece sharing url's video id, or
// nil. excludeID skips the piece being edited. A URL that doesn't
// resolve to a video id can't collide with anything.
func FindDuplicate(pieces []Piece, url, excludeID string) *Piece {
	id := youtube.ExtractVideoID(url)
	if id == "" {
		return nil
	}
	for i := range pieces {
		if pieces[i].ID == excludeID {
			continue
		}
		if pieces[i].VideoID() == id {
			return &pieces[i]
		}
	}
	return nil
}
