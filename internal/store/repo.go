package store

import (
	"context"
	"errors"
	"time"

	"github.com/jkeller/etude/internal/piece"
	"github.com/jkeller/etude/internal/practice"
)

// ErrPieceNotFound is returned when a piece id has no row.
var ErrPieceNotFound = errors.New("piece not found")

// ErrSessionNotFound is returned when a (pieceID, timestamp) delete key
// matches no session.
var ErrSessionNotFound = errors.New("session not found")

// PieceRepo manages the piece catalog. Create and Update enforce the
// duplicate-video rule and reject pieces without title or artist.
type PieceRepo interface {
	// List returns all pieces, newest first.
	List(ctx context.Context) ([]piece.Piece, error)

	// Get returns one piece by id, or ErrPieceNotFound.
	Get(ctx context.Context, id string) (piece.Piece, error)

	// Create stores a new piece. Returns piece.ErrDuplicateVideo when
	// another piece resolves to the same video id.
	Create(ctx context.Context, p piece.Piece) error

	// Update rewrites a piece's mutable fields. The duplicate check
	// excludes the piece itself so edits in place are allowed.
	Update(ctx context.Context, p piece.Piece) error

	// Delete removes a piece. Its sessions are left in the log;
	// aggregation tolerates orphans.
	Delete(ctx context.Context, id string) error
}

// SessionRepo manages the practice session log.
type SessionRepo interface {
	// Record logs practice activity that ended at endedAt. Activity
	// shorter than practice.MinSessionSecs leaves no durable session
	// but still bumps the piece's last-practiced time.
	Record(ctx context.Context, pieceID string, endedAt time.Time, durationSecs int) error

	// Restore inserts a session row exactly as given, without bumping
	// the piece's last-practiced time. Used when loading a backup.
	Restore(ctx context.Context, pieceID string, timestamp time.Time, durationSecs int) error

	// Log returns the full session mapping for the aggregation engines.
	Log(ctx context.Context) (practice.Log, error)

	// ForPiece returns one piece's sessions, oldest first.
	ForPiece(ctx context.Context, pieceID string) ([]practice.Session, error)

	// Delete removes the session matching (pieceID, timestamp) exactly,
	// or returns ErrSessionNotFound.
	Delete(ctx context.Context, pieceID string, timestamp time.Time) error

	// DeleteAll clears the whole session log.
	DeleteAll(ctx context.Context) error
}

// Settings are the user preferences persisted across runs.
type Settings struct {
	DailyGoalSecs       int    `json:"dailyGoalSecs"`
	FavoriteCount       int    `json:"favoriteCount"`
	ColorScheme         string `json:"colorScheme"`
	ShowExternalYouTube bool   `json:"showExternalYouTube"`
}

// DefaultSettings returns the out-of-the-box preferences.
func DefaultSettings() Settings {
	return Settings{
		DailyGoalSecs:       30 * 60,
		FavoriteCount:       3,
		ColorScheme:         "ocean",
		ShowExternalYouTube: true,
	}
}

// SettingsRepo persists user preferences.
type SettingsRepo interface {
	// Load returns the stored settings, or defaults when none exist.
	Load(ctx context.Context) (Settings, error)

	// Save replaces the stored settings.
	Save(ctx context.Context, s Settings) error
}
