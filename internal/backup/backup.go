// Package backup reads and writes the portable JSON backup format: the
// whole catalog, the session log, and the user settings in one
// document. Imports are schema-validated before anything touches the
// store, and older backups that carried progress as a percentage or a
// named stage are migrated to milestone sets on the way in.
package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jkeller/etude/internal/milestone"
	"github.com/jkeller/etude/internal/piece"
	"github.com/jkeller/etude/internal/practice"
	"github.com/jkeller/etude/internal/store"
)

// Document is the backup file layout. The field names match the
// original web app's localStorage keys so its exports import cleanly.
type Document struct {
	Pieces     []Piece              `json:"pianoPieces"`
	Sessions   map[string][]Session `json:"practiceSessions"`
	Settings   *store.Settings      `json:"pianoSettings,omitempty"`
	ExportDate string               `json:"exportDate"`
	Version    string               `json:"version"`
}

// Piece is a catalog entry in the backup file. Progress appears in one
// of three historical shapes: a milestone list (current), a stage name,
// or a percentage.
type Piece struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Artist          string   `json:"artist"`
	YouTubeURL      string   `json:"youtubeUrl"`
	Difficulty      string   `json:"difficulty"`
	Milestones      []string `json:"milestones,omitempty"`
	Progress        any      `json:"progress,omitempty"`
	LastPracticedAt string   `json:"lastPracticedAt,omitempty"`
	CreatedAt       string   `json:"createdAt,omitempty"`
}

// Session is one logged practice interval in the backup file.
type Session struct {
	Timestamp string `json:"timestamp"`
	Duration  int    `json:"duration"`
}

// Export serializes the store's current state, stamped with the export
// time and app version.
func Export(ctx context.Context, s *store.Store, version string, now time.Time) ([]byte, error) {
	pieces, err := s.PieceRepo().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("export pieces: %w", err)
	}
	log, err := s.SessionRepo().Log(ctx)
	if err != nil {
		return nil, fmt.Errorf("export sessions: %w", err)
	}
	settings, err := s.SettingsRepo().Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("export settings: %w", err)
	}

	doc := Document{
		Pieces:     make([]Piece, 0, len(pieces)),
		Sessions:   make(map[string][]Session, len(log)),
		Settings:   &settings,
		ExportDate: now.UTC().Format(time.RFC3339),
		Version:    version,
	}
	for _, p := range pieces {
		doc.Pieces = append(doc.Pieces, toBackupPiece(p))
	}
	for pieceID, sessions := range log {
		out := make([]Session, 0, len(sessions))
		for _, sess := range sessions {
			out = append(out, Session{
				Timestamp: sess.Timestamp.UTC().Format(time.RFC3339),
				Duration:  sess.Duration,
			})
		}
		doc.Sessions[pieceID] = out
	}

	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal backup: %w", err)
	}
	return raw, nil
}

// Filename returns the conventional backup file name for now's date.
func Filename(now time.Time) string {
	return fmt.Sprintf("piano-tracker-backup-%s.json", now.Format("2006-01-02"))
}

// Import validates raw against the backup schema and replaces the
// store's pieces, sessions, and settings with its contents. The store
// is untouched when validation fails.
func Import(ctx context.Context, s *store.Store, raw []byte) error {
	if err := Validate(raw); err != nil {
		return err
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parse backup: %w", err)
	}

	pieces := s.PieceRepo()
	sessions := s.SessionRepo()

	existing, err := pieces.List(ctx)
	if err != nil {
		return fmt.Errorf("list existing pieces: %w", err)
	}
	for _, p := range existing {
		if err := pieces.Delete(ctx, p.ID); err != nil {
			return fmt.Errorf("clear piece %s: %w", p.ID, err)
		}
	}
	if err := sessions.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clear sessions: %w", err)
	}

	known := make(map[string]bool, len(doc.Pieces))
	for _, bp := range doc.Pieces {
		p, err := fromBackupPiece(bp)
		if err != nil {
			return fmt.Errorf("piece %q: %w", bp.Title, err)
		}
		if err := pieces.Create(ctx, p); err != nil {
			return fmt.Errorf("import piece %q: %w", bp.Title, err)
		}
		known[bp.ID] = true
	}

	for pieceID, list := range doc.Sessions {
		if !known[pieceID] {
			// Sessions for pieces missing from the backup are dropped,
			// matching how aggregation treats orphans.
			continue
		}
		for _, bs := range list {
			ts, err := time.Parse(time.RFC3339, bs.Timestamp)
			if err != nil {
				return fmt.Errorf("session timestamp %q: %w", bs.Timestamp, err)
			}
			// Restore keeps the backup's lastPracticedAt intact; Record
			// would overwrite it with each session timestamp.
			if err := sessions.Restore(ctx, pieceID, ts, bs.Duration); err != nil {
				return fmt.Errorf("import session: %w", err)
			}
		}
	}

	if doc.Settings != nil {
		if err := s.SettingsRepo().Save(ctx, *doc.Settings); err != nil {
			return fmt.Errorf("import settings: %w", err)
		}
	}
	return nil
}

func toBackupPiece(p piece.Piece) Piece {
	bp := Piece{
		ID:         p.ID,
		Title:      p.Title,
		Artist:     p.Artist,
		YouTubeURL: p.YouTubeURL,
		Difficulty: string(p.Difficulty),
		CreatedAt:  p.CreatedAt.UTC().Format(time.RFC3339),
	}
	for _, m := range p.Milestones {
		bp.Milestones = append(bp.Milestones, string(m))
	}
	if p.LastPracticedAt != nil {
		bp.LastPracticedAt = p.LastPracticedAt.UTC().Format(time.RFC3339)
	}
	return bp
}

func fromBackupPiece(bp Piece) (piece.Piece, error) {
	p := piece.Piece{
		ID:         bp.ID,
		Title:      bp.Title,
		Artist:     bp.Artist,
		YouTubeURL: bp.YouTubeURL,
		Difficulty: piece.ParseDifficulty(bp.Difficulty),
		Milestones: migrateProgress(bp.Milestones, bp.Progress),
	}
	if bp.CreatedAt != "" {
		t, err := time.Parse(time.RFC3339, bp.CreatedAt)
		if err != nil {
			return piece.Piece{}, fmt.Errorf("createdAt %q: %w", bp.CreatedAt, err)
		}
		p.CreatedAt = t
	}
	if bp.LastPracticedAt != "" {
		t, err := time.Parse(time.RFC3339, bp.LastPracticedAt)
		if err != nil {
			return piece.Piece{}, fmt.Errorf("lastPracticedAt %q: %w", bp.LastPracticedAt, err)
		}
		p.LastPracticedAt = &t
	}
	return p, nil
}

// migrateProgress resolves the historical progress shapes into a
// milestone set. A milestone list wins outright; otherwise a stage
// name or a 0..100 percentage is mapped onto the milestone ladder.
func migrateProgress(milestones []string, progress any) []milestone.Milestone {
	if len(milestones) > 0 {
		out := make([]milestone.Milestone, 0, len(milestones))
		for _, s := range milestones {
			m := milestone.Milestone(s)
			if m.Valid() {
				out = append(out, m)
			}
		}
		return out
	}

	switch v := progress.(type) {
	case string:
		return stageMilestones(v)
	case float64: // json numbers decode as float64
		return firstMilestones(percentToCount(v))
	default:
		return nil
	}
}

// stageMilestones maps the old five-stage progress enum onto milestone
// counts that land on the matching status band.
func stageMilestones(stage string) []milestone.Milestone {
	switch stage {
	case "not_started":
		return nil
	case "hands_separate":
		return firstMilestones(3)
	case "hands_together":
		return firstMilestones(5)
	case "perfected":
		return firstMilestones(7)
	case "memorized":
		return firstMilestones(milestone.Max)
	default:
		return nil
	}
}

func percentToCount(percent float64) int {
	if percent <= 0 {
		return 0
	}
	if percent >= 100 {
		return milestone.Max
	}
	n := int(percent / 100 * milestone.Max)
	if n > milestone.Max {
		n = milestone.Max
	}
	return n
}

func firstMilestones(n int) []milestone.Milestone {
	all := milestone.All()
	if n > len(all) {
		n = len(all)
	}
	return all[:n]
}

// sessionsLog converts a backup document's session map to the
// aggregation engines' log shape without touching a store. Used by
// dry-run inspection of a backup file.
func sessionsLog(doc Document) (practice.Log, error) {
	log := make(practice.Log, len(doc.Sessions))
	for pieceID, list := range doc.Sessions {
		for _, bs := range list {
			ts, err := time.Parse(time.RFC3339, bs.Timestamp)
			if err != nil {
				return nil, fmt.Errorf("session timestamp %q: %w", bs.Timestamp, err)
			}
			log[pieceID] = append(log[pieceID], practice.Session{
				PieceID:   pieceID,
				Timestamp: ts,
				Duration:  bs.Duration,
			})
		}
	}
	return log, nil
}

// Summary describes a backup file's contents without importing it.
type Summary struct {
	PieceCount   int
	SessionCount int
	TotalSecs    int
	ExportDate   string
	Version      string
}

// Peek validates and summarizes a backup, for the confirmation prompt
// shown before a destructive import.
func Peek(raw []byte) (Summary, error) {
	if err := Validate(raw); err != nil {
		return Summary{}, err
	}
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Summary{}, fmt.Errorf("parse backup: %w", err)
	}

	log, err := sessionsLog(doc)
	if err != nil {
		return Summary{}, err
	}
	sum := Summary{
		PieceCount: len(doc.Pieces),
		ExportDate: doc.ExportDate,
		Version:    doc.Version,
	}
	for _, sessions := range log {
		sum.SessionCount += len(sessions)
		for _, sess := range sessions {
			sum.TotalSecs += sess.Duration
		}
	}
	return sum, nil
}
