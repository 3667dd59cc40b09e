package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jkeller/etude/internal/milestone"
	"github.com/jkeller/etude/internal/piece"
	"github.com/jkeller/etude/internal/practice"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testPiece(id, title, url string) piece.Piece {
	return piece.Piece{
		ID:         id,
		Title:      title,
		Artist:     "Chilly Gonzales",
		YouTubeURL: url,
		Difficulty: piece.DifficultyMedium,
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestPieceCRUD(t *testing.T) {
	s := openTestStore(t)
	repo := s.PieceRepo()
	ctx := context.Background()

	p := testPiece("p1", "Gogol", "https://www.youtube.com/watch?v=kXF3VYYa5TI")
	p.Milestones = []milestone.Milestone{milestone.NotesLearned, milestone.RightHand}

	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.Get(ctx, "p1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "Gogol" || got.Artist != p.Artist {
		t.Errorf("got %q by %q, want %q by %q", got.Title, got.Artist, p.Title, p.Artist)
	}
	if len(got.Milestones) != 2 {
		t.Errorf("milestones = %v, want 2 entries", got.Milestones)
	}
	if got.CreatedAt.IsZero() {
		t.Error("expected created_at to be set")
	}
	if got.LastPracticedAt != nil {
		t.Errorf("expected nil last practiced, got %v", got.LastPracticedAt)
	}

	got.Title = "Gogol (live)"
	got.Milestones = milestone.Toggle(got.Milestones, milestone.LeftHand)
	if err := repo.Update(ctx, got); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err = repo.Get(ctx, "p1")
	if err != nil {
		t.Fatalf("get after update: %v", err)
	}
	if got.Title != "Gogol (live)" || len(got.Milestones) != 3 {
		t.Errorf("after update: title %q milestones %v", got.Title, got.Milestones)
	}

	if err := repo.Delete(ctx, "p1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.Get(ctx, "p1"); !errors.Is(err, ErrPieceNotFound) {
		t.Errorf("get after delete: %v, want ErrPieceNotFound", err)
	}
	if err := repo.Delete(ctx, "p1"); !errors.Is(err, ErrPieceNotFound) {
		t.Errorf("double delete: %v, want ErrPieceNotFound", err)
	}
}

func TestPieceListNewestFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.PieceRepo()
	ctx := context.Background()

	old := testPiece("old", "Oregano", "")
	old.CreatedAt = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	recent := testPiece("recent", "White Keys", "")
	recent.CreatedAt = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	if err := repo.Create(ctx, old); err != nil {
		t.Fatalf("create old: %v", err)
	}
	if err := repo.Create(ctx, recent); err != nil {
		t.Fatalf("create recent: %v", err)
	}

	pieces, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(pieces) != 2 {
		t.Fatalf("got %d pieces, want 2", len(pieces))
	}
	if pieces[0].ID != "recent" || pieces[1].ID != "old" {
		t.Errorf("order = [%s %s], want [recent old]", pieces[0].ID, pieces[1].ID)
	}
}

func TestPieceDuplicateVideo(t *testing.T) {
	s := openTestStore(t)
	repo := s.PieceRepo()
	ctx := context.Background()

	first := testPiece("p1", "Armellodie", "https://youtu.be/kXF3VYYa5TI")
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("create first: %v", err)
	}

	// Same video behind a different URL shape.
	second := testPiece("p2", "Armellodie again", "https://www.youtube.com/watch?v=kXF3VYYa5TI")
	if err := repo.Create(ctx, second); !errors.Is(err, piece.ErrDuplicateVideo) {
		t.Errorf("create duplicate: %v, want ErrDuplicateVideo", err)
	}

	// Editing the piece itself keeps its own video.
	first.Title = "Armellodie (edit)"
	if err := repo.Update(ctx, first); err != nil {
		t.Errorf("update in place: %v", err)
	}
}

func TestPieceValidation(t *testing.T) {
	s := openTestStore(t)
	repo := s.PieceRepo()
	ctx := context.Background()

	p := testPiece("p1", "", "")
	if err := repo.Create(ctx, p); !errors.Is(err, piece.ErrInvalidPiece) {
		t.Errorf("create without title: %v, want ErrInvalidPiece", err)
	}
}

func TestSessionRecordAndLog(t *testing.T) {
	s := openTestStore(t)
	pieces := s.PieceRepo()
	sessions := s.SessionRepo()
	ctx := context.Background()

	if err := pieces.Create(ctx, testPiece("p1", "Dot", "")); err != nil {
		t.Fatalf("create piece: %v", err)
	}

	endedAt := time.Date(2025, 6, 15, 18, 30, 0, 0, time.UTC)
	if err := sessions.Record(ctx, "p1", endedAt, 900); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := sessions.Record(ctx, "p1", endedAt.Add(time.Hour), 600); err != nil {
		t.Fatalf("record second: %v", err)
	}

	log, err := sessions.Log(ctx)
	if err != nil {
		t.Fatalf("log: %v", err)
	}
	got := log["p1"]
	if len(got) != 2 {
		t.Fatalf("got %d sessions, want 2", len(got))
	}
	if got[0].Duration != 900 || got[1].Duration != 600 {
		t.Errorf("durations = [%d %d], want [900 600]", got[0].Duration, got[1].Duration)
	}
	if !got[0].Timestamp.Before(got[1].Timestamp) {
		t.Error("expected sessions ordered oldest first")
	}

	p, err := pieces.Get(ctx, "p1")
	if err != nil {
		t.Fatalf("get piece: %v", err)
	}
	if p.LastPracticedAt == nil || !p.LastPracticedAt.Equal(endedAt.Add(time.Hour)) {
		t.Errorf("last practiced = %v, want %v", p.LastPracticedAt, endedAt.Add(time.Hour))
	}
}

func TestSessionRecordBelowThreshold(t *testing.T) {
	s := openTestStore(t)
	pieces := s.PieceRepo()
	sessions := s.SessionRepo()
	ctx := context.Background()

	if err := pieces.Create(ctx, testPiece("p1", "Knight Moves", "")); err != nil {
		t.Fatalf("create piece: %v", err)
	}

	endedAt := time.Date(2025, 6, 15, 18, 30, 0, 0, time.UTC)
	if err := sessions.Record(ctx, "p1", endedAt, practice.MinSessionSecs-1); err != nil {
		t.Fatalf("record: %v", err)
	}

	log, err := sessions.Log(ctx)
	if err != nil {
		t.Fatalf("log: %v", err)
	}
	if len(log["p1"]) != 0 {
		t.Errorf("expected no durable session, got %v", log["p1"])
	}

	// The short session still counts as touching the piece.
	p, err := pieces.Get(ctx, "p1")
	if err != nil {
		t.Fatalf("get piece: %v", err)
	}
	if p.LastPracticedAt == nil || !p.LastPracticedAt.Equal(endedAt) {
		t.Errorf("last practiced = %v, want %v", p.LastPracticedAt, endedAt)
	}
}

func TestSessionRecordUnknownPiece(t *testing.T) {
	s := openTestStore(t)
	sessions := s.SessionRepo()
	ctx := context.Background()

	err := sessions.Record(ctx, "ghost", time.Now(), 120)
	if !errors.Is(err, ErrPieceNotFound) {
		t.Errorf("record for unknown piece: %v, want ErrPieceNotFound", err)
	}
}

func TestSessionDelete(t *testing.T) {
	s := openTestStore(t)
	pieces := s.PieceRepo()
	sessions := s.SessionRepo()
	ctx := context.Background()

	if err := pieces.Create(ctx, testPiece("p1", "Minor Fantasy", "")); err != nil {
		t.Fatalf("create piece: %v", err)
	}

	ts := time.Date(2025, 6, 15, 18, 30, 0, 0, time.UTC)
	if err := sessions.Record(ctx, "p1", ts, 300); err != nil {
		t.Fatalf("record: %v", err)
	}

	if err := sessions.Delete(ctx, "p1", ts); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := sessions.Delete(ctx, "p1", ts); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("double delete: %v, want ErrSessionNotFound", err)
	}

	got, err := sessions.ForPiece(ctx, "p1")
	if err != nil {
		t.Fatalf("for piece: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty session list, got %v", got)
	}
}

func TestSessionRestoreAndDeleteAll(t *testing.T) {
	s := openTestStore(t)
	pieces := s.PieceRepo()
	sessions := s.SessionRepo()
	ctx := context.Background()

	if err := pieces.Create(ctx, testPiece("p1", "Armellodie", "")); err != nil {
		t.Fatalf("create piece: %v", err)
	}

	ts := time.Date(2025, 6, 15, 18, 30, 0, 0, time.UTC)
	if err := sessions.Restore(ctx, "p1", ts, 900); err != nil {
		t.Fatalf("restore: %v", err)
	}

	log, err := sessions.Log(ctx)
	if err != nil {
		t.Fatalf("log: %v", err)
	}
	if len(log["p1"]) != 1 || log["p1"][0].Duration != 900 {
		t.Errorf("restored log = %v, want one 900s session", log["p1"])
	}

	// Restore never touches the piece, unlike Record.
	p, err := pieces.Get(ctx, "p1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p.LastPracticedAt != nil {
		t.Errorf("lastPracticedAt = %v, want untouched nil", p.LastPracticedAt)
	}

	if err := sessions.DeleteAll(ctx); err != nil {
		t.Fatalf("delete all: %v", err)
	}
	log, err = sessions.Log(ctx)
	if err != nil {
		t.Fatalf("log after delete all: %v", err)
	}
	if len(log) != 0 {
		t.Errorf("expected empty log, got %v", log)
	}
}

func TestReset(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.PieceRepo().Create(ctx, testPiece("p1", "Wintermezzo", "")); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := s.SessionRepo().Record(ctx, "p1", time.Now(), 300); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := s.SettingsRepo().Save(ctx, DefaultSettings()); err != nil {
		t.Fatalf("save settings: %v", err)
	}

	if err := s.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	pieces, err := s.PieceRepo().List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(pieces) != 0 {
		t.Errorf("pieces remain after reset: %v", pieces)
	}
	log, err := s.SessionRepo().Log(ctx)
	if err != nil {
		t.Fatalf("log: %v", err)
	}
	if len(log) != 0 {
		t.Errorf("sessions remain after reset: %v", log)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.SettingsRepo()
	ctx := context.Background()

	// Fresh store serves defaults.
	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != DefaultSettings() {
		t.Errorf("fresh load = %+v, want defaults", got)
	}

	got.DailyGoalSecs = 45 * 60
	got.ColorScheme = "sunset"
	if err := repo.Save(ctx, got); err != nil {
		t.Fatalf("save: %v", err)
	}

	reloaded, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded != got {
		t.Errorf("reload = %+v, want %+v", reloaded, got)
	}

	// Saving again overwrites the same row.
	got.FavoriteCount = 5
	if err := repo.Save(ctx, got); err != nil {
		t.Fatalf("second save: %v", err)
	}
	reloaded, err = repo.Load(ctx)
	if err != nil {
		t.Fatalf("second reload: %v", err)
	}
	if reloaded.FavoriteCount != 5 {
		t.Errorf("favorite count = %d, want 5", reloaded.FavoriteCount)
	}
}
