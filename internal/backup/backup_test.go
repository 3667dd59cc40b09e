package backup

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/jkeller/etude/internal/milestone"
	"github.com/jkeller/etude/internal/piece"
	"github.com/jkeller/etude/internal/store"
)

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestExportImportRoundTrip(t *testing.T) {
	src := openTestStore(t)
	ctx := context.Background()

	p := piece.Piece{
		ID:         "p1",
		Title:      "Clair de Lune",
		Artist:     "Debussy",
		YouTubeURL: "https://youtu.be/CvFH_6DNRCY",
		Difficulty: piece.DifficultyHard,
		Milestones: []milestone.Milestone{milestone.NotesLearned, milestone.RightHand, milestone.LeftHand},
	}
	if err := src.PieceRepo().Create(ctx, p); err != nil {
		t.Fatalf("create: %v", err)
	}
	ts := time.Date(2025, 6, 15, 18, 0, 0, 0, time.UTC)
	if err := src.SessionRepo().Record(ctx, "p1", ts, 1200); err != nil {
		t.Fatalf("record: %v", err)
	}
	settings := store.DefaultSettings()
	settings.DailyGoalSecs = 45 * 60
	if err := src.SettingsRepo().Save(ctx, settings); err != nil {
		t.Fatalf("save settings: %v", err)
	}

	raw, err := Export(ctx, src, "1.4.0", ts)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	dst := openTestStore(t)
	if err := Import(ctx, dst, raw); err != nil {
		t.Fatalf("import: %v", err)
	}

	got, err := dst.PieceRepo().Get(ctx, "p1")
	if err != nil {
		t.Fatalf("get imported piece: %v", err)
	}
	if got.Title != p.Title || got.Difficulty != p.Difficulty {
		t.Errorf("imported %q/%s, want %q/%s", got.Title, got.Difficulty, p.Title, p.Difficulty)
	}
	if len(got.Milestones) != 3 {
		t.Errorf("milestones = %v, want 3 entries", got.Milestones)
	}

	log, err := dst.SessionRepo().Log(ctx)
	if err != nil {
		t.Fatalf("log: %v", err)
	}
	if len(log["p1"]) != 1 || log["p1"][0].Duration != 1200 {
		t.Errorf("sessions = %v, want one 1200s session", log["p1"])
	}

	gotSettings, err := dst.SettingsRepo().Load(ctx)
	if err != nil {
		t.Fatalf("load settings: %v", err)
	}
	if gotSettings.DailyGoalSecs != 45*60 {
		t.Errorf("daily goal = %d, want %d", gotSettings.DailyGoalSecs, 45*60)
	}
}

func TestImportReplacesExisting(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	old := piece.Piece{ID: "old", Title: "Old Piece", Artist: "Nobody"}
	if err := s.PieceRepo().Create(ctx, old); err != nil {
		t.Fatalf("create: %v", err)
	}
	ts := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	if err := s.SessionRepo().Record(ctx, "old", ts, 600); err != nil {
		t.Fatalf("record: %v", err)
	}
	oldSettings := store.DefaultSettings()
	oldSettings.DailyGoalSecs = 90 * 60
	if err := s.SettingsRepo().Save(ctx, oldSettings); err != nil {
		t.Fatalf("save settings: %v", err)
	}

	raw := []byte(`{
		"pianoPieces": [{"id": "new", "title": "New Piece", "artist": "Somebody"}],
		"practiceSessions": {},
		"pianoSettings": {"dailyGoalSecs": 1200, "favoriteCount": 5, "colorScheme": "forest", "showExternalYouTube": false}
	}`)
	if err := Import(ctx, s, raw); err != nil {
		t.Fatalf("import: %v", err)
	}

	pieces, err := s.PieceRepo().List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(pieces) != 1 || pieces[0].ID != "new" {
		t.Errorf("catalog = %v, want only the imported piece", pieces)
	}

	log, err := s.SessionRepo().Log(ctx)
	if err != nil {
		t.Fatalf("log: %v", err)
	}
	if len(log) != 0 {
		t.Errorf("stale sessions survived the import: %v", log)
	}

	settings, err := s.SettingsRepo().Load(ctx)
	if err != nil {
		t.Fatalf("load settings: %v", err)
	}
	if settings.DailyGoalSecs != 1200 || settings.ColorScheme != "forest" {
		t.Errorf("settings = %+v, want the backup's values", settings)
	}
}

func TestImportKeepsBackupLastPracticed(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	// The piece was touched (sub-threshold activity) after its last
	// durable session; that newer timestamp must survive the import.
	raw := []byte(`{
		"pianoPieces": [{
			"id": "p1", "title": "A", "artist": "B",
			"lastPracticedAt": "2025-06-20T09:00:00Z"
		}],
		"practiceSessions": {
			"p1": [{"timestamp": "2025-06-15T18:00:00Z", "duration": 300}]
		}
	}`)
	if err := Import(ctx, s, raw); err != nil {
		t.Fatalf("import: %v", err)
	}

	got, err := s.PieceRepo().Get(ctx, "p1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	want := time.Date(2025, 6, 20, 9, 0, 0, 0, time.UTC)
	if got.LastPracticedAt == nil || !got.LastPracticedAt.Equal(want) {
		t.Errorf("lastPracticedAt = %v, want %v", got.LastPracticedAt, want)
	}
}

func TestImportRejectsInvalid(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	keep := piece.Piece{ID: "keep", Title: "Kept", Artist: "A"}
	if err := s.PieceRepo().Create(ctx, keep); err != nil {
		t.Fatalf("create: %v", err)
	}
	ts := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	if err := s.SessionRepo().Record(ctx, "keep", ts, 600); err != nil {
		t.Fatalf("record: %v", err)
	}

	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{broken`},
		{"missing sessions", `{"pianoPieces": []}`},
		{"piece without title", `{"pianoPieces": [{"id": "x", "artist": "a"}], "practiceSessions": {}}`},
		{"negative duration", `{"pianoPieces": [], "practiceSessions": {"x": [{"timestamp": "2025-06-15T18:00:00Z", "duration": -5}]}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Import(ctx, s, []byte(tt.raw)); err == nil {
				t.Error("expected import to fail")
			}
		})
	}

	// A rejected file must leave the store untouched.
	if _, err := s.PieceRepo().Get(ctx, "keep"); err != nil {
		t.Errorf("piece gone after rejected imports: %v", err)
	}
	log, err := s.SessionRepo().Log(ctx)
	if err != nil {
		t.Fatalf("log: %v", err)
	}
	if len(log["keep"]) != 1 {
		t.Errorf("sessions after rejected imports = %v, want the original one", log["keep"])
	}
}

func TestImportDropsOrphanSessions(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	raw := []byte(`{
		"pianoPieces": [{"id": "p1", "title": "Kept", "artist": "A"}],
		"practiceSessions": {
			"p1": [{"timestamp": "2025-06-15T18:00:00Z", "duration": 300}],
			"gone": [{"timestamp": "2025-06-15T19:00:00Z", "duration": 300}]
		}
	}`)
	if err := Import(ctx, s, raw); err != nil {
		t.Fatalf("import: %v", err)
	}

	log, err := s.SessionRepo().Log(ctx)
	if err != nil {
		t.Fatalf("log: %v", err)
	}
	if len(log["p1"]) != 1 {
		t.Errorf("kept piece sessions = %v, want 1", log["p1"])
	}
	if len(log["gone"]) != 0 {
		t.Errorf("orphan sessions imported: %v", log["gone"])
	}
}

func TestMigrateProgressStages(t *testing.T) {
	tests := []struct {
		stage string
		want  milestone.Status
	}{
		{"not_started", milestone.StatusNotStarted},
		{"hands_separate", milestone.StatusPracticing},
		{"hands_together", milestone.StatusPolishing},
		{"perfected", milestone.StatusMastered},
		{"memorized", milestone.StatusMastered},
		{"something_else", milestone.StatusNotStarted},
	}
	for _, tt := range tests {
		set := migrateProgress(nil, tt.stage)
		if got := milestone.StatusOf(set); got != tt.want {
			t.Errorf("stage %q -> %s, want %s", tt.stage, got, tt.want)
		}
	}
}

func TestMigrateProgressPercent(t *testing.T) {
	tests := []struct {
		percent float64
		count   int
	}{
		{0, 0},
		{100, 8},
		{50, 4},
		{-10, 0},
		{250, 8},
	}
	for _, tt := range tests {
		set := migrateProgress(nil, tt.percent)
		if len(set) != tt.count {
			t.Errorf("percent %v -> %d milestones, want %d", tt.percent, len(set), tt.count)
		}
	}
}

func TestMigratePrefersMilestoneList(t *testing.T) {
	set := migrateProgress([]string{string(milestone.Memorized), "bogus"}, "memorized")
	if len(set) != 1 || set[0] != milestone.Memorized {
		t.Errorf("got %v, want just the valid listed milestone", set)
	}
}

func TestPeek(t *testing.T) {
	raw := []byte(`{
		"pianoPieces": [{"id": "p1", "title": "A", "artist": "B"}],
		"practiceSessions": {
			"p1": [
				{"timestamp": "2025-06-15T18:00:00Z", "duration": 300},
				{"timestamp": "2025-06-16T18:00:00Z", "duration": 600}
			]
		},
		"exportDate": "2025-06-16T20:00:00Z",
		"version": "1.4.0"
	}`)

	sum, err := Peek(raw)
	if err != nil {
		t.Fatalf("peek: %v", err)
	}
	if sum.PieceCount != 1 || sum.SessionCount != 2 || sum.TotalSecs != 900 {
		t.Errorf("summary = %+v, want 1 piece, 2 sessions, 900s", sum)
	}
	if sum.Version != "1.4.0" {
		t.Errorf("version = %q", sum.Version)
	}
}

func TestExportFilename(t *testing.T) {
	now := time.Date(2025, 6, 15, 23, 30, 0, 0, time.UTC)
	got := Filename(now)
	if !strings.HasPrefix(got, "piano-tracker-backup-2025-06-15") || !strings.HasSuffix(got, ".json") {
		t.Errorf("filename = %q", got)
	}
}

func TestExportIsValidBackup(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	p := piece.Piece{ID: "p1", Title: "A", Artist: "B"}
	if err := s.PieceRepo().Create(ctx, p); err != nil {
		t.Fatalf("create: %v", err)
	}

	raw, err := Export(ctx, s, "1.4.0", time.Now())
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if err := Validate(raw); err != nil {
		t.Errorf("exported document fails its own schema: %v", err)
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("unmarshal export: %v", err)
	}
	if doc.Sessions == nil {
		t.Error("practiceSessions must be present even when empty")
	}
}
