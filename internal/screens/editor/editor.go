// Package editor is the add/edit form for a piece: YouTube URL, title,
// artist, and difficulty, with duplicate-video rejection surfaced
// inline.
package editor

import (
	"context"
	"errors"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/jkeller/etude/internal/piece"
	"github.com/jkeller/etude/internal/router"
	"github.com/jkeller/etude/internal/screen"
	"github.com/jkeller/etude/internal/store"
	"github.com/jkeller/etude/internal/ui/components"
	"github.com/jkeller/etude/internal/ui/layout"
	"github.com/jkeller/etude/internal/ui/theme"
)

// SavedMsg is broadcast after a successful save so the library can
// reload.
type SavedMsg struct {
	Title string
}

type saveResultMsg struct {
	title string
	err   error
}

const (
	fieldURL = iota
	fieldTitle
	fieldArtist
	fieldDifficulty
	fieldCount
)

// EditorScreen edits one piece, or creates one when editing is nil.
type EditorScreen struct {
	st      *store.Store
	editing *piece.Piece
	inputs  [3]components.TextInput
	diff    piece.Difficulty
	focus   int
	errMsg  string
	saving  bool
}

var _ screen.Screen = (*EditorScreen)(nil)
var _ screen.KeyHintProvider = (*EditorScreen)(nil)

// New creates the editor. Pass nil to add a new piece.
func New(st *store.Store, editing *piece.Piece) *EditorScreen {
	s := &EditorScreen{
		st:      st,
		editing: editing,
		diff:    piece.DifficultyMedium,
	}
	s.inputs[fieldURL] = components.NewTextInput("YouTube URL (optional)", false, 200)
	s.inputs[fieldTitle] = components.NewTextInput("Title", false, 120)
	s.inputs[fieldArtist] = components.NewTextInput("Artist", false, 120)

	if editing != nil {
		s.inputs[fieldURL].Model.SetValue(editing.YouTubeURL)
		s.inputs[fieldTitle].Model.SetValue(editing.Title)
		s.inputs[fieldArtist].Model.SetValue(editing.Artist)
		if editing.Difficulty != piece.DifficultyUnknown {
			s.diff = editing.Difficulty
		}
	}
	return s
}

func (s *EditorScreen) Init() tea.Cmd {
	return s.inputs[fieldURL].Init()
}

func (s *EditorScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case saveResultMsg:
		s.saving = false
		if msg.err != nil {
			s.errMsg = saveError(msg.err)
			return s, nil
		}
		return s, tea.Batch(
			func() tea.Msg { return SavedMsg{Title: msg.title} },
			func() tea.Msg { return router.PopScreenMsg{} },
		)

	case tea.KeyMsg:
		if s.saving {
			return s, nil
		}
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "tab", "down":
			s.focus = (s.focus + 1) % fieldCount
			return s, s.focusCmd()
		case "shift+tab", "up":
			s.focus = (s.focus + fieldCount - 1) % fieldCount
			return s, s.focusCmd()
		case "enter":
			if s.focus == fieldDifficulty {
				return s, s.save()
			}
			s.focus++
			return s, s.focusCmd()
		case "left", "right":
			if s.focus == fieldDifficulty {
				s.diff = cycleDifficulty(s.diff, msg.String() == "right")
				return s, nil
			}
		}

		if s.focus < fieldDifficulty {
			var cmd tea.Cmd
			s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
			return s, cmd
		}
	}
	return s, nil
}

func (s *EditorScreen) focusCmd() tea.Cmd {
	for i := range s.inputs {
		s.inputs[i].Model.Blur()
	}
	if s.focus < fieldDifficulty {
		return s.inputs[s.focus].Model.Focus()
	}
	return nil
}

func (s *EditorScreen) save() tea.Cmd {
	p := piece.Piece{
		Title:      strings.TrimSpace(s.inputs[fieldTitle].Value()),
		Artist:     strings.TrimSpace(s.inputs[fieldArtist].Value()),
		YouTubeURL: strings.TrimSpace(s.inputs[fieldURL].Value()),
		Difficulty: s.diff,
	}

	if s.editing != nil {
		p.ID = s.editing.ID
		p.Milestones = s.editing.Milestones
		p.LastPracticedAt = s.editing.LastPracticedAt
		p.CreatedAt = s.editing.CreatedAt
	} else {
		p.ID = uuid.NewString()
		p.CreatedAt = time.Now()
	}

	s.saving = true
	s.errMsg = ""
	isEdit := s.editing != nil
	return func() tea.Msg {
		ctx := context.Background()
		var err error
		if isEdit {
			err = s.st.PieceRepo().Update(ctx, p)
		} else {
			err = s.st.PieceRepo().Create(ctx, p)
		}
		return saveResultMsg{title: p.Title, err: err}
	}
}

func saveError(err error) string {
	switch {
	case errors.Is(err, piece.ErrDuplicateVideo):
		return "That video is already in your library."
	case errors.Is(err, piece.ErrInvalidPiece):
		return "Title and artist are required."
	default:
		return err.Error()
	}
}

func (s *EditorScreen) Title() string {
	if s.editing != nil {
		return "Edit Piece"
	}
	return "Add Piece"
}

func (s *EditorScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "←→", Description: "Difficulty"},
		{Key: "Enter", Description: "Save"},
		{Key: "Esc", Description: "Cancel"},
	}
}

func (s *EditorScreen) View(width, height int) string {
	labels := []string{"YouTube URL", "Title", "Artist"}

	var b strings.Builder
	for i, input := range s.inputs {
		label := labels[i]
		style := theme.Body
		if i == s.focus {
			style = theme.Selected
		}
		b.WriteString(style.Render(label) + "\n")
		b.WriteString(input.View() + "\n\n")
	}

	diffLabel := theme.Body
	if s.focus == fieldDifficulty {
		diffLabel = theme.Selected
	}
	b.WriteString(diffLabel.Render("Difficulty") + "\n")
	b.WriteString(renderDifficultyPicker(s.diff) + "\n")

	if s.errMsg != "" {
		b.WriteString("\n" + theme.Bad.Render(s.errMsg) + "\n")
	}
	if s.saving {
		b.WriteString("\n" + theme.Hint.Render("Saving...") + "\n")
	}

	card := theme.Card.Width(min(width-4, 72)).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func renderDifficultyPicker(current piece.Difficulty) string {
	parts := make([]string, 0, len(piece.AllDifficulties()))
	for _, d := range piece.AllDifficulties() {
		label := " " + d.DisplayName() + " "
		if d == current {
			parts = append(parts, theme.Selected.Render("["+label+"]"))
		} else {
			parts = append(parts, theme.Hint.Render(label))
		}
	}
	return strings.Join(parts, " ")
}

func cycleDifficulty(d piece.Difficulty, forward bool) piece.Difficulty {
	all := piece.AllDifficulties()
	for i, cand := range all {
		if cand == d {
			if forward {
				return all[(i+1)%len(all)]
			}
			return all[(i+len(all)-1)%len(all)]
		}
	}
	return all[0]
}
