// Package practicesession runs the practice timer for one piece and
// lets milestones be toggled as they are earned.
package practicesession

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jkeller/etude/internal/milestone"
	"github.com/jkeller/etude/internal/piece"
	"github.com/jkeller/etude/internal/practice"
	"github.com/jkeller/etude/internal/router"
	"github.com/jkeller/etude/internal/screen"
	"github.com/jkeller/etude/internal/store"
	"github.com/jkeller/etude/internal/ui/components"
	"github.com/jkeller/etude/internal/ui/layout"
	"github.com/jkeller/etude/internal/ui/theme"
	"github.com/jkeller/etude/internal/youtube"
)

// RecordedMsg is broadcast after the session is saved so other screens
// can refresh.
type RecordedMsg struct {
	PieceID  string
	Duration int
}

type tickMsg time.Time

type savedMsg struct {
	duration int
	err      error
}

type milestoneSavedMsg struct {
	err error
}

// PracticeScreen times a session against one piece.
type PracticeScreen struct {
	st    *store.Store
	piece piece.Piece

	elapsed   int
	running   bool
	checklist components.Checklist
	focusList bool
	errMsg    string
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)

// New creates a practice screen for p.
func New(st *store.Store, p piece.Piece) *PracticeScreen {
	items := make([]components.ChecklistItem, 0, milestone.Max)
	for _, m := range milestone.All() {
		items = append(items, components.ChecklistItem{
			Label:   m.DisplayName(),
			Checked: milestone.Contains(p.Milestones, m),
		})
	}

	return &PracticeScreen{
		st:        st,
		piece:     p,
		running:   true,
		checklist: components.NewChecklist(items),
	}
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (s *PracticeScreen) Init() tea.Cmd {
	return tick()
}

func (s *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if s.running {
			s.elapsed++
		}
		return s, tick()

	case savedMsg:
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			return s, nil
		}
		return s, tea.Batch(
			func() tea.Msg {
				return RecordedMsg{PieceID: s.piece.ID, Duration: msg.duration}
			},
			func() tea.Msg { return router.PopScreenMsg{} },
		)

	case milestoneSavedMsg:
		if msg.err != nil {
			s.errMsg = msg.err.Error()
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			if s.elapsed == 0 {
				return s, func() tea.Msg { return router.PopScreenMsg{} }
			}
			// Leaving still records whatever accumulated; very short
			// sessions only bump the last-practiced time.
			return s, s.stop()
		case "space", " ", "p":
			s.running = !s.running
			return s, nil
		case "s":
			return s, s.stop()
		case "r":
			s.elapsed = 0
			s.running = false
			return s, nil
		case "tab":
			s.focusList = !s.focusList
			return s, nil
		}
		if s.focusList {
			var cmd tea.Cmd
			s.checklist, cmd = s.checklist.Update(msg)
			return s, tea.Batch(cmd, s.saveMilestones())
		}
	}
	return s, nil
}

func (s *PracticeScreen) stop() tea.Cmd {
	duration := s.elapsed
	s.running = false
	pieceID := s.piece.ID
	return func() tea.Msg {
		err := s.st.SessionRepo().Record(context.Background(), pieceID, time.Now(), duration)
		return savedMsg{duration: duration, err: err}
	}
}

// saveMilestones writes the checklist state back to the piece.
func (s *PracticeScreen) saveMilestones() tea.Cmd {
	set := make([]milestone.Milestone, 0, milestone.Max)
	for i, m := range milestone.All() {
		if s.checklist.Items[i].Checked {
			set = append(set, m)
		}
	}
	s.piece.Milestones = set
	updated := s.piece
	return func() tea.Msg {
		err := s.st.PieceRepo().Update(context.Background(), updated)
		return milestoneSavedMsg{err: err}
	}
}

func (s *PracticeScreen) Title() string {
	return "Practice"
}

func (s *PracticeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Space", Description: "Pause"},
		{Key: "s", Description: "Stop & save"},
		{Key: "r", Description: "Reset"},
		{Key: "Tab", Description: "Milestones"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *PracticeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render(s.piece.Title) + "\n")
	b.WriteString(theme.Subtitle.Render(s.piece.Artist) + "\n\n")

	timer := youtube.FormatTimer(s.elapsed)
	timerStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	if !s.running {
		timerStyle = theme.Hint
		timer += "  (paused)"
	}
	b.WriteString(timerStyle.Render(timer) + "\n")

	if s.elapsed > 0 && s.elapsed < practice.MinSessionSecs {
		b.WriteString(theme.Hint.Render(
			fmt.Sprintf("sessions under %ds are not kept", practice.MinSessionSecs)) + "\n")
	}
	b.WriteString("\n")

	status := milestone.StatusOf(currentSet(s.checklist))
	b.WriteString(theme.Body.Render(
		fmt.Sprintf("%s %s  (%d/%d milestones)",
			status.Icon(), status.DisplayName(),
			s.checklist.CheckedCount(), milestone.Max)) + "\n\n")

	listTitle := "Milestones"
	if s.focusList {
		listTitle += " (editing)"
	}
	b.WriteString(theme.Hint.Render(listTitle) + "\n")
	b.WriteString(s.checklist.View())

	if url := s.piece.YouTubeURL; url != "" {
		b.WriteString("\n" + theme.Hint.Render("▶ "+url) + "\n")
	}
	if s.errMsg != "" {
		b.WriteString("\n" + theme.Bad.Render(s.errMsg) + "\n")
	}

	card := theme.Card.Width(min(width-4, 64)).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func currentSet(c components.Checklist) []milestone.Milestone {
	set := make([]milestone.Milestone, 0, len(c.Items))
	for i, m := range milestone.All() {
		if i < len(c.Items) && c.Items[i].Checked {
			set = append(set, m)
		}
	}
	return set
}
