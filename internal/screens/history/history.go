// Package history lists recent practice sessions, newest first, and
// lets mistaken entries be removed.
package history

import (
	"context"
	"fmt"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jkeller/etude/internal/practice"
	"github.com/jkeller/etude/internal/router"
	"github.com/jkeller/etude/internal/screen"
	"github.com/jkeller/etude/internal/store"
	"github.com/jkeller/etude/internal/ui/layout"
	"github.com/jkeller/etude/internal/ui/theme"
	"github.com/jkeller/etude/internal/youtube"
)

const maxEntries = 100

type historyLoadedMsg struct {
	sessions []practice.Session
	titles   map[string]string
	err      error
}

type sessionDeletedMsg struct {
	err error
}

// HistoryScreen displays the practice session log.
type HistoryScreen struct {
	st       *store.Store
	sessions []practice.Session
	titles   map[string]string
	selected int
	confirm  bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates the history screen backed by the store.
func New(st *store.Store) *HistoryScreen {
	return &HistoryScreen{st: st}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		log, err := s.st.SessionRepo().Log(ctx)
		if err != nil {
			return historyLoadedMsg{err: err}
		}
		pieces, err := s.st.PieceRepo().List(ctx)
		if err != nil {
			return historyLoadedMsg{err: err}
		}

		titles := make(map[string]string, len(pieces))
		for _, p := range pieces {
			titles[p.ID] = p.Title
		}

		sessions := log.All()
		sort.Slice(sessions, func(i, j int) bool {
			return sessions[i].Timestamp.After(sessions[j].Timestamp)
		})
		if len(sessions) > maxEntries {
			sessions = sessions[:maxEntries]
		}
		return historyLoadedMsg{sessions: sessions, titles: titles}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "d", Description: "Delete"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.err != nil {
			s.errMsg = msg.err.Error()
		} else {
			s.sessions = msg.sessions
			s.titles = msg.titles
			if s.selected >= len(s.sessions) {
				s.selected = len(s.sessions) - 1
			}
			if s.selected < 0 {
				s.selected = 0
			}
		}
		s.loaded = true
		return s, nil

	case sessionDeletedMsg:
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			return s, nil
		}
		return s, s.Init()

	case tea.KeyMsg:
		if s.confirm {
			s.confirm = false
			if msg.String() == "y" {
				return s, s.deleteSelected()
			}
			return s, nil
		}
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.sessions)-1 {
				s.selected++
			}
		case "d":
			if len(s.sessions) > 0 {
				s.confirm = true
			}
		}
	}
	return s, nil
}

func (s *HistoryScreen) deleteSelected() tea.Cmd {
	if s.selected < 0 || s.selected >= len(s.sessions) {
		return nil
	}
	sess := s.sessions[s.selected]
	return func() tea.Msg {
		err := s.st.SessionRepo().Delete(context.Background(), sess.PieceID, sess.Timestamp)
		return sessionDeletedMsg{err: err}
	}
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return theme.Bad.Width(width).Align(lipgloss.Center).
			Render("\n\nError: " + s.errMsg)
	}
	if !s.loaded {
		return theme.Hint.Width(width).Align(lipgloss.Center).
			Render("\n\n  Loading history...")
	}
	if len(s.sessions) == 0 {
		return theme.Hint.Width(width).Align(lipgloss.Center).
			Render("\n\n  No sessions yet. Go practice!")
	}

	var b strings.Builder
	b.WriteString("\n")

	maxRows := height - 3
	if maxRows < 1 {
		maxRows = 1
	}
	start := 0
	if s.selected >= maxRows {
		start = s.selected - maxRows + 1
	}

	for i := start; i < len(s.sessions) && i < start+maxRows; i++ {
		sess := s.sessions[i]

		title := s.titles[sess.PieceID]
		if title == "" {
			title = "(deleted piece)"
		}

		prefix := "  "
		if i == s.selected {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s  %-30s %s",
			prefix,
			sess.Timestamp.Local().Format("Jan 02 15:04"),
			truncate(title, 30),
			youtube.FormatDuration(sess.Duration))

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = theme.Selected
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	if s.confirm {
		b.WriteString("\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Bad.Render("Delete this session? (y/n)")))
	}
	return b.String()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}
