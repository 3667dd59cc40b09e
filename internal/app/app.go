// Package app owns the root Bubble Tea model: the screen router, the
// shared header and footer, and terminal size handling.
package app

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jkeller/etude/internal/practice"
	"github.com/jkeller/etude/internal/router"
	"github.com/jkeller/etude/internal/screen"
	"github.com/jkeller/etude/internal/screens/home"
	"github.com/jkeller/etude/internal/screens/practicesession"
	"github.com/jkeller/etude/internal/stats"
	"github.com/jkeller/etude/internal/store"
	"github.com/jkeller/etude/internal/ui/layout"
)

type headerStatsMsg struct {
	todaySecs int
	streak    int
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	st        *store.Store
	router    *router.Router
	width     int
	height    int
	todaySecs int
	streak    int
}

func newAppModel(st *store.Store) AppModel {
	return AppModel{
		st:     st,
		router: router.New(home.New(st)),
	}
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(m.router.Active().Init(), m.loadHeaderStats())
}

// loadHeaderStats refreshes the today/streak badges in the header.
func (m AppModel) loadHeaderStats() tea.Cmd {
	return func() tea.Msg {
		log, err := m.st.SessionRepo().Log(context.Background())
		if err != nil {
			return headerStatsMsg{}
		}
		now := time.Now()
		today := 0
		for _, sess := range log.All() {
			if practice.SameDay(sess.Timestamp, now) {
				today += sess.Duration
			}
		}
		return headerStatsMsg{
			todaySecs: today,
			streak:    stats.Streak(log, now),
		}
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case headerStatsMsg:
		m.todaySecs = msg.todaySecs
		m.streak = msg.streak
		return m, nil

	case practicesession.RecordedMsg:
		// Let the screens see it too, then refresh the header.
		cmd := m.router.Update(msg)
		return m, tea.Batch(cmd, m.loadHeaderStats())

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.todaySecs, m.streak, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program against an open store.
func Run(st *store.Store) error {
	p := tea.NewProgram(newAppModel(st))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
