// Package home is the landing screen: the navigation menu plus a
// compact summary of today's practice.
package home

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jkeller/etude/internal/router"
	"github.com/jkeller/etude/internal/screen"
	"github.com/jkeller/etude/internal/screens/calendar"
	"github.com/jkeller/etude/internal/screens/history"
	"github.com/jkeller/etude/internal/screens/library"
	"github.com/jkeller/etude/internal/screens/settings"
	statsscreen "github.com/jkeller/etude/internal/screens/stats"
	"github.com/jkeller/etude/internal/stats"
	"github.com/jkeller/etude/internal/store"
	"github.com/jkeller/etude/internal/ui/components"
	"github.com/jkeller/etude/internal/ui/theme"
	"github.com/jkeller/etude/internal/youtube"
)

type summaryLoadedMsg struct {
	stats stats.Stats
	goal  int
	err   error
}

// HomeScreen is the main navigation screen.
type HomeScreen struct {
	st      *store.Store
	menu    components.Menu
	summary stats.Stats
	goal    int
	loaded  bool
	errMsg  string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen backed by the store.
func New(st *store.Store) *HomeScreen {
	items := []components.MenuItem{
		{Label: "LIBRARY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: library.New(st)}
			}
		}},
		{Label: "STATS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: statsscreen.New(st)}
			}
		}},
		{Label: "CALENDAR", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: calendar.New(st)}
			}
		}},
		{Label: "HISTORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(st)}
			}
		}},
		{Label: "SETTINGS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: settings.New(st)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		st:   st,
		menu: components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		pieces, err := h.st.PieceRepo().List(ctx)
		if err != nil {
			return summaryLoadedMsg{err: err}
		}
		log, err := h.st.SessionRepo().Log(ctx)
		if err != nil {
			return summaryLoadedMsg{err: err}
		}
		prefs, err := h.st.SettingsRepo().Load(ctx)
		if err != nil {
			return summaryLoadedMsg{err: err}
		}
		return summaryLoadedMsg{
			stats: stats.Aggregate(pieces, log, time.Now()),
			goal:  prefs.DailyGoalSecs,
		}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(summaryLoadedMsg); ok {
		if msg.err != nil {
			h.errMsg = msg.err.Error()
		} else {
			h.summary = msg.stats
			h.goal = msg.goal
		}
		h.loaded = true
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	title := theme.Title.Width(width).Render("♪ Etude")
	subtitle := theme.Subtitle.Width(width).Render("piano practice tracker")
	sections = append(sections, title+"\n"+subtitle)

	if h.errMsg != "" {
		sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Bad.Render("Error: "+h.errMsg)))
	} else if h.loaded {
		sections = append(sections, h.renderSummary(width))
	}

	menu := lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View())
	sections = append(sections, menu)

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) renderSummary(width int) string {
	today := youtube.FormatDuration(h.summary.TodaySecs)
	goalPart := ""
	if h.goal > 0 {
		goalPart = fmt.Sprintf(" / %s goal", youtube.FormatDuration(h.goal))
	}

	parts := []string{
		fmt.Sprintf("Today %s%s", today, goalPart),
		fmt.Sprintf("Streak %d", h.summary.Streak),
		fmt.Sprintf("Mastered %d", h.summary.MasteredCount),
	}
	line := strings.Join(parts, "   │   ")

	style := lipgloss.NewStyle().Foreground(theme.Accent)
	if h.goal > 0 && h.summary.TodaySecs >= h.goal {
		style = theme.Good
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line))
}

func (h *HomeScreen) Title() string {
	return "Home"
}
