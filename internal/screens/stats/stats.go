// Package stats shows the aggregate practice statistics: totals,
// streak, favorites, and the next hours milestone.
package stats

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jkeller/etude/internal/router"
	"github.com/jkeller/etude/internal/screen"
	"github.com/jkeller/etude/internal/stats"
	"github.com/jkeller/etude/internal/store"
	"github.com/jkeller/etude/internal/ui/components"
	"github.com/jkeller/etude/internal/ui/layout"
	"github.com/jkeller/etude/internal/ui/theme"
	"github.com/jkeller/etude/internal/youtube"
)

type statsLoadedMsg struct {
	stats     stats.Stats
	favorites []stats.Favorite
	next      stats.TimeMilestone
	err       error
}

// StatsScreen renders the aggregate statistics view.
type StatsScreen struct {
	st        *store.Store
	stats     stats.Stats
	favorites []stats.Favorite
	next      stats.TimeMilestone
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates the stats screen backed by the store.
func New(st *store.Store) *StatsScreen {
	return &StatsScreen{st: st}
}

func (s *StatsScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		pieces, err := s.st.PieceRepo().List(ctx)
		if err != nil {
			return statsLoadedMsg{err: err}
		}
		log, err := s.st.SessionRepo().Log(ctx)
		if err != nil {
			return statsLoadedMsg{err: err}
		}
		prefs, err := s.st.SettingsRepo().Load(ctx)
		if err != nil {
			return statsLoadedMsg{err: err}
		}

		agg := stats.Aggregate(pieces, log, time.Now())
		return statsLoadedMsg{
			stats:     agg,
			favorites: stats.Favorites(pieces, log, prefs.FavoriteCount),
			next:      stats.NextTimeMilestone(agg.TotalSecs),
		}
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		if msg.err != nil {
			s.errMsg = msg.err.Error()
		} else {
			s.stats = msg.stats
			s.favorites = msg.favorites
			s.next = msg.next
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *StatsScreen) Title() string {
	return "Stats"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return theme.Bad.Width(width).Align(lipgloss.Center).
			Render("\n\nError: " + s.errMsg)
	}
	if !s.loaded {
		return theme.Hint.Width(width).Align(lipgloss.Center).
			Render("\n\n  Crunching numbers...")
	}

	var b strings.Builder

	rows := [][2]string{
		{"Total practice", youtube.FormatDuration(s.stats.TotalSecs)},
		{"Today", youtube.FormatDuration(s.stats.TodaySecs)},
		{"Last 7 days", youtube.FormatDuration(s.stats.WeekSecs)},
		{"Sessions", fmt.Sprintf("%d", s.stats.SessionCount)},
		{"Average session", youtube.FormatDuration(s.stats.AvgSessionSecs)},
		{"Streak", fmt.Sprintf("%d days", s.stats.Streak)},
		{"Pieces mastered", fmt.Sprintf("%d", s.stats.MasteredCount)},
	}
	for _, row := range rows {
		b.WriteString(fmt.Sprintf("%s  %s\n",
			theme.Hint.Render(fmt.Sprintf("%-16s", row[0])),
			theme.Body.Render(row[1])))
	}

	b.WriteString("\n" + theme.Selected.Render("Next milestone") + "\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("%dh total practice", s.next.NextHours)) + "\n")
	bar := components.NewProgressBar("", s.next.Progress, true, 40)
	b.WriteString(bar.View() + "\n")
	b.WriteString(theme.Hint.Render(
		youtube.FormatDuration(s.next.RemainingSecs)+" to go") + "\n")

	if len(s.favorites) > 0 {
		b.WriteString("\n" + theme.Selected.Render("Most practiced") + "\n")
		for i, fav := range s.favorites {
			b.WriteString(theme.Body.Render(fmt.Sprintf("%d. %s — %s (%d sessions)",
				i+1, fav.Piece.Title,
				youtube.FormatDuration(fav.TotalSecs), fav.SessionCount)) + "\n")
		}
	}

	card := theme.Card.Width(min(width-4, 64)).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
