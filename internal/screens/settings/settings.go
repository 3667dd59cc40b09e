// Package settings edits the persisted preferences: daily goal,
// favorite count, color scheme, and the external YouTube shortcut.
package settings

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jkeller/etude/internal/router"
	"github.com/jkeller/etude/internal/screen"
	"github.com/jkeller/etude/internal/store"
	"github.com/jkeller/etude/internal/ui/layout"
	"github.com/jkeller/etude/internal/ui/theme"
	"github.com/jkeller/etude/internal/youtube"
)

type settingsLoadedMsg struct {
	settings store.Settings
	err      error
}

type settingsSavedMsg struct {
	err error
}

const (
	rowDailyGoal = iota
	rowFavorites
	rowScheme
	rowExternalYT
	rowCount
)

// SettingsScreen edits the stored preferences in place.
type SettingsScreen struct {
	st       *store.Store
	settings store.Settings
	selected int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*SettingsScreen)(nil)
var _ screen.KeyHintProvider = (*SettingsScreen)(nil)

// New creates the settings screen backed by the store.
func New(st *store.Store) *SettingsScreen {
	return &SettingsScreen{st: st}
}

func (s *SettingsScreen) Init() tea.Cmd {
	return func() tea.Msg {
		settings, err := s.st.SettingsRepo().Load(context.Background())
		return settingsLoadedMsg{settings: settings, err: err}
	}
}

func (s *SettingsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case settingsLoadedMsg:
		if msg.err != nil {
			s.errMsg = msg.err.Error()
		} else {
			s.settings = msg.settings
		}
		s.loaded = true
		return s, nil

	case settingsSavedMsg:
		if msg.err != nil {
			s.errMsg = msg.err.Error()
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < rowCount-1 {
				s.selected++
			}
		case "left", "h":
			return s, s.adjust(-1)
		case "right", "l", "enter", " ":
			return s, s.adjust(1)
		}
	}
	return s, nil
}

// adjust changes the selected setting and persists immediately.
func (s *SettingsScreen) adjust(dir int) tea.Cmd {
	switch s.selected {
	case rowDailyGoal:
		s.settings.DailyGoalSecs += dir * 5 * 60
		if s.settings.DailyGoalSecs < 0 {
			s.settings.DailyGoalSecs = 0
		}
	case rowFavorites:
		s.settings.FavoriteCount += dir
		if s.settings.FavoriteCount < 1 {
			s.settings.FavoriteCount = 1
		}
		if s.settings.FavoriteCount > 10 {
			s.settings.FavoriteCount = 10
		}
	case rowScheme:
		s.settings.ColorScheme = cycleScheme(s.settings.ColorScheme, dir)
		theme.Apply(s.settings.ColorScheme)
	case rowExternalYT:
		s.settings.ShowExternalYouTube = !s.settings.ShowExternalYouTube
	}

	saved := s.settings
	return func() tea.Msg {
		err := s.st.SettingsRepo().Save(context.Background(), saved)
		return settingsSavedMsg{err: err}
	}
}

func cycleScheme(current string, dir int) string {
	names := theme.SchemeNames()
	for i, name := range names {
		if name == current {
			return names[(i+dir+len(names))%len(names)]
		}
	}
	return names[0]
}

func (s *SettingsScreen) Title() string {
	return "Settings"
}

func (s *SettingsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "←→", Description: "Change"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SettingsScreen) View(width, height int) string {
	if !s.loaded {
		return theme.Hint.Width(width).Align(lipgloss.Center).
			Render("\n\n  Loading settings...")
	}

	rows := [][2]string{
		{"Daily goal", youtube.FormatDuration(s.settings.DailyGoalSecs)},
		{"Favorites shown", fmt.Sprintf("%d", s.settings.FavoriteCount)},
		{"Color scheme", s.settings.ColorScheme},
		{"External YouTube", onOff(s.settings.ShowExternalYouTube)},
	}

	var b strings.Builder
	for i, row := range rows {
		prefix := "  "
		style := theme.Body
		if i == s.selected {
			prefix = "▸ "
			style = theme.Selected
		}
		b.WriteString(style.Render(fmt.Sprintf("%s%-18s %s", prefix, row[0], row[1])) + "\n\n")
	}

	if s.errMsg != "" {
		b.WriteString(theme.Bad.Render(s.errMsg) + "\n")
	}

	card := theme.Card.Width(min(width-4, 48)).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
