// Package calendar renders the practice heat map: one cell per
// calendar day, colored by intensity level.
package calendar

import (
	"context"
	"fmt"
	"image/color"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jkeller/etude/internal/heatmap"
	"github.com/jkeller/etude/internal/practice"
	"github.com/jkeller/etude/internal/router"
	"github.com/jkeller/etude/internal/screen"
	"github.com/jkeller/etude/internal/store"
	"github.com/jkeller/etude/internal/ui/layout"
	"github.com/jkeller/etude/internal/ui/theme"
	"github.com/jkeller/etude/internal/youtube"
)

type logLoadedMsg struct {
	log practice.Log
	err error
}

// CalendarScreen shows the heat map over a selectable range.
type CalendarScreen struct {
	st      *store.Store
	log     practice.Log
	buckets []heatmap.DayBucket
	full    bool // since first session instead of trailing year
	loaded  bool
	errMsg  string
}

var _ screen.Screen = (*CalendarScreen)(nil)
var _ screen.KeyHintProvider = (*CalendarScreen)(nil)

// New creates the calendar screen backed by the store.
func New(st *store.Store) *CalendarScreen {
	return &CalendarScreen{st: st}
}

func (s *CalendarScreen) Init() tea.Cmd {
	return func() tea.Msg {
		log, err := s.st.SessionRepo().Log(context.Background())
		return logLoadedMsg{log: log, err: err}
	}
}

func (s *CalendarScreen) rebuild() {
	rng := heatmap.Range{TrailingDays: 365}
	if s.full {
		rng = heatmap.Range{SinceFirstSession: true}
	}
	s.buckets = heatmap.Build(s.log, rng, time.Now())
}

func (s *CalendarScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case logLoadedMsg:
		if msg.err != nil {
			s.errMsg = msg.err.Error()
		} else {
			s.log = msg.log
			s.rebuild()
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "t":
			s.full = !s.full
			s.rebuild()
			return s, nil
		}
	}
	return s, nil
}

func (s *CalendarScreen) Title() string {
	return "Calendar"
}

func (s *CalendarScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "t", Description: "Toggle range"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *CalendarScreen) View(width, height int) string {
	if s.errMsg != "" {
		return theme.Bad.Width(width).Align(lipgloss.Center).
			Render("\n\nError: " + s.errMsg)
	}
	if !s.loaded {
		return theme.Hint.Width(width).Align(lipgloss.Center).
			Render("\n\n  Loading calendar...")
	}

	var b strings.Builder

	rangeLabel := "last 365 days"
	if s.full {
		rangeLabel = "since first session"
	}
	b.WriteString(theme.Subtitle.Render(rangeLabel) + "\n\n")

	b.WriteString(renderGrid(s.buckets, width-8))
	b.WriteString("\n" + renderLegend() + "\n\n")
	b.WriteString(s.renderTotals())

	card := theme.Card.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

// renderGrid draws one column per week, one row per weekday, Sunday on
// top. Weeks beyond the width are dropped from the left, keeping the
// most recent ones visible.
func renderGrid(buckets []heatmap.DayBucket, maxWidth int) string {
	weeks := heatmap.Weeks(buckets)

	maxWeeks := maxWidth / 2
	if maxWeeks < 1 {
		maxWeeks = 1
	}
	if len(weeks) > maxWeeks {
		weeks = weeks[len(weeks)-maxWeeks:]
	}

	dayLabels := []string{"   ", "Mon", "   ", "Wed", "   ", "Fri", "   "}

	var b strings.Builder
	for row := 0; row < 7; row++ {
		b.WriteString(theme.Hint.Render(dayLabels[row]) + " ")
		for _, week := range weeks {
			if row >= len(week) {
				b.WriteString("  ")
				continue
			}
			b.WriteString(renderCell(week[row]))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func renderCell(bucket heatmap.DayBucket) string {
	if bucket.Placeholder {
		return "  "
	}
	return lipgloss.NewStyle().
		Foreground(levelColor(bucket.Level)).
		Render("■ ")
}

func renderLegend() string {
	var b strings.Builder
	b.WriteString(theme.Hint.Render("less "))
	for level := 0; level <= heatmap.MaxLevel; level++ {
		b.WriteString(lipgloss.NewStyle().
			Foreground(levelColor(level)).
			Render("■ "))
	}
	b.WriteString(theme.Hint.Render("more"))
	return b.String()
}

func (s *CalendarScreen) renderTotals() string {
	days := 0
	total := 0
	for _, bucket := range s.buckets {
		if bucket.Placeholder || bucket.Seconds == 0 {
			continue
		}
		days++
		total += bucket.Seconds
	}
	return theme.Hint.Render(fmt.Sprintf("%d active days, %s practiced",
		days, youtube.FormatDuration(total)))
}

func levelColor(level int) color.Color {
	switch level {
	case 1:
		return lipgloss.Color("#1E3A5F")
	case 2:
		return lipgloss.Color("#2563A8")
	case 3:
		return theme.Secondary
	case 4:
		return theme.Primary
	default:
		return theme.Border
	}
}
