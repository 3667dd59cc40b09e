// Package library is the piece catalog screen: a searchable,
// filterable, sortable list that opens the practice timer, the piece
// editor, and deletion.
package library

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
	"github.com/jkeller/etude/internal/screens/editor"
	practicescreen "github.com/jkeller/etude/internal/screens/practicesession"
	"github.com/jkeller/etude/internal/store"
	"github.com/jkeller/etude/internal/ui/components"
	"github.com/jkeller/etude/internal/ui/layout"
	"github.com/jkeller/etude/internal/ui/theme"
	"github.com/jkeller/etude/internal/youtube"
)

type catalogLoadedMsg struct {
	pieces []piece.Piece
	log    practice.Log
	err    error
}

// LibraryScreen lists the catalog and dispatches piece actions.
type LibraryScreen struct {
	st *store.Store

	pieces []piece.Piece
	log    practice.Log

	// visible is the current query result. It is recomputed only when
	// the query inputs change, so a random order stays put until the
	// user shuffles again.
	visible []piece.Piece

	search     components.TextInput
	searching  bool
	difficulty piece.Difficulty // zero value means no filter
	status     milestone.Status // empty means no filter
	sort       piece.SortMode
	reverse    bool

	selected  int
	confirm   bool // pending delete confirmation
	loaded    bool
	errMsg    string
	statusMsg string
}

var _ screen.Screen = (*LibraryScreen)(nil)
var _ screen.KeyHintProvider = (*LibraryScreen)(nil)

// New creates the library screen backed by the store.
func New(st *store.Store) *LibraryScreen {
	return &LibraryScreen{
		st:     st,
		search: components.NewTextInput("search title or artist", false, 64),
		sort:   piece.SortDefault,
	}
}

func (s *LibraryScreen) Init() tea.Cmd {
	return s.reload()
}

func (s *LibraryScreen) reload() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		pieces, err := s.st.PieceRepo().List(ctx)
		if err != nil {
			return catalogLoadedMsg{err: err}
		}
		log, err := s.st.SessionRepo().Log(ctx)
		if err != nil {
			return catalogLoadedMsg{err: err}
		}
		return catalogLoadedMsg{pieces: pieces, log: log}
	}
}

// requery reruns the catalog query with the current inputs.
func (s *LibraryScreen) requery() {
	opts := piece.QueryOpts{
		Search:  s.search.Value(),
		Sort:    s.sort,
		Reverse: s.reverse,
	}
	if s.difficulty != piece.DifficultyUnknown {
		opts.Difficulties = []piece.Difficulty{s.difficulty}
	}
	if s.status != "" {
		opts.Statuses = []milestone.Status{s.status}
	}

	s.visible = piece.Query(s.pieces, s.log, opts, time.Now())
	if s.selected >= len(s.visible) {
		s.selected = len(s.visible) - 1
	}
	if s.selected < 0 {
		s.selected = 0
	}
}

func (s *LibraryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case catalogLoadedMsg:
		if msg.err != nil {
			s.errMsg = msg.err.Error()
		} else {
			s.pieces = msg.pieces
			s.log = msg.log
			s.requery()
		}
		s.loaded = true
		return s, nil

	case pieceDeletedMsg:
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			return s, nil
		}
		s.statusMsg = fmt.Sprintf("Deleted %q", msg.title)
		return s, s.reload()

	case editor.SavedMsg:
		s.statusMsg = fmt.Sprintf("Saved %q", msg.Title)
		return s, s.reload()

	case practicescreen.RecordedMsg:
		s.statusMsg = ""
		return s, s.reload()

	case tea.KeyMsg:
		if s.searching {
			return s.updateSearch(msg)
		}
		return s.updateList(msg)
	}
	return s, nil
}

func (s *LibraryScreen) updateSearch(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		s.searching = false
		s.requery()
		return s, nil
	}
	var cmd tea.Cmd
	s.search, cmd = s.search.Update(msg)
	s.requery()
	return s, cmd
}

func (s *LibraryScreen) updateList(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.confirm {
		switch msg.String() {
		case "y":
			s.confirm = false
			return s, s.deleteSelected()
		default:
			s.confirm = false
			s.statusMsg = ""
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
		if s.selected < len(s.visible)-1 {
			s.selected++
		}
	case "/":
		s.searching = true
		return s, s.search.Init()
	case "f":
		s.difficulty = nextDifficulty(s.difficulty)
		s.requery()
	case "m":
		s.status = nextStatus(s.status)
		s.requery()
	case "o":
		s.sort = nextSortMode(s.sort)
		s.requery()
	case "r":
		s.reverse = !s.reverse
		s.requery()
	case "a":
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: editor.New(s.st, nil)}
		}
	case "e":
		if p := s.current(); p != nil {
			edit := *p
			return s, func() tea.Msg {
				return router.PushScreenMsg{Screen: editor.New(s.st, &edit)}
			}
		}
	case "d":
		if s.current() != nil {
			s.confirm = true
			s.statusMsg = fmt.Sprintf("Delete %q? (y/n)", s.current().Title)
		}
	case "enter":
		if p := s.current(); p != nil {
			open := *p
			return s, func() tea.Msg {
				return router.PushScreenMsg{Screen: practicescreen.New(s.st, open)}
			}
		}
	}
	return s, nil
}

func (s *LibraryScreen) current() *piece.Piece {
	if s.selected < 0 || s.selected >= len(s.visible) {
		return nil
	}
	return &s.visible[s.selected]
}

type pieceDeletedMsg struct {
	title string
	err   error
}

func (s *LibraryScreen) deleteSelected() tea.Cmd {
	p := s.current()
	if p == nil {
		return nil
	}
	id, title := p.ID, p.Title
	return func() tea.Msg {
		err := s.st.PieceRepo().Delete(context.Background(), id)
		return pieceDeletedMsg{title: title, err: err}
	}
}

func (s *LibraryScreen) Title() string {
	return "Library"
}

func (s *LibraryScreen) KeyHints() []layout.KeyHint {
	if s.searching {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Done"},
			{Key: "Esc", Description: "Close search"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Practice"},
		{Key: "a", Description: "Add"},
		{Key: "e", Description: "Edit"},
		{Key: "d", Description: "Delete"},
		{Key: "/", Description: "Search"},
		{Key: "f/m/o/r", Description: "Filter/Sort"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *LibraryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render("\n\nError: " + s.errMsg)
	}
	if !s.loaded {
		return theme.Hint.Width(width).Align(lipgloss.Center).
			Render("\n\n  Loading library...")
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + s.renderToolbar() + "\n\n")

	if len(s.visible) == 0 {
		b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).
			Render("No pieces match. Press 'a' to add one."))
		return b.String()
	}

	// Leave room for the toolbar and status line.
	maxRows := height - 5
	if maxRows < 1 {
		maxRows = 1
	}
	start := 0
	if s.selected >= maxRows {
		start = s.selected - maxRows + 1
	}

	for i := start; i < len(s.visible) && i < start+maxRows; i++ {
		b.WriteString(s.renderRow(i, width) + "\n")
	}

	if s.statusMsg != "" {
		b.WriteString("\n  " + theme.Hint.Render(s.statusMsg))
	}
	return b.String()
}

func (s *LibraryScreen) renderToolbar() string {
	parts := []string{fmt.Sprintf("sort:%s", s.sort)}
	if s.reverse {
		parts = append(parts, "reversed")
	}
	if s.difficulty != piece.DifficultyUnknown {
		parts = append(parts, "difficulty:"+s.difficulty.DisplayName())
	}
	if s.status != "" {
		parts = append(parts, "status:"+s.status.DisplayName())
	}
	if s.searching || s.search.Value() != "" {
		parts = append(parts, "search:"+s.search.View())
	}
	return theme.Hint.Render(strings.Join(parts, "  "))
}

func (s *LibraryScreen) renderRow(i, width int) string {
	p := s.visible[i]

	prefix := "  "
	if i == s.selected {
		prefix = "▸ "
	}

	status := p.Status()
	total := 0
	for _, sess := range s.log.ForPiece(p.ID) {
		total += sess.Duration
	}

	line := fmt.Sprintf("%s%s %-28s %-18s %-10s %s",
		prefix, status.Icon(), truncate(p.Title, 28), truncate(p.Artist, 18),
		p.Difficulty.DisplayName(), youtube.FormatDuration(total))

	style := lipgloss.NewStyle().Foreground(theme.Text)
	if i == s.selected {
		style = theme.Selected
	}
	if width > 0 && lipgloss.Width(line) > width {
		line = truncate(line, width)
	}
	return style.Render(line)
}

// truncate shortens user text by runes so multibyte titles are never
// cut mid-character.
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

// nextDifficulty cycles no-filter through each difficulty and back.
func nextDifficulty(d piece.Difficulty) piece.Difficulty {
	all := piece.AllDifficulties()
	if d == piece.DifficultyUnknown {
		return all[0]
	}
	for i, cand := range all {
		if cand == d {
			if i == len(all)-1 {
				return piece.DifficultyUnknown
			}
			return all[i+1]
		}
	}
	return piece.DifficultyUnknown
}

func nextStatus(st milestone.Status) milestone.Status {
	all := milestone.AllStatuses()
	if st == "" {
		return all[0]
	}
	for i, cand := range all {
		if cand == st {
			if i == len(all)-1 {
				return ""
			}
			return all[i+1]
		}
	}
	return ""
}

func nextSortMode(m piece.SortMode) piece.SortMode {
	all := piece.AllSortModes()
	for i, cand := range all {
		if cand == m {
			return all[(i+1)%len(all)]
		}
	}
	return piece.SortDefault
}
