// Package theme holds the color palette and shared lipgloss styles.
// The accent palette is switchable at startup via the colorScheme
// setting.
package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Scheme is a named accent palette.
type Scheme struct {
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
}

var schemes = map[string]Scheme{
	"ocean": {
		Primary:   lipgloss.Color("#38BDF8"), // Sky
		Secondary: lipgloss.Color("#14B8A6"), // Teal
		Accent:    lipgloss.Color("#818CF8"), // Indigo
	},
	"sunset": {
		Primary:   lipgloss.Color("#F97316"), // Orange
		Secondary: lipgloss.Color("#F43F5E"), // Rose
		Accent:    lipgloss.Color("#FBBF24"), // Amber
	},
	"forest": {
		Primary:   lipgloss.Color("#22C55E"), // Green
		Secondary: lipgloss.Color("#84CC16"), // Lime
		Accent:    lipgloss.Color("#2DD4BF"), // Teal
	},
}

// SchemeNames returns the selectable scheme names in a stable order.
func SchemeNames() []string {
	return []string{"ocean", "sunset", "forest"}
}

// Color palette
var (
	Primary   = schemes["ocean"].Primary
	Secondary = schemes["ocean"].Secondary
	Accent    = schemes["ocean"].Accent
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Apply switches the accent palette to the named scheme and rebuilds
// the derived styles. Unknown names keep the current palette.
func Apply(name string) {
	s, ok := schemes[name]
	if !ok {
		return
	}
	Primary = s.Primary
	Secondary = s.Secondary
	Accent = s.Accent
	rebuildStyles()
}

// Typography
var (
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Hint     lipgloss.Style
)

// Layout
var (
	Header lipgloss.Style
	Footer lipgloss.Style
	Card   lipgloss.Style
)

// States
var (
	Selected   lipgloss.Style
	Unselected lipgloss.Style
	Good       lipgloss.Style
	Bad        lipgloss.Style
)

// Components
var (
	ProgressFilled lipgloss.Style
	ProgressEmpty  lipgloss.Style
	ButtonActive   lipgloss.Style
	ButtonInactive lipgloss.Style
)

func rebuildStyles() {
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
		Foreground(TextDim).
		Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	Selected = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	Unselected = lipgloss.NewStyle().
		Foreground(Text)

	Good = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Bad = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)

	ProgressFilled = lipgloss.NewStyle().
		Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
		Background(Border)

	ButtonActive = lipgloss.NewStyle().
		Background(Primary).
		Foreground(Text).
		Bold(true).
		Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 2)
}

func init() {
	rebuildStyles()
}
