package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jkeller/etude/internal/ui/theme"
)

// ChecklistItem is one toggleable entry in a Checklist.
type ChecklistItem struct {
	Label   string
	Checked bool
}

// Checklist is a vertical list of toggleable items.
type Checklist struct {
	Items    []ChecklistItem
	Selected int
	OnToggle func(index int, checked bool) tea.Cmd
}

// NewChecklist creates a checklist with the given items.
func NewChecklist(items []ChecklistItem) Checklist {
	return Checklist{Items: items}
}

// Init returns nil.
func (c Checklist) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and toggling.
func (c Checklist) Update(msg tea.Msg) (Checklist, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "j":
		if c.Selected < len(c.Items)-1 {
			c.Selected++
		}
	case "enter", "space":
		if c.Selected >= 0 && c.Selected < len(c.Items) {
			c.Items[c.Selected].Checked = !c.Items[c.Selected].Checked
			if c.OnToggle != nil {
				return c, c.OnToggle(c.Selected, c.Items[c.Selected].Checked)
			}
		}
	}

	return c, nil
}

// CheckedCount returns how many items are checked.
func (c Checklist) CheckedCount() int {
	n := 0
	for _, item := range c.Items {
		if item.Checked {
			n++
		}
	}
	return n
}

// View renders the checklist.
func (c Checklist) View() string {
	var s string
	for i, item := range c.Items {
		box := "[ ]"
		if item.Checked {
			box = "[x]"
		}

		prefix := "  "
		if i == c.Selected {
			prefix = "▸ "
		}
		line := prefix + box + " " + item.Label

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if item.Checked {
			style = lipgloss.NewStyle().Foreground(theme.Success)
		}
		if i == c.Selected {
			style = style.Bold(true)
			if !item.Checked {
				style = style.Foreground(theme.Primary)
			}
		}
		s += style.Render(line) + "\n"
	}
	return s
}
