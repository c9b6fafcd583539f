package components

import (
	tea "charm.land/bubbletea/v2"

	"github.com/rahardian/soalgen/internal/ui/theme"
)

// Checkbox is a single toggle with a label.
type Checkbox struct {
	Label    string
	Checked  bool
	Focused  bool
	OnToggle func(checked bool) tea.Cmd
}

// NewCheckbox creates a checkbox.
func NewCheckbox(label string, checked bool, onToggle func(checked bool) tea.Cmd) Checkbox {
	return Checkbox{Label: label, Checked: checked, OnToggle: onToggle}
}

// Update toggles on space or enter while focused.
func (c Checkbox) Update(msg tea.Msg) (Checkbox, tea.Cmd) {
	if !c.Focused {
		return c, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "space", "enter":
		c.Checked = !c.Checked
		if c.OnToggle != nil {
			return c, c.OnToggle(c.Checked)
		}
	}
	return c, nil
}

// View renders "[x] label".
func (c Checkbox) View() string {
	box := "[ ]"
	if c.Checked {
		box = "[x]"
	}
	line := box + " " + c.Label
	if c.Focused {
		return theme.Selected.Render("▸ " + line)
	}
	return theme.Unselected.Render("  " + line)
}
