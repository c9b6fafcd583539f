package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/rahardian/soalgen/internal/ui/theme"
)

// Tabs is a horizontal tab bar switched with tab/shift+tab or 1..9.
type Tabs struct {
	Labels []string
	Active int
}

// NewTabs creates a tab bar.
func NewTabs(labels ...string) Tabs {
	return Tabs{Labels: labels}
}

// Update handles tab switching.
func (t Tabs) Update(msg tea.Msg) (Tabs, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return t, nil
	}

	switch key := kmsg.String(); key {
	case "tab":
		t.Active = (t.Active + 1) % len(t.Labels)
	case "shift+tab":
		t.Active = (t.Active + len(t.Labels) - 1) % len(t.Labels)
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			i := int(key[0] - '1')
			if i < len(t.Labels) {
				t.Active = i
			}
		}
	}
	return t, nil
}

// View renders the tab bar.
func (t Tabs) View() string {
	parts := make([]string, 0, len(t.Labels))
	for i, label := range t.Labels {
		if i == t.Active {
			parts = append(parts, theme.TabActive.Render(label))
		} else {
			parts = append(parts, theme.TabInactive.Render(label))
		}
	}
	return strings.Join(parts, " ")
}
