package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/rahardian/soalgen/internal/ui/theme"
)

// Selector cycles through a fixed option list with left/right keys.
type Selector struct {
	Options  []string
	Index    int
	Focused  bool
	OnChange func(index int) tea.Cmd
}

// NewSelector creates a selector over the given options.
func NewSelector(options []string, onChange func(index int) tea.Cmd) Selector {
	return Selector{Options: options, OnChange: onChange}
}

// Update handles left/right cycling while focused.
func (s Selector) Update(msg tea.Msg) (Selector, tea.Cmd) {
	if !s.Focused || len(s.Options) == 0 {
		return s, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "left", "h":
		s.Index = (s.Index + len(s.Options) - 1) % len(s.Options)
	case "right", "l", "space":
		s.Index = (s.Index + 1) % len(s.Options)
	default:
		return s, nil
	}

	if s.OnChange != nil {
		return s, s.OnChange(s.Index)
	}
	return s, nil
}

// View renders the selector as "◂ value ▸".
func (s Selector) View() string {
	if len(s.Options) == 0 {
		return ""
	}
	value := s.Options[s.Index]
	line := fmt.Sprintf("◂ %s ▸", value)
	if s.Focused {
		return theme.Selected.Render("▸ " + line)
	}
	return theme.Unselected.Render("  " + line)
}

// Value returns the selected option text.
func (s Selector) Value() string {
	if len(s.Options) == 0 {
		return ""
	}
	return s.Options[s.Index]
}

// SetOptions replaces the option list, clamping the index.
func (s *Selector) SetOptions(options []string) {
	s.Options = options
	if s.Index >= len(options) {
		s.Index = 0
	}
}

// Select moves the index to the option equal to value, if present.
func (s *Selector) Select(value string) {
	for i, opt := range s.Options {
		if opt == value {
			s.Index = i
			return
		}
	}
}
