// Package app wires the TUI together: provider, generator,
// illustration service, and the screen router.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rahardian/soalgen/internal/illustrate"
	"github.com/rahardian/soalgen/internal/llm"
	"github.com/rahardian/soalgen/internal/quiz"
	"github.com/rahardian/soalgen/internal/router"
	"github.com/rahardian/soalgen/internal/screen"
	"github.com/rahardian/soalgen/internal/screens/form"
	"github.com/rahardian/soalgen/internal/ui/layout"
)

// Deps carries everything the TUI needs to run.
type Deps struct {
	Generator     quiz.Generator
	Illustrator   *illustrate.Service
	RequestLog    *llm.RequestLog
	ProviderLabel string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router        *router.Router
	providerLabel string
	width         int
	height        int
}

// newAppModel creates a new AppModel with the form screen.
func newAppModel(deps Deps) AppModel {
	formScreen := form.New(deps.Generator, deps.Illustrator, deps.RequestLog)
	return AppModel{
		router:        router.New(formScreen),
		providerLabel: deps.ProviderLabel,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.providerLabel, m.width)

	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Keluar"},
	}
	if hinting, ok := active.(screen.KeyHintProvider); ok {
		if hints := hinting.KeyHints(); len(hints) > 0 {
			footerHints = append(hints, footerHints...)
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(deps Deps) error {
	p := tea.NewProgram(newAppModel(deps))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
