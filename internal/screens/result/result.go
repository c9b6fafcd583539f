// Package result shows a generated quiz in its three views and tracks
// illustration delivery.
package result

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rahardian/soalgen/internal/illustrate"
	"github.com/rahardian/soalgen/internal/llm"
	"github.com/rahardian/soalgen/internal/quiz"
	"github.com/rahardian/soalgen/internal/render"
	"github.com/rahardian/soalgen/internal/router"
	"github.com/rahardian/soalgen/internal/screen"
	"github.com/rahardian/soalgen/internal/ui/components"
	"github.com/rahardian/soalgen/internal/ui/layout"
	"github.com/rahardian/soalgen/internal/ui/theme"
)

const pollInterval = 500 * time.Millisecond

// illustrationPollMsg asks the screen to collect finished illustrations.
type illustrationPollMsg time.Time

const (
	tabSheet = iota
	tabAnswerKey
	tabSyllabus
)

// ResultScreen implements screen.Screen for the generated quiz.
type ResultScreen struct {
	quiz        *quiz.GeneratedQuiz
	illustrator *illustrate.Service
	reqLog      *llm.RequestLog

	tabs    components.Tabs
	images  map[string]string
	failed  map[string]error
	pending int
	scroll  int
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)

// New creates the result screen. pending illustration requests are
// polled until every pictorial question has an outcome.
func New(generated *quiz.GeneratedQuiz, illustrator *illustrate.Service, reqLog *llm.RequestLog) *ResultScreen {
	pending := 0
	if illustrator.Enabled() {
		for _, q := range generated.Questions {
			if q.ImageDescription != "" {
				pending++
			}
		}
	}

	return &ResultScreen{
		quiz:        generated,
		illustrator: illustrator,
		reqLog:      reqLog,
		tabs:        components.NewTabs("Lembar Soal", "Kunci Jawaban", "Kisi-Kisi"),
		images:      map[string]string{},
		failed:      map[string]error{},
		pending:     pending,
	}
}

func (r *ResultScreen) Init() tea.Cmd {
	if r.pending > 0 {
		return pollIllustrations()
	}
	return nil
}

func (r *ResultScreen) Title() string {
	return "Hasil: " + r.quiz.Metadata.Subject
}

func (r *ResultScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Ganti tampilan"},
		{Key: "↑/↓", Description: "Gulir"},
		{Key: "N", Description: "Soal baru"},
		{Key: "Esc", Description: "Kembali"},
	}
}

func (r *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case illustrationPollMsg:
		for _, res := range r.illustrator.Consume() {
			r.pending--
			if res.Err != nil {
				r.failed[res.QuestionID] = res.Err
			} else {
				r.images[res.QuestionID] = res.DataURI
			}
		}
		if r.pending > 0 {
			return r, pollIllustrations()
		}
		return r, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if r.scroll > 0 {
				r.scroll--
			}
			return r, nil
		case "down", "j":
			r.scroll++
			return r, nil
		case "pgup":
			r.scroll -= 10
			if r.scroll < 0 {
				r.scroll = 0
			}
			return r, nil
		case "pgdown":
			r.scroll += 10
			return r, nil
		case "n":
			return r, func() tea.Msg { return router.PopScreenMsg{} }
		}

		prev := r.tabs.Active
		var cmd tea.Cmd
		r.tabs, cmd = r.tabs.Update(msg)
		if r.tabs.Active != prev {
			r.scroll = 0
		}
		return r, cmd
	}

	return r, nil
}

func (r *ResultScreen) View(width, height int) string {
	contentWidth := width - 4
	if contentWidth < 20 {
		contentWidth = 20
	}

	var body string
	switch r.tabs.Active {
	case tabAnswerKey:
		body = render.AnswerKey(r.quiz, contentWidth)
	case tabSyllabus:
		body = render.Syllabus(r.quiz, contentWidth)
	default:
		body = render.Sheet(r.quiz, contentWidth, r.images)
	}

	header := r.tabs.View() + "\n" + r.statusLine() + "\n"
	bodyHeight := height - lipgloss.Height(header)
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	lines := strings.Split(body, "\n")
	maxScroll := len(lines) - bodyHeight
	if maxScroll < 0 {
		maxScroll = 0
	}
	if r.scroll > maxScroll {
		r.scroll = maxScroll
	}
	end := r.scroll + bodyHeight
	if end > len(lines) {
		end = len(lines)
	}
	visible := strings.Join(lines[r.scroll:end], "\n")

	content := header + visible
	return lipgloss.NewStyle().Padding(0, 2).MaxWidth(width).Render(content)
}

// statusLine summarizes illustrations and token usage under the tabs.
func (r *ResultScreen) statusLine() string {
	var parts []string

	if len(r.images) > 0 || len(r.failed) > 0 || r.pending > 0 {
		parts = append(parts, fmt.Sprintf("Ilustrasi: %d siap, %d gagal, %d diproses",
			len(r.images), len(r.failed), r.pending))
	}

	if r.reqLog != nil {
		usage := r.reqLog.TotalUsage()
		if usage.TotalTokens > 0 {
			line := fmt.Sprintf("Token: %d masuk / %d keluar", usage.InputTokens, usage.OutputTokens)
			if rec, ok := r.reqLog.Last(); ok {
				if cost := llm.LookupCost(rec.Model); cost != nil {
					line += fmt.Sprintf("  (~$%.4f)", cost.Cost(usage.InputTokens, usage.OutputTokens))
				}
			}
			parts = append(parts, line)
		}
	}

	if len(parts) == 0 {
		return ""
	}
	return theme.Hint.Render(strings.Join(parts, "   •   "))
}

func pollIllustrations() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg {
		return illustrationPollMsg(t)
	})
}
