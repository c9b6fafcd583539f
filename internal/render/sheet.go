// Package render turns a generated quiz into the three printable views:
// lembar soal, kunci jawaban, and kisi-kisi. All renderers are pure
// functions of the quiz snapshot, so re-rendering never drifts from the
// generated data.
package render

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/rahardian/soalgen/internal/quiz"
	"github.com/rahardian/soalgen/internal/ui/theme"
)

// Sheet renders the lembar soal view. images maps question IDs to
// finished illustration data URIs; questions with a pending or failed
// illustration get a placeholder note instead.
func Sheet(q *quiz.GeneratedQuiz, width int, images map[string]string) string {
	if width < 20 {
		width = 20
	}
	wrap := lipgloss.NewStyle().Width(width)

	var b strings.Builder
	b.WriteString(sheetHeader(q, width))
	b.WriteString("\n\n")

	for i, question := range q.Questions {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(renderQuestion(&question, q.Metadata.Format, wrap, images))
	}
	return b.String()
}

func sheetHeader(q *quiz.GeneratedQuiz, width int) string {
	title := theme.Title.Width(width).Render(strings.ToUpper("Soal " + q.Metadata.Subject))
	sub := theme.Subtitle.Width(width).Render(fmt.Sprintf(
		"Kelas: %s (Fase %s)  •  Topik: %s", q.Metadata.Grade, q.Metadata.Phase, q.Metadata.Topic))
	return title + "\n" + sub
}

func renderQuestion(question *quiz.Question, format quiz.Format, wrap lipgloss.Style, images map[string]string) string {
	var b strings.Builder

	badge := theme.DifficultyStyle(question.Difficulty).Render(question.Difficulty)
	fmt.Fprintf(&b, "%s  %s %s\n",
		theme.Label.Render(fmt.Sprintf("No. %d", question.No)),
		badge,
		theme.Hint.Render(question.CognitiveLevel))

	if question.Stimulus != "" {
		b.WriteString(theme.Hint.Render("Stimulus:"))
		b.WriteString("\n")
		b.WriteString(wrap.Italic(true).Render(question.Stimulus))
		b.WriteString("\n\n")
	}

	if question.ImageDescription != "" {
		note := "ilustrasi belum tersedia"
		if _, ok := images[question.ID]; ok {
			note = "ilustrasi siap"
		}
		b.WriteString(theme.Hint.Render(fmt.Sprintf("[Gambar: %s] (%s)", question.ImageDescription, note)))
		b.WriteString("\n\n")
	}

	b.WriteString(wrap.Render(question.Text))
	b.WriteString("\n")
	b.WriteString(renderAnswerArea(question, format))
	return b.String()
}

func renderAnswerArea(question *quiz.Question, format quiz.Format) string {
	var b strings.Builder
	switch format {
	case quiz.FormatPG, quiz.FormatPGKompleks:
		for i, opt := range question.Options {
			fmt.Fprintf(&b, "  %c. %s\n", 'A'+i, opt)
		}
	case quiz.FormatBenarSalah:
		b.WriteString("  [ ] Benar    [ ] Salah\n")
	case quiz.FormatMenjodohkan:
		b.WriteString(theme.Label.Render("  Premis"))
		b.WriteString("\n")
		for i, m := range question.Matches {
			fmt.Fprintf(&b, "    %d. %s\n", i+1, m.Left)
		}
		b.WriteString(theme.Label.Render("  Respon"))
		b.WriteString("\n")
		for _, m := range question.Matches {
			fmt.Fprintf(&b, "    ( ) %s\n", m.Right)
		}
	default: // Uraian, Isian Singkat
		b.WriteString("  Jawaban:\n")
		for range 3 {
			b.WriteString("  " + strings.Repeat(".", 40) + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
