package render

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/rahardian/soalgen/internal/quiz"
	"github.com/rahardian/soalgen/internal/ui/theme"
)

// AnswerKey renders the kunci jawaban view: one entry per question with
// the key and, when present, the explanation.
func AnswerKey(q *quiz.GeneratedQuiz, width int) string {
	if width < 20 {
		width = 20
	}
	wrap := lipgloss.NewStyle().Width(width)

	var b strings.Builder
	b.WriteString(theme.Title.Width(width).Render("KUNCI JAWABAN"))
	b.WriteString("\n\n")

	for i, question := range q.Questions {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "%s  %s\n",
			theme.Label.Render(fmt.Sprintf("No. %d", question.No)),
			theme.DifficultyStyle(question.Difficulty).Render(question.Difficulty))

		answer := question.CorrectAnswer.String()
		if q.Metadata.Format == quiz.FormatMenjodohkan && len(question.Matches) > 0 {
			answer = matchKey(question.Matches)
		}
		b.WriteString("Jawaban: ")
		b.WriteString(theme.Selected.Render(answer))

		if question.Explanation != "" {
			b.WriteString("\n")
			b.WriteString(wrap.Italic(true).Foreground(theme.TextDim).Render(question.Explanation))
		}
	}
	return b.String()
}

// matchKey renders menjodohkan pairs as "left - right" lines, since the
// pair list itself is the key.
func matchKey(matches []quiz.MatchPair) string {
	parts := make([]string, len(matches))
	for i, m := range matches {
		parts[i] = fmt.Sprintf("%s - %s", m.Left, m.Right)
	}
	return strings.Join(parts, "; ")
}
