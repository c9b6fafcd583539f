package render

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/rahardian/soalgen/internal/quiz"
	"github.com/rahardian/soalgen/internal/ui/theme"
)

// Syllabus renders the kisi-kisi table. The column set is keyed by the
// quiz format, matching the standard kisi-kisi layout teachers file.
func Syllabus(q *quiz.GeneratedQuiz, width int) string {
	if width < 40 {
		width = 40
	}

	headers := syllabusHeaders(q.Metadata.Format)
	rows := make([][]string, 0, len(q.Questions))
	for _, question := range q.Questions {
		rows = append(rows, syllabusRow(&question, q.Metadata.Format))
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		Headers(headers...).
		Rows(rows...).
		Width(width).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return theme.Label.Padding(0, 1)
			}
			return theme.Body.Padding(0, 1)
		})

	title := theme.Title.Width(width).Render("KISI-KISI PENULISAN SOAL")
	return title + "\n" + t.String()
}

func syllabusHeaders(format quiz.Format) []string {
	base := []string{"No", "Tujuan Pembelajaran", "Materi Pokok", "Indikator Soal", "Level Kog"}
	switch format {
	case quiz.FormatPG, quiz.FormatPGKompleks:
		return append(base, "Rumusan Soal", "Opsi", "Kunci Jawaban")
	case quiz.FormatBenarSalah:
		return append(base, "Rumusan Soal", "Kunci Jawaban", "Alasan")
	case quiz.FormatMenjodohkan:
		return append(base, "Rumusan Soal (Premis - Respon)", "Kunci Jawaban")
	default:
		return append(base, "Rumusan Soal", "Kunci Jawaban")
	}
}

func syllabusRow(question *quiz.Question, format quiz.Format) []string {
	base := []string{
		fmt.Sprintf("%d", question.No),
		question.Syllabus.TujuanPembelajaran,
		question.Syllabus.MateriPokok,
		question.Syllabus.IndikatorSoal,
		question.CognitiveLevel,
	}
	switch format {
	case quiz.FormatPG, quiz.FormatPGKompleks:
		var opts []string
		for i, opt := range question.Options {
			opts = append(opts, fmt.Sprintf("%c. %s", 'A'+i, opt))
		}
		return append(base, question.Text, strings.Join(opts, "\n"), question.CorrectAnswer.String())
	case quiz.FormatBenarSalah:
		return append(base, question.Text, question.CorrectAnswer.String(), question.Explanation)
	case quiz.FormatMenjodohkan:
		var pairs []string
		for _, m := range question.Matches {
			pairs = append(pairs, fmt.Sprintf("%s - %s", m.Left, m.Right))
		}
		return append(base, strings.Join(pairs, "\n"), "Terlampir di Rumusan")
	default:
		return append(base, question.Text, question.CorrectAnswer.String())
	}
}
