package form

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/rahardian/soalgen/internal/ui/theme"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

func (f *FormScreen) View(width, height int) string {
	if f.busy {
		return f.renderBusy(width, height)
	}

	label := theme.Label.Render

	var b strings.Builder
	b.WriteString(label("Mata Pelajaran"))
	b.WriteString("\n")
	b.WriteString(f.subject.View())
	b.WriteString("\n\n")

	phaseRow := lipgloss.JoinHorizontal(lipgloss.Top,
		label("Fase")+"\n"+f.phase.View(),
		"    ",
		label("Kelas")+"\n"+f.grade.View(),
	)
	b.WriteString(phaseRow)
	b.WriteString("\n\n")

	b.WriteString(label("Topik / Materi"))
	b.WriteString("\n")
	b.WriteString(f.topic.View())
	b.WriteString("\n\n")

	formatBlock := label("Format Soal") + "\n" + f.format.View()
	if f.form.Format.HasOptions() {
		formatBlock = lipgloss.JoinHorizontal(lipgloss.Top,
			formatBlock,
			"    ",
			label("Jumlah Opsi")+"\n"+f.optionCount.View(),
		)
	}
	b.WriteString(formatBlock)
	b.WriteString("\n\n")

	b.WriteString(label("Komposisi Kesulitan"))
	b.WriteString("\n")
	for i := range f.diffChecks {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			f.diffChecks[i].View(), "  x ", f.diffCounts[i].View()))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(label("Level Kognitif"))
	b.WriteString("\n")
	var cogs []string
	for i := range f.cogChecks {
		cogs = append(cogs, f.cogChecks[i].View())
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cogs...))
	b.WriteString("\n\n")

	b.WriteString(label("Jenis Pengerjaan"))
	b.WriteString("\n")
	b.WriteString(f.qType.View())
	b.WriteString("\n\n")

	b.WriteString(f.stimulus.View())
	b.WriteString("\n")
	b.WriteString(f.pictorial.View())
	b.WriteString("\n\n")

	b.WriteString(f.generate.View())

	if f.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.ErrorText.Render(f.errMsg))
	}

	content := lipgloss.NewStyle().Padding(1, 2).MaxWidth(width).Render(b.String())
	return clampHeight(content, height)
}

func (f *FormScreen) renderBusy(width, height int) string {
	frame := spinnerFrames[f.spinTick%len(spinnerFrames)]
	msg := theme.Selected.Render(frame) + "  Sedang membuat soal..." + "\n\n" +
		theme.Hint.Render("AI sedang menyusun soal, kunci jawaban, dan kisi-kisi.")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
}

// clampHeight trims content that would overflow the frame.
func clampHeight(content string, height int) string {
	if height <= 0 {
		return content
	}
	lines := strings.Split(content, "\n")
	if len(lines) <= height {
		return content
	}
	return strings.Join(lines[:height], "\n")
}
