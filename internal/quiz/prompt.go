package quiz

import (
	"fmt"
	"strings"

	"github.com/rahardian/soalgen/internal/llm"
)

// Request is a compiled generation request: both prompts plus the JSON
// schema the response must satisfy. Compiling is deterministic and has
// no side effects, so the same form always yields the same request.
type Request struct {
	System string
	Prompt string
	Schema *llm.Schema
}

// Compile turns a form into the full generation request.
func Compile(form FormState) Request {
	return Request{
		System: buildSystemPrompt(form),
		Prompt: buildUserPrompt(form),
		Schema: buildQuizSchema(form),
	}
}

// optionLetters returns "A, B, C" style labels for n options.
func optionLetters(n int) string {
	letters := make([]string, n)
	for i := range letters {
		letters[i] = string(rune('A' + i))
	}
	return strings.Join(letters, ", ")
}

// optionInstruction is the hard option-count rule for PG formats, empty
// for formats without options.
func optionInstruction(form FormState) string {
	if !form.Format.HasOptions() {
		return ""
	}
	count := form.OptionCount
	if count == 0 {
		count = 4
	}
	return fmt.Sprintf("WAJIB membuat tepat %d opsi jawaban (%s).", count, optionLetters(count))
}

// difficultySummary renders the checked tiers as "N soal Mudah, ...".
func difficultySummary(form FormState) string {
	var parts []string
	for _, lvl := range DifficultyLevels() {
		cfg := form.Difficulties[lvl]
		if cfg.Checked {
			parts = append(parts, fmt.Sprintf("%d soal %s", cfg.Count, lvl.Label()))
		}
	}
	return strings.Join(parts, ", ")
}

func buildSystemPrompt(form FormState) string {
	opts := optionInstruction(form)

	var b strings.Builder
	b.WriteString("Anda adalah asisten pembuat soal ujian profesional untuk guru di Indonesia (Kurikulum Merdeka).\n")
	b.WriteString("Tugas Anda adalah membuat soal kuis yang lengkap dengan kisi-kisi dan kunci jawaban dalam format JSON yang valid.\n")
	b.WriteString("\nPanduan Format Soal:\n")
	fmt.Fprintf(&b, "1. **Pilihan Ganda (PG)**: %s\n", opts)
	fmt.Fprintf(&b, "2. **Pilihan Ganda Kompleks**: Mirip PG, tapi kunci jawaban bisa lebih dari satu. %s\n", opts)
	b.WriteString("3. **Benar Salah**: Soal berupa pernyataan.\n")
	b.WriteString("4. **Menjodohkan**: Berikan pasangan premis (kiri) dan respon (kanan).\n")
	b.WriteString("5. **Uraian/Isian Singkat**: Soal pertanyaan langsung.\n")
	b.WriteString("\nJika \"Mode Bergambar\" (pictorialMode) aktif, sertakan deskripsi visual yang detail untuk gambar yang relevan dengan soal di field \"imageDescription\".\n")
	b.WriteString("Jika \"Stimulus\" aktif, sertakan teks stimulus pendek (cerita, data, kasus) di field \"stimulus\".")
	return b.String()
}

func buildUserPrompt(form FormState) string {
	yesNo := func(v bool) string {
		if v {
			return "Ya"
		}
		return "Tidak"
	}

	var b strings.Builder
	b.WriteString("Buatlah kuis dengan spesifikasi berikut:\n")
	fmt.Fprintf(&b, "- Mata Pelajaran: %s\n", form.Subject)
	fmt.Fprintf(&b, "- Fase: %s\n", form.Phase)
	fmt.Fprintf(&b, "- Kelas: %s\n", form.Grade)
	fmt.Fprintf(&b, "- Topik/Materi: %s\n", form.Topic)
	fmt.Fprintf(&b, "- Format Soal: %s\n", form.Format)
	if form.Format.HasOptions() {
		fmt.Fprintf(&b, "- Jumlah Opsi: %d\n", form.OptionCount)
	}
	fmt.Fprintf(&b, "- Komposisi Kesulitan: %s\n", difficultySummary(form))
	fmt.Fprintf(&b, "- Level Kognitif yang digunakan: %s\n", strings.Join(form.CognitiveLevels.Selected(), ", "))
	fmt.Fprintf(&b, "- Jenis Pengerjaan: %s\n", form.QuestionType)
	fmt.Fprintf(&b, "- Menggunakan Stimulus: %s\n", yesNo(form.HasStimulus))
	fmt.Fprintf(&b, "- Mode Bergambar: %s\n", yesNo(form.PictorialMode))

	b.WriteString("\nPastikan output adalah JSON valid sesuai skema.\n")
	if form.Format.HasOptions() {
		fmt.Fprintf(&b, "Field \"options\" hanya diisi untuk Pilihan Ganda / PG Kompleks (Harus array string dengan jumlah %d).\n", form.OptionCount)
	}
	b.WriteString("Field \"matches\" hanya diisi untuk Menjodohkan (array of objects {left: string, right: string}).\n")
	b.WriteString("Field \"correctAnswer\" sesuaikan dengan format (string untuk PG/Uraian, array string untuk PG Kompleks).")
	return b.String()
}
