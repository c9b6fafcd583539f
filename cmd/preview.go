package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rahardian/soalgen/internal/quiz"
	"github.com/rahardian/soalgen/internal/render"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render a saved quiz JSON without calling the AI",
	Long: `Render a previously generated quiz from a JSON file.

This is a stateless developer tool: no network, no credential needed.
Useful for checking the lembar soal, kunci jawaban, and kisi-kisi layouts.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("file", "", "Path to a quiz JSON file (required)")
	previewCmd.Flags().String("view", "all", "View to render: soal, kunci, kisi, or all")
	previewCmd.Flags().Int("width", 100, "Render width in columns")
	_ = previewCmd.MarkFlagRequired("file")
}

func runPreview(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("file")
	view, _ := cmd.Flags().GetString("view")
	width, _ := cmd.Flags().GetInt("width")

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read quiz file: %w", err)
	}

	var generated quiz.GeneratedQuiz
	if err := json.Unmarshal(data, &generated); err != nil {
		return fmt.Errorf("parse quiz file: %w", err)
	}
	if len(generated.Questions) == 0 {
		return fmt.Errorf("quiz file %s contains no questions", path)
	}

	sep := "\n\n" + strings.Repeat("═", width) + "\n\n"

	var parts []string
	switch strings.ToLower(view) {
	case "soal":
		parts = append(parts, render.Sheet(&generated, width, nil))
	case "kunci":
		parts = append(parts, render.AnswerKey(&generated, width))
	case "kisi":
		parts = append(parts, render.Syllabus(&generated, width))
	case "all":
		parts = append(parts,
			render.Sheet(&generated, width, nil),
			render.AnswerKey(&generated, width),
			render.Syllabus(&generated, width))
	default:
		return fmt.Errorf("invalid view %q: must be soal, kunci, kisi, or all", view)
	}

	fmt.Println(strings.Join(parts, sep))
	return nil
}
