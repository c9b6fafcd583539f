package quiz

import (
	"fmt"
	"strings"

	"github.com/rahardian/soalgen/internal/llm"
)

// buildQuizSchema builds the JSON schema for a quiz generation response.
// The schema is keyed by the form's format: option-list formats require
// an options array of exactly the chosen size, Menjodohkan requires the
// matches array, and Pilihan Ganda Kompleks declares correctAnswer as an
// array of strings where every other format declares a plain string.
func buildQuizSchema(form FormState) *llm.Schema {
	return &llm.Schema{
		Name:        schemaName(form),
		Description: "Generated quiz questions with answer keys and kisi-kisi",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"questions": map[string]any{
					"type":  "array",
					"items": questionSchema(form),
				},
			},
			"required":             []any{"questions"},
			"additionalProperties": false,
		},
	}
}

// schemaName reflects every structural variant, since compiled schemas
// are cached by name.
func schemaName(form FormState) string {
	slug := strings.ToLower(strings.ReplaceAll(string(form.Format), " ", "-"))
	if form.Format.HasOptions() {
		return fmt.Sprintf("quiz-%s-%d", slug, form.OptionCount)
	}
	return "quiz-" + slug
}

func questionSchema(form FormState) map[string]any {
	props := map[string]any{
		"no": map[string]any{
			"type":        "integer",
			"description": "Question number, starting at 1",
		},
		"id": map[string]any{
			"type": "string",
		},
		"text": map[string]any{
			"type":        "string",
			"description": "The question statement shown to the student",
		},
		"correctAnswer": answerSchema(form),
		"explanation": map[string]any{
			"type": "string",
		},
		"difficulty": map[string]any{
			"type": "string",
			"enum": []any{"Mudah", "Sedang", "Sulit"},
		},
		"cognitiveLevel": map[string]any{
			"type":        "string",
			"description": "Bloom level, e.g. C1",
		},
		"syllabus": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"tujuanPembelajaran": map[string]any{"type": "string"},
				"materiPokok":        map[string]any{"type": "string"},
				"indikatorSoal":      map[string]any{"type": "string"},
			},
			"required":             []any{"tujuanPembelajaran", "materiPokok", "indikatorSoal"},
			"additionalProperties": false,
		},
		"stimulus": map[string]any{
			"type":        "string",
			"description": "Short stimulus text (story, data, case) when requested",
		},
		"imageDescription": map[string]any{
			"type":        "string",
			"description": "Detailed visual description for an illustration when pictorial mode is on",
		},
	}

	required := []any{"no", "text", "correctAnswer", "difficulty", "cognitiveLevel", "syllabus"}

	if form.Format.HasOptions() {
		props["options"] = map[string]any{
			"type":        "array",
			"items":       map[string]any{"type": "string"},
			"minItems":    form.OptionCount,
			"maxItems":    form.OptionCount,
			"description": fmt.Sprintf("Exactly %d answer options (%s)", form.OptionCount, optionLetters(form.OptionCount)),
		}
		required = append(required, "options")
	}

	if form.Format == FormatMenjodohkan {
		props["matches"] = map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"left":  map[string]any{"type": "string"},
					"right": map[string]any{"type": "string"},
				},
				"required":             []any{"left", "right"},
				"additionalProperties": false,
			},
			"description": "Premise (left) and response (right) pairs",
		}
		required = append(required, "matches")
	}

	return map[string]any{
		"type":                 "object",
		"properties":           props,
		"required":             required,
		"additionalProperties": false,
	}
}

func answerSchema(form FormState) map[string]any {
	if form.Format == FormatPGKompleks {
		return map[string]any{
			"type":        "array",
			"items":       map[string]any{"type": "string"},
			"minItems":    1,
			"description": "All correct options",
		}
	}
	return map[string]any{
		"type":        "string",
		"description": "The answer key",
	}
}
