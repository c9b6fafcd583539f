package quiz

import (
	"encoding/json"
	"fmt"
	"strings"
)

// AnswerKey is a question's correct answer. Pilihan Ganda Kompleks
// questions carry several answers; every other format carries one.
// Both JSON shapes (a string or an array of strings) unmarshal into it,
// and the original shape is preserved on marshal.
type AnswerKey struct {
	Values   []string
	Multiple bool
}

// SingleAnswer builds a scalar key.
func SingleAnswer(v string) AnswerKey {
	return AnswerKey{Values: []string{v}}
}

// MultiAnswer builds an array key.
func MultiAnswer(vs ...string) AnswerKey {
	return AnswerKey{Values: vs, Multiple: true}
}

func (a *AnswerKey) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		a.Values = []string{s}
		a.Multiple = false
		return nil
	}
	var vs []string
	if err := json.Unmarshal(data, &vs); err != nil {
		return fmt.Errorf("correctAnswer must be a string or an array of strings: %w", err)
	}
	a.Values = vs
	a.Multiple = true
	return nil
}

func (a AnswerKey) MarshalJSON() ([]byte, error) {
	if a.Multiple {
		return json.Marshal(a.Values)
	}
	if len(a.Values) == 0 {
		return json.Marshal("")
	}
	return json.Marshal(a.Values[0])
}

// IsEmpty reports whether no answer value is present.
func (a AnswerKey) IsEmpty() bool {
	if len(a.Values) == 0 {
		return true
	}
	for _, v := range a.Values {
		if v != "" {
			return false
		}
	}
	return true
}

// String joins multiple answers with ", " for display.
func (a AnswerKey) String() string {
	return strings.Join(a.Values, ", ")
}

// MatchPair is one premise/response pair of a Menjodohkan question.
type MatchPair struct {
	Left  string `json:"left"`
	Right string `json:"right"`
}

// Syllabus is the kisi-kisi entry attached to every question.
type Syllabus struct {
	TujuanPembelajaran string `json:"tujuanPembelajaran"`
	MateriPokok        string `json:"materiPokok"`
	IndikatorSoal      string `json:"indikatorSoal"`
}

// Question is one generated exam item.
type Question struct {
	No               int         `json:"no"`
	ID               string      `json:"id"`
	Text             string      `json:"text"`
	Options          []string    `json:"options,omitempty"`
	Matches          []MatchPair `json:"matches,omitempty"`
	CorrectAnswer    AnswerKey   `json:"correctAnswer"`
	Explanation      string      `json:"explanation,omitempty"`
	Difficulty       string      `json:"difficulty"`
	CognitiveLevel   string      `json:"cognitiveLevel"`
	Syllabus         Syllabus    `json:"syllabus"`
	Stimulus         string      `json:"stimulus,omitempty"`
	ImageDescription string      `json:"imageDescription,omitempty"`
}

// GeneratedQuiz couples the questions with a snapshot of the form that
// produced them, so presenters never depend on live form state.
type GeneratedQuiz struct {
	Metadata  FormState  `json:"metadata"`
	Questions []Question `json:"questions"`
}
