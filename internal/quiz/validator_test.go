package quiz

import (
	"strings"
	"testing"
)

func validPGQuestion() Question {
	return Question{
		No:             1,
		ID:             "q-1",
		Text:           "Berapakah 1/2 + 1/4?",
		Options:        []string{"1/4", "2/4", "3/4", "4/4"},
		CorrectAnswer:  SingleAnswer("3/4"),
		Difficulty:     "Mudah",
		CognitiveLevel: "C2",
		Syllabus: Syllabus{
			TujuanPembelajaran: "Menjumlahkan pecahan berpenyebut berbeda",
			MateriPokok:        "Pecahan",
			IndikatorSoal:      "Siswa dapat menjumlahkan dua pecahan sederhana",
		},
	}
}

func TestStructural_ValidPGPasses(t *testing.T) {
	v := &StructuralValidator{}
	q := validPGQuestion()
	if err := v.Validate(&q, sampleForm()); err != nil {
		t.Errorf("valid question rejected: %v", err)
	}
}

func TestStructural_OptionCountMismatch(t *testing.T) {
	v := &StructuralValidator{}
	q := validPGQuestion()
	q.Options = q.Options[:3]
	err := v.Validate(&q, sampleForm())
	if err == nil {
		t.Fatal("expected option count failure")
	}
	if !err.Retryable {
		t.Error("option count mismatch should be retryable")
	}
	if !strings.Contains(err.Message, "expected 4 options") {
		t.Errorf("unexpected message: %s", err.Message)
	}
}

func TestStructural_OptionsForbiddenOutsidePG(t *testing.T) {
	v := &StructuralValidator{}
	q := validPGQuestion()
	if err := v.Validate(&q, sampleForm().WithFormat(FormatUraian)); err == nil {
		t.Error("options on an uraian question should fail")
	}
}

func TestStructural_MenjodohkanNeedsMatches(t *testing.T) {
	v := &StructuralValidator{}
	form := sampleForm().WithFormat(FormatMenjodohkan)

	q := validPGQuestion()
	q.Options = nil
	if err := v.Validate(&q, form); err == nil {
		t.Fatal("menjodohkan without matches should fail")
	}

	q.Matches = []MatchPair{{Left: "Jakarta", Right: "Indonesia"}}
	if err := v.Validate(&q, form); err != nil {
		t.Errorf("menjodohkan with matches rejected: %v", err)
	}
}

func TestStructural_MultipleAnswersOnlyForKompleks(t *testing.T) {
	v := &StructuralValidator{}
	q := validPGQuestion()
	q.CorrectAnswer = MultiAnswer("1/4", "3/4")

	if err := v.Validate(&q, sampleForm()); err == nil {
		t.Error("array answer on plain PG should fail")
	}
	if err := v.Validate(&q, sampleForm().WithFormat(FormatPGKompleks)); err != nil {
		t.Errorf("array answer on PG Kompleks rejected: %v", err)
	}
}

func TestStructural_BadDifficulty(t *testing.T) {
	v := &StructuralValidator{}
	q := validPGQuestion()
	q.Difficulty = "Gampang"
	if err := v.Validate(&q, sampleForm()); err == nil {
		t.Error("unknown difficulty label should fail")
	}
}

func TestStructural_IncompleteSyllabus(t *testing.T) {
	v := &StructuralValidator{}
	q := validPGQuestion()
	q.Syllabus.IndikatorSoal = ""
	if err := v.Validate(&q, sampleForm()); err == nil {
		t.Error("incomplete syllabus should fail")
	}
}
