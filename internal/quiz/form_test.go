package quiz

import (
	"errors"
	"testing"
)

func TestGradesForPhase(t *testing.T) {
	cases := []struct {
		phase  Phase
		grades []string
	}{
		{PhaseA, []string{"1", "2"}},
		{PhaseB, []string{"3", "4"}},
		{PhaseC, []string{"5", "6"}},
		{PhaseD, []string{"7", "8", "9"}},
		{PhaseE, []string{"10"}},
		{PhaseF, []string{"11", "12"}},
	}
	for _, tc := range cases {
		got := GradesForPhase(tc.phase)
		if len(got) != len(tc.grades) {
			t.Fatalf("phase %s: got %v, want %v", tc.phase, got, tc.grades)
		}
		for i := range got {
			if got[i] != tc.grades[i] {
				t.Errorf("phase %s: got %v, want %v", tc.phase, got, tc.grades)
			}
		}
	}
}

func TestWithPhase_SnapsInvalidGrade(t *testing.T) {
	f := NewFormState() // Fase A, kelas 1
	f = f.WithPhase(PhaseD)
	if f.Grade != "7" {
		t.Errorf("expected grade 7 after switching to fase D, got %s", f.Grade)
	}
}

func TestWithPhase_KeepsValidGrade(t *testing.T) {
	f := NewFormState().WithPhase(PhaseD).WithGrade("8")
	f = f.WithPhase(PhaseD)
	if f.Grade != "8" {
		t.Errorf("grade should survive a no-op phase change, got %s", f.Grade)
	}
}

func TestWithGrade_RejectsOutOfPhase(t *testing.T) {
	f := NewFormState() // Fase A
	f = f.WithGrade("10")
	if f.Grade != "1" {
		t.Errorf("grade 10 is not in fase A, expected 1, got %s", f.Grade)
	}
}

func TestWithOptionCount_RejectsInvalid(t *testing.T) {
	f := NewFormState().WithOptionCount(5)
	if f.OptionCount != 5 {
		t.Fatalf("expected 5, got %d", f.OptionCount)
	}
	f = f.WithOptionCount(7)
	if f.OptionCount != 5 {
		t.Errorf("7 options should be rejected, got %d", f.OptionCount)
	}
}

func TestUpdatesArePure(t *testing.T) {
	orig := NewFormState()
	updated := orig.ToggleDifficulty(Mudah).WithDifficultyCount(Mudah, 5)
	if orig.Difficulties[Mudah].Checked || orig.Difficulties[Mudah].Count != 0 {
		t.Error("original form was mutated")
	}
	if !updated.Difficulties[Mudah].Checked || updated.Difficulties[Mudah].Count != 5 {
		t.Error("update not applied to copy")
	}
}

func TestTotalQuestionCount_IgnoresUnchecked(t *testing.T) {
	f := NewFormState().
		ToggleDifficulty(Mudah).WithDifficultyCount(Mudah, 5).
		WithDifficultyCount(Sulit, 3) // not checked
	if got := f.TotalQuestionCount(); got != 5 {
		t.Errorf("expected 5, got %d", got)
	}
}

func TestValidate_RequiresCheckedCount(t *testing.T) {
	f := NewFormState().
		WithSubject("Matematika").
		WithTopic("Pecahan")

	err := f.Validate()
	var formErr *FormError
	if !errors.As(err, &formErr) {
		t.Fatalf("expected FormError, got %v", err)
	}
	if formErr.Msg != "Mohon isi jumlah soal pada setidaknya satu tingkat kesulitan." {
		t.Errorf("unexpected message: %s", formErr.Msg)
	}

	f = f.ToggleDifficulty(Sedang).WithDifficultyCount(Sedang, 10)
	if err := f.Validate(); err != nil {
		t.Errorf("complete form should validate, got %v", err)
	}
}

func TestToggleCognitiveLevel(t *testing.T) {
	f := NewFormState().ToggleCognitiveLevel(0).ToggleCognitiveLevel(3)
	sel := f.CognitiveLevels.Selected()
	if len(sel) != 2 || sel[0] != "C1" || sel[1] != "C4" {
		t.Errorf("expected [C1 C4], got %v", sel)
	}
	f = f.ToggleCognitiveLevel(0)
	if sel := f.CognitiveLevels.Selected(); len(sel) != 1 || sel[0] != "C4" {
		t.Errorf("expected [C4], got %v", sel)
	}
}
