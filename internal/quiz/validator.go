package quiz

import "fmt"

// Validator checks a generated question for correctness.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for this validator (for error
	// messages and logging), e.g. "structural", "answer-format".
	Name() string

	// Validate checks the question and returns nil if it passes.
	// The validator receives the originating form for context (format,
	// option count, selected difficulties).
	Validate(q *Question, form FormState) *ValidationError
}

// ValidationError describes why a question failed validation.
type ValidationError struct {
	Validator  string // Name of the validator that failed
	QuestionNo int    // Number of the offending question, 0 if unknown
	Message    string // Human-readable description of the failure
	Retryable  bool   // Whether regeneration is likely to fix this
}

func (e *ValidationError) Error() string {
	if e.QuestionNo > 0 {
		return fmt.Sprintf("validator %q: soal %d: %s", e.Validator, e.QuestionNo, e.Message)
	}
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// StructuralValidator checks that required fields are present and that
// the format-specific fields (options, matches, answer shape) agree
// with the form that requested the quiz.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *Question, form FormState) *ValidationError {
	fail := func(msg string) *ValidationError {
		return &ValidationError{
			Validator:  v.Name(),
			QuestionNo: q.No,
			Message:    msg,
			Retryable:  true,
		}
	}

	if q.Text == "" {
		return fail("text is empty")
	}
	if q.CorrectAnswer.IsEmpty() {
		return fail("correctAnswer is empty")
	}
	switch q.Difficulty {
	case "Mudah", "Sedang", "Sulit":
	default:
		return fail(fmt.Sprintf("difficulty %q is not Mudah, Sedang, or Sulit", q.Difficulty))
	}
	if q.Syllabus.TujuanPembelajaran == "" || q.Syllabus.MateriPokok == "" || q.Syllabus.IndikatorSoal == "" {
		return fail("syllabus entry is incomplete")
	}

	if form.Format.HasOptions() {
		if len(q.Options) != form.OptionCount {
			return fail(fmt.Sprintf("expected %d options, got %d", form.OptionCount, len(q.Options)))
		}
	} else if len(q.Options) > 0 {
		return fail(fmt.Sprintf("options are not allowed for %s", form.Format))
	}

	if form.Format == FormatMenjodohkan {
		if len(q.Matches) == 0 {
			return fail("matches are missing")
		}
		for _, m := range q.Matches {
			if m.Left == "" || m.Right == "" {
				return fail("match pair has an empty side")
			}
		}
	} else if len(q.Matches) > 0 {
		return fail(fmt.Sprintf("matches are not allowed for %s", form.Format))
	}

	if q.CorrectAnswer.Multiple && form.Format != FormatPGKompleks {
		return fail(fmt.Sprintf("multiple answers are not allowed for %s", form.Format))
	}

	return nil
}
