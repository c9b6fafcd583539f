// Package form implements the quiz specification screen: every
// generation parameter as a navigable field, submission validation, and
// the async generation call.
package form

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/rahardian/soalgen/internal/illustrate"
	"github.com/rahardian/soalgen/internal/llm"
	"github.com/rahardian/soalgen/internal/quiz"
	"github.com/rahardian/soalgen/internal/router"
	"github.com/rahardian/soalgen/internal/screen"
	"github.com/rahardian/soalgen/internal/screens/result"
	"github.com/rahardian/soalgen/internal/ui/components"
	"github.com/rahardian/soalgen/internal/ui/layout"
)

const spinnerInterval = 120 * time.Millisecond

// field identifies one focusable entry of the form, in traversal order.
type field int

const (
	fieldSubject field = iota
	fieldPhase
	fieldGrade
	fieldTopic
	fieldFormat
	fieldOptionCount
	fieldMudah
	fieldMudahCount
	fieldSedang
	fieldSedangCount
	fieldSulit
	fieldSulitCount
	fieldCog1
	fieldCog2
	fieldCog3
	fieldCog4
	fieldCog5
	fieldCog6
	fieldQuestionType
	fieldStimulus
	fieldPictorial
	fieldGenerate
)

// FormScreen implements screen.Screen for the quiz form.
type FormScreen struct {
	generator   quiz.Generator
	illustrator *illustrate.Service
	reqLog      *llm.RequestLog

	form  quiz.FormState
	focus field

	subject     components.TextInput
	topic       components.TextInput
	phase       components.Selector
	grade       components.Selector
	format      components.Selector
	optionCount components.Selector
	diffChecks  [3]components.Checkbox
	diffCounts  [3]components.TextInput
	cogChecks   [6]components.Checkbox
	qType       components.Selector
	stimulus    components.Checkbox
	pictorial   components.Checkbox
	generate    components.Button

	busy     bool
	spinTick int
	errMsg   string
}

var _ screen.Screen = (*FormScreen)(nil)
var _ screen.KeyHintProvider = (*FormScreen)(nil)

// New creates the form screen with injected dependencies. The request
// log may be nil when usage reporting is disabled.
func New(generator quiz.Generator, illustrator *illustrate.Service, reqLog *llm.RequestLog) *FormScreen {
	f := &FormScreen{
		generator:   generator,
		illustrator: illustrator,
		reqLog:      reqLog,
		form:        quiz.NewFormState(),
	}

	f.subject = components.NewTextInput("Matematika, IPA, Bahasa Indonesia...", false, 60)
	f.topic = components.NewTextInput("Pecahan, Fotosintesis, Teks Prosedur...", false, 120)

	f.phase = components.NewSelector(phaseLabels(), nil)
	f.grade = components.NewSelector(quiz.GradesForPhase(f.form.Phase), nil)
	f.format = components.NewSelector(formatLabels(), nil)
	f.optionCount = components.NewSelector(optionCountLabels(), nil)
	f.optionCount.Select("4")

	for i, lvl := range quiz.DifficultyLevels() {
		f.diffChecks[i] = components.NewCheckbox(lvl.Label(), false, nil)
		f.diffCounts[i] = components.NewTextInput("0", true, 3)
	}
	for i, name := range quiz.CognitiveLevelNames() {
		f.cogChecks[i] = components.NewCheckbox(name, false, nil)
	}

	f.qType = components.NewSelector([]string{string(quiz.TypeIndividu), string(quiz.TypeGrup)}, nil)
	f.stimulus = components.NewCheckbox("Gunakan stimulus (cerita, data, kasus)", false, nil)
	f.pictorial = components.NewCheckbox("Mode bergambar (ilustrasi per soal)", false, nil)
	f.generate = components.NewButton("Buat Soal", false, nil)

	f.applyFocus()
	return f
}

func phaseLabels() []string {
	phases := quiz.Phases()
	out := make([]string, len(phases))
	for i, p := range phases {
		out[i] = string(p)
	}
	return out
}

func formatLabels() []string {
	formats := quiz.Formats()
	out := make([]string, len(formats))
	for i, fm := range formats {
		out[i] = string(fm)
	}
	return out
}

func optionCountLabels() []string {
	out := make([]string, len(quiz.OptionCounts))
	for i, n := range quiz.OptionCounts {
		out[i] = string(rune('0' + n))
	}
	return out
}

func (f *FormScreen) Init() tea.Cmd {
	return nil
}

func (f *FormScreen) Title() string {
	return "Buat Soal"
}

func (f *FormScreen) KeyHints() []layout.KeyHint {
	if f.busy {
		return []layout.KeyHint{{Key: "Ctrl+C", Description: "Keluar"}}
	}
	return []layout.KeyHint{
		{Key: "Tab/↓", Description: "Field berikutnya"},
		{Key: "←/→", Description: "Ubah pilihan"},
		{Key: "Spasi", Description: "Centang"},
		{Key: "Ctrl+G", Description: "Buat soal"},
	}
}

// fields returns the currently visible fields in traversal order.
// The option count only appears for option-list formats.
func (f *FormScreen) fields() []field {
	out := []field{fieldSubject, fieldPhase, fieldGrade, fieldTopic, fieldFormat}
	if f.form.Format.HasOptions() {
		out = append(out, fieldOptionCount)
	}
	out = append(out,
		fieldMudah, fieldMudahCount,
		fieldSedang, fieldSedangCount,
		fieldSulit, fieldSulitCount,
		fieldCog1, fieldCog2, fieldCog3, fieldCog4, fieldCog5, fieldCog6,
		fieldQuestionType, fieldStimulus, fieldPictorial, fieldGenerate)
	return out
}

func (f *FormScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case quizReadyMsg:
		return f.handleQuizReady(msg)

	case quizFailedMsg:
		f.busy = false
		f.errMsg = quiz.UserMessage(msg.Err)
		return f, nil

	case spinnerTickMsg:
		if !f.busy {
			return f, nil
		}
		f.spinTick++
		return f, spinnerTick()

	case tea.KeyMsg:
		if f.busy {
			return f, nil
		}
		return f.handleKey(msg)
	}

	return f, nil
}

func (f *FormScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		f.moveFocus(1)
		return f, nil
	case "shift+tab", "up":
		f.moveFocus(-1)
		return f, nil
	case "ctrl+g":
		return f, f.submit()
	case "enter":
		switch f.focus {
		case fieldGenerate:
			return f, f.submit()
		case fieldSubject, fieldTopic, fieldMudahCount, fieldSedangCount, fieldSulitCount:
			f.moveFocus(1)
			return f, nil
		}
	}

	cmd := f.dispatch(msg)
	f.syncForm()
	return f, cmd
}

// dispatch forwards a key to the focused component.
func (f *FormScreen) dispatch(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.focus {
	case fieldSubject:
		f.subject, cmd = f.subject.Update(msg)
	case fieldTopic:
		f.topic, cmd = f.topic.Update(msg)
	case fieldPhase:
		f.phase, cmd = f.phase.Update(msg)
	case fieldGrade:
		f.grade, cmd = f.grade.Update(msg)
	case fieldFormat:
		f.format, cmd = f.format.Update(msg)
	case fieldOptionCount:
		f.optionCount, cmd = f.optionCount.Update(msg)
	case fieldMudah, fieldSedang, fieldSulit:
		i := diffIndex(f.focus)
		f.diffChecks[i], cmd = f.diffChecks[i].Update(msg)
	case fieldMudahCount, fieldSedangCount, fieldSulitCount:
		i := diffIndex(f.focus)
		f.diffCounts[i], cmd = f.diffCounts[i].Update(msg)
	case fieldCog1, fieldCog2, fieldCog3, fieldCog4, fieldCog5, fieldCog6:
		i := int(f.focus - fieldCog1)
		f.cogChecks[i], cmd = f.cogChecks[i].Update(msg)
	case fieldQuestionType:
		f.qType, cmd = f.qType.Update(msg)
	case fieldStimulus:
		f.stimulus, cmd = f.stimulus.Update(msg)
	case fieldPictorial:
		f.pictorial, cmd = f.pictorial.Update(msg)
	case fieldGenerate:
		f.generate, cmd = f.generate.Update(msg)
	}
	return cmd
}

func diffIndex(fd field) int {
	switch fd {
	case fieldMudah, fieldMudahCount:
		return int(quiz.Mudah)
	case fieldSedang, fieldSedangCount:
		return int(quiz.Sedang)
	}
	return int(quiz.Sulit)
}

// syncForm rebuilds the form value from component state, then pushes
// derived constraints (valid grades for the phase) back into the
// components.
func (f *FormScreen) syncForm() {
	form := quiz.NewFormState().
		WithSubject(f.subject.Value()).
		WithPhase(quiz.Phases()[f.phase.Index]).
		WithTopic(f.topic.Value()).
		WithFormat(quiz.Formats()[f.format.Index]).
		WithOptionCount(quiz.OptionCounts[f.optionCount.Index]).
		WithQuestionType(quiz.QuestionType(f.qType.Value())).
		WithStimulus(f.stimulus.Checked).
		WithPictorialMode(f.pictorial.Checked)

	f.grade.SetOptions(quiz.GradesForPhase(form.Phase))
	form = form.WithGrade(f.grade.Value())

	for i, lvl := range quiz.DifficultyLevels() {
		if f.diffChecks[i].Checked {
			form = form.ToggleDifficulty(lvl)
		}
		if n, err := f.diffCounts[i].NumericValue(); err == nil {
			form = form.WithDifficultyCount(lvl, n)
		}
	}
	for i := range f.cogChecks {
		if f.cogChecks[i].Checked {
			form = form.ToggleCognitiveLevel(i)
		}
	}

	f.form = form
}

func (f *FormScreen) moveFocus(delta int) {
	fields := f.fields()
	cur := 0
	for i, fd := range fields {
		if fd == f.focus {
			cur = i
			break
		}
	}
	next := (cur + delta + len(fields)) % len(fields)
	f.focus = fields[next]
	f.applyFocus()
}

// applyFocus mirrors the focus field into every component.
func (f *FormScreen) applyFocus() {
	if f.focus == fieldSubject {
		f.subject.Focus()
	} else {
		f.subject.Blur()
	}
	if f.focus == fieldTopic {
		f.topic.Focus()
	} else {
		f.topic.Blur()
	}
	for i, fd := range []field{fieldMudahCount, fieldSedangCount, fieldSulitCount} {
		if f.focus == fd {
			f.diffCounts[i].Focus()
		} else {
			f.diffCounts[i].Blur()
		}
	}

	f.phase.Focused = f.focus == fieldPhase
	f.grade.Focused = f.focus == fieldGrade
	f.format.Focused = f.focus == fieldFormat
	f.optionCount.Focused = f.focus == fieldOptionCount
	for i, fd := range []field{fieldMudah, fieldSedang, fieldSulit} {
		f.diffChecks[i].Focused = f.focus == fd
	}
	for i := range f.cogChecks {
		f.cogChecks[i].Focused = f.focus == fieldCog1+field(i)
	}
	f.qType.Focused = f.focus == fieldQuestionType
	f.stimulus.Focused = f.focus == fieldStimulus
	f.pictorial.Focused = f.focus == fieldPictorial
	f.generate.Active = f.focus == fieldGenerate
}

// submit validates the form and starts async generation.
func (f *FormScreen) submit() tea.Cmd {
	f.syncForm()
	if err := f.form.Validate(); err != nil {
		f.errMsg = quiz.UserMessage(err)
		return nil
	}

	f.errMsg = ""
	f.busy = true
	form := f.form
	gen := f.generator

	return tea.Batch(
		spinnerTick(),
		func() tea.Msg {
			generated, err := gen.Generate(context.Background(), form)
			if err != nil {
				return quizFailedMsg{Err: err}
			}
			return quizReadyMsg{Quiz: generated}
		},
	)
}

func (f *FormScreen) handleQuizReady(msg quizReadyMsg) (screen.Screen, tea.Cmd) {
	f.busy = false
	f.errMsg = ""

	// Kick off illustrations for pictorial questions. Best effort: the
	// result screen picks up whatever finishes.
	if f.illustrator.Enabled() {
		for _, q := range msg.Quiz.Questions {
			f.illustrator.Request(context.Background(), q.ID, q.ImageDescription)
		}
	}

	resultScreen := result.New(msg.Quiz, f.illustrator, f.reqLog)
	return f, func() tea.Msg {
		return router.PushScreenMsg{Screen: resultScreen}
	}
}

func spinnerTick() tea.Cmd {
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}
