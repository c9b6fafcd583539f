package quiz

import (
	"encoding/json"
	"fmt"
)

// Phase is a Kurikulum Merdeka curriculum phase. Each phase maps to a
// fixed set of valid grade levels.
type Phase string

const (
	PhaseA Phase = "A"
	PhaseB Phase = "B"
	PhaseC Phase = "C"
	PhaseD Phase = "D"
	PhaseE Phase = "E"
	PhaseF Phase = "F"
)

// Phases returns all phases in curriculum order.
func Phases() []Phase {
	return []Phase{PhaseA, PhaseB, PhaseC, PhaseD, PhaseE, PhaseF}
}

// GradesForPhase returns the valid grade levels for a phase.
func GradesForPhase(p Phase) []string {
	switch p {
	case PhaseA:
		return []string{"1", "2"}
	case PhaseB:
		return []string{"3", "4"}
	case PhaseC:
		return []string{"5", "6"}
	case PhaseD:
		return []string{"7", "8", "9"}
	case PhaseE:
		return []string{"10"}
	case PhaseF:
		return []string{"11", "12"}
	default:
		return nil
	}
}

// Format is the question's answer-interaction shape. The values are the
// Indonesian labels shown to the teacher and sent in the prompt.
type Format string

const (
	FormatPG           Format = "Pilihan Ganda"
	FormatPGKompleks   Format = "Pilihan Ganda Kompleks"
	FormatBenarSalah   Format = "Benar Salah"
	FormatMenjodohkan  Format = "Menjodohkan"
	FormatUraian       Format = "Uraian"
	FormatIsianSingkat Format = "Isian Singkat"
)

// Formats returns all question formats in display order.
func Formats() []Format {
	return []Format{
		FormatPG,
		FormatPGKompleks,
		FormatBenarSalah,
		FormatMenjodohkan,
		FormatUraian,
		FormatIsianSingkat,
	}
}

// HasOptions reports whether the format carries an option list.
func (f Format) HasOptions() bool {
	return f == FormatPG || f == FormatPGKompleks
}

// QuestionType distinguishes individual from group work.
type QuestionType string

const (
	TypeIndividu QuestionType = "Individu"
	TypeGrup     QuestionType = "Grup"
)

// DifficultyLevel indexes the three difficulty tiers of the form.
type DifficultyLevel int

const (
	Mudah DifficultyLevel = iota
	Sedang
	Sulit
)

// DifficultyLevels returns the tiers in form order.
func DifficultyLevels() []DifficultyLevel {
	return []DifficultyLevel{Mudah, Sedang, Sulit}
}

// Key returns the lowercase form key ("mudah", "sedang", "sulit").
func (d DifficultyLevel) Key() string {
	switch d {
	case Mudah:
		return "mudah"
	case Sedang:
		return "sedang"
	case Sulit:
		return "sulit"
	}
	return ""
}

// Label returns the capitalized label used in prompts and question data.
func (d DifficultyLevel) Label() string {
	switch d {
	case Mudah:
		return "Mudah"
	case Sedang:
		return "Sedang"
	case Sulit:
		return "Sulit"
	}
	return ""
}

// DifficultyConfig is one difficulty tier's form entry.
type DifficultyConfig struct {
	Checked bool `json:"checked"`
	Count   int  `json:"count"`
}

// Difficulties holds the three tier entries, indexed by DifficultyLevel.
// It is a value type so FormState copies stay independent.
type Difficulties [3]DifficultyConfig

// MarshalJSON renders the original keyed-object shape.
func (d Difficulties) MarshalJSON() ([]byte, error) {
	m := map[string]DifficultyConfig{}
	for _, lvl := range DifficultyLevels() {
		m[lvl.Key()] = d[lvl]
	}
	return json.Marshal(m)
}

func (d *Difficulties) UnmarshalJSON(data []byte) error {
	var m map[string]DifficultyConfig
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	for _, lvl := range DifficultyLevels() {
		if cfg, ok := m[lvl.Key()]; ok {
			d[lvl] = cfg
		}
	}
	return nil
}

// CognitiveLevels holds the C1-C6 checkboxes, indexed 0-5.
type CognitiveLevels [6]bool

// CognitiveLevelNames returns "C1".."C6" in order.
func CognitiveLevelNames() []string {
	return []string{"C1", "C2", "C3", "C4", "C5", "C6"}
}

// Selected returns the checked level names in order.
func (c CognitiveLevels) Selected() []string {
	var out []string
	for i, name := range CognitiveLevelNames() {
		if c[i] {
			out = append(out, name)
		}
	}
	return out
}

// MarshalJSON renders the original keyed-object shape with all keys.
func (c CognitiveLevels) MarshalJSON() ([]byte, error) {
	m := map[string]bool{}
	for i, name := range CognitiveLevelNames() {
		m[name] = c[i]
	}
	return json.Marshal(m)
}

func (c *CognitiveLevels) UnmarshalJSON(data []byte) error {
	var m map[string]bool
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	for i, name := range CognitiveLevelNames() {
		c[i] = m[name]
	}
	return nil
}

// FormState holds every generation parameter the teacher chooses.
// It is a pure value: every update operation returns a new state, and
// no operation can produce a grade outside its phase's valid set.
type FormState struct {
	Subject         string          `json:"subject"`
	Phase           Phase           `json:"phase"`
	Grade           string          `json:"grade"`
	Topic           string          `json:"topic"`
	Format          Format          `json:"format"`
	OptionCount     int             `json:"optionCount"`
	PictorialMode   bool            `json:"pictorialMode"`
	Difficulties    Difficulties    `json:"difficulties"`
	CognitiveLevels CognitiveLevels `json:"cognitiveLevels"`
	QuestionType    QuestionType    `json:"questionType"`
	HasStimulus     bool            `json:"hasStimulus"`
}

// OptionCounts are the selectable option-list sizes for PG formats.
var OptionCounts = []int{3, 4, 5, 6}

// NewFormState returns the initial form, mirroring the defaults of the
// web version: Fase A, Kelas 1, Pilihan Ganda with 4 options, Individu.
func NewFormState() FormState {
	return FormState{
		Phase:        PhaseA,
		Grade:        "1",
		Format:       FormatPG,
		OptionCount:  4,
		QuestionType: TypeIndividu,
	}
}

// WithSubject returns a copy with the subject replaced.
func (f FormState) WithSubject(s string) FormState {
	f.Subject = s
	return f
}

// WithTopic returns a copy with the topic replaced.
func (f FormState) WithTopic(t string) FormState {
	f.Topic = t
	return f
}

// WithPhase returns a copy with the phase replaced. If the current grade
// is not valid for the new phase, the grade snaps to the phase's first
// valid grade, so the phase→grade invariant holds after every update.
func (f FormState) WithPhase(p Phase) FormState {
	f.Phase = p
	grades := GradesForPhase(p)
	if len(grades) == 0 {
		return f
	}
	for _, g := range grades {
		if g == f.Grade {
			return f
		}
	}
	f.Grade = grades[0]
	return f
}

// WithGrade returns a copy with the grade replaced. Grades outside the
// current phase's set are ignored.
func (f FormState) WithGrade(g string) FormState {
	for _, valid := range GradesForPhase(f.Phase) {
		if valid == g {
			f.Grade = g
			return f
		}
	}
	return f
}

// WithFormat returns a copy with the question format replaced.
func (f FormState) WithFormat(format Format) FormState {
	f.Format = format
	return f
}

// WithOptionCount returns a copy with the option count replaced.
// Values outside {3,4,5,6} are ignored.
func (f FormState) WithOptionCount(n int) FormState {
	for _, valid := range OptionCounts {
		if valid == n {
			f.OptionCount = n
			return f
		}
	}
	return f
}

// WithQuestionType returns a copy with the question type replaced.
func (f FormState) WithQuestionType(t QuestionType) FormState {
	f.QuestionType = t
	return f
}

// WithPictorialMode returns a copy with pictorial mode set.
func (f FormState) WithPictorialMode(on bool) FormState {
	f.PictorialMode = on
	return f
}

// WithStimulus returns a copy with the stimulus flag set.
func (f FormState) WithStimulus(on bool) FormState {
	f.HasStimulus = on
	return f
}

// ToggleDifficulty returns a copy with the tier's checked flag flipped.
func (f FormState) ToggleDifficulty(lvl DifficultyLevel) FormState {
	f.Difficulties[lvl].Checked = !f.Difficulties[lvl].Checked
	return f
}

// WithDifficultyCount returns a copy with the tier's question count set.
// Negative counts are ignored.
func (f FormState) WithDifficultyCount(lvl DifficultyLevel, count int) FormState {
	if count < 0 {
		return f
	}
	f.Difficulties[lvl].Count = count
	return f
}

// ToggleCognitiveLevel returns a copy with the level (0-based index)
// flipped.
func (f FormState) ToggleCognitiveLevel(i int) FormState {
	if i >= 0 && i < len(f.CognitiveLevels) {
		f.CognitiveLevels[i] = !f.CognitiveLevels[i]
	}
	return f
}

// TotalQuestionCount sums the counts of the checked difficulty tiers.
func (f FormState) TotalQuestionCount() int {
	total := 0
	for _, lvl := range DifficultyLevels() {
		if f.Difficulties[lvl].Checked {
			total += f.Difficulties[lvl].Count
		}
	}
	return total
}

// Validate checks submission-time completeness. The returned error's
// message is shown to the teacher verbatim; no compile or network call
// happens when it is non-nil.
func (f FormState) Validate() error {
	if f.Subject == "" {
		return &FormError{Msg: "Mohon isi mata pelajaran."}
	}
	if f.Topic == "" {
		return &FormError{Msg: "Mohon isi topik atau materi yang ingin diujikan."}
	}
	if f.TotalQuestionCount() == 0 {
		return &FormError{Msg: "Mohon isi jumlah soal pada setidaknya satu tingkat kesulitan."}
	}
	return nil
}

// FormError is a local validation failure, recovered at the form boundary.
type FormError struct {
	Msg string
}

func (e *FormError) Error() string { return e.Msg }

func (f FormState) String() string {
	return fmt.Sprintf("%s fase %s kelas %s: %s (%s, %d soal)",
		f.Subject, f.Phase, f.Grade, f.Topic, f.Format, f.TotalQuestionCount())
}
