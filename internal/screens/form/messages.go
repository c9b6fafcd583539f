package form

import (
	"time"

	"github.com/rahardian/soalgen/internal/quiz"
)

// quizReadyMsg is sent when generation finished successfully.
type quizReadyMsg struct {
	Quiz *quiz.GeneratedQuiz
}

// quizFailedMsg is sent when generation failed. The error keeps its
// class so the form can show the right message.
type quizFailedMsg struct {
	Err error
}

// spinnerTickMsg animates the busy indicator while generating.
type spinnerTickMsg time.Time
