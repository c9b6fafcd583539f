package quiz

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/rahardian/soalgen/internal/llm"
)

func validQuizJSON() json.RawMessage {
	quiz := quizOutput{Questions: []Question{validPGQuestion()}}
	data, _ := json.Marshal(quiz)
	return data
}

func TestGenerate_Success(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuizJSON()})
	gen := New(mock, DefaultConfig())

	quiz, err := gen.Generate(context.Background(), sampleForm())
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if len(quiz.Questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(quiz.Questions))
	}
	if quiz.Metadata.Subject != "Matematika" {
		t.Error("metadata should snapshot the form")
	}

	req := mock.Calls[0]
	if req.Temperature != 0.7 {
		t.Errorf("expected temperature 0.7, got %v", req.Temperature)
	}
	if !strings.Contains(req.Messages[0].Content, "Mata Pelajaran: Matematika") {
		t.Error("user prompt not compiled from form")
	}
	if req.Schema == nil || !strings.HasPrefix(req.Schema.Name, "quiz-") {
		t.Error("request should carry the quiz schema")
	}
}

func TestGenerate_InvalidFormNeverCallsProvider(t *testing.T) {
	mock := llm.NewMockProvider()
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), NewFormState())
	var formErr *FormError
	if !errors.As(err, &formErr) {
		t.Fatalf("expected FormError, got %v", err)
	}
	if mock.CallCount() != 0 {
		t.Error("provider must not be called for an invalid form")
	}
}

func TestGenerate_FillsMissingIDs(t *testing.T) {
	q := validPGQuestion()
	q.ID = ""
	data, _ := json.Marshal(quizOutput{Questions: []Question{q}})
	mock := llm.NewMockProvider(llm.MockResponse{Content: data})
	gen := New(mock, DefaultConfig())

	quiz, err := gen.Generate(context.Background(), sampleForm())
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if quiz.Questions[0].ID == "" {
		t.Error("missing id should be filled with a generated one")
	}
}

func TestGenerate_MalformedResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"questions":[`)})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), sampleForm())
	var invalid *llm.ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestGenerate_EmptyQuestionList(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"questions":[]}`)})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), sampleForm())
	var invalid *llm.ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidResponse for empty list, got %v", err)
	}
}

func TestGenerate_ValidatorFailureSurfaces(t *testing.T) {
	q := validPGQuestion()
	q.Options = q.Options[:2]
	data, _ := json.Marshal(quizOutput{Questions: []Question{q}})
	mock := llm.NewMockProvider(llm.MockResponse{Content: data})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), sampleForm())
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Validator != "structural" {
		t.Errorf("unexpected validator %q", verr.Validator)
	}
}

func TestGenerate_ProviderErrorPassesThrough(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrEmptyResponse{Model: "mock"}})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), sampleForm())
	var empty *llm.ErrEmptyResponse
	if !errors.As(err, &empty) {
		t.Fatalf("expected ErrEmptyResponse, got %v", err)
	}
}

func TestGenerate_DeadlineMapsToTimeout(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: fmt.Errorf("provider call: %w", context.DeadlineExceeded),
	})
	cfg := DefaultConfig()
	cfg.Timeout = 90 * time.Second
	gen := New(mock, cfg)

	_, err := gen.Generate(context.Background(), sampleForm())
	var timeout *ErrTimeout
	if !errors.As(err, &timeout) {
		t.Fatalf("expected ErrTimeout, got %v", err)
	}
	if timeout.Timeout != 90*time.Second {
		t.Errorf("timeout error should carry the configured deadline, got %s", timeout.Timeout)
	}
}

func TestUserMessage_Classes(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{&FormError{Msg: "Mohon isi jumlah soal pada setidaknya satu tingkat kesulitan."},
			"Mohon isi jumlah soal pada setidaknya satu tingkat kesulitan."},
		{&llm.ErrNotConfigured{Provider: "gemini", EnvVar: "GEMINI_API_KEY"},
			"API key belum diatur. Mohon isi variabel lingkungan GEMINI_API_KEY."},
		{&ErrTimeout{Timeout: 90 * time.Second}, "Waktu pembuatan soal habis. Silakan coba lagi."},
		{&llm.ErrEmptyResponse{Model: "mock"}, "Tidak ada respons dari AI. Silakan coba lagi."},
		{&llm.ErrInvalidResponse{Content: json.RawMessage("x")},
			"Gagal menghasilkan data soal yang valid. Silakan coba lagi."},
		{&ValidationError{Validator: "structural", Message: "x"},
			"Gagal menghasilkan data soal yang valid. Silakan coba lagi."},
		{&llm.ErrRateLimit{RetryAfter: time.Second},
			"Layanan AI sedang sibuk. Mohon tunggu sebentar lalu coba lagi."},
	}
	for _, tc := range cases {
		if got := UserMessage(tc.err); got != tc.want {
			t.Errorf("UserMessage(%T) = %q, want %q", tc.err, got, tc.want)
		}
	}
}
