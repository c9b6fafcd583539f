package quiz

import (
	"errors"
	"fmt"
	"time"

	"github.com/rahardian/soalgen/internal/llm"
)

// ErrTimeout indicates a generation call ran past its deadline.
type ErrTimeout struct {
	Timeout time.Duration
}

func (e *ErrTimeout) Error() string {
	return fmt.Sprintf("quiz generation timed out after %s", e.Timeout)
}

// UserMessage maps a generation error to the Indonesian message shown
// to the teacher. The technical detail stays in the error chain for
// logging; only the class decides the message.
func UserMessage(err error) string {
	var formErr *FormError
	if errors.As(err, &formErr) {
		return formErr.Msg
	}

	var notConfigured *llm.ErrNotConfigured
	if errors.As(err, &notConfigured) {
		return fmt.Sprintf("API key belum diatur. Mohon isi variabel lingkungan %s.", notConfigured.EnvVar)
	}

	var timeout *ErrTimeout
	if errors.As(err, &timeout) {
		return "Waktu pembuatan soal habis. Silakan coba lagi."
	}

	var empty *llm.ErrEmptyResponse
	if errors.As(err, &empty) {
		return "Tidak ada respons dari AI. Silakan coba lagi."
	}

	var invalid *llm.ErrInvalidResponse
	var validation *ValidationError
	if errors.As(err, &invalid) || errors.As(err, &validation) {
		return "Gagal menghasilkan data soal yang valid. Silakan coba lagi."
	}

	var rateLimit *llm.ErrRateLimit
	if errors.As(err, &rateLimit) {
		return "Layanan AI sedang sibuk. Mohon tunggu sebentar lalu coba lagi."
	}

	return "Terjadi kesalahan saat membuat soal. Silakan coba lagi."
}
