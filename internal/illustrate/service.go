// Package illustrate generates question illustrations as a best-effort
// side channel. Failures never block or fail quiz generation.
package illustrate

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"sync"

	"github.com/rahardian/soalgen/internal/llm"
)

// Backend produces one illustration for a prompt. Implementations
// return the image bytes with their mime type.
type Backend interface {
	GenerateImage(ctx context.Context, prompt string) (*Image, error)
}

// Image is a generated illustration.
type Image struct {
	MimeType string
	Data     []byte
}

// DataURI renders the image as a base64 data URI, the form presenters
// and exports consume.
func (img *Image) DataURI() string {
	return fmt.Sprintf("data:%s;base64,%s", img.MimeType, base64.StdEncoding.EncodeToString(img.Data))
}

// Result is the outcome of one illustration request.
type Result struct {
	QuestionID string
	DataURI    string
	Err        error
}

// Service runs illustration requests asynchronously, one goroutine per
// question. Results accumulate until consumed.
type Service struct {
	backend Backend

	mu    sync.Mutex
	ready []Result
}

// NewService creates an illustration service. A nil backend disables
// the service: requests become silent no-ops.
func NewService(backend Backend) *Service {
	return &Service{backend: backend}
}

// Enabled reports whether a backend is configured.
func (s *Service) Enabled() bool {
	return s != nil && s.backend != nil
}

// Request starts async generation for one question's image description.
// It returns immediately; the outcome is picked up via Consume.
func (s *Service) Request(ctx context.Context, questionID, description string) {
	if !s.Enabled() || description == "" {
		return
	}
	go func() {
		ctx = llm.WithPurpose(ctx, "illustration")
		img, err := s.backend.GenerateImage(ctx, buildImagePrompt(description))

		res := Result{QuestionID: questionID, Err: err}
		switch {
		case err != nil:
		case img == nil:
			res.Err = errors.New("backend returned no image")
		default:
			res.DataURI = img.DataURI()
		}

		s.mu.Lock()
		s.ready = append(s.ready, res)
		s.mu.Unlock()
	}()
}

// Consume drains and returns all finished results.
// Returns nil when nothing is ready.
func (s *Service) Consume() []Result {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.ready
	s.ready = nil
	return out
}

func buildImagePrompt(description string) string {
	return fmt.Sprintf(
		"Buatkan gambar ilustrasi pendidikan yang jelas dan aman untuk soal sekolah berikut: %s. Gaya visual: edukatif, bersih, mudah dipahami siswa.",
		description)
}
