package quiz

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/rahardian/soalgen/internal/llm"
)

// Generator produces a quiz from a completed form.
type Generator interface {
	Generate(ctx context.Context, form FormState) (*GeneratedQuiz, error)
}

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// quizOutput is the raw LLM response before validation.
type quizOutput struct {
	Questions []Question `json:"questions"`
}

// Generate compiles the form into a request, calls the provider, and
// returns the validated quiz with a snapshot of the form attached.
// The form is checked first, so an incomplete form never reaches the
// network.
func (g *LLMGenerator) Generate(ctx context.Context, form FormState) (*GeneratedQuiz, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	ctx = llm.WithPurpose(ctx, "quiz-gen")
	if g.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.config.Timeout)
		defer cancel()
	}

	compiled := Compile(form)
	req := llm.Request{
		System: compiled.System,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: compiled.Prompt},
		},
		Schema:      compiled.Schema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, &ErrTimeout{Timeout: g.config.Timeout}
		}
		return nil, fmt.Errorf("quiz generation failed: %w", err)
	}

	var raw quizOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, &llm.ErrInvalidResponse{Content: resp.Content, Err: err}
	}
	if len(raw.Questions) == 0 {
		return nil, &llm.ErrInvalidResponse{
			Content: resp.Content,
			Err:     errors.New("response contains no questions"),
		}
	}

	for i := range raw.Questions {
		q := &raw.Questions[i]
		if q.ID == "" {
			q.ID = uuid.NewString()
		}
		if q.No == 0 {
			q.No = i + 1
		}
		for _, v := range g.config.Validators {
			if verr := v.Validate(q, form); verr != nil {
				return nil, verr
			}
		}
	}

	return &GeneratedQuiz{Metadata: form, Questions: raw.Questions}, nil
}
