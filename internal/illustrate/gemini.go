package illustrate

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// GeminiBackend generates illustrations with a Gemini image model.
type GeminiBackend struct {
	client *genai.Client
	model  string
}

// NewGeminiBackend creates the backend. Returns (nil, nil) when no API
// key is set, which disables illustration without an error.
func NewGeminiBackend(ctx context.Context, apiKey, model string) (*GeminiBackend, error) {
	if apiKey == "" {
		return nil, nil
	}
	if model == "" {
		model = "gemini-2.5-flash-image"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}

	return &GeminiBackend{client: client, model: model}, nil
}

// GenerateImage asks the image model for one 16:9 illustration and
// returns the first inline image part of the response.
func (b *GeminiBackend) GenerateImage(ctx context.Context, prompt string) (*Image, error) {
	config := &genai.GenerateContentConfig{
		ImageConfig: &genai.ImageConfig{AspectRatio: "16:9"},
	}

	result, err := b.client.Models.GenerateContent(ctx, b.model, genai.Text(prompt), config)
	if err != nil {
		return nil, fmt.Errorf("illustration generation: %w", err)
	}

	for _, cand := range result.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return &Image{
					MimeType: part.InlineData.MIMEType,
					Data:     part.InlineData.Data,
				}, nil
			}
		}
	}
	return nil, errors.New("response contains no image data")
}
