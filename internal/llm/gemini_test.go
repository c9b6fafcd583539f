package llm

import (
	"testing"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.5-flash"},
		{"gemini-pro", "gemini-2.5-pro"},
		{"gemini-2.5-flash-lite", "gemini-2.5-flash-lite"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"text":       map[string]any{"type": "string"},
			"no":         map[string]any{"type": "integer"},
			"difficulty": map[string]any{"type": "string", "enum": []any{"Mudah", "Sedang", "Sulit"}},
			"options": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "string"},
				"minItems": 4,
				"maxItems": 4,
			},
		},
		"required": []any{"text", "no"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["text"].Type != "STRING" {
		t.Fatalf("expected STRING for text, got %s", schema.Properties["text"].Type)
	}
	if schema.Properties["no"].Type != "INTEGER" {
		t.Fatalf("expected INTEGER for no, got %s", schema.Properties["no"].Type)
	}
	if len(schema.Properties["difficulty"].Enum) != 3 {
		t.Fatalf("expected 3 enum values, got %d", len(schema.Properties["difficulty"].Enum))
	}

	opts := schema.Properties["options"]
	if opts.Type != "ARRAY" {
		t.Fatalf("expected ARRAY for options, got %s", opts.Type)
	}
	if opts.Items.Type != "STRING" {
		t.Fatalf("expected STRING for options items, got %s", opts.Items.Type)
	}
	if opts.MinItems == nil || *opts.MinItems != 4 {
		t.Fatalf("expected minItems 4, got %v", opts.MinItems)
	}
	if opts.MaxItems == nil || *opts.MaxItems != 4 {
		t.Fatalf("expected maxItems 4, got %v", opts.MaxItems)
	}

	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
}

func TestBuildGeminiSchema_ItemCountFromJSONRoundTrip(t *testing.T) {
	// Definitions that round-trip through encoding/json carry float64
	// counts; both representations must work.
	def := map[string]any{
		"type":     "array",
		"items":    map[string]any{"type": "string"},
		"minItems": float64(3),
		"maxItems": float64(6),
	}
	schema := buildGeminiSchema(def)
	if schema.MinItems == nil || *schema.MinItems != 3 {
		t.Fatalf("expected minItems 3, got %v", schema.MinItems)
	}
	if schema.MaxItems == nil || *schema.MaxItems != 6 {
		t.Fatalf("expected maxItems 6, got %v", schema.MaxItems)
	}
}
