package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestMockProvider_ReturnsCannedResponses(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"a":1}`), Usage: Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}},
		MockResponse{Content: json.RawMessage(`{"b":2}`)},
	)

	resp1, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "first"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp1.Content) != `{"a":1}` {
		t.Fatalf("expected {\"a\":1}, got %s", resp1.Content)
	}
	if resp1.Usage.InputTokens != 10 {
		t.Fatalf("expected 10 input tokens, got %d", resp1.Usage.InputTokens)
	}

	resp2, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "second"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp2.Content) != `{"b":2}` {
		t.Fatalf("expected {\"b\":2}, got %s", resp2.Content)
	}
}

func TestMockProvider_EmptyQueueReturnsError(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error from empty queue")
	}
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T", err)
	}
}

func TestMockProvider_RecordsCalls(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{}`)},
	)

	req := Request{
		System:   "sys",
		Messages: []Message{{Role: RoleUser, Content: "halo"}},
	}
	_, _ = mock.Generate(context.Background(), req)

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	if mock.Calls[0].System != "sys" {
		t.Fatalf("expected system 'sys', got %q", mock.Calls[0].System)
	}
}

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()
	if p := PurposeFrom(ctx); p != "unknown" {
		t.Fatalf("expected 'unknown', got %q", p)
	}

	ctx = WithPurpose(ctx, "quiz-gen")
	if p := PurposeFrom(ctx); p != "quiz-gen" {
		t.Fatalf("expected 'quiz-gen', got %q", p)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name:    "gemini without key",
			cfg:     Config{Provider: "gemini"},
			wantErr: true,
		},
		{
			name:    "gemini with key",
			cfg:     Config{Provider: "gemini", Gemini: GeminiConfig{APIKey: "test-key"}},
			wantErr: false,
		},
		{
			name:    "anthropic without key",
			cfg:     Config{Provider: "anthropic"},
			wantErr: true,
		},
		{
			name:    "anthropic with key",
			cfg:     Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "sk-test"}},
			wantErr: false,
		},
		{
			name:    "mock needs no key",
			cfg:     Config{Provider: "mock"},
			wantErr: false,
		},
		{
			name:    "unknown provider",
			cfg:     Config{Provider: "unknown"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_Validate_MissingKeyIsNotConfigured(t *testing.T) {
	err := Config{Provider: "gemini"}.Validate()
	var notCfg *ErrNotConfigured
	if !errors.As(err, &notCfg) {
		t.Fatalf("expected ErrNotConfigured, got: %T", err)
	}
	if notCfg.EnvVar != "SOALGEN_GEMINI_API_KEY" {
		t.Fatalf("unexpected env var: %q", notCfg.EnvVar)
	}
}

func TestRequestLog_AppendAndTotals(t *testing.T) {
	log := NewRequestLog(2)
	log.Append(RequestRecord{Purpose: "quiz-gen", InputTokens: 100, OutputTokens: 50})
	log.Append(RequestRecord{Purpose: "illustration", InputTokens: 10, OutputTokens: 5})
	log.Append(RequestRecord{Purpose: "probe", InputTokens: 1, OutputTokens: 1})

	// Capacity 2: oldest record evicted.
	all := log.All()
	if len(all) != 2 {
		t.Fatalf("expected 2 records, got %d", len(all))
	}
	if all[0].Purpose != "illustration" {
		t.Fatalf("expected oldest surviving record 'illustration', got %q", all[0].Purpose)
	}

	last, ok := log.Last()
	if !ok || last.Purpose != "probe" {
		t.Fatalf("expected last record 'probe', got %+v", last)
	}

	usage := log.TotalUsage()
	if usage.InputTokens != 11 || usage.OutputTokens != 6 {
		t.Fatalf("unexpected totals: %+v", usage)
	}
}

func TestLoggingProvider_RecordsSuccessAndFailure(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{}`), Usage: Usage{InputTokens: 7, OutputTokens: 3}},
	)
	log := NewRequestLog(8)
	p := WithLogging(mock, log)

	ctx := WithPurpose(context.Background(), "quiz-gen")
	if _, err := p.Generate(ctx, Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Queue now empty: second call fails.
	if _, err := p.Generate(ctx, Request{}); err == nil {
		t.Fatal("expected error from empty queue")
	}

	all := log.All()
	if len(all) != 2 {
		t.Fatalf("expected 2 records, got %d", len(all))
	}
	if !all[0].Success || all[0].InputTokens != 7 {
		t.Fatalf("unexpected success record: %+v", all[0])
	}
	if all[1].Success || all[1].ErrorMessage == "" {
		t.Fatalf("unexpected failure record: %+v", all[1])
	}
	if all[0].Purpose != "quiz-gen" {
		t.Fatalf("expected purpose 'quiz-gen', got %q", all[0].Purpose)
	}
}
