package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rahardian/soalgen/internal/app"
	"github.com/rahardian/soalgen/internal/illustrate"
	"github.com/rahardian/soalgen/internal/llm"
	"github.com/rahardian/soalgen/internal/quiz"
)

// runApp resolves configuration, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	cfg, err := llm.ResolveConfig()
	if err != nil {
		return fmt.Errorf("%w\n\nSetel GEMINI_API_KEY (atau variabel SOALGEN_*) lalu jalankan ulang. "+
			"Lihat `soalgen llm check` untuk status konfigurasi", err)
	}

	reqLog := llm.NewRequestLog(64)
	provider, err := llm.NewProvider(ctx, cfg, reqLog)
	if err != nil {
		return fmt.Errorf("inisialisasi provider AI: %w", err)
	}

	quizCfg := quiz.DefaultConfig()
	quizCfg.Timeout = cfg.Timeout
	generator := quiz.New(provider, quizCfg)

	// Illustrations are Gemini-only. Without a Gemini key the service
	// runs disabled and pictorial questions simply ship without images.
	var illustrator *illustrate.Service
	backend, err := illustrate.NewGeminiBackend(ctx, cfg.Gemini.APIKey, cfg.Gemini.ImageModel)
	if err != nil || backend == nil {
		illustrator = illustrate.NewService(nil)
	} else {
		illustrator = illustrate.NewService(backend)
	}

	return app.Run(app.Deps{
		Generator:     generator,
		Illustrator:   illustrator,
		RequestLog:    reqLog,
		ProviderLabel: fmt.Sprintf("%s · %s", cfg.Provider, provider.ModelID()),
	})
}
