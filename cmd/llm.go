package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rahardian/soalgen/internal/llm"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect the AI provider configuration",
}

var llmCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Show which provider and model are active",
	Long: `Resolve the AI configuration the way the app does and report it.

With --probe, send one tiny structured request to verify the credential
actually works, and report latency, token usage, and estimated cost.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := llm.ResolveConfig()
		if err != nil {
			fmt.Println("Status:    tidak terkonfigurasi")
			fmt.Println("Error:    ", err)
			fmt.Println()
			fmt.Println("Setel salah satu: GEMINI_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY,")
			fmt.Println("OPENROUTER_API_KEY, atau variabel SOALGEN_* (lihat README).")
			return nil
		}

		reqLog := llm.NewRequestLog(8)
		provider, err := llm.NewProvider(cmd.Context(), cfg, reqLog)
		if err != nil {
			return fmt.Errorf("inisialisasi provider: %w", err)
		}

		fmt.Println("Status:    terkonfigurasi")
		fmt.Println("Provider: ", cfg.Provider)
		fmt.Println("Model:    ", provider.ModelID())
		fmt.Println("Timeout:  ", cfg.Timeout)
		fmt.Println("Attempts: ", cfg.Retry.MaxAttempts)
		if cfg.Provider == "gemini" && cfg.Gemini.APIKey != "" {
			fmt.Println("Ilustrasi:", cfg.Gemini.ImageModel)
		} else {
			fmt.Println("Ilustrasi: nonaktif (butuh API key Gemini)")
		}

		probe, _ := cmd.Flags().GetBool("probe")
		if !probe {
			return nil
		}

		fmt.Println()
		fmt.Println("Mengirim permintaan uji...")
		if err := runProbe(cmd, provider, reqLog); err != nil {
			return err
		}
		return nil
	},
}

func runProbe(cmd *cobra.Command, provider llm.Provider, reqLog *llm.RequestLog) error {
	ctx := llm.WithPurpose(cmd.Context(), "probe")

	req := llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: "Balas dengan status \"siap\"."},
		},
		Schema: &llm.Schema{
			Name: "probe",
			Definition: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"status": map[string]any{"type": "string"},
				},
				"required":             []any{"status"},
				"additionalProperties": false,
			},
		},
		MaxTokens: 64,
	}

	if _, err := provider.Generate(ctx, req); err != nil {
		return fmt.Errorf("probe gagal: %w", err)
	}

	rec, ok := reqLog.Last()
	if !ok {
		fmt.Println("Probe berhasil.")
		return nil
	}

	fmt.Println("Probe berhasil.")
	fmt.Printf("Latensi:   %dms\n", rec.LatencyMs)
	fmt.Printf("Token:     %d masuk / %d keluar\n", rec.InputTokens, rec.OutputTokens)
	if cost := llm.LookupCost(rec.Model); cost != nil {
		fmt.Printf("Perkiraan: $%.6f\n", cost.Cost(rec.InputTokens, rec.OutputTokens))
	}
	return nil
}

func init() {
	llmCheckCmd.Flags().Bool("probe", false, "Send one tiny request to verify the credential")
	llmCmd.AddCommand(llmCheckCmd)
}
