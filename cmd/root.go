package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "soalgen",
	Short: "Pembuat soal ujian berbasis AI untuk guru",
	Long: "SoalGen: aplikasi terminal untuk guru Indonesia (Kurikulum Merdeka) " +
		"yang membuat soal ujian lengkap dengan kunci jawaban dan kisi-kisi memakai AI.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Missing .env is fine; the environment may already be set.
		_ = godotenv.Load()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(previewCmd)
}
