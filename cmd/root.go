package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nasywa/karsa/internal/app"
	"github.com/nasywa/karsa/internal/llm"
)

var rootCmd = &cobra.Command{
	Use:   "karsa",
	Short: "Belajar APBN bersama Karsa",
	Long:  "Karsa, teman belajar interaktif di terminal untuk memahami Anggaran Pendapatan dan Belanja Negara.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// runApp builds dependencies and launches the TUI. The chat works in
// degraded mode without a provider, so a missing API key only warns.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	opts := app.Options{}
	provider, err := llm.NewProviderFromEnv(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Asisten Karsa tidak terhubung:", err)
		fmt.Fprintln(os.Stderr, "Fitur Tanya Karsa akan menjawab dengan pesan cadangan.")
	} else {
		opts.LLMProvider = provider
	}

	return app.Run(opts)
}
