package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nasywa/karsa/internal/chat"
	"github.com/nasywa/karsa/internal/llm"
)

// askCmd sends a single question to Karsa without starting the TUI.
var askCmd = &cobra.Command{
	Use:   "ask [pertanyaan]",
	Short: "Ajukan satu pertanyaan tentang APBN",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		provider, err := llm.NewProviderFromEnv(ctx)
		if err != nil {
			return fmt.Errorf("asisten Karsa tidak terhubung: %w", err)
		}

		question := strings.Join(args, " ")
		reply, err := chat.Ask(ctx, provider, question)
		if err != nil {
			fmt.Println(chat.Fallback)
			return nil
		}

		fmt.Println(reply)
		return nil
	},
}
