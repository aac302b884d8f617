package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "deckforge",
	Short: "AI slide deck generation service",
	Long:  "Deckforge — HTTP service that generates educational slide decks with an LLM, whole-deck or streamed slide by slide.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("port", "", "HTTP port to listen on (overrides DECKFORGE_PORT)")
	rootCmd.PersistentFlags().String("provider", "", "LLM provider: anthropic, openai, gemini, openrouter, mock (overrides DECKFORGE_LLM_PROVIDER)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}
