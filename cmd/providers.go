package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nmehta/pharmaquiz/internal/llm"
)

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "Show the configured LLM providers",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg := llm.ConfigFromEnv()

		status := func(key string) string {
			if key != "" {
				return "configured"
			}
			return "no API key"
		}
		fmt.Printf("%-10s %-12s model %s\n", "openai", status(cfg.OpenAI.APIKey), cfg.OpenAI.Model)
		fmt.Printf("%-10s %-12s model %s\n", "anthropic", status(cfg.Anthropic.APIKey), cfg.Anthropic.Model)
		fmt.Printf("%-10s %-12s model %s\n", "gemini", status(cfg.Gemini.APIKey), cfg.Gemini.Model)
		fmt.Println()
		fmt.Println("primary: ", cfg.Provider)
		if cfg.Fallback != "" {
			fmt.Println("fallback:", cfg.Fallback)
		} else {
			fmt.Println("fallback: none")
		}

		if err := cfg.Validate(); err != nil {
			fmt.Println()
			fmt.Println("configuration problem:", err)
		}
		return nil
	},
}
