// Package cmd - ask command
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tariff-optimizer/internal/advisor"
	"tariff-optimizer/internal/config"
)

var askAPIKey string

// askCmd represents the ask command
var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask the trade advisory service a free-text question",
	Long: `Forward a question about tariffs, sourcing, or vendors to the hosted
advisory model and print the reply.

The API key is read from the environment variable named in the config
(GEMINI_API_KEY by default) or from --api-key. It is never logged.

Examples:
  tariff-optimizer ask "How do the 2025 tariffs affect apparel sourcing?"
  tariff-optimizer ask "Compare Vietnam and India for electronics"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().StringVar(&askAPIKey, "api-key", "", "advisory service API key (overrides environment)")
}

func runAsk(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	apiKey := askAPIKey
	if apiKey == "" {
		apiKey = os.Getenv(cfg.Advisory.APIKeyEnv)
	}
	if apiKey == "" {
		return fmt.Errorf("no API key: set %s or pass --api-key", cfg.Advisory.APIKeyEnv)
	}

	client := advisor.NewClient(advisor.Config{
		APIKey:  apiKey,
		BaseURL: cfg.Advisory.BaseURL,
		Model:   cfg.Advisory.Model,
		Timeout: time.Duration(cfg.Advisory.TimeoutSeconds) * time.Second,
	})

	question := strings.Join(args, " ")
	var conv advisor.Conversation

	answer, err := client.Ask(context.Background(), &conv, question)
	if err != nil {
		// Advisory failures are warnings, never fatal to the session.
		return fmt.Errorf("advisory request failed: %w", err)
	}

	fmt.Println(answer)
	return nil
}
