// Package cmd provides the CLI commands for tariff-optimizer.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tariff-optimizer/internal/config"
	"tariff-optimizer/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "tariff-optimizer",
	Short: "Rank alternative sourcing countries by tariff savings",
	Long: `tariff-optimizer looks up hand-curated tariff rates and supply-strength
ratings per (country, product category) pair and ranks alternative sourcing
countries by estimated annual savings.

Examples:
  tariff-optimizer optimize --category Apparel --country China --value 100000
  tariff-optimizer optimize --category Electronics --country Vietnam --value 250000 --export results.xlsx
  tariff-optimizer reference categories
  tariff-optimizer ask "Which ASEAN countries suit apparel sourcing?"`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.tariff-optimizer/config.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(optimizeCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(referenceCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func initConfig() {
	path := cfgFile
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	config.Set(cfg)

	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("tariff-optimizer version 0.1.0")
	},
}

// configCmd writes the effective configuration to the default location
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Write the effective configuration to disk",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFile
		if path == "" {
			path = config.DefaultPath()
		}
		if err := config.Get().Save(path); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		fmt.Printf("Configuration written to %s\n", path)
		return nil
	},
}
