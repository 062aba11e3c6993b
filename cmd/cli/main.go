// Package main is the entry point for the tariff-optimizer CLI.
package main

import (
	"os"

	"tariff-optimizer/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
