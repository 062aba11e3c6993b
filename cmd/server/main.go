// Package main - Entry point for the tariff-optimizer API server
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"tariff-optimizer/api"
	"tariff-optimizer/internal/advisor"
	"tariff-optimizer/internal/config"
	"tariff-optimizer/internal/logging"
)

const version = "0.1.0"

func main() {
	addr := flag.String("addr", ":8080", "Server address")
	cfgPath := flag.String("config", "", "Config file path")
	flag.Parse()

	path := *cfgPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	config.Set(cfg)

	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
	defer logging.Sync()

	// Advisory stays optional: without a key the endpoint reports a
	// recoverable failure instead of refusing to start.
	var advisory *advisor.Client
	if apiKey := os.Getenv(cfg.Advisory.APIKeyEnv); apiKey != "" {
		advisory = advisor.NewClient(advisor.Config{
			APIKey:  apiKey,
			BaseURL: cfg.Advisory.BaseURL,
			Model:   cfg.Advisory.Model,
			Timeout: time.Duration(cfg.Advisory.TimeoutSeconds) * time.Second,
		})
	} else {
		logging.Warn("advisory service disabled",
			zap.String("missing_env", cfg.Advisory.APIKeyEnv))
	}

	server := api.NewServer(version, advisory)

	logging.Info("starting tariff-optimizer server",
		zap.String("addr", *addr),
		zap.String("version", version))

	if err := server.ListenAndServe(*addr); err != nil {
		logging.Fatal("server failed", zap.Error(err))
	}
}
