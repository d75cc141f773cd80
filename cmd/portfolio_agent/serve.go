package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/projecthub/portfolio-engine/internal/config"
	"github.com/projecthub/portfolio-engine/internal/generation"
	"github.com/projecthub/portfolio-engine/internal/server"
)

var (
	serveConfigPath string
	servePort       int
	serveStrategy   string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for portfolio generation and rendering.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (defaults to PORT env var or 8080)")
	serveCmd.Flags().StringVar(&serveStrategy, "strategy", "", `Generation strategy: "provider" or "local" (defaults to GENERATION_STRATEGY env var)`)
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := config.FromEnv()

	if serveConfigPath != "" {
		loaded, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded.MergeWithDefaults(cfg)
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}
	if cmd.Flags().Changed("strategy") {
		cfg.Strategy = serveStrategy
	}
	if cfg.RenderConcurrency == 0 {
		cfg.RenderConcurrency = 2
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	srv, err := server.New(server.Config{
		Port:              cfg.Port,
		APIKey:            cfg.APIKey,
		DatabaseURL:       cfg.DatabaseURL,
		Strategy:          generation.ParseStrategy(cfg.Strategy),
		ChromePath:        cfg.ChromePath,
		RenderConcurrency: cfg.RenderConcurrency,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
