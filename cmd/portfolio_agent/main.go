// Package main provides the entry point for the Portfolio Engine CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "portfolio_agent",
	Short: "Portfolio Engine HTTP API Server",
	Long:  "Portfolio Engine turns a maker's raw profile into a polished portfolio document and renders it as a shareable PNG, via REST API or directly from the command line.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
