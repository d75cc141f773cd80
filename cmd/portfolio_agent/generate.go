package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/projecthub/portfolio-engine/internal/generation"
	"github.com/projecthub/portfolio-engine/internal/observability"
	"github.com/projecthub/portfolio-engine/internal/types"
)

var (
	generateIntakePath string
	generateGoal       string
	generateStrategy   string
	generateAPIKey     string
	generateOutPath    string
	generateVerbose    bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a portfolio document from an intake file",
	Long: `Reads a maker intake JSON file and produces a normalized portfolio document.

The provider strategy calls the Gemini API (requires GEMINI_API_KEY); the local strategy synthesizes the document offline and is fully deterministic.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateIntakePath, "intake", "i", "", "Path to intake JSON file (required)")
	generateCmd.Flags().StringVarP(&generateGoal, "goal", "g", "", "The maker's stated goal for the portfolio")
	generateCmd.Flags().StringVar(&generateStrategy, "strategy", "provider", `Generation strategy: "provider" or "local"`)
	generateCmd.Flags().StringVar(&generateAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	generateCmd.Flags().StringVarP(&generateOutPath, "out", "o", "", "Write the document to this file instead of stdout")
	generateCmd.Flags().BoolVarP(&generateVerbose, "verbose", "v", false, "Print intake and document summaries")
	_ = generateCmd.MarkFlagRequired("intake")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(_ *cobra.Command, _ []string) error {
	intake, err := loadIntake(generateIntakePath)
	if err != nil {
		return err
	}

	apiKey := generateAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}

	generator := generation.New(generation.Options{
		Strategy: generation.ParseStrategy(generateStrategy),
		APIKey:   apiKey,
	})

	printer := observability.NewPrinter(os.Stderr)
	if generateVerbose {
		printer.PrintIntake(intake)
	}

	doc, err := generator.Generate(context.Background(), intake, generateGoal)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}
	if generateVerbose {
		printer.PrintPortfolio(doc)
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}

	if generateOutPath != "" {
		if err := os.WriteFile(generateOutPath, append(out, '\n'), 0o644); err != nil {
			return fmt.Errorf("failed to write document: %w", err)
		}
		fmt.Printf("Portfolio document written to %s\n", generateOutPath)
		return nil
	}
	fmt.Println(string(out))
	return nil
}

// loadIntake reads and validates an intake file.
func loadIntake(path string) (*types.Intake, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read intake file: %w", err)
	}

	var intake types.Intake
	if err := json.Unmarshal(data, &intake); err != nil {
		return nil, fmt.Errorf("failed to parse intake JSON: %w", err)
	}
	if err := intake.Validate(); err != nil {
		return nil, err
	}
	return &intake, nil
}
