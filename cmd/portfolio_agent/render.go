package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/projecthub/portfolio-engine/internal/rendering"
)

var (
	renderDataPath   string
	renderOutPath    string
	renderChromePath string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a portfolio document as a PNG image",
	Long: `Reads portfolio data JSON (as produced by the generate command plus optional visuals) and captures it as a full-page PNG through headless Chrome.

Set CHROME_PATH or --chrome-path when the browser binary is not on the default lookup path.`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderDataPath, "data", "d", "", "Path to portfolio data JSON file (required)")
	renderCmd.Flags().StringVarP(&renderOutPath, "out", "o", "portfolio.png", "Output PNG path")
	renderCmd.Flags().StringVar(&renderChromePath, "chrome-path", "", "Browser binary override (defaults to CHROME_PATH env var)")
	_ = renderCmd.MarkFlagRequired("data")
	rootCmd.AddCommand(renderCmd)
}

func runRender(_ *cobra.Command, _ []string) error {
	raw, err := os.ReadFile(renderDataPath)
	if err != nil {
		return fmt.Errorf("failed to read portfolio data file: %w", err)
	}

	var data rendering.PortfolioData
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("failed to parse portfolio data JSON: %w", err)
	}

	chromePath := renderChromePath
	if chromePath == "" {
		chromePath = os.Getenv("CHROME_PATH")
	}

	renderer := rendering.NewRenderer(rendering.NewChromeEngine(chromePath, 1))
	artifact, err := renderer.Render(context.Background(), &data)
	if err != nil {
		return fmt.Errorf("rendering failed: %w", err)
	}

	if err := os.WriteFile(renderOutPath, artifact.PNG, 0o644); err != nil {
		return fmt.Errorf("failed to write PNG: %w", err)
	}
	fmt.Printf("Portfolio image written to %s (%d bytes)\n", renderOutPath, len(artifact.PNG))
	return nil
}
