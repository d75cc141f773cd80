// Package llm provides the generative-text client abstraction used by the
// portfolio generator. It wraps the Gemini SDK behind a small interface so the
// generator and its tests never depend on the provider directly.
package llm

import "time"

// Config holds the model configuration for provider-backed generation.
type Config struct {
	Model       string        // Gemini model name
	Temperature float32       // Sampling temperature; low for consistent structure
	Timeout     time.Duration // Per-call deadline applied around GenerateContent
}

// DefaultConfig returns the default Gemini configuration.
func DefaultConfig() *Config {
	return &Config{
		Model:       "gemini-2.0-flash",
		Temperature: 0.2,
		Timeout:     60 * time.Second,
	}
}
