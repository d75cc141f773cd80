// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config represents CLI and server configuration that can be loaded from a
// JSON file or the environment. All fields are optional; missing values use
// defaults or must be provided via CLI flags.
type Config struct {
	Port        int    `json:"port,omitempty"`         // HTTP server port
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	Strategy          string `json:"strategy,omitempty"`           // Generation strategy: "provider" or "local"
	ChromePath        string `json:"chrome_path,omitempty"`        // Browser binary override for rendering
	RenderConcurrency int    `json:"render_concurrency,omitempty"` // Max parallel browser launches
}

// FromEnv builds a configuration from environment variables.
func FromEnv() Config {
	cfg := Config{
		Port:        8080,
		APIKey:      os.Getenv("GEMINI_API_KEY"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Strategy:    os.Getenv("GENERATION_STRATEGY"),
		ChromePath:  os.Getenv("CHROME_PATH"),
	}
	if port, err := strconv.Atoi(os.Getenv("PORT")); err == nil && port > 0 {
		cfg.Port = port
	}
	if n, err := strconv.Atoi(os.Getenv("RENDER_CONCURRENCY")); err == nil && n > 0 {
		cfg.RenderConcurrency = n
	}
	return cfg
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.RenderConcurrency < 0 {
		return fmt.Errorf("config error: 'render_concurrency' must be non-negative")
	}
	if c.Strategy != "" && c.Strategy != "provider" && c.Strategy != "local" {
		return fmt.Errorf("config error: 'strategy' must be \"provider\" or \"local\", got %q", c.Strategy)
	}
	if c.ChromePath != "" {
		if _, err := os.Stat(c.ChromePath); os.IsNotExist(err) {
			return fmt.Errorf("config error: chrome binary not found: %s", c.ChromePath)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from
// defaults. File values act as defaults for flags and environment values.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.Strategy == "" {
		result.Strategy = defaults.Strategy
	}
	if result.ChromePath == "" {
		result.ChromePath = defaults.ChromePath
	}
	if result.RenderConcurrency == 0 {
		result.RenderConcurrency = defaults.RenderConcurrency
	}

	return result
}
