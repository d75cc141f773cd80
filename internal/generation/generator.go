// Package generation implements the portfolio content generator: it turns a
// maker's raw intake plus a stated goal into a normalized portfolio document.
// Two interchangeable strategies exist behind one interface: a Gemini-backed
// strategy with bounded retry, and a deterministic local template strategy
// that needs no network at all. Both honor the same output contract, so the
// renderer never knows which one produced a document.
package generation

import (
	"context"
	"strings"

	"github.com/projecthub/portfolio-engine/internal/llm"
	"github.com/projecthub/portfolio-engine/internal/types"
)

// Strategy selects a generator implementation.
type Strategy string

// Supported strategies.
const (
	// StrategyProvider delegates to the external text-generation provider.
	StrategyProvider Strategy = "provider"
	// StrategyLocal synthesizes the document deterministically with no network call.
	StrategyLocal Strategy = "local"
)

// DefaultGoal is used when the caller supplies no goal string.
const DefaultGoal = "showcase their work"

// Generator produces a portfolio document from intake data and a goal.
type Generator interface {
	Generate(ctx context.Context, intake *types.Intake, goal string) (*types.PortfolioDocument, error)
}

// Options configures generator construction.
type Options struct {
	Strategy  Strategy
	APIKey    string      // Provider credential; required for StrategyProvider
	LLMConfig *llm.Config // Optional model settings for the provider strategy
}

// New returns the generator selected by opts.Strategy. Unknown strategies
// fall through to the provider strategy, matching the configuration default.
func New(opts Options) Generator {
	switch opts.Strategy {
	case StrategyLocal:
		return NewLocalGenerator()
	default:
		return NewProviderGenerator(opts.APIKey, opts.LLMConfig)
	}
}

// ParseStrategy maps a user-supplied string onto a Strategy, defaulting to the
// provider strategy for empty or unknown values.
func ParseStrategy(s string) Strategy {
	if Strategy(strings.ToLower(strings.TrimSpace(s))) == StrategyLocal {
		return StrategyLocal
	}
	return StrategyProvider
}

// normalizeGoal applies the default goal phrase when the caller left it blank.
func normalizeGoal(goal string) string {
	goal = strings.TrimSpace(goal)
	if goal == "" {
		return DefaultGoal
	}
	return goal
}
