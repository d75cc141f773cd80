package generation

import (
	"context"
	"encoding/json"
	"regexp"
	"time"

	"github.com/projecthub/portfolio-engine/internal/llm"
	"github.com/projecthub/portfolio-engine/internal/schemas"
	"github.com/projecthub/portfolio-engine/internal/types"
)

// Retry budget for provider transport failures. Parse and schema failures are
// never retried: they signal model output quality, not a transient fault.
const (
	maxAttempts    = 3
	initialBackoff = time.Second
)

// ProviderGenerator delegates document generation to the external
// text-generation provider under a strict output schema, retrying transient
// transport failures with exponential backoff.
type ProviderGenerator struct {
	apiKey    string
	config    *llm.Config
	newClient func(ctx context.Context) (llm.Client, error)
	sleep     sleepFunc
}

// NewProviderGenerator creates the provider-backed strategy. The credential is
// checked at generation time so construction never fails; a missing key
// surfaces as UnconfiguredError before any network call.
func NewProviderGenerator(apiKey string, config *llm.Config) *ProviderGenerator {
	if config == nil {
		config = llm.DefaultConfig()
	}
	g := &ProviderGenerator{
		apiKey: apiKey,
		config: config,
		sleep:  sleepWithContext,
	}
	g.newClient = func(ctx context.Context) (llm.Client, error) {
		return llm.NewGeminiClient(ctx, g.config, g.apiKey)
	}
	return g
}

// Generate sends the intake-derived prompt to the provider, extracts the JSON
// payload from the response, validates it, and normalizes it into the
// document contract.
func (g *ProviderGenerator) Generate(ctx context.Context, intake *types.Intake, goal string) (*types.PortfolioDocument, error) {
	if g.apiKey == "" {
		return nil, &UnconfiguredError{Variable: "GEMINI_API_KEY"}
	}
	goal = normalizeGoal(goal)

	client, err := g.newClient(ctx)
	if err != nil {
		return nil, &ProviderUnavailableError{Attempts: 1, Cause: err}
	}
	defer func() { _ = client.Close() }()

	system := buildSystemPrompt(goal)
	query := buildUserQuery(intake, goal)

	var raw string
	err = withBackoff(ctx, maxAttempts, initialBackoff, g.sleep, func(ctx context.Context) error {
		text, callErr := client.GenerateJSON(ctx, system, query)
		if callErr != nil {
			return callErr
		}
		raw = text
		return nil
	})
	if err != nil {
		return nil, &ProviderUnavailableError{Attempts: maxAttempts, Cause: err}
	}

	return parseProviderResponse(raw, intake, goal)
}

// providerResponse mirrors the provider-side schema before normalization.
type providerResponse struct {
	Headline    string            `json:"professional_headline"`
	Bio         string            `json:"optimized_bio"`
	Projects    []providerProject `json:"key_project_summary"`
	VisualStyle types.VisualStyle `json:"visual_style"`
}

type providerProject struct {
	Title  string `json:"project_title"`
	Point1 string `json:"summary_point_1"`
	Point2 string `json:"summary_point_2"`
	Point3 string `json:"summary_point_3"`
}

// parseProviderResponse extracts the JSON payload from provider text and
// normalizes it into a validated portfolio document.
func parseProviderResponse(raw string, intake *types.Intake, goal string) (*types.PortfolioDocument, error) {
	payload := llm.ExtractJSONObject(llm.CleanJSONBlock(raw))
	if payload == "" {
		return nil, &InvalidOutputError{Reason: "no JSON object in provider output", RawOutput: raw}
	}

	if err := schemas.ValidatePortfolioResponse(payload); err != nil {
		return nil, &InvalidOutputError{Reason: "provider output violates the response schema", RawOutput: raw, Cause: err}
	}

	var resp providerResponse
	if err := json.Unmarshal([]byte(payload), &resp); err != nil {
		return nil, &InvalidOutputError{Reason: "provider output is not valid JSON", RawOutput: raw, Cause: err}
	}

	doc := normalizeDocument(&resp, intake, goal)
	if err := doc.Validate(); err != nil {
		return nil, &InvalidOutputError{Reason: "normalized document failed contract validation", RawOutput: raw, Cause: err}
	}
	return doc, nil
}

// normalizeDocument maps provider field names onto the document contract,
// reconciles the project count with the intake, and sanitizes the visual style.
func normalizeDocument(resp *providerResponse, intake *types.Intake, goal string) *types.PortfolioDocument {
	skills := intake.SkillNames()

	projects := make([]types.ProjectSummary, 0, len(resp.Projects))
	for _, p := range resp.Projects {
		projects = append(projects, types.ProjectSummary{
			Title:        p.Title,
			PointProblem: p.Point1,
			PointAction:  p.Point2,
			PointResult:  p.Point3,
		})
	}

	// The contract fixes projects length to the intake's project count, or a
	// single placeholder for an empty intake. Models occasionally invent or
	// drop entries; trim extras and synthesize missing ones locally.
	want := len(intake.Projects)
	if want == 0 {
		if len(projects) == 0 {
			projects = []types.ProjectSummary{placeholderSummary(goal)}
		} else {
			projects = projects[:1]
		}
	} else {
		if len(projects) > want {
			projects = projects[:want]
		}
		for i := len(projects); i < want; i++ {
			projects = append(projects, fallbackSummary(&intake.Projects[i], skills, goal))
		}
	}

	return &types.PortfolioDocument{
		Headline:    resp.Headline,
		Bio:         resp.Bio,
		Projects:    projects,
		VisualStyle: sanitizeStyle(resp.VisualStyle),
	}
}

var hexColorRe = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// sanitizeStyle guarantees the style invariants regardless of model quality:
// font_style always one of the four permitted values, colors always
// well-formed hex. Out-of-range values fall back to the modern defaults.
func sanitizeStyle(style types.VisualStyle) types.VisualStyle {
	if !types.IsValidFontStyle(style.FontStyle) {
		style.FontStyle = types.FontModern
	}
	if !hexColorRe.MatchString(style.ThemeColor) {
		style.ThemeColor = "#667eea"
	}
	if !hexColorRe.MatchString(style.BackgroundGradientStart) {
		style.BackgroundGradientStart = "#1e3a5f"
	}
	if !hexColorRe.MatchString(style.BackgroundGradientEnd) {
		style.BackgroundGradientEnd = "#0f1c2e"
	}
	return style
}
