package generation

import (
	"context"
	"strings"

	"github.com/projecthub/portfolio-engine/internal/types"
)

// LocalGenerator synthesizes a portfolio document from intake fields alone,
// with no network dependency. It is a pure function of its input: the same
// intake and goal always yield a byte-identical document, including the theme.
type LocalGenerator struct{}

// NewLocalGenerator creates the deterministic local strategy.
func NewLocalGenerator() *LocalGenerator {
	return &LocalGenerator{}
}

// themePalette holds the four preset visual themes the hash picker selects from.
var themePalette = [4]types.VisualStyle{
	{ThemeColor: "#667eea", BackgroundGradientStart: "#1e3a5f", BackgroundGradientEnd: "#0f1c2e", FontStyle: types.FontModern},
	{ThemeColor: "#f59e0b", BackgroundGradientStart: "#7c2d12", BackgroundGradientEnd: "#1c1917", FontStyle: types.FontPlayful},
	{ThemeColor: "#10b981", BackgroundGradientStart: "#064e3b", BackgroundGradientEnd: "#022c22", FontStyle: types.FontTech},
	{ThemeColor: "#8b5cf6", BackgroundGradientStart: "#312e81", BackgroundGradientEnd: "#1e1b4b", FontStyle: types.FontClassic},
}

// Generate builds the document from template text and a hash-picked theme.
func (g *LocalGenerator) Generate(_ context.Context, intake *types.Intake, goal string) (*types.PortfolioDocument, error) {
	goal = normalizeGoal(goal)
	skills := intake.SkillNames()

	doc := &types.PortfolioDocument{
		Headline:    buildHeadline(intake, skills),
		Bio:         buildBio(intake),
		Projects:    buildProjects(intake, skills, goal),
		VisualStyle: pickTheme(intake, skills),
	}
	return doc, nil
}

// buildHeadline derives the headline from name, first skill, and college.
func buildHeadline(intake *types.Intake, skills []string) string {
	name := intake.DisplayName()
	if name == "" {
		name = "Maker"
	}
	parts := []string{name}
	if len(skills) > 0 {
		parts = append(parts, skills[0]+" Maker")
	}
	if college := strings.TrimSpace(intake.College); college != "" {
		parts = append(parts, college)
	}
	return strings.Join(parts, " | ")
}

// buildBio combines the free-text summary with language and certification clauses.
func buildBio(intake *types.Intake) string {
	bio := strings.TrimSpace(intake.Summary)
	if bio == "" {
		bio = "A passionate maker building practical projects and learning in public."
	}
	if langs := joinList(intake.Languages, 5); langs != "" {
		bio += " Speaks " + langs + "."
	}
	if certs := joinList(intake.Certifications, 5); certs != "" {
		bio += " Certified in " + certs + "."
	}
	return bio
}

// buildProjects produces one STAR summary per intake project, or the single
// placeholder when the intake lists none.
func buildProjects(intake *types.Intake, skills []string, goal string) []types.ProjectSummary {
	if len(intake.Projects) == 0 {
		return []types.ProjectSummary{placeholderSummary(goal)}
	}
	summaries := make([]types.ProjectSummary, 0, len(intake.Projects))
	for i := range intake.Projects {
		summaries = append(summaries, fallbackSummary(&intake.Projects[i], skills, goal))
	}
	return summaries
}

// pickTheme selects one of the four preset themes by hashing a seed built from
// name, college, and the joined skill list. Same inputs always hash to the
// same theme; distinct profiles spread across the palette.
func pickTheme(intake *types.Intake, skills []string) types.VisualStyle {
	seed := intake.DisplayName() + "|" + intake.College + "|" + strings.Join(skills, ",")
	idx := int(hashSeed(seed)) % len(themePalette)
	if idx < 0 {
		idx += len(themePalette)
	}
	return themePalette[idx]
}

// hashSeed is a rolling polynomial hash (h = h*31 + byte) truncated to 32 bits
// signed. The exact recurrence is part of the contract: reimplementations must
// agree bit-for-bit on theme assignment for the same seed.
func hashSeed(seed string) int32 {
	var h int32
	for i := 0; i < len(seed); i++ {
		h = h*31 + int32(seed[i])
	}
	return h
}
