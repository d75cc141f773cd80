package rendering

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"github.com/projecthub/portfolio-engine/internal/types"
)

func parsePage(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func sampleData() *PortfolioData {
	return &PortfolioData{
		Name:     "Ava Osman",
		Headline: "Solar Energy Innovator",
		Bio:      "Builds affordable solar prototypes.",
		Skills:   []string{"Soldering", "CAD"},
		Projects: []ProjectVisual{
			{
				Name: "Solar Lamp",
				Summary: &types.ProjectSummary{
					Title:        "Solar Lamp",
					PointProblem: "Rural households lack reliable lighting.",
					PointAction:  "Designed a low-cost lamp.",
					PointResult:  "Deployed 40 units.",
				},
				ToolsUsed: []string{"Soldering iron"},
				Skills:    []string{"Electronics"},
			},
		},
		VisualStyle: &types.VisualStyle{
			ThemeColor:              "#10b981",
			BackgroundGradientStart: "#064e3b",
			BackgroundGradientEnd:   "#022c22",
			FontStyle:               types.FontTech,
		},
	}
}

func TestBuildHTML_PlaceholderUsesFirstInitial(t *testing.T) {
	html, err := BuildHTML(sampleData())
	require.NoError(t, err)

	doc := parsePage(t, html)
	require.Equal(t, 0, doc.Find("img.profile-image").Length())
	placeholder := doc.Find(".profile-placeholder")
	require.Equal(t, 1, placeholder.Length())
	require.Equal(t, "A", strings.TrimSpace(placeholder.Text()))
}

func TestBuildHTML_ProfileImageReplacesPlaceholder(t *testing.T) {
	data := sampleData()
	data.ProfileImage = "https://example.com/ava.jpg"
	html, err := BuildHTML(data)
	require.NoError(t, err)

	doc := parsePage(t, html)
	img := doc.Find("img.profile-image")
	require.Equal(t, 1, img.Length())
	src, _ := img.Attr("src")
	require.Equal(t, "https://example.com/ava.jpg", src)
	require.Equal(t, 0, doc.Find(".profile-placeholder").Length())
}

func TestBuildHTML_SummaryPointsPreferredOverDescription(t *testing.T) {
	data := sampleData()
	data.Projects[0].Description = "raw description that should not render"
	html, err := BuildHTML(data)
	require.NoError(t, err)

	doc := parsePage(t, html)
	points := doc.Find(".project-points li")
	require.Equal(t, 3, points.Length())
	require.Equal(t, 0, doc.Find(".project-desc").Length())
	require.NotContains(t, html, "raw description that should not render")
}

func TestBuildHTML_DescriptionFallbackWithoutSummary(t *testing.T) {
	data := sampleData()
	data.Projects[0].Summary = nil
	data.Projects[0].Description = "A lamp for off-grid homes."
	html, err := BuildHTML(data)
	require.NoError(t, err)

	doc := parsePage(t, html)
	require.Equal(t, 0, doc.Find(".project-points").Length())
	require.Equal(t, "A lamp for off-grid homes.", strings.TrimSpace(doc.Find(".project-desc").Text()))
}

func TestBuildHTML_CapsProjectImagesAtThree(t *testing.T) {
	data := sampleData()
	data.Projects[0].Images = []string{
		"https://example.com/1.jpg",
		"https://example.com/2.jpg",
		"https://example.com/3.jpg",
		"https://example.com/4.jpg",
		"https://example.com/5.jpg",
	}
	html, err := BuildHTML(data)
	require.NoError(t, err)

	doc := parsePage(t, html)
	require.Equal(t, 3, doc.Find("img.project-img").Length())
}

func TestBuildHTML_ThemeAndFontApplied(t *testing.T) {
	html, err := BuildHTML(sampleData())
	require.NoError(t, err)

	require.Contains(t, html, "'Courier New', monospace")
	require.Contains(t, html, "#064e3b")
	require.Contains(t, html, "#10b981")
}

func TestBuildHTML_UnknownFontFallsBackToModern(t *testing.T) {
	data := sampleData()
	data.VisualStyle.FontStyle = "brutalist"
	html, err := BuildHTML(data)
	require.NoError(t, err)

	require.Contains(t, html, "-apple-system")
}

func TestBuildHTML_EmptyDataGetsDefaults(t *testing.T) {
	html, err := BuildHTML(&PortfolioData{})
	require.NoError(t, err)

	doc := parsePage(t, html)
	require.Equal(t, "Your Name", strings.TrimSpace(doc.Find(".name").Text()))
	require.Equal(t, "Professional Headline", strings.TrimSpace(doc.Find(".headline").Text()))
	require.Equal(t, "Y", strings.TrimSpace(doc.Find(".profile-placeholder").Text()))
	require.Contains(t, html, "#667eea")
}

func TestBuildHTML_NilDataIsMissingInput(t *testing.T) {
	_, err := BuildHTML(nil)
	var missing *MissingInputError
	require.ErrorAs(t, err, &missing)
	require.Equal(t, "portfolio_data", missing.Field)
}

func TestFromDocument_CarriesIntakeVisuals(t *testing.T) {
	intakeDoc := &types.PortfolioDocument{
		Headline: "Maker",
		Bio:      "bio",
		Projects: []types.ProjectSummary{
			{Title: "Solar Lamp", PointProblem: "p", PointAction: "a", PointResult: "r"},
		},
		VisualStyle: types.VisualStyle{
			ThemeColor:              "#667eea",
			BackgroundGradientStart: "#1e3a5f",
			BackgroundGradientEnd:   "#0f1c2e",
			FontStyle:               types.FontModern,
		},
	}
	intake := &types.Intake{
		FirstName: "Ava",
		LastName:  "Osman",
		Skills:    []types.Skill{{Name: "Soldering", Proficiency: 4}},
		Projects: []types.ProjectIntake{
			{Name: "Solar Lamp", Images: []string{"https://example.com/1.jpg"}, ToolsUsed: []string{"Iron"}},
		},
	}

	data := FromDocument(intakeDoc, intake, "")
	require.Equal(t, "Ava Osman", data.Name)
	require.Equal(t, []string{"Soldering"}, data.Skills)
	require.Len(t, data.Projects, 1)
	require.Equal(t, []string{"https://example.com/1.jpg"}, data.Projects[0].Images)
	require.NotNil(t, data.Projects[0].Summary)
}
