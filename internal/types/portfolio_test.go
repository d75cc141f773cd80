package types

import (
	"testing"
)

func validDocument() *PortfolioDocument {
	return &PortfolioDocument{
		Headline: "Solar Energy Innovator",
		Bio:      "Builds affordable solar prototypes.",
		Projects: []ProjectSummary{{
			Title:        "Solar Lamp",
			PointProblem: "Rural households lack reliable lighting.",
			PointAction:  "Designed a low-cost lamp with locally sourced panels.",
			PointResult:  "Deployed 40 units across three villages.",
		}},
		VisualStyle: VisualStyle{
			ThemeColor:              "#667eea",
			BackgroundGradientStart: "#1e3a5f",
			BackgroundGradientEnd:   "#0f1c2e",
			FontStyle:               FontModern,
		},
	}
}

func TestPortfolioDocumentValidate_OK(t *testing.T) {
	if err := validDocument().Validate(); err != nil {
		t.Errorf("valid document rejected: %v", err)
	}
}

func TestPortfolioDocumentValidate_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PortfolioDocument)
	}{
		{name: "empty headline", mutate: func(d *PortfolioDocument) { d.Headline = "" }},
		{name: "no projects", mutate: func(d *PortfolioDocument) { d.Projects = nil }},
		{name: "missing result slot", mutate: func(d *PortfolioDocument) { d.Projects[0].PointResult = "" }},
		{name: "unknown font style", mutate: func(d *PortfolioDocument) { d.VisualStyle.FontStyle = "gothic" }},
		{name: "malformed theme color", mutate: func(d *PortfolioDocument) { d.VisualStyle.ThemeColor = "blue" }},
		{name: "malformed gradient", mutate: func(d *PortfolioDocument) { d.VisualStyle.BackgroundGradientEnd = "#zzzzzz" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := validDocument()
			tt.mutate(doc)
			if err := doc.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestIsValidFontStyle(t *testing.T) {
	for _, style := range FontStyles() {
		if !IsValidFontStyle(style) {
			t.Errorf("IsValidFontStyle(%q) = false", style)
		}
	}
	if IsValidFontStyle("gothic") {
		t.Error(`IsValidFontStyle("gothic") = true`)
	}
}
