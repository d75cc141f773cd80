package schemas

import (
	"errors"
	"testing"
)

const validResponse = `{
	"professional_headline": "Solar Energy Innovator",
	"optimized_bio": "Builds affordable solar prototypes for rural communities.",
	"key_project_summary": [
		{
			"project_title": "Solar Lamp",
			"summary_point_1": "Rural households lack reliable lighting.",
			"summary_point_2": "Designed a low-cost lamp with locally sourced panels.",
			"summary_point_3": "Deployed 40 units across three villages."
		}
	],
	"visual_style": {
		"theme_color": "#667eea",
		"background_gradient_start": "#1e3a5f",
		"background_gradient_end": "#0f1c2e",
		"font_style": "modern"
	}
}`

func TestValidatePortfolioResponse_Valid(t *testing.T) {
	if err := ValidatePortfolioResponse(validResponse); err != nil {
		t.Errorf("valid response rejected: %v", err)
	}
}

func TestValidatePortfolioResponse_MissingHeadline(t *testing.T) {
	payload := `{
		"optimized_bio": "bio",
		"key_project_summary": [],
		"visual_style": {
			"theme_color": "#fff",
			"background_gradient_start": "#000",
			"background_gradient_end": "#111",
			"font_style": "modern"
		}
	}`
	err := ValidatePortfolioResponse(payload)
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if len(ve.Errors) == 0 {
		t.Error("expected at least one field error")
	}
}

func TestValidatePortfolioResponse_IncompleteProjectSlots(t *testing.T) {
	payload := `{
		"professional_headline": "Maker",
		"optimized_bio": "bio",
		"key_project_summary": [
			{"project_title": "Lamp", "summary_point_1": "problem"}
		],
		"visual_style": {
			"theme_color": "#667eea",
			"background_gradient_start": "#1e3a5f",
			"background_gradient_end": "#0f1c2e",
			"font_style": "modern"
		}
	}`
	if err := ValidatePortfolioResponse(payload); err == nil {
		t.Error("expected validation error for missing summary points")
	}
}

func TestValidateJSONString_MalformedDocument(t *testing.T) {
	err := ValidateJSONString(`{"type": "object"}`, `not json at all`)
	if err == nil {
		t.Fatal("expected error for malformed document")
	}
	var le *SchemaLoadError
	if !errors.As(err, &le) {
		t.Fatalf("expected *SchemaLoadError, got %T", err)
	}
}
