package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance for contract types.
var validate = validator.New()

// Font style values permitted in a visual style descriptor.
const (
	FontModern  = "modern"
	FontClassic = "classic"
	FontTech    = "tech"
	FontPlayful = "playful"
)

// FontStyles lists the permitted font_style values in a stable order.
func FontStyles() []string {
	return []string{FontModern, FontClassic, FontTech, FontPlayful}
}

// IsValidFontStyle reports whether s is one of the permitted font styles.
func IsValidFontStyle(s string) bool {
	switch s {
	case FontModern, FontClassic, FontTech, FontPlayful:
		return true
	}
	return false
}

// ProjectSummary is the fixed three-slot STAR-style summary for one project:
// the problem addressed, the actions and skills applied, and the result.
type ProjectSummary struct {
	Title        string `json:"title" validate:"required"`
	PointProblem string `json:"point_problem" validate:"required"`
	PointAction  string `json:"point_action" validate:"required"`
	PointResult  string `json:"point_result" validate:"required"`
}

// VisualStyle describes the theme applied when rendering a portfolio.
type VisualStyle struct {
	ThemeColor              string `json:"theme_color" validate:"required,hexcolor"`
	BackgroundGradientStart string `json:"background_gradient_start" validate:"required,hexcolor"`
	BackgroundGradientEnd   string `json:"background_gradient_end" validate:"required,hexcolor"`
	FontStyle               string `json:"font_style" validate:"required,oneof=modern classic tech playful"`
}

// PortfolioDocument is the normalized output contract shared by every generator
// strategy. The renderer consumes this shape and never branches on which
// strategy produced it.
type PortfolioDocument struct {
	Headline    string           `json:"headline" validate:"required"`
	Bio         string           `json:"bio"`
	Projects    []ProjectSummary `json:"projects" validate:"required,min=1,dive"`
	VisualStyle VisualStyle      `json:"visual_style" validate:"required"`
}

// Validate checks the document against the output contract: non-empty headline,
// at least one project with all three summary slots filled, a permitted font
// style, and well-formed hex theme colors.
func (d *PortfolioDocument) Validate() error {
	if err := validate.Struct(d); err != nil {
		return fmt.Errorf("invalid portfolio document: %w", err)
	}
	return nil
}
