package rendering

import "github.com/projecthub/portfolio-engine/internal/types"

// Default theme values applied when the document carries no visual style.
const (
	defaultThemeColor    = "#667eea"
	defaultGradientStart = "#1e3a5f"
	defaultGradientEnd   = "#0f1c2e"
)

// fontFamilies maps each permitted font_style to a concrete CSS font stack.
var fontFamilies = map[string]string{
	types.FontModern:  "-apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Oxygen, Ubuntu, sans-serif",
	types.FontClassic: "'Georgia', serif",
	types.FontTech:    "'Courier New', monospace",
	types.FontPlayful: "'Comic Sans MS', 'Chalkboard SE', sans-serif",
}

// FontFamilyFor returns the CSS font stack for a font style. The mapping is
// total: any unrecognized value gets the modern stack.
func FontFamilyFor(fontStyle string) string {
	if family, ok := fontFamilies[fontStyle]; ok {
		return family
	}
	return fontFamilies[types.FontModern]
}

// effectiveStyle fills missing style fields with the defaults.
func effectiveStyle(style *types.VisualStyle) types.VisualStyle {
	out := types.VisualStyle{
		ThemeColor:              defaultThemeColor,
		BackgroundGradientStart: defaultGradientStart,
		BackgroundGradientEnd:   defaultGradientEnd,
		FontStyle:               types.FontModern,
	}
	if style == nil {
		return out
	}
	if style.ThemeColor != "" {
		out.ThemeColor = style.ThemeColor
	}
	if style.BackgroundGradientStart != "" {
		out.BackgroundGradientStart = style.BackgroundGradientStart
	}
	if style.BackgroundGradientEnd != "" {
		out.BackgroundGradientEnd = style.BackgroundGradientEnd
	}
	if style.FontStyle != "" {
		out.FontStyle = style.FontStyle
	}
	return out
}
