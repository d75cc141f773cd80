package llm

import "github.com/google/generative-ai-go/genai"

// PortfolioResponseSchema returns the structured-output schema sent with every
// generation request. It pins the response to the portfolio summary shape:
// headline, bio, three-point STAR summaries per project, and a visual style.
func PortfolioResponseSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"professional_headline": {
				Type:        genai.TypeString,
				Description: "A concise, attention-grabbing professional headline (like a LinkedIn title).",
			},
			"optimized_bio": {
				Type:        genai.TypeString,
				Description: "A rewritten, professional summary paragraph (max 100 words) tailored to the user's goal.",
			},
			"key_project_summary": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"project_title": {Type: genai.TypeString},
						"summary_point_1": {
							Type:        genai.TypeString,
							Description: "A bullet point summarizing the problem solved (S- Situation/Problem).",
						},
						"summary_point_2": {
							Type:        genai.TypeString,
							Description: "A bullet point summarizing the actions taken and skills used (A- Action/Skill).",
						},
						"summary_point_3": {
							Type:        genai.TypeString,
							Description: "A bullet point quantifying the result or impact (R- Result/Impact).",
						},
					},
				},
			},
			"visual_style": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"theme_color": {
						Type:        genai.TypeString,
						Description: "A primary hex color code (e.g. #1e40af) that matches the user's professional vibe.",
					},
					"background_gradient_start": {
						Type:        genai.TypeString,
						Description: "Start color for background gradient.",
					},
					"background_gradient_end": {
						Type:        genai.TypeString,
						Description: "End color for background gradient.",
					},
					"font_style": {
						Type:        genai.TypeString,
						Description: "Suggested font style: 'modern', 'classic', 'tech', or 'playful'.",
					},
				},
			},
		},
		Required: []string{"professional_headline", "optimized_bio", "key_project_summary", "visual_style"},
	}
}
