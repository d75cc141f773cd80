// Package rendering implements the static portfolio renderer: it synthesizes a
// self-contained HTML page from a portfolio document and captures it as a
// fixed-resolution PNG through a headless rendering engine.
package rendering

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/projecthub/portfolio-engine/internal/types"
)

// PortfolioData is the renderer's input: the generated document fields plus
// the visuals the document itself doesn't carry (profile image, per-project
// images and tool lists). Raw description text acts as the degraded fallback
// when a project has no generated summary.
type PortfolioData struct {
	Name         string             `json:"name"`
	Headline     string             `json:"headline"`
	Bio          string             `json:"bio"`
	Skills       []string           `json:"skills,omitempty"`
	Projects     []ProjectVisual    `json:"projects,omitempty"`
	ProfileImage string             `json:"profileImage,omitempty"`
	VisualStyle  *types.VisualStyle `json:"visual_style,omitempty"`
}

// ProjectVisual is one project card: either a generated STAR summary or a raw
// description, plus optional imagery and tags.
type ProjectVisual struct {
	Name        string                `json:"name"`
	Description string                `json:"description,omitempty"`
	Summary     *types.ProjectSummary `json:"summary,omitempty"`
	Images      []string              `json:"images,omitempty"`
	Skills      []string              `json:"skills,omitempty"`
	ToolsUsed   []string              `json:"toolsUsed,omitempty"`
}

// FromDocument builds renderer input from a generated document and the intake
// visuals that accompany it.
func FromDocument(doc *types.PortfolioDocument, intake *types.Intake, profileImage string) *PortfolioData {
	data := &PortfolioData{
		Headline:     doc.Headline,
		Bio:          doc.Bio,
		ProfileImage: profileImage,
		VisualStyle:  &doc.VisualStyle,
	}
	if intake != nil {
		data.Name = intake.DisplayName()
		data.Skills = intake.SkillNames()
	}
	for i := range doc.Projects {
		summary := doc.Projects[i]
		visual := ProjectVisual{Name: summary.Title, Summary: &summary}
		if intake != nil && i < len(intake.Projects) {
			p := intake.Projects[i]
			visual.Images = p.Images
			visual.Skills = p.Skills
			visual.ToolsUsed = p.ToolsUsed
		}
		data.Projects = append(data.Projects, visual)
	}
	return data
}

type projectView struct {
	Number    string
	Title     string
	Desc      string
	Points    []string
	ToolsLine string
	Skills    []string
	Images    []template.URL
}

type pageView struct {
	Name         string
	Headline     string
	Bio          string
	Initial      string
	ProfileImage template.URL
	Skills       []string
	Projects     []projectView
	Style        template.CSS
}

// BuildHTML synthesizes the self-contained portfolio page. All styling is
// inline and driven by the theme parameters, so the markup has no external
// stylesheet dependency.
func BuildHTML(data *PortfolioData) (string, error) {
	if data == nil {
		return "", &MissingInputError{Field: "portfolio_data"}
	}

	view := pageView{
		Name:         orDefault(data.Name, "Your Name"),
		Headline:     orDefault(data.Headline, "Professional Headline"),
		Bio:          orDefault(data.Bio, "Your professional bio goes here."),
		ProfileImage: template.URL(data.ProfileImage), //nolint:gosec // caller-supplied image ref, data URLs included
		Skills:       data.Skills,
	}
	view.Initial = initialOf(view.Name)
	view.Style = buildStyle(effectiveStyle(data.VisualStyle))

	for i, p := range data.Projects {
		pv := projectView{
			Number:    fmt.Sprintf("%02d", i+1),
			Title:     orDefault(p.Name, "Untitled Project"),
			ToolsLine: strings.Join(p.ToolsUsed, ", "),
			Skills:    p.Skills,
		}
		if p.Summary != nil {
			pv.Title = orDefault(p.Summary.Title, pv.Title)
			pv.Points = []string{p.Summary.PointProblem, p.Summary.PointAction, p.Summary.PointResult}
		} else {
			pv.Desc = p.Description
		}
		images := p.Images
		if len(images) > 3 {
			images = images[:3]
		}
		for _, img := range images {
			pv.Images = append(pv.Images, template.URL(img)) //nolint:gosec // see above
		}
		view.Projects = append(view.Projects, pv)
	}

	var sb strings.Builder
	if err := pageTemplate.Execute(&sb, view); err != nil {
		return "", fmt.Errorf("failed to execute portfolio template: %w", err)
	}
	return sb.String(), nil
}

// initialOf returns the uppercased first rune of name for the avatar placeholder.
func initialOf(name string) string {
	for _, r := range strings.TrimSpace(name) {
		return strings.ToUpper(string(r))
	}
	return "?"
}

func orDefault(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

// buildStyle assembles the theme-parameterized stylesheet. Colors have been
// validated as hex strings upstream; font stacks come from the fixed table.
func buildStyle(style types.VisualStyle) template.CSS {
	css := fmt.Sprintf(pageCSS,
		FontFamilyFor(style.FontStyle),
		style.BackgroundGradientStart,
		style.BackgroundGradientEnd,
		style.ThemeColor,
		style.ThemeColor,
		style.BackgroundGradientEnd,
		style.ThemeColor,
		style.ThemeColor,
		style.ThemeColor,
		style.ThemeColor,
		style.BackgroundGradientEnd,
		style.ThemeColor,
		style.ThemeColor,
		style.ThemeColor,
		style.ThemeColor,
	)
	return template.CSS(css) //nolint:gosec // assembled from validated theme values only
}

const pageCSS = `
    * { margin: 0; padding: 0; box-sizing: border-box; }
    body {
      font-family: %s;
      background: linear-gradient(135deg, %s 0%%, %s 100%%);
      min-height: 100vh;
      color: #ffffff;
      padding: 60px;
    }
    .container { max-width: 1080px; margin: 0 auto; }
    .header {
      display: flex;
      align-items: center;
      gap: 40px;
      margin-bottom: 60px;
      padding: 40px;
      background: rgba(255, 255, 255, 0.05);
      border-radius: 24px;
      border-left: 5px solid %s;
    }
    .profile-image {
      width: 150px;
      height: 150px;
      border-radius: 50%%;
      object-fit: cover;
      border: 4px solid rgba(255, 255, 255, 0.2);
    }
    .profile-placeholder {
      width: 150px;
      height: 150px;
      border-radius: 50%%;
      background: linear-gradient(135deg, %s 0%%, %s 100%%);
      display: flex;
      align-items: center;
      justify-content: center;
      font-size: 60px;
      font-weight: bold;
      color: white;
    }
    .header-info { flex: 1; }
    .name { font-size: 42px; font-weight: 700; margin-bottom: 8px; }
    .headline { font-size: 22px; color: %s; margin-bottom: 16px; filter: brightness(1.3); }
    .bio { font-size: 16px; line-height: 1.7; color: rgba(255, 255, 255, 0.8); }
    .skills-section { margin-bottom: 60px; }
    .skills-section h2 {
      font-size: 28px;
      margin-bottom: 20px;
      color: #fff;
      border-bottom: 2px solid %s;
      display: inline-block;
      padding-bottom: 5px;
    }
    .skills-list { display: flex; flex-wrap: wrap; gap: 12px; }
    .skill-badge {
      background: %s;
      padding: 10px 20px;
      border-radius: 30px;
      font-size: 14px;
      font-weight: 500;
      border: 1px solid rgba(255,255,255,0.1);
    }
    .projects-section h2 {
      font-size: 28px;
      margin-bottom: 30px;
      color: #fff;
      border-bottom: 2px solid %s;
      display: inline-block;
      padding-bottom: 5px;
    }
    .project-card {
      background: rgba(255, 255, 255, 0.05);
      border-radius: 20px;
      padding: 30px;
      margin-bottom: 30px;
      display: flex;
      gap: 30px;
      border: 1px solid rgba(255, 255, 255, 0.1);
    }
    .project-number {
      font-size: 48px;
      font-weight: 800;
      color: rgba(255, 255, 255, 0.05);
      line-height: 1;
      -webkit-text-stroke: 1px %s;
    }
    .project-content { flex: 1; }
    .project-title { font-size: 24px; font-weight: 600; margin-bottom: 12px; color: #fff; }
    .project-desc { font-size: 15px; line-height: 1.6; color: rgba(255, 255, 255, 0.7); margin-bottom: 16px; }
    .project-points { margin: 0 0 16px 20px; font-size: 15px; line-height: 1.6; color: rgba(255, 255, 255, 0.7); }
    .tools { font-size: 13px; color: rgba(255, 255, 255, 0.6); margin-bottom: 12px; }
    .tools-label { color: %s; font-weight: 500; filter: brightness(1.3); }
    .project-skills { display: flex; flex-wrap: wrap; gap: 8px; }
    .skill-tag {
      background: rgba(255, 255, 255, 0.1);
      color: %s;
      padding: 4px 12px;
      border-radius: 15px;
      font-size: 12px;
      filter: brightness(1.3);
    }
    .project-images { display: flex; flex-direction: column; gap: 10px; max-width: 280px; }
    .project-img {
      width: 100%%;
      height: 120px;
      object-fit: cover;
      border-radius: 12px;
      border: 2px solid rgba(255, 255, 255, 0.1);
    }
    .footer {
      text-align: center;
      margin-top: 60px;
      padding-top: 40px;
      border-top: 1px solid rgba(255, 255, 255, 0.1);
      color: rgba(255, 255, 255, 0.4);
      font-size: 14px;
    }
`

var pageTemplate = template.Must(template.New("portfolio").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <style>{{.Style}}</style>
</head>
<body>
  <div class="container">
    <div class="header">
      {{if .ProfileImage}}<img src="{{.ProfileImage}}" alt="{{.Name}}" class="profile-image" />{{else}}<div class="profile-placeholder">{{.Initial}}</div>{{end}}
      <div class="header-info">
        <h1 class="name">{{.Name}}</h1>
        <p class="headline">{{.Headline}}</p>
        <p class="bio">{{.Bio}}</p>
      </div>
    </div>
    {{if .Skills}}
    <div class="skills-section">
      <h2>Skills</h2>
      <div class="skills-list">
        {{range .Skills}}<span class="skill-badge">{{.}}</span>{{end}}
      </div>
    </div>
    {{end}}
    <div class="projects-section">
      <h2>Projects</h2>
      {{range .Projects}}
      <div class="project-card">
        <div class="project-number">{{.Number}}</div>
        <div class="project-content">
          <h3 class="project-title">{{.Title}}</h3>
          {{if .Points}}<ul class="project-points">{{range .Points}}<li>{{.}}</li>{{end}}</ul>{{else if .Desc}}<p class="project-desc">{{.Desc}}</p>{{end}}
          {{if .ToolsLine}}<div class="tools"><span class="tools-label">Tools:</span> {{.ToolsLine}}</div>{{end}}
          {{if .Skills}}<div class="project-skills">{{range .Skills}}<span class="skill-tag">{{.}}</span>{{end}}</div>{{end}}
        </div>
        {{if .Images}}
        <div class="project-images">
          {{$title := .Title}}{{range .Images}}<img src="{{.}}" alt="{{$title}}" class="project-img" />{{end}}
        </div>
        {{end}}
      </div>
      {{end}}
    </div>
    <div class="footer">
      Generated by The Project Hub
    </div>
  </div>
</body>
</html>
`))
