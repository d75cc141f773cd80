package generation

import (
	"fmt"
	"strings"

	"github.com/projecthub/portfolio-engine/internal/prompts"
	"github.com/projecthub/portfolio-engine/internal/types"
)

// buildSystemPrompt renders the career-coach system instruction for the goal.
func buildSystemPrompt(goal string) string {
	template := prompts.MustGet("generation.json", "portfolio-system")
	return prompts.Format(template, map[string]string{"Goal": goal})
}

// buildUserQuery flattens the intake into the prompt text sent alongside the
// system instruction: identity, skills with inline proficiency, languages,
// certifications, summary, and one block per project.
func buildUserQuery(intake *types.Intake, _ string) string {
	var sb strings.Builder

	sb.WriteString(prompts.MustGet("generation.json", "portfolio-query-intro"))
	sb.WriteString(fmt.Sprintf("- Name: %s\n", intake.DisplayName()))
	sb.WriteString(fmt.Sprintf("- College: %s\n", intake.College))
	sb.WriteString(fmt.Sprintf("- Major/Passion: %s in %s\n", intake.MajorField, intake.PassionSector))
	sb.WriteString(fmt.Sprintf("- Current Skills: %s\n", skillLine(intake.Skills)))
	sb.WriteString(fmt.Sprintf("- Languages: %s\n", orDefault(strings.Join(intake.Languages, ", "), "Not specified")))
	sb.WriteString(fmt.Sprintf("- Certifications: %s\n", orDefault(strings.Join(intake.Certifications, ", "), "None")))
	sb.WriteString(fmt.Sprintf("- Summary: %s\n", orDefault(intake.Summary, "No summary provided")))
	sb.WriteString(prompts.MustGet("generation.json", "portfolio-query-projects-intro"))
	sb.WriteString(flattenProjects(intake.Projects))
	sb.WriteString("\n")

	return sb.String()
}

// skillLine joins skills with proficiency annotated inline, e.g. "CAD (4/5), Welding".
func skillLine(skills []types.Skill) string {
	if len(skills) == 0 {
		return "Not specified"
	}
	parts := make([]string, 0, len(skills))
	for _, s := range skills {
		if s.Name == "" {
			continue
		}
		parts = append(parts, s.String())
	}
	if len(parts) == 0 {
		return "Not specified"
	}
	return strings.Join(parts, ", ")
}

// flattenProjects renders each project as a title/role/description block.
func flattenProjects(projects []types.ProjectIntake) string {
	if len(projects) == 0 {
		return "No projects listed"
	}
	blocks := make([]string, 0, len(projects))
	for _, p := range projects {
		name := orDefault(p.Name, "Untitled")
		role := orDefault(p.Role, "Creator")
		blocks = append(blocks, fmt.Sprintf("Project Title: %s. Role: %s. Description: %s", name, role, p.Description))
	}
	return strings.Join(blocks, "\n---\n")
}

func orDefault(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
