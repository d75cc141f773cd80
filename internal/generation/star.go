package generation

import (
	"strings"
	"unicode/utf8"

	"github.com/projecthub/portfolio-engine/internal/types"
)

// maxProblemChars bounds how much of a project description feeds the problem slot.
const maxProblemChars = 160

// fallbackSummary builds a deterministic STAR summary for one intake project.
// Each slot falls back in order: the project's own fields, the maker's
// aggregate skill list, then a generic phrase, so the three slots are always
// filled.
func fallbackSummary(p *types.ProjectIntake, aggregateSkills []string, goal string) types.ProjectSummary {
	title := strings.TrimSpace(p.Name)
	if title == "" {
		title = "Untitled Project"
	}

	problem := firstSentence(p.Description)
	if problem == "" {
		problem = "Identified a gap worth solving and scoped " + title + " from the ground up."
	}

	tools := p.ToolsUsed
	if len(tools) == 0 {
		tools = p.Skills
	}
	if len(tools) == 0 {
		tools = aggregateSkills
	}
	toolPhrase := joinList(tools, 4)
	if toolPhrase == "" {
		toolPhrase = "a hands-on mix of prototyping tools"
	}

	action := "Built and iterated using " + toolPhrase + "."
	if role := strings.TrimSpace(p.Role); role != "" {
		action = "Took the " + role + " role and drove the build using " + toolPhrase + "."
	}

	result := "Delivered " + title + " as a working piece of the portfolio, supporting the goal to " + goal + "."

	return types.ProjectSummary{
		Title:        title,
		PointProblem: problem,
		PointAction:  action,
		PointResult:  result,
	}
}

// placeholderSummary returns the synthetic project used when the intake lists
// none, so downstream rendering never faces an empty project list.
func placeholderSummary(goal string) types.ProjectSummary {
	return types.ProjectSummary{
		Title:        "First Project",
		PointProblem: "Every maker portfolio starts somewhere; this slot is reserved for the first documented build.",
		PointAction:  "Gathering ideas, materials, and a plan for the first hands-on project.",
		PointResult:  "A portfolio ready to grow as soon as the first project ships, supporting the goal to " + goal + ".",
	}
}

// firstSentence returns the first sentence of text, capped at maxProblemChars.
func firstSentence(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	for i, r := range text {
		if r == '.' || r == '!' || r == '?' {
			text = text[:i+1]
			break
		}
	}
	if len(text) > maxProblemChars {
		cut := maxProblemChars
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		text = strings.TrimSpace(text[:cut]) + "..."
	}
	return text
}

// joinList joins up to max items with commas, dropping empty entries.
func joinList(items []string, max int) string {
	kept := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		kept = append(kept, item)
		if len(kept) == max {
			break
		}
	}
	return strings.Join(kept, ", ")
}
