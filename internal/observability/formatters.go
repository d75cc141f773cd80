// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/projecthub/portfolio-engine/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintIntake outputs a human-readable summary of the maker intake.
func (p *Printer) PrintIntake(intake *types.Intake) {
	if intake == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:     %s\n", intake.DisplayName()))
	if intake.College != "" {
		sb.WriteString(fmt.Sprintf("College:  %s\n", intake.College))
	}
	if intake.MajorField != "" {
		sb.WriteString(fmt.Sprintf("Major:    %s\n", intake.MajorField))
	}

	if len(intake.Skills) > 0 {
		sb.WriteString("\nSkills:\n")
		count := min(len(intake.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", intake.Skills[i].String()))
		}
		if len(intake.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(intake.Skills)-maxItemsToShow))
		}
	}

	if len(intake.Projects) > 0 {
		sb.WriteString("\nProjects:\n")
		count := min(len(intake.Projects), maxItemsToShow)
		for i := 0; i < count; i++ {
			proj := intake.Projects[i]
			sb.WriteString(fmt.Sprintf("  %d. %s", i+1, proj.Name))
			if proj.Role != "" {
				sb.WriteString(fmt.Sprintf(" (%s)", proj.Role))
			}
			sb.WriteString("\n")
		}
		if len(intake.Projects) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(intake.Projects)-maxItemsToShow))
		}
	}

	p.printBox("MAKER INTAKE", strings.TrimRight(sb.String(), "\n"))
}

// PrintPortfolio outputs a human-readable summary of the generated document.
func (p *Printer) PrintPortfolio(doc *types.PortfolioDocument) {
	if doc == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Headline: %s\n", doc.Headline))
	if doc.Bio != "" {
		sb.WriteString(fmt.Sprintf("Bio:      %s\n", doc.Bio))
	}

	sb.WriteString("\nProjects:\n")
	for i, proj := range doc.Projects {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, proj.Title))
		sb.WriteString(fmt.Sprintf("     - %s\n", proj.PointProblem))
		sb.WriteString(fmt.Sprintf("     - %s\n", proj.PointAction))
		sb.WriteString(fmt.Sprintf("     - %s\n", proj.PointResult))
	}

	sb.WriteString("\nTheme:\n")
	sb.WriteString(fmt.Sprintf("  Color:    %s\n", doc.VisualStyle.ThemeColor))
	sb.WriteString(fmt.Sprintf("  Gradient: %s -> %s\n", doc.VisualStyle.BackgroundGradientStart, doc.VisualStyle.BackgroundGradientEnd))
	sb.WriteString(fmt.Sprintf("  Font:     %s", doc.VisualStyle.FontStyle))

	p.printBox("PORTFOLIO DOCUMENT", sb.String())
}
