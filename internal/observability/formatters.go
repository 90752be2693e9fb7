// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/GOPIVARDHAN1965/resumes/internal/types"
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

// PrintExtraction outputs the keywords pulled from the job description and
// the classified role.
func (p *Printer) PrintExtraction(role string, skills types.SkillSet) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Role:      %s\n", role))
	sb.WriteString(fmt.Sprintf("Keywords:  %d\n", len(skills)))

	sorted := skills.Sorted()
	if len(sorted) > 0 {
		sb.WriteString("\n")
		count := min(len(sorted), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", sorted[i]))
		}
		if len(sorted) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(sorted)-maxItemsToShow))
		}
	}

	p.printBox("JOB DESCRIPTION ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSelectedBullets outputs the chosen bullets for one section with
// scores and matched skills.
func (p *Printer) PrintSelectedBullets(section string, entities []types.Entity) {
	var bullets []types.ScoredBullet
	for _, entity := range entities {
		bullets = append(bullets, entity.Selected...)
	}
	if len(bullets) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Selected %d bullets:\n\n", len(bullets)))

	count := min(len(bullets), maxItemsToShow)
	for i := 0; i < count; i++ {
		bullet := bullets[i]
		text := bullet.Bullet.Text
		if len(text) > 50 {
			text = text[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("• %s\n", text))
		sb.WriteString(fmt.Sprintf("  Score: %.4f", bullet.Score))
		if len(bullet.MatchedSkills) > 0 {
			skills := strings.Join(bullet.MatchedSkills, ", ")
			if len(skills) > 30 {
				skills = skills[:27] + "..."
			}
			sb.WriteString(fmt.Sprintf("  [%s]", skills))
		}
		sb.WriteString("\n")
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(bullets) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more bullets", len(bullets)-maxItemsToShow))
	}

	p.printBox(strings.ToUpper(section)+" BULLETS", sb.String())
}

// PrintATSReport outputs the coverage summary for a generated resume.
func (p *Printer) PrintATSReport(report types.ATSReport) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Match:     %.1f%% (%d of %d keywords)\n",
		report.Percentage, report.TotalMatched, report.TotalSkills))

	if len(report.Missing) > 0 {
		sb.WriteString("\nMissing:\n")
		count := min(len(report.Missing), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", report.Missing[i]))
		}
		if len(report.Missing) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.Missing)-maxItemsToShow))
		}
	} else if report.TotalSkills > 0 {
		sb.WriteString("\n✅ Every job-description keyword is covered")
	}

	p.printBox("ATS COVERAGE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSummary outputs the one-box wrap-up for a generation run.
func (p *Printer) PrintSummary(result *types.GenerateResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Run:        %s\n", result.RunID))
	sb.WriteString(fmt.Sprintf("Role:       %s\n", result.Role))
	sb.WriteString(fmt.Sprintf("ATS score:  %.1f%%\n", result.ATS.Percentage))
	sb.WriteString(fmt.Sprintf("Experience: %.1f%%  Projects: %.1f%%  Skills: %.1f%%",
		result.SectionScores.Experience, result.SectionScores.Projects, result.SectionScores.Skills))

	p.printBox("GENERATION SUMMARY", sb.String())
}
