// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/thapanirajan/ResumeEZ-backend/internal/types"
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

// PrintJDExtraction outputs a human-readable summary of the extracted JD skills.
func (p *Printer) PrintJDExtraction(extraction *types.JDExtraction) {
	if extraction == nil || len(extraction.Skills) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Skills found: %d\n\n", len(extraction.Skills)))

	count := min(len(extraction.Skills), maxItemsToShow)
	for i := 0; i < count; i++ {
		skill := extraction.Skills[i]
		sb.WriteString(fmt.Sprintf("• %s [%s]", skill.CanonicalName, skill.Section))
		if skill.MatchType == types.MatchFuzzy {
			sb.WriteString(fmt.Sprintf(" (fuzzy %.2f)", skill.Confidence))
		}
		sb.WriteString("\n")
	}
	if len(extraction.Skills) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(extraction.Skills)-maxItemsToShow))
	}

	p.printBox("EXTRACTED JD SKILLS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatchSummary outputs the match scores and the top gaps.
func (p *Printer) PrintMatchSummary(analysis *types.Analysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall match:  %.1f%%\n", analysis.MatchPercentage))
	if analysis.HardSkillMatch != nil {
		sb.WriteString(fmt.Sprintf("Hard skills:    %.1f%%\n", *analysis.HardSkillMatch))
	}
	if analysis.SoftSkillMatch != nil {
		sb.WriteString(fmt.Sprintf("Soft skills:    %.1f%%\n", *analysis.SoftSkillMatch))
	}
	sb.WriteString(fmt.Sprintf("\nMatched: %d  Missing: %d  Extra: %d\n",
		len(analysis.Matched), len(analysis.Missing), len(analysis.Extra)))

	if len(analysis.Missing) > 0 {
		sb.WriteString("\nTop gaps:\n")
		count := min(len(analysis.Missing), maxItemsToShow)
		for i := 0; i < count; i++ {
			gap := analysis.Missing[i]
			sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, gap.Name))
			sb.WriteString(fmt.Sprintf("    Priority: %.3f [%s]\n", gap.PriorityScore, gap.Section))
		}
		if len(analysis.Missing) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("... and %d more\n", len(analysis.Missing)-maxItemsToShow))
		}
	}

	p.printBox("MATCH SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRoadmap outputs the phased roadmap with per-phase counts.
func (p *Printer) PrintRoadmap(roadmap *types.Roadmap) {
	if roadmap == nil {
		return
	}

	var sb strings.Builder
	phases := []struct {
		name   string
		skills []types.RoadmapSkill
	}{
		{"Phase 1 (Core)", roadmap.Phase1Core},
		{"Phase 2 (Primary)", roadmap.Phase2Primary},
		{"Phase 3 (Advanced)", roadmap.Phase3Advanced},
	}

	for i, phase := range phases {
		sb.WriteString(fmt.Sprintf("%s: %d skills\n", phase.name, len(phase.skills)))
		count := min(len(phase.skills), 3)
		for j := 0; j < count; j++ {
			skill := phase.skills[j]
			sb.WriteString(fmt.Sprintf("  • %s", skill.Name))
			if skill.IsPrerequisite {
				sb.WriteString(" (prerequisite)")
			}
			sb.WriteString("\n")
		}
		if len(phase.skills) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(phase.skills)-3))
		}
		if i < len(phases)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("LEARNING ROADMAP", strings.TrimSuffix(sb.String(), "\n"))
}
