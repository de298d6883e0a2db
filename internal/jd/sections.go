package jd

import (
	"strings"

	"github.com/thapanirajan/ResumeEZ-backend/internal/types"
)

// Marker phrases that switch the active section when they occur on a short
// line. Long lines are prose, not headers, and never switch sections.
var (
	requiredMarkers = []string{
		"required", "must have", "must-have", "essential", "mandatory",
		"requirements", "what you need", "you must have",
		"minimum qualifications", "basic qualifications",
	}
	preferredMarkers = []string{
		"preferred", "nice to have", "good to have", "bonus", "plus",
		"desirable", "desired", "ideally", "optional", "advantageous",
	}
)

const sectionHeaderMaxLen = 60

// sectionLine is one non-blank JD line tagged with the section that was
// active when it was read, in scan order.
type sectionLine struct {
	text    string
	section types.Section
}

// buildSectionMap scans normalized JD text top to bottom and records each
// non-blank line with its section. A short line containing a required-class
// marker switches to required; a preferred-class marker to preferred;
// otherwise the current section persists.
func buildSectionMap(normalized string) []sectionLine {
	current := types.SectionGeneral
	var lines []sectionLine

	for _, line := range strings.Split(normalized, "\n") {
		stripped := strings.TrimSpace(line)
		if stripped == "" {
			continue
		}

		if len(stripped) < sectionHeaderMaxLen {
			if containsAny(stripped, requiredMarkers) {
				current = types.SectionRequired
			} else if containsAny(stripped, preferredMarkers) {
				current = types.SectionPreferred
			}
		}

		lines = append(lines, sectionLine{text: stripped, section: current})
	}

	return lines
}

// detectSection returns the section of the first recorded line containing
// the lowercased canonical skill name, defaulting to general.
func detectSection(skillLower string, lines []sectionLine) types.Section {
	for _, l := range lines {
		if strings.Contains(l.text, skillLower) {
			return l.section
		}
	}
	return types.SectionGeneral
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
