package engine

import (
	"fmt"
	"strings"
)

// minDetailLength gates narrative composition; anything shorter signals
// ErrInsufficientDetail.
const minDetailLength = 20

const maxNarrativeSkills = 5

// ComposeSummary assembles the narrative paragraph from the extracted
// signals, in fixed clause order: experience, proficiency, key topics,
// leadership. It returns ErrInsufficientDetail when details is empty or
// shorter than 20 characters.
func ComposeSummary(details string, experienceYears float64, skills, keyTopics []string, managementScore int) (string, error) {
	if strings.TrimSpace(details) == "" || len(details) < minDetailLength {
		return "", ErrInsufficientDetail
	}

	var b strings.Builder

	if experienceYears > 0 {
		fmt.Fprintf(&b, "Professional with %s+ years of experience. ", formatYears(experienceYears))
	} else {
		b.WriteString("Professional with relevant experience. ")
	}

	if len(skills) > 0 {
		top := skills
		suffix := ""
		if len(top) > maxNarrativeSkills {
			top = top[:maxNarrativeSkills]
			suffix = ", and other technologies"
		}
		fmt.Fprintf(&b, "Proficient in %s%s. ", strings.Join(top, ", "), suffix)
	}

	if len(keyTopics) > 0 {
		fmt.Fprintf(&b, "Experienced in %s. ", strings.Join(keyTopics, ", "))
	}

	if managementScore > 3 {
		b.WriteString("Demonstrates strong leadership and project management capabilities. ")
	} else if managementScore > 1 {
		b.WriteString("Shows potential for team leadership roles. ")
	}

	return b.String(), nil
}

// formatYears renders whole years without a decimal point.
func formatYears(years float64) string {
	if years == float64(int64(years)) {
		return fmt.Sprintf("%d", int64(years))
	}
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.1f", years), "0"), ".")
}
