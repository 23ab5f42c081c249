package engine

import (
	"strings"

	"resume-builder-backend/summary/catalog"
)

// ClassifyRole maps an extracted skill set, management score, raw text, and
// experience years to a job title. Specialized tracks are tried in catalog
// precedence order (cloud, ai, frontend, backend, devops); the first track
// containing any of the candidate's skills wins. Experience bands use strict
// comparisons, so exactly 10 years lands in the >8 band, not the >10 band.
func ClassifyRole(skills []string, managementScore int, text string, experienceYears float64) string {
	for _, track := range catalog.RoleTracks {
		if hasAnySkill(skills, track.Skills) {
			return titleForBand(track.Titles, experienceYears, managementScore)
		}
	}

	// General-management fallback for strong leadership signals backed by
	// senior-level experience.
	if managementScore > 4 && experienceYears > 8 {
		lower := strings.ToLower(text)
		switch {
		case strings.Contains(lower, "product"):
			return "Product Manager"
		case strings.Contains(lower, "project"):
			return "Project Manager"
		default:
			return "Engineering Manager"
		}
	}

	return titleForBand(catalog.GenericTitles, experienceYears, managementScore)
}

func titleForBand(titles catalog.RoleTitles, years float64, managementScore int) string {
	switch {
	case years > 10:
		if managementScore > 4 {
			return titles.Manager
		}
		return titles.Principal
	case years > 8:
		if managementScore > 4 {
			return titles.Manager
		}
		if managementScore > 3 {
			return titles.Lead
		}
		return titles.Senior
	case years > 5:
		return titles.Senior
	case years > 2:
		return titles.Base
	default:
		return titles.Junior
	}
}

func hasAnySkill(skills, trackSkills []string) bool {
	for _, skill := range skills {
		for _, trackSkill := range trackSkills {
			if skill == trackSkill {
				return true
			}
		}
	}
	return false
}

// AdjustForRating promotes a role based on the average performance rating.
// A rating of exactly 4 prefixes "Lead " unless the role already carries a
// manager, architect, director, or lead title, which also makes repeated
// application a no-op. A rating above 4 replaces non-manager roles with a
// Technical Manager variant picked by a "cloud"/"data" substring check on
// the current role. Ratings below 4 never modify the role.
func AdjustForRating(role string, averageRating int) string {
	if averageRating < 4 || isManagerClass(role) {
		return role
	}
	if averageRating > 4 {
		lower := strings.ToLower(role)
		switch {
		case strings.Contains(lower, "cloud"):
			return "Cloud Technical Manager"
		case strings.Contains(lower, "data"):
			return "Data Technical Manager"
		default:
			return "Technical Manager"
		}
	}
	return "Lead " + role
}

func isManagerClass(role string) bool {
	lower := strings.ToLower(role)
	for _, marker := range []string{"manager", "architect", "director", "lead"} {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
