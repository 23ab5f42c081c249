package engine

import "strings"

// Summarize runs the full pipeline over the frozen project records: keyword
// extraction, key-topic mining, narrative composition, role classification
// with optional rating adjustment, and the skill-experience breakdown.
// overallYears comes from the experience form; when it is not positive the
// engine falls back to a "N years of experience" statement in the text.
// averageRating, when non-nil, applies the post-hoc promotion adjustment.
// Returns ErrInsufficientDetail when the combined project text is under the
// composition gate.
func (e *Engine) Summarize(projects []ProjectRecord, overallYears float64, averageRating *int) (SummaryResult, error) {
	details := combinedDetails(projects)

	skills := ExtractSkills(details)
	managementScore := ManagementScore(details)
	techRoleScore := TechRoleScore(details)

	years := overallYears
	if years <= 0 {
		years = float64(ExtractExperienceYears(details))
	}

	keyTopics := ExtractKeyTopics(details)
	narrative, err := ComposeSummary(details, years, skills, keyTopics, managementScore)
	if err != nil {
		return SummaryResult{}, err
	}

	role := ClassifyRole(skills, managementScore, details, years)
	if averageRating != nil {
		role = AdjustForRating(role, *averageRating)
	}

	return SummaryResult{
		Narrative:       narrative,
		Skills:          skills,
		ExperienceYears: years,
		ManagementScore: managementScore,
		TechRoleScore:   techRoleScore,
		KeyTopics:       keyTopics,
		RecommendedRole: role,
		SkillExperience: e.AggregateSkillExperience(projects, DefaultTopSkills),
	}, nil
}

// combinedDetails concatenates each project's fields in record order,
// including the comma-joined technology fields so keyword extraction sees
// catalog entries the user picked but never wrote in prose.
func combinedDetails(projects []ProjectRecord) string {
	parts := make([]string, 0, len(projects)*3)
	for _, project := range projects {
		fields := []string{
			project.Title, project.Description, project.Role,
			project.ProgrammingLanguages, project.DevOpsTools,
			project.Databases, project.CloudPlatform,
		}
		for _, field := range fields {
			if trimmed := strings.TrimSpace(field); trimmed != "" {
				parts = append(parts, trimmed)
			}
		}
	}
	return strings.Join(parts, ". ")
}
