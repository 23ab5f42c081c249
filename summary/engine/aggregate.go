package engine

import (
	"math"
	"sort"
	"strings"
)

// AggregateSkillExperience distributes each project's duration across every
// skill, tool, and platform token that project names, then sums per-skill
// totals across all projects. A token used in N projects accumulates all N
// durations; overlapping projects are deliberately not corrected for, so
// concurrent use of a skill counts double. Results are sorted by total
// descending, rounded to one decimal, and truncated to topN (DefaultTopSkills
// when topN <= 0). Projects without a valid start date contribute nothing.
func (e *Engine) AggregateSkillExperience(projects []ProjectRecord, topN int) []SkillYears {
	if topN <= 0 {
		topN = DefaultTopSkills
	}

	totals := make(map[string]float64)
	order := make([]string, 0, 16)
	for _, project := range projects {
		years := e.DurationYears(project.StartDate, project.EndDate)
		if years <= 0 {
			continue
		}
		for _, token := range projectTokens(project) {
			if _, ok := totals[token]; !ok {
				order = append(order, token)
			}
			totals[token] += years
		}
	}

	out := make([]SkillYears, 0, len(order))
	for _, token := range order {
		out = append(out, SkillYears{Skill: token, Years: totals[token]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Years > out[j].Years
	})
	if len(out) > topN {
		out = out[:topN]
	}
	for i := range out {
		out[i].Years = math.Round(out[i].Years*10) / 10
	}
	return out
}

// projectTokens collects the de-duplicated union of comma-separated tokens
// across a project's multi-value fields.
func projectTokens(project ProjectRecord) []string {
	fields := []string{
		project.ProgrammingLanguages,
		project.DevOpsTools,
		project.Databases,
		project.CloudPlatform,
	}
	seen := make(map[string]bool, 8)
	tokens := make([]string, 0, 8)
	for _, field := range fields {
		for _, raw := range strings.Split(field, ",") {
			token := strings.TrimSpace(raw)
			if token == "" || seen[token] {
				continue
			}
			seen[token] = true
			tokens = append(tokens, token)
		}
	}
	return tokens
}
