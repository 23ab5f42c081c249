package engine

import "time"

// ProjectRecord is one project as captured by the multi-step form. The
// multi-value fields hold comma-joined tokens for editing convenience; order
// is irrelevant. The engine never mutates records it is handed.
type ProjectRecord struct {
	Title                string     `json:"title"`
	Description          string     `json:"description"`
	Role                 string     `json:"role"`
	ProgrammingLanguages string     `json:"programmingLanguages"`
	DevOpsTools          string     `json:"devOpsTools"`
	Databases            string     `json:"databases"`
	CloudPlatform        string     `json:"cloudPlatform"`
	VersionController    string     `json:"versionController"`
	StartDate            *time.Time `json:"startDate,omitempty"`
	EndDate              *time.Time `json:"endDate,omitempty"` // nil means ongoing as of now
}

// ExperienceProfile carries the experience page of the form. OverallYears is
// whole years; fractional months are folded in by the caller.
type ExperienceProfile struct {
	OverallYears             float64  `json:"overallYears"`
	ProfessionalSummaryDraft string   `json:"professionalSummaryDraft,omitempty"`
	CloudPlatforms           []string `json:"cloudPlatforms,omitempty"`
	CodeAIExperience         []string `json:"codeAIExperience,omitempty"`
}

// SkillYears is one row of the skill-experience breakdown.
type SkillYears struct {
	Skill string  `json:"skill"`
	Years float64 `json:"years"`
}

// SummaryResult is the engine output. It is recomputed on every run and
// never persisted incrementally.
type SummaryResult struct {
	Narrative       string       `json:"narrative"`
	Skills          []string     `json:"skills"`
	ExperienceYears float64      `json:"experienceYears"`
	ManagementScore int          `json:"managementScore"`
	TechRoleScore   int          `json:"techRoleScore"`
	KeyTopics       []string     `json:"keyTopics"`
	RecommendedRole string       `json:"recommendedRole"`
	SkillExperience []SkillYears `json:"skillExperienceBreakdown"`
}
