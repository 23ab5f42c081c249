package engine

import (
	"reflect"
	"testing"
	"time"
)

func TestAggregateSkillExperienceSingleProject(t *testing.T) {
	e := fixedEngine(time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC))
	projects := []ProjectRecord{
		{
			ProgrammingLanguages: "Python",
			StartDate:            datePtr(2022, time.January, 1),
			EndDate:              datePtr(2023, time.January, 1),
		},
	}

	got := e.AggregateSkillExperience(projects, 0)
	want := []SkillYears{{Skill: "Python", Years: 1.0}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("AggregateSkillExperience = %v, want %v", got, want)
	}
}

func TestAggregateSkillExperienceNoStartDates(t *testing.T) {
	e := fixedEngine(time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC))
	projects := []ProjectRecord{
		{ProgrammingLanguages: "Python, Go"},
		{Databases: "PostgreSQL"},
	}

	if got := e.AggregateSkillExperience(projects, 0); len(got) != 0 {
		t.Fatalf("expected empty breakdown without start dates, got %v", got)
	}
}

func TestAggregateSkillExperienceSumsAcrossProjects(t *testing.T) {
	// Overlapping projects deliberately double-count: a skill used in two
	// concurrent projects accumulates both durations.
	e := fixedEngine(time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC))
	projects := []ProjectRecord{
		{
			ProgrammingLanguages: "Java",
			DevOpsTools:          "Docker",
			StartDate:            datePtr(2020, time.January, 1),
			EndDate:              datePtr(2022, time.January, 1),
		},
		{
			ProgrammingLanguages: "Java",
			StartDate:            datePtr(2021, time.January, 1),
			EndDate:              datePtr(2022, time.January, 1),
		},
	}

	got := e.AggregateSkillExperience(projects, 0)
	want := []SkillYears{
		{Skill: "Java", Years: 3.0},
		{Skill: "Docker", Years: 2.0},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("AggregateSkillExperience = %v, want %v", got, want)
	}
}

func TestAggregateSkillExperienceDeduplicatesWithinProject(t *testing.T) {
	// The same token in two fields of one project counts once for that
	// project.
	e := fixedEngine(time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC))
	projects := []ProjectRecord{
		{
			ProgrammingLanguages: "SQL, SQL",
			Databases:            "SQL, PostgreSQL",
			StartDate:            datePtr(2023, time.January, 1),
			EndDate:              datePtr(2024, time.January, 1),
		},
	}

	got := e.AggregateSkillExperience(projects, 0)
	want := []SkillYears{
		{Skill: "SQL", Years: 1.0},
		{Skill: "PostgreSQL", Years: 1.0},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("AggregateSkillExperience = %v, want %v", got, want)
	}
}

func TestAggregateSkillExperienceTruncatesToTopN(t *testing.T) {
	e := fixedEngine(time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC))
	projects := []ProjectRecord{
		{
			ProgrammingLanguages: "Java",
			StartDate:            datePtr(2019, time.January, 1),
			EndDate:              datePtr(2024, time.January, 1),
		},
		{
			ProgrammingLanguages: "Python",
			Databases:            "Redis",
			StartDate:            datePtr(2022, time.January, 1),
			EndDate:              datePtr(2024, time.January, 1),
		},
	}

	got := e.AggregateSkillExperience(projects, 2)
	want := []SkillYears{
		{Skill: "Java", Years: 5.0},
		{Skill: "Python", Years: 2.0},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("AggregateSkillExperience(topN=2) = %v, want %v", got, want)
	}
}

func TestAggregateSkillExperienceRoundsToOneDecimal(t *testing.T) {
	e := fixedEngine(time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC))
	projects := []ProjectRecord{
		{
			ProgrammingLanguages: "Rust",
			StartDate:            datePtr(2023, time.January, 1),
			EndDate:              datePtr(2023, time.May, 1), // 4 months = 0.333...
		},
	}

	got := e.AggregateSkillExperience(projects, 0)
	if len(got) != 1 || got[0].Years != 0.3 {
		t.Fatalf("expected Rust at 0.3 years, got %v", got)
	}
}
