package engine

import (
	"errors"
	"strings"
	"testing"
)

func TestComposeSummaryRejectsShortDetails(t *testing.T) {
	cases := []struct {
		name    string
		details string
	}{
		{name: "empty", details: ""},
		{name: "whitespace", details: "    "},
		{name: "under_twenty_chars", details: "built two apps"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ComposeSummary(tc.details, 5, []string{"Python"}, nil, 0)
			if !errors.Is(err, ErrInsufficientDetail) {
				t.Fatalf("expected ErrInsufficientDetail, got %v", err)
			}
		})
	}
}

func TestComposeSummaryClauseOrder(t *testing.T) {
	details := "Developed a large payment platform over several years with a team."
	summary, err := ComposeSummary(details, 7,
		[]string{"Python", "Java", "AWS", "Docker", "SQL", "Redis"},
		[]string{"a large payment platform"}, 4)
	if err != nil {
		t.Fatalf("ComposeSummary: %v", err)
	}

	wantClauses := []string{
		"Professional with 7+ years of experience.",
		"Proficient in Python, Java, AWS, Docker, SQL, and other technologies.",
		"Experienced in a large payment platform.",
		"Demonstrates strong leadership and project management capabilities.",
	}
	pos := -1
	for _, clause := range wantClauses {
		idx := strings.Index(summary, clause)
		if idx < 0 {
			t.Fatalf("summary missing clause %q: %q", clause, summary)
		}
		if idx < pos {
			t.Fatalf("clause %q out of order in %q", clause, summary)
		}
		pos = idx
	}
}

func TestComposeSummaryWithoutSignals(t *testing.T) {
	details := "Maintained internal documentation and ran meetings."
	summary, err := ComposeSummary(details, 0, nil, nil, 0)
	if err != nil {
		t.Fatalf("ComposeSummary: %v", err)
	}
	if !strings.Contains(summary, "Professional with relevant experience.") {
		t.Fatalf("expected relevant-experience clause, got %q", summary)
	}
	if strings.Contains(summary, "Proficient in") || strings.Contains(summary, "Experienced in") {
		t.Fatalf("unexpected skill/topic clauses without signals: %q", summary)
	}
}

func TestComposeSummaryLeadershipThresholds(t *testing.T) {
	details := "Worked across several delivery teams on shared goals."

	strong, _ := ComposeSummary(details, 1, nil, nil, 4)
	if !strings.Contains(strong, "strong leadership") {
		t.Fatalf("score 4 should produce strong leadership clause: %q", strong)
	}

	potential, _ := ComposeSummary(details, 1, nil, nil, 2)
	if !strings.Contains(potential, "Shows potential for team leadership roles.") {
		t.Fatalf("score 2 should produce potential clause: %q", potential)
	}

	none, _ := ComposeSummary(details, 1, nil, nil, 1)
	if strings.Contains(none, "leadership") {
		t.Fatalf("score 1 should omit leadership clause: %q", none)
	}
}

func TestComposeSummaryFiveSkillsExactly(t *testing.T) {
	details := "Shipped several production systems end to end."
	summary, err := ComposeSummary(details, 3, []string{"Go", "Rust", "SQL", "AWS", "GCP"}, nil, 0)
	if err != nil {
		t.Fatalf("ComposeSummary: %v", err)
	}
	if strings.Contains(summary, "and other technologies") {
		t.Fatalf("exactly five skills should not add the overflow suffix: %q", summary)
	}
	if !strings.Contains(summary, "Proficient in Go, Rust, SQL, AWS, GCP.") {
		t.Fatalf("expected all five skills listed: %q", summary)
	}
}
