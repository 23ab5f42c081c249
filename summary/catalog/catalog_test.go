package catalog

import (
	"strings"
	"testing"
)

func TestProjectCategoriesShape(t *testing.T) {
	seen := map[string]bool{}
	for _, category := range ProjectCategories {
		if seen[category.Name] {
			t.Fatalf("duplicate category %q", category.Name)
		}
		seen[category.Name] = true

		if len(category.Templates) != 4 {
			t.Fatalf("category %q has %d templates, want 4", category.Name, len(category.Templates))
		}
		for _, keyword := range category.Keywords {
			if keyword != strings.ToLower(keyword) {
				t.Fatalf("category %q keyword %q must be lowercase", category.Name, keyword)
			}
		}
	}
	if !seen[DefaultCategory] {
		t.Fatalf("default category missing")
	}
}

func TestRoleTracksComplete(t *testing.T) {
	for _, track := range RoleTracks {
		if len(track.Skills) == 0 {
			t.Fatalf("track %q has no skills", track.Name)
		}
		for name, title := range map[string]string{
			"manager":   track.Titles.Manager,
			"principal": track.Titles.Principal,
			"lead":      track.Titles.Lead,
			"senior":    track.Titles.Senior,
			"base":      track.Titles.Base,
			"junior":    track.Titles.Junior,
		} {
			if title == "" {
				t.Fatalf("track %q missing %s title", track.Name, name)
			}
		}
	}
}

func TestManagementKeywordsLowercase(t *testing.T) {
	for _, keyword := range ManagementKeywords {
		if keyword != strings.ToLower(keyword) {
			t.Fatalf("management keyword %q must be lowercase", keyword)
		}
	}
	for _, keyword := range TechnicalRoleKeywords {
		if keyword != strings.ToLower(keyword) {
			t.Fatalf("technical role keyword %q must be lowercase", keyword)
		}
	}
}

func TestRoleTemplatesCarryPlaceholder(t *testing.T) {
	for _, templates := range [][]string{EngineerRoleTemplates, LeadRoleTemplates, ManagerRoleTemplates} {
		if len(templates) != 4 {
			t.Fatalf("role tier has %d templates, want 4", len(templates))
		}
		for _, template := range templates {
			if !strings.Contains(template, "{projectTitle}") {
				t.Fatalf("template missing {projectTitle}: %q", template)
			}
		}
	}
}
