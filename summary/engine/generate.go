package engine

import (
	"strings"

	prose "github.com/jdkato/prose/v2"

	"resume-builder-backend/summary/catalog"
)

// GenerateProjectDescription classifies a project title into a category by
// keyword scoring and renders one of that category's templates, chosen by
// the engine's random source. Generic subjects in the template are swapped
// for the title's detected primary subject when one is found. Output is
// non-deterministic across calls unless the random source is fixed.
func (e *Engine) GenerateProjectDescription(title string) string {
	category := classifyProjectCategory(title)
	template := category.Templates[e.intn(len(category.Templates))]
	if subject := primarySubject(title); subject != "" {
		template = substituteSubject(template, subject)
	}
	return template
}

// GenerateProjectRole renders a role narrative for the given experience
// band: under 6 years is the engineer tier, 6 through 10 the lead tier, and
// beyond that the manager tier. The {projectTitle} placeholder takes a noun
// phrase extracted from the title, falling back to the raw title. An empty
// title is ErrMissingPrerequisite.
func (e *Engine) GenerateProjectRole(overallYears float64, title string) (string, error) {
	if strings.TrimSpace(title) == "" {
		return "", ErrMissingPrerequisite
	}

	var templates []string
	switch {
	case overallYears < 6:
		templates = catalog.EngineerRoleTemplates
	case overallYears <= 10:
		templates = catalog.LeadRoleTemplates
	default:
		templates = catalog.ManagerRoleTemplates
	}

	phrase := nounPhrase(title)
	if phrase == "" {
		phrase = strings.TrimSpace(title)
	}
	template := templates[e.intn(len(templates))]
	return strings.ReplaceAll(template, "{projectTitle}", phrase), nil
}

// classifyProjectCategory scores every category by how many of its keywords
// appear as a substring of any title token. The highest score wins with ties
// going to the earlier declaration; a mobile bonus applies when web leads a
// title that mentions an app. Titles with no keyword hits and fewer than
// three words fall back to the default category.
func classifyProjectCategory(title string) catalog.ProjectCategory {
	tokens := titleTokens(title)

	best := catalog.ProjectCategories[0]
	bestScore := 0
	for _, category := range catalog.ProjectCategories {
		score := categoryScore(category, tokens)
		if score > bestScore {
			best = category
			bestScore = score
		}
	}

	if best.Name == "web" && containsToken(tokens, "app") {
		for _, category := range catalog.ProjectCategories {
			if category.Name != "mobile" {
				continue
			}
			if categoryScore(category, tokens)+catalog.MobileAppBonus > bestScore {
				best = category
			}
			break
		}
	}

	if bestScore == 0 && len(strings.Fields(title)) < 3 {
		for _, category := range catalog.ProjectCategories {
			if category.Name == catalog.DefaultCategory {
				return category
			}
		}
	}
	return best
}

func categoryScore(category catalog.ProjectCategory, tokens []string) int {
	score := 0
	for _, keyword := range category.Keywords {
		for _, token := range tokens {
			if strings.Contains(token, keyword) {
				score++
				break
			}
		}
	}
	return score
}

func containsToken(tokens []string, want string) bool {
	for _, token := range tokens {
		if token == want {
			return true
		}
	}
	return false
}

// titleTokens merges the title's nouns (via the prose tagger) with its
// plain whitespace-split words, lowercased and de-duplicated.
func titleTokens(title string) []string {
	seen := make(map[string]bool, 8)
	tokens := make([]string, 0, 8)
	add := func(raw string) {
		token := strings.ToLower(strings.Trim(raw, ".,;:!?"))
		if token == "" || seen[token] {
			return
		}
		seen[token] = true
		tokens = append(tokens, token)
	}
	for _, noun := range titleNouns(title) {
		add(noun)
	}
	for _, word := range strings.Fields(title) {
		add(word)
	}
	return tokens
}

// titleNouns returns the NN*-tagged tokens of the title, empty on tagger
// failure.
func titleNouns(title string) []string {
	if strings.TrimSpace(title) == "" {
		return nil
	}
	doc, err := prose.NewDocument(title, prose.WithExtraction(false))
	if err != nil {
		return nil
	}
	nouns := make([]string, 0, 4)
	for _, token := range doc.Tokens() {
		if strings.HasPrefix(token.Tag, "NN") {
			nouns = append(nouns, token.Text)
		}
	}
	return nouns
}

// primarySubject picks the first noun of the title as the substitution
// subject, or "" when none is detected.
func primarySubject(title string) string {
	nouns := titleNouns(title)
	if len(nouns) == 0 {
		return ""
	}
	return strings.ToLower(strings.Trim(nouns[0], ".,;:!?"))
}

// nounPhrase joins the leading run of consecutive nouns in the title.
func nounPhrase(title string) string {
	if strings.TrimSpace(title) == "" {
		return ""
	}
	doc, err := prose.NewDocument(title, prose.WithExtraction(false))
	if err != nil {
		return ""
	}
	phrase := make([]string, 0, 4)
	inRun := false
	for _, token := range doc.Tokens() {
		if strings.HasPrefix(token.Tag, "NN") {
			phrase = append(phrase, token.Text)
			inRun = true
			continue
		}
		if inRun {
			break
		}
	}
	return strings.Join(phrase, " ")
}

var subjectTargets = []string{"this project", "the application", "the system", "the solution"}

func substituteSubject(template, subject string) string {
	replacement := "the " + subject
	for _, target := range subjectTargets {
		template = strings.ReplaceAll(template, target, replacement)
	}
	return template
}
