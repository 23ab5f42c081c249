package engine

import (
	"regexp"
	"strconv"
	"strings"

	prose "github.com/jdkato/prose/v2"

	"resume-builder-backend/summary/catalog"
)

// Matching throughout this file is lowercased substring containment, not
// word-bounded. Short catalog entries can therefore match inside unrelated
// tokens ("AI" inside "maintain"); that is the documented behavior and the
// aggregate scores absorb the noise.

// ExtractSkills returns the catalog skills present in text, in catalog
// order, first occurrence only. Empty text yields an empty slice.
func ExtractSkills(text string) []string {
	lower := strings.ToLower(text)
	if lower == "" {
		return nil
	}
	seen := make(map[string]bool, 8)
	found := make([]string, 0, 8)
	for _, skill := range catalog.TechnicalSkills {
		if seen[skill] {
			continue
		}
		if strings.Contains(lower, strings.ToLower(skill)) {
			seen[skill] = true
			found = append(found, skill)
		}
	}
	return found
}

// ManagementScore counts management-signal keywords present in text.
func ManagementScore(text string) int {
	return countKeywordHits(text, catalog.ManagementKeywords)
}

// TechRoleScore counts technical-role keywords present in text.
func TechRoleScore(text string) int {
	return countKeywordHits(text, catalog.TechnicalRoleKeywords)
}

func countKeywordHits(text string, keywords []string) int {
	lower := strings.ToLower(text)
	if lower == "" {
		return 0
	}
	score := 0
	for _, keyword := range keywords {
		if strings.Contains(lower, keyword) {
			score++
		}
	}
	return score
}

var experienceYearsRe = regexp.MustCompile(`(?i)(\d+)[\s-]*years? of experience`)

// ExtractExperienceYears pulls a stated "N years of experience" figure out
// of free text, or 0 when none is stated.
func ExtractExperienceYears(text string) int {
	match := experienceYearsRe.FindStringSubmatch(text)
	if match == nil {
		return 0
	}
	years, err := strconv.Atoi(match[1])
	if err != nil {
		return 0
	}
	return years
}

const (
	maxKeyTopics      = 3
	minKeyTopicLength = 6
	maxKeyTopicLength = 49
)

var keyTopicRe = regexp.MustCompile(`(?i)(developed|built|created|designed|implemented|architected|managed|led) ([^.]*)`)

// ExtractKeyTopics scans text sentence by sentence for action-verb clauses
// ("built X", "led Y") and returns up to three, in sentence order. Clauses
// shorter than 6 or longer than 49 characters are dropped.
func ExtractKeyTopics(text string) []string {
	topics := make([]string, 0, maxKeyTopics)
	for _, sentence := range splitSentences(text) {
		match := keyTopicRe.FindStringSubmatch(sentence)
		if match == nil {
			continue
		}
		topic := strings.TrimSpace(match[2])
		if len(topic) < minKeyTopicLength || len(topic) > maxKeyTopicLength {
			continue
		}
		topics = append(topics, topic)
		if len(topics) == maxKeyTopics {
			break
		}
	}
	return topics
}

// splitSentences tokenizes text into sentences via prose. On tokenizer
// failure the whole text is treated as a single sentence so extraction
// stays total.
func splitSentences(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	doc, err := prose.NewDocument(text, prose.WithTagging(false), prose.WithExtraction(false))
	if err != nil {
		return []string{text}
	}
	sentences := doc.Sentences()
	out := make([]string, 0, len(sentences))
	for _, s := range sentences {
		out = append(out, s.Text)
	}
	if len(out) == 0 {
		return []string{text}
	}
	return out
}
