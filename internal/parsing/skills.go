package parsing

import "strings"

// ExtractSkills spots vocabulary entries in the normalized full text by substring
// containment. vocabulary must already be normalized. The result keeps vocabulary
// order and is never nil.
func ExtractSkills(fullText string, vocabulary []string) []string {
	haystack := NormalizeSkill(fullText)
	skills := make([]string, 0)
	if haystack == "" {
		return skills
	}
	for _, skill := range vocabulary {
		if skill != "" && strings.Contains(haystack, skill) {
			skills = append(skills, skill)
		}
	}
	return skills
}
