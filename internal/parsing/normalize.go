// Package parsing extracts candidate facts from resume text with per-field heuristics.
package parsing

import (
	"regexp"
	"strings"
)

var (
	nonSkillChars = regexp.MustCompile(`[^a-z0-9\s]+`)
	spaceRun      = regexp.MustCompile(`\s+`)
)

// NormalizeSkill lower-cases s, strips everything outside [a-z0-9] and whitespace,
// and collapses whitespace runs. "Node.js" and "NodeJS" both become "nodejs".
func NormalizeSkill(s string) string {
	if s == "" {
		return ""
	}
	normalized := strings.ToLower(s)
	normalized = nonSkillChars.ReplaceAllString(normalized, "")
	normalized = spaceRun.ReplaceAllString(normalized, " ")
	return strings.TrimSpace(normalized)
}

// NormalizeSkills normalizes every entry of skills and deduplicates the result.
// Entries that normalize to the empty string are dropped. First occurrence wins.
func NormalizeSkills(skills []string) []string {
	normalized := make([]string, 0, len(skills))
	seen := make(map[string]bool, len(skills))
	for _, skill := range skills {
		key := NormalizeSkill(skill)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		normalized = append(normalized, key)
	}
	return normalized
}
