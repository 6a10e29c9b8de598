// Package matching scores a candidate's skills against a job's required skills.
package matching

import (
	"strings"

	"github.com/SanthoshkumarGudi/ATS-SW/internal/config"
	"github.com/SanthoshkumarGudi/ATS-SW/internal/parsing"
	"github.com/SanthoshkumarGudi/ATS-SW/internal/types"
)

// Matcher computes SkillMatchResults. The zero value is not usable; use NewMatcher.
type Matcher struct {
	similarityThreshold float64
	shortlistThreshold  int
	similarity          SimilarityFunc
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithSimilarity replaces the Jaro-Winkler metric.
func WithSimilarity(fn SimilarityFunc) Option {
	return func(m *Matcher) {
		if fn != nil {
			m.similarity = fn
		}
	}
}

// NewMatcher builds a Matcher using the thresholds from cfg.
func NewMatcher(cfg config.ScreeningConfig, opts ...Option) *Matcher {
	m := &Matcher{
		similarityThreshold: cfg.SimilarityThreshold,
		shortlistThreshold:  cfg.ShortlistThreshold,
		similarity:          JaroWinkler,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

var defaultMatcher = NewMatcher(config.DefaultScreeningConfig())

// Score runs the default Matcher.
func Score(candidateSkills, requiredSkills []string) types.SkillMatchResult {
	return defaultMatcher.Score(candidateSkills, requiredSkills)
}

// requirement is a required skill with its display form and match key.
type requirement struct {
	display string
	key     string
}

// Score matches each required skill against the candidate's skills.
//
// Both sides are normalized first. For every required skill the candidate skills
// are tried in order and the first one whose similarity clears the threshold wins;
// a candidate skill may satisfy several requirements. Matched and missing skills
// keep the job's trimmed original spelling, in the job's order. Requirements that
// normalize to the same key count once and those that normalize to nothing are ignored.
func (m *Matcher) Score(candidateSkills, requiredSkills []string) types.SkillMatchResult {
	result := types.SkillMatchResult{
		MatchedSkills: []string{},
		MissingSkills: []string{},
	}

	required := dedupeRequirements(requiredSkills)
	if len(required) == 0 {
		return result
	}

	candidates := parsing.NormalizeSkills(candidateSkills)
	for _, req := range required {
		if m.matches(req.key, candidates) {
			result.MatchedSkills = append(result.MatchedSkills, req.display)
		} else {
			result.MissingSkills = append(result.MissingSkills, req.display)
		}
	}

	result.MatchPercentage = Percentage(len(result.MatchedSkills), len(required))
	result.IsShortlisted = result.MatchPercentage >= m.shortlistThreshold
	return result
}

func (m *Matcher) matches(key string, candidates []string) bool {
	for _, candidate := range candidates {
		if m.similarity(key, candidate) >= m.similarityThreshold {
			return true
		}
	}
	return false
}

func dedupeRequirements(skills []string) []requirement {
	out := make([]requirement, 0, len(skills))
	seen := make(map[string]bool, len(skills))
	for _, skill := range skills {
		key := parsing.NormalizeSkill(skill)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, requirement{display: strings.TrimSpace(skill), key: key})
	}
	return out
}

// Percentage returns round(matched / total * 100) with halves rounded up,
// or 0 when total is zero.
func Percentage(matched, total int) int {
	if total <= 0 {
		return 0
	}
	return (matched*200 + total) / (2 * total)
}
