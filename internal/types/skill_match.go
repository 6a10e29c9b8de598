package types

// SkillMatchResult is the scoring of a candidate's skills against a job's requirements.
type SkillMatchResult struct {
	MatchedSkills   []string `json:"matched_skills"`
	MissingSkills   []string `json:"missing_skills"`
	MatchPercentage int      `json:"match_percentage"`
	IsShortlisted   bool     `json:"is_shortlisted"`
}
