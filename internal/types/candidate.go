package types

// Sentinel values used when a heuristic finds nothing.
const (
	UnknownName        = "Unknown"
	LocationNotMention = "Not mentioned"
)

// CandidateFacts is the structured output of resume parsing.
type CandidateFacts struct {
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Phone    string   `json:"phone"`
	Location string   `json:"location"`
	Skills   []string `json:"skills"` // normalized, deduplicated, vocabulary order
}

// EmptyCandidateFacts returns the facts used when a document could not be parsed.
func EmptyCandidateFacts() CandidateFacts {
	return CandidateFacts{
		Name:     UnknownName,
		Location: LocationNotMention,
		Skills:   []string{},
	}
}

// WithFallback returns a copy of f where the sentinel name and empty email are
// replaced by the applicant's account details.
func (f CandidateFacts) WithFallback(name, email string) CandidateFacts {
	out := f
	out.Skills = append([]string{}, f.Skills...)
	if (out.Name == "" || out.Name == UnknownName) && name != "" {
		out.Name = name
	}
	if out.Email == "" && email != "" {
		out.Email = email
	}
	return out
}
