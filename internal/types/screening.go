package types

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Extraction status values stored on a screening.
const (
	ExtractionOK = "ok"
)

// Application status values derived from the match result.
const (
	StatusApplied     = "applied"
	StatusShortlisted = "shortlisted"
)

// Screening is the immutable record produced once per application submission.
type Screening struct {
	ID               uuid.UUID        `json:"id"`
	JobID            string           `json:"job_id"`
	CandidateID      string           `json:"candidate_id"`
	ResumeURL        string           `json:"resume_url,omitempty"`
	DocumentHash     string           `json:"document_hash,omitempty"`
	ExtractionStatus string           `json:"extraction_status"`
	Facts            CandidateFacts   `json:"parsed_data"`
	RequiredSkills   []string         `json:"required_skills"`
	Match            SkillMatchResult `json:"match"`
	Status           string           `json:"status"`
	CreatedAt        time.Time        `json:"created_at"`
}

// StatusFor maps a match result to the application status it implies.
func StatusFor(match SkillMatchResult) string {
	if match.IsShortlisted {
		return StatusShortlisted
	}
	return StatusApplied
}

// ScreeningRequest describes one application submission to screen.
// Exactly one of ResumeURL or Document must be supplied.
type ScreeningRequest struct {
	JobID          string       `json:"job_id" validate:"required"`
	CandidateID    string       `json:"candidate_id" validate:"required"`
	ResumeURL      string       `json:"resume_url,omitempty" validate:"omitempty,url"`
	MediaType      string       `json:"media_type,omitempty"`
	RequiredSkills []string     `json:"required_skills"`
	ApplicantName  string       `json:"applicant_name,omitempty"`
	ApplicantEmail string       `json:"applicant_email,omitempty" validate:"omitempty,email"`
	Document       *RawDocument `json:"-"`
}

// Validate validates the ScreeningRequest using the validator.
func (r *ScreeningRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return err
	}
	if r.Document == nil && strings.TrimSpace(r.ResumeURL) == "" {
		return &RequestError{Field: "resume_url", Message: "a resume URL or an uploaded document is required"}
	}
	if r.Document != nil && r.ResumeURL != "" {
		return &RequestError{Field: "resume_url", Message: "resume_url and an uploaded document are mutually exclusive"}
	}
	return nil
}

// RequestError reports a request that is structurally invalid.
type RequestError struct {
	Field   string
	Message string
}

func (e *RequestError) Error() string {
	return e.Field + ": " + e.Message
}
