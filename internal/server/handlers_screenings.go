package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/SanthoshkumarGudi/ATS-SW/internal/db"
	"github.com/SanthoshkumarGudi/ATS-SW/internal/pipeline"
	"github.com/SanthoshkumarGudi/ATS-SW/internal/types"
)

// MaxBatchSize caps the number of requests in one batch submission.
const MaxBatchSize = 50

// multipartMemory is the part of a multipart body held in memory before spilling to disk.
const multipartMemory = 8 << 20

// BatchRequest is the body of POST /screenings/batch.
type BatchRequest struct {
	Requests []types.ScreeningRequest `json:"requests"`
}

// BatchResponse is the response of POST /screenings/batch.
type BatchResponse struct {
	Results   []pipeline.BatchResult `json:"results"`
	Succeeded int                    `json:"succeeded"`
	Failed    int                    `json:"failed"`
}

// ListScreeningsResponse is the response of GET /jobs/{job_id}/screenings.
type ListScreeningsResponse struct {
	JobID      string            `json:"job_id"`
	Screenings []types.Screening `json:"screenings"`
	Count      int               `json:"count"`
}

// handleCreateScreening screens one application. The resume is either a
// multipart upload in the "resume" field or a resume_url in a JSON body.
func (s *Server) handleCreateScreening(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)

	var (
		req types.ScreeningRequest
		err error
	)
	if isMultipart(r) {
		req, err = s.readMultipartRequest(r)
	} else {
		err = decodeJSON(r, &req)
	}
	if err != nil {
		s.failure(w, err)
		return
	}

	screening, err := s.screener.Screen(r.Context(), req)
	if err != nil {
		s.failure(w, err)
		return
	}

	s.jsonResponse(w, http.StatusCreated, screening)
}

// handleCreateScreeningBatch screens several URL-referenced resumes at once.
// Individual failures are reported per item and do not fail the request.
func (s *Server) handleCreateScreeningBatch(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)

	var body BatchRequest
	if err := decodeJSON(r, &body); err != nil {
		s.failure(w, err)
		return
	}
	if len(body.Requests) == 0 {
		s.failure(w, &ErrValidation{Field: "requests", Message: "at least one request is required"})
		return
	}
	if len(body.Requests) > MaxBatchSize {
		s.failure(w, &ErrValidation{
			Field:   "requests",
			Message: fmt.Sprintf("at most %d requests per batch", MaxBatchSize),
		})
		return
	}

	results := s.screener.ScreenBatch(r.Context(), body.Requests)

	resp := BatchResponse{Results: results}
	for _, res := range results {
		if res.Screening != nil {
			resp.Succeeded++
		} else {
			resp.Failed++
		}
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

// handleGetScreening returns one screening by ID.
func (s *Server) handleGetScreening(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.failure(w, ErrStorageDisabled)
		return
	}

	idStr := r.PathValue("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		s.failure(w, &ErrValidation{Field: "id", Message: "invalid screening ID"})
		return
	}

	screening, err := s.store.GetScreening(r.Context(), id)
	if err != nil {
		s.failure(w, err)
		return
	}
	if screening == nil {
		s.failure(w, &ErrNotFound{Resource: "screening", ID: idStr})
		return
	}

	s.jsonResponse(w, http.StatusOK, screening)
}

// handleListJobScreenings lists a job's screenings, best match first.
func (s *Server) handleListJobScreenings(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.failure(w, ErrStorageDisabled)
		return
	}

	filters, err := parseListFilters(r)
	if err != nil {
		s.failure(w, err)
		return
	}

	screenings, err := s.store.ListScreenings(r.Context(), filters)
	if err != nil {
		s.failure(w, err)
		return
	}
	if screenings == nil {
		screenings = []types.Screening{}
	}

	s.jsonResponse(w, http.StatusOK, ListScreeningsResponse{
		JobID:      filters.JobID,
		Screenings: screenings,
		Count:      len(screenings),
	})
}

func parseListFilters(r *http.Request) (db.ScreeningFilters, error) {
	filters := db.ScreeningFilters{JobID: r.PathValue("job_id")}
	if strings.TrimSpace(filters.JobID) == "" {
		return filters, &ErrValidation{Field: "job_id", Message: "job ID is required"}
	}

	query := r.URL.Query()
	if v := query.Get("min_match"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 || n > 100 {
			return filters, &ErrValidation{Field: "min_match", Message: "must be an integer between 0 and 100"}
		}
		filters.MinMatch = n
	}
	if v := query.Get("shortlisted"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return filters, &ErrValidation{Field: "shortlisted", Message: "must be a boolean"}
		}
		filters.ShortlistedOnly = b
	}
	if v := query.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return filters, &ErrValidation{Field: "limit", Message: "must be a positive integer"}
		}
		filters.Limit = n
	}
	return filters, nil
}

func isMultipart(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "multipart/form-data"
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return err
		}
		return &ErrValidation{Field: "body", Message: "invalid JSON: " + err.Error()}
	}
	return nil
}

// readMultipartRequest builds a ScreeningRequest from an upload form.
func (s *Server) readMultipartRequest(r *http.Request) (types.ScreeningRequest, error) {
	var req types.ScreeningRequest
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return req, err
		}
		return req, &ErrValidation{Field: "body", Message: "invalid multipart form: " + err.Error()}
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		return req, &ErrValidation{Field: "resume", Message: "resume file is required"}
	}
	defer func() { _ = file.Close() }()

	content, err := io.ReadAll(file)
	if err != nil {
		return req, fmt.Errorf("failed to read upload: %w", err)
	}

	mediaType := r.FormValue("media_type")
	if mediaType == "" {
		mediaType = header.Header.Get("Content-Type")
	}

	req = types.ScreeningRequest{
		JobID:          r.FormValue("job_id"),
		CandidateID:    r.FormValue("candidate_id"),
		MediaType:      mediaType,
		RequiredSkills: splitSkills(r.MultipartForm.Value["required_skills"]),
		ApplicantName:  r.FormValue("applicant_name"),
		ApplicantEmail: r.FormValue("applicant_email"),
		Document: &types.RawDocument{
			Content:   content,
			MediaType: mediaType,
			Filename:  header.Filename,
		},
	}
	return req, nil
}

// splitSkills accepts repeated form values, each of which may hold a comma-separated list.
func splitSkills(values []string) []string {
	skills := []string{}
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				skills = append(skills, part)
			}
		}
	}
	return skills
}
