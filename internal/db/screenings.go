package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/SanthoshkumarGudi/ATS-SW/internal/types"
)

// DefaultListLimit caps ListScreenings when no limit is given.
const DefaultListLimit = 100

// ScreeningFilters holds optional filters for listing a job's screenings
type ScreeningFilters struct {
	JobID           string
	MinMatch        int  // inclusive lower bound on match_percentage
	ShortlistedOnly bool // only is_shortlisted rows
	Limit           int
}

const screeningColumns = `id, job_id, candidate_id, COALESCE(resume_url, ''), COALESCE(document_hash, ''),
	extraction_status, candidate_name, candidate_email, candidate_phone, candidate_location,
	skills, required_skills, matched_skills, missing_skills, match_percentage, is_shortlisted,
	status, created_at`

// SaveScreening inserts a screening record. Existing records are never updated.
func (db *DB) SaveScreening(ctx context.Context, s *types.Screening) error {
	if s.ID == uuid.Nil {
		return fmt.Errorf("screening has no id")
	}

	_, err := db.pool.Exec(ctx,
		`INSERT INTO application_screenings (
			id, job_id, candidate_id, resume_url, document_hash, extraction_status,
			candidate_name, candidate_email, candidate_phone, candidate_location,
			skills, required_skills, matched_skills, missing_skills,
			match_percentage, is_shortlisted, status, created_at)
		 VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), $6, $7, $8, $9, $10,
		         $11, $12, $13, $14, $15, $16, $17, $18)`,
		s.ID, s.JobID, s.CandidateID, s.ResumeURL, s.DocumentHash, s.ExtractionStatus,
		s.Facts.Name, s.Facts.Email, s.Facts.Phone, s.Facts.Location,
		nonNil(s.Facts.Skills), nonNil(s.RequiredSkills),
		nonNil(s.Match.MatchedSkills), nonNil(s.Match.MissingSkills),
		s.Match.MatchPercentage, s.Match.IsShortlisted, s.Status, s.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert screening: %w", err)
	}
	return nil
}

// GetScreening retrieves a screening by its UUID. It returns nil, nil when absent.
func (db *DB) GetScreening(ctx context.Context, id uuid.UUID) (*types.Screening, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+screeningColumns+` FROM application_screenings WHERE id = $1`, id)

	s, err := scanScreening(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get screening: %w", err)
	}
	return s, nil
}

// ListScreenings retrieves a job's screenings, best match first.
func (db *DB) ListScreenings(ctx context.Context, filters ScreeningFilters) ([]types.Screening, error) {
	query, args := buildListQuery(filters)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list screenings: %w", err)
	}
	defer rows.Close()

	screenings := []types.Screening{}
	for rows.Next() {
		s, err := scanScreening(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan screening: %w", err)
		}
		screenings = append(screenings, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list screenings: %w", err)
	}
	return screenings, nil
}

func buildListQuery(filters ScreeningFilters) (string, []any) {
	if filters.Limit <= 0 {
		filters.Limit = DefaultListLimit
	}

	query := `SELECT ` + screeningColumns + ` FROM application_screenings WHERE job_id = $1`
	args := []any{filters.JobID}
	argNum := 2

	if filters.MinMatch > 0 {
		query += fmt.Sprintf(" AND match_percentage >= $%d", argNum)
		args = append(args, filters.MinMatch)
		argNum++
	}
	if filters.ShortlistedOnly {
		query += " AND is_shortlisted"
	}

	query += fmt.Sprintf(" ORDER BY match_percentage DESC, created_at ASC LIMIT $%d", argNum)
	args = append(args, filters.Limit)
	return query, args
}

func scanScreening(row pgx.Row) (*types.Screening, error) {
	var s types.Screening
	err := row.Scan(
		&s.ID, &s.JobID, &s.CandidateID, &s.ResumeURL, &s.DocumentHash,
		&s.ExtractionStatus, &s.Facts.Name, &s.Facts.Email, &s.Facts.Phone, &s.Facts.Location,
		&s.Facts.Skills, &s.RequiredSkills, &s.Match.MatchedSkills, &s.Match.MissingSkills,
		&s.Match.MatchPercentage, &s.Match.IsShortlisted, &s.Status, &s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	s.Facts.Skills = nonNil(s.Facts.Skills)
	s.RequiredSkills = nonNil(s.RequiredSkills)
	s.Match.MatchedSkills = nonNil(s.Match.MatchedSkills)
	s.Match.MissingSkills = nonNil(s.Match.MissingSkills)
	return &s, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
