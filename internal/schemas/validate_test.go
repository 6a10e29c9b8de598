package schemas

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SanthoshkumarGudi/ATS-SW/internal/matching"
	"github.com/SanthoshkumarGudi/ATS-SW/internal/parsing"
	"github.com/SanthoshkumarGudi/ATS-SW/internal/types"
)

func TestValidate_CandidateFacts(t *testing.T) {
	text := types.NewExtractedText([]string{
		"Jane Doe",
		"jane.doe@example.com | 98765 43210",
		"Pune, Maharashtra",
		"React, Node.js, Spring Boot",
	})
	facts := parsing.ExtractFacts(text)
	assert.NoError(t, Validate(CandidateFacts, facts))

	assert.NoError(t, Validate(CandidateFacts, types.EmptyCandidateFacts()))
}

func TestValidate_CandidateFacts_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		facts types.CandidateFacts
		field string
	}{
		{
			name:  "unnormalized skill",
			facts: types.CandidateFacts{Name: "A", Location: "B", Skills: []string{"Node.js"}},
			field: "skills.0",
		},
		{
			name:  "duplicate skills",
			facts: types.CandidateFacts{Name: "A", Location: "B", Skills: []string{"go", "go"}},
			field: "skills",
		},
		{
			name:  "unnormalized phone",
			facts: types.CandidateFacts{Name: "A", Location: "B", Phone: "98765 43210", Skills: []string{}},
			field: "phone",
		},
		{
			name:  "null skills",
			facts: types.CandidateFacts{Name: "A", Location: "B"},
			field: "skills",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(CandidateFacts, tt.facts)
			require.Error(t, err)

			validationErr, ok := err.(*ValidationError)
			require.True(t, ok, "error should be ValidationError type")
			assert.Equal(t, CandidateFacts, validationErr.Schema)

			fields := make([]string, 0, len(validationErr.Errors))
			for _, fe := range validationErr.Errors {
				fields = append(fields, fe.Field)
			}
			assert.Contains(t, fields, tt.field)
		})
	}
}

func TestValidate_SkillMatch(t *testing.T) {
	result := matching.Score([]string{"react"}, []string{"React", "Go"})
	assert.NoError(t, Validate(SkillMatch, result))

	result.MatchPercentage = 101
	assert.Error(t, Validate(SkillMatch, result))
}

func TestValidate_Screening(t *testing.T) {
	match := matching.Score([]string{"react"}, []string{"React"})
	screening := types.Screening{
		ID:               uuid.New(),
		JobID:            "job-1",
		CandidateID:      "cand-1",
		DocumentHash:     "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		ExtractionStatus: types.ExtractionOK,
		Facts:            types.EmptyCandidateFacts(),
		RequiredSkills:   []string{"React"},
		Match:            match,
		Status:           types.StatusFor(match),
		CreatedAt:        time.Now().UTC(),
	}
	assert.NoError(t, Validate(Screening, screening))

	screening.ExtractionStatus = "exploded"
	err := Validate(Screening, screening)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "extraction_status")
}

func TestLoad_UnknownSchema(t *testing.T) {
	_, err := Load("nonexistent")
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
	assert.Contains(t, err.Error(), "unknown schema")
}

func TestValidateJSONString(t *testing.T) {
	schema := `{"type": "object", "required": ["name"], "properties": {"name": {"type": "string"}}}`

	assert.NoError(t, ValidateJSONString(schema, `{"name": "x"}`))

	err := ValidateJSONString(schema, `{"name": 1}`)
	require.Error(t, err)
	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "name", validationErr.Errors[0].Field)

	err = ValidateJSONString(`{not json`, `{}`)
	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}
