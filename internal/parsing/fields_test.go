package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SanthoshkumarGudi/ATS-SW/internal/config"
	"github.com/SanthoshkumarGudi/ATS-SW/internal/types"
)

func TestExtractEmail(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"mid paragraph", "You can reach me at jane.doe@example.com for details.", "jane.doe@example.com"},
		{"lower-cased", "Jane.Doe@Example.COM", "jane.doe@example.com"},
		{"first of several", "a@one.io then b@two.io", "a@one.io"},
		{"plus addressing", "jobs+ats@mail.example.org", "jobs+ats@mail.example.org"},
		{"sentence end", "Email: dev@corp.in.", "dev@corp.in"},
		{"none", "no contact details here @ all", ""},
		{"missing tld", "user@localhost", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractEmail(tt.input))
		})
	}
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		code     string
		expected string
		ok       bool
	}{
		{"local ten digits", "98765 43210", "+91", "+919876543210", true},
		{"with country code", "+91-98765-43210", "+91", "+919876543210", true},
		{"us format", "(555) 123-4567", "+1", "+15551234567", true},
		{"trunk zero", "09876543210", "+91", "+919876543210", true},
		{"country code without plus", "919876543210", "+91", "+919876543210", true},
		{"international with plus", "+1 555 123 4567", "+91", "+15551234567", true},
		{"international with separators", "1-555-123-4567", "+91", "+15551234567", true},
		{"bare digits without country code", "1234567890123", "+91", "", false},
		{"too short", "12345", "+91", "", false},
		{"plus but too short", "+12345", "+91", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizePhone(tt.raw, tt.code)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestExtractPhone(t *testing.T) {
	lines := []string{
		"Worked 2019-2023 at Acme",
		"Phone: 98765-43210",
		"Alt: +1 555 123 4567",
	}
	assert.Equal(t, "+919876543210", ExtractPhone(lines, "+91"))
	assert.Equal(t, "", ExtractPhone([]string{"no numbers", "ID 1234"}, "+91"))
	assert.Equal(t, "", ExtractPhone([]string{"Account 1234567890123"}, "+91"))
	assert.Equal(t, "", ExtractPhone(nil, "+91"))
}

func TestExtractName(t *testing.T) {
	gazetteer := NewGazetteer(config.DefaultLocations())

	tests := []struct {
		name     string
		lines    []string
		expected string
	}{
		{
			name:     "first line",
			lines:    []string{"Jane Doe", "jane@example.com"},
			expected: "Jane Doe",
		},
		{
			name:     "skips structural heading",
			lines:    []string{"RESUME", "John Smith", "Skills"},
			expected: "John Smith",
		},
		{
			name:     "skips lines with digits and email",
			lines:    []string{"+91 98765 43210", "ravi@example.com", "Ravi Kumar Reddy"},
			expected: "Ravi Kumar Reddy",
		},
		{
			name:     "skips job titles",
			lines:    []string{"Senior Software Engineer", "Priya Sharma"},
			expected: "Priya Sharma",
		},
		{
			name:     "skips location line",
			lines:    []string{"Bengaluru", "Anil Kumar"},
			expected: "Anil Kumar",
		},
		{
			name:     "rejects more than four tokens",
			lines:    []string{"A Very Long Title Case Line", "Meera Nair"},
			expected: "Meera Nair",
		},
		{
			name:     "loose first line fallback",
			lines:    []string{"jane doe", "built things"},
			expected: "jane doe",
		},
		{
			name:     "nothing qualifies",
			lines:    []string{"Curriculum Vitae", "Experience 2020-2024", "skills: go, docker"},
			expected: types.UnknownName,
		},
		{
			name:     "empty",
			lines:    nil,
			expected: types.UnknownName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractName(tt.lines, config.DefaultNameScanLines, gazetteer.Contains))
		})
	}
}

func TestExtractName_OnlyScansLeadingLines(t *testing.T) {
	lines := make([]string, 0, 11)
	for i := 0; i < 10; i++ {
		lines = append(lines, "Experience 2020")
	}
	lines = append(lines, "Jane Doe")

	assert.Equal(t, types.UnknownName, ExtractName(lines, 10, nil))
	assert.Equal(t, "Jane Doe", ExtractName(lines, 11, nil))
}

func TestGazetteer_ExtractLocation(t *testing.T) {
	gazetteer := NewGazetteer(config.DefaultLocations())

	tests := []struct {
		name     string
		lines    []string
		expected string
	}{
		{
			name:     "city and state",
			lines:    []string{"Jane Doe", "Hyderabad, Telangana"},
			expected: "Hyderabad, Telangana",
		},
		{
			name:     "strips label",
			lines:    []string{"Location: Pune, Maharashtra"},
			expected: "Pune, Maharashtra",
		},
		{
			name:     "keeps matching segment",
			lines:    []string{"Jane Doe • Chennai • 98765 43210"},
			expected: "Chennai",
		},
		{
			name:     "pipe separated segment",
			lines:    []string{"Open to relocation | Mumbai, India |"},
			expected: "Mumbai, India",
		},
		{
			name:     "skips url and email lines",
			lines:    []string{"github.com/pune-dev", "pune.dev@example.com", "Based in: Kochi"},
			expected: "Kochi",
		},
		{
			name:     "longest name preferred",
			lines:    []string{"New Delhi"},
			expected: "New Delhi",
		},
		{
			name:     "case-insensitive",
			lines:    []string{"bangalore"},
			expected: "bangalore",
		},
		{
			name:     "whole words only",
			lines:    []string{"Goal: ship reliable systems"},
			expected: types.LocationNotMention,
		},
		{
			name:     "none",
			lines:    []string{"Jane Doe", "Skills: Go"},
			expected: types.LocationNotMention,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, gazetteer.ExtractLocation(tt.lines))
		})
	}
}

func TestGazetteer_Empty(t *testing.T) {
	gazetteer := NewGazetteer(nil)
	assert.False(t, gazetteer.Contains("Hyderabad"))
	assert.Equal(t, types.LocationNotMention, gazetteer.ExtractLocation([]string{"Hyderabad"}))
}

func TestExtractSkills(t *testing.T) {
	vocabulary := NormalizeSkills([]string{"react", "node.js", "spring boot", "docker"})

	t.Run("matches normalized text", func(t *testing.T) {
		skills := ExtractSkills("Skills: NodeJS, React.\nSpring  Boot services", vocabulary)
		assert.Equal(t, []string{"react", "nodejs", "spring boot"}, skills)
	})

	t.Run("deduplicates", func(t *testing.T) {
		skills := ExtractSkills("Docker docker DOCKER", vocabulary)
		assert.Equal(t, []string{"docker"}, skills)
	})

	t.Run("empty text", func(t *testing.T) {
		skills := ExtractSkills("", vocabulary)
		assert.NotNil(t, skills)
		assert.Empty(t, skills)
	})

	t.Run("only vocabulary entries", func(t *testing.T) {
		skills := ExtractSkills("Elixir, Haskell, COBOL", vocabulary)
		assert.Empty(t, skills)
	})
}
