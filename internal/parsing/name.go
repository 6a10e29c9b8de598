package parsing

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/SanthoshkumarGudi/ATS-SW/internal/types"
)

// nameDenylist holds structural headings and job-title words that never form a name.
var nameDenylist = map[string]bool{
	"resume": true, "curriculum": true, "vitae": true, "cv": true, "profile": true,
	"contact": true, "objective": true, "experience": true, "education": true,
	"skills": true, "summary": true, "linkedin": true, "github": true, "projects": true,
	"certifications": true, "languages": true, "references": true, "address": true,
	"phone": true, "email": true, "engineer": true, "developer": true, "manager": true,
	"designer": true, "analyst": true, "consultant": true, "intern": true,
	"architect": true, "lead": true, "senior": true, "junior": true, "software": true,
	"frontend": true, "backend": true, "data": true, "scientist": true, "student": true,
}

var (
	titleToken = regexp.MustCompile(`^[A-Z][A-Za-z'.-]*$`)
	looseName  = regexp.MustCompile(`^[A-Za-z]+(?:\s+[A-Za-z]+){1,2}$`)
)

// ExtractName looks for the candidate's name in the first scanLines lines.
// isLocation lets the caller exclude lines that are addresses. When nothing
// qualifies, the first line is tried against a looser two-to-three word shape
// before giving up with types.UnknownName.
func ExtractName(lines []string, scanLines int, isLocation func(string) bool) string {
	limit := min(scanLines, len(lines))
	for _, line := range lines[:limit] {
		if rejectNameLine(line) {
			continue
		}
		if isLocation != nil && isLocation(line) {
			continue
		}
		if isTitleCaseName(line) {
			return line
		}
	}

	if len(lines) > 0 {
		first := lines[0]
		if looseName.MatchString(first) && !rejectNameLine(first) {
			return first
		}
	}
	return types.UnknownName
}

func rejectNameLine(line string) bool {
	if strings.ContainsRune(line, '@') {
		return true
	}
	if strings.IndexFunc(line, unicode.IsDigit) >= 0 {
		return true
	}
	words := strings.FieldsFunc(strings.ToLower(line), func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	for _, w := range words {
		if nameDenylist[w] {
			return true
		}
	}
	return false
}

func isTitleCaseName(line string) bool {
	tokens := strings.Fields(line)
	if len(tokens) == 0 || len(tokens) > 4 {
		return false
	}
	for _, tok := range tokens {
		if !titleToken.MatchString(tok) {
			return false
		}
	}
	return true
}
