package parsing

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

// ExtractEmail returns the first local@domain.tld token in text, lower-cased,
// or "" when there is none.
func ExtractEmail(text string) string {
	match := emailPattern.FindString(text)
	if match == "" {
		return ""
	}
	return strings.ToLower(match)
}
