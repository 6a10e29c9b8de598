package parsing

import (
	"regexp"
	"strings"
)

// phonePattern accepts an optional country code and separators around a 10 digit core,
// in either 3-3-4 or 5-5 grouping.
var phonePattern = regexp.MustCompile(`(?:\+?\d{1,3}[\s.-]?)?(?:\(?\d{3}\)?[\s.-]?\d{3}[\s.-]?\d{4}|\d{5}[\s.-]?\d{5})`)

// ExtractPhone scans lines in order and returns the first plausible phone number,
// normalized by NormalizePhone. It returns "" when no line holds one.
func ExtractPhone(lines []string, countryCode string) string {
	for _, line := range lines {
		for _, candidate := range phonePattern.FindAllString(line, -1) {
			if phone, ok := NormalizePhone(candidate, countryCode); ok {
				return phone
			}
		}
	}
	return ""
}

// NormalizePhone strips everything except digits and a leading plus sign.
// Ten digit local numbers get countryCode prefixed; a trunk zero is dropped first.
// Longer numbers written without a plus are taken as international only when they
// start with countryCode or are grouped with separators; a bare run of digits is
// more likely an ID than a phone number.
func NormalizePhone(raw, countryCode string) (string, bool) {
	raw = strings.TrimSpace(raw)
	hasPlus := strings.HasPrefix(raw, "+")

	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()

	switch {
	case hasPlus && len(d) >= 11 && len(d) <= 13:
		return "+" + d, true
	case hasPlus:
		return "", false
	case len(d) == 10:
		return countryCode + d, true
	case len(d) == 11 && d[0] == '0':
		return countryCode + d[1:], true
	case len(d) >= 11 && len(d) <= 13 && (hasCountryCode(d, countryCode) || hasSeparator(raw)):
		return "+" + d, true
	default:
		return "", false
	}
}

func hasCountryCode(digits, countryCode string) bool {
	code := strings.TrimPrefix(countryCode, "+")
	return code != "" && strings.HasPrefix(digits, code)
}

func hasSeparator(raw string) bool {
	return strings.ContainsAny(raw, " .-()")
}
