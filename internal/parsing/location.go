package parsing

import (
	"regexp"
	"sort"
	"strings"

	"github.com/SanthoshkumarGudi/ATS-SW/internal/types"
)

var (
	urlLike       = regexp.MustCompile(`(?i)https?://|www\.|linkedin\.com|github\.com|\.com/`)
	locationLabel = regexp.MustCompile(`(?i)^\s*(?:location|address|based in)\s*[:\-]\s*`)
	segmentSplit  = regexp.MustCompile(`\s*[|•·]\s*`)
)

const locationTrim = " \t|,;:-•·/"

// Gazetteer recognizes place names from a fixed list.
type Gazetteer struct {
	pattern *regexp.Regexp
}

// NewGazetteer compiles places into a case-insensitive whole-word matcher.
// Longer names are tried first so "New Delhi" wins over "Delhi".
func NewGazetteer(places []string) *Gazetteer {
	names := make([]string, 0, len(places))
	for _, p := range places {
		p = strings.TrimSpace(p)
		if p != "" {
			names = append(names, p)
		}
	}
	if len(names) == 0 {
		return &Gazetteer{}
	}
	sort.SliceStable(names, func(i, j int) bool { return len(names[i]) > len(names[j]) })

	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = regexp.QuoteMeta(n)
	}
	return &Gazetteer{
		pattern: regexp.MustCompile(`(?i)\b(?:` + strings.Join(quoted, "|") + `)\b`),
	}
}

// Contains reports whether line mentions a known place.
func (g *Gazetteer) Contains(line string) bool {
	return g.pattern != nil && g.pattern.MatchString(line)
}

// ExtractLocation returns the first line naming a known place, or
// types.LocationNotMention. Contact and social lines are skipped. On
// separator-delimited header lines only the segment naming the place is kept.
func (g *Gazetteer) ExtractLocation(lines []string) string {
	for _, line := range lines {
		if urlLike.MatchString(line) || emailPattern.MatchString(line) {
			continue
		}
		if !g.Contains(line) {
			continue
		}

		candidate := line
		for _, segment := range segmentSplit.Split(line, -1) {
			if g.Contains(segment) {
				candidate = segment
				break
			}
		}
		candidate = locationLabel.ReplaceAllString(candidate, "")
		candidate = strings.Trim(candidate, locationTrim)
		if candidate != "" {
			return candidate
		}
	}
	return types.LocationNotMention
}
