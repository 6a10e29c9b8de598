package ingestion

import (
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`[ \t\f\v\x{00A0}]+`)

// SplitLines normalizes line endings and returns the non-empty trimmed lines of content,
// in their original order. Runs of horizontal whitespace inside a line collapse to one space.
func SplitLines(content string) []string {
	if content == "" {
		return nil
	}

	// CRLF and bare CR become LF
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	rawLines := strings.Split(content, "\n")
	lines := make([]string, 0, len(rawLines))
	for _, line := range rawLines {
		cleaned := cleanLine(line)
		if cleaned == "" {
			continue
		}
		lines = append(lines, cleaned)
	}
	return lines
}

// cleanLine trims a single line and collapses inner whitespace.
// Control characters left behind by text-layer decoding are dropped.
func cleanLine(line string) string {
	line = strings.Map(func(r rune) rune {
		if r == '\t' {
			return ' '
		}
		if r < 0x20 || r == 0x7f || r == '�' {
			return -1
		}
		return r
	}, line)
	line = whitespaceRun.ReplaceAllString(line, " ")
	return strings.TrimSpace(line)
}
