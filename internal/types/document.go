// Package types provides type definitions for structured data used throughout the applicant screening system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// MediaTypePDF is the only document type the text extractor supports.
const MediaTypePDF = "application/pdf"

// RawDocument is an uploaded or fetched document held in memory for a single parse.
type RawDocument struct {
	Content   []byte
	MediaType string // declared or sniffed, e.g. application/pdf
	Filename  string // optional, used for extension-based detection
}

// ExtractedText is the text layer of a document split into non-empty trimmed lines.
// Lines keep the top-to-bottom order of the source document.
type ExtractedText struct {
	Lines []string `json:"lines"`
	Full  string   `json:"full"`
}

// NewExtractedText builds an ExtractedText from lines, dropping blank ones.
func NewExtractedText(lines []string) *ExtractedText {
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		kept = append(kept, line)
	}
	return &ExtractedText{
		Lines: kept,
		Full:  strings.Join(kept, "\n"),
	}
}

// IsEmpty reports whether no text was extracted.
func (t *ExtractedText) IsEmpty() bool {
	return t == nil || len(t.Lines) == 0
}
