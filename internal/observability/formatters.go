// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/SanthoshkumarGudi/ATS-SW/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 8
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

func writeList(sb *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		sb.WriteString(fmt.Sprintf("%s none\n", label))
		return
	}
	sb.WriteString(label + "\n")
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// PrintCandidateFacts outputs the parsed resume fields.
func (p *Printer) PrintCandidateFacts(facts *types.CandidateFacts) {
	if facts == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:     %s\n", facts.Name))
	sb.WriteString(fmt.Sprintf("Email:    %s\n", orDash(facts.Email)))
	sb.WriteString(fmt.Sprintf("Phone:    %s\n", orDash(facts.Phone)))
	sb.WriteString(fmt.Sprintf("Location: %s\n", facts.Location))
	sb.WriteString("\n")
	writeList(&sb, fmt.Sprintf("Skills (%d):", len(facts.Skills)), facts.Skills)

	p.printBox("PARSED CANDIDATE", sb.String())
}

// PrintSkillMatch outputs a match result with its shortlist verdict.
func (p *Printer) PrintSkillMatch(result *types.SkillMatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	verdict := "not shortlisted"
	if result.IsShortlisted {
		verdict = "SHORTLISTED"
	}
	sb.WriteString(fmt.Sprintf("Match:    %d%% (%s)\n", result.MatchPercentage, verdict))
	sb.WriteString("\n")
	writeList(&sb, fmt.Sprintf("Matched (%d):", len(result.MatchedSkills)), result.MatchedSkills)
	writeList(&sb, fmt.Sprintf("Missing (%d):", len(result.MissingSkills)), result.MissingSkills)

	p.printBox("SKILL MATCH", sb.String())
}

// PrintScreening outputs a full screening record.
func (p *Printer) PrintScreening(s *types.Screening) {
	if s == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("ID:         %s\n", s.ID))
	sb.WriteString(fmt.Sprintf("Job:        %s\n", s.JobID))
	sb.WriteString(fmt.Sprintf("Candidate:  %s\n", s.CandidateID))
	sb.WriteString(fmt.Sprintf("Extraction: %s\n", s.ExtractionStatus))
	sb.WriteString(fmt.Sprintf("Status:     %s\n", s.Status))
	p.printBox("SCREENING", sb.String())

	p.PrintCandidateFacts(&s.Facts)
	p.PrintSkillMatch(&s.Match)
}

// PrintScreeningTable outputs one line per screening, in the given order.
func (p *Printer) PrintScreeningTable(screenings []types.Screening) {
	var sb strings.Builder
	if len(screenings) == 0 {
		sb.WriteString("No screenings\n")
	}
	for _, s := range screenings {
		marker := " "
		if s.Match.IsShortlisted {
			marker = "★"
		}
		sb.WriteString(fmt.Sprintf("%s %3d%%  %-20.20s %s\n", marker, s.Match.MatchPercentage, s.Facts.Name, s.CandidateID))
	}
	p.printBox(fmt.Sprintf("SCREENINGS (%d)", len(screenings)), sb.String())
}
