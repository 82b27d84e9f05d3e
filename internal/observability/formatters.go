// Package observability provides formatted terminal output for CLI results.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted report output
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

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintAnalysis renders the full analysis report: scores, keyword
// coverage and the narrative sections.
func (p *Printer) PrintAnalysis(result *types.AnalysisResult) {
	if result == nil {
		return
	}

	p.printScores(result)
	p.printKeywords(result)
	p.printNarrative(result)
}

// printScores outputs the match, compensation and overall scores with the
// per-section coverage breakdown.
func (p *Printer) printScores(result *types.AnalysisResult) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Match Score:    %d / 100\n", result.MatchScore))
	if result.CompensationFit != nil {
		sb.WriteString(fmt.Sprintf("Compensation:   %d / 100\n", *result.CompensationFit))
	} else {
		sb.WriteString("Compensation:   not assessed\n")
	}
	if result.OverallScore != nil {
		sb.WriteString(fmt.Sprintf("Overall:        %d / 100\n", *result.OverallScore))
	}

	sb.WriteString("\nSection coverage:\n")
	sections := []struct {
		name string
		part types.ScorePart
	}{
		{"requirements", result.ScoreBreakdown.Requirements},
		{"responsibilities", result.ScoreBreakdown.Responsibilities},
		{"preferred", result.ScoreBreakdown.Preferred},
		{"other", result.ScoreBreakdown.Other},
	}

	active := false
	for _, s := range sections {
		if s.part.Total == 0 {
			continue
		}
		active = true
		sb.WriteString(fmt.Sprintf("  %-17s %d/%d (%.0f%%)\n",
			s.name, s.part.Matched, s.part.Total, s.part.Ratio*100))
	}
	if !active {
		sb.WriteString("  no scoreable sections found\n")
	}

	p.printBox("MATCH ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// printKeywords outputs matched and missing key terms, truncated to the
// display cap.
func (p *Printer) printKeywords(result *types.AnalysisResult) {
	if len(result.KeywordMatches) == 0 && len(result.MissingKeywords) == 0 {
		return
	}

	var sb strings.Builder

	writeList := func(title string, items []string) {
		if len(items) == 0 {
			return
		}
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(title + ":\n")
		count := min(len(items), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
		}
		if len(items) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
		}
	}

	writeList("Matched", result.KeywordMatches)
	writeList("Missing", result.MissingKeywords)

	p.printBox("KEYWORDS", strings.TrimSuffix(sb.String(), "\n"))
}

// printNarrative outputs the prose sections of the result.
func (p *Printer) printNarrative(result *types.AnalysisResult) {
	var sb strings.Builder

	for _, line := range wrapLine(result.Summary, boxWidth-4) {
		sb.WriteString(line + "\n")
	}

	writeSection := func(title string, items []string) {
		if len(items) == 0 {
			return
		}
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(title + ":\n")
		for _, item := range items {
			for j, line := range wrapLine(item, boxWidth-8) {
				if j == 0 {
					sb.WriteString("  • " + line + "\n")
				} else {
					sb.WriteString("    " + line + "\n")
				}
			}
		}
	}

	writeSection("Gaps", result.GapAnalysis)
	writeSection("Improvements", result.Improvements)
	writeSection("ATS Notes", result.ATSNotes)
	writeSection("Compensation", result.CompensationNotes)

	if len(result.BulletRewrites) > 0 {
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("Bullet Rewrites:\n")
		count := min(len(result.BulletRewrites), maxItemsToShow)
		for i := 0; i < count; i++ {
			rewrite := result.BulletRewrites[i]
			sb.WriteString(fmt.Sprintf("  - %s\n", clip(rewrite.Original, 50)))
			sb.WriteString(fmt.Sprintf("  + %s\n", clip(rewrite.Suggested, 50)))
		}
		if len(result.BulletRewrites) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.BulletRewrites)-maxItemsToShow))
		}
	}

	if sb.Len() == 0 {
		return
	}
	p.printBox("NARRATIVE", strings.TrimSuffix(sb.String(), "\n"))
}

// BatchResult is one job description scored during a batch run. Name is the
// job description file name; Matched and Total count key terms across active
// sections.
type BatchResult struct {
	Name       string `json:"name"`
	MatchScore int    `json:"matchScore"`
	Matched    int    `json:"matched"`
	Total      int    `json:"total"`
}

// PrintBatchTable renders batch results in the order given, one row per
// job description.
func (p *Printer) PrintBatchTable(results []BatchResult) {
	if len(results) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-4s %-30s %6s  %s\n", "#", "Job", "Score", "Coverage"))

	for i, r := range results {
		sb.WriteString(fmt.Sprintf("%-4d %-30s %6d  %d/%d\n",
			i+1, clip(r.Name, 30), r.MatchScore, r.Matched, r.Total))
	}

	p.printBox("BATCH RESULTS", strings.TrimSuffix(sb.String(), "\n"))
}

// clip shortens text to at most width characters, marking the cut.
func clip(text string, width int) string {
	if len(text) > width {
		return text[:width-3] + "..."
	}
	return text
}

// wrapLine breaks text into lines no wider than width, splitting on spaces.
func wrapLine(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		if len(line)+1+len(word) > width {
			lines = append(lines, line)
			line = word
			continue
		}
		line += " " + word
	}
	return append(lines, line)
}
