package narrative

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-matcher/internal/parsing"
	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	// maxKeywordItems caps the matched/missing keyword lists.
	maxKeywordItems = 20

	// lowCoverageRatio is the section ratio below which the fallback
	// narrative calls out a gap.
	lowCoverageRatio = 0.6
)

// Fallback computes a narrative from the deterministic token analysis alone,
// with no network access. Used when no LLM is configured or the LLM path
// failed. BulletRewrites stays empty; rewording needs a language model.
func Fallback(input Input) *Narrative {
	resumeSet := parsing.NewTokenSet(input.ResumeText)
	jdFreqs := parsing.TokenFrequencies(input.JobText)

	var matched, missing []string
	for _, tok := range parsing.RankByFrequency(jdFreqs) {
		if resumeSet.Contains(tok) {
			matched = append(matched, tok)
		} else {
			missing = append(missing, tok)
		}
	}
	matched = capItems(matched, maxKeywordItems)
	missing = capItems(missing, maxKeywordItems)

	return &Narrative{
		Summary:         buildSummary(input.MatchScore, missing),
		GapAnalysis:     buildGapAnalysis(input.Breakdown, missing),
		Improvements:    buildImprovements(input.Breakdown, missing),
		KeywordMatches:  matched,
		MissingKeywords: missing,
		BulletRewrites:  []types.BulletRewrite{},
		ATSNotes:        buildATSNotes(input.ResumeText),
	}
}

func buildSummary(score int, missing []string) string {
	var fit string
	switch {
	case score >= 75:
		fit = "a strong keyword match"
	case score >= 50:
		fit = "a moderate keyword match"
	case score >= 25:
		fit = "a partial keyword match"
	default:
		fit = "a weak keyword match"
	}

	summary := fmt.Sprintf("Keyword analysis scored this resume %d out of 100 against the job description, %s.", score, fit)
	if len(missing) > 0 {
		summary += fmt.Sprintf(" The most significant missing terms are %s.", strings.Join(capItems(missing, 3), ", "))
	}
	return summary
}

func buildGapAnalysis(b types.ScoreBreakdown, missing []string) []string {
	var lines []string
	for _, s := range breakdownSections(b) {
		if s.part.Total == 0 || s.part.Ratio >= lowCoverageRatio {
			continue
		}
		lines = append(lines, fmt.Sprintf("The %s section is weakly covered: %d of %d key terms matched (%.0f%%).",
			s.label, s.part.Matched, s.part.Total, s.part.Ratio*100))
	}

	if len(lines) == 0 && len(missing) > 0 {
		lines = append(lines, fmt.Sprintf("Coverage is broad but not complete; terms such as %s do not appear in the resume.",
			strings.Join(capItems(missing, 3), ", ")))
	}
	return lines
}

func buildImprovements(b types.ScoreBreakdown, missing []string) []string {
	var items []string
	if len(missing) > 0 {
		items = append(items, fmt.Sprintf("Work missing terms into real accomplishments where truthful: %s.",
			strings.Join(capItems(missing, 5), ", ")))
	}
	if b.Requirements.Total > 0 && b.Requirements.Ratio < 1 {
		items = append(items, "Mirror the wording of the requirements you do meet; keyword screens match exact terms.")
	}
	if b.Preferred.Total > 0 && b.Preferred.Ratio == 0 {
		items = append(items, "None of the preferred qualifications appear in the resume; add any you can evidence.")
	}
	return items
}

// buildATSNotes runs mechanical checks on the raw resume text. These mirror
// what automated screens commonly trip on rather than judging content.
func buildATSNotes(resumeText string) []string {
	var notes []string
	trimmed := strings.TrimSpace(resumeText)

	if len(trimmed) < 400 {
		notes = append(notes, "Resume text is very short; automated screens may not find enough signal.")
	}
	if !strings.ContainsAny(trimmed, "0123456789") {
		notes = append(notes, "No numbers found; quantify accomplishments (team size, latency, revenue) where possible.")
	}
	if !strings.Contains(trimmed, "@") {
		notes = append(notes, "No email address detected; make sure contact details survive text extraction.")
	}
	return notes
}

func capItems(items []string, limit int) []string {
	if len(items) > limit {
		return items[:limit]
	}
	return items
}
