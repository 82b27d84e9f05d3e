// Package scoring implements the deterministic match, compensation and
// overall scores for a resume against a job description.
package scoring

import (
	"github.com/jonathan/resume-matcher/internal/parsing"
	"github.com/jonathan/resume-matcher/internal/types"
)

// ScoreCoverage measures how much of one job-description section the resume
// covers: Matched distinct section tokens found in the resume set over Total
// distinct section tokens. The weight field is left for the aggregator.
func ScoreCoverage(sectionText string, resume parsing.TokenSet) types.ScorePart {
	sectionTokens := parsing.NewTokenSet(sectionText)

	part := types.ScorePart{Total: len(sectionTokens)}
	if part.Total == 0 {
		return part
	}

	for token := range sectionTokens {
		if resume.Contains(token) {
			part.Matched++
		}
	}
	part.Ratio = float64(part.Matched) / float64(part.Total)
	return part
}
