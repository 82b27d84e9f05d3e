package scoring

import (
	"math"

	"github.com/jonathan/resume-matcher/internal/parsing"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Base section weights. Requirements dominate; the weights of sections a JD
// actually uses are renormalized to sum to 1.0, so a JD without, say, a
// preferred section does not silently lose 15% of the score.
const (
	requirementsWeight     = 0.6
	responsibilitiesWeight = 0.25
	preferredWeight        = 0.15
	otherWeight            = 0.1
)

// ScoreMatch computes the 0-100 keyword-coverage match score between a resume
// and a job description, plus the per-section breakdown.
//
// The JD is segmented, each section is scored against the resume token set,
// and the active sections (Total>0) combine under renormalized weights. When
// no section is active the raw JD text is scored as one undivided block under
// the catch-all part with weight 1.0 (heading-only JDs still get a score this
// way, since the segmenter consumes heading lines).
func ScoreMatch(resumeText, jdText string) (int, types.ScoreBreakdown) {
	resume := parsing.NewTokenSet(resumeText)
	sections := parsing.SegmentJobDescription(jdText)

	breakdown := types.ScoreBreakdown{
		Requirements:     ScoreCoverage(sections.Requirements, resume),
		Responsibilities: ScoreCoverage(sections.Responsibilities, resume),
		Preferred:        ScoreCoverage(sections.Preferred, resume),
		Other:            ScoreCoverage(sections.Other, resume),
	}

	weighted := []struct {
		part *types.ScorePart
		base float64
	}{
		{&breakdown.Requirements, requirementsWeight},
		{&breakdown.Responsibilities, responsibilitiesWeight},
		{&breakdown.Preferred, preferredWeight},
		{&breakdown.Other, otherWeight},
	}

	activeWeight := 0.0
	for _, w := range weighted {
		if w.part.Total > 0 {
			activeWeight += w.base
		}
	}

	if activeWeight == 0 {
		// Nothing significant in any section: score the whole JD as one block.
		breakdown = types.ScoreBreakdown{Other: ScoreCoverage(jdText, resume)}
		breakdown.Other.Weight = 1.0
		return clampScore(round(100 * breakdown.Other.Ratio)), breakdown
	}

	sum := 0.0
	for _, w := range weighted {
		if w.part.Total == 0 {
			continue
		}
		w.part.Weight = w.base / activeWeight
		sum += w.part.Ratio * w.part.Weight
	}

	return clampScore(round(100 * sum)), breakdown
}

func round(v float64) int {
	return int(math.Round(v))
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
