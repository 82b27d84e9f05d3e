// Package types provides type definitions for structured data used throughout the resume-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ScorePart holds the coverage measurement for one job-description section.
// Total is the number of distinct significant tokens in the section; Matched
// counts how many of those also appear in the resume. A section with Total=0
// contributed no weight to the aggregate score.
type ScorePart struct {
	Matched int     `json:"matched"`
	Total   int     `json:"total"`
	Ratio   float64 `json:"ratio"`
	Weight  float64 `json:"weight"`
}

// ScoreBreakdown holds the per-section ScorePart values keyed by section name.
// Invariant: the weights of active (Total>0) parts sum to 1.0 after
// renormalization.
type ScoreBreakdown struct {
	Requirements     ScorePart `json:"requirements"`
	Responsibilities ScorePart `json:"responsibilities"`
	Preferred        ScorePart `json:"preferred"`
	Other            ScorePart `json:"other"`
}

// SalaryRange represents a salary band in integer currency units, Min <= Max.
type SalaryRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// NewSalaryRange builds a SalaryRange from up to two optional bounds.
// Both nil yields nil (range not provided). A single bound collapses to a
// point range. Reversed bounds are swapped rather than rejected.
func NewSalaryRange(lo, hi *int) *SalaryRange {
	switch {
	case lo == nil && hi == nil:
		return nil
	case lo == nil:
		return &SalaryRange{Min: *hi, Max: *hi}
	case hi == nil:
		return &SalaryRange{Min: *lo, Max: *lo}
	}
	if *lo > *hi {
		return &SalaryRange{Min: *hi, Max: *lo}
	}
	return &SalaryRange{Min: *lo, Max: *hi}
}

// BulletRewrite pairs a resume bullet with a suggested rewording.
type BulletRewrite struct {
	Original  string `json:"original"`
	Suggested string `json:"suggested"`
}

// AnalysisResult is the full response payload for one resume/JD analysis.
// MatchScore, ScoreBreakdown and OverallScore always come from the
// deterministic scorer; the narrative fields come from the LLM collaborator
// or the heuristic fallback. CompensationFit and OverallScore are null when
// they could not be assessed.
type AnalysisResult struct {
	MatchScore        int             `json:"matchScore"`
	ScoreBreakdown    ScoreBreakdown  `json:"scoreBreakdown"`
	CompensationFit   *int            `json:"compensationFit"`
	OverallScore      *int            `json:"overallScore"`
	Summary           string          `json:"summary,omitempty"`
	GapAnalysis       []string        `json:"gapAnalysis"`
	Improvements      []string        `json:"improvements"`
	KeywordMatches    []string        `json:"keywordMatches"`
	MissingKeywords   []string        `json:"missingKeywords"`
	BulletRewrites    []BulletRewrite `json:"bulletRewrites"`
	ATSNotes          []string        `json:"atsNotes"`
	CompensationNotes []string        `json:"compensationNotes"`
}

// EnsureNarrativeArrays replaces nil narrative slices with empty ones so the
// serialized payload carries [] rather than null.
func (r *AnalysisResult) EnsureNarrativeArrays() {
	if r.GapAnalysis == nil {
		r.GapAnalysis = []string{}
	}
	if r.Improvements == nil {
		r.Improvements = []string{}
	}
	if r.KeywordMatches == nil {
		r.KeywordMatches = []string{}
	}
	if r.MissingKeywords == nil {
		r.MissingKeywords = []string{}
	}
	if r.BulletRewrites == nil {
		r.BulletRewrites = []BulletRewrite{}
	}
	if r.ATSNotes == nil {
		r.ATSNotes = []string{}
	}
	if r.CompensationNotes == nil {
		r.CompensationNotes = []string{}
	}
}
