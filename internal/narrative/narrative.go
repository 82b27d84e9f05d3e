// Package narrative produces the qualitative half of an analysis result:
// summary, gap analysis, improvement suggestions, keyword lists, bullet
// rewrites and ATS notes. The primary path asks an LLM and validates its
// response against a fixed schema; Fallback computes a heuristic narrative
// locally when no LLM is available or its output cannot be trusted.
package narrative

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/jonathan/resume-matcher/internal/llm"
	"github.com/jonathan/resume-matcher/internal/prompts"
	"github.com/jonathan/resume-matcher/internal/schemas"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Narrative is the qualitative analysis payload. Numeric match scores are
// never taken from here; CompensationFit is advisory and consulted only when
// the deterministic scorer could not assess compensation.
type Narrative struct {
	Summary           string                `json:"summary"`
	GapAnalysis       []string              `json:"gapAnalysis"`
	Improvements      []string              `json:"improvements"`
	KeywordMatches    []string              `json:"keywordMatches"`
	MissingKeywords   []string              `json:"missingKeywords"`
	BulletRewrites    []types.BulletRewrite `json:"bulletRewrites"`
	ATSNotes          []string              `json:"atsNotes"`
	CompensationFit   *int                  `json:"compensationFit"`
	CompensationNotes []string              `json:"compensationNotes"`
}

// Input carries the documents plus the already-computed deterministic scores.
// The scores are embedded into the prompt as ground truth so the narrative
// agrees with the numbers the caller will report.
type Input struct {
	ResumeText      string
	JobText         string
	MatchScore      int
	Breakdown       types.ScoreBreakdown
	CompensationFit *int // nil when the deterministic scorer could not assess
}

// Generate asks the LLM for a narrative and validates the response. Callers
// must treat any error as a signal to use Fallback instead.
func Generate(ctx context.Context, client llm.Client, input Input) (*Narrative, error) {
	prompt := buildPrompt(input)

	resp, err := client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, fmt.Errorf("narrative generation failed: %w", err)
	}

	resp = llm.ExtractJSONObject(llm.CleanJSONBlock(resp))

	if err := schemas.ValidateNarrative(resp); err != nil {
		return nil, fmt.Errorf("narrative response rejected: %w", err)
	}

	var n Narrative
	if err := json.Unmarshal([]byte(resp), &n); err != nil {
		return nil, fmt.Errorf("failed to parse narrative response: %w", err)
	}

	return &n, nil
}

// buildPrompt renders the narrative prompt template with the documents and
// the deterministic results.
func buildPrompt(input Input) string {
	template := prompts.MustGet("narrative.json", "generate-narrative")
	return prompts.Format(template, map[string]string{
		"MatchScore":          strconv.Itoa(input.MatchScore),
		"ScoreDetail":         formatScoreDetail(input.Breakdown),
		"CompensationContext": formatCompensationContext(input.CompensationFit),
		"ResumeText":          input.ResumeText,
		"JobText":             input.JobText,
	})
}

type sectionPart struct {
	label string
	part  types.ScorePart
}

func breakdownSections(b types.ScoreBreakdown) []sectionPart {
	return []sectionPart{
		{"requirements", b.Requirements},
		{"responsibilities", b.Responsibilities},
		{"preferred", b.Preferred},
		{"other", b.Other},
	}
}

// formatScoreDetail renders the per-section coverage as prompt lines,
// omitting sections that carried no tokens.
func formatScoreDetail(b types.ScoreBreakdown) string {
	var lines []string
	for _, s := range breakdownSections(b) {
		if s.part.Total == 0 {
			continue
		}
		lines = append(lines, fmt.Sprintf("- %s section: %d of %d key terms matched (%.0f%%).",
			s.label, s.part.Matched, s.part.Total, s.part.Ratio*100))
	}
	if len(lines) == 0 {
		return "- No scoreable sections were found in the job description."
	}
	return strings.Join(lines, "\n")
}

func formatCompensationContext(fit *int) string {
	if fit == nil {
		return "not assessed (salary ranges were not provided)"
	}
	return fmt.Sprintf("fit score %d out of 100, computed from the provided salary ranges", *fit)
}
