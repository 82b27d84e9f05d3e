// Package analysis orchestrates one resume/job-description comparison:
// deterministic scoring first, then the optional LLM narrative with a
// heuristic fallback, merged into a single AnalysisResult.
package analysis

import (
	"context"
	"log"

	"github.com/jonathan/resume-matcher/internal/llm"
	"github.com/jonathan/resume-matcher/internal/narrative"
	"github.com/jonathan/resume-matcher/internal/scoring"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Options configures one analysis run. Salary ranges and APIKey are optional;
// an empty APIKey disables the LLM narrative entirely.
type Options struct {
	ResumeText      string
	JobText         string
	CandidateSalary *types.SalaryRange
	RoleSalary      *types.SalaryRange
	SkillWeight     float64 // out-of-range values resolve to the default
	APIKey          string
	Verbose         bool
}

// Run analyzes a resume against a job description. The deterministic scores
// always come from the local scorer; LLM failures degrade to the heuristic
// narrative and never fail the run. The only error Run returns is a context
// that was already done.
func Run(ctx context.Context, opts Options) (*types.AnalysisResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	matchScore, breakdown := scoring.ScoreMatch(opts.ResumeText, opts.JobText)
	compFit, compNotes := scoring.ScoreCompensation(opts.CandidateSalary, opts.RoleSalary)

	if opts.Verbose {
		log.Printf("[VERBOSE] match score %d (req %d/%d, resp %d/%d, pref %d/%d, other %d/%d)",
			matchScore,
			breakdown.Requirements.Matched, breakdown.Requirements.Total,
			breakdown.Responsibilities.Matched, breakdown.Responsibilities.Total,
			breakdown.Preferred.Matched, breakdown.Preferred.Total,
			breakdown.Other.Matched, breakdown.Other.Total)
	}

	input := narrative.Input{
		ResumeText:      opts.ResumeText,
		JobText:         opts.JobText,
		MatchScore:      matchScore,
		Breakdown:       breakdown,
		CompensationFit: compFit,
	}

	n := generateNarrative(ctx, opts, input)
	if n == nil {
		n = narrative.Fallback(input)
	}

	return assemble(matchScore, breakdown, compFit, compNotes, n, opts.SkillWeight), nil
}

// assemble merges the deterministic scores with a narrative. The narrative
// never influences MatchScore, ScoreBreakdown or OverallScore; its
// CompensationFit is consulted only when the deterministic scorer had no
// ranges to work with and the value is a sane score.
func assemble(matchScore int, breakdown types.ScoreBreakdown, compFit *int, compNotes []string, n *narrative.Narrative, skillWeight float64) *types.AnalysisResult {
	result := &types.AnalysisResult{
		MatchScore:        matchScore,
		ScoreBreakdown:    breakdown,
		CompensationFit:   compFit,
		Summary:           n.Summary,
		GapAnalysis:       n.GapAnalysis,
		Improvements:      n.Improvements,
		KeywordMatches:    n.KeywordMatches,
		MissingKeywords:   n.MissingKeywords,
		BulletRewrites:    n.BulletRewrites,
		ATSNotes:          n.ATSNotes,
		CompensationNotes: compNotes,
	}

	if compFit == nil && n.CompensationFit != nil && *n.CompensationFit >= 0 && *n.CompensationFit <= 100 {
		result.CompensationFit = n.CompensationFit
		if len(n.CompensationNotes) > 0 {
			result.CompensationNotes = n.CompensationNotes
		}
	}

	result.OverallScore = scoring.ScoreOverall(&matchScore, result.CompensationFit, skillWeight)
	result.EnsureNarrativeArrays()

	return result
}

// generateNarrative runs the LLM path. A nil return means the caller should
// use the fallback; the reason is logged, not propagated.
func generateNarrative(ctx context.Context, opts Options, input narrative.Input) *narrative.Narrative {
	if opts.APIKey == "" {
		return nil
	}

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), opts.APIKey)
	if err != nil {
		log.Printf("LLM client unavailable, using fallback narrative: %v", err)
		return nil
	}
	defer func() { _ = client.Close() }()

	n, err := narrative.Generate(ctx, client, input)
	if err != nil {
		log.Printf("LLM narrative failed, using fallback: %v", err)
		return nil
	}

	if opts.Verbose {
		log.Printf("[VERBOSE] narrative generated by %s", client.GetModel(llm.TierStandard))
	}
	return n
}
