package analysis

import (
	"context"
	"testing"

	"github.com/jonathan/resume-matcher/internal/narrative"
	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testResume = "Senior golang engineer building kubernetes services with postgresql."
	testJob    = "Requirements:\ngolang kubernetes postgresql terraform"
)

func intPtr(v int) *int { return &v }

func TestRun_DeterministicOnly(t *testing.T) {
	result, err := Run(context.Background(), Options{
		ResumeText: testResume,
		JobText:    testJob,
	})
	require.NoError(t, err)
	require.NotNil(t, result)

	// Requirements is the only active section: 3 of 4 terms matched.
	assert.Equal(t, 75, result.MatchScore)
	assert.Equal(t, 3, result.ScoreBreakdown.Requirements.Matched)
	assert.Equal(t, 4, result.ScoreBreakdown.Requirements.Total)

	assert.Nil(t, result.CompensationFit)
	require.NotNil(t, result.OverallScore)
	assert.Equal(t, 75, *result.OverallScore)

	// Both ranges were absent, so both explanatory notes fire.
	assert.Len(t, result.CompensationNotes, 2)

	// Fallback narrative fills the qualitative fields without an API key.
	assert.NotEmpty(t, result.Summary)
	assert.Contains(t, result.KeywordMatches, "golang")
	assert.Contains(t, result.MissingKeywords, "terraform")
	require.NotNil(t, result.BulletRewrites)
	assert.Empty(t, result.BulletRewrites)
}

func TestRun_WithSalaryRanges(t *testing.T) {
	result, err := Run(context.Background(), Options{
		ResumeText:      testResume,
		JobText:         testJob,
		CandidateSalary: &types.SalaryRange{Min: 80000, Max: 110000},
		RoleSalary:      &types.SalaryRange{Min: 90000, Max: 120000},
	})
	require.NoError(t, err)

	require.NotNil(t, result.CompensationFit)
	assert.Equal(t, 67, *result.CompensationFit)

	// round(75*0.8 + 67*0.2) with the default skill weight.
	require.NotNil(t, result.OverallScore)
	assert.Equal(t, 73, *result.OverallScore)
}

func TestRun_CustomSkillWeight(t *testing.T) {
	result, err := Run(context.Background(), Options{
		ResumeText:      testResume,
		JobText:         testJob,
		CandidateSalary: &types.SalaryRange{Min: 80000, Max: 110000},
		RoleSalary:      &types.SalaryRange{Min: 90000, Max: 120000},
		SkillWeight:     0.5,
	})
	require.NoError(t, err)

	// round(75*0.5 + 67*0.5)
	require.NotNil(t, result.OverallScore)
	assert.Equal(t, 71, *result.OverallScore)
}

func TestRun_InvalidSkillWeightUsesDefault(t *testing.T) {
	result, err := Run(context.Background(), Options{
		ResumeText:      testResume,
		JobText:         testJob,
		CandidateSalary: &types.SalaryRange{Min: 80000, Max: 110000},
		RoleSalary:      &types.SalaryRange{Min: 90000, Max: 120000},
		SkillWeight:     1.5,
	})
	require.NoError(t, err)

	require.NotNil(t, result.OverallScore)
	assert.Equal(t, 73, *result.OverallScore)
}

func TestRun_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := Run(ctx, Options{ResumeText: testResume, JobText: testJob})
	require.Error(t, err)
	assert.Nil(t, result)
}

func TestAssemble_AdoptsLLMCompensationWhenUnassessed(t *testing.T) {
	n := &narrative.Narrative{
		Summary:           "ok",
		CompensationFit:   intPtr(85),
		CompensationNotes: []string{"Posted range matches stated expectations."},
	}

	result := assemble(70, types.ScoreBreakdown{}, nil, []string{"Role salary range not provided; compensation fit not assessed."}, n, 0)

	require.NotNil(t, result.CompensationFit)
	assert.Equal(t, 85, *result.CompensationFit)
	assert.Equal(t, []string{"Posted range matches stated expectations."}, result.CompensationNotes)

	// round(70*0.8 + 85*0.2)
	require.NotNil(t, result.OverallScore)
	assert.Equal(t, 73, *result.OverallScore)
}

func TestAssemble_DeterministicCompensationWins(t *testing.T) {
	detNotes := []string{"Expected salary overlaps the role's range by 20000."}
	n := &narrative.Narrative{
		Summary:           "ok",
		CompensationFit:   intPtr(10),
		CompensationNotes: []string{"LLM thinks otherwise."},
	}

	result := assemble(70, types.ScoreBreakdown{}, intPtr(67), detNotes, n, 0)

	require.NotNil(t, result.CompensationFit)
	assert.Equal(t, 67, *result.CompensationFit)
	assert.Equal(t, detNotes, result.CompensationNotes)
}

func TestAssemble_RejectsOutOfRangeLLMCompensation(t *testing.T) {
	n := &narrative.Narrative{Summary: "ok", CompensationFit: intPtr(150)}

	result := assemble(70, types.ScoreBreakdown{}, nil, nil, n, 0)

	assert.Nil(t, result.CompensationFit)
	require.NotNil(t, result.OverallScore)
	assert.Equal(t, 70, *result.OverallScore)
}

func TestAssemble_LLMCompWithoutNotesKeepsDeterministicNotes(t *testing.T) {
	detNotes := []string{"Candidate salary expectations not provided; compensation fit not assessed."}
	n := &narrative.Narrative{Summary: "ok", CompensationFit: intPtr(50)}

	result := assemble(70, types.ScoreBreakdown{}, nil, detNotes, n, 0)

	require.NotNil(t, result.CompensationFit)
	assert.Equal(t, 50, *result.CompensationFit)
	assert.Equal(t, detNotes, result.CompensationNotes)
}

func TestAssemble_EnsuresNarrativeArrays(t *testing.T) {
	result := assemble(0, types.ScoreBreakdown{}, nil, nil, &narrative.Narrative{}, 0)

	assert.NotNil(t, result.GapAnalysis)
	assert.NotNil(t, result.Improvements)
	assert.NotNil(t, result.KeywordMatches)
	assert.NotNil(t, result.MissingKeywords)
	assert.NotNil(t, result.BulletRewrites)
	assert.NotNil(t, result.ATSNotes)
	assert.NotNil(t, result.CompensationNotes)
}
