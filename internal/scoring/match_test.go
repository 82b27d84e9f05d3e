package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreMatch_IdenticalContentScores100(t *testing.T) {
	jd := `Requirements:
Golang Kubernetes Terraform

Responsibilities:
Build deploy operate platform services`
	resume := "Golang Kubernetes Terraform Build deploy operate platform services"

	score, breakdown := ScoreMatch(resume, jd)

	assert.Equal(t, 100, score)
	assert.InDelta(t, 1.0, breakdown.Requirements.Ratio, 0.001)
	assert.InDelta(t, 1.0, breakdown.Responsibilities.Ratio, 0.001)
}

func TestScoreMatch_DisjointContentScoresZero(t *testing.T) {
	score, _ := ScoreMatch("haskell erlang elixir", "Requirements:\npython sql aws")

	assert.Equal(t, 0, score)
}

func TestScoreMatch_SoleActiveSectionTakesFullWeight(t *testing.T) {
	// Requirements is the only active section: its 0.6 base weight
	// renormalizes to 1.0 and 2/3 coverage rounds to 67.
	score, breakdown := ScoreMatch("python sql", "Requirements:\npython sql aws")

	assert.Equal(t, 67, score)
	assert.Equal(t, 2, breakdown.Requirements.Matched)
	assert.Equal(t, 3, breakdown.Requirements.Total)
	assert.InDelta(t, 1.0, breakdown.Requirements.Weight, 0.001)
	assert.Equal(t, 0, breakdown.Responsibilities.Total)
	assert.Equal(t, 0.0, breakdown.Responsibilities.Weight)
}

func TestScoreMatch_RenormalizesActiveWeights(t *testing.T) {
	jd := `Requirements:
golang postgres

Nice to have:
rust`

	score, breakdown := ScoreMatch("golang rust", jd)

	// Active bases 0.6 and 0.15 renormalize to 0.8 and 0.2.
	assert.InDelta(t, 0.8, breakdown.Requirements.Weight, 0.001)
	assert.InDelta(t, 0.2, breakdown.Preferred.Weight, 0.001)
	assert.Equal(t, 60, score)
}

func TestScoreMatch_ActiveWeightsSumToOne(t *testing.T) {
	jd := `Overview of the position.

Requirements:
golang

Responsibilities:
ship features

Nice to have:
rust`

	_, breakdown := ScoreMatch("golang", jd)

	sum := 0.0
	for _, part := range []float64{
		breakdown.Requirements.Weight,
		breakdown.Responsibilities.Weight,
		breakdown.Preferred.Weight,
		breakdown.Other.Weight,
	} {
		sum += part
	}
	assert.InDelta(t, 1.0, sum, 0.001)
}

func TestScoreMatch_NoActiveSectionsFallsBackToWholeBlock(t *testing.T) {
	// Filler-only JD: every section is inactive, so the raw text is scored
	// as a single block carried by the catch-all part.
	score, breakdown := ScoreMatch("python", "we are a team you will join")

	assert.Equal(t, 0, score)
	assert.InDelta(t, 1.0, breakdown.Other.Weight, 0.001)
	assert.Equal(t, 0, breakdown.Other.Total)
	assert.Equal(t, 0, breakdown.Requirements.Total)
	assert.Equal(t, 0.0, breakdown.Requirements.Weight)
}

func TestScoreMatch_EmptyJD(t *testing.T) {
	score, breakdown := ScoreMatch("python sql", "")

	assert.Equal(t, 0, score)
	assert.InDelta(t, 1.0, breakdown.Other.Weight, 0.001)
}

func TestScoreMatch_EmptyResume(t *testing.T) {
	score, breakdown := ScoreMatch("", "Requirements:\npython sql")

	assert.Equal(t, 0, score)
	assert.Equal(t, 2, breakdown.Requirements.Total)
	assert.Equal(t, 0, breakdown.Requirements.Matched)
}

func TestScoreMatch_RequirementsDominateMixedCoverage(t *testing.T) {
	jd := `Requirements:
python sql

Responsibilities:
dashboards reporting`

	// Full requirements coverage, zero responsibilities coverage:
	// 100×(1.0×(0.6/0.85)) ≈ 71.
	score, _ := ScoreMatch("python sql", jd)

	assert.Equal(t, 71, score)
}
