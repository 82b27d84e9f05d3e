package scoring

// DefaultSkillWeight is the share of the overall score carried by the match
// score when compensation fit is also available.
const DefaultSkillWeight = 0.8

// ResolveSkillWeight validates a configured skill weight. Only values
// strictly between 0 and 1 are usable; anything else silently falls back to
// the default rather than failing the request.
func ResolveSkillWeight(w float64) float64 {
	if w > 0 && w < 1 {
		return w
	}
	return DefaultSkillWeight
}

// ScoreOverall blends the match score and compensation fit into one 0-100
// number. Without a match score nothing can be computed; without a
// compensation fit the match score passes through unchanged, so candidates
// who never stated a range are not penalized.
func ScoreOverall(matchScore, compensationFit *int, skillWeight float64) *int {
	if matchScore == nil {
		return nil
	}
	if compensationFit == nil {
		v := *matchScore
		return &v
	}

	w := ResolveSkillWeight(skillWeight)
	overall := clampScore(round(float64(*matchScore)*w + float64(*compensationFit)*(1-w)))
	return &overall
}
