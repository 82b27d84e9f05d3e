package scoring

import (
	"fmt"

	"github.com/jonathan/resume-matcher/internal/types"
)

// ScoreCompensation rates how well a candidate's expected salary range fits a
// role's stated range, 0-100. A nil score means compensation was not assessed
// because one side never stated a range.
//
// Overlapping ranges score by how much of the role's span the overlap covers;
// disjoint ranges score by how far apart they are, measured in role spans.
// The notes are independent observations, so "no overlap" and "above range"
// can both appear.
func ScoreCompensation(candidate, role *types.SalaryRange) (*int, []string) {
	if candidate == nil || role == nil {
		var notes []string
		if candidate == nil {
			notes = append(notes, "Candidate salary expectations not provided; compensation fit not assessed.")
		}
		if role == nil {
			notes = append(notes, "Role salary range not provided; compensation fit not assessed.")
		}
		return nil, notes
	}

	span := role.Max - role.Min
	if span < 1 {
		span = 1
	}

	overlap := min(candidate.Max, role.Max) - max(candidate.Min, role.Min)
	if overlap < 0 {
		overlap = 0
	}

	var score int
	var notes []string
	if overlap > 0 {
		score = round(100 * float64(overlap) / float64(span))
		notes = append(notes, fmt.Sprintf("Expected salary overlaps the role's range by %d.", overlap))
	} else {
		gap := 0
		if candidate.Min > role.Max {
			gap = candidate.Min - role.Max
		} else {
			gap = role.Min - candidate.Max
		}
		score = round(100 - 100*float64(gap)/float64(span))
		if score < 0 {
			score = 0
		}
		notes = append(notes, "Expected salary does not overlap the role's range.")
	}

	if candidate.Min > role.Max {
		notes = append(notes, "Candidate expectations sit entirely above the role's range.")
	}
	if candidate.Max < role.Min {
		notes = append(notes, "Candidate expectations sit entirely below the role's range.")
	}

	score = clampScore(score)
	return &score, notes
}
