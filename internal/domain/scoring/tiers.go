package scoring

import (
	"fmt"

	"github.com/okian/matchforge/internal/domain/model"
)

// Tier bin boundaries. Bins are right-closed: (0,3] Poor, (3,5] Average,
// (5,7.5] Good, (7.5,10] Excellent. Zero itself falls in Poor so the
// lowest bin is closed on both ends.
const (
	poorUpper    = 3.0
	averageUpper = 5.0
	goodUpper    = 7.5
	tierCeiling  = 10.0
)

// ClassifyTier buckets a performance score into its efficiency tier.
// Scores below 0 or above 10 violate the synthesizer's contract and are
// rejected rather than clamped. The sub-1 range is unreachable given the
// normalization floor but is classified defensively.
func ClassifyTier(score float64) (model.Tier, error) {
	if score < 0 || score > tierCeiling {
		return model.TierPoor, fmt.Errorf("%w: %v not in [0,%v]", ErrScoreOutOfRange, score, tierCeiling)
	}

	switch {
	case score <= poorUpper:
		return model.TierPoor, nil
	case score <= averageUpper:
		return model.TierAverage, nil
	case score <= goodUpper:
		return model.TierGood, nil
	default:
		return model.TierExcellent, nil
	}
}
