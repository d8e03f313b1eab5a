// Package scoring derives the composite performance score and efficiency
// tier from raw match stats.
package scoring

import (
	"math"

	"github.com/okian/matchforge/internal/domain/model"
)

// Weights for the composite raw score.
const (
	goalWeight         = 4.0
	assistWeight       = 2.0
	shotWeight         = 0.5
	tackleWeight       = 1.0
	interceptionWeight = 0.5
	passRateWeight     = 5.0
)

// Bounds of the normalized score range.
const (
	scoreFloor = 1.0
	scoreSpan  = 9.0

	// degenerateScore is assigned to every row when all raw scores are
	// equal and min-max normalization would divide by zero.
	degenerateScore = 5.5
)

// RawScore computes the weighted combination of offensive and defensive
// stats for one record. The raw value is an intermediate; it is never
// exported.
func RawScore(r model.MatchRecord) float64 {
	offensive := float64(r.Goals)*goalWeight + float64(r.Assists)*assistWeight + float64(r.ShotsOnTarget)*shotWeight
	defensive := float64(r.TacklesSucceeded)*tackleWeight + float64(r.Interceptions)*interceptionWeight
	return offensive + defensive + r.PassCompletionRate*passRateWeight
}

// Synthesize computes PerformanceScore for every record by min-max
// normalizing the raw scores into [1,10], rounded to 2 decimals. When all
// raw scores are identical the normalization is degenerate and every row
// gets the midpoint instead; the returned bool reports that fallback.
func Synthesize(records []model.MatchRecord) (bool, error) {
	if len(records) == 0 {
		return false, ErrEmptyDataset
	}

	raws := make([]float64, len(records))
	minRaw, maxRaw := math.Inf(1), math.Inf(-1)
	for i := range records {
		raws[i] = RawScore(records[i])
		minRaw = math.Min(minRaw, raws[i])
		maxRaw = math.Max(maxRaw, raws[i])
	}

	if minRaw == maxRaw {
		for i := range records {
			records[i].PerformanceScore = degenerateScore
		}
		return true, nil
	}

	span := maxRaw - minRaw
	for i := range records {
		records[i].PerformanceScore = model.Round2(scoreFloor + scoreSpan*(raws[i]-minRaw)/span)
	}
	return false, nil
}

// ApplyTiers classifies every record's score into its efficiency tier.
// A score outside the classifier's domain aborts the pass.
func ApplyTiers(records []model.MatchRecord) error {
	for i := range records {
		tier, err := ClassifyTier(records[i].PerformanceScore)
		if err != nil {
			return err
		}
		records[i].EfficiencyTier = tier
	}
	return nil
}
