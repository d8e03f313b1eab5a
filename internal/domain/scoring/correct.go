package scoring

import "github.com/okian/matchforge/internal/domain/model"

// ZeroGoalkeeperStats zeroes the offense/defense stats of every goalkeeper
// row in place, leaving all other fields untouched. It returns the number
// of rows corrected.
func ZeroGoalkeeperStats(records []model.MatchRecord) int {
	corrected := 0
	for i := range records {
		if records[i].Position != model.PositionGoalkeeper {
			continue
		}
		records[i].Goals = 0
		records[i].Assists = 0
		records[i].ShotsOnTarget = 0
		records[i].TacklesSucceeded = 0
		records[i].Interceptions = 0
		corrected++
	}
	return corrected
}
