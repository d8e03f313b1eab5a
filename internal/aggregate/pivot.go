// Package aggregate folds match records into per-player summary rows.
package aggregate

import (
	"sort"

	"github.com/okian/matchforge/internal/domain/model"
)

// groupKey identifies one (player, opponent strength) cell of the pivot.
type groupKey struct {
	player   string
	strength model.OpponentStrength
}

// meanAcc accumulates a running mean for one group.
type meanAcc struct {
	sum   float64
	count int
}

// PlayerSummaries groups records by (player, opponent strength), averages
// the performance score per group, and pivots the strengths into columns
// so each player occupies exactly one row. Combinations a player never
// faced are filled with 0, not dropped. Rows come back sorted by player
// id; means are rounded to 2 decimals.
func PlayerSummaries(records []model.MatchRecord) []model.PlayerSummaryRow {
	groups := make(map[groupKey]*meanAcc)
	players := make(map[string]struct{})
	for i := range records {
		k := groupKey{player: records[i].PlayerID, strength: records[i].OpponentStrength}
		acc, ok := groups[k]
		if !ok {
			acc = &meanAcc{}
			groups[k] = acc
		}
		acc.sum += records[i].PerformanceScore
		acc.count++
		players[records[i].PlayerID] = struct{}{}
	}

	ids := make([]string, 0, len(players))
	for id := range players {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	rows := make([]model.PlayerSummaryRow, len(ids))
	for i, id := range ids {
		rows[i] = model.PlayerSummaryRow{
			PlayerID:          id,
			AvgScoreVsAverage: groupMean(groups, id, model.StrengthAverage),
			AvgScoreVsStrong:  groupMean(groups, id, model.StrengthStrong),
			AvgScoreVsWeak:    groupMean(groups, id, model.StrengthWeak),
		}
	}
	return rows
}

// groupMean returns the rounded mean for one pivot cell, or 0 when the
// group is absent.
func groupMean(groups map[groupKey]*meanAcc, player string, strength model.OpponentStrength) float64 {
	acc, ok := groups[groupKey{player: player, strength: strength}]
	if !ok {
		return 0.0
	}
	return model.Round2(acc.sum / float64(acc.count))
}
