// Package model contains the dataset rows and categorical types passed
// between pipeline stages.
package model

import (
	"fmt"
	"math"
)

// Round2 rounds to 2 decimals, the precision every real-valued column of
// the dataset carries.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Position is the role a player occupied during a match.
type Position string

// Valid positions.
const (
	PositionForward    Position = "Forward"
	PositionMidfielder Position = "Midfielder"
	PositionDefender   Position = "Defender"
	PositionGoalkeeper Position = "Goalkeeper"
)

// Positions returns the position categories in sampling order.
func Positions() []Position {
	return []Position{PositionForward, PositionMidfielder, PositionDefender, PositionGoalkeeper}
}

// OpponentStrength is the categorical strength of the opposing team.
type OpponentStrength string

// Valid opponent strengths.
const (
	StrengthStrong  OpponentStrength = "Strong"
	StrengthAverage OpponentStrength = "Average"
	StrengthWeak    OpponentStrength = "Weak"
)

// Strengths returns the opponent-strength categories in sampling order.
func Strengths() []OpponentStrength {
	return []OpponentStrength{StrengthStrong, StrengthAverage, StrengthWeak}
}

// Tier is an ordered efficiency bucket derived from the performance score.
// The zero value is the lowest tier; comparison with < and > follows the
// bucket order Poor < Average < Good < Excellent.
type Tier int

// Tiers from worst to best.
const (
	TierPoor Tier = iota
	TierAverage
	TierGood
	TierExcellent
)

// String returns the tier label used in the exported workbook.
func (t Tier) String() string {
	switch t {
	case TierPoor:
		return "Poor"
	case TierAverage:
		return "Average"
	case TierGood:
		return "Good"
	case TierExcellent:
		return "Excellent"
	default:
		return fmt.Sprintf("Tier(%d)", int(t))
	}
}

// MatchRecord is one player's stats in one match. Records are created by
// the generator, mutated in place by the corrector and the score/tier
// derivation stages, and treated as immutable once exported.
type MatchRecord struct {
	MatchID            int
	PlayerID           string
	TeamName           string
	OpponentStrength   OpponentStrength
	Position           Position
	MinutesPlayed      int
	Goals              int
	Assists            int
	ShotsOnTarget      int
	PassCompletionRate float64
	TacklesSucceeded   int
	Interceptions      int
	PerformanceScore   float64
	EfficiencyTier     Tier
}

// PlayerSummaryRow is the per-player aggregate: the mean performance score
// against each opponent strength, 0 where the player never faced one.
type PlayerSummaryRow struct {
	PlayerID          string
	AvgScoreVsAverage float64
	AvgScoreVsStrong  float64
	AvgScoreVsWeak    float64
}

// PlayerIDs builds the fixed player pool P001..Pnnn.
func PlayerIDs(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("P%03d", i+1)
	}
	return ids
}

// TeamNames builds the fixed team pool "Team A".."Team Z". Pools larger
// than the alphabet are a configuration error caught upstream.
func TeamNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("Team %c", rune('A'+i))
	}
	return names
}
