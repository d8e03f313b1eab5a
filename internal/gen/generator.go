// Package gen produces the synthetic match-performance dataset. All
// sampling draws from one seeded source so a seed fully determines the
// generated rows.
package gen

import (
	"math/rand"

	"github.com/okian/matchforge/internal/config"
	"github.com/okian/matchforge/internal/domain/model"
)

// Sampling parameters for the generated columns.
const (
	matchIDMin = 100
	matchIDMax = 300 // exclusive

	minutesMin = 1
	minutesMax = 91 // exclusive

	goalsMean   = 0.4
	assistsMean = 0.2

	shotsMax         = 6 // exclusive
	tacklesMax       = 7 // exclusive
	interceptionsMax = 5 // exclusive

	passRateMin = 0.65
	passRateMax = 0.95
)

// positionWeights is the sampling distribution over model.Positions().
var positionWeights = []float64{0.25, 0.35, 0.30, 0.10}

// Generator samples MatchRecords from fixed per-column distributions.
type Generator struct {
	rows    int
	seed    int64
	players []string
	teams   []string
	rng     *rand.Rand
}

// New validates the configuration and builds a Generator. Invalid
// distribution parameters fail here, before any row is produced.
func New(opts ...Option) (*Generator, error) {
	g := &Generator{
		rows:    config.DefaultRows,
		seed:    config.DefaultSeed,
		players: model.PlayerIDs(config.DefaultPlayerPool),
		teams:   model.TeamNames(config.DefaultTeamPool),
	}
	for _, opt := range opts {
		opt(g)
	}

	if g.rows <= 0 {
		return nil, ErrInvalidRowCount
	}
	if len(g.players) == 0 || len(g.teams) == 0 {
		return nil, ErrEmptyPool
	}

	g.rng = rand.New(rand.NewSource(g.seed)) //nolint:gosec // deterministic seed is the contract, not a weakness
	return g, nil
}

// Generate produces the configured number of rows. Calling Generate on a
// fresh Generator with the same seed yields an identical dataset.
func (g *Generator) Generate() []model.MatchRecord {
	records := make([]model.MatchRecord, g.rows)
	for i := range records {
		records[i] = g.sampleRecord()
	}
	return records
}

// sampleRecord draws one row. The column order below fixes the consumption
// order of the random stream and must not be reordered.
func (g *Generator) sampleRecord() model.MatchRecord {
	return model.MatchRecord{
		MatchID:            matchIDMin + g.rng.Intn(matchIDMax-matchIDMin),
		PlayerID:           g.players[g.rng.Intn(len(g.players))],
		TeamName:           g.teams[g.rng.Intn(len(g.teams))],
		OpponentStrength:   g.sampleStrength(),
		Position:           g.samplePosition(),
		MinutesPlayed:      minutesMin + g.rng.Intn(minutesMax-minutesMin),
		Goals:              g.poisson(goalsMean),
		Assists:            g.poisson(assistsMean),
		ShotsOnTarget:      g.rng.Intn(shotsMax),
		PassCompletionRate: model.Round2(passRateMin + g.rng.Float64()*(passRateMax-passRateMin)),
		TacklesSucceeded:   g.rng.Intn(tacklesMax),
		Interceptions:      g.rng.Intn(interceptionsMax),
	}
}

func (g *Generator) sampleStrength() model.OpponentStrength {
	strengths := model.Strengths()
	return strengths[g.rng.Intn(len(strengths))]
}

// samplePosition draws a position under positionWeights by walking the
// cumulative distribution.
func (g *Generator) samplePosition() model.Position {
	positions := model.Positions()
	u := g.rng.Float64()
	cum := 0.0
	for i, w := range positionWeights {
		cum += w
		if u < cum {
			return positions[i]
		}
	}
	// Floating-point slack can leave u just above the final cumulative sum.
	return positions[len(positions)-1]
}
