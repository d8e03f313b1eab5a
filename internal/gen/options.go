package gen

// Option applies a configuration option to the Generator.
type Option func(*Generator)

// WithRows sets the number of rows to generate.
func WithRows(rows int) Option {
	return func(g *Generator) {
		g.rows = rows
	}
}

// WithSeed sets the seed for the shared random source.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// WithPlayerPool sets the player-id pool to sample from.
func WithPlayerPool(players []string) Option {
	return func(g *Generator) {
		g.players = players
	}
}

// WithTeamPool sets the team-name pool to sample from.
func WithTeamPool(teams []string) Option {
	return func(g *Generator) {
		g.teams = teams
	}
}
