package app

import (
	"github.com/okian/matchforge/pkg/logger"
	"github.com/okian/matchforge/pkg/metrics"
)

// Option applies a configuration option to the Pipeline.
type Option func(*Pipeline)

// WithRows sets the number of match records to synthesize.
func WithRows(rows int) Option {
	return func(p *Pipeline) {
		if rows > 0 {
			p.rows = rows
		}
	}
}

// WithSeed sets the seed for the shared random source.
func WithSeed(seed int64) Option {
	return func(p *Pipeline) {
		p.seed = seed
	}
}

// WithPoolSizes sets the player-id and team-name pool sizes.
func WithPoolSizes(players, teams int) Option {
	return func(p *Pipeline) {
		if players > 0 {
			p.playerPool = players
		}
		if teams > 0 {
			p.teamPool = teams
		}
	}
}

// WithOutputPath sets where the workbook is written.
func WithOutputPath(path string) Option {
	return func(p *Pipeline) {
		if path != "" {
			p.outputPath = path
		}
	}
}

// WithLogger sets a custom logger for the pipeline.
func WithLogger(l logger.Logger) Option {
	return func(p *Pipeline) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithMetrics sets a custom metrics manager for the pipeline.
func WithMetrics(m *metrics.Manager) Option {
	return func(p *Pipeline) {
		if m != nil {
			p.metrics = m
		}
	}
}
