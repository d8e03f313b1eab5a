// Package app wires the pipeline stages together: generate, correct,
// score, classify, aggregate, export.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/okian/matchforge/internal/aggregate"
	"github.com/okian/matchforge/internal/config"
	"github.com/okian/matchforge/internal/domain/model"
	"github.com/okian/matchforge/internal/domain/scoring"
	"github.com/okian/matchforge/internal/export"
	"github.com/okian/matchforge/internal/gen"
	"github.com/okian/matchforge/pkg/logger"
	"github.com/okian/matchforge/pkg/metrics"
)

// Pipeline runs the dataset synthesis end to end. It is single-threaded
// and single-pass; records flow strictly forward between stages.
type Pipeline struct {
	rows       int
	seed       int64
	playerPool int
	teamPool   int
	outputPath string

	logger  logger.Logger
	metrics *metrics.Manager
}

// Result reports what a run produced.
type Result struct {
	FactRows    int
	SummaryRows int
	OutputPath  string
}

// New constructs a Pipeline with default configuration.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		rows:       config.DefaultRows,
		seed:       config.DefaultSeed,
		playerPool: config.DefaultPlayerPool,
		teamPool:   config.DefaultTeamPool,
		outputPath: config.DefaultOutputPath,
		metrics:    metrics.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run executes every stage in order and writes the workbook. Any stage
// error aborts the run; nothing is written on failure.
func (p *Pipeline) Run(ctx context.Context) (Result, error) {
	records, err := p.generate(ctx)
	if err != nil {
		return Result{}, err
	}

	p.correct(ctx, records)

	if err := p.score(ctx, records); err != nil {
		return Result{}, err
	}

	summary := p.aggregateStage(ctx, records)

	if err := p.exportStage(ctx, records, summary); err != nil {
		return Result{}, err
	}

	p.metrics.SetExportedRows(len(records), len(summary))
	return Result{
		FactRows:    len(records),
		SummaryRows: len(summary),
		OutputPath:  p.outputPath,
	}, nil
}

func (p *Pipeline) generate(ctx context.Context) ([]model.MatchRecord, error) {
	start := time.Now()
	g, err := gen.New(
		gen.WithRows(p.rows),
		gen.WithSeed(p.seed),
		gen.WithPlayerPool(model.PlayerIDs(p.playerPool)),
		gen.WithTeamPool(model.TeamNames(p.teamPool)),
	)
	if err != nil {
		return nil, fmt.Errorf("configure generator: %w", err)
	}

	records := g.Generate()
	p.metrics.AddRowsGenerated(len(records))
	p.metrics.ObserveStageDuration("generate", time.Since(start))
	p.log().Info(ctx, "generated match records",
		logger.Int("rows", len(records)),
		logger.Int64("seed", p.seed))
	return records, nil
}

func (p *Pipeline) correct(ctx context.Context, records []model.MatchRecord) {
	start := time.Now()
	zeroed := scoring.ZeroGoalkeeperStats(records)
	p.metrics.AddGoalkeeperZeroed(zeroed)
	p.metrics.ObserveStageDuration("correct", time.Since(start))
	p.log().Info(ctx, "zeroed goalkeeper outfield stats", logger.Int("rows", zeroed))
}

func (p *Pipeline) score(ctx context.Context, records []model.MatchRecord) error {
	start := time.Now()
	degenerate, err := scoring.Synthesize(records)
	if err != nil {
		return fmt.Errorf("synthesize scores: %w", err)
	}
	if degenerate {
		p.metrics.IncDegenerateFallback()
		p.log().Warn(ctx, "all raw scores identical; assigned midpoint to every row")
	}
	if err := scoring.ApplyTiers(records); err != nil {
		return fmt.Errorf("classify tiers: %w", err)
	}
	p.metrics.ObserveStageDuration("score", time.Since(start))
	p.log().Info(ctx, "derived performance scores and tiers", logger.Int("rows", len(records)))
	return nil
}

func (p *Pipeline) aggregateStage(ctx context.Context, records []model.MatchRecord) []model.PlayerSummaryRow {
	start := time.Now()
	summary := aggregate.PlayerSummaries(records)
	p.metrics.ObserveStageDuration("aggregate", time.Since(start))
	p.log().Info(ctx, "aggregated player summaries", logger.Int("players", len(summary)))
	return summary
}

func (p *Pipeline) exportStage(ctx context.Context, records []model.MatchRecord, summary []model.PlayerSummaryRow) error {
	start := time.Now()
	if err := export.Workbook(p.outputPath, records, summary); err != nil {
		return err
	}
	p.metrics.ObserveStageDuration("export", time.Since(start))
	p.log().Info(ctx, "exported workbook",
		logger.String("path", p.outputPath),
		logger.Int("fact_rows", len(records)),
		logger.Int("summary_rows", len(summary)))
	return nil
}

func (p *Pipeline) log() logger.Logger {
	if p.logger != nil {
		return p.logger
	}
	return logger.Get()
}
