// Command matchforge synthesizes the soccer match-performance dataset and
// writes it to a two-sheet xlsx workbook. It takes no flags and reads no
// environment: every knob is fixed at build time.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/okian/matchforge/internal/app"
	"github.com/okian/matchforge/internal/config"
	"github.com/okian/matchforge/internal/export"
	"github.com/okian/matchforge/pkg/logger"
	"github.com/okian/matchforge/pkg/metrics"
)

func main() {
	os.Exit(run())
}

func run() int {
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return 1
	}

	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Get().Error(ctx, "failed to load config", logger.Error(err))
		return 1
	}
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		logger.Get().Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel))
		_ = logger.SetLevelString("info")
	}

	runID := uuid.NewString()
	log := logger.Get()
	log.Info(ctx, "starting dataset synthesis",
		logger.String("run_id", runID),
		logger.Int("rows", cfg.Rows),
		logger.Int64("seed", cfg.Seed),
		logger.String("output", cfg.OutputPath))

	pipeline := app.New(
		app.WithRows(cfg.Rows),
		app.WithSeed(cfg.Seed),
		app.WithPoolSizes(cfg.PlayerPoolSize, cfg.TeamPoolSize),
		app.WithOutputPath(cfg.OutputPath),
		app.WithLogger(log),
	)

	res, err := pipeline.Run(ctx)
	if err != nil {
		log.Error(ctx, "pipeline failed", logger.String("run_id", runID), logger.Error(err))
		return 1
	}

	if snap, serr := metrics.Default().Snapshot(); serr != nil {
		log.Warn(ctx, "failed to snapshot metrics", logger.String("run_id", runID), logger.Error(serr))
	} else {
		log.Info(ctx, "pipeline metrics snapshot", logger.String("run_id", runID), logger.Any("metrics", snap))
	}

	fmt.Printf("Success! Two sheets of prepared data saved to %q\n\n", res.OutputPath)
	fmt.Println("Sheets created:")
	fmt.Printf("1. %s: %d rows (Raw Match-Level Data)\n", export.FactSheet, res.FactRows)
	fmt.Printf("2. %s: %d rows (Aggregated Player Data)\n", export.SummarySheet, res.SummaryRows)
	return 0
}
