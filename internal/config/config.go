// Package config defines the pipeline configuration.
//
// There are no flags, environment variables, or config files: every knob
// is fixed at build time. The struct exists so stages receive explicit
// values instead of reaching for package-level constants, and so tests can
// run the pipeline with small datasets.
package config

import "fmt"

// Build-time defaults, matching the published dataset shape. This is the
// single definition; the generator and pipeline pick these up rather than
// redeclaring them.
const (
	DefaultRows       = 1000
	DefaultPlayerPool = 50
	DefaultTeamPool   = 10
	DefaultSeed       = int64(42)
	DefaultOutputPath = "Soccer_Analytics_Report_Data.xlsx"
	DefaultLogLevel   = "info"

	// maxTeamPool bounds the team pool to single-letter suffixes.
	maxTeamPool = 26
)

// Config contains the pipeline configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Rows is the number of match records to synthesize.
	Rows int `koanf:"rows"`

	// PlayerPoolSize and TeamPoolSize size the fixed identifier pools.
	PlayerPoolSize int `koanf:"player_pool_size"`
	TeamPoolSize   int `koanf:"team_pool_size"`

	// Seed feeds the shared random source; a seed fully determines the
	// generated dataset.
	Seed int64 `koanf:"seed"`

	// OutputPath is where the workbook is written.
	OutputPath string `koanf:"output_path"`
}

// New creates a Config carrying the build-time defaults.
func New() *Config {
	return &Config{
		LogLevel:       DefaultLogLevel,
		Rows:           DefaultRows,
		PlayerPoolSize: DefaultPlayerPool,
		TeamPoolSize:   DefaultTeamPool,
		Seed:           DefaultSeed,
		OutputPath:     DefaultOutputPath,
	}
}

// Validate rejects parameter combinations the generator cannot honor.
func (c *Config) Validate() error {
	if c.Rows <= 0 {
		return fmt.Errorf("%w: rows must be positive, got %d", ErrInvalidConfig, c.Rows)
	}
	if c.PlayerPoolSize <= 0 {
		return fmt.Errorf("%w: player pool must be positive, got %d", ErrInvalidConfig, c.PlayerPoolSize)
	}
	if c.TeamPoolSize <= 0 || c.TeamPoolSize > maxTeamPool {
		return fmt.Errorf("%w: team pool must be in [1,%d], got %d", ErrInvalidConfig, maxTeamPool, c.TeamPoolSize)
	}
	if c.OutputPath == "" {
		return fmt.Errorf("%w: output path must not be empty", ErrInvalidConfig)
	}
	return nil
}
