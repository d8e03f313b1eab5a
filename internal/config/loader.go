package config

import (
	"context"
	"fmt"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/v2"
)

// Load materializes the build-time configuration through koanf and
// validates it. The only provider is the in-process defaults map; the
// pipeline deliberately reads no flags, environment, or files.
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"log_level":        base.LogLevel,
		"rows":             base.Rows,
		"player_pool_size": base.PlayerPoolSize,
		"team_pool_size":   base.TeamPoolSize,
		"seed":             base.Seed,
		"output_path":      base.OutputPath,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	cfg := &Config{}
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
