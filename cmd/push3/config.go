package main

import (
	"github.com/BurntSushi/toml"
	"github.com/pushlang/push3"
)

// fileConfig mirrors push.Config's fields for TOML decoding (SPEC_FULL.md
// §2.3): an optional --config flag names a file overriding any subset of
// push.DefaultConfig(). Fields left out of the file keep their default
// value, since loadConfig starts from push.DefaultConfig() and decodes
// on top of it.
type fileConfig struct {
	MaxPointsInProgram          int     `toml:"max_points_in_program"`
	MaxPointsInRandomExpression int     `toml:"max_points_in_random_expression"`
	MaxExecDepth                int     `toml:"max_exec_depth"`
	MinRandomInt                int64   `toml:"min_random_int"`
	MaxRandomInt                int64   `toml:"max_random_int"`
	MeanRandomFloat             float64 `toml:"mean_random_float"`
	StdRandomFloat              float64 `toml:"std_random_float"`
	NewERCNameProbability       float64 `toml:"new_erc_name_probability"`
	QueueCapacity               int     `toml:"queue_capacity"`
}

// loadConfig returns push.DefaultConfig() unchanged if path is empty,
// otherwise decodes path over it.
func loadConfig(path string) (push.Config, error) {
	cfg := push.DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	fc := fileConfig{
		MaxPointsInProgram:          cfg.MaxPointsInProgram,
		MaxPointsInRandomExpression: cfg.MaxPointsInRandomExpression,
		MaxExecDepth:                cfg.MaxExecDepth,
		MinRandomInt:                cfg.MinRandomInt,
		MaxRandomInt:                cfg.MaxRandomInt,
		MeanRandomFloat:             cfg.MeanRandomFloat,
		StdRandomFloat:              cfg.StdRandomFloat,
		NewERCNameProbability:       cfg.NewERCNameProbability,
		QueueCapacity:               cfg.QueueCapacity,
	}
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return push.Config{}, err
	}
	return push.Config{
		MaxPointsInProgram:          fc.MaxPointsInProgram,
		MaxPointsInRandomExpression: fc.MaxPointsInRandomExpression,
		MaxExecDepth:                fc.MaxExecDepth,
		MinRandomInt:                fc.MinRandomInt,
		MaxRandomInt:                fc.MaxRandomInt,
		MeanRandomFloat:             fc.MeanRandomFloat,
		StdRandomFloat:              fc.StdRandomFloat,
		NewERCNameProbability:       fc.NewERCNameProbability,
		QueueCapacity:               fc.QueueCapacity,
	}, nil
}
