// Package config holds cmd/kdbench's configuration surface. The
// indexing engine itself (pkg/container/kdtree and its façades) takes
// no configuration beyond constructor arguments — this package exists
// only for the benchmark/demo CLI, mirroring the teacher's
// envconfig.Process convention (internal/setup/setup.go) for its own,
// much smaller, surface.
package config

import (
	"context"

	"github.com/sethvargo/go-envconfig"
)

// BenchConfig drives cmd/kdbench when no scenario/dataset file is
// given: build a tree of the given dimension from randomly generated
// points and run the query family against it.
type BenchConfig struct {
	PointCount int    `env:"KDBENCH_POINTS,default=10000"`
	Dimension  int    `env:"KDBENCH_DIM,default=3"`
	Seed       uint64 `env:"KDBENCH_SEED,default=1"`
	// Policy selects the relaxed tree's balancing discipline: "loose"
	// (default), "tight", or "strict" to use StrictTree instead.
	Policy string `env:"KDBENCH_POLICY,default=loose"`
	// Scenario, if set, names a TOML file (see scenario.go) that
	// overrides PointCount/Dimension/Policy above.
	Scenario string `env:"KDBENCH_SCENARIO"`
	// Dataset, if set, names a YAML file of literal points (see
	// dataset.go) that overrides random generation entirely.
	Dataset string `env:"KDBENCH_DATASET"`
}

// Load reads BenchConfig from the process environment.
func Load(ctx context.Context) (BenchConfig, error) {
	var cfg BenchConfig
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return BenchConfig{}, err
	}
	return cfg, nil
}
