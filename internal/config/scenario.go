package config

import "github.com/BurntSushi/toml"

// Scenario names a repeatable benchmark configuration, loaded from a
// TOML file instead of environment variables when a caller wants to
// check a fixed set of named configurations into source control
// (e.g. "high-churn-relaxed", "static-strict-bulk-load").
type Scenario struct {
	Name       string `toml:"name"`
	PointCount int    `toml:"point_count"`
	Dimension  int    `toml:"dimension"`
	Policy     string `toml:"policy"`
	Seed       uint64 `toml:"seed"`
}

// LoadScenario decodes a single Scenario from a TOML file.
func LoadScenario(path string) (Scenario, error) {
	var s Scenario
	_, err := toml.DecodeFile(path, &s)
	return s, err
}
