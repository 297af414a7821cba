package config

import (
	"os"

	"gopkg.in/yaml.v2"
)

// Dataset is a literal set of points loaded from a YAML file, for
// reproducing a specific, hand-curated layout rather than a randomly
// generated one.
type Dataset struct {
	Points [][]float64 `yaml:"points"`
}

// LoadDataset reads and parses a Dataset from path.
func LoadDataset(path string) (Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, err
	}
	var d Dataset
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return Dataset{}, err
	}
	return d, nil
}
