package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadScenario(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.toml")
	body := `name = "high-churn-relaxed"
point_count = 5000
dimension = 4
policy = "loose"
seed = 7
`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	sc, err := LoadScenario(path)
	if err != nil {
		t.Fatalf("LoadScenario: %v", err)
	}
	if sc.Name != "high-churn-relaxed" || sc.PointCount != 5000 || sc.Dimension != 4 || sc.Policy != "loose" || sc.Seed != 7 {
		t.Fatalf("LoadScenario = %+v, want name=high-churn-relaxed point_count=5000 dimension=4 policy=loose seed=7", sc)
	}
}

func TestLoadDataset(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "dataset.yaml")
	body := "points:\n  - [1, 2]\n  - [3, 4]\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	ds, err := LoadDataset(path)
	if err != nil {
		t.Fatalf("LoadDataset: %v", err)
	}
	if len(ds.Points) != 2 || ds.Points[0][0] != 1 || ds.Points[1][1] != 4 {
		t.Fatalf("LoadDataset = %+v, want [[1 2] [3 4]]", ds.Points)
	}
}
