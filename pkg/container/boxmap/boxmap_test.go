package boxmap

import (
	"testing"

	"github.com/go-sod/kdindex/pkg/container/kdtree"
)

func lessF(axis int, a, b float64) bool { return a < b }

func TestMapInsertFindOverlapping(t *testing.T) {
	t.Parallel()
	rnk, err := kdtree.NewDynamic(2)
	if err != nil {
		t.Fatalf("NewDynamic: %v", err)
	}
	m, err := New[float64, string](rnk, lessF)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	b1 := Box[float64]{Lo: []float64{0, 0}, Hi: []float64{1, 1}}
	b2 := Box[float64]{Lo: []float64{5, 5}, Hi: []float64{6, 6}}
	if _, err := m.Insert(b1, "first"); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if _, err := m.Insert(b2, "second"); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	it := m.Find(b1)
	if !it.Valid() || it.Value() != "first" {
		t.Fatalf("Find(b1) valid=%v value=%q, want \"first\"", it.Valid(), it.Value())
	}

	got := m.Overlapping(
		Box[float64]{Lo: []float64{0, 0}, Hi: []float64{0, 0}},
		Box[float64]{Lo: []float64{6, 6}, Hi: []float64{6, 6}},
	)
	if len(got) != 2 {
		t.Fatalf("Overlapping() found %d, want 2", len(got))
	}
}
