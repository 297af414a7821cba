package pointset

import (
	"testing"

	"github.com/go-sod/kdindex/pkg/container/kdtree"
)

func less2D(axis int, a, b []float64) bool { return a[axis] < b[axis] }

func TestSetInsertFindRange(t *testing.T) {
	t.Parallel()
	rnk, err := kdtree.NewDynamic(2)
	if err != nil {
		t.Fatalf("NewDynamic: %v", err)
	}
	s, err := New[[]float64](rnk, less2D)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	pts := [][]float64{{1, 1}, {2, 2}, {3, 3}, {9, 9}}
	for _, p := range pts {
		if _, err := s.Insert(p); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}
	if s.Len() != len(pts) {
		t.Fatalf("Len() = %d, want %d", s.Len(), len(pts))
	}
	if !s.Find([]float64{2, 2}).Valid() {
		t.Fatal("Find did not locate inserted point")
	}
	got := s.Points()
	if len(got) != len(pts) {
		t.Fatalf("Points() length = %d, want %d", len(got), len(pts))
	}
}

func TestRelaxedSetEraseRebalances(t *testing.T) {
	t.Parallel()
	rnk, err := kdtree.NewDynamic(1)
	if err != nil {
		t.Fatalf("NewDynamic: %v", err)
	}
	less := func(axis int, a, b []float64) bool { return a[0] < b[0] }
	s, err := NewRelaxed[[]float64](rnk, less)
	if err != nil {
		t.Fatalf("NewRelaxed: %v", err)
	}
	for i := 0; i < 30; i++ {
		if _, err := s.Insert([]float64{float64(i)}); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}
	n, err := s.EraseKey([]float64{5})
	if err != nil {
		t.Fatalf("EraseKey: %v", err)
	}
	if n != 1 {
		t.Fatalf("EraseKey removed %d, want 1", n)
	}
	if s.Len() != 29 {
		t.Fatalf("Len() = %d, want 29", s.Len())
	}
}
