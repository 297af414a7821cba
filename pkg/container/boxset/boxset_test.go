package boxset

import (
	"testing"

	"github.com/go-sod/kdindex/pkg/container/kdtree"
)

func lessF(axis int, a, b float64) bool { return a < b }

func TestSetInsertFindOverlapping(t *testing.T) {
	t.Parallel()
	rnk, err := kdtree.NewDynamic(2)
	if err != nil {
		t.Fatalf("NewDynamic: %v", err)
	}
	s, err := New[float64](rnk, lessF)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	boxes := []Box[float64]{
		{Lo: []float64{0, 0}, Hi: []float64{1, 1}},
		{Lo: []float64{5, 5}, Hi: []float64{6, 6}},
		{Lo: []float64{9, 9}, Hi: []float64{10, 10}},
	}
	for _, b := range boxes {
		if _, err := s.Insert(b); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}
	if s.Len() != len(boxes) {
		t.Fatalf("Len() = %d, want %d", s.Len(), len(boxes))
	}
	if !s.Find(boxes[0]).Valid() {
		t.Fatal("Find did not locate inserted box")
	}

	got := s.Overlapping(
		Box[float64]{Lo: []float64{0, 0}, Hi: []float64{0, 0}},
		Box[float64]{Lo: []float64{6, 6}, Hi: []float64{6, 6}},
	)
	if len(got) != 2 {
		t.Fatalf("Overlapping() found %d boxes, want 2 (got %v)", len(got), got)
	}
}
