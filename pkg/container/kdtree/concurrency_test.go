package kdtree

import (
	"testing"

	"golang.org/x/sync/errgroup"
)

// TestConcurrentReadersOnUnmodifiedTree exercises spec.md §5's claim
// that many goroutines may safely read (Find, Range, Neighbor) from
// one tree concurrently so long as none of them mutate it.
func TestConcurrentReadersOnUnmodifiedTree(t *testing.T) {
	t.Parallel()
	rnk := mustDynamic(t, 2)
	tr, err := NewStrict[[]float64, int](rnk, less2D)
	if err != nil {
		t.Fatalf("NewStrict: %v", err)
	}
	const n = 200
	for i := 0; i < n; i++ {
		p := []float64{float64(i % 20), float64(i / 20)}
		if _, err := tr.Insert(p, i); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}

	var g errgroup.Group
	for w := 0; w < 32; w++ {
		w := w
		g.Go(func() error {
			for i := 0; i < n; i++ {
				p := []float64{float64((i + w) % 20), float64((i + w) / 20 % 10)}
				if it := tr.Find(p); it.Valid() {
					_ = it.Value()
				}
				_ = WalkRange(tr.Range([]float64{0, 0}, []float64{5, 5}))
				_ = WalkNeighbor(tr.Neighbor([]float64{0, 0}, euclidean2D{}), 3)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent readers: %v", err)
	}
	checkInvariants(t, &tr.base)
}
