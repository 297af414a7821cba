package kdtree

import (
	"math"
	"testing"
)

func TestRelaxedTreeStaysBalancedUnderAdversarialInsertion(t *testing.T) {
	t.Parallel()
	rnk := mustDynamic(t, 1)
	less := func(axis int, a, b []float64) bool { return a[0] < b[0] }
	tr, err := NewRelaxed[[]float64, struct{}](rnk, less, WithPolicy[[]float64, struct{}](TightPolicy()))
	if err != nil {
		t.Fatalf("NewRelaxed: %v", err)
	}
	const n = 500
	for i := 0; i < n; i++ {
		if _, err := tr.Insert([]float64{float64(i)}, struct{}{}); err != nil {
			t.Fatalf("Insert(%d): %v", i, err)
		}
	}
	checkInvariants(t, &tr.base)

	depth := maxDepth(tr.root(), &tr.hdr)
	bound := int(4 * math.Log2(float64(n+1)))
	if depth > bound {
		t.Fatalf("max depth %d exceeds bound %d for n=%d ascending inserts (tree failed to stay balanced)", depth, bound, n)
	}
}

func maxDepth[K, V any](n *Node[K, V], hdr *Node[K, V]) int {
	if n == nil || n == hdr {
		return 0
	}
	l := maxDepth(n.left, hdr)
	r := maxDepth(n.right, hdr)
	if l > r {
		return l + 1
	}
	return r + 1
}

func TestRelaxedTreeEraseRebalances(t *testing.T) {
	t.Parallel()
	rnk := mustDynamic(t, 2)
	tr, err := NewRelaxed[[]float64, int](rnk, less2D)
	if err != nil {
		t.Fatalf("NewRelaxed: %v", err)
	}
	for i := 0; i < 100; i++ {
		p := []float64{float64(i), float64(i * i % 37)}
		if _, err := tr.Insert(p, i); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}
	checkInvariants(t, &tr.base)

	for i := 0; i < 60; i++ {
		p := []float64{float64(i), float64(i * i % 37)}
		it := tr.Find(p)
		if !it.Valid() {
			continue
		}
		if err := tr.Erase(it); err != nil {
			t.Fatalf("Erase: %v", err)
		}
	}
	checkInvariants(t, &tr.base)
	if tr.Len() != 40 {
		t.Fatalf("Len() = %d, want 40", tr.Len())
	}
}

// TestRelaxedTreeWeightStaysCurrentAboveRebuiltSubtree reproduces a
// rebalance that rebuilds a non-root ancestor: every ancestor above
// the rebuilt subtree must still see its weight bumped by the
// triggering insert, not just the ones below it.
func TestRelaxedTreeWeightStaysCurrentAboveRebuiltSubtree(t *testing.T) {
	t.Parallel()
	rnk := mustDynamic(t, 1)
	less := func(axis int, a, b []float64) bool { return a[0] < b[0] }
	tr, err := NewRelaxed[[]float64, struct{}](rnk, less, WithPolicy[[]float64, struct{}](TightPolicy()))
	if err != nil {
		t.Fatalf("NewRelaxed: %v", err)
	}
	for i := 1; i <= 5; i++ {
		if _, err := tr.Insert([]float64{float64(i)}, struct{}{}); err != nil {
			t.Fatalf("Insert(%d): %v", i, err)
		}
		checkInvariants(t, &tr.base)
	}
	if got := int(weightOf(tr.root())); got != tr.Len() {
		t.Fatalf("root weight %d does not match Len() %d", got, tr.Len())
	}
}

func TestRelaxedTreeRebuildRestoresWeights(t *testing.T) {
	t.Parallel()
	rnk := mustDynamic(t, 1)
	less := func(axis int, a, b []float64) bool { return a[0] < b[0] }
	tr, err := NewRelaxed[[]float64, struct{}](rnk, less)
	if err != nil {
		t.Fatalf("NewRelaxed: %v", err)
	}
	for i := 0; i < 30; i++ {
		if _, err := tr.Insert([]float64{float64(i)}, struct{}{}); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}
	if err := tr.Rebuild(); err != nil {
		t.Fatalf("Rebuild: %v", err)
	}
	checkInvariants(t, &tr.base)
	if got := weightOf(tr.root()); int(got) != tr.Len() {
		t.Fatalf("root weight %d does not match Len() %d after Rebuild", got, tr.Len())
	}
}
