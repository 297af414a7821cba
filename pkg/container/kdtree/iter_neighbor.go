package kdtree

import "container/heap"

// Metric supplies the two distance computations a best-first nearest-
// neighbor search needs (spec.md §4.8): the real distance from a
// query to a candidate key, and a geometric lower bound on the
// distance from a query to anything on the far side of a Node's split
// plane, used to prune subtrees that cannot possibly hold a closer
// point.
type Metric[K any] interface {
	// DistanceToKey returns the distance between query and key.
	DistanceToKey(query, key K) float64
	// DistanceToPlane returns the distance from query to the
	// hyperplane axis=splitKey's axis-th coordinate — a lower bound on
	// the distance to every point strictly on the far side of that
	// plane.
	DistanceToPlane(axis int, query, splitKey K) float64
}

// NeighborIterator enumerates elements in ascending distance order
// from a fixed query point (spec.md §4.8), using the classic
// incremental best-first search: a priority queue mixes unexpanded
// subtree frontiers (ordered by their geometric lower bound) with
// already-evaluated point candidates (ordered by real distance), so
// the next point popped is always truly the next-nearest one — no
// full k-nearest precomputation, and no fixed k.
//
// Best-first order has no well-defined predecessor without redoing
// the search, so unlike the other three geometry-aware iterators this
// one is forward-only: there is no Prev.
type NeighborIterator[K, V any, R Rank] struct {
	t      *base[K, V, R]
	query  K
	metric Metric[K]
	pq     *nnHeap[K, V]
	cur    *Node[K, V]
}

func (it NeighborIterator[K, V, R]) Valid() bool { return it.cur != nil }
func (it NeighborIterator[K, V, R]) Key() K      { assertValid(it.Valid()); return it.cur.elem.Key }
func (it NeighborIterator[K, V, R]) Value() V    { assertValid(it.Valid()); return it.cur.elem.Value }

// Dist returns the metric's distance from the query to the current
// element.
func (it NeighborIterator[K, V, R]) Dist() float64 {
	assertValid(it.Valid())
	return it.metric.DistanceToKey(it.query, it.cur.elem.Key)
}

// neighborBegin constructs a NeighborIterator seeded with the tree's
// root and advances it to the first (nearest) match.
func neighborBegin[K, V any, R Rank](t *base[K, V, R], query K, metric Metric[K]) NeighborIterator[K, V, R] {
	pq := &nnHeap[K, V]{}
	if root := t.root(); root != nil {
		heap.Push(pq, nnEntry[K, V]{Node: root, bound: 0})
	}
	it := NeighborIterator[K, V, R]{t: t, query: query, metric: metric, pq: pq}
	it.Next()
	return it
}

// Next advances to the next-nearest element, or makes the iterator
// invalid once the frontier is exhausted.
func (it *NeighborIterator[K, V, R]) Next() {
	for it.pq.Len() > 0 {
		e := heap.Pop(it.pq).(nnEntry[K, V])
		if e.isPoint {
			it.cur = e.Node
			return
		}
		it.expand(e)
	}
	it.cur = nil
}

// expand evaluates a subtree frontier Node: pushes it back as a point
// candidate at its real distance, then pushes its non-nil children as
// new frontiers with a lower bound derived from which side of the
// split plane the query falls on.
func (it *NeighborIterator[K, V, R]) expand(e nnEntry[K, V]) {
	n := e.Node
	d := it.metric.DistanceToKey(it.query, n.elem.Key)
	heap.Push(it.pq, nnEntry[K, V]{Node: n, bound: d, isPoint: true})

	depth := depthOf(n, &it.t.hdr)
	axis := it.t.rnk.AxisAt(depth)
	planeDist := it.metric.DistanceToPlane(axis, it.query, n.elem.Key)

	leftBound, rightBound := e.bound, e.bound
	if it.t.less(axis, it.query, n.elem.Key) {
		rightBound = maxFloat(e.bound, planeDist)
	} else {
		leftBound = maxFloat(e.bound, planeDist)
	}
	if n.left != nil {
		heap.Push(it.pq, nnEntry[K, V]{Node: n.left, bound: leftBound})
	}
	if n.right != nil {
		heap.Push(it.pq, nnEntry[K, V]{Node: n.right, bound: rightBound})
	}
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// nnEntry is one frontier item: either an unexpanded subtree (bound is
// a lower bound, isPoint false) or an evaluated point (bound is its
// real distance, isPoint true).
type nnEntry[K, V any] struct {
	Node    *Node[K, V]
	bound   float64
	isPoint bool
}

// nnHeap is a container/heap min-heap over nnEntry.bound, grounded on
// the k-nearest priority queue in the pack's hdbscan kd-tree
// (knnItem/container-heap usage).
type nnHeap[K, V any] []nnEntry[K, V]

func (h nnHeap[K, V]) Len() int            { return len(h) }
func (h nnHeap[K, V]) Less(i, j int) bool  { return h[i].bound < h[j].bound }
func (h nnHeap[K, V]) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *nnHeap[K, V]) Push(x interface{}) { *h = append(*h, x.(nnEntry[K, V])) }
func (h *nnHeap[K, V]) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
