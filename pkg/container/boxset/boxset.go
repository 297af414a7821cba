// Package boxset provides a set-like façade container over the k-d
// tree engine keyed by axis-aligned boxes rather than points: a box in
// rank-k space is represented internally as a point in rank-2k space
// (its k lower-corner coordinates followed by its k upper-corner
// coordinates), letting the existing engine index, order and range-
// query boxes with no change to its partitioning logic. This is
// exactly the sense in which spec.md §2 point 11 calls box_set "a mere
// parameter binding over the engine": it supplies a Rank and a
// Comparator, nothing else.
package boxset

import "github.com/go-sod/kdindex/pkg/container/kdtree"

// Box is an axis-aligned box in a rank-k space, given by its per-axis
// lower and upper bounds. Lo and Hi must both have length equal to the
// box rank the Set was constructed with.
type Box[K any] struct {
	Lo, Hi []K
}

// doubledRank reports 2k axes for an inner rank of k, so the engine
// sees one axis per lower-bound coordinate followed by one axis per
// upper-bound coordinate.
type doubledRank[R kdtree.Rank] struct{ inner R }

func (d doubledRank[R]) Count() int { return 2 * d.inner.Count() }
func (d doubledRank[R]) AxisAt(depth int) int {
	if depth < 0 {
		depth = -depth
	}
	return depth % d.Count()
}

// boxLess compares two boxes on one of the 2k doubled axes: axis < k
// compares lower bounds on axis, axis >= k compares upper bounds on
// axis-k, both via the caller's per-axis point comparator.
func boxLess[K any](less kdtree.Comparator[K], k int) kdtree.Comparator[Box[K]] {
	return func(axis int, a, b Box[K]) bool {
		if axis < k {
			return less(axis, a.Lo[axis], b.Lo[axis])
		}
		return less(axis-k, a.Hi[axis-k], b.Hi[axis-k])
	}
}

// Set is a strict-invariant box set.
type Set[K any, R kdtree.Rank] struct {
	tree *kdtree.StrictTree[Box[K], struct{}, doubledRank[R]]
}

// New constructs an empty Set over boxes whose coordinates have rank
// rnk.Count(), ordering per-axis coordinates with less.
func New[K any, R kdtree.Rank](rnk R, less kdtree.Comparator[K], opts ...kdtree.Option[Box[K], struct{}]) (*Set[K, R], error) {
	t, err := kdtree.NewStrict[Box[K], struct{}, doubledRank[R]](doubledRank[R]{rnk}, boxLess(less, rnk.Count()), opts...)
	if err != nil {
		return nil, err
	}
	return &Set[K, R]{tree: t}, nil
}

func (s *Set[K, R]) Len() int   { return s.tree.Len() }
func (s *Set[K, R]) Empty() bool { return s.tree.Empty() }

func (s *Set[K, R]) Insert(b Box[K]) (kdtree.Iterator[Box[K], struct{}, doubledRank[R]], error) {
	return s.tree.Insert(b, struct{}{})
}
func (s *Set[K, R]) Erase(it kdtree.Iterator[Box[K], struct{}, doubledRank[R]]) { s.tree.Erase(it) }
func (s *Set[K, R]) EraseBox(b Box[K]) int                                     { return s.tree.EraseKey(b) }
func (s *Set[K, R]) Find(b Box[K]) kdtree.Iterator[Box[K], struct{}, doubledRank[R]] {
	return s.tree.Find(b)
}

// Overlapping returns every box whose lower corner lies within
// [lower.Lo, upper.Lo] and whose upper corner lies within
// [lower.Hi, upper.Hi], axis by axis. It is a coarse containment
// filter on the two corners, not a box-intersection test: a box that
// intersects the query region but has a corner outside those bounds
// is not returned (box intersection is outside this façade's "mere
// parameter binding" scope per spec.md §2 point 11).
func (s *Set[K, R]) Overlapping(lower, upper Box[K]) []Box[K] {
	elems := kdtree.WalkRange(s.tree.Range(lower, upper))
	out := make([]Box[K], len(elems))
	for i, e := range elems {
		out[i] = e.Key
	}
	return out
}

func (s *Set[K, R]) Clear()           { s.tree.Clear() }
func (s *Set[K, R]) Rebuild() error   { return s.tree.Rebuild() }
