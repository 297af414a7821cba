// Package boxmap is boxset's map-like counterpart: axis-aligned boxes
// as keys (represented internally as points in doubled rank, see
// boxset's doc comment), an arbitrary payload as the mapped value (a
// string in this package's own test).
package boxmap

import "github.com/go-sod/kdindex/pkg/container/kdtree"

// Box mirrors boxset.Box; kept as a separate type so this package does
// not need to import boxset only for a plain data carrier.
type Box[K any] struct {
	Lo, Hi []K
}

type doubledRank[R kdtree.Rank] struct{ inner R }

func (d doubledRank[R]) Count() int { return 2 * d.inner.Count() }
func (d doubledRank[R]) AxisAt(depth int) int {
	if depth < 0 {
		depth = -depth
	}
	return depth % d.Count()
}

func boxLess[K any](less kdtree.Comparator[K], k int) kdtree.Comparator[Box[K]] {
	return func(axis int, a, b Box[K]) bool {
		if axis < k {
			return less(axis, a.Lo[axis], b.Lo[axis])
		}
		return less(axis-k, a.Hi[axis-k], b.Hi[axis-k])
	}
}

// Map is a strict-invariant box-to-value map.
type Map[K, V any, R kdtree.Rank] struct {
	tree *kdtree.StrictTree[Box[K], V, doubledRank[R]]
}

// New constructs an empty Map over boxes of rank rnk.Count().
func New[K, V any, R kdtree.Rank](rnk R, less kdtree.Comparator[K], opts ...kdtree.Option[Box[K], V]) (*Map[K, V, R], error) {
	t, err := kdtree.NewStrict[Box[K], V, doubledRank[R]](doubledRank[R]{rnk}, boxLess(less, rnk.Count()), opts...)
	if err != nil {
		return nil, err
	}
	return &Map[K, V, R]{tree: t}, nil
}

func (m *Map[K, V, R]) Len() int   { return m.tree.Len() }
func (m *Map[K, V, R]) Empty() bool { return m.tree.Empty() }

func (m *Map[K, V, R]) Insert(b Box[K], value V) (kdtree.Iterator[Box[K], V, doubledRank[R]], error) {
	return m.tree.Insert(b, value)
}
func (m *Map[K, V, R]) Erase(it kdtree.Iterator[Box[K], V, doubledRank[R]]) { m.tree.Erase(it) }
func (m *Map[K, V, R]) EraseBox(b Box[K]) int                              { return m.tree.EraseKey(b) }
func (m *Map[K, V, R]) Find(b Box[K]) kdtree.Iterator[Box[K], V, doubledRank[R]] {
	return m.tree.Find(b)
}

// Overlapping returns every (box, value) pair whose lower corner lies
// within [lower.Lo, upper.Lo] and whose upper corner lies within
// [lower.Hi, upper.Hi], axis by axis (see boxset.Set.Overlapping for
// the same coarse-filter caveat).
func (m *Map[K, V, R]) Overlapping(lower, upper Box[K]) []kdtree.Element[Box[K], V] {
	return kdtree.WalkRange(m.tree.Range(lower, upper))
}

func (m *Map[K, V, R]) Clear()         { m.tree.Clear() }
func (m *Map[K, V, R]) Rebuild() error { return m.tree.Rebuild() }
