// Package pointset provides set-like façade containers over the k-d
// tree engine: ordered collections of points with no mapped payload.
// Per spec.md §2 point 11 these are "mere parameter bindings over the
// engine" — Set and RelaxedSet add no behavior beyond selecting the
// strict or relaxed tree variant and fixing the payload type to
// struct{}.
package pointset

import "github.com/go-sod/kdindex/pkg/container/kdtree"

// Set is a strict-invariant point set: insertion order along any
// single split path never rebalances, so worst-case depth is
// unbounded under adversarial insertion order (see
// kdtree.StrictTree).
type Set[K any, R kdtree.Rank] struct {
	tree *kdtree.StrictTree[K, struct{}, R]
}

// New constructs an empty Set, forwarding every supplied collaborator
// to the underlying tree (the spec.md §9 open question flags the
// teacher's façade constructors for dropping a supplied Compare; this
// one forwards rnk, less and every option unchanged).
func New[K any, R kdtree.Rank](rnk R, less kdtree.Comparator[K], opts ...kdtree.Option[K, struct{}]) (*Set[K, R], error) {
	t, err := kdtree.NewStrict[K, struct{}, R](rnk, less, opts...)
	if err != nil {
		return nil, err
	}
	return &Set[K, R]{tree: t}, nil
}

func (s *Set[K, R]) Len() int   { return s.tree.Len() }
func (s *Set[K, R]) Empty() bool { return s.tree.Empty() }

// Insert adds key. Duplicates are permitted (spec.md §6: "set-style
// uniqueness is not enforced").
func (s *Set[K, R]) Insert(key K) (kdtree.Iterator[K, struct{}, R], error) {
	return s.tree.Insert(key, struct{}{})
}

func (s *Set[K, R]) Erase(it kdtree.Iterator[K, struct{}, R]) { s.tree.Erase(it) }
func (s *Set[K, R]) EraseKey(key K) int                       { return s.tree.EraseKey(key) }
func (s *Set[K, R]) Find(key K) kdtree.Iterator[K, struct{}, R] { return s.tree.Find(key) }
func (s *Set[K, R]) Equal(key K) kdtree.EqualIterator[K, struct{}, R] { return s.tree.Equal(key) }
func (s *Set[K, R]) Range(lower, upper K) kdtree.RangeIterator[K, struct{}, R] {
	return s.tree.Range(lower, upper)
}
func (s *Set[K, R]) Mapping(axis int) kdtree.MappingIterator[K, struct{}, R] {
	return s.tree.Mapping(axis)
}
func (s *Set[K, R]) Neighbor(query K, metric kdtree.Metric[K]) kdtree.NeighborIterator[K, struct{}, R] {
	return s.tree.Neighbor(query, metric)
}
func (s *Set[K, R]) Clear()                         { s.tree.Clear() }
func (s *Set[K, R]) Swap(o *Set[K, R])               { s.tree.Swap(o.tree) }
func (s *Set[K, R]) Rebuild() error                  { return s.tree.Rebuild() }
func (s *Set[K, R]) Points() []K                     { return keysOf(s.tree.Points()) }

// RelaxedSet is the relaxed-invariant counterpart of Set: every
// insert/erase consults a kdtree.BalancePolicy and may trigger a
// subtree rebuild (see kdtree.RelaxedTree).
type RelaxedSet[K any, R kdtree.Rank] struct {
	tree *kdtree.RelaxedTree[K, struct{}, R]
}

func NewRelaxed[K any, R kdtree.Rank](rnk R, less kdtree.Comparator[K], opts ...kdtree.Option[K, struct{}]) (*RelaxedSet[K, R], error) {
	t, err := kdtree.NewRelaxed[K, struct{}, R](rnk, less, opts...)
	if err != nil {
		return nil, err
	}
	return &RelaxedSet[K, R]{tree: t}, nil
}

func (s *RelaxedSet[K, R]) Len() int   { return s.tree.Len() }
func (s *RelaxedSet[K, R]) Empty() bool { return s.tree.Empty() }
func (s *RelaxedSet[K, R]) Insert(key K) (kdtree.Iterator[K, struct{}, R], error) {
	return s.tree.Insert(key, struct{}{})
}
func (s *RelaxedSet[K, R]) Erase(it kdtree.Iterator[K, struct{}, R]) error { return s.tree.Erase(it) }
func (s *RelaxedSet[K, R]) EraseKey(key K) (int, error)                   { return s.tree.EraseKey(key) }
func (s *RelaxedSet[K, R]) Find(key K) kdtree.Iterator[K, struct{}, R]    { return s.tree.Find(key) }
func (s *RelaxedSet[K, R]) Equal(key K) kdtree.EqualIterator[K, struct{}, R] {
	return s.tree.Equal(key)
}
func (s *RelaxedSet[K, R]) Range(lower, upper K) kdtree.RangeIterator[K, struct{}, R] {
	return s.tree.Range(lower, upper)
}
func (s *RelaxedSet[K, R]) Mapping(axis int) kdtree.MappingIterator[K, struct{}, R] {
	return s.tree.Mapping(axis)
}
func (s *RelaxedSet[K, R]) Neighbor(query K, metric kdtree.Metric[K]) kdtree.NeighborIterator[K, struct{}, R] {
	return s.tree.Neighbor(query, metric)
}
func (s *RelaxedSet[K, R]) Clear()           { s.tree.Clear() }
func (s *RelaxedSet[K, R]) Swap(o *RelaxedSet[K, R]) { s.tree.Swap(o.tree) }
func (s *RelaxedSet[K, R]) Rebuild() error   { return s.tree.Rebuild() }
func (s *RelaxedSet[K, R]) Points() []K      { return keysOf(s.tree.Points()) }

func keysOf[K any](elems []kdtree.Element[K, struct{}]) []K {
	out := make([]K, len(elems))
	for i, e := range elems {
		out[i] = e.Key
	}
	return out
}
