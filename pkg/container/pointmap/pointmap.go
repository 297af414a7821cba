// Package pointmap provides map-like façade containers over the k-d
// tree engine: points as keys, an arbitrary payload as the mapped
// value. Map and RelaxedMap are mere parameter bindings over the
// engine (spec.md §2 point 11) — the strict/relaxed choice and the
// payload type are the only things they fix.
//
// The payload type is frequently github.com/google/uuid.UUID in this
// codebase's own tests and examples — a record identifier riding
// alongside a spatial key, grounded on the teacher's
// internal/predictor/knn/bkd and internal/metric/model packages, both
// of which key records by uuid.UUID.
package pointmap

import "github.com/go-sod/kdindex/pkg/container/kdtree"

// Map is a strict-invariant point-to-value map.
type Map[K, V any, R kdtree.Rank] struct {
	tree *kdtree.StrictTree[K, V, R]
}

// New constructs an empty Map, forwarding every supplied collaborator
// to the underlying tree.
func New[K, V any, R kdtree.Rank](rnk R, less kdtree.Comparator[K], opts ...kdtree.Option[K, V]) (*Map[K, V, R], error) {
	t, err := kdtree.NewStrict[K, V, R](rnk, less, opts...)
	if err != nil {
		return nil, err
	}
	return &Map[K, V, R]{tree: t}, nil
}

func (m *Map[K, V, R]) Len() int   { return m.tree.Len() }
func (m *Map[K, V, R]) Empty() bool { return m.tree.Empty() }

// Insert associates key with value. Duplicate keys are permitted,
// each occupying its own node (spec.md §6).
func (m *Map[K, V, R]) Insert(key K, value V) (kdtree.Iterator[K, V, R], error) {
	return m.tree.Insert(key, value)
}

func (m *Map[K, V, R]) Erase(it kdtree.Iterator[K, V, R]) { m.tree.Erase(it) }
func (m *Map[K, V, R]) EraseKey(key K) int                { return m.tree.EraseKey(key) }
func (m *Map[K, V, R]) Find(key K) kdtree.Iterator[K, V, R] { return m.tree.Find(key) }
func (m *Map[K, V, R]) FindIf(key K, pred func(V) bool) kdtree.Iterator[K, V, R] {
	return m.tree.FindIf(key, pred)
}
func (m *Map[K, V, R]) Equal(key K) kdtree.EqualIterator[K, V, R] { return m.tree.Equal(key) }
func (m *Map[K, V, R]) Range(lower, upper K) kdtree.RangeIterator[K, V, R] {
	return m.tree.Range(lower, upper)
}
func (m *Map[K, V, R]) Mapping(axis int) kdtree.MappingIterator[K, V, R] {
	return m.tree.Mapping(axis)
}
func (m *Map[K, V, R]) Neighbor(query K, metric kdtree.Metric[K]) kdtree.NeighborIterator[K, V, R] {
	return m.tree.Neighbor(query, metric)
}
func (m *Map[K, V, R]) Clear()            { m.tree.Clear() }
func (m *Map[K, V, R]) Swap(o *Map[K, V, R]) { m.tree.Swap(o.tree) }
func (m *Map[K, V, R]) Rebuild() error    { return m.tree.Rebuild() }
func (m *Map[K, V, R]) Points() []kdtree.Element[K, V] { return m.tree.Points() }

// RelaxedMap is the relaxed-invariant counterpart of Map.
type RelaxedMap[K, V any, R kdtree.Rank] struct {
	tree *kdtree.RelaxedTree[K, V, R]
}

func NewRelaxed[K, V any, R kdtree.Rank](rnk R, less kdtree.Comparator[K], opts ...kdtree.Option[K, V]) (*RelaxedMap[K, V, R], error) {
	t, err := kdtree.NewRelaxed[K, V, R](rnk, less, opts...)
	if err != nil {
		return nil, err
	}
	return &RelaxedMap[K, V, R]{tree: t}, nil
}

func (m *RelaxedMap[K, V, R]) Len() int   { return m.tree.Len() }
func (m *RelaxedMap[K, V, R]) Empty() bool { return m.tree.Empty() }
func (m *RelaxedMap[K, V, R]) Insert(key K, value V) (kdtree.Iterator[K, V, R], error) {
	return m.tree.Insert(key, value)
}
func (m *RelaxedMap[K, V, R]) Erase(it kdtree.Iterator[K, V, R]) error { return m.tree.Erase(it) }
func (m *RelaxedMap[K, V, R]) EraseKey(key K) (int, error)            { return m.tree.EraseKey(key) }
func (m *RelaxedMap[K, V, R]) Find(key K) kdtree.Iterator[K, V, R]    { return m.tree.Find(key) }
func (m *RelaxedMap[K, V, R]) FindIf(key K, pred func(V) bool) kdtree.Iterator[K, V, R] {
	return m.tree.FindIf(key, pred)
}
func (m *RelaxedMap[K, V, R]) Equal(key K) kdtree.EqualIterator[K, V, R] { return m.tree.Equal(key) }
func (m *RelaxedMap[K, V, R]) Range(lower, upper K) kdtree.RangeIterator[K, V, R] {
	return m.tree.Range(lower, upper)
}
func (m *RelaxedMap[K, V, R]) Mapping(axis int) kdtree.MappingIterator[K, V, R] {
	return m.tree.Mapping(axis)
}
func (m *RelaxedMap[K, V, R]) Neighbor(query K, metric kdtree.Metric[K]) kdtree.NeighborIterator[K, V, R] {
	return m.tree.Neighbor(query, metric)
}
func (m *RelaxedMap[K, V, R]) Clear()              { m.tree.Clear() }
func (m *RelaxedMap[K, V, R]) Swap(o *RelaxedMap[K, V, R]) { m.tree.Swap(o.tree) }
func (m *RelaxedMap[K, V, R]) Rebuild() error      { return m.tree.Rebuild() }
func (m *RelaxedMap[K, V, R]) Points() []kdtree.Element[K, V] { return m.tree.Points() }
