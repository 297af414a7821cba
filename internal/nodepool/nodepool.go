// Package nodepool provides a sync.Pool-backed kdtree.Allocator for
// callers doing heavy insert/erase churn, grounded on the same
// recycling idiom as internal/byteutil's buffer pool.
package nodepool

import (
	"sync"

	"github.com/go-sod/kdindex/pkg/container/kdtree"
)

// Pool is a kdtree.Allocator[K, V] that recycles freed nodes through a
// sync.Pool instead of leaving them to the garbage collector. It is
// safe for concurrent use by multiple goroutines, though a single
// kdtree.StrictTree or kdtree.RelaxedTree is not (spec.md §5).
type Pool[K, V any] struct {
	pool sync.Pool
}

// New returns a ready-to-use Pool. Pass it to a tree constructor via
// kdtree.WithAllocator.
func New[K, V any]() *Pool[K, V] {
	return &Pool[K, V]{
		pool: sync.Pool{
			New: func() interface{} { return new(kdtree.Node[K, V]) },
		},
	}
}

// Alloc returns a recycled node if one is available, or a fresh one
// otherwise. It never fails.
func (p *Pool[K, V]) Alloc() (*kdtree.Node[K, V], error) {
	return p.pool.Get().(*kdtree.Node[K, V]), nil
}

// Free returns n to the pool for reuse by a later Alloc.
func (p *Pool[K, V]) Free(n *kdtree.Node[K, V]) {
	p.pool.Put(n)
}
