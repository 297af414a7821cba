package kdtree

// Allocator owns Node memory for a tree. It is held by value and used
// under exclusive tree ownership (§5): a scoped acquisition reserves
// exactly one Node's memory and is released on any early exit, with
// the release suppressed once the Node is linked into the tree.
//
// The default Allocator (newHeapAllocator, used unless WithAllocator
// overrides it) is a plain heap allocator; nodepool (see
// internal/nodepool) provides a sync.Pool-backed one for callers doing
// heavy insert/erase churn.
type Allocator[K, V any] interface {
	// Alloc returns a fresh, unlinked Node, or nil plus a non-nil
	// error (wrapping ErrAllocFailed) on failure.
	Alloc() (*Node[K, V], error)
	// Free returns a Node to the allocator. Called either when a Node
	// is erased, or when an Alloc'd-but-never-linked Node must be
	// released on an aborted insert.
	Free(*Node[K, V])
}

// heapAllocator is the default Allocator: every Alloc is a plain
// allocation and Free is a no-op, left to the garbage collector.
type heapAllocator[K, V any] struct{}

func (heapAllocator[K, V]) Alloc() (*Node[K, V], error) {
	return &Node[K, V]{}, nil
}

func (heapAllocator[K, V]) Free(*Node[K, V]) {}

func newHeapAllocator[K, V any]() Allocator[K, V] {
	return heapAllocator[K, V]{}
}

// reserve acquires a Node from alloc and returns a commit function to
// suppress the release, and the release happening automatically via
// the returned cleanup otherwise. Callers use it as:
//
//	n, commit, release, err := reserve(alloc)
//	if err != nil { return err }
//	defer release()
//	... link n into the tree ...
//	commit()
func reserve[K, V any](alloc Allocator[K, V]) (n *Node[K, V], commit func(), release func(), err error) {
	n, err = alloc.Alloc()
	if err != nil {
		return nil, nil, nil, err
	}
	committed := false
	commit = func() { committed = true }
	release = func() {
		if !committed {
			alloc.Free(n)
		}
	}
	return n, commit, release, nil
}
