package kdtree

// StrictTree is the k-d tree variant enforcing the strict partition
// invariant (spec.md §3): every left descendant of a Node compares
// strictly less than it on the Node's split axis, every right
// descendant compares greater-or-equal. Insert never rebalances;
// worst-case depth is unbounded under adversarial insertion order,
// which is the trade StrictTree makes for O(depth) insert/erase with
// no amortized rebuild cost.
type StrictTree[K, V any, R Rank] struct {
	base[K, V, R]
}

// NewStrict constructs an empty StrictTree of the given rank, ordering
// keys with less. rnk must report a positive Count(); a Dynamic rank
// built via NewDynamic(0) (or smaller) is rejected here too, since a
// caller could otherwise hand-construct an invalid Dynamic value.
func NewStrict[K, V any, R Rank](rnk R, less Comparator[K], opts ...Option[K, V]) (*StrictTree[K, V, R], error) {
	if rnk.Count() <= 0 {
		return nil, ErrInvalidRank
	}
	cfg := defaultConfig[K, V]()
	for _, opt := range opts {
		opt(&cfg)
	}
	t := &StrictTree[K, V, R]{}
	t.init(rnk, less, cfg.alloc, strictFlavor)
	return t, nil
}

// Len reports the number of elements.
func (t *StrictTree[K, V, R]) Len() int { return t.size() }

// Empty reports whether the tree holds no elements.
func (t *StrictTree[K, V, R]) Empty() bool { return t.empty() }

// Begin returns an iterator at the in-order minimum.
func (t *StrictTree[K, V, R]) Begin() Iterator[K, V, R] { return Iterator[K, V, R]{&t.base, t.begin()} }

// End returns the past-the-end iterator.
func (t *StrictTree[K, V, R]) End() Iterator[K, V, R] { return Iterator[K, V, R]{&t.base, t.end()} }

// Insert places key/value, descending per the strict invariant (spec
// §4.3 step 1: ties always go right). It never fails except on
// allocator exhaustion.
func (t *StrictTree[K, V, R]) Insert(key K, value V) (Iterator[K, V, R], error) {
	parent, toLeft, _ := t.locateInsert(key)
	n, commit, release, err := reserve[K, V](t.alloc)
	if err != nil {
		return Iterator[K, V, R]{}, err
	}
	defer release()
	t.attach(n, Element[K, V]{Key: key, Value: value}, parent, toLeft)
	commit()
	return Iterator[K, V, R]{&t.base, n}, nil
}

// Find returns an iterator at the first coordinate-equivalent match of
// key in pre-order, or End() if none exists.
func (t *StrictTree[K, V, R]) Find(key K) Iterator[K, V, R] {
	return Iterator[K, V, R]{&t.base, equalBegin(&t.base, key)}
}

// FindIf scans coordinate-equivalent matches of key in pre-order and
// returns the first one satisfying pred, or End() if none does.
func (t *StrictTree[K, V, R]) FindIf(key K, pred func(V) bool) Iterator[K, V, R] {
	it := EqualIterator[K, V, R]{t: &t.base, model: key, pos: equalBegin(&t.base, key)}
	for it.Valid() {
		if pred(it.Value()) {
			return Iterator[K, V, R]{&t.base, it.pos}
		}
		it.Next()
	}
	return t.End()
}

// Equal returns an iterator range over every coordinate-equivalent
// match of key.
func (t *StrictTree[K, V, R]) Equal(key K) EqualIterator[K, V, R] {
	return EqualIterator[K, V, R]{t: &t.base, model: key, pos: equalBegin(&t.base, key)}
}

// Range returns an iterator over every element inside the orthogonal
// box [lower, upper].
func (t *StrictTree[K, V, R]) Range(lower, upper K) RangeIterator[K, V, R] {
	return RangeIterator[K, V, R]{t: &t.base, lower: lower, upper: upper, pos: rangeBegin(&t.base, lower, upper)}
}

// Mapping returns an iterator over every element in ascending order
// along axis.
func (t *StrictTree[K, V, R]) Mapping(axis int) MappingIterator[K, V, R] {
	return MappingIterator[K, V, R]{t: &t.base, axis: axis, pos: mappingBegin(&t.base, axis)}
}

// Neighbor returns an iterator over every element in ascending
// distance order from query, as measured by metric.
func (t *StrictTree[K, V, R]) Neighbor(query K, metric Metric[K]) NeighborIterator[K, V, R] {
	return neighborBegin(&t.base, query, metric)
}

// Points returns every element via Walk, per opts (default ascending
// in-order).
func (t *StrictTree[K, V, R]) Points(opts ...WalkOption) []Element[K, V] {
	return Walk(t.Begin(), t.End(), opts...)
}

// Filter returns every element satisfying fn via Filter, per opts.
func (t *StrictTree[K, V, R]) Filter(fn FilterFn[K, V], opts ...WalkOption) []Element[K, V] {
	return Filter(t.Begin(), t.End(), fn, opts...)
}

// Erase removes the element at it, which must be Valid and must have
// been obtained from this tree.
func (t *StrictTree[K, V, R]) Erase(it Iterator[K, V, R]) {
	leaf := t.chaseAndDetach(it.pos)
	t.alloc.Free(leaf)
}

// EraseKey removes every coordinate-equivalent match of key and
// reports how many were removed.
func (t *StrictTree[K, V, R]) EraseKey(key K) int {
	n := 0
	for {
		it := t.Find(key)
		if !it.Valid() {
			return n
		}
		t.Erase(it)
		n++
	}
}

// Clear removes every element.
func (t *StrictTree[K, V, R]) Clear() { t.clear() }

// Swap exchanges the contents of t and o in O(1).
func (t *StrictTree[K, V, R]) Swap(o *StrictTree[K, V, R]) { t.swap(&o.base) }

// Rebuild discards the current structure and rebuilds a median-split
// tree from the current elements — useful after a long run of
// insert-heavy traffic has skewed a StrictTree's depth, since
// StrictTree itself never rebalances.
func (t *StrictTree[K, V, R]) Rebuild() error {
	elems := collectSubtree(t.root())
	root, err := rebuildFromElements(t.less, t.rnk, t.alloc, t.fl, elems, 0)
	if err != nil {
		return err
	}
	clearSubtree(t.root(), t.alloc)
	t.relink(root, len(elems))
	return nil
}

// relink installs root as the tree's root and fixes the header's
// leftmost/rightmost cursors and size, shared by Rebuild on both tree
// variants.
func (t *base[K, V, R]) relink(root *Node[K, V], size int) {
	if root == nil {
		t.hdr.parent, t.hdr.left, t.hdr.right = &t.hdr, &t.hdr, &t.hdr
		t.sz = 0
		return
	}
	root.parent = &t.hdr
	t.hdr.parent = root
	t.hdr.left = leftmost(root)
	t.hdr.right = rightmost(root)
	t.sz = size
}
