package kdtree

// RelaxedTree is the k-d tree variant enforcing the relaxed partition
// invariant (spec.md §3): ties on a Node's split axis may fall to
// either side. In exchange it maintains a subtree weight at every
// Node and, after each insert or erase, walks ancestors looking for
// the first one a BalancePolicy judges unbalanced, rebuilding that
// whole subtree by median split (scapegoat-tree style, not rotation —
// see SPEC_FULL.md's design notes) rather than letting worst-case
// depth grow unbounded the way StrictTree allows.
type RelaxedTree[K, V any, R Rank] struct {
	base[K, V, R]
	policy BalancePolicy
	logger rebuildLogger
}

// NewRelaxed constructs an empty RelaxedTree of the given rank,
// ordering keys with less and balancing per WithPolicy (LoosePolicy by
// default).
func NewRelaxed[K, V any, R Rank](rnk R, less Comparator[K], opts ...Option[K, V]) (*RelaxedTree[K, V, R], error) {
	if rnk.Count() <= 0 {
		return nil, ErrInvalidRank
	}
	cfg := defaultConfig[K, V]()
	for _, opt := range opts {
		opt(&cfg)
	}
	t := &RelaxedTree[K, V, R]{policy: cfg.policy, logger: cfg.logger}
	t.init(rnk, less, cfg.alloc, relaxedFlavor)
	return t, nil
}

func (t *RelaxedTree[K, V, R]) Len() int                      { return t.size() }
func (t *RelaxedTree[K, V, R]) Empty() bool                   { return t.empty() }
func (t *RelaxedTree[K, V, R]) Begin() Iterator[K, V, R]      { return Iterator[K, V, R]{&t.base, t.begin()} }
func (t *RelaxedTree[K, V, R]) End() Iterator[K, V, R]        { return Iterator[K, V, R]{&t.base, t.end()} }

// Insert places key/value, then rebuilds the first ancestor subtree
// the configured BalancePolicy judges unbalanced, if any.
func (t *RelaxedTree[K, V, R]) Insert(key K, value V) (Iterator[K, V, R], error) {
	parent, toLeft, _ := t.locateInsert(key)
	n, commit, release, err := reserve[K, V](t.alloc)
	if err != nil {
		return Iterator[K, V, R]{}, err
	}
	defer release()
	t.attach(n, Element[K, V]{Key: key, Value: value}, parent, toLeft)
	n.weight = 1
	commit()
	if err := t.rebalanceFrom(n.parent, 1); err != nil {
		return Iterator[K, V, R]{&t.base, n}, err
	}
	return Iterator[K, V, R]{&t.base, n}, nil
}

func (t *RelaxedTree[K, V, R]) Find(key K) Iterator[K, V, R] {
	return Iterator[K, V, R]{&t.base, equalBegin(&t.base, key)}
}

func (t *RelaxedTree[K, V, R]) FindIf(key K, pred func(V) bool) Iterator[K, V, R] {
	it := EqualIterator[K, V, R]{t: &t.base, model: key, pos: equalBegin(&t.base, key)}
	for it.Valid() {
		if pred(it.Value()) {
			return Iterator[K, V, R]{&t.base, it.pos}
		}
		it.Next()
	}
	return t.End()
}

func (t *RelaxedTree[K, V, R]) Equal(key K) EqualIterator[K, V, R] {
	return EqualIterator[K, V, R]{t: &t.base, model: key, pos: equalBegin(&t.base, key)}
}

func (t *RelaxedTree[K, V, R]) Range(lower, upper K) RangeIterator[K, V, R] {
	return RangeIterator[K, V, R]{t: &t.base, lower: lower, upper: upper, pos: rangeBegin(&t.base, lower, upper)}
}

func (t *RelaxedTree[K, V, R]) Mapping(axis int) MappingIterator[K, V, R] {
	return MappingIterator[K, V, R]{t: &t.base, axis: axis, pos: mappingBegin(&t.base, axis)}
}

// Neighbor returns an iterator over every element in ascending
// distance order from query, as measured by metric.
func (t *RelaxedTree[K, V, R]) Neighbor(query K, metric Metric[K]) NeighborIterator[K, V, R] {
	return neighborBegin(&t.base, query, metric)
}

// Points returns every element via Walk, per opts (default ascending
// in-order).
func (t *RelaxedTree[K, V, R]) Points(opts ...WalkOption) []Element[K, V] {
	return Walk(t.Begin(), t.End(), opts...)
}

// Filter returns every element satisfying fn via Filter, per opts.
func (t *RelaxedTree[K, V, R]) Filter(fn FilterFn[K, V], opts ...WalkOption) []Element[K, V] {
	return Filter(t.Begin(), t.End(), fn, opts...)
}

// Erase removes the element at it, then rebalances. it must be Valid
// and must have been obtained from this tree.
func (t *RelaxedTree[K, V, R]) Erase(it Iterator[K, V, R]) error {
	leaf := t.chaseAndDetach(it.pos)
	parent := leaf.parent
	t.alloc.Free(leaf)
	return t.rebalanceFrom(parent, -1)
}

// EraseKey removes every coordinate-equivalent match of key and
// reports how many were removed. It stops and returns early if a
// rebalance fails partway through (allocator exhaustion); elements
// already removed stay removed.
func (t *RelaxedTree[K, V, R]) EraseKey(key K) (int, error) {
	n := 0
	for {
		it := t.Find(key)
		if !it.Valid() {
			return n, nil
		}
		if err := t.Erase(it); err != nil {
			return n, err
		}
		n++
	}
}

func (t *RelaxedTree[K, V, R]) Clear() { t.clear() }

func (t *RelaxedTree[K, V, R]) Swap(o *RelaxedTree[K, V, R]) {
	t.swap(&o.base)
	t.policy, o.policy = o.policy, t.policy
	t.logger, o.logger = o.logger, t.logger
}

// Rebuild discards the current structure and rebuilds a median-split
// tree from the current elements, restoring every weight invariant
// exactly (unlike incremental rebalancing, which only guarantees the
// policy's bound).
func (t *RelaxedTree[K, V, R]) Rebuild() error {
	elems := collectSubtree(t.root())
	root, err := rebuildFromElements(t.less, t.rnk, t.alloc, t.fl, elems, 0)
	if err != nil {
		return err
	}
	clearSubtree(t.root(), t.alloc)
	t.relink(root, len(elems))
	return nil
}

// rebalanceFrom walks every ancestor from from up to the header,
// adjusting each one's weight by delta (+1 after an insert, -1 after
// an erase): the element count changes for all of them, not just the
// ones below wherever a rebuild eventually happens. Once every weight
// is current, it rebuilds the lowest ancestor the policy judges
// unbalanced, if any — a subtree rebuild changes shape, never element
// count, so it never needs to touch weights above itself.
func (t *RelaxedTree[K, V, R]) rebalanceFrom(from *Node[K, V], delta int32) error {
	var scapegoat *Node[K, V]
	for cur := from; cur != &t.hdr; cur = cur.parent {
		cur.weight = uint32(int32(cur.weight) + delta)
		if scapegoat == nil && t.policy.MayUnbalance(weightOf(cur.left), weightOf(cur.right)) {
			scapegoat = cur
		}
	}
	if scapegoat != nil {
		return t.rebuildSubtreeAt(scapegoat)
	}
	return nil
}

// rebuildSubtreeAt replaces the subtree rooted at cur with a fresh
// median-split tree over the same elements. The new subtree is built
// before the old one is freed, so an allocator failure midway leaves
// the tree exactly as it was.
func (t *RelaxedTree[K, V, R]) rebuildSubtreeAt(cur *Node[K, V]) error {
	depth := depthOf(cur, &t.hdr)
	elems := collectSubtree(cur)
	newRoot, err := rebuildFromElements(t.less, t.rnk, t.alloc, t.fl, elems, depth)
	if err != nil {
		return err
	}
	parent := cur.parent
	left := parent != &t.hdr && parent.left == cur
	clearSubtree(cur, t.alloc)

	if parent == &t.hdr {
		newRoot.parent = &t.hdr
		t.hdr.parent = newRoot
	} else {
		newRoot.parent = parent
		if left {
			parent.left = newRoot
		} else {
			parent.right = newRoot
		}
	}
	root := t.root()
	t.hdr.left = leftmost(root)
	t.hdr.right = rightmost(root)
	t.logger.Debugw("kdtree: rebuilt unbalanced subtree", "elements", len(elems), "depth", depth)
	return nil
}
