package kdtree

// RangeIterator enumerates, in in-order, every element whose key lies
// inside the orthogonal box [lower, upper] on every axis (spec.md
// §4.6). Like EqualIterator it keeps no cached stack between steps;
// each step re-derives its prune decisions from the Node graph.
type RangeIterator[K, V any, R Rank] struct {
	t           *base[K, V, R]
	lower, upper K
	pos         *Node[K, V]
}

func (it RangeIterator[K, V, R]) Valid() bool { return it.pos != &it.t.hdr }
func (it RangeIterator[K, V, R]) Key() K      { assertValid(it.Valid()); return it.pos.elem.Key }
func (it RangeIterator[K, V, R]) Value() V    { assertValid(it.Valid()); return it.pos.elem.Value }

func (it *RangeIterator[K, V, R]) Next() {
	it.pos = rangeSuccessor(it.t, it.pos, it.lower, it.upper)
}

func (it *RangeIterator[K, V, R]) Prev() {
	if it.pos == &it.t.hdr {
		root := it.t.root()
		if root == nil {
			return
		}
		if m := lastInRange(it.t, root, 0, it.lower, it.upper); m != nil {
			it.pos = m
			return
		}
		it.pos = &it.t.hdr
		return
	}
	it.pos = rangePredecessor(it.t, it.pos, it.lower, it.upper)
}

func rangeBegin[K, V any, R Rank](t *base[K, V, R], lower, upper K) *Node[K, V] {
	root := t.root()
	if root == nil {
		return &t.hdr
	}
	if m := firstInRange(t, root, 0, lower, upper); m != nil {
		return m
	}
	return &t.hdr
}

// inRangeKey reports whether key lies inside [lower, upper] on every
// axis (spec.md §3's "contains(key)" predicate, specialized to an
// orthogonal box).
func inRangeKey[K any](less Comparator[K], k int, lower, upper, key K) bool {
	for axis := 0; axis < k; axis++ {
		if less(axis, key, lower) || less(axis, upper, key) {
			return false
		}
	}
	return true
}

// firstInRange performs a pruned in-order descent to the first
// matching Node within the subtree rooted at n (given depth).
func firstInRange[K, V any, R Rank](t *base[K, V, R], n *Node[K, V], depth int, lower, upper K) *Node[K, V] {
	type frame struct {
		n     *Node[K, V]
		depth int
	}
	var stack []frame
	cur, curDepth := n, depth
	k := t.rnk.Count()
	for cur != nil || len(stack) > 0 {
		for cur != nil {
			axis := t.rnk.AxisAt(curDepth)
			stack = append(stack, frame{cur, curDepth})
			if pruneLeft(t.less, t.fl, axis, lower, cur.elem.Key) && cur.left != nil {
				cur, curDepth = cur.left, curDepth+1
			} else {
				cur = nil
			}
		}
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if inRangeKey(t.less, k, lower, upper, f.n.elem.Key) {
			return f.n
		}
		axis := t.rnk.AxisAt(f.depth)
		if pruneRight(t.less, axis, upper, f.n.elem.Key) && f.n.right != nil {
			cur, curDepth = f.n.right, f.depth+1
		}
	}
	return nil
}

// lastInRange is the mirror of firstInRange: the in-order-last match
// within the subtree rooted at n.
func lastInRange[K, V any, R Rank](t *base[K, V, R], n *Node[K, V], depth int, lower, upper K) *Node[K, V] {
	type frame struct {
		n     *Node[K, V]
		depth int
	}
	var stack []frame
	cur, curDepth := n, depth
	k := t.rnk.Count()
	for cur != nil || len(stack) > 0 {
		for cur != nil {
			axis := t.rnk.AxisAt(curDepth)
			stack = append(stack, frame{cur, curDepth})
			if pruneRight(t.less, axis, upper, cur.elem.Key) && cur.right != nil {
				cur, curDepth = cur.right, curDepth+1
			} else {
				cur = nil
			}
		}
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if inRangeKey(t.less, k, lower, upper, f.n.elem.Key) {
			return f.n
		}
		axis := t.rnk.AxisAt(f.depth)
		if pruneLeft(t.less, t.fl, axis, lower, f.n.elem.Key) && f.n.left != nil {
			cur, curDepth = f.n.left, f.depth+1
		}
	}
	return nil
}

func rangeSuccessor[K, V any, R Rank](t *base[K, V, R], n *Node[K, V], lower, upper K) *Node[K, V] {
	k := t.rnk.Count()
	depth := depthOf(n, &t.hdr)
	axis := t.rnk.AxisAt(depth)
	if pruneRight(t.less, axis, upper, n.elem.Key) && n.right != nil {
		if m := firstInRange(t, n.right, depth+1, lower, upper); m != nil {
			return m
		}
	}
	cur, p := n, n.parent
	for p != &t.hdr {
		pd := depthOf(p, &t.hdr)
		if cur == p.left {
			if inRangeKey(t.less, k, lower, upper, p.elem.Key) {
				return p
			}
			paxis := t.rnk.AxisAt(pd)
			if pruneRight(t.less, paxis, upper, p.elem.Key) && p.right != nil {
				if m := firstInRange(t, p.right, pd+1, lower, upper); m != nil {
					return m
				}
			}
		}
		cur, p = p, p.parent
	}
	return &t.hdr
}

func rangePredecessor[K, V any, R Rank](t *base[K, V, R], n *Node[K, V], lower, upper K) *Node[K, V] {
	k := t.rnk.Count()
	depth := depthOf(n, &t.hdr)
	axis := t.rnk.AxisAt(depth)
	if pruneLeft(t.less, t.fl, axis, lower, n.elem.Key) && n.left != nil {
		if m := lastInRange(t, n.left, depth+1, lower, upper); m != nil {
			return m
		}
	}
	cur, p := n, n.parent
	for p != &t.hdr {
		pd := depthOf(p, &t.hdr)
		if cur == p.right {
			if inRangeKey(t.less, k, lower, upper, p.elem.Key) {
				return p
			}
			paxis := t.rnk.AxisAt(pd)
			if pruneLeft(t.less, t.fl, paxis, lower, p.elem.Key) && p.left != nil {
				if m := lastInRange(t, p.left, pd+1, lower, upper); m != nil {
					return m
				}
			}
		}
		cur, p = p, p.parent
	}
	return &t.hdr
}
