package kdtree

// EqualIterator enumerates, in pre-order, every element whose key is
// coordinate-equivalent to a model key (spec.md §4.7). It holds no
// cached traversal stack: every step recomputes the relevant prune
// decisions from the Node graph and the model, so the iterator's
// footprint stays O(1) between steps (forward and backward steps
// differ only in which side of each ancestor they re-check).
type EqualIterator[K, V any, R Rank] struct {
	t     *base[K, V, R]
	model K
	pos   *Node[K, V]
}

func (it EqualIterator[K, V, R]) Valid() bool { return it.pos != &it.t.hdr }
func (it EqualIterator[K, V, R]) Key() K      { assertValid(it.Valid()); return it.pos.elem.Key }
func (it EqualIterator[K, V, R]) Value() V    { assertValid(it.Valid()); return it.pos.elem.Value }

// Next advances to the next pre-order match, or to end() if it was
// the last.
func (it *EqualIterator[K, V, R]) Next() {
	it.pos = equalSuccessor(it.t, it.pos, it.model)
}

// Prev retreats to the previous pre-order match. From end() it finds
// the rightmost leaf of the equality-pruned spine, i.e. the last
// match in the whole tree.
func (it *EqualIterator[K, V, R]) Prev() {
	if it.pos == &it.t.hdr {
		root := it.t.root()
		if root == nil {
			return
		}
		if m := lastEqualInSubtree(it.t, root, 0, it.model); m != nil {
			it.pos = m
			return
		}
		it.pos = &it.t.hdr
		return
	}
	it.pos = equalPredecessor(it.t, it.pos, it.model)
}

// equalBegin returns the first pre-order match, or end() if none.
func equalBegin[K, V any, R Rank](t *base[K, V, R], model K) *Node[K, V] {
	root := t.root()
	if root == nil {
		return &t.hdr
	}
	if m := firstEqualInSubtree(t, root, 0, model); m != nil {
		return m
	}
	return &t.hdr
}

// firstEqualInSubtree finds the pre-order-first match within the
// subtree rooted at n (at the given depth), honoring equal-iterator
// pruning (spec.md §4.7). Iterative, with an explicit stack scoped to
// this call.
func firstEqualInSubtree[K, V any, R Rank](t *base[K, V, R], n *Node[K, V], depth int, model K) *Node[K, V] {
	type frame struct {
		n     *Node[K, V]
		depth int
	}
	stack := []frame{{n, depth}}
	k := t.rnk.Count()
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if equalKey(t.less, k, model, f.n.elem.Key) {
			return f.n
		}
		axis := t.rnk.AxisAt(f.depth)
		leftOK := pruneLeft(t.less, t.fl, axis, model, f.n.elem.Key)
		rightOK := pruneRight(t.less, axis, model, f.n.elem.Key)
		if rightOK && f.n.right != nil {
			stack = append(stack, frame{f.n.right, f.depth + 1})
		}
		if leftOK && f.n.left != nil {
			stack = append(stack, frame{f.n.left, f.depth + 1})
		}
	}
	return nil
}

// lastEqualInSubtree is the mirror of firstEqualInSubtree: the
// pre-order-last match within the subtree rooted at n. Right subtree
// is preferred over left since it is visited later in forward
// pre-order; the Node itself is the fallback since it is visited
// first.
func lastEqualInSubtree[K, V any, R Rank](t *base[K, V, R], n *Node[K, V], depth int, model K) *Node[K, V] {
	axis := t.rnk.AxisAt(depth)
	leftOK := pruneLeft(t.less, t.fl, axis, model, n.elem.Key)
	rightOK := pruneRight(t.less, axis, model, n.elem.Key)
	if rightOK && n.right != nil {
		if m := lastEqualInSubtree(t, n.right, depth+1, model); m != nil {
			return m
		}
	}
	if leftOK && n.left != nil {
		if m := lastEqualInSubtree(t, n.left, depth+1, model); m != nil {
			return m
		}
	}
	k := t.rnk.Count()
	if equalKey(t.less, k, model, n.elem.Key) {
		return n
	}
	return nil
}

// equalSuccessor computes the pre-order successor of n among matches
// of model: first n's own left then right subtree (pre-order descent
// from a Node visits itself, then left, then right — so descendants
// are always forward of n), then ascend looking for an unvisited
// right sibling subtree.
func equalSuccessor[K, V any, R Rank](t *base[K, V, R], n *Node[K, V], model K) *Node[K, V] {
	depth := depthOf(n, &t.hdr)
	axis := t.rnk.AxisAt(depth)
	if pruneLeft(t.less, t.fl, axis, model, n.elem.Key) && n.left != nil {
		if m := firstEqualInSubtree(t, n.left, depth+1, model); m != nil {
			return m
		}
	}
	if pruneRight(t.less, axis, model, n.elem.Key) && n.right != nil {
		if m := firstEqualInSubtree(t, n.right, depth+1, model); m != nil {
			return m
		}
	}
	cur := n
	p := cur.parent
	for p != &t.hdr {
		pd := depthOf(p, &t.hdr)
		paxis := t.rnk.AxisAt(pd)
		if cur == p.left && pruneRight(t.less, paxis, model, p.elem.Key) && p.right != nil {
			if m := firstEqualInSubtree(t, p.right, pd+1, model); m != nil {
				return m
			}
		}
		cur = p
		p = p.parent
	}
	return &t.hdr
}

// equalPredecessor computes the pre-order predecessor of n among
// matches of model: n's own subtree never contains a predecessor
// (those are all forward of n), so it walks up looking for an earlier
// sibling subtree or an ancestor that itself matches.
func equalPredecessor[K, V any, R Rank](t *base[K, V, R], n *Node[K, V], model K) *Node[K, V] {
	k := t.rnk.Count()
	cur := n
	p := cur.parent
	for p != &t.hdr {
		pd := depthOf(p, &t.hdr)
		paxis := t.rnk.AxisAt(pd)
		if cur == p.right {
			if pruneLeft(t.less, t.fl, paxis, model, p.elem.Key) && p.left != nil {
				if m := lastEqualInSubtree(t, p.left, pd+1, model); m != nil {
					return m
				}
			}
			if equalKey(t.less, k, model, p.elem.Key) {
				return p
			}
		} else { // cur == p.left
			if equalKey(t.less, k, model, p.elem.Key) {
				return p
			}
		}
		cur = p
		p = p.parent
	}
	return &t.hdr
}
