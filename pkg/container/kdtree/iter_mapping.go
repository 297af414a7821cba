package kdtree

// MappingIterator walks every element in ascending order along one
// fixed axis (spec.md §4.5). Ties on that axis do not define a
// further order: callers comparing two results with equal axis values
// may observe either relative order, so the tie-break here (Node
// address) exists only to give Next/Prev a total order to agree on,
// never to promise anything to callers.
type MappingIterator[K, V any, R Rank] struct {
	t    *base[K, V, R]
	axis int
	pos  *Node[K, V]
}

func (it MappingIterator[K, V, R]) Valid() bool { return it.pos != &it.t.hdr }
func (it MappingIterator[K, V, R]) Key() K      { assertValid(it.Valid()); return it.pos.elem.Key }
func (it MappingIterator[K, V, R]) Value() V    { assertValid(it.Valid()); return it.pos.elem.Value }

func (it *MappingIterator[K, V, R]) Next() {
	it.pos = mappingStep(it.t, it.pos, it.axis, true)
}

func (it *MappingIterator[K, V, R]) Prev() {
	it.pos = mappingStep(it.t, it.pos, it.axis, false)
}

func mappingBegin[K, V any, R Rank](t *base[K, V, R], axis int) *Node[K, V] {
	root := t.root()
	if root == nil {
		return &t.hdr
	}
	return mappingExtreme(t, root, axis, true)
}

func mappingEnd[K, V any, R Rank](t *base[K, V, R], axis int) *Node[K, V] {
	return &t.hdr
}

// mappingExtreme finds the ascending-order-first (forward=true) or
// ascending-order-last (forward=false) Node of the subtree rooted at
// n, comparing only on axis and breaking ties toward the leftmost (or
// rightmost) candidate by address. This does not require knowing the
// split axis of any Node the descent passes through: every Node's key
// has a value on axis regardless of which axis it was split on, so a
// full, unpruned scan of the subtree is used (spec.md §4.5 — the
// mapping iterator cannot prune on the split structure the way range
// and equal can, since a single axis's ordering is not aligned with
// the tree's recursive partition).
func mappingExtreme[K, V any, R Rank](t *base[K, V, R], n *Node[K, V], axis int, forward bool) *Node[K, V] {
	best := n
	stack := []*Node[K, V]{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if betterMapping(t.less, axis, forward, cur, best) {
			best = cur
		}
		if cur.left != nil {
			stack = append(stack, cur.left)
		}
		if cur.right != nil {
			stack = append(stack, cur.right)
		}
	}
	return best
}

func betterMapping[K, V any](less Comparator[K], axis int, forward bool, a, b *Node[K, V]) bool {
	if forward {
		if less(axis, a.elem.Key, b.elem.Key) {
			return true
		}
		if less(axis, b.elem.Key, a.elem.Key) {
			return false
		}
		return uintptr(nodeAddr(a)) < uintptr(nodeAddr(b))
	}
	if less(axis, b.elem.Key, a.elem.Key) {
		return true
	}
	if less(axis, a.elem.Key, b.elem.Key) {
		return false
	}
	return uintptr(nodeAddr(a)) > uintptr(nodeAddr(b))
}

// mappingStep advances (forward) or retreats (!forward) from pos to
// the next distinct mapping-order position, scanning the whole tree
// each time. spec.md §4.5 describes the per-step algorithm as "check
// the current subtree's axis-min/max candidate against every ancestor
// on the way up, taking the closer of the two at each level" — a
// pruned walk equivalent in result to the full scan used here, which
// this package prefers for the same reason axisMin/axisMax in
// mutate.go were written as plain recursive axis search: a mapping
// order has no relationship to the tree's split structure, so pruning
// it correctly requires carrying the same per-axis bounds that the
// full scan computes implicitly.
func mappingStep[K, V any, R Rank](t *base[K, V, R], pos *Node[K, V], axis int, forward bool) *Node[K, V] {
	root := t.root()
	if root == nil {
		return &t.hdr
	}
	var result *Node[K, V]
	if pos == &t.hdr {
		if forward {
			return &t.hdr
		}
		return mappingExtreme(t, root, axis, false)
	}
	stack := []*Node[K, V]{root}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if isCloserMappingCandidate(t.less, axis, forward, pos, cur) {
			if result == nil || betterMapping(t.less, axis, forward, cur, result) {
				result = cur
			}
		}
		if cur.left != nil {
			stack = append(stack, cur.left)
		}
		if cur.right != nil {
			stack = append(stack, cur.right)
		}
	}
	if result == nil {
		return &t.hdr
	}
	return result
}

// isCloserMappingCandidate reports whether cur is strictly beyond pos
// in the requested direction (or tied on axis but ordered after pos by
// address), i.e. a legal next/prev candidate.
func isCloserMappingCandidate[K, V any](less Comparator[K], axis int, forward bool, pos, cur *Node[K, V]) bool {
	if cur == pos {
		return false
	}
	if forward {
		if less(axis, pos.elem.Key, cur.elem.Key) {
			return true
		}
		if less(axis, cur.elem.Key, pos.elem.Key) {
			return false
		}
		return uintptr(nodeAddr(cur)) > uintptr(nodeAddr(pos))
	}
	if less(axis, cur.elem.Key, pos.elem.Key) {
		return true
	}
	if less(axis, pos.elem.Key, cur.elem.Key) {
		return false
	}
	return uintptr(nodeAddr(cur)) < uintptr(nodeAddr(pos))
}
