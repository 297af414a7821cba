package kdtree

// depthOf walks up from n to the root, counting edges, so its split
// axis (depth mod rank) can be recovered without storing it in the
// Node (per the data model in spec.md §3).
func depthOf[K, V any](n, hdr *Node[K, V]) int {
	d := 0
	for n.parent != hdr {
		n = n.parent
		d++
	}
	return d
}

// axisMin returns the Node minimizing Key on axis t within the
// subtree rooted at n (at the given depth), mirroring the in-order
// minimum subroutine of spec.md §4.3: the left subtree is always
// searched; the right subtree only when the Node's own split axis
// differs from t.
func axisMin[K, V any](less Comparator[K], rnk Rank, n *Node[K, V], depth, t int) *Node[K, V] {
	if n == nil {
		return nil
	}
	best := n
	a := rnk.AxisAt(depth)
	if l := axisMin(less, rnk, n.left, depth+1, t); l != nil && less(t, l.elem.Key, best.elem.Key) {
		best = l
	}
	if a != t {
		if r := axisMin(less, rnk, n.right, depth+1, t); r != nil && less(t, r.elem.Key, best.elem.Key) {
			best = r
		}
	}
	return best
}

// axisMax is the mirror of axisMin: the right subtree is always
// searched, the left subtree only when the split axis differs from t.
func axisMax[K, V any](less Comparator[K], rnk Rank, n *Node[K, V], depth, t int) *Node[K, V] {
	if n == nil {
		return nil
	}
	best := n
	a := rnk.AxisAt(depth)
	if r := axisMax(less, rnk, n.right, depth+1, t); r != nil && less(t, best.elem.Key, r.elem.Key) {
		best = r
	}
	if a != t {
		if l := axisMax(less, rnk, n.left, depth+1, t); l != nil && less(t, best.elem.Key, l.elem.Key) {
			best = l
		}
	}
	return best
}

// locateInsert descends from the root comparing x on the split axis
// at each depth (spec.md §4.3 step 1) and returns the slot a new Node
// for x should be attached to. parent is nil when the tree is empty.
func (t *base[K, V, R]) locateInsert(x K) (parent *Node[K, V], toLeft bool, depth int) {
	cur := t.root()
	if cur == nil {
		return nil, false, 0
	}
	d := 0
	for {
		axis := t.rnk.AxisAt(d)
		if t.less(axis, x, cur.elem.Key) {
			if cur.left == nil {
				return cur, true, d + 1
			}
			cur = cur.left
		} else {
			if cur.right == nil {
				return cur, false, d + 1
			}
			cur = cur.right
		}
		d++
	}
}

// attach links a freshly reserved Node n carrying elem into the slot
// found by locateInsert, updating the header's leftmost/rightmost
// cursors in O(1) when n becomes the new structural extremum.
func (t *base[K, V, R]) attach(n *Node[K, V], elem Element[K, V], parent *Node[K, V], toLeft bool) {
	n.elem = elem
	n.left, n.right = nil, nil
	if parent == nil {
		n.parent = &t.hdr
		t.hdr.parent = n
		t.hdr.left = n
		t.hdr.right = n
		t.sz++
		return
	}
	n.parent = parent
	if toLeft {
		parent.left = n
		if parent == t.hdr.left {
			t.hdr.left = n
		}
	} else {
		parent.right = n
		if parent == t.hdr.right {
			t.hdr.right = n
		}
	}
	t.sz++
}

// detach unlinks the leaf n (n must have no children) from its
// parent, updating the header's leftmost/rightmost cursors in O(1)
// using the fact that a detached structural extremum's replacement is
// always its former parent.
func (t *base[K, V, R]) detach(n *Node[K, V]) {
	if n == t.hdr.left {
		t.hdr.left = n.parent
	}
	if n == t.hdr.right {
		t.hdr.right = n.parent
	}
	p := n.parent
	if p == &t.hdr {
		t.hdr.parent = &t.hdr
	} else if p.left == n {
		p.left = nil
	} else {
		p.right = nil
	}
	t.sz--
}

// chaseAndDetach implements spec.md §4.3 erase steps 1-3: it replaces
// n's element with the axis-appropriate successor/predecessor,
// recursing (expressed as an explicit loop, since the recursion is
// tail-only) on the displaced Node's original slot until a leaf is
// reached, then detaches that leaf. It returns the leaf that was
// actually unlinked — relaxed.go uses this to know which ancestor
// path lost weight.
func (t *base[K, V, R]) chaseAndDetach(n *Node[K, V]) (unlinked *Node[K, V]) {
	depth := depthOf(n, &t.hdr)
	for {
		axis := t.rnk.AxisAt(depth)
		switch {
		case n.right != nil:
			succ := axisMin(t.less, t.rnk, n.right, depth+1, axis)
			n.elem = succ.elem
			n = succ
			depth = depthOf(n, &t.hdr)
		case n.left != nil:
			pred := axisMax(t.less, t.rnk, n.left, depth+1, axis)
			n.elem = pred.elem
			n = pred
			depth = depthOf(n, &t.hdr)
		default:
			t.detach(n)
			return n
		}
	}
}
