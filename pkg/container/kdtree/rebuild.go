/*
 * Copyright 2020 Dennis Kuhnert
 * Copyright 2020 Ivanov Nikita
 *
 *    Licensed under the Apache License, Version 2.0 (the "License");
 *    you may not use this file except in compliance with the License.
 *    You may obtain a copy of the License at
 *
 *        http://www.apache.org/licenses/LICENSE-2.0
 *
 *    Unless required by applicable law or agreed to in writing, software
 *    distributed under the License is distributed on an "AS IS" BASIS,
 *    WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *    See the License for the specific language governing permissions and
 *    limitations under the License.
 */
package kdtree

import "sort"

// rebuildJob describes one pending median-split step: build a subtree
// from elems[lo:hi], attach it under parent (on the left or right),
// at the given depth.
type rebuildJob[K, V any] struct {
	lo, hi int
	parent *Node[K, V]
	left   bool
	depth  int
}

// rebuildFromElements builds a balanced subtree from elems by
// repeated median-split — sorting each level's slice along its split
// axis and picking the middle element as that level's root, mirroring
// the teacher's buildTreeRecursive (pkg/container/kdtree/tree.go) —
// generalized to an explicit work stack instead of recursion, per the
// design note in spec.md §9 against unbounded recursion depth on
// trees with millions of nodes. elems is reordered in place.
//
// weight is set on every built Node from its job's element span, so
// the relaxed tree's weight invariant holds immediately with no
// separate bottom-up pass.
//
// Under the strict flavor, a plain middle-index split can hand an
// element tying the chosen root on axis to the left span, violating
// the strict invariant (left descendants strictly less, spec.md §3) —
// duplicates are explicitly permitted, so this is reachable any time a
// strict tree holding ties calls Rebuild (a strict tree never
// rebalances, so Rebuild is its only path here). mid
// is backed up to the start of its equal-on-axis run first, so every
// element left of it is strictly less and every tie lands in the right
// span instead (where the invariant only requires >=); the relaxed
// flavor's ties-either-side rule (pruneLeft) is untouched.
//
// If the allocator fails partway through, every Node built so far is
// freed and the error is returned; the caller never observes (or
// links) a partially built tree.
func rebuildFromElements[K, V any](less Comparator[K], rnk Rank, alloc Allocator[K, V], fl flavor, elems []Element[K, V], startDepth int) (*Node[K, V], error) {
	if len(elems) == 0 {
		return nil, nil
	}
	var root *Node[K, V]
	built := make([]*Node[K, V], 0, len(elems))
	stack := []rebuildJob[K, V]{{lo: 0, hi: len(elems), depth: startDepth}}
	for len(stack) > 0 {
		job := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if job.lo >= job.hi {
			continue
		}

		axis := rnk.AxisAt(job.depth)
		seg := elems[job.lo:job.hi]
		sort.Slice(seg, func(i, j int) bool { return less(axis, seg[i].Key, seg[j].Key) })
		mid := job.lo + (job.hi-job.lo)/2
		if fl == strictFlavor {
			// Equal-on-axis keys sort together; back mid up to the
			// start of that run so every element left of it is
			// strictly less, never tied, on axis.
			medianKey := elems[mid].Key
			for mid > job.lo && !less(axis, elems[mid-1].Key, medianKey) && !less(axis, medianKey, elems[mid-1].Key) {
				mid--
			}
		}

		n, err := alloc.Alloc()
		if err != nil {
			for _, b := range built {
				alloc.Free(b)
			}
			return nil, err
		}
		built = append(built, n)
		n.elem = elems[mid]
		n.left, n.right = nil, nil
		n.weight = uint32(job.hi - job.lo)

		if job.parent == nil {
			root = n
		} else {
			n.parent = job.parent
			if job.left {
				job.parent.left = n
			} else {
				job.parent.right = n
			}
		}

		stack = append(stack,
			rebuildJob[K, V]{lo: job.lo, hi: mid, parent: n, left: true, depth: job.depth + 1},
			rebuildJob[K, V]{lo: mid + 1, hi: job.hi, parent: n, left: false, depth: job.depth + 1},
		)
	}
	return root, nil
}

// collectSubtree gathers every element of the subtree rooted at n, in
// no particular order, using an explicit stack.
func collectSubtree[K, V any](n *Node[K, V]) []Element[K, V] {
	if n == nil {
		return nil
	}
	var out []Element[K, V]
	stack := []*Node[K, V]{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, cur.elem)
		if cur.left != nil {
			stack = append(stack, cur.left)
		}
		if cur.right != nil {
			stack = append(stack, cur.right)
		}
	}
	return out
}
