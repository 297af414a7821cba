package kdtree

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
)

// less2D orders []float64 points by the given axis.
func less2D(axis int, a, b []float64) bool { return a[axis] < b[axis] }

// checkInvariants walks every node of the tree verifying parent
// pointers, size, and the partition invariant appropriate to fl. It
// dumps the whole node graph via go-spew before failing, so a broken
// invariant is debuggable from the test log alone.
func checkInvariants[V any](t *testing.T, tr *base[[]float64, V, Dynamic]) {
	t.Helper()
	root := tr.root()
	count := 0
	var walk func(n *Node[[]float64, V], depth int)
	walk = func(n *Node[[]float64, V], depth int) {
		if n == nil {
			return
		}
		count++
		axis := tr.rnk.AxisAt(depth)
		if n.left != nil {
			if n.left.parent != n {
				t.Fatalf("left child parent mismatch at depth %d\n%s", depth, spew.Sdump(n))
			}
			ok := less2D(axis, n.left.elem.Key, n.elem.Key) || (tr.fl == relaxedFlavor && !less2D(axis, n.elem.Key, n.left.elem.Key))
			if !ok {
				t.Fatalf("left partition invariant violated at depth %d\n%s", depth, spew.Sdump(n))
			}
		}
		if n.right != nil {
			if n.right.parent != n {
				t.Fatalf("right child parent mismatch at depth %d\n%s", depth, spew.Sdump(n))
			}
			if less2D(axis, n.right.elem.Key, n.elem.Key) {
				t.Fatalf("right partition invariant violated at depth %d\n%s", depth, spew.Sdump(n))
			}
		}
		if want := 1 + weightOf(n.left) + weightOf(n.right); weightOf(n) != want {
			t.Fatalf("weight invariant violated at depth %d: weight=%d, want 1+left(%d)+right(%d)=%d\n%s",
				depth, weightOf(n), weightOf(n.left), weightOf(n.right), want, spew.Sdump(n))
		}
		walk(n.left, depth+1)
		walk(n.right, depth+1)
	}
	walk(root, 0)
	if count != tr.size() {
		t.Fatalf("node count %d does not match size %d", count, tr.size())
	}
}
