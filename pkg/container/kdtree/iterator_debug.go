//go:build kdtree_debug

package kdtree

// assertValid panics with errIteratorMisuse when built with the
// kdtree_debug tag and a caller dereferences an invalid iterator.
// Release builds (iterator_nodebug.go) skip the check entirely so
// Key/Value stay branch-free on the hot path.
func assertValid(valid bool) {
	if !valid {
		panic(errIteratorMisuse)
	}
}
