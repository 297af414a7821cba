//go:build !kdtree_debug

package kdtree

func assertValid(bool) {}
