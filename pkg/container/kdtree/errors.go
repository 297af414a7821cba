package kdtree

import "errors"

// ErrInvalidRank is returned when a dynamic-rank tree is constructed
// with a rank of 0.
var ErrInvalidRank = errors.New("kdtree: rank must be >= 1")

// ErrAllocFailed is returned when the configured Allocator cannot
// produce a Node. The tree is left structurally unchanged.
var ErrAllocFailed = errors.New("kdtree: Node allocation failed")

// errIteratorMisuse is only checked when built with the kdtree_debug
// build tag; see iterator_debug.go / iterator_nodebug.go.
var errIteratorMisuse = errors.New("kdtree: iterator misuse")
