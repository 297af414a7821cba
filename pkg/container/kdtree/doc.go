// Package kdtree implements the k-d tree engine shared by every
// point/box set and map container in this module: Node layout,
// axis-cycling partitioning, a strict and a relaxed (self-rebalancing)
// variant, and the family of mapping, range, equal and neighbor
// iterators.
package kdtree
