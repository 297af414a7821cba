// Package metric provides kdtree.Metric[[]float64] implementations
// backed by the three distance functions the teacher's internal/geom
// package already computed for its outlier-detection pipeline
// (EuclideanDistance, ManhattanDistance, ChebyshevDistance) — reused
// here, unchanged in formula, as nearest-neighbor metrics for the
// indexing engine instead.
package metric

import (
	"math"

	"github.com/go-sod/kdindex/internal/geom"
)

// Euclidean is the L2 metric.
type Euclidean struct{}

// DistanceToKey delegates to geom.EuclideanDistance. The error that
// function can return (dimension mismatch) cannot occur here: both
// arguments come from the same tree's Rank, which fixes every key's
// length at construction.
func (Euclidean) DistanceToKey(query, key []float64) float64 {
	d, _ := geom.EuclideanDistance(query, key)
	return d
}

// DistanceToPlane lower-bounds the L2 distance to anything on the far
// side of the axis-th coordinate hyperplane: no point over there can
// be closer than the query's own offset from that single coordinate.
func (Euclidean) DistanceToPlane(axis int, query, splitKey []float64) float64 {
	return math.Abs(query[axis] - splitKey[axis])
}

// Manhattan is the L1 metric.
type Manhattan struct{}

func (Manhattan) DistanceToKey(query, key []float64) float64 {
	d, _ := geom.ManhattanDistance(query, key)
	return d
}

func (Manhattan) DistanceToPlane(axis int, query, splitKey []float64) float64 {
	return math.Abs(query[axis] - splitKey[axis])
}

// Chebyshev is the L∞ metric.
type Chebyshev struct{}

func (Chebyshev) DistanceToKey(query, key []float64) float64 {
	d, _ := geom.ChebyshevDistance(query, key)
	return d
}

func (Chebyshev) DistanceToPlane(axis int, query, splitKey []float64) float64 {
	return math.Abs(query[axis] - splitKey[axis])
}
