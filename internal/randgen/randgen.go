// Package randgen generates pseudo-random point keys for benchmarks
// and bulk-load property tests, backed by valyala/fastrand (listed in
// the teacher's go.mod but unexercised in the retrieved slice).
package randgen

import "github.com/valyala/fastrand"

// Generator produces independent pseudo-random float64 coordinates.
// fastrand has no public seeding API — each Generator gets its own
// runtime-seeded fastrand.RNG, so reproducibility within this package
// means replaying the same Generator's sequence, not matching a
// sequence across process runs.
type Generator struct {
	rng fastrand.RNG
}

// New returns a ready-to-use Generator.
func New() *Generator { return &Generator{} }

// Float64 returns a pseudo-random value in [0, max).
func (g *Generator) Float64(max float64) float64 {
	return float64(g.rng.Uint32n(1<<24)) / float64(1<<24) * max
}

// Point returns a dim-dimensional point with every coordinate in
// [0, max).
func (g *Generator) Point(dim int, max float64) []float64 {
	p := make([]float64, dim)
	for i := range p {
		p[i] = g.Float64(max)
	}
	return p
}

// Points returns n independently generated dim-dimensional points.
func (g *Generator) Points(n, dim int, max float64) [][]float64 {
	out := make([][]float64, n)
	for i := range out {
		out[i] = g.Point(dim, max)
	}
	return out
}
