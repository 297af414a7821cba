// Command kdbench builds a k-d tree from either randomly generated or
// file-loaded points and runs a nearest-neighbor query, a range query
// and a concurrent Find pass against it, reporting timings through the
// shared structured logger.
// It replaces the teacher's cmd/sod / cmd/sod-srv service entry
// points, which have no reachable component once the outlier-detection
// service is replaced by an in-memory indexing library.
package main

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/go-sod/kdindex/internal/buildinfo"
	"github.com/go-sod/kdindex/internal/config"
	"github.com/go-sod/kdindex/internal/logging"
	"github.com/go-sod/kdindex/internal/metric"
	"github.com/go-sod/kdindex/internal/nodepool"
	"github.com/go-sod/kdindex/internal/randgen"
	"github.com/go-sod/kdindex/pkg/container/kdtree"
	"github.com/go-sod/kdindex/pkg/rworker"
)

func main() {
	zl, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer zl.Sync()
	log := zl.Sugar()
	ctx := logging.NewContext(context.Background(), log)

	if err := run(ctx); err != nil {
		log.Errorw("kdbench: fatal", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	log := logging.FromContext(ctx)
	log.Infow("kdbench: starting", "name", buildinfo.Info.Name(), "build", buildinfo.Info.Tag(), "built", buildinfo.Info.Time())

	cfg, err := config.Load(ctx)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	var points [][]float64
	dim := cfg.Dimension

	switch {
	case cfg.Scenario != "":
		sc, err := config.LoadScenario(cfg.Scenario)
		if err != nil {
			return fmt.Errorf("load scenario: %w", err)
		}
		cfg.PointCount, dim, cfg.Policy = sc.PointCount, sc.Dimension, sc.Policy
		points = randgen.New().Points(cfg.PointCount, dim, 1000)
	case cfg.Dataset != "":
		ds, err := config.LoadDataset(cfg.Dataset)
		if err != nil {
			return fmt.Errorf("load dataset: %w", err)
		}
		points = ds.Points
		if len(points) > 0 {
			dim = len(points[0])
		}
	default:
		points = randgen.New().Points(cfg.PointCount, dim, 1000)
	}

	rnk, err := kdtree.NewDynamic(dim)
	if err != nil {
		return fmt.Errorf("rank: %w", err)
	}
	less := func(axis int, a, b []float64) bool { return a[axis] < b[axis] }

	start := time.Now()
	var (
		lenFn   func() int
		query   func(q []float64, m kdtree.Metric[[]float64]) []kdtree.Element[[]float64, struct{}]
		ranger  func(lo, hi []float64) []kdtree.Element[[]float64, struct{}]
		concRun func(n int) error
	)

	switch cfg.Policy {
	case "strict":
		tree, err := kdtree.NewStrict[[]float64, struct{}](rnk, less, kdtree.WithAllocator[[]float64, struct{}](nodepool.New[[]float64, struct{}]()))
		if err != nil {
			return fmt.Errorf("new strict tree: %w", err)
		}
		for _, p := range points {
			if _, err := tree.Insert(p, struct{}{}); err != nil {
				return fmt.Errorf("insert: %w", err)
			}
		}
		lenFn = tree.Len
		query = func(q []float64, m kdtree.Metric[[]float64]) []kdtree.Element[[]float64, struct{}] {
			return kdtree.WalkNeighbor(tree.Neighbor(q, m), 5)
		}
		ranger = func(lo, hi []float64) []kdtree.Element[[]float64, struct{}] {
			return kdtree.WalkRange(tree.Range(lo, hi))
		}
		concRun = func(n int) error { return concurrentFind(tree.Find, points, n) }
	default:
		policy := kdtree.LoosePolicy()
		if cfg.Policy == "tight" {
			policy = kdtree.TightPolicy()
		}
		tree, err := kdtree.NewRelaxed[[]float64, struct{}](rnk, less, kdtree.WithPolicy[[]float64, struct{}](policy), kdtree.WithLogger[[]float64, struct{}](log))
		if err != nil {
			return fmt.Errorf("new relaxed tree: %w", err)
		}
		for _, p := range points {
			if _, err := tree.Insert(p, struct{}{}); err != nil {
				return fmt.Errorf("insert: %w", err)
			}
		}
		lenFn = tree.Len
		query = func(q []float64, m kdtree.Metric[[]float64]) []kdtree.Element[[]float64, struct{}] {
			return kdtree.WalkNeighbor(tree.Neighbor(q, m), 5)
		}
		ranger = func(lo, hi []float64) []kdtree.Element[[]float64, struct{}] {
			return kdtree.WalkRange(tree.Range(lo, hi))
		}
		concRun = func(n int) error { return concurrentFind(tree.Find, points, n) }
	}
	log.Infow("kdbench: loaded", "points", lenFn(), "dimension", dim, "policy", cfg.Policy, "elapsed", time.Since(start))

	if len(points) > 0 {
		nearest := query(points[0], metric.Euclidean{})
		log.Infow("kdbench: nearest neighbors", "query", points[0], "found", len(nearest))

		lo, hi := make([]float64, dim), make([]float64, dim)
		for i := range lo {
			hi[i] = 1000
		}
		inRange := ranger(lo, hi)
		log.Infow("kdbench: full-box range query", "found", len(inRange))
	}

	if err := concRun(16); err != nil {
		return fmt.Errorf("concurrent read pass: %w", err)
	}
	log.Infow("kdbench: done", "total_elapsed", time.Since(start))
	return nil
}

// concurrentFind exercises the "many concurrent readers over one
// unmodified tree" claim (spec.md §5) by hammering find across
// workers, using the teacher's rate-limited job-dispatch helper.
func concurrentFind(find func([]float64) kdtree.Iterator[[]float64, struct{}, kdtree.Dynamic], points [][]float64, workers int) error {
	if len(points) == 0 {
		return nil
	}
	var wg sync.WaitGroup
	rate := make(chan struct{}, workers)
	errCh := make(chan error, workers)
	for i := range points {
		p := points[i]
		rworker.Job(&wg, func() error {
			if !find(p).Valid() {
				return fmt.Errorf("point not found: %v", p)
			}
			return nil
		}, rate, errCh)
	}
	wg.Wait()
	select {
	case err := <-errCh:
		return err
	default:
		return nil
	}
}
