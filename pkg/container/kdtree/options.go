package kdtree

// config collects the constructor-time collaborators shared by
// StrictTree and RelaxedTree, built up by Option values (the
// teacher's ubiquitous functional-options idiom, see e.g.
// internal/predictor/knn's Option func(*config)).
type config[K, V any] struct {
	alloc  Allocator[K, V]
	logger rebuildLogger
	policy BalancePolicy
}

func defaultConfig[K, V any]() config[K, V] {
	return config[K, V]{
		alloc:  newHeapAllocator[K, V](),
		logger: nopLogger{},
		policy: LoosePolicy(),
	}
}

// Option configures a StrictTree or RelaxedTree at construction time.
type Option[K, V any] func(*config[K, V])

// WithAllocator overrides the default heap allocator, e.g. with
// internal/nodepool's sync.Pool-backed one for high-churn workloads.
func WithAllocator[K, V any](alloc Allocator[K, V]) Option[K, V] {
	return func(c *config[K, V]) { c.alloc = alloc }
}

// WithLogger attaches a structured logger that receives a debug-level
// entry whenever the relaxed tree triggers a subtree rebuild. It has
// no effect on a StrictTree.
func WithLogger[K, V any](l rebuildLogger) Option[K, V] {
	return func(c *config[K, V]) { c.logger = l }
}

// WithPolicy selects the relaxed tree's balancing discipline (default
// LoosePolicy). It has no effect on a StrictTree.
func WithPolicy[K, V any](p BalancePolicy) Option[K, V] {
	return func(c *config[K, V]) { c.policy = p }
}

// rebuildLogger matches the subset of zap's SugaredLogger this package
// needs, so callers can pass *zap.SugaredLogger directly without this
// package importing zap.
type rebuildLogger interface {
	Debugw(msg string, keysAndValues ...interface{})
}

type nopLogger struct{}

func (nopLogger) Debugw(string, ...interface{}) {}
