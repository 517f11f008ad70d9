package kiddo

import (
	"github.com/JER-ry/kiddo-go/resource"
)

// Options contains configuration options for tree construction.
type Options struct {
	// LeafCapacity is the maximum number of points a leaf may hold before
	// the builder splits further. It must be >= 1.
	LeafCapacity int

	// Logger receives structured build and query diagnostics.
	// Defaults to a noop logger.
	Logger *Logger

	// Metrics receives operational metrics for build and query calls.
	// Defaults to NoopMetricsCollector.
	Metrics MetricsCollector

	// Resource budgets query workers across simultaneous parallel calls
	// sharing the same controller. nil means unbudgeted.
	Resource *resource.Controller
}

// DefaultOptions contains the default configuration options for tree
// construction.
var DefaultOptions = Options{
	LeafCapacity: 32,
}

// QueryOptions contains per-call configuration for WithinUnsorted and
// QueryPairs.
type QueryOptions struct {
	// Parallel selects the execution mode:
	//   - false: single-threaded traversal (default)
	//   - true:  worker-pool execution over contiguous chunks
	Parallel bool

	// Workers is the worker-pool size when Parallel is set.
	// If <= 0, it defaults to runtime.NumCPU().
	Workers int
}

// DefaultQueryOptions contains the default per-call query configuration.
var DefaultQueryOptions = QueryOptions{
	Parallel: false,
	Workers:  0, // resolved to runtime.NumCPU() at call time
}

func (t *Tree) queryOptions(optFns []func(o *QueryOptions)) QueryOptions {
	opts := DefaultQueryOptions
	for _, fn := range optFns {
		fn(&opts)
	}
	return opts
}
