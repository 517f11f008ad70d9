// Package kiddo provides an immutable k-d tree for exact radius search over
// fixed-dimension float32 point sets.
//
// A Tree is built once from a point set and is read-only afterwards. Because
// no code path mutates a Tree after New returns, any number of queries may
// run against it concurrently without locking.
//
// # Quick Start
//
//	tree, err := kiddo.New(2, [][]float32{
//		{0, 0},
//		{0, 3},
//		{4, 0},
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// All indexed points within radius 3.5 of each query point.
//	matches, _ := tree.WithinUnsorted([][]float32{{0, 0}}, 3.5)
//
//	// All pairs of indexed points within radius 5 of each other.
//	pairs, _ := tree.QueryPairs(5)
//
// # Parallel Queries
//
// Both query operations accept a per-call Parallel flag. When set, the
// workload is partitioned into contiguous chunks executed by a worker pool
// sized to the available CPUs (overridable via Workers):
//
//	matches, _ := tree.WithinUnsorted(queries, 3.5, func(o *kiddo.QueryOptions) {
//		o.Parallel = true
//	})
//
// Sequential and parallel runs of the same query return the same result set;
// only the row order may differ. Result rows are unordered in general.
package kiddo
