package kiddo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JER-ry/kiddo-go/resource"
	"github.com/JER-ry/kiddo-go/testutil"
)

func TestWithinUnsorted_ParallelEquivalence(t *testing.T) {
	rng := testutil.NewRNG(4711)
	points := rng.UniformPoints(500, 3)
	queries := rng.UniformPoints(64, 3)

	tree, err := New(3, points, func(o *Options) {
		o.LeafCapacity = 8
	})
	require.NoError(t, err)

	sequential, err := tree.WithinUnsorted(queries, 0.4)
	require.NoError(t, err)
	require.NotEmpty(t, sequential)

	for _, workers := range []int{0, 1, 2, 3, 16} {
		parallel, err := tree.WithinUnsorted(queries, 0.4, func(o *QueryOptions) {
			o.Parallel = true
			o.Workers = workers
		})
		require.NoError(t, err)

		// Same row set regardless of execution mode and worker count.
		assert.ElementsMatch(t, sequential, parallel, "workers=%d", workers)
	}
}

func TestQueryPairs_ParallelEquivalence(t *testing.T) {
	rng := testutil.NewRNG(42)
	points := rng.UniformPoints(300, 2)

	tree, err := New(2, points, func(o *Options) {
		o.LeafCapacity = 8
	})
	require.NoError(t, err)

	sequential, err := tree.QueryPairs(0.2)
	require.NoError(t, err)
	require.NotEmpty(t, sequential)

	for _, workers := range []int{0, 1, 2, 7, 32} {
		parallel, err := tree.QueryPairs(0.2, func(o *QueryOptions) {
			o.Parallel = true
			o.Workers = workers
		})
		require.NoError(t, err)

		assert.ElementsMatch(t, sequential, parallel, "workers=%d", workers)
	}
}

func TestParallel_MoreWorkersThanWork(t *testing.T) {
	rng := testutil.NewRNG(3)
	points := rng.UniformPoints(10, 2)
	queries := rng.UniformPoints(3, 2)

	tree, err := New(2, points)
	require.NoError(t, err)

	sequential, err := tree.WithinUnsorted(queries, 0.5)
	require.NoError(t, err)

	parallel, err := tree.WithinUnsorted(queries, 0.5, func(o *QueryOptions) {
		o.Parallel = true
		o.Workers = 64
	})
	require.NoError(t, err)

	assert.ElementsMatch(t, sequential, parallel)
}

func TestParallel_NoWork(t *testing.T) {
	tree, err := New(2, [][]float32{{0, 0}})
	require.NoError(t, err)

	matches, err := tree.WithinUnsorted(nil, 1, func(o *QueryOptions) {
		o.Parallel = true
	})
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestParallel_ResourceBudget(t *testing.T) {
	ctrl := resource.NewController(resource.Config{MaxQueryWorkers: 2})

	rng := testutil.NewRNG(9)
	points := rng.UniformPoints(200, 2)
	queries := rng.UniformPoints(40, 2)

	tree, err := New(2, points, func(o *Options) {
		o.Resource = ctrl
	})
	require.NoError(t, err)

	sequential, err := tree.WithinUnsorted(queries, 0.3)
	require.NoError(t, err)

	parallel, err := tree.WithinUnsorted(queries, 0.3, func(o *QueryOptions) {
		o.Parallel = true
		o.Workers = 8
	})
	require.NoError(t, err)

	assert.ElementsMatch(t, sequential, parallel)

	// All worker slots are returned after the call completes.
	assert.Equal(t, int64(0), ctrl.InFlight())
}

func TestParallel_ConcurrentQueries(t *testing.T) {
	rng := testutil.NewRNG(1)
	points := rng.UniformPoints(300, 3)
	queries := rng.UniformPoints(32, 3)

	tree, err := New(3, points)
	require.NoError(t, err)

	want, err := tree.WithinUnsorted(queries, 0.4)
	require.NoError(t, err)

	// A built tree is read-only, so independent queries may run against it
	// concurrently without coordination.
	done := make(chan []Match, 8)
	for i := 0; i < 8; i++ {
		go func() {
			got, err := tree.WithinUnsorted(queries, 0.4, func(o *QueryOptions) {
				o.Parallel = true
			})
			assert.NoError(t, err)
			done <- got
		}()
	}
	for i := 0; i < 8; i++ {
		assert.ElementsMatch(t, want, <-done)
	}
}
