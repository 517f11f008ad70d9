package kiddo

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/JER-ry/kiddo-go/resource"
)

// runChunked fans a workload of n items out over contiguous chunks. Each
// chunk fills a private buffer while only reading the shared tree, so no
// synchronization is needed beyond the final join. Buffers are concatenated
// in chunk order, which keeps the merge deterministic for a fixed worker
// count.
//
// If any worker fails, the whole call aborts and the first observed error is
// returned instead of a partial result set.
func runChunked[R any](n int, opts QueryOptions, ctrl *resource.Controller, fn func(lo, hi int, out *[]R)) ([]R, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	chunkSize := n / workers
	if chunkSize < 1 {
		chunkSize = 1
	}
	numChunks := (n + chunkSize - 1) / chunkSize

	buffers := make([][]R, numChunks)

	ctx := context.Background()

	var g errgroup.Group
	g.SetLimit(workers)

	for c := 0; c < numChunks; c++ {
		lo := c * chunkSize
		hi := min(lo+chunkSize, n)
		buf := &buffers[c]

		g.Go(func() error {
			if err := ctrl.AcquireWorker(ctx); err != nil {
				return err
			}
			defer ctrl.ReleaseWorker()

			fn(lo, hi, buf)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var total int
	for _, buf := range buffers {
		total += len(buf)
	}
	out := make([]R, 0, total)
	for _, buf := range buffers {
		out = append(out, buf...)
	}
	return out, nil
}
