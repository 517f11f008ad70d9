package kiddo

import (
	"log/slog"
	"time"

	"github.com/JER-ry/kiddo-go/internal/math32"
)

// Pair is one self-join result row: two distinct point rows with A < B and
// the exact Euclidean distance between them.
type Pair struct {
	A        uint32
	B        uint32
	Distance float32
}

// QueryPairs returns every unordered pair of distinct indexed points whose
// Euclidean distance is at most radius, each reported exactly once with
// A < B. radius must be >= 0.
//
// Result rows are unordered; sequential and parallel runs return the same
// pair set.
func (t *Tree) QueryPairs(radius float32, optFns ...func(o *QueryOptions)) ([]Pair, error) {
	opts := t.queryOptions(optFns)

	start := time.Now()
	pairs, err := t.queryPairs(radius, opts)
	t.metrics.RecordPairs(len(pairs), time.Since(start), err)
	if err != nil {
		return nil, err
	}

	t.logger.Debug("pair query complete",
		slog.Int("pairs", len(pairs)),
		slog.Bool("parallel", opts.Parallel),
	)

	return pairs, nil
}

func (t *Tree) queryPairs(radius float32, opts QueryOptions) ([]Pair, error) {
	if err := t.validateRadius(radius); err != nil {
		return nil, err
	}

	r2 := radius * radius

	// For each point i, a radius search restricted to candidates with row
	// index > i reports every in-radius pair exactly once: the floor filter
	// drops both self pairs and reversed duplicates.
	collect := func(lo, hi int, out *[]Pair) {
		for i := lo; i < hi; i++ {
			t.search(t.Point(i), r2, int32(i), func(p int32, d2 float32) {
				*out = append(*out, Pair{
					A:        uint32(i),
					B:        uint32(p),
					Distance: math32.Sqrt(d2),
				})
			})
		}
	}

	if !opts.Parallel {
		var out []Pair
		collect(0, t.size, &out)
		return out, nil
	}

	return runChunked(t.size, opts, t.controller, collect)
}
