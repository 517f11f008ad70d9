package kiddo

import (
	"log/slog"
	"time"

	"github.com/JER-ry/kiddo-go/internal/math32"
)

// Match is one range-query result row: a query row, a matched point row and
// the exact Euclidean distance between them.
type Match struct {
	Query    uint32
	Point    uint32
	Distance float32
}

// WithinUnsorted returns every (query, point) pair whose Euclidean distance
// is at most radius. Every query row must have exactly Dimensions() finite
// coordinates and radius must be >= 0.
//
// Result rows are unordered; the only ordering guarantee is that rows are
// concatenated per query chunk in chunk order. Sequential and parallel runs
// return the same result set.
func (t *Tree) WithinUnsorted(queries [][]float32, radius float32, optFns ...func(o *QueryOptions)) ([]Match, error) {
	opts := t.queryOptions(optFns)

	start := time.Now()
	matches, err := t.withinUnsorted(queries, radius, opts)
	t.metrics.RecordWithin(len(queries), len(matches), time.Since(start), err)
	if err != nil {
		return nil, err
	}

	t.logger.Debug("range query complete",
		slog.Int("queries", len(queries)),
		slog.Int("matches", len(matches)),
		slog.Bool("parallel", opts.Parallel),
	)

	return matches, nil
}

func (t *Tree) withinUnsorted(queries [][]float32, radius float32, opts QueryOptions) ([]Match, error) {
	if err := t.validateRadius(radius); err != nil {
		return nil, err
	}
	for i, q := range queries {
		if len(q) != t.dims {
			return nil, &ErrDimensionMismatch{Expected: t.dims, Actual: len(q), Row: i}
		}
		for j, c := range q {
			if !math32.IsFinite(c) {
				return nil, &ErrNonFiniteCoordinate{Row: i, Dim: j, Value: c}
			}
		}
	}

	r2 := radius * radius

	collect := func(lo, hi int, out *[]Match) {
		for qi := lo; qi < hi; qi++ {
			q := queries[qi]
			t.search(q, r2, -1, func(p int32, d2 float32) {
				*out = append(*out, Match{
					Query:    uint32(qi),
					Point:    uint32(p),
					Distance: math32.Sqrt(d2),
				})
			})
		}
	}

	if !opts.Parallel {
		var out []Match
		collect(0, len(queries), &out)
		return out, nil
	}

	return runChunked(len(queries), opts, t.controller, collect)
}
