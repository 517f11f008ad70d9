package kiddo

import (
	"log/slog"
	"sort"
	"time"

	"github.com/JER-ry/kiddo-go/internal/math32"
)

// New builds an immutable k-d tree over the given points. Every row must
// have exactly dimension finite coordinates. The point data is copied, so
// the caller may reuse the input after New returns.
//
// Construction is single-threaded and atomic: either a fully built Tree is
// returned, or an error and no Tree. Two calls over the same point sequence
// build identical trees.
func New(dimension int, points [][]float32, optFns ...func(o *Options)) (*Tree, error) {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.LeafCapacity < 1 {
		opts.LeafCapacity = DefaultOptions.LeafCapacity
	}
	if opts.Logger == nil {
		opts.Logger = NoopLogger()
	}
	if opts.Metrics == nil {
		opts.Metrics = NoopMetricsCollector{}
	}

	start := time.Now()
	t, err := build(dimension, points, opts)
	opts.Metrics.RecordBuild(len(points), time.Since(start), err)
	if err != nil {
		return nil, err
	}

	opts.Logger.Debug("tree built",
		slog.Int("points", t.size),
		slog.Int("dimensions", t.dims),
		slog.Int("nodes", len(t.nodes)),
		slog.Int("leaf_capacity", t.leafCapacity),
	)

	return t, nil
}

func build(dimension int, points [][]float32, opts Options) (*Tree, error) {
	if dimension < 1 {
		return nil, &ErrInvalidDimension{Dimension: dimension}
	}
	if len(points) == 0 {
		return nil, ErrEmptyInput
	}
	for i, p := range points {
		if len(p) != dimension {
			return nil, &ErrDimensionMismatch{Expected: dimension, Actual: len(p), Row: i}
		}
		for j, c := range p {
			if !math32.IsFinite(c) {
				return nil, &ErrNonFiniteCoordinate{Row: i, Dim: j, Value: c}
			}
		}
	}

	n := len(points)
	t := &Tree{
		points:       make([]float32, 0, n*dimension),
		perm:         make([]int32, n),
		dims:         dimension,
		size:         n,
		leafCapacity: opts.LeafCapacity,
		logger:       opts.Logger,
		metrics:      opts.Metrics,
		controller:   opts.Resource,
	}
	for _, p := range points {
		t.points = append(t.points, p...)
	}
	for i := range t.perm {
		t.perm[i] = int32(i)
	}

	// Splitting at the exact median position bounds the arena at
	// 2*ceil(n/leafCapacity) nodes.
	leaves := (n + opts.LeafCapacity - 1) / opts.LeafCapacity
	t.nodes = make([]node, 0, 2*leaves)
	t.buildNode(0, n)

	return t, nil
}

// buildNode partitions perm[start:end), appends the resulting subtree to the
// arena and returns its arena index.
func (t *Tree) buildNode(start, end int) int32 {
	id := int32(len(t.nodes))
	t.nodes = append(t.nodes, node{})

	count := end - start
	if count <= t.leafCapacity {
		t.nodes[id] = node{leaf: true, start: int32(start), end: int32(end)}
		return id
	}

	dim := t.widestDimension(start, end)

	// Sorting by (coordinate, original row) before taking the median makes
	// the build deterministic: equal coordinates always order by input row.
	sub := t.perm[start:end]
	sort.Slice(sub, func(a, b int) bool {
		ca := t.points[int(sub[a])*t.dims+dim]
		cb := t.points[int(sub[b])*t.dims+dim]
		if ca != cb {
			return ca < cb
		}
		return sub[a] < sub[b]
	})

	mid := start + count/2
	splitVal := t.points[int(t.perm[mid])*t.dims+dim]

	// The low side holds coordinates <= splitVal and the high side
	// coordinates >= splitVal, which is the invariant hyperplane pruning
	// relies on. Rows equal to splitVal may land on either side.
	left := t.buildNode(start, mid)
	right := t.buildNode(mid, end)

	// Re-index instead of holding a *node across recursion: the arena may
	// have been moved by append.
	t.nodes[id] = node{
		splitDim: int32(dim),
		splitVal: splitVal,
		left:     left,
		right:    right,
	}
	return id
}

// widestDimension returns the dimension with the largest coordinate spread
// over perm[start:end). Splitting the widest dimension keeps cell extents
// balanced, which tightens hyperplane pruning during search.
func (t *Tree) widestDimension(start, end int) int {
	lo := make([]float32, t.dims)
	hi := make([]float32, t.dims)
	copy(lo, t.Point(int(t.perm[start])))
	copy(hi, lo)

	for i := start + 1; i < end; i++ {
		p := t.Point(int(t.perm[i]))
		for d, c := range p {
			if c < lo[d] {
				lo[d] = c
			}
			if c > hi[d] {
				hi[d] = c
			}
		}
	}

	best := 0
	bestSpread := float32(-1)
	for d := 0; d < t.dims; d++ {
		if spread := hi[d] - lo[d]; spread > bestSpread {
			bestSpread = spread
			best = d
		}
	}
	return best
}
