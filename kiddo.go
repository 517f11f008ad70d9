package kiddo

import (
	"github.com/JER-ry/kiddo-go/internal/math32"
	"github.com/JER-ry/kiddo-go/resource"
)

// Tree is an immutable k-d tree over a fixed-dimension float32 point set.
//
// A Tree is created by New and never mutated afterwards. Queries only read
// the point store and the node arena, so any number of queries (sequential
// or parallel) may run concurrently against the same Tree without locking.
type Tree struct {
	points []float32 // flat row-major point store (size * dims)
	perm   []int32   // tree order -> original row index
	nodes  []node    // node arena, root at index 0
	dims   int
	size   int

	leafCapacity int
	logger       *Logger
	metrics      MetricsCollector
	controller   *resource.Controller
}

// Size returns the number of indexed points.
func (t *Tree) Size() int { return t.size }

// Dimensions returns the point dimensionality.
func (t *Tree) Dimensions() int { return t.dims }

// Point returns the point at the given row index. The returned slice aliases
// the tree's internal storage and must not be modified.
func (t *Tree) Point(i int) []float32 {
	lo := i * t.dims
	hi := lo + t.dims
	return t.points[lo:hi:hi]
}

// search emits every indexed point within the squared radius of q, found by
// branch-and-bound traversal from the root. At an internal node the side of
// the splitting hyperplane holding q is visited first; the far side is
// visited only when the squared hyperplane distance does not exceed r2,
// since the far region may still hold in-radius points up to that bound.
//
// Points with row index <= floor are skipped at the leaves; pass floor = -1
// to keep all points. Squared distances are used throughout; callers take
// the square root for accepted rows only.
func (t *Tree) search(q []float32, r2 float32, floor int32, emit func(point int32, d2 float32)) {
	stack := make([]int32, 1, 64)
	stack[0] = rootNode

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nd := &t.nodes[id]

		if nd.leaf {
			for i := nd.start; i < nd.end; i++ {
				p := t.perm[i]
				if p <= floor {
					continue
				}
				d2 := math32.SquaredL2(q, t.Point(int(p)))
				if d2 <= r2 {
					emit(p, d2)
				}
			}
			continue
		}

		diff := q[nd.splitDim] - nd.splitVal
		near, far := nd.left, nd.right
		if diff >= 0 {
			near, far = nd.right, nd.left
		}
		if diff*diff <= r2 {
			stack = append(stack, far)
		}
		stack = append(stack, near) // near side pops first
	}
}

func (t *Tree) validateRadius(radius float32) error {
	// The negated form also rejects NaN, which compares false to everything.
	if !(radius >= 0) {
		return &ErrNegativeRadius{Radius: radius}
	}
	return nil
}
