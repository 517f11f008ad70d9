package kiddo

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// TreeStats summarizes the shape of a built tree.
type TreeStats struct {
	Points       int
	Dimensions   int
	Nodes        int
	Leaves       int
	MaxDepth     int
	LeafCapacity int
}

// Stats walks the arena and returns shape statistics.
func (t *Tree) Stats() TreeStats {
	stats := TreeStats{
		Points:       t.size,
		Dimensions:   t.dims,
		Nodes:        len(t.nodes),
		LeafCapacity: t.leafCapacity,
	}

	type frame struct {
		id    int32
		depth int
	}
	stack := []frame{{id: rootNode, depth: 1}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.depth > stats.MaxDepth {
			stats.MaxDepth = f.depth
		}
		nd := &t.nodes[f.id]
		if nd.leaf {
			stats.Leaves++
			continue
		}
		stack = append(stack,
			frame{id: nd.left, depth: f.depth + 1},
			frame{id: nd.right, depth: f.depth + 1},
		)
	}
	return stats
}

// Audit verifies the structural invariants of the tree: every internal node
// references valid arena children, every leaf range lies within the
// permutation array, and every point row appears in exactly one leaf.
// It returns nil on a well-formed tree.
func (t *Tree) Audit() error {
	seen := bitset.New(uint(t.size))

	for id := range t.nodes {
		nd := &t.nodes[id]
		if nd.leaf {
			if nd.start < 0 || nd.end < nd.start || int(nd.end) > t.size {
				return fmt.Errorf("leaf %d has invalid range [%d,%d)", id, nd.start, nd.end)
			}
			for i := nd.start; i < nd.end; i++ {
				row := t.perm[i]
				if row < 0 || int(row) >= t.size {
					return fmt.Errorf("leaf %d references invalid row %d", id, row)
				}
				if seen.Test(uint(row)) {
					return fmt.Errorf("point %d appears in more than one leaf", row)
				}
				seen.Set(uint(row))
			}
			continue
		}
		if nd.left <= 0 || int(nd.left) >= len(t.nodes) || nd.right <= 0 || int(nd.right) >= len(t.nodes) {
			return fmt.Errorf("internal node %d has invalid children (%d, %d)", id, nd.left, nd.right)
		}
		if nd.splitDim < 0 || int(nd.splitDim) >= t.dims {
			return fmt.Errorf("internal node %d splits invalid dimension %d", id, nd.splitDim)
		}
	}

	if got := seen.Count(); got != uint(t.size) {
		return fmt.Errorf("leaves cover %d of %d points", got, t.size)
	}
	return nil
}
