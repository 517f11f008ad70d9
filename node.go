package kiddo

// node is one slot in the tree arena. Nodes are addressed by int32 arena
// indices rather than pointers, keeping the tree in contiguous memory and
// trivially shareable across goroutines.
type node struct {
	splitDim int32   // split dimension, internal nodes only
	splitVal float32 // split coordinate, internal nodes only
	left     int32   // arena index of the low-side child
	right    int32   // arena index of the high-side child
	start    int32   // permutation range start, leaves only
	end      int32   // permutation range end, leaves only
	leaf     bool
}

// rootNode is the arena index of the root; the builder always emits the root
// first.
const rootNode int32 = 0
