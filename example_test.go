package kiddo_test

import (
	"cmp"
	"fmt"
	"slices"

	kiddo "github.com/JER-ry/kiddo-go"
)

func ExampleNew() {
	tree, err := kiddo.New(2, [][]float32{
		{0, 0},
		{0, 3},
		{4, 0},
	})
	if err != nil {
		panic(err)
	}

	fmt.Println(tree.Size(), tree.Dimensions())
	// Output: 3 2
}

func ExampleTree_WithinUnsorted() {
	tree, _ := kiddo.New(2, [][]float32{
		{0, 0},
		{0, 3},
		{4, 0},
	})

	matches, _ := tree.WithinUnsorted([][]float32{{0, 0}}, 3.5)

	// Result rows are unordered; sort for stable output.
	slices.SortFunc(matches, func(a, b kiddo.Match) int {
		if c := cmp.Compare(a.Query, b.Query); c != 0 {
			return c
		}
		return cmp.Compare(a.Point, b.Point)
	})
	for _, m := range matches {
		fmt.Printf("query %d point %d distance %.1f\n", m.Query, m.Point, m.Distance)
	}
	// Output:
	// query 0 point 0 distance 0.0
	// query 0 point 1 distance 3.0
}

func ExampleTree_QueryPairs() {
	tree, _ := kiddo.New(2, [][]float32{
		{0, 0},
		{0, 3},
		{4, 0},
	})

	pairs, _ := tree.QueryPairs(5)

	slices.SortFunc(pairs, func(a, b kiddo.Pair) int {
		if c := cmp.Compare(a.A, b.A); c != 0 {
			return c
		}
		return cmp.Compare(a.B, b.B)
	})
	for _, p := range pairs {
		fmt.Printf("%d-%d distance %.1f\n", p.A, p.B, p.Distance)
	}
	// Output:
	// 0-1 distance 3.0
	// 0-2 distance 4.0
	// 1-2 distance 5.0
}
