package kiddo_test

import (
	"fmt"
	"testing"

	kiddo "github.com/JER-ry/kiddo-go"
	"github.com/JER-ry/kiddo-go/testutil"
)

func BenchmarkNew(b *testing.B) {
	sizes := []int{1000, 10000, 100000}
	dim := 3

	for _, size := range sizes {
		b.Run(fmt.Sprintf("n%d", size), func(b *testing.B) {
			rng := testutil.NewRNG(0)
			points := rng.UniformPoints(size, dim)

			b.ResetTimer()
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				_, err := kiddo.New(dim, points)
				if err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkWithinUnsorted(b *testing.B) {
	rng := testutil.NewRNG(0)
	points := rng.UniformPoints(100000, 3)
	queries := rng.UniformPoints(1000, 3)

	tree, err := kiddo.New(3, points)
	if err != nil {
		b.Fatal(err)
	}

	for _, parallel := range []bool{false, true} {
		b.Run(fmt.Sprintf("parallel=%v", parallel), func(b *testing.B) {
			b.ResetTimer()
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				_, err := tree.WithinUnsorted(queries, 0.05, func(o *kiddo.QueryOptions) {
					o.Parallel = parallel
				})
				if err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkQueryPairs(b *testing.B) {
	rng := testutil.NewRNG(0)
	points := rng.UniformPoints(20000, 3)

	tree, err := kiddo.New(3, points)
	if err != nil {
		b.Fatal(err)
	}

	for _, parallel := range []bool{false, true} {
		b.Run(fmt.Sprintf("parallel=%v", parallel), func(b *testing.B) {
			b.ResetTimer()
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				_, err := tree.QueryPairs(0.02, func(o *kiddo.QueryOptions) {
					o.Parallel = parallel
				})
				if err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
