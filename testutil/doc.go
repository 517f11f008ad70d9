// Package testutil provides testing utilities for kiddo-go.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe random number generator and helpers for
// generating random point sets used by the brute-force oracle tests.
//
// # Random Point Generation
//
//	rng := testutil.NewRNG(seed)
//	points := rng.UniformPoints(50, 3)              // coords in [0, 1)
//	points = rng.UniformRangePoints(50, 3, -1, 1)   // coords in [-1, 1)
package testutil
