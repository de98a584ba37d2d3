package core

import "math/rand"

// RandRange returns a uniform float64 in [min, max).
// Malformed ranges (min > max) are not validated; they produce values in
// (max, min], which is the caller's problem.
func RandRange(rng *rand.Rand, min, max float64) float64 {
	return min + rng.Float64()*(max-min)
}

// RandInt returns a uniform int in [min, max].
func RandInt(rng *rand.Rand, min, max int) int {
	if max <= min {
		return min
	}
	return min + rng.Intn(max-min+1)
}

// Choice returns a uniformly chosen element of items.
// Panics on an empty slice, same as indexing would.
func Choice[T any](rng *rand.Rand, items []T) T {
	return items[rng.Intn(len(items))]
}
