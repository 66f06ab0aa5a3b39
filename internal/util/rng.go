package util

import "math/rand"

// New returns a seeded source; seed 0 is treated as 1.
func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}
	src := rand.NewSource(seed)
	return rand.New(src)
}

// Derive returns the seed of one job in a batch.
func Derive(seed int64, job int) int64 {
	return seed + int64(job)*7919
}
