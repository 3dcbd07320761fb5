// Package rnglib provides the per-pixel random sources the Monte-Carlo
// samplers (ambient occlusion, soft shadows, path tracing) draw from.
package rnglib

import "math/rand"

// ForPixel returns a deterministic RNG for one (pixel, sample) pair
// under a base seed. Mixing pixel coordinates and sample index into the seed keeps
// results reproducible for a fixed base seed while decorrelating the
// streams of neighbouring pixels and successive samples.
func ForPixel(baseSeed int64, x, y, sample int) *rand.Rand {
	h := mix(baseSeed, int64(x), int64(y), int64(sample))
	return rand.New(rand.NewSource(h))
}

// mix combines several integers into one well-distributed seed using
// the splitmix64 finalizer, applied once per input.
func mix(values ...int64) int64 {
	var h uint64 = 0x9E3779B97F4A7C15
	for _, v := range values {
		h ^= uint64(v)
		h *= 0xBF58476D1CE4E5B9
		h ^= h >> 27
		h *= 0x94D049BB133111EB
		h ^= h >> 31
	}
	return int64(h)
}
