// SPDX-License-Identifier: MIT

package source

import "math/rand"

// fallbackSeed stands in for seed 0, so an unseeded sampler still repeats.
const fallbackSeed int64 = 1

// golden is the 64-bit golden-ratio increment of SplitMix64.
const golden uint64 = 0x9e3779b97f4a7c15

// streamRand returns the RNG for one (seed, stream) pair. Streams of the
// same seed are scrambled apart by a SplitMix64 finalizer, so two samplers
// built from one configured seed never replay each other's draws.
func streamRand(seed int64, stream uint64) *rand.Rand {
	if seed == 0 {
		seed = fallbackSeed
	}

	return rand.New(rand.NewSource(splitMix(uint64(seed) + stream*golden)))
}

// splitMix is the SplitMix64 output function.
func splitMix(x uint64) int64 {
	x += golden
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb

	return int64(x ^ (x >> 31))
}
