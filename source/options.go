// SPDX-License-Identifier: MIT

// Package source - functional options for the Random sampler.
//
// Contract:
//   - Option constructors validate and PANIC on meaningless input; Next
//     itself never panics.
//   - Determinism is explicit: seed via WithSeed or hand over WithRand.

package source

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/smoglab/field"
)

const (
	// DefaultCount is how many emissions Random yields per call.
	DefaultCount = 1

	// DefaultInteriorOnly keeps Random free to pick border cells too.
	DefaultInteriorOnly = false
)

// Option customizes a Random sampler.
type Option func(*randomConfig)

type randomConfig struct {
	rng          *rand.Rand // explicit RNG from WithRand; overrides seed and stream
	seed         int64
	stream       uint64
	count        int
	lo, hi       float64 // intensity range; lo == hi means constant
	interiorOnly bool
}

func defaultRandomConfig() randomConfig {
	return randomConfig{
		count:        DefaultCount,
		lo:           field.DefaultIntensity,
		hi:           field.DefaultIntensity,
		interiorOnly: DefaultInteriorOnly,
	}
}

// WithSeed seeds a private RNG; seed 0 selects the package default seed.
// It replaces an earlier WithRand.
func WithSeed(seed int64) Option {
	return func(c *randomConfig) {
		c.seed, c.rng = seed, nil
	}
}

// WithStream selects one of many independent sequences of the seed.
// Samplers sharing a seed but not a stream draw unrelated positions.
// Ignored when WithRand supplies the RNG.
func WithStream(id uint64) Option {
	return func(c *randomConfig) {
		c.stream = id
	}
}

// WithRand hands over an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic(panicNilRand)
	}
	return func(c *randomConfig) {
		c.rng = r
	}
}

// WithCount sets how many emissions each Next call yields. Panics if n <= 0.
func WithCount(n int) Option {
	if n <= 0 {
		panic(panicCountInvalid)
	}
	return func(c *randomConfig) {
		c.count = n
	}
}

// WithIntensity makes every emission carry v. Panics on NaN/Inf.
func WithIntensity(v float64) Option {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		panic(panicIntensity)
	}
	return func(c *randomConfig) {
		c.lo, c.hi = v, v
	}
}

// WithIntensityRange draws intensities uniformly from [lo, hi).
// Panics unless lo and hi are finite and lo <= hi.
func WithIntensityRange(lo, hi float64) Option {
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || lo > hi {
		panic(panicIntensityRange)
	}
	return func(c *randomConfig) {
		c.lo, c.hi = lo, hi
	}
}

// WithInteriorOnly restricts placements to cells Diffuse actually updates.
func WithInteriorOnly(on bool) Option {
	return func(c *randomConfig) {
		c.interiorOnly = on
	}
}
