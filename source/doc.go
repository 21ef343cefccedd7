// SPDX-License-Identifier: MIT

// Package source supplies pollution emissions to a field.Field.
//
// A Sampler produces zero or more Emissions (position + intensity) each time
// the driver asks. Keeping the choice of where and how much outside the
// field package leaves SetPoint and Diffuse deterministic; randomness lives
// here, behind an explicit seed.
//
// Samplers:
//
//   - Fixed:  a list of placements yielded once (initial scenario).
//   - Random: uniformly placed emissions from a seeded *rand.Rand.
//   - SamplerFunc: adapter for ad-hoc strategies.
//
// Apply writes a batch of Emissions into a Field with SetPoint, failing fast
// on the first position outside the grid.
//
// Concurrency: samplers are NOT goroutine-safe; one driver owns each.
package source
