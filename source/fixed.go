// SPDX-License-Identifier: MIT

package source

import "context"

// FixedSampler yields a predetermined list of emissions on its first call
// and nothing afterwards. Positions are not checked here; Apply reports any
// that fall outside the grid.
type FixedSampler struct {
	emissions []Emission
	done      bool
}

// Fixed returns a FixedSampler over a copy of emissions.
func Fixed(emissions ...Emission) *FixedSampler {
	cp := make([]Emission, len(emissions))
	copy(cp, emissions)

	return &FixedSampler{emissions: cp}
}

// Next returns the placements once, then an empty slice.
func (s *FixedSampler) Next(ctx context.Context, rows, cols int) ([]Emission, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidShape
	}
	if s.done {
		return nil, nil
	}
	s.done = true
	out := make([]Emission, len(s.emissions))
	copy(out, s.emissions)

	return out, nil
}

// Reset arms the sampler to yield its placements again.
func (s *FixedSampler) Reset() { s.done = false }
