// SPDX-License-Identifier: MIT

package source

import (
	"context"

	"github.com/katalvlaran/smoglab/field"
)

// RandomSampler places emissions uniformly at random over the grid.
// Not goroutine-safe: *rand.Rand is shared across calls.
type RandomSampler struct {
	cfg randomConfig
}

// NewRandom builds a RandomSampler. Without WithSeed/WithRand it uses the
// package default seed and stream 0, so two unconfigured samplers agree.
func NewRandom(opts ...Option) *RandomSampler {
	cfg := defaultRandomConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = streamRand(cfg.seed, cfg.stream)
	}

	return &RandomSampler{cfg: cfg}
}

// Next draws cfg.count emissions for a rows×cols grid.
//
// Errors:
//   - ctx.Err() if the context is done.
//   - ErrInvalidShape for non-positive dimensions.
//   - ErrNoInterior when interior-only and rows or cols < 3.
func (s *RandomSampler) Next(ctx context.Context, rows, cols int) ([]Emission, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidShape
	}
	if s.cfg.interiorOnly && (rows < 3 || cols < 3) {
		return nil, ErrNoInterior
	}

	out := make([]Emission, 0, s.cfg.count)
	for i := 0; i < s.cfg.count; i++ {
		out = append(out, Emission{Pos: s.position(rows, cols), Intensity: s.intensity()})
	}

	return out, nil
}

func (s *RandomSampler) position(rows, cols int) field.Position {
	r := s.cfg.rng
	if s.cfg.interiorOnly {
		return field.Position{X: 1 + r.Intn(rows-2), Y: 1 + r.Intn(cols-2)}
	}
	return field.Position{X: r.Intn(rows), Y: r.Intn(cols)}
}

func (s *RandomSampler) intensity() float64 {
	if s.cfg.lo == s.cfg.hi {
		return s.cfg.lo
	}
	return s.cfg.lo + s.cfg.rng.Float64()*(s.cfg.hi-s.cfg.lo)
}
