// SPDX-License-Identifier: MIT

package sim

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/smoglab/field"
	"github.com/katalvlaran/smoglab/internal/monitoring"
	"github.com/katalvlaran/smoglab/source"
)

// Random streams of cfg.Seed; each sampler gets its own.
const (
	streamPeriodic uint64 = iota + 1
	streamButton
)

// FrameFunc observes the field after every step (and once before the first).
// Returning an error stops Run with that error.
type FrameFunc func(step int, f *field.Field) error

// Simulation owns the current field and advances it step by step.
type Simulation struct {
	id       uuid.UUID
	cfg      Config
	current  *field.Field
	rate     float64
	steps    int
	samplers []source.Sampler      // consulted every cfg.InjectEvery steps
	button   *source.RandomSampler // InjectRandom
}

// New validates cfg, creates the field and places the configured fixed
// sources. When cfg.RandomCount > 0 a seeded random sampler joins the
// periodic samplers ahead of the extra ones passed in.
func New(cfg Config, samplers ...source.Sampler) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Simulation{
		id:     uuid.New(),
		cfg:    cfg,
		rate:   cfg.Rate,
		button: source.NewRandom(
			source.WithSeed(cfg.Seed),
			source.WithStream(streamButton),
			source.WithIntensity(cfg.DefaultIntensity),
		),
	}
	if cfg.RandomCount > 0 {
		s.samplers = append(s.samplers, source.NewRandom(
			source.WithSeed(cfg.Seed),
			source.WithStream(streamPeriodic),
			source.WithCount(cfg.RandomCount),
			source.WithIntensity(cfg.DefaultIntensity),
		))
	}
	s.samplers = append(s.samplers, samplers...)

	if err := s.reset(); err != nil {
		return nil, err
	}

	return s, nil
}

// reset installs a zero field carrying only the configured fixed sources.
func (s *Simulation) reset() error {
	f, err := field.New(s.cfg.Rows, s.cfg.Cols)
	if err != nil {
		return err
	}
	initial := s.cfg.initialSources()
	emissions := make([]source.Emission, 0, len(initial))
	for _, sc := range initial {
		emissions = append(emissions, source.Emission{
			Pos:       field.Position{X: sc.X, Y: sc.Y},
			Intensity: s.cfg.sourceIntensity(sc),
		})
	}
	if _, err := source.Apply(f, emissions); err != nil {
		return err
	}
	s.current = f
	s.steps = 0

	return nil
}

// Reset discards the current field and starts over from the configured
// fixed sources. The rate is kept.
func (s *Simulation) Reset() error {
	return s.reset()
}

// ID identifies this run in logs and default output names.
func (s *Simulation) ID() uuid.UUID { return s.id }

// Config returns the configuration the run was built with.
func (s *Simulation) Config() Config { return s.cfg }

// Field returns the current snapshot. Callers must treat it as read-only;
// the next Step replaces it rather than modifying it.
func (s *Simulation) Field() *field.Field { return s.current }

// Rate returns the rate the next Step will use.
func (s *Simulation) Rate() float64 { return s.rate }

// SetRate changes the rate for subsequent steps.
// Returns field.ErrInvalidRate outside [0,1]; the old rate is kept.
func (s *Simulation) SetRate(rate float64) error {
	if err := field.ValidateRate(rate); err != nil {
		return fmt.Errorf("sim: SetRate(%g): %w", rate, err)
	}
	s.rate = rate

	return nil
}

// StepCount returns how many steps have completed since start or Reset.
func (s *Simulation) StepCount() int { return s.steps }

// AddSource writes a source into the current field.
func (s *Simulation) AddSource(p field.Position, intensity float64) error {
	return s.current.SetPoint(p, intensity)
}

// Inject asks sampler for emissions and applies them to the current field.
// It returns how many were applied.
func (s *Simulation) Inject(ctx context.Context, sampler source.Sampler) (int, error) {
	es, err := sampler.Next(ctx, s.current.Rows(), s.current.Cols())
	if err != nil {
		return 0, err
	}

	return source.Apply(s.current, es)
}

// InjectRandom places one default-intensity source at a random cell.
func (s *Simulation) InjectRandom(ctx context.Context) (field.Position, error) {
	es, err := s.button.Next(ctx, s.current.Rows(), s.current.Cols())
	if err != nil {
		return field.Position{}, err
	}
	if _, err := source.Apply(s.current, es); err != nil {
		return field.Position{}, err
	}

	return es[0].Pos, nil
}

// Step injects from every sampler when the step count is a multiple of
// InjectEvery, then diffuses once.
func (s *Simulation) Step(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.cfg.InjectEvery > 0 && s.steps%s.cfg.InjectEvery == 0 {
		for i, sampler := range s.samplers {
			if _, err := s.Inject(ctx, sampler); err != nil {
				return fmt.Errorf("sim: step %d sampler %d: %w", s.steps, i, err)
			}
		}
	}

	next, err := s.current.Diffuse(s.rate)
	if err != nil {
		return fmt.Errorf("sim: step %d: %w", s.steps, err)
	}
	s.current = next
	s.steps++

	return nil
}

// Run advances n steps, calling onFrame (if non-nil) with the initial field
// and after each step. With interval > 0 steps are paced by a ticker;
// otherwise they run back to back. Cancelling ctx stops the run and returns
// ctx.Err().
func (s *Simulation) Run(ctx context.Context, n int, interval time.Duration, onFrame FrameFunc) error {
	if n < 0 {
		return ErrInvalidSteps
	}
	monitoring.Logf("sim %s: running %d steps on %dx%d at rate %g", s.id, n, s.cfg.Rows, s.cfg.Cols, s.rate)

	if onFrame != nil {
		if err := onFrame(s.steps, s.current); err != nil {
			return err
		}
	}

	var tick <-chan time.Time
	if interval > 0 {
		t := time.NewTicker(interval)
		defer t.Stop()
		tick = t.C
	}

	for i := 0; i < n; i++ {
		if tick != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
		}
		if err := s.Step(ctx); err != nil {
			return err
		}
		if onFrame != nil {
			if err := onFrame(s.steps, s.current); err != nil {
				return err
			}
		}
	}

	st := s.current.Stats()
	monitoring.Logf("sim %s: done after %d steps, mass=%.2f max=%.2f", s.id, s.steps, st.Mass, st.Max)

	return nil
}
