// SPDX-License-Identifier: MIT

package sim_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/smoglab/field"
	"github.com/katalvlaran/smoglab/internal/monitoring"
	"github.com/katalvlaran/smoglab/sim"
	"github.com/katalvlaran/smoglab/source"
)

func init() {
	monitoring.SetLogger(nil)
}

// quietConfig is a small deterministic config without random injection.
func quietConfig() sim.Config {
	cfg := sim.DefaultConfig()
	cfg.Rows, cfg.Cols = 9, 9
	cfg.RandomCount = 0
	cfg.InjectEvery = 0
	return cfg
}

func TestNew_PlacesCenterSource(t *testing.T) {
	t.Parallel()

	s, err := sim.New(quietConfig())
	require.NoError(t, err)
	v, err := s.Field().At(4, 4)
	require.NoError(t, err)
	assert.Equal(t, field.DefaultIntensity, v)
	assert.Equal(t, field.DefaultIntensity, s.Field().Mass())
	assert.Zero(t, s.StepCount())
	assert.NotEqual(t, s.ID().String(), "")
}

func TestNew_FixedSources(t *testing.T) {
	t.Parallel()

	cfg := quietConfig()
	cfg.CenterSource = false
	cfg.Sources = []sim.SourceConfig{{X: 1, Y: 2, Intensity: 30}, {X: 7, Y: 7}}
	s, err := sim.New(cfg)
	require.NoError(t, err)

	v, _ := s.Field().At(1, 2)
	assert.Equal(t, 30.0, v)
	v, _ = s.Field().At(7, 7)
	assert.Equal(t, field.DefaultIntensity, v, "zero intensity means the default")
}

func TestNew_InvalidConfig(t *testing.T) {
	t.Parallel()

	cfg := quietConfig()
	cfg.Rate = 3
	_, err := sim.New(cfg)
	assert.ErrorIs(t, err, field.ErrInvalidRate)
}

func TestStep_MatchesDiffuse(t *testing.T) {
	t.Parallel()

	s, err := sim.New(quietConfig())
	require.NoError(t, err)
	before := s.Field()
	want, err := before.Diffuse(s.Rate())
	require.NoError(t, err)

	require.NoError(t, s.Step(context.Background()))
	assert.True(t, want.Equal(s.Field()))
	assert.NotSame(t, before, s.Field(), "step swaps in a new field")
	assert.Equal(t, 1, s.StepCount())
}

func TestSetRate(t *testing.T) {
	t.Parallel()

	s, err := sim.New(quietConfig())
	require.NoError(t, err)

	require.NoError(t, s.SetRate(0))
	before := s.Field().Clone()
	require.NoError(t, s.Step(context.Background()))
	assert.True(t, before.Equal(s.Field()), "rate 0 is a no-op step")

	err = s.SetRate(1.2)
	assert.ErrorIs(t, err, field.ErrInvalidRate)
	assert.Zero(t, s.Rate(), "failed SetRate keeps the old rate")
}

func TestAddSource(t *testing.T) {
	t.Parallel()

	s, err := sim.New(quietConfig())
	require.NoError(t, err)
	require.NoError(t, s.AddSource(field.Position{X: 0, Y: 0}, 5))
	assert.ErrorIs(t, s.AddSource(field.Position{X: 10, Y: 10}, 5), field.ErrOutOfBounds)
	assert.Equal(t, 105.0, s.Field().Mass())
}

func TestStep_PeriodicInjection(t *testing.T) {
	t.Parallel()

	calls := 0
	counter := source.SamplerFunc(func(_ context.Context, rows, cols int) ([]source.Emission, error) {
		calls++
		return []source.Emission{{Pos: field.Position{X: 0, Y: cols - 1}, Intensity: float64(calls)}}, nil
	})

	cfg := quietConfig()
	cfg.InjectEvery = 3
	s, err := sim.New(cfg, counter)
	require.NoError(t, err)

	for i := 0; i < 7; i++ {
		require.NoError(t, s.Step(context.Background()))
	}
	assert.Equal(t, 3, calls, "steps 0, 3 and 6 inject")
	v, _ := s.Field().At(0, 8)
	assert.Equal(t, 3.0, v, "border cell keeps the last injected value")
}

func TestStep_SamplerErrorStops(t *testing.T) {
	t.Parallel()

	boom := errors.New("sensor offline")
	cfg := quietConfig()
	cfg.InjectEvery = 1
	s, err := sim.New(cfg, source.SamplerFunc(func(context.Context, int, int) ([]source.Emission, error) {
		return nil, boom
	}))
	require.NoError(t, err)

	err = s.Step(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, s.StepCount())
}

func TestStep_OutOfBoundsEmissionFailsFast(t *testing.T) {
	t.Parallel()

	cfg := quietConfig()
	cfg.InjectEvery = 1
	s, err := sim.New(cfg, source.Fixed(source.Emission{Pos: field.Position{X: 10, Y: 10}, Intensity: 1}))
	require.NoError(t, err)
	assert.ErrorIs(t, s.Step(context.Background()), field.ErrOutOfBounds)
}

func TestRandomInjection(t *testing.T) {
	t.Parallel()

	cfg := quietConfig()
	cfg.CenterSource = false
	cfg.InjectEvery = 1
	cfg.RandomCount = 2
	cfg.Rate = 0
	s, err := sim.New(cfg)
	require.NoError(t, err)

	require.NoError(t, s.Step(context.Background()))
	assert.Greater(t, s.Field().Mass(), 0.0)
	assert.LessOrEqual(t, s.Field().Mass(), 2*field.DefaultIntensity)
}

func TestInjectRandom(t *testing.T) {
	t.Parallel()

	cfg := quietConfig()
	cfg.CenterSource = false
	s, err := sim.New(cfg)
	require.NoError(t, err)

	p, err := s.InjectRandom(context.Background())
	require.NoError(t, err)
	v, err := s.Field().At(p.X, p.Y)
	require.NoError(t, err)
	assert.Equal(t, field.DefaultIntensity, v)
}

func TestInjectRandom_IndependentOfPeriodicSource(t *testing.T) {
	t.Parallel()

	cfg := quietConfig()
	cfg.Rows, cfg.Cols = 40, 40
	cfg.CenterSource = false
	cfg.Rate = 0
	cfg.InjectEvery = 1
	cfg.RandomCount = 1
	cfg.Seed = 11
	s, err := sim.New(cfg)
	require.NoError(t, err)

	// Collect the cells the periodic sampler fills, one per step at rate 0.
	var periodic []field.Position
	for i := 0; i < 6; i++ {
		before := s.Field().Clone()
		require.NoError(t, s.Step(context.Background()))
		periodic = append(periodic, changedCells(t, before, s.Field())...)
	}

	var button []field.Position
	require.NoError(t, s.Reset())
	for i := 0; i < 6; i++ {
		p, err := s.InjectRandom(context.Background())
		require.NoError(t, err)
		button = append(button, p)
	}
	assert.NotEqual(t, periodic, button)
}

// changedCells lists positions whose value differs between a and b.
func changedCells(t *testing.T, a, b *field.Field) []field.Position {
	t.Helper()
	var out []field.Position
	for x := 0; x < a.Rows(); x++ {
		for y := 0; y < a.Cols(); y++ {
			va, err := a.At(x, y)
			require.NoError(t, err)
			vb, err := b.At(x, y)
			require.NoError(t, err)
			if va != vb {
				out = append(out, field.Position{X: x, Y: y})
			}
		}
	}
	return out
}

func TestReset(t *testing.T) {
	t.Parallel()

	s, err := sim.New(quietConfig())
	require.NoError(t, err)
	require.NoError(t, s.SetRate(0.5))
	require.NoError(t, s.AddSource(field.Position{X: 1, Y: 1}, 40))
	require.NoError(t, s.Step(context.Background()))

	require.NoError(t, s.Reset())
	assert.Zero(t, s.StepCount())
	assert.Equal(t, field.DefaultIntensity, s.Field().Mass())
	assert.Equal(t, 0.5, s.Rate())
}

func TestRun_Frames(t *testing.T) {
	t.Parallel()

	s, err := sim.New(quietConfig())
	require.NoError(t, err)

	var steps []int
	err = s.Run(context.Background(), 4, 0, func(step int, f *field.Field) error {
		steps = append(steps, step)
		assert.Equal(t, 9, f.Rows())
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, steps)
	assert.Equal(t, 4, s.StepCount())

	assert.ErrorIs(t, s.Run(context.Background(), -1, 0, nil), sim.ErrInvalidSteps)
}

func TestRun_FrameErrorStops(t *testing.T) {
	t.Parallel()

	s, err := sim.New(quietConfig())
	require.NoError(t, err)

	stop := errors.New("enough")
	err = s.Run(context.Background(), 10, 0, func(step int, _ *field.Field) error {
		if step == 2 {
			return stop
		}
		return nil
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 2, s.StepCount())
}

func TestRun_Cancelled(t *testing.T) {
	t.Parallel()

	s, err := sim.New(quietConfig())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	err = s.Run(ctx, 1000, time.Millisecond, func(step int, _ *field.Field) error {
		if step == 3 {
			cancel()
		}
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 3, s.StepCount())
}
