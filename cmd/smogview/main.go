// SPDX-License-Identifier: MIT

// Command smogview shows a pollution diffusion simulation in a window.
//
// Controls:
//
//	Up / Down    raise or lower the diffusion rate by 0.05
//	Space        add a source at a random cell
//	Left click   add a source under the cursor
//	P            pause or resume
//	R            reset to the starting sources
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/katalvlaran/smoglab/airquality"
	"github.com/katalvlaran/smoglab/field"
	"github.com/katalvlaran/smoglab/internal/monitoring"
	"github.com/katalvlaran/smoglab/render"
	"github.com/katalvlaran/smoglab/sim"
	"github.com/katalvlaran/smoglab/source"
)

const (
	rateStep       = 0.05
	defaultTPS     = 60
	defaultPerStep = 100 * time.Millisecond
)

// errQuit ends RunGame cleanly on Escape.
var errQuit = errors.New("smogview: quit")

// Game adapts a sim.Simulation to ebiten.Game.
type Game struct {
	sim          *sim.Simulation
	scale        int
	ticksPerStep int
	ticks        int
	paused       bool
	status       string // last user action, shown in the overlay
	ctx          context.Context
}

func newGame(ctx context.Context, s *sim.Simulation, scale int, perStep time.Duration) *Game {
	tps := int(math.Round(float64(perStep) / float64(time.Second) * defaultTPS))
	return &Game{
		sim:          s,
		scale:        scale,
		ticksPerStep: max(1, tps),
		ctx:          ctx,
	}
}

// Update handles input and advances the simulation every ticksPerStep ticks.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return errQuit
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		g.nudgeRate(rateStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		g.nudgeRate(-rateStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		p, err := g.sim.InjectRandom(g.ctx)
		if err != nil {
			return err
		}
		g.status = fmt.Sprintf("source at %v", p)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		p := field.Position{X: my / g.scale, Y: mx / g.scale}
		if err := g.sim.AddSource(p, g.sim.Config().DefaultIntensity); err != nil {
			g.status = err.Error()
		} else {
			g.status = fmt.Sprintf("source at %v", p)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.sim.Reset(); err != nil {
			return err
		}
		g.status = "reset"
	}

	if g.paused {
		return nil
	}
	g.ticks++
	if g.ticks%g.ticksPerStep != 0 {
		return nil
	}

	return g.sim.Step(g.ctx)
}

// nudgeRate moves the rate by delta, clamped to [0,1] and rounded to the
// slider's resolution.
func (g *Game) nudgeRate(delta float64) {
	r := math.Round((g.sim.Rate()+delta)/rateStep) * rateStep
	r = math.Min(1, math.Max(0, r))
	if err := g.sim.SetRate(r); err != nil {
		g.status = err.Error()
	}
}

// Draw paints the field and a status overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	img := render.Image(g.sim.Field(), render.WithScale(g.scale))
	screen.WritePixels(img.Pix)

	f := g.sim.Field()
	state := "running"
	if g.paused {
		state = "paused"
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("rate %.2f  step %d  mass %.1f  %s\n%s",
		g.sim.Rate(), g.sim.StepCount(), f.Mass(), state, g.status))
}

// Layout keeps one logical pixel per screen pixel of the scaled field.
func (g *Game) Layout(_, _ int) (int, int) {
	f := g.sim.Field()
	return f.Cols() * g.scale, f.Rows() * g.scale
}

func main() {
	configPath := flag.String("config", "", "YAML run configuration; defaults are used when empty")
	flag.Parse()

	cfg := sim.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = sim.LoadConfig(*configPath); err != nil {
			log.Fatal(err)
		}
	}

	var samplers []source.Sampler
	if cfg.AirQuality.Enabled {
		aq, err := airquality.SamplerFromConfig(cfg.AirQuality)
		if err != nil {
			log.Fatal(err)
		}
		samplers = append(samplers, aq)
	}
	s, err := sim.New(cfg, samplers...)
	if err != nil {
		log.Fatal(err)
	}

	perStep, err := cfg.IntervalDuration()
	if err != nil {
		log.Fatal(err)
	}
	if perStep == 0 {
		perStep = defaultPerStep
	}
	scale := cfg.Output.Scale
	if scale <= 0 {
		scale = render.DefaultScale
	}

	monitoring.Logf("smogview %s: %dx%d at rate %g", s.ID(), cfg.Rows, cfg.Cols, s.Rate())
	ebiten.SetTPS(defaultTPS)
	ebiten.SetWindowSize(cfg.Cols*scale, cfg.Rows*scale)
	ebiten.SetWindowTitle("smogview")
	if err := ebiten.RunGame(newGame(context.Background(), s, scale, perStep)); err != nil && !errors.Is(err, errQuit) {
		log.Fatal(err)
	}
}
