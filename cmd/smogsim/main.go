// SPDX-License-Identifier: MIT

// Command smogsim runs a pollution diffusion simulation without a window and
// writes the requested pictures of the result.
//
//	smogsim -config run.yaml -steps 200 -png out/final.png -video out/run.avi
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/katalvlaran/smoglab/airquality"
	"github.com/katalvlaran/smoglab/field"
	"github.com/katalvlaran/smoglab/internal/monitoring"
	"github.com/katalvlaran/smoglab/plume"
	"github.com/katalvlaran/smoglab/render"
	"github.com/katalvlaran/smoglab/sim"
	"github.com/katalvlaran/smoglab/source"
)

// runOptions holds the flags that are not part of sim.Config.
type runOptions struct {
	outDir    string  // default location for outputs left empty in the config
	threshold float64 // plume threshold for the summary
	quiet     bool
}

func main() {
	cfg, opts, err := parseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	if opts.quiet {
		monitoring.SetLogger(nil)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, opts); err != nil {
		log.Fatal(err)
	}
}

// parseFlags loads -config (or the defaults) and applies every flag that was
// set explicitly on top of it.
func parseFlags(args []string) (sim.Config, runOptions, error) {
	fs := flag.NewFlagSet("smogsim", flag.ContinueOnError)
	configPath := fs.String("config", "", "YAML run configuration; defaults are used when empty")
	rows := fs.Int("rows", sim.DefaultRows, "grid rows")
	cols := fs.Int("cols", sim.DefaultCols, "grid columns")
	rate := fs.Float64("rate", field.DefaultRate, "diffusion rate in [0,1]")
	steps := fs.Int("steps", sim.DefaultSteps, "number of steps")
	interval := fs.String("interval", "", "delay between steps, e.g. 100ms")
	injectEvery := fs.Int("inject-every", sim.DefaultInjectEvery, "inject from sources every N steps; 0 disables")
	randomCount := fs.Int("random", sim.DefaultRandomCount, "random sources per injection; 0 disables")
	seed := fs.Int64("seed", 0, "random seed; 0 picks the fixed default")
	pngPath := fs.String("png", "", "write the final field as a PNG heatmap")
	htmlPath := fs.String("html", "", "write the final field as an HTML heatmap")
	videoPath := fs.String("video", "", "record every frame into an MJPEG AVI")
	textPath := fs.String("text", "", "write the final field as ASCII art; - for stdout")
	fps := fs.Int("fps", sim.DefaultFPS, "video frames per second")
	scale := fs.Int("scale", sim.DefaultScale, "pixels per cell in raster outputs")
	var opts runOptions
	fs.StringVar(&opts.outDir, "outdir", "", "write every output not named explicitly into this directory")
	fs.Float64Var(&opts.threshold, "plume-threshold", 1, "minimum cell value counted as a plume")
	fs.BoolVar(&opts.quiet, "quiet", false, "silence progress logs")

	if err := fs.Parse(args); err != nil {
		return sim.Config{}, opts, err
	}

	cfg := sim.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = sim.LoadConfig(*configPath); err != nil {
			return cfg, opts, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "rows":
			cfg.Rows = *rows
		case "cols":
			cfg.Cols = *cols
		case "rate":
			cfg.Rate = *rate
		case "steps":
			cfg.Steps = *steps
		case "interval":
			cfg.Interval = *interval
		case "inject-every":
			cfg.InjectEvery = *injectEvery
		case "random":
			cfg.RandomCount = *randomCount
		case "seed":
			cfg.Seed = *seed
		case "png":
			cfg.Output.PNG = *pngPath
		case "html":
			cfg.Output.HTML = *htmlPath
		case "video":
			cfg.Output.Video = *videoPath
		case "text":
			cfg.Output.Text = *textPath
		case "fps":
			cfg.Output.FPS = *fps
		case "scale":
			cfg.Output.Scale = *scale
		}
	})
	// Flags may have shrunk the grid under the configured sources.
	if err := cfg.Validate(); err != nil {
		return cfg, opts, err
	}

	return cfg, opts, nil
}

// run executes one simulation and writes its outputs.
func run(ctx context.Context, cfg sim.Config, opts runOptions) error {
	var samplers []source.Sampler
	if cfg.AirQuality.Enabled {
		aq, err := airquality.SamplerFromConfig(cfg.AirQuality)
		if err != nil {
			return err
		}
		samplers = append(samplers, aq)
	}

	s, err := sim.New(cfg, samplers...)
	if err != nil {
		return err
	}
	out := resolveOutputs(cfg.Output, opts.outDir, s.ID().String())

	var renderOpts []render.Option
	if out.Scale > 0 {
		renderOpts = append(renderOpts, render.WithScale(out.Scale))
	}

	var onFrame sim.FrameFunc
	if out.Video != "" {
		videoOpts := renderOpts
		if cfg.DefaultIntensity > 0 {
			// Fixed so colours stay comparable from frame to frame.
			videoOpts = append([]render.Option{render.WithRange(0, cfg.DefaultIntensity)}, renderOpts...)
		}
		if err := ensureDir(out.Video); err != nil {
			return err
		}
		rec, err := render.NewVideoRecorder(out.Video, cfg.Rows, cfg.Cols, out.FPS, videoOpts...)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := rec.Close(); cerr != nil {
				monitoring.Logf("smogsim: closing %s: %v", out.Video, cerr)
			}
		}()
		onFrame = func(_ int, f *field.Field) error { return rec.AddFrame(f) }
	}

	interval, err := cfg.IntervalDuration()
	if err != nil {
		return err
	}
	if err := s.Run(ctx, cfg.Steps, interval, onFrame); err != nil {
		return err
	}

	final := s.Field()
	title := fmt.Sprintf("step %d, rate %g", s.StepCount(), s.Rate())
	if err := writeOutputs(final, out, append(renderOpts, render.WithTitle(title))); err != nil {
		return err
	}

	return summarize(final, opts.threshold)
}

// resolveOutputs fills empty output paths with <dir>/<id>.<ext> when dir is
// set.
func resolveOutputs(out sim.OutputConfig, dir, id string) sim.OutputConfig {
	if dir == "" {
		return out
	}
	fill := func(p *string, ext string) {
		if *p == "" {
			*p = filepath.Join(dir, id+ext)
		}
	}
	fill(&out.PNG, ".png")
	fill(&out.HTML, ".html")
	fill(&out.Video, ".avi")
	fill(&out.Text, ".txt")

	return out
}

func writeOutputs(f *field.Field, out sim.OutputConfig, opts []render.Option) error {
	writers := []struct {
		path  string
		write func(io.Writer) error
	}{
		{out.PNG, func(w io.Writer) error { return render.WriteHeatmapPNG(w, f, opts...) }},
		{out.HTML, func(w io.Writer) error { return render.WriteHeatmapHTML(w, f, opts...) }},
		{out.Text, func(w io.Writer) error {
			_, err := io.WriteString(w, render.Text(f))
			return err
		}},
	}
	for _, wr := range writers {
		if wr.path == "" {
			continue
		}
		if err := writeFile(wr.path, wr.write); err != nil {
			return err
		}
		monitoring.Logf("smogsim: wrote %s", wr.path)
	}

	return nil
}

// writeFile creates path (and its directory) and hands it to write.
// "-" writes to stdout.
func writeFile(path string, write func(io.Writer) error) error {
	if path == "-" {
		return write(os.Stdout)
	}
	if err := ensureDir(path); err != nil {
		return err
	}
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("smogsim: %w", err)
	}
	if err := write(fh); err != nil {
		_ = fh.Close()
		return fmt.Errorf("smogsim: write %s: %w", path, err)
	}

	return fh.Close()
}

// ensureDir creates the parent directory of path.
func ensureDir(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("smogsim: %w", err)
	}

	return nil
}

func summarize(f *field.Field, threshold float64) error {
	ps, err := plume.Find(f, threshold, plume.Conn8)
	if err != nil {
		return err
	}
	st := f.Stats()
	monitoring.Logf("smogsim: mass=%.2f min=%.2f max=%.2f mean=%.4f", st.Mass, st.Min, st.Max, st.Mean)
	best, ok := plume.Largest(ps)
	if !ok {
		monitoring.Logf("smogsim: no plumes at threshold %g", threshold)
		return nil
	}
	monitoring.Logf("smogsim: %d plumes at threshold %g covering %.1f%%, largest %v",
		len(ps), threshold, 100*plume.Coverage(f, ps), best)

	return nil
}
