// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"math"

	"github.com/katalvlaran/smoglab/field"
)

// Defaults applied when no option overrides them.
const (
	DefaultScale       = 8
	DefaultJPEGQuality = 90
	DefaultTitle       = "Pollution"
)

// Option configures every renderer in this package.
// Options that receive nonsense panic at construction.
type Option func(*config)

type config struct {
	scale    int
	palette  Palette
	lo, hi   float64
	hasRange bool
	quality  int
	title    string
}

func defaultConfig() config {
	return config{
		scale:   DefaultScale,
		palette: HuePalette(DefaultLevels),
		quality: DefaultJPEGQuality,
		title:   DefaultTitle,
	}
}

func newConfig(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithScale sets the pixel size of one cell in raster outputs.
func WithScale(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf(panicScale, n))
	}
	return func(c *config) { c.scale = n }
}

// WithPalette replaces the colour scale.
func WithPalette(p Palette) Option {
	if len(p) < 2 {
		panic(panicPalette)
	}
	cp := append(Palette(nil), p...)
	return func(c *config) { c.palette = cp }
}

// WithRange fixes the value mapped to the first and last colours. Values
// outside are clamped. Use it to keep colours stable across video frames.
func WithRange(lo, hi float64) Option {
	if math.IsNaN(lo) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || !(lo < hi) {
		panic(fmt.Sprintf(panicRange, lo, hi))
	}
	return func(c *config) { c.lo, c.hi, c.hasRange = lo, hi, true }
}

// WithJPEGQuality sets the encoder quality of video frames.
func WithJPEGQuality(q int) Option {
	if q < 1 || q > 100 {
		panic(fmt.Sprintf(panicQuality, q))
	}
	return func(c *config) { c.quality = q }
}

// WithTitle sets the chart title of PNG and HTML heatmaps.
func WithTitle(title string) Option {
	return func(c *config) { c.title = title }
}

// valueRange resolves the colour range for f.
func (c config) valueRange(f *field.Field) (lo, hi float64) {
	if c.hasRange {
		return c.lo, c.hi
	}
	st := f.Stats()
	lo, hi = math.Min(0, st.Min), st.Max
	if hi <= lo {
		hi = lo + 1
	}

	return lo, hi
}

// normalize maps v into [0,1] for the range lo..hi.
func normalize(v, lo, hi float64) float64 {
	return (v - lo) / (hi - lo)
}
