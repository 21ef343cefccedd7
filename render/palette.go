// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"image/color"

	"github.com/crazy3lf/colorconv"
	"gonum.org/v1/plot/palette/moreland"
)

// DefaultLevels is the size of the default palette.
const DefaultLevels = 64

// Hue endpoints of HuePalette, in degrees.
const (
	hueClean    = 240.0 // blue
	huePolluted = 0.0   // red
)

// Palette is an ordered colour scale, low values first.
// It satisfies gonum's palette.Palette.
type Palette []color.RGBA

// Colors implements gonum.org/v1/plot/palette.Palette.
func (p Palette) Colors() []color.Color {
	out := make([]color.Color, len(p))
	for i, c := range p {
		out[i] = c
	}

	return out
}

// At returns the colour for t in [0,1]; t outside is clamped and NaN maps to
// the first colour.
func (p Palette) At(t float64) color.RGBA {
	if !(t > 0) {
		return p[0]
	}
	if t >= 1 {
		return p[len(p)-1]
	}

	return p[int(t*float64(len(p)-1)+0.5)]
}

// hex lists the palette as CSS colours.
func (p Palette) hex() []string {
	out := make([]string, len(p))
	for i, c := range p {
		out[i] = fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}

	return out
}

// HuePalette returns n colours at full saturation and value, hue running
// from blue to red. Panics if n < 2.
func HuePalette(n int) Palette {
	mustLevels(n)
	p := make(Palette, n)
	for i := range p {
		t := float64(i) / float64(n-1)
		hue := hueClean + t*(huePolluted-hueClean)
		r, g, b, _ := colorconv.HSVToRGB(hue, 1, 1)
		p[i] = color.RGBA{R: r, G: g, B: b, A: 0xff}
	}

	return p
}

// Gray returns n shades from black to white. Panics if n < 2.
func Gray(n int) Palette {
	mustLevels(n)
	p := make(Palette, n)
	for i := range p {
		v := uint8(i * 0xff / (n - 1))
		p[i] = color.RGBA{R: v, G: v, B: v, A: 0xff}
	}

	return p
}

// Moreland returns n colours of the smooth blue-red map. Panics if n < 2.
func Moreland(n int) Palette {
	mustLevels(n)
	cm := moreland.SmoothBlueRed()
	cm.SetMax(1)
	cm.SetMin(0)
	src := cm.Palette(n).Colors()
	p := make(Palette, len(src))
	for i, c := range src {
		p[i] = color.RGBAModel.Convert(c).(color.RGBA)
	}

	return p
}

func mustLevels(n int) {
	if n < 2 {
		panic(fmt.Sprintf(panicLevels, n))
	}
}
