// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/smoglab/field"
)

// minPlotSide keeps small grids readable once axes and title are added.
const minPlotSide = 4 * vg.Inch

// fieldGrid adapts a field to plotter.GridXYZ. Plot Y grows upwards, so
// grid row r shows field row Rows-1-r and row 0 ends up on top.
type fieldGrid struct {
	f *field.Field
}

var _ plotter.GridXYZ = fieldGrid{}

func (g fieldGrid) Dims() (c, r int) { return g.f.Cols(), g.f.Rows() }
func (g fieldGrid) X(c int) float64  { return float64(c) }
func (g fieldGrid) Y(r int) float64  { return float64(r) }
func (g fieldGrid) Z(c, r int) float64 {
	v, _ := g.f.At(g.f.Rows()-1-r, c)
	return v
}

// WriteHeatmapPNG writes f as a PNG heatmap with axes and a title.
func WriteHeatmapPNG(w io.Writer, f *field.Field, opts ...Option) error {
	if f == nil {
		return field.ErrNilField
	}
	cfg := newConfig(opts)
	lo, hi := cfg.valueRange(f)

	p := plot.New()
	p.Title.Text = cfg.title
	p.X.Label.Text = "column"
	p.Y.Label.Text = "row (from bottom)"

	hm := plotter.NewHeatMap(fieldGrid{f: f}, cfg.palette)
	hm.Min, hm.Max = lo, hi
	hm.Underflow = cfg.palette[0]
	hm.Overflow = cfg.palette[len(cfg.palette)-1]
	p.Add(hm)

	width := max(vg.Points(float64(f.Cols()*cfg.scale)), minPlotSide)
	height := max(vg.Points(float64(f.Rows()*cfg.scale)), minPlotSide)
	wt, err := p.WriterTo(width, height, "png")
	if err != nil {
		return fmt.Errorf("render: heatmap png: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("render: heatmap png: %w", err)
	}

	return nil
}
