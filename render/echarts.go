// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/katalvlaran/smoglab/field"
)

// WriteHeatmapHTML writes a standalone HTML page with an interactive
// heatmap of f. Hovering a cell shows column, row and value.
func WriteHeatmapHTML(w io.Writer, f *field.Field, options ...Option) error {
	if f == nil {
		return field.ErrNilField
	}
	cfg := newConfig(options)

	if err := heatmapChart(f, cfg).Render(w); err != nil {
		return fmt.Errorf("render: heatmap html: %w", err)
	}

	return nil
}

func heatmapChart(f *field.Field, cfg config) *charts.HeatMap {
	rows, cols := f.Rows(), f.Cols()
	lo, hi := cfg.valueRange(f)

	xs := make([]string, cols)
	for y := range xs {
		xs[y] = strconv.Itoa(y)
	}
	// echarts puts category 0 at the bottom; list rows bottom-up.
	ys := make([]string, rows)
	for k := range ys {
		ys[k] = strconv.Itoa(rows - 1 - k)
	}

	data := make([]opts.HeatMapData, 0, rows*cols)
	for x := 0; x < rows; x++ {
		for y := 0; y < cols; y++ {
			v, _ := f.At(x, y)
			data = append(data, opts.HeatMapData{Value: [3]interface{}{y, rows - 1 - x, v}})
		}
	}

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: cfg.title, Width: "900px", Height: "900px"}),
		charts.WithTitleOpts(opts.Title{Title: cfg.title, Subtitle: fmt.Sprintf("%dx%d mass=%.2f", rows, cols, f.Mass())}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", Data: xs, Name: "column"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Data: ys, Name: "row"}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        float32(lo),
			Max:        float32(hi),
			InRange:    &opts.VisualMapInRange{Color: cfg.palette.hex()},
		}),
	)
	hm.SetXAxis(xs).AddSeries("pollution", data)

	return hm
}
