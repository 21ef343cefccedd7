// SPDX-License-Identifier: MIT

// Package render turns a field.Field into pictures.
//
// What:
//
//   - Image: one solid square of Scale×Scale pixels per cell (ebiten window, video).
//   - WriteHeatmapPNG: annotated heatmap with axes via gonum/plot.
//   - WriteHeatmapHTML: interactive heatmap page via go-echarts.
//   - VideoRecorder: MJPEG AVI, one Image per frame.
//   - Text: ASCII ramp, one character per cell.
//
// Rows run top to bottom and columns left to right in every output, so
// Position{X: 0, Y: 0} is always the top-left corner.
//
// Colour scale:
//
//   - HuePalette sweeps HSV hue from blue (clean) to red (polluted).
//   - Moreland is gonum's smooth blue-red diverging map.
//   - Gray is a plain black-to-white ramp.
//
// Without WithRange the scale runs from min(0, field minimum) to the field
// maximum, so an all-zero field renders entirely in the first colour.
package render
