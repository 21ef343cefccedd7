// SPDX-License-Identifier: MIT

// Package field - Field storage (row-major) & safe accessors.
//
// Purpose:
//   - Keep the grid in one flat buffer with offset = x*cols + y.
//   - Return errors from the public surface instead of panicking.
//   - Reject NaN/Inf on every write so the "finite reals" invariant holds.

package field

import (
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
)

const (
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxSetPoint = "SetPoint"
)

// Field is a fixed-shape grid of pollutant intensities.
type Field struct {
	rows, cols int
	data       []float64 // len == rows*cols, row-major
}

// New creates a rows×cols Field with every cell at zero.
// Returns ErrInvalidDimensions if rows <= 0 or cols <= 0.
// Complexity: O(rows*cols).
func New(rows, cols int) (*Field, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Field{rows: rows, cols: cols, data: make([]float64, rows*cols)}, nil
}

// FromRows builds a Field from a rectangular 2D slice, deep-copying it.
// Returns ErrInvalidDimensions for an empty input, ErrNonRectangular for
// jagged rows and ErrNonFinite for NaN/Inf values.
func FromRows(values [][]float64) (*Field, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	r, c := len(values), len(values[0])
	f := &Field{rows: r, cols: c, data: make([]float64, r*c)}
	for x, row := range values {
		if len(row) != c {
			return nil, ErrNonRectangular
		}
		for y, v := range row {
			if !isFinite(v) {
				return nil, fieldErrorf("FromRows", x, y, ErrNonFinite)
			}
		}
		copy(f.data[x*c:(x+1)*c], row)
	}

	return f, nil
}

// Rows returns the number of rows.
func (f *Field) Rows() int { return f.rows }

// Cols returns the number of columns.
func (f *Field) Cols() int { return f.cols }

// InBounds reports whether p addresses a cell of f.
func (f *Field) InBounds(p Position) bool {
	return p.X >= 0 && p.X < f.rows && p.Y >= 0 && p.Y < f.cols
}

// IsBorder reports whether p lies on the outer ring that Diffuse never
// updates. Positions outside the grid are not border cells.
func (f *Field) IsBorder(p Position) bool {
	if !f.InBounds(p) {
		return false
	}
	return p.X == 0 || p.Y == 0 || p.X == f.rows-1 || p.Y == f.cols-1
}

// indexOf computes the flat offset of (x,y) or reports ErrOutOfBounds.
func (f *Field) indexOf(method string, x, y int) (int, error) {
	if x < 0 || x >= f.rows || y < 0 || y >= f.cols {
		return 0, fieldErrorf(method, x, y, ErrOutOfBounds)
	}

	return x*f.cols + y, nil
}

// At returns the intensity at row x, column y.
func (f *Field) At(x, y int) (float64, error) {
	idx, err := f.indexOf(ctxAt, x, y)
	if err != nil {
		return 0, err
	}

	return f.data[idx], nil
}

// Set writes v at row x, column y.
// Returns ErrOutOfBounds or ErrNonFinite; the field is unchanged on error.
func (f *Field) Set(x, y int, v float64) error {
	idx, err := f.indexOf(ctxSet, x, y)
	if err != nil {
		return err
	}
	if !isFinite(v) {
		return fieldErrorf(ctxSet, x, y, ErrNonFinite)
	}
	f.data[idx] = v

	return nil
}

// SetPoint places a pollution source: the cell at p is overwritten with
// intensity and every other cell is left untouched.
//
// Errors:
//   - ErrOutOfBounds if p is outside the grid (no clamping).
//   - ErrNonFinite if intensity is NaN or ±Inf.
//
// Negative intensities are accepted; they carry no physical meaning but the
// grid does not police them.
func (f *Field) SetPoint(p Position, intensity float64) error {
	idx, err := f.indexOf(ctxSetPoint, p.X, p.Y)
	if err != nil {
		return err
	}
	if !isFinite(intensity) {
		return fieldErrorf(ctxSetPoint, p.X, p.Y, ErrNonFinite)
	}
	f.data[idx] = intensity

	return nil
}

// Clone returns an independent deep copy of f.
func (f *Field) Clone() *Field {
	data := make([]float64, len(f.data))
	copy(data, f.data)

	return &Field{rows: f.rows, cols: f.cols, data: data}
}

// Equal reports whether g has the same shape and bit-identical values.
func (f *Field) Equal(g *Field) bool {
	if f == nil || g == nil {
		return f == g
	}
	if f.rows != g.rows || f.cols != g.cols {
		return false
	}
	for i, v := range f.data {
		if g.data[i] != v {
			return false
		}
	}

	return true
}

// ToRows returns a deep copy of the grid as a [][]float64 (row-major).
func (f *Field) ToRows() [][]float64 {
	out := make([][]float64, f.rows)
	for x := 0; x < f.rows; x++ {
		out[x] = make([]float64, f.cols)
		copy(out[x], f.data[x*f.cols:(x+1)*f.cols])
	}

	return out
}

// Mass returns the total intensity held by the grid.
func (f *Field) Mass() float64 {
	return floats.Sum(f.data)
}

// Stats returns min, max, mean and total mass in one pass over the buffer.
func (f *Field) Stats() Stats {
	mass := floats.Sum(f.data)

	return Stats{
		Min:  floats.Min(f.data),
		Max:  floats.Max(f.data),
		Mean: mass / float64(len(f.data)),
		Mass: mass,
	}
}

// String renders the grid one bracketed row per line, for debugging.
func (f *Field) String() string {
	var sb strings.Builder
	for x := 0; x < f.rows; x++ {
		sb.WriteString("[")
		for y := 0; y < f.cols; y++ {
			if y > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(formatValue(f.data[x*f.cols+y]))
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
