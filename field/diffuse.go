// SPDX-License-Identifier: MIT

package field

import (
	"fmt"
	"math"
)

// neighborhood is the number of cells in the 3×3 stencil.
const neighborhood = 9

// Diffuse performs one explicit relaxation step toward the local 3×3 mean
// and returns the result as a new Field. The receiver is not modified.
//
// For every interior cell (1 ≤ x < rows-1, 1 ≤ y < cols-1):
//
//	mean = (sum of the 9 cells centered on (x,y)) / 9
//	new  = (1-rate)·old + rate·mean
//
// which is old + rate·(mean-old) written so that rate 0 reproduces old and
// rate 1 reproduces mean without rounding drift. Border cells are copied
// as-is. Grids with fewer than 3 rows or columns have no interior and come
// back as an equal copy.
//
// Rate 0 returns an equal copy without touching the stencil. When the 9-cell
// sum of large finite values overflows, the mean is accumulated from
// pre-divided terms instead, so the result stays finite.
//
// Mass is conserved only approximately: the fixed border keeps what it
// holds and never passes it on.
//
// Returns ErrInvalidRate if rate is outside [0,1] or NaN.
// Deterministic: fixed loop order, no randomness.
// Complexity: O(rows*cols) time, one new buffer.
func (f *Field) Diffuse(rate float64) (*Field, error) {
	if err := ValidateRate(rate); err != nil {
		return nil, fmt.Errorf("Field.Diffuse(%g): %w", rate, err)
	}

	out := f.Clone()
	r, c := f.rows, f.cols
	if rate == 0 || r < 3 || c < 3 {
		return out, nil
	}

	src, dst := f.data, out.data
	keep := 1 - rate
	for x := 1; x < r-1; x++ {
		for y := 1; y < c-1; y++ {
			up := (x-1)*c + y
			mid := x*c + y
			down := (x+1)*c + y
			sum := src[up-1] + src[up] + src[up+1] +
				src[mid-1] + src[mid] + src[mid+1] +
				src[down-1] + src[down] + src[down+1]
			mean := sum / neighborhood
			if math.IsInf(sum, 0) {
				mean = scaledMean(src, up, mid, down)
			}
			dst[mid] = keep*src[mid] + rate*mean
		}
	}

	return out, nil
}

// scaledMean divides before adding, for stencils whose plain sum overflows.
func scaledMean(src []float64, up, mid, down int) float64 {
	var m float64
	for _, row := range [3]int{up, mid, down} {
		m += src[row-1]/neighborhood + src[row]/neighborhood + src[row+1]/neighborhood
	}

	return m
}

// DiffuseN applies Diffuse n times and returns the final Field. n == 0
// returns a copy of f. The input is never modified.
// Returns ErrNilField, ErrInvalidSteps or ErrInvalidRate.
func DiffuseN(f *Field, rate float64, n int) (*Field, error) {
	if f == nil {
		return nil, ErrNilField
	}
	if n < 0 {
		return nil, fmt.Errorf("DiffuseN(%d): %w", n, ErrInvalidSteps)
	}
	if err := ValidateRate(rate); err != nil {
		return nil, fmt.Errorf("DiffuseN(%g): %w", rate, err)
	}

	cur := f.Clone()
	for i := 0; i < n; i++ {
		next, err := cur.Diffuse(rate)
		if err != nil {
			return nil, err
		}
		cur = next
	}

	return cur, nil
}
