// SPDX-License-Identifier: MIT

package field

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ToDense copies f into a gonum *mat.Dense of the same shape, for callers
// that want gonum's linear-algebra routines on a snapshot.
func (f *Field) ToDense() *mat.Dense {
	data := make([]float64, len(f.data))
	copy(data, f.data)

	return mat.NewDense(f.rows, f.cols, data)
}

// FromMatrix copies any gonum matrix into a new Field.
// Returns ErrInvalidDimensions for an empty matrix and ErrNonFinite if any
// element is NaN or ±Inf.
func FromMatrix(m mat.Matrix) (*Field, error) {
	if m == nil {
		return nil, ErrNilField
	}
	r, c := m.Dims()
	f, err := New(r, c)
	if err != nil {
		return nil, err
	}
	for x := 0; x < r; x++ {
		for y := 0; y < c; y++ {
			v := m.At(x, y)
			if !isFinite(v) {
				return nil, fmt.Errorf("FromMatrix(%d,%d): %w", x, y, ErrNonFinite)
			}
			f.data[x*c+y] = v
		}
	}

	return f, nil
}
