// SPDX-License-Identifier: MIT

package plume

import (
	"math"

	"github.com/katalvlaran/smoglab/field"
)

// Find returns every plume of cells >= threshold, ordered by the row-major
// position of each plume's first cell. A field with no polluted cell yields
// an empty, non-nil slice.
func Find(f *field.Field, threshold float64, conn Connectivity) ([]Plume, error) {
	if f == nil {
		return nil, field.ErrNilField
	}
	if math.IsNaN(threshold) {
		return nil, ErrInvalidThreshold
	}

	rows, cols := f.Rows(), f.Cols()
	polluted := func(x, y int) bool {
		v, _ := f.At(x, y)
		return v >= threshold
	}
	seen := make([]bool, rows*cols)
	offsets := conn.offsets()
	plumes := []Plume{}

	for x := 0; x < rows; x++ {
		for y := 0; y < cols; y++ {
			if seen[x*cols+y] || !polluted(x, y) {
				continue
			}
			// BFS from (x,y)
			seen[x*cols+y] = true
			queue := []field.Position{{X: x, Y: y}}
			p := Plume{Peak: math.Inf(-1)}

			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				v, _ := f.At(u.X, u.Y)
				p.Mass += v
				if v > p.Peak {
					p.Peak, p.PeakAt = v, u
				}
				for _, d := range offsets {
					nx, ny := u.X+d[0], u.Y+d[1]
					if nx < 0 || nx >= rows || ny < 0 || ny >= cols {
						continue
					}
					if seen[nx*cols+ny] || !polluted(nx, ny) {
						continue
					}
					seen[nx*cols+ny] = true
					queue = append(queue, field.Position{X: nx, Y: ny})
				}
			}
			p.Cells = queue
			plumes = append(plumes, p)
		}
	}

	return plumes, nil
}

// Largest returns the plume with the most cells; ties go to the larger mass,
// then to the earlier plume. ok is false for an empty slice.
func Largest(plumes []Plume) (best Plume, ok bool) {
	for i, p := range plumes {
		if i == 0 || p.Size() > best.Size() || (p.Size() == best.Size() && p.Mass > best.Mass) {
			best = p
		}
	}

	return best, len(plumes) > 0
}

// Coverage is the fraction of cells belonging to any plume.
func Coverage(f *field.Field, plumes []Plume) float64 {
	if f == nil || f.Rows()*f.Cols() == 0 {
		return 0
	}
	n := 0
	for _, p := range plumes {
		n += p.Size()
	}

	return float64(n) / float64(f.Rows()*f.Cols())
}
