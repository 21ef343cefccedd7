// SPDX-License-Identifier: MIT

package airquality

import (
	"math"

	"github.com/katalvlaran/smoglab/field"
)

// BBox is the geographic rectangle the grid covers. Row 0 is the northern
// edge and column 0 the western edge. The zero BBox means "no mapping":
// every reading lands in the grid center.
type BBox struct {
	North float64 `yaml:"north"`
	South float64 `yaml:"south"`
	West  float64 `yaml:"west"`
	East  float64 `yaml:"east"`
}

// IsZero reports whether b is the zero BBox.
func (b BBox) IsZero() bool {
	return b == BBox{}
}

// Validate reports ErrInvalidBBox unless North > South and East > West.
// The zero BBox is valid.
func (b BBox) Validate() error {
	if b.IsZero() {
		return nil
	}
	if !(b.North > b.South) || !(b.East > b.West) {
		return ErrInvalidBBox
	}

	return nil
}

// Locate maps (lat, lon) to the nearest cell of a rows×cols grid.
// The zero BBox returns the center cell regardless of coordinates.
// Returns ErrInvalidBBox or ErrOutsideArea.
func (b BBox) Locate(lat, lon float64, rows, cols int) (field.Position, error) {
	if b.IsZero() {
		return field.Position{X: rows / 2, Y: cols / 2}, nil
	}
	if err := b.Validate(); err != nil {
		return field.Position{}, err
	}
	if lat > b.North || lat < b.South || lon < b.West || lon > b.East {
		return field.Position{}, ErrOutsideArea
	}

	fx := (b.North - lat) / (b.North - b.South)
	fy := (lon - b.West) / (b.East - b.West)

	return field.Position{
		X: int(math.Round(fx * float64(rows-1))),
		Y: int(math.Round(fy * float64(cols-1))),
	}, nil
}
