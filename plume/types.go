// SPDX-License-Identifier: MIT

package plume

import (
	"fmt"

	"github.com/katalvlaran/smoglab/field"
)

// Connectivity selects which neighbours join a plume.
type Connectivity int

const (
	// Conn4 joins orthogonal neighbours: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 also joins diagonal neighbours.
	Conn8
)

// String returns "conn4" or "conn8".
func (c Connectivity) String() string {
	if c == Conn8 {
		return "conn8"
	}
	return "conn4"
}

// Plume is one connected polluted region.
type Plume struct {
	Cells  []field.Position // breadth-first order from the first cell found in row-major scan
	Mass   float64          // sum of cell values
	Peak   float64          // largest cell value
	PeakAt field.Position   // first cell holding Peak
}

// Size is the number of cells.
func (p Plume) Size() int { return len(p.Cells) }

// String summarizes p, e.g. "plume{size=5 mass=120.00 peak=82.22@(2,2)}".
func (p Plume) String() string {
	return fmt.Sprintf("plume{size=%d mass=%.2f peak=%.2f@%v}", p.Size(), p.Mass, p.Peak, p.PeakAt)
}

var (
	offsets4 = [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
	offsets8 = [][2]int{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}
)

func (c Connectivity) offsets() [][2]int {
	if c == Conn8 {
		return offsets8
	}
	return offsets4
}
