// SPDX-License-Identifier: MIT

// Package field holds a pollutant intensity grid and the local-averaging
// update that spreads it.
//
// What:
//
//   - Field is a fixed-shape rows×cols grid of float64 intensities, stored
//     row-major in a flat slice and zero-initialized on creation.
//   - SetPoint overwrites a single cell (a "pollution source").
//   - Diffuse produces a NEW Field in which every interior cell moved toward
//     the mean of its 3×3 neighborhood by a fraction rate ∈ [0,1]:
//
//     new = (1-rate)·old + rate·mean3x3
//
//   - The one-cell border is never updated by Diffuse; it keeps whatever was
//     last written to it.
//
// Coordinates:
//
//	Position{X, Y}: X indexes rows (0 ≤ X < Rows), Y indexes columns
//	(0 ≤ Y < Cols). Position{0,0} is the top-left corner.
//
// Errors:
//
//   - ErrInvalidDimensions: rows or cols ≤ 0.
//   - ErrOutOfBounds:       coordinate outside the grid.
//   - ErrInvalidRate:       rate outside [0,1] or NaN.
//   - ErrNonFinite:         NaN or ±Inf written into a cell.
//   - ErrNonRectangular:    jagged input to FromRows.
//
// Concurrency:
//
//	A Field has a single owner and no internal locking. Diffuse never
//	mutates its receiver, so a snapshot may be read while the owner swaps
//	in the next one.
//
// Complexity:
//
//   - New, Clone, Diffuse, Mass, Stats: O(rows·cols).
//   - At, Set, SetPoint: O(1).
package field
