// SPDX-License-Identifier: MIT

// Package plume finds contiguous polluted regions in a field.Field.
//
// What:
//
//   - A cell is polluted when its value is >= the threshold.
//   - A plume is a maximal set of polluted cells joined by Conn4 (N, E, S, W)
//     or Conn8 (also the diagonals) neighbours.
//   - Each Plume carries its cells, size, summed mass and peak.
//
// Complexity:
//
//   - Find: O(R×C×d) time, O(R×C) memory, d = 4 or 8.
//
// Errors:
//
//   - field.ErrNilField: nil input.
//   - ErrInvalidThreshold: NaN threshold.
package plume
