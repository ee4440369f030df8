// SPDX-License-Identifier: MIT
// Package: hydrovary/state
//
// coords.go - cell index to physical coordinate conversion.

package state

// CellCenter converts a 1-based cell index vector into physical coordinates
// using the cell-center convention: (index-1)*resolution + resolution/2.
// Callers must apply this exactly once per location; HeatPump tracks that
// via LocationIsCoords.
func CellCenter(cell Vec3, resolution float64) Vec3 {
	var out Vec3
	for axis, c := range cell {
		out[axis] = (c-1)*resolution + resolution*0.5
	}
	return out
}
