// SPDX-License-Identifier: MIT
// Package: hydrovary/noisefield
//
// pressure.go - gradient field to pressure field integration.

package noisefield

import "hydrovary/state"

// ReferencePressure is the integration start value: standard atmosphere, Pa.
const ReferencePressure = 101325.0

// Conversion factor from the gradient's per-kilometer units to the cell
// resolution's meters.
const gradientUnitScale = 1000.0

// PressureFromGradient turns a hydraulic gradient field into a pressure
// field. The gradient is first rescaled into [minVal, maxVal] by its
// observed bounds, then integrated along the y axis: column j=0 starts at
// the standard atmosphere reference and each following column accumulates
// gradient*resolution*1000. Finally the x axis order is reversed.
//
// The integration direction and the reference constant must stay exactly as
// they are; the rendered input decks depend on them bit for bit.
func PressureFromGradient(gradient *state.Field, minVal, maxVal, resolution float64) *state.Field {
	Rescale(gradient, minVal, maxVal)

	cells := gradient.Cells
	pressure := state.NewField(cells)
	for i := 0; i < cells[0]; i++ {
		for k := 0; k < cells[2]; k++ {
			pressure.Set(i, 0, k, ReferencePressure)
		}
	}
	for j := 1; j < cells[1]; j++ {
		for i := 0; i < cells[0]; i++ {
			for k := 0; k < cells[2]; k++ {
				prev := pressure.At(i, j-1, k)
				pressure.Set(i, j, k, prev+gradient.At(i, j, k)*resolution*gradientUnitScale)
			}
		}
	}

	reverseX(pressure)
	return pressure
}

// reverseX flips the field along its first axis in place.
func reverseX(f *state.Field) {
	nx := f.Cells[0]
	plane := f.Cells[1] * f.Cells[2]
	for i := 0; i < nx/2; i++ {
		a := f.Vals[i*plane : (i+1)*plane]
		b := f.Vals[(nx-1-i)*plane : (nx-i)*plane]
		for n := range a {
			a[n], b[n] = b[n], a[n]
		}
	}
}
