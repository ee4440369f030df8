// SPDX-License-Identifier: MIT
// Package: hydrovary/noisefield
//
// noisefield.go - grid evaluation of 3D Perlin noise with rescaling.
//
// Determinism:
//   - The Perlin generator is seeded from the run's noise seed, so identical
//     settings produce bit-identical fields.
//   - Grid cells are visited x-major, then y, then z; the order never changes.

package noisefield

import (
	perlin "github.com/aquilax/go-perlin"

	"hydrovary/state"
)

// Perlin permutation parameters. Alpha is the weight falloff per octave,
// beta the harmonic scaling, n the octave count.
const (
	perlinAlpha   = 2.0
	perlinBeta    = 2.0
	perlinOctaves = 3
)

// Generate evaluates seeded 3D Perlin noise over the run's grid and rescales
// the result linearly into [minVal, maxVal].
//
// Each axis coordinate is normalized into a unit cube first: the simulation
// area is scaled by cellCount/max(cellCounts) per axis so the largest axis
// spans [0,1) and the others proportionally less. The offset shifts the
// sampling window (callers draw it randomly, scaled large, per field) and
// freq stretches it per axis.
//
// A degenerate field whose observed minimum equals its maximum (e.g. a 1x1x1
// grid) rescales to the midpoint of [minVal, maxVal] instead of dividing by
// zero.
func Generate(st *state.RunState, minVal, maxVal float64, offset, freq state.Vec3) *state.Field {
	cells := st.General.NumberCells
	noise := perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, st.NoiseSeed())

	// Scale the simulation area down into a unit cube.
	largest := cells[0]
	for _, n := range cells[1:] {
		if n > largest {
			largest = n
		}
	}
	var scale state.Vec3
	for axis := range scale {
		scale[axis] = float64(cells[axis]) / float64(largest)
	}

	field := state.NewField(cells)
	for i := 0; i < cells[0]; i++ {
		x := (float64(i)/float64(cells[0])*scale[0] + offset[0]) * freq[0]
		for j := 0; j < cells[1]; j++ {
			y := (float64(j)/float64(cells[1])*scale[1] + offset[1]) * freq[1]
			for k := 0; k < cells[2]; k++ {
				z := (float64(k)/float64(cells[2])*scale[2] + offset[2]) * freq[2]
				field.Set(i, j, k, noise.Noise3D(x, y, z))
			}
		}
	}

	Rescale(field, minVal, maxVal)
	return field
}

// Rescale maps the field linearly from its observed bounds onto
// [minVal, maxVal] in place. A constant field maps to the midpoint.
func Rescale(f *state.Field, minVal, maxVal float64) {
	lo, hi := f.Bounds()
	if hi == lo {
		mid := (minVal + maxVal) / 2
		for i := range f.Vals {
			f.Vals[i] = mid
		}
		return
	}
	span := maxVal - minVal
	for i, v := range f.Vals {
		f.Vals[i] = (v-lo)/(hi-lo)*span + minVal
	}
}
