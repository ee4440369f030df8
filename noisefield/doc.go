// SPDX-License-Identifier: MIT

// Package noisefield evaluates coherent 3D gradient (Perlin) noise over the
// simulation grid and rescales it into physically meaningful ranges.
//
// The raw noise amplitude is data dependent, so Generate rescales each field
// by its own observed minimum and maximum into the requested [min,max]. Two
// fields generated with the same frequency but different offsets therefore
// end up with different absolute rescalings; that is intentional, the caller
// draws a fresh large offset per field so independent parameters never alias
// the same noise neighborhood.
//
// The generator is distribution agnostic: for logarithmically distributed
// parameters the caller converts the target bounds to log10 space before
// calling and exponentiates the result afterwards.
//
// PressureFromGradient derives a hydrostatic-like pressure field from a
// gradient field by vertical integration from a standard-atmosphere
// reference. Its integration direction and reference constant are fixed for
// compatibility with the downstream input deck consumers.
package noisefield
