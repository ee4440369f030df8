// SPDX-License-Identifier: MIT
// Package: hydrovary/state
//
// errors.go - sentinel errors for the data model.
//
// Error policy (same as everywhere in this module):
//   - Only package-level sentinels are exposed.
//   - Callers branch with errors.Is; call sites attach context via %w.
//   - No panics at runtime; invariant violations surface as ErrInvariant.

package state

import "errors"

// ErrBadDimension indicates a vector value that is neither two- nor
// three-dimensional. Two-dimensional input is normalized by appending 1.
var ErrBadDimension = errors.New("state: value must be given in two or three dimensions")

// ErrMinMaxOrder indicates a range whose max is smaller than its min.
var ErrMinMaxOrder = errors.New("state: max must be greater or equal to min")

// ErrLocationNeedsSpaceVary indicates a heat pump declared without a location
// while its vary mode is not spatial. A nil location is only meaningful when
// the engine draws a random one per datapoint.
var ErrLocationNeedsSpaceVary = errors.New("state: heat pump location may only be null when vary mode is spatial")

// ErrBadGroupSize indicates a heat pump group with a non-positive count.
var ErrBadGroupSize = errors.New("state: heat pump group number must be positive")

// ErrBadDatapointCount indicates a non-positive requested datapoint count.
var ErrBadDatapointCount = errors.New("state: number of datapoints must be positive")

// ErrInvariant flags a programming-level invariant violation (assert class),
// e.g. a residual heat pump group after expansion. These are defects, not
// user errors, and abort the run loudly.
var ErrInvariant = errors.New("state: internal invariant violated")
