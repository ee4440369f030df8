// SPDX-License-Identifier: MIT
// Package: hydrovary/vary
//
// errors.go - sentinel errors for the variation engine.
//
// Usage errors name the offending parameter at the wrap site and tell the
// user which declaration would have been correct. None of them are retried;
// the whole run aborts.

package vary

import "errors"

// ErrConstNeedsMinMax indicates a const_within_datapoint parameter whose
// value is not a min/max range; const ramping is defined for ranges only.
var ErrConstNeedsMinMax = errors.New("vary: const vary mode requires a min/max value")

// ErrScalarUnderSpace indicates a spatially varying parameter declared with
// a plain scalar; it should be fixed or const with a min/max range instead.
var ErrScalarUnderSpace = errors.New("vary: scalar value cannot vary spatially; use fixed or a min/max range")

// ErrMinMaxUnderSpace indicates a spatially varying parameter declared with
// a bare min/max range; spatial variation needs a perlin descriptor.
var ErrMinMaxUnderSpace = errors.New("vary: min/max value cannot vary spatially; declare a perlin value instead")

// ErrUnsupportedCombination flags a (vary mode, value shape) pair with no
// implementation branch. Surfacing this loudly is deliberate: a silent no-op
// here would fabricate datapoints.
var ErrUnsupportedCombination = errors.New("vary: no implementation for this vary mode and value shape")
