// SPDX-License-Identifier: MIT
// Package: hydrovary/validate
//
// errors.go - sentinel errors of the validation gate.

package validate

import "errors"

var (
	// ErrMissingParameter indicates an absent required background parameter.
	ErrMissingParameter = errors.New("validate: required background parameter missing")

	// ErrHeatPumpInBackground indicates a heat pump or heat pump group
	// declared in the background parameter family.
	ErrHeatPumpInBackground = errors.New("validate: heat pump value among background parameters")

	// ErrDuplicateLocation indicates two heat pumps resolved to the same
	// location.
	ErrDuplicateLocation = errors.New("validate: heat pumps share a location")

	// ErrPartialFileGroup indicates that only some of the file-backed
	// parameter group reference files. They describe one consistent field
	// set and must come from files together or not at all.
	ErrPartialFileGroup = errors.New("validate: file-backed parameters must be file references together or not at all")

	// ErrFileRefVary indicates a file reference under a vary mode that
	// cannot act on file content.
	ErrFileRefVary = errors.New("validate: file reference has unsupported vary mode")
)
