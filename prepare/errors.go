// SPDX-License-Identifier: MIT
// Package: hydrovary/prepare
//
// errors.go - sentinel errors of the preparation stage.

package prepare

import "errors"

var (
	// ErrNameClash indicates a generated heat pump name that collides with
	// an explicitly declared pump or another generated one.
	ErrNameClash = errors.New("prepare: generated heat pump name already declared")

	// ErrLocationExhausted indicates that the expander could not draw a free
	// cell for a generated heat pump within the retry budget. The grid is
	// too crowded for the requested number of pumps.
	ErrLocationExhausted = errors.New("prepare: no collision-free heat pump location found")

	// ErrUnsupportedFile indicates a file-reference value with an extension
	// the read-in step does not handle.
	ErrUnsupportedFile = errors.New("prepare: unsupported value file type")
)
