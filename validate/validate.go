// SPDX-License-Identifier: MIT
// Package: hydrovary/validate
//
// validate.go - the two validation entry points.

package validate

import (
	"errors"
	"fmt"

	"hydrovary/state"
)

// requiredBackground are the background parameters the renderer cannot work
// without. Porosity has a usable default, so it is not in this list.
var requiredBackground = []string{
	state.ParamPermeability,
	state.ParamPressureGradient,
	state.ParamTemperature,
}

// fileGroup are the parameters that describe one consistent field set when
// read from files. Mixing file-backed and inline declarations within the
// group silently decouples fields that belong together.
var fileGroup = []string{
	state.ParamPermeability,
	state.ParamPressureGradient,
	state.ParamTemperature,
}

// Config validates a freshly loaded run state. It returns all problems at
// once (joined) rather than stopping at the first, plus non-fatal warnings.
func Config(st *state.RunState) (warnings []string, err error) {
	var errs []error

	if gerr := st.General.Validate(); gerr != nil {
		errs = append(errs, gerr)
	}

	for _, name := range requiredBackground {
		if !st.Hydrogeological.Has(name) {
			errs = append(errs, fmt.Errorf("%q: %w", name, ErrMissingParameter))
		}
	}

	st.Hydrogeological.Range(func(name string, p state.Parameter) bool {
		switch p.Value.(type) {
		case state.HeatPump, state.HeatPumpGroup:
			errs = append(errs, fmt.Errorf("%q: %w", name, ErrHeatPumpInBackground))
		case state.FileRef:
			if verr := fileRefVary(p); verr != nil {
				errs = append(errs, verr)
			}
		}
		if perr := p.Validate(); perr != nil {
			errs = append(errs, perr)
		}
		return true
	})

	if gerr := fileGroupConsistent(st); gerr != nil {
		errs = append(errs, gerr)
	}

	st.HeatPumpParams.Range(func(_ string, p state.Parameter) bool {
		if perr := p.Validate(); perr != nil {
			errs = append(errs, perr)
		}
		return true
	})
	if st.HeatPumpParams.Len() == 0 {
		warnings = append(warnings, "no heat pumps declared; datapoints will contain background fields only")
	}

	return warnings, errors.Join(errs...)
}

// fileRefVary enforces the vary modes under which a file reference makes
// sense: fixed for everyone, and additionally list for permeability, where
// each file enumerates one pre-built field.
func fileRefVary(p state.Parameter) error {
	if p.Vary == state.VaryFixed {
		return nil
	}
	if p.Name == state.ParamPermeability && p.Vary == state.VaryList {
		return nil
	}
	return fmt.Errorf("%q with vary %q: %w", p.Name, p.Vary, ErrFileRefVary)
}

func fileGroupConsistent(st *state.RunState) error {
	refs := 0
	present := 0
	for _, name := range fileGroup {
		p, ok := st.Hydrogeological.Get(name)
		if !ok {
			continue
		}
		present++
		if _, isRef := p.Value.(state.FileRef); isRef {
			refs++
		}
	}
	if refs != 0 && refs != present {
		return fmt.Errorf("%v: %d of %d are file references: %w", fileGroup, refs, present, ErrPartialFileGroup)
	}
	return nil
}

// Prepared validates the state after the preparation stage: no groups or
// file references may survive, and no two pumps may share a location.
func Prepared(st *state.RunState) error {
	var errs []error

	st.Hydrogeological.Range(func(name string, p state.Parameter) bool {
		if _, isRef := p.Value.(state.FileRef); isRef {
			errs = append(errs, fmt.Errorf("file reference %q survived preparation: %w", name, state.ErrInvariant))
		}
		return true
	})
	st.HeatPumpParams.Range(func(name string, p state.Parameter) bool {
		if _, isGroup := p.Value.(state.HeatPumpGroup); isGroup {
			errs = append(errs, fmt.Errorf("group %q survived preparation: %w", name, state.ErrInvariant))
		}
		return true
	})

	for _, clash := range DuplicateLocations(st.HeatPumpParams) {
		errs = append(errs, fmt.Errorf("pumps %q and %q at %v: %w", clash.First, clash.Second, clash.Location, ErrDuplicateLocation))
	}

	return errors.Join(errs...)
}

// LocationClash names two pumps that resolved to the same location.
type LocationClash struct {
	First    string
	Second   string
	Location state.Vec3
}

// DuplicateLocations reports every pair of heat pumps in params that share a
// location. Pumps without a location (drawn later) are skipped.
func DuplicateLocations(params *state.ParamMap) []LocationClash {
	seen := make(map[state.Vec3]string)
	var clashes []LocationClash
	params.Range(func(name string, p state.Parameter) bool {
		hp, ok := p.Value.(state.HeatPump)
		if !ok || hp.Location == nil {
			return true
		}
		if first, dup := seen[*hp.Location]; dup {
			clashes = append(clashes, LocationClash{First: first, Second: name, Location: *hp.Location})
			return true
		}
		seen[*hp.Location] = name
		return true
	})
	return clashes
}
