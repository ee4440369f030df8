// SPDX-License-Identifier: MIT
package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hydrovary/state"
	"hydrovary/validate"
)

// TestConfig_Defaults verifies that the default state passes the gate
// without warnings.
func TestConfig_Defaults(t *testing.T) {
	warnings, err := validate.Config(state.New())
	assert.NoError(t, err)
	assert.Empty(t, warnings)
}

// TestConfig_MissingRequired verifies that each missing mandatory
// background parameter is reported.
func TestConfig_MissingRequired(t *testing.T) {
	st := state.New()
	st.Hydrogeological = state.NewParamMap()

	_, err := validate.Config(st)
	assert.ErrorIs(t, err, validate.ErrMissingParameter)
	assert.ErrorContains(t, err, state.ParamPermeability)
	assert.ErrorContains(t, err, state.ParamPressureGradient)
	assert.ErrorContains(t, err, state.ParamTemperature)
}

// TestConfig_HeatPumpInBackground verifies rejection of pump-shaped values
// in the background family.
func TestConfig_HeatPumpInBackground(t *testing.T) {
	loc := state.Vec3{1, 1, 1}
	st := state.New(state.WithHydrogeological(state.Parameter{
		Name: "sneaky",
		Vary: state.VaryFixed,
		Value: state.HeatPump{
			Location:      &loc,
			InjectionTemp: state.Scalar(1),
			InjectionRate: state.Scalar(1),
		},
	}))

	_, err := validate.Config(st)
	assert.ErrorIs(t, err, validate.ErrHeatPumpInBackground)
}

// TestConfig_PartialFileGroup verifies the all-or-none rule over the
// mandatory background parameters.
func TestConfig_PartialFileGroup(t *testing.T) {
	st := state.New(state.WithHydrogeological(state.Parameter{
		Name: state.ParamPermeability, Vary: state.VaryFixed, Value: state.FileRef("perm.json"),
	}))

	_, err := validate.Config(st)
	assert.ErrorIs(t, err, validate.ErrPartialFileGroup)

	// All three from files is consistent.
	st = state.New(
		state.WithHydrogeological(state.Parameter{
			Name: state.ParamPermeability, Vary: state.VaryFixed, Value: state.FileRef("perm.json"),
		}),
		state.WithHydrogeological(state.Parameter{
			Name: state.ParamPressureGradient, Vary: state.VaryFixed, Value: state.FileRef("grad.json"),
		}),
		state.WithHydrogeological(state.Parameter{
			Name: state.ParamTemperature, Vary: state.VaryFixed, Value: state.FileRef("temp.json"),
		}),
	)
	_, err = validate.Config(st)
	assert.NoError(t, err)
}

// TestConfig_FileRefVary verifies the vary modes a file reference may carry:
// fixed everywhere, list additionally for permeability.
func TestConfig_FileRefVary(t *testing.T) {
	st := state.New(state.WithHydrogeological(state.Parameter{
		Name: state.ParamPorosity, Vary: state.VaryConst, Value: state.FileRef("por.json"),
	}))
	_, err := validate.Config(st)
	assert.ErrorIs(t, err, validate.ErrFileRefVary)

	st = state.New(
		state.WithHydrogeological(state.Parameter{
			Name: state.ParamPermeability, Vary: state.VaryList, Value: state.FileRef("perm.json"),
		}),
		state.WithHydrogeological(state.Parameter{
			Name: state.ParamPressureGradient, Vary: state.VaryFixed, Value: state.FileRef("grad.json"),
		}),
		state.WithHydrogeological(state.Parameter{
			Name: state.ParamTemperature, Vary: state.VaryFixed, Value: state.FileRef("temp.json"),
		}),
	)
	_, err = validate.Config(st)
	assert.NoError(t, err, "list-varied permeability files are allowed")
}

// TestConfig_NoHeatPumpsWarns verifies that an empty pump set is a warning,
// not an error.
func TestConfig_NoHeatPumpsWarns(t *testing.T) {
	st := state.New(state.WithHeatPumps())
	warnings, err := validate.Config(st)
	assert.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "no heat pumps")
}

// TestPrepared_DuplicateLocations verifies the post-preparation location
// uniqueness check.
func TestPrepared_DuplicateLocations(t *testing.T) {
	locA := state.Vec3{77.5, 157.5, 2.5}
	locB := state.Vec3{77.5, 157.5, 2.5}
	pump := func(name string, loc *state.Vec3) state.Parameter {
		return state.Parameter{
			Name: name,
			Vary: state.VaryFixed,
			Value: state.HeatPump{
				Location:         loc,
				LocationIsCoords: true,
				InjectionTemp:    state.SingleStepSeries(state.Scalar(13.6)),
				InjectionRate:    state.SingleStepSeries(state.Scalar(0.00024)),
			},
		}
	}

	st := state.New(state.WithHeatPumps(pump("hp1", &locA), pump("hp2", &locB)))
	err := validate.Prepared(st)
	assert.ErrorIs(t, err, validate.ErrDuplicateLocation)

	clashes := validate.DuplicateLocations(st.HeatPumpParams)
	require.Len(t, clashes, 1)
	assert.Equal(t, "hp1", clashes[0].First)
	assert.Equal(t, "hp2", clashes[0].Second)
}

// TestPrepared_Residuals verifies that surviving groups and file references
// are reported as internal invariant violations.
func TestPrepared_Residuals(t *testing.T) {
	st := state.New(
		state.WithHydrogeological(state.Parameter{
			Name: state.ParamPermeability, Vary: state.VaryFixed, Value: state.FileRef("perm.json"),
		}),
		state.WithHeatPumps(state.Parameter{
			Name: "ghp",
			Vary: state.VaryFixed,
			Value: state.HeatPumpGroup{
				Number:        2,
				InjectionTemp: state.Scalar(1),
				InjectionRate: state.Scalar(1),
			},
		}),
	)

	err := validate.Prepared(st)
	assert.ErrorIs(t, err, state.ErrInvariant)
}
