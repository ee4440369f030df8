// SPDX-License-Identifier: MIT
package state_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hydrovary/state"
)

// TestOrderedMap_InsertionOrder verifies that iteration follows insertion
// order and that overwriting a key keeps its original position.
func TestOrderedMap_InsertionOrder(t *testing.T) {
	m := state.NewParamMap()
	m.Set("c", state.Parameter{Name: "c"})
	m.Set("a", state.Parameter{Name: "a"})
	m.Set("b", state.Parameter{Name: "b"})
	assert.Equal(t, []string{"c", "a", "b"}, m.Names())

	m.Set("a", state.Parameter{Name: "a", Vary: state.VaryConst})
	assert.Equal(t, []string{"c", "a", "b"}, m.Names(), "overwrite must not move the key")

	p, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, state.VaryConst, p.Vary)
	assert.Equal(t, 3, m.Len())
}

// TestSource_Deterministic verifies that two sources with the same seed
// produce identical draw sequences.
func TestSource_Deterministic(t *testing.T) {
	a := state.NewSource(7)
	b := state.NewSource(7)
	for i := 0; i < 16; i++ {
		assert.Equal(t, a.Float64(), b.Float64(), "draw %d diverged", i)
	}
}

// TestSource_Vec3ConsumesThreeDraws verifies that a Vec3 draw equals three
// consecutive Float64 draws in x, y, z order.
func TestSource_Vec3ConsumesThreeDraws(t *testing.T) {
	a := state.NewSource(11)
	b := state.NewSource(11)

	v := a.Vec3()
	assert.Equal(t, b.Float64(), v[0])
	assert.Equal(t, b.Float64(), v[1])
	assert.Equal(t, b.Float64(), v[2])
}

// TestSource_Unseeded verifies that an unseeded source still records its
// effective seed so a run can be reproduced after the fact.
func TestSource_Unseeded(t *testing.T) {
	src := state.NewUnseededSource()
	replay := state.NewSource(src.Seed())
	assert.Equal(t, src.Float64(), replay.Float64())
}

// TestParameter_CloneIsolation verifies that a cloned declaration shares no
// mutable memory with the original.
func TestParameter_CloneIsolation(t *testing.T) {
	loc := state.Vec3{1, 2, 3}
	p := state.Parameter{
		Name: "hp1",
		Vary: state.VaryFixed,
		Value: state.HeatPump{
			Location:      &loc,
			InjectionTemp: state.Scalar(13.6),
			InjectionRate: state.Scalar(0.00024),
		},
	}

	clone := p.Clone()
	hp := clone.Value.(state.HeatPump)
	hp.Location[0] = 99

	orig := p.Value.(state.HeatPump)
	assert.Equal(t, state.Vec3{1, 2, 3}, *orig.Location, "clone must own its location")
}

// TestCellCenter verifies the cell index to physical coordinate conversion:
// cell [16,32,1] at resolution 5.0 maps to [77.5, 157.5, 2.5].
func TestCellCenter(t *testing.T) {
	got := state.CellCenter(state.Vec3{16, 32, 1}, 5.0)
	assert.Equal(t, state.Vec3{77.5, 157.5, 2.5}, got)
}

// TestRunState_OverrideAsymmetry verifies the merge semantics: background
// parameters merge key by key, heat pumps replace wholesale.
func TestRunState_OverrideAsymmetry(t *testing.T) {
	base := state.New()
	user := state.New(
		state.WithHydrogeological(state.Parameter{
			Name:  state.ParamPorosity,
			Vary:  state.VaryFixed,
			Value: state.Scalar(0.3),
		}),
		state.WithHeatPumps(), // explicit empty set
	)

	base.Override(user)

	p, ok := base.Hydrogeological.Get(state.ParamPorosity)
	require.True(t, ok)
	assert.Equal(t, state.Scalar(0.3), p.Value, "overridden key must win")

	_, ok = base.Hydrogeological.Get(state.ParamPermeability)
	assert.True(t, ok, "untouched background defaults must survive the merge")

	assert.Equal(t, 0, base.HeatPumpParams.Len(), "heat pumps replace wholesale")
}

// TestRunState_ParametersOrder verifies resolution order: background
// parameters first, then heat pumps, each in insertion order.
func TestRunState_ParametersOrder(t *testing.T) {
	st := state.New()
	names := make([]string, 0)
	for _, p := range st.Parameters() {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{
		state.ParamPermeability,
		state.ParamPressureGradient,
		state.ParamTemperature,
		state.ParamPorosity,
		"hp1",
	}, names)
}

// TestGeneralConfig_Validate verifies rejection of non-positive datapoint
// counts and cell counts.
func TestGeneralConfig_Validate(t *testing.T) {
	g := state.DefaultGeneral()
	g.NumberDatapoints = 0
	assert.ErrorIs(t, g.Validate(), state.ErrBadDatapointCount)

	g = state.DefaultGeneral()
	g.NumberCells = [3]int{32, 0, 1}
	assert.ErrorIs(t, g.Validate(), state.ErrBadDimension)

	assert.NoError(t, state.DefaultGeneral().Validate())
}

// TestParameter_Validate verifies the declaration-level invariants.
func TestParameter_Validate(t *testing.T) {
	p := state.Parameter{Name: "x", Value: state.MinMax{Min: 5, Max: 1}}
	assert.ErrorIs(t, p.Validate(), state.ErrMinMaxOrder)

	p = state.Parameter{
		Name: "hp",
		Vary: state.VaryFixed,
		Value: state.HeatPump{
			InjectionTemp: state.Scalar(1),
			InjectionRate: state.Scalar(1),
		},
	}
	assert.ErrorIs(t, p.Validate(), state.ErrLocationNeedsSpaceVary,
		"nil location is only legal under spatial vary")

	p.Vary = state.VarySpace
	assert.NoError(t, p.Validate())

	p = state.Parameter{Name: "group", Value: state.HeatPumpGroup{Number: 0}}
	assert.ErrorIs(t, p.Validate(), state.ErrBadGroupSize)
}

// TestMake3D verifies 2D-to-3D normalization and dimension rejection.
func TestMake3D(t *testing.T) {
	v, err := state.Make3D([]float64{2, 4})
	require.NoError(t, err)
	assert.Equal(t, state.Vec3{2, 4, 1}, v)

	_, err = state.Make3D([]float64{1})
	assert.ErrorIs(t, err, state.ErrBadDimension)

	cells, err := state.MakeCells3D([]int{32, 64})
	require.NoError(t, err)
	assert.Equal(t, [3]int{32, 64, 1}, cells)
}

// TestSingleStepSeries verifies the canonical single-step wrapping.
func TestSingleStepSeries(t *testing.T) {
	ts := state.SingleStepSeries(state.Scalar(13.6))
	require.Len(t, ts.Steps, 1)
	assert.Equal(t, 0.0, ts.Steps[0].Time)
	assert.Equal(t, state.Scalar(13.6), ts.Steps[0].Value)
}

// TestField_Layout verifies the row-major index convention and Bounds.
func TestField_Layout(t *testing.T) {
	f := state.NewField([3]int{2, 3, 2})
	f.Set(1, 2, 1, 42)
	assert.Equal(t, 42.0, f.At(1, 2, 1))
	assert.Equal(t, 42.0, f.Vals[(1*3+2)*2+1])

	f.Set(0, 0, 0, -1)
	lo, hi := f.Bounds()
	assert.Equal(t, -1.0, lo)
	assert.Equal(t, 42.0, hi)
}
