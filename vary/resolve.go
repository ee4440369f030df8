// SPDX-License-Identifier: MIT
// Package: hydrovary/vary
//
// resolve.go - the ValueResolver dispatch core.
//
// Contract:
//   - Resolve never mutates the declaration; every returned Data owns a deep
//     copy of whatever it derives from.
//   - Resolve consumes the run's random source; the order of draws matters
//     and must match the documented sequence exactly.

package vary

import (
	"fmt"
	"math"

	"hydrovary/noisefield"
	"hydrovary/state"
)

// Offset draws are scaled by this factor so that independently generated
// Perlin fields sample far-apart, non-overlapping noise neighborhoods.
const offsetScale = 4242.0

// Resolve produces the concrete Data for parameter p in datapoint index.
func Resolve(st *state.RunState, p state.Parameter, index int) (state.Data, error) {
	if _, ok := p.Value.(state.HeatPumpGroup); ok {
		// Groups are expanded during preparation; one reaching the resolver
		// is a defect, not a user error.
		return state.Data{}, fmt.Errorf("parameter %q: heat pump group survived expansion: %w",
			p.Name, state.ErrInvariant)
	}

	switch p.Vary {
	case state.VaryFixed:
		return copyParameter(st, p)

	case state.VaryConst:
		mm, ok := p.Value.(state.MinMax)
		if !ok {
			return state.Data{}, fmt.Errorf("parameter %q has value shape %T: %w",
				p.Name, p.Value, ErrConstNeedsMinMax)
		}
		return state.Data{
			Name:  p.Name,
			Value: state.Scalar(constValue(mm, p.Distribution, index, st.General.NumberDatapoints)),
		}, nil

	case state.VarySpace:
		switch v := p.Value.(type) {
		case state.PerlinSpec:
			field, err := perlinField(st, p.Name, p.Distribution, v)
			if err != nil {
				return state.Data{}, err
			}
			return state.Data{Name: p.Name, Value: field}, nil
		case state.HeatPump:
			return varyHeatPump(st, p)
		case state.Scalar:
			return state.Data{}, fmt.Errorf("parameter %q: %w", p.Name, ErrScalarUnderSpace)
		case state.MinMax:
			return state.Data{}, fmt.Errorf("parameter %q: %w", p.Name, ErrMinMaxUnderSpace)
		default:
			return state.Data{}, fmt.Errorf("parameter %q, vary %q, value shape %T: %w",
				p.Name, p.Vary, p.Value, ErrUnsupportedCombination)
		}

	default:
		return state.Data{}, fmt.Errorf("parameter %q, vary %q, value shape %T: %w",
			p.Name, p.Vary, p.Value, ErrUnsupportedCombination)
	}
}

// copyParameter copies the declared value verbatim into a Data. Heat pumps
// are the exception: their time-dependent ranges still need sampling, which
// varyHeatPump performs (without touching the location for non-spatial vary).
func copyParameter(st *state.RunState, p state.Parameter) (state.Data, error) {
	if _, ok := p.Value.(state.HeatPump); ok {
		return varyHeatPump(st, p)
	}
	return state.Data{Name: p.Name, Value: p.Value.Clone()}, nil
}

// constValue ramps a min/max range across the ensemble: datapoint i of n
// gets min + (i/(n-1))*(max-min), in linear or log10 space. A single
// datapoint degenerates to min (there is no ramp to divide).
func constValue(mm state.MinMax, dist state.Distribution, index, total int) float64 {
	lo, hi := mm.Min, mm.Max
	if dist == state.DistributionLog {
		lo, hi = math.Log10(lo), math.Log10(hi)
	}

	var value float64
	if total == 1 {
		value = lo
	} else {
		step := (hi - lo) / float64(total-1)
		value = lo + step*float64(index)
	}

	if dist == state.DistributionLog {
		value = math.Pow(10, value)
	}
	return value
}

// varyHeatPump resolves a heat pump's operational values and, for spatial
// vary, draws a fresh random location converted to physical coordinates.
// Cross-datapoint location collisions are not tracked here; uniqueness
// across the run is guaranteed at expansion time only.
func varyHeatPump(st *state.RunState, p state.Parameter) (state.Data, error) {
	hp := p.Value.(state.HeatPump).CloneHeatPump()

	hp, err := handleHeatPumpValues(st.Rand(), p.Name, hp)
	if err != nil {
		return state.Data{}, err
	}

	if p.Vary == state.VarySpace {
		cell := RandomCellLocation(st)
		coords := state.CellCenter(cell, st.General.CellResolution)
		hp.Location = &coords
		hp.LocationIsCoords = true
	}

	return state.Data{Name: p.Name, Value: hp}, nil
}

// handleHeatPumpValues walks the injection temperature steps, then the
// injection rate steps, in declaration order. Range-valued steps get one
// uniform draw each, counting down from the maximum:
//
//	value = max - u*(max-min), u in [0,1)
//
// Scalar steps pass through untouched. The draw formula and the
// temperature-before-rate order are fixed; changing either shifts every
// subsequent draw of the run.
func handleHeatPumpValues(rand *state.Source, name string, hp state.HeatPump) (state.HeatPump, error) {
	temp, ok := hp.InjectionTemp.(state.TimeSeries)
	if !ok {
		return hp, fmt.Errorf("parameter %q: injection_temp is %T, not a time series: %w",
			name, hp.InjectionTemp, state.ErrInvariant)
	}
	rate, ok := hp.InjectionRate.(state.TimeSeries)
	if !ok {
		return hp, fmt.Errorf("parameter %q: injection_rate is %T, not a time series: %w",
			name, hp.InjectionRate, state.ErrInvariant)
	}

	sampleSteps(rand, temp.Steps)
	sampleSteps(rand, rate.Steps)
	hp.InjectionTemp = temp
	hp.InjectionRate = rate
	return hp, nil
}

func sampleSteps(rand *state.Source, steps []state.TimeStep) {
	for i, s := range steps {
		if mm, ok := s.Value.(state.MinMax); ok {
			steps[i].Value = state.Scalar(mm.Max - rand.Float64()*(mm.Max-mm.Min))
		}
	}
}

// RandomCellLocation draws a uniform cell-space location over the grid:
// three uniform draws scaled by the per-axis cell counts, ceiling-rounded to
// 1-based integer cell indices.
func RandomCellLocation(st *state.RunState) state.Vec3 {
	u := st.Rand().Vec3()
	var cell state.Vec3
	for axis := range cell {
		cell[axis] = math.Ceil(u[axis] * float64(st.General.NumberCells[axis]))
	}
	return cell
}

// perlinField generates the 3D field for a spatially varying Perlin
// parameter. Draw order: offset (three draws), then, if the frequency is a
// range, three frequency draws. Log-distributed parameters convert their
// bounds to log10 space around the generator and exponentiate after. The
// pressure gradient parameter additionally runs the gradient-to-pressure
// integration, using its declared linear-space bounds.
func perlinField(st *state.RunState, name string, dist state.Distribution, spec state.PerlinSpec) (*state.Field, error) {
	offset := st.Rand().Vec3()
	for axis := range offset {
		offset[axis] *= offsetScale
	}

	var freq state.Vec3
	switch f := spec.Frequency.(type) {
	case state.Vec3:
		freq = f
	case state.MinMax:
		for axis := range freq {
			freq[axis] = f.Max - st.Rand().Float64()*(f.Max-f.Min)
		}
	default:
		return nil, fmt.Errorf("parameter %q: frequency shape %T: %w",
			name, spec.Frequency, ErrUnsupportedCombination)
	}

	lo, hi := spec.Min, spec.Max
	if dist == state.DistributionLog {
		lo, hi = math.Log10(lo), math.Log10(hi)
	}

	field := noisefield.Generate(st, lo, hi, offset, freq)

	if dist == state.DistributionLog {
		for i, v := range field.Vals {
			field.Vals[i] = math.Pow(10, v)
		}
	}

	if name == state.ParamPressureGradient {
		field = noisefield.PressureFromGradient(field, spec.Min, spec.Max, st.General.CellResolution)
	}

	return field, nil
}
