// SPDX-License-Identifier: MIT
// Package: hydrovary/prepare
//
// prepare.go - stage driver, coordinate conversion and schedule
// normalization.

package prepare

import (
	"fmt"

	"hydrovary/state"
)

// Prepare runs the full preparation sequence on st. baseDir anchors relative
// file references, typically the settings file's directory.
func Prepare(st *state.RunState, baseDir string) error {
	if err := ReadFiles(st, baseDir); err != nil {
		return fmt.Errorf("read value files: %w", err)
	}
	if err := ExpandHeatPumps(st); err != nil {
		return fmt.Errorf("expand heat pumps: %w", err)
	}
	ConvertCoordinates(st)
	NormalizeSchedules(st)
	return nil
}

// ConvertCoordinates rewrites every known heat pump location from 1-based
// cell indices to physical cell-center coordinates. Pumps already converted
// (or without a location) are left alone, so calling this twice is safe.
func ConvertCoordinates(st *state.RunState) {
	res := st.General.CellResolution
	st.HeatPumpParams.Range(func(name string, p state.Parameter) bool {
		hp, ok := p.Value.(state.HeatPump)
		if !ok || hp.Location == nil || hp.LocationIsCoords {
			return true
		}
		coords := state.CellCenter(*hp.Location, res)
		hp.Location = &coords
		hp.LocationIsCoords = true
		p.Value = hp
		st.HeatPumpParams.Set(name, p)
		return true
	})
}

// NormalizeSchedules lifts scalar injection values into single-step time
// series starting at time zero. Min/max ranges stay as they are; they are
// sampled per datapoint during variation and normalized there.
func NormalizeSchedules(st *state.RunState) {
	st.HeatPumpParams.Range(func(name string, p state.Parameter) bool {
		hp, ok := p.Value.(state.HeatPump)
		if !ok {
			return true
		}
		hp.InjectionTemp = normalizeSchedule(hp.InjectionTemp)
		hp.InjectionRate = normalizeSchedule(hp.InjectionRate)
		p.Value = hp
		st.HeatPumpParams.Set(name, p)
		return true
	})
}

func normalizeSchedule(s state.Schedule) state.Schedule {
	switch v := s.(type) {
	case state.Scalar:
		return state.SingleStepSeries(v)
	case state.MinMax:
		return state.SingleStepSeries(v)
	default:
		return s
	}
}
