// SPDX-License-Identifier: MIT
// Package: hydrovary/prepare
//
// expand.go - heat pump group expansion.
//
// A HeatPumpGroup declares "N pumps with these operational ranges" without
// naming or placing them. Expansion rewrites the heat pump map so that only
// concrete HeatPump values remain: explicit pumps first, in declaration
// order, then the generated pumps of each group. Generated pumps get names
// of the form "<group>_<i>" and random cell locations that collide neither
// with explicit pumps nor with each other.

package prepare

import (
	"fmt"

	"hydrovary/state"
	"hydrovary/vary"
)

// retryFactor bounds the collision retry loop at retryFactor times the total
// cell count. Hitting the bound means the grid cannot hold the requested
// pumps, which is a configuration problem, not bad luck.
const retryFactor = 10

// ExpandHeatPumps replaces every group in the heat pump map with its
// generated pumps. Location draws come from the run's Source, so expansion
// order is part of the reproducibility contract.
func ExpandHeatPumps(st *state.RunState) error {
	expanded := state.NewParamMap()
	taken := make(map[state.Vec3]struct{})

	st.HeatPumpParams.Range(func(name string, p state.Parameter) bool {
		if hp, ok := p.Value.(state.HeatPump); ok && hp.Location != nil {
			taken[*hp.Location] = struct{}{}
		}
		if _, ok := p.Value.(state.HeatPumpGroup); !ok {
			expanded.Set(name, p)
		}
		return true
	})

	var failed error
	st.HeatPumpParams.Range(func(name string, p state.Parameter) bool {
		group, ok := p.Value.(state.HeatPumpGroup)
		if !ok {
			return true
		}
		if err := expandGroup(st, expanded, taken, name, p, group); err != nil {
			failed = err
			return false
		}
		return true
	})
	if failed != nil {
		return failed
	}

	// Expansion rewrote the map; a surviving group would mean the rewrite
	// above is broken.
	expanded.Range(func(name string, p state.Parameter) bool {
		if _, ok := p.Value.(state.HeatPumpGroup); ok {
			failed = fmt.Errorf("group %q survived expansion: %w", name, state.ErrInvariant)
			return false
		}
		return true
	})
	if failed != nil {
		return failed
	}

	st.HeatPumpParams = expanded
	return nil
}

func expandGroup(st *state.RunState, expanded *state.ParamMap, taken map[state.Vec3]struct{}, groupName string, decl state.Parameter, group state.HeatPumpGroup) error {
	for i := 0; i < group.Number; i++ {
		name := fmt.Sprintf("%s_%d", groupName, i)
		if expanded.Has(name) || st.HeatPumpParams.Has(name) {
			return fmt.Errorf("group %q pump %q: %w", groupName, name, ErrNameClash)
		}

		loc, err := freeLocation(st, taken)
		if err != nil {
			return fmt.Errorf("group %q pump %q: %w", groupName, name, err)
		}
		taken[loc] = struct{}{}

		expanded.Set(name, state.Parameter{
			Name:         name,
			Vary:         decl.Vary,
			Distribution: decl.Distribution,
			Value: state.HeatPump{
				Location:      &loc,
				InjectionTemp: group.InjectionTemp.CloneSchedule(),
				InjectionRate: group.InjectionRate.CloneSchedule(),
			},
		})
	}
	return nil
}

// freeLocation draws random cell locations until it finds one not already
// taken, giving up after retryFactor times the cell count.
func freeLocation(st *state.RunState, taken map[state.Vec3]struct{}) (state.Vec3, error) {
	budget := retryFactor * st.General.CellCount()
	for attempt := 0; attempt < budget; attempt++ {
		loc := vary.RandomCellLocation(st)
		if _, dup := taken[loc]; !dup {
			return loc, nil
		}
	}
	return state.Vec3{}, fmt.Errorf("after %d draws: %w", budget, ErrLocationExhausted)
}
