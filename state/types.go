// SPDX-License-Identifier: MIT
// Package: hydrovary/state
//
// types.go - Parameter, Data and Datapoint plus the vary/distribution enums.

package state

import "fmt"

// Distribution selects the space in which a parameter is sampled or
// interpolated during variation.
type Distribution string

const (
	// DistributionUniform interpolates and samples in linear space.
	DistributionUniform Distribution = "uniform"
	// DistributionLog interpolates and samples in log10 space.
	DistributionLog Distribution = "logarithmic"
)

// Vary is the policy governing how a parameter's value differs across
// datapoints. The string values are the settings file vocabulary.
type Vary string

const (
	// VaryFixed copies the declared value verbatim into every datapoint.
	VaryFixed Vary = "fixed"
	// VaryConst keeps the value constant within a datapoint but ramps it
	// across the ensemble (min to max over the datapoint indices).
	VaryConst Vary = "const_within_datapoint"
	// VarySpace varies the value spatially within each datapoint (noise
	// fields, random heat pump locations).
	VarySpace Vary = "spatially_vary_within_datapoint"
	// VaryList enumerates pre-built values; reserved in the vocabulary but
	// not implemented by the resolver.
	VaryList Vary = "list"
)

// Parameter declares how one named quantity is produced.
type Parameter struct {
	Name         string
	Value        Value
	Distribution Distribution
	Vary         Vary
}

// Clone returns a deep copy of the declaration.
func (p Parameter) Clone() Parameter {
	out := p
	if p.Value != nil {
		out.Value = p.Value.Clone()
	}
	return out
}

// Validate checks the declaration-level invariants: range ordering, group
// sizes, and the nil-location rule for heat pumps.
func (p Parameter) Validate() error {
	switch v := p.Value.(type) {
	case MinMax:
		if err := v.Validate(); err != nil {
			return fmt.Errorf("parameter %q: %w", p.Name, err)
		}
	case PerlinSpec:
		if err := v.Validate(); err != nil {
			return fmt.Errorf("parameter %q: %w", p.Name, err)
		}
	case HeatPump:
		if v.Location == nil && p.Vary != VarySpace {
			return fmt.Errorf("parameter %q: %w", p.Name, ErrLocationNeedsSpaceVary)
		}
	case HeatPumpGroup:
		if v.Number < 1 {
			return fmt.Errorf("parameter %q: number=%d: %w", p.Name, v.Number, ErrBadGroupSize)
		}
	}
	return nil
}

// Data is the concrete value resolved for one Parameter in one Datapoint.
// It never shares mutable memory with the declaration it came from.
type Data struct {
	Name  string `json:"name"`
	Value Value  `json:"value"`
}

// Datapoint is one simulation run's fully resolved parameter set.
type Datapoint struct {
	Index int
	Data  *DataMap
}

// NewDatapoint returns an empty datapoint with the given index.
func NewDatapoint(index int) *Datapoint {
	return &Datapoint{Index: index, Data: NewDataMap()}
}
