// SPDX-License-Identifier: MIT
// Package: hydrovary/state
//
// values.go - the closed tagged union behind Parameter.Value.
//
// Design:
//   - Value is a sealed interface; the variant set is fixed at compile time.
//     Exhaustive type switches replace runtime shape sniffing, so the only
//     failures left to check at runtime are vary-mode x shape mismatches.
//   - Every variant implements Clone() as a deep copy. Resolution boundaries
//     (Parameter -> Data) must never alias the declared value.

package state

import "fmt"

// Vec3 is a point or per-axis factor in three dimensional space.
type Vec3 [3]float64

// Value is the closed set of shapes a Parameter (or a resolved Data item)
// can carry. The isValue marker seals the union to this package.
type Value interface {
	// Clone returns a deep copy sharing no mutable memory with the receiver.
	Clone() Value

	isValue()
}

// Schedule is the sub-union allowed for time-dependent heat pump quantities:
// a plain Scalar, a MinMax sampling range, or a full TimeSeries.
type Schedule interface {
	// CloneSchedule mirrors Value.Clone for the schedule sub-union.
	CloneSchedule() Schedule

	isSchedule()
}

// Frequency is the sub-union allowed for PerlinSpec.Frequency: a fixed
// per-axis Vec3 or a MinMax range from which three factors are drawn.
type Frequency interface {
	CloneFrequency() Frequency

	isFrequency()
}

// Scalar is a plain floating point value.
type Scalar float64

// Ints is a list of integers (grid-like values).
type Ints []int

// Floats is a list of floating point values.
type Floats []float64

// Text is raw textual content, typically read in from a plain file reference.
type Text string

// FileRef is a deferred value: a path to a file that the preparation stage
// resolves to one of the concrete variants before variation starts.
type FileRef string

// MinMax is an inclusive value range.
type MinMax struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// Validate reports ErrMinMaxOrder when the range is inverted.
func (m MinMax) Validate() error {
	if m.Max < m.Min {
		return fmt.Errorf("min=%g max=%g: %w", m.Min, m.Max, ErrMinMaxOrder)
	}
	return nil
}

// TimeStep is one entry of a TimeSeries: a point in time and its value
// (Scalar or MinMax; nested series are rejected at decode time).
type TimeStep struct {
	Time  float64  `json:"time"`
	Value Schedule `json:"value"`
}

// TimeSeries is a time-ordered list of steps. Steps keep their declaration
// order; the variation stage iterates them in exactly this order, which is
// part of the random draw sequence and therefore of the determinism contract.
type TimeSeries struct {
	TimeUnit string     `json:"time_unit"`
	Steps    []TimeStep `json:"values"`
}

// SingleStepSeries wraps a bare schedule value into a series with one step at
// time zero, the canonical shape after preparation.
func SingleStepSeries(v Schedule) TimeSeries {
	return TimeSeries{
		TimeUnit: defaultTimeUnit,
		Steps:    []TimeStep{{Time: 0, Value: v}},
	}
}

// PerlinSpec describes a spatially varying quantity sampled from 3D Perlin
// noise: the per-axis frequency (fixed or drawn from a range) and the target
// value bounds the raw noise is rescaled into.
type PerlinSpec struct {
	Frequency Frequency `json:"frequency"`
	Min       float64   `json:"min"`
	Max       float64   `json:"max"`
}

// Validate checks the value bounds and, for a fixed frequency range, its order.
func (p PerlinSpec) Validate() error {
	if p.Max < p.Min {
		return fmt.Errorf("perlin min=%g max=%g: %w", p.Min, p.Max, ErrMinMaxOrder)
	}
	if r, ok := p.Frequency.(MinMax); ok {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("perlin frequency: %w", err)
		}
	}
	return nil
}

// HeatPump is a point source/sink with a location and time-dependent
// injection temperature and rate.
//
// Location is in 1-based cell indices until the preparation stage converts it
// to physical coordinates (cell-center convention). LocationIsCoords guards
// that conversion: applying it twice would silently corrupt the coordinates,
// so the conversion refuses to run again once the flag is set. A nil Location
// means the engine draws a random cell at variation time, which is only legal
// under the spatial vary mode.
type HeatPump struct {
	Location         *Vec3    `json:"location"`
	LocationIsCoords bool     `json:"location_is_coords,omitempty"`
	InjectionTemp    Schedule `json:"injection_temp"`
	InjectionRate    Schedule `json:"injection_rate"`
}

// HeatPumpGroup declares "generate Number heat pumps with these ranges".
// Groups never survive the preparation stage; the expander replaces each one
// with Number concrete HeatPump parameters.
type HeatPumpGroup struct {
	Number        int      `json:"number"`
	InjectionTemp Schedule `json:"injection_temp"`
	InjectionRate Schedule `json:"injection_rate"`
}

// Field is a dense 3D scalar array over the simulation grid, stored row-major
// with x as the slowest axis: index(i,j,k) = (i*ny+j)*nz + k, matching the
// grid's [x,y,z] cell counts.
type Field struct {
	Cells [3]int    `json:"cells"`
	Vals  []float64 `json:"values"`
}

// NewField allocates a zero-valued field over the given cell counts.
func NewField(cells [3]int) *Field {
	return &Field{
		Cells: cells,
		Vals:  make([]float64, cells[0]*cells[1]*cells[2]),
	}
}

// At returns the value at cell (i,j,k).
func (f *Field) At(i, j, k int) float64 {
	return f.Vals[(i*f.Cells[1]+j)*f.Cells[2]+k]
}

// Set stores v at cell (i,j,k).
func (f *Field) Set(i, j, k int, v float64) {
	f.Vals[(i*f.Cells[1]+j)*f.Cells[2]+k] = v
}

// Bounds returns the observed minimum and maximum of the field.
func (f *Field) Bounds() (min, max float64) {
	min, max = f.Vals[0], f.Vals[0]
	for _, v := range f.Vals[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

// --- union markers ---

func (Scalar) isValue()        {}
func (Ints) isValue()          {}
func (Floats) isValue()        {}
func (Text) isValue()          {}
func (FileRef) isValue()       {}
func (MinMax) isValue()        {}
func (TimeSeries) isValue()    {}
func (PerlinSpec) isValue()    {}
func (HeatPump) isValue()      {}
func (HeatPumpGroup) isValue() {}
func (*Field) isValue()        {}

func (Scalar) isSchedule()     {}
func (MinMax) isSchedule()     {}
func (TimeSeries) isSchedule() {}

func (MinMax) isFrequency() {}
func (Vec3) isFrequency()   {}

// --- deep copies ---

// Clone returns the scalar itself (value semantics).
func (s Scalar) Clone() Value { return s }

func (l Ints) Clone() Value {
	out := make(Ints, len(l))
	copy(out, l)
	return out
}

func (l Floats) Clone() Value {
	out := make(Floats, len(l))
	copy(out, l)
	return out
}

func (t Text) Clone() Value    { return t }
func (r FileRef) Clone() Value { return r }
func (m MinMax) Clone() Value  { return m }

func (t TimeSeries) Clone() Value { return t.cloneSeries() }

func (t TimeSeries) cloneSeries() TimeSeries {
	steps := make([]TimeStep, len(t.Steps))
	for i, s := range t.Steps {
		steps[i] = TimeStep{Time: s.Time, Value: s.Value.CloneSchedule()}
	}
	return TimeSeries{TimeUnit: t.TimeUnit, Steps: steps}
}

func (p PerlinSpec) Clone() Value {
	return PerlinSpec{Frequency: p.Frequency.CloneFrequency(), Min: p.Min, Max: p.Max}
}

func (h HeatPump) Clone() Value { return h.CloneHeatPump() }

// CloneHeatPump returns a deep copy with its own location storage.
func (h HeatPump) CloneHeatPump() HeatPump {
	out := HeatPump{
		LocationIsCoords: h.LocationIsCoords,
		InjectionTemp:    h.InjectionTemp.CloneSchedule(),
		InjectionRate:    h.InjectionRate.CloneSchedule(),
	}
	if h.Location != nil {
		loc := *h.Location
		out.Location = &loc
	}
	return out
}

func (g HeatPumpGroup) Clone() Value {
	return HeatPumpGroup{
		Number:        g.Number,
		InjectionTemp: g.InjectionTemp.CloneSchedule(),
		InjectionRate: g.InjectionRate.CloneSchedule(),
	}
}

func (f *Field) Clone() Value {
	out := NewField(f.Cells)
	copy(out.Vals, f.Vals)
	return out
}

func (s Scalar) CloneSchedule() Schedule     { return s }
func (m MinMax) CloneSchedule() Schedule     { return m }
func (t TimeSeries) CloneSchedule() Schedule { return t.cloneSeries() }

func (m MinMax) CloneFrequency() Frequency { return m }
func (v Vec3) CloneFrequency() Frequency   { return v }

// Make3D normalizes a 2D vector to 3D by appending 1; 3D input passes
// through unchanged. Anything else is ErrBadDimension.
func Make3D(v []float64) (Vec3, error) {
	switch len(v) {
	case 2:
		return Vec3{v[0], v[1], 1}, nil
	case 3:
		return Vec3{v[0], v[1], v[2]}, nil
	default:
		return Vec3{}, fmt.Errorf("got %d dimensions: %w", len(v), ErrBadDimension)
	}
}

// MakeCells3D is Make3D for integer cell counts.
func MakeCells3D(v []int) ([3]int, error) {
	switch len(v) {
	case 2:
		return [3]int{v[0], v[1], 1}, nil
	case 3:
		return [3]int{v[0], v[1], v[2]}, nil
	default:
		return [3]int{}, fmt.Errorf("got %d dimensions: %w", len(v), ErrBadDimension)
	}
}
