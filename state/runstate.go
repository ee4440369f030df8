// SPDX-License-Identifier: MIT
// Package: hydrovary/state
//
// runstate.go - the per-run state object.
//
// Contract:
//   - New resolves options over deterministic defaults and creates the one
//     and only Source for the run. Nothing re-seeds it afterwards.
//   - Override merges a user-provided state over the receiver with the
//     asymmetric semantics the settings format promises: background
//     parameters merge key-by-key, heat pump parameters replace wholesale,
//     general settings and the random source are taken from the override.

package state

// Well-known background parameter names. The validation gate requires the
// first three; the pressure gradient additionally triggers the
// gradient-to-pressure transform during spatial variation.
const (
	ParamPermeability     = "permeability"
	ParamPressureGradient = "pressure_gradient"
	ParamTemperature      = "temperature"
	ParamPorosity         = "porosity"
)

// Default background parameter values.
const (
	defaultPermeability     = 1.29e-10
	defaultPressureGradient = -0.0025
	defaultTemperature      = 10.6
	defaultPorosity         = 0.25
)

// Default heat pump (hp1): cell location and operational values.
var defaultHeatPumpLocation = Vec3{16, 32, 1}

const (
	defaultInjectionTemp = 13.6
	defaultInjectionRate = 0.00024
)

// RunState is everything one ensemble run needs: configuration, the two
// parameter families, the accumulated datapoints and the shared Source.
type RunState struct {
	General GeneralConfig

	// Hydrogeological holds the background parameters (permeability,
	// pressure gradient, temperature, porosity, ...).
	Hydrogeological *ParamMap

	// HeatPumpParams holds heat pumps and heat pump groups. After the
	// preparation stage it contains concrete HeatPump values only.
	HeatPumpParams *ParamMap

	// Datapoints is filled by the variation stage, one entry per run.
	Datapoints []*Datapoint

	rand *Source
}

// Option adjusts a RunState during construction.
type Option func(*RunState)

// WithGeneral replaces the general configuration wholesale.
func WithGeneral(g GeneralConfig) Option {
	return func(s *RunState) { s.General = g }
}

// WithSeed pins the random seed.
func WithSeed(seed int64) Option {
	return func(s *RunState) { v := seed; s.General.RandomSeed = &v }
}

// WithoutSeed makes the run nondeterministic.
func WithoutSeed() Option {
	return func(s *RunState) { s.General.RandomSeed = nil }
}

// WithGrid sets the cell counts.
func WithGrid(cells [3]int) Option {
	return func(s *RunState) { s.General.NumberCells = cells }
}

// WithCellResolution sets the cell edge length.
func WithCellResolution(res float64) Option {
	return func(s *RunState) { s.General.CellResolution = res }
}

// WithDatapoints sets the ensemble size.
func WithDatapoints(n int) Option {
	return func(s *RunState) { s.General.NumberDatapoints = n }
}

// WithShuffle toggles the cross-datapoint shuffle.
func WithShuffle(on bool) Option {
	return func(s *RunState) { s.General.ShuffleDatapoints = on }
}

// WithHydrogeological merges p into the background parameter map
// (overwriting an existing declaration of the same name).
func WithHydrogeological(p Parameter) Option {
	return func(s *RunState) { s.Hydrogeological.Set(p.Name, p) }
}

// WithHeatPumps replaces the heat pump parameter map wholesale. Supplying
// any heat pumps discards the default hp1; this asymmetry with the
// background map is intentional.
func WithHeatPumps(params ...Parameter) Option {
	return func(s *RunState) {
		s.HeatPumpParams = NewParamMap()
		for _, p := range params {
			s.HeatPumpParams.Set(p.Name, p)
		}
	}
}

// New builds a RunState from deterministic defaults plus options, then
// creates the run's Source from the resulting seed. Options that change the
// seed must therefore be passed here, not applied afterwards.
func New(opts ...Option) *RunState {
	s := &RunState{
		General:         DefaultGeneral(),
		Hydrogeological: defaultHydrogeological(),
		HeatPumpParams:  defaultHeatPumps(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.General.RandomSeed != nil {
		s.rand = NewSource(*s.General.RandomSeed)
	} else {
		s.rand = NewUnseededSource()
	}
	return s
}

func defaultHydrogeological() *ParamMap {
	m := NewParamMap()
	for _, p := range []Parameter{
		{Name: ParamPermeability, Vary: VaryFixed, Distribution: DistributionUniform, Value: Scalar(defaultPermeability)},
		{Name: ParamPressureGradient, Vary: VaryFixed, Distribution: DistributionUniform, Value: Scalar(defaultPressureGradient)},
		{Name: ParamTemperature, Vary: VaryFixed, Distribution: DistributionUniform, Value: Scalar(defaultTemperature)},
		{Name: ParamPorosity, Vary: VaryFixed, Distribution: DistributionUniform, Value: Scalar(defaultPorosity)},
	} {
		m.Set(p.Name, p)
	}
	return m
}

func defaultHeatPumps() *ParamMap {
	m := NewParamMap()
	loc := defaultHeatPumpLocation
	m.Set("hp1", Parameter{
		Name:         "hp1",
		Vary:         VaryFixed,
		Distribution: DistributionUniform,
		Value: HeatPump{
			Location:      &loc,
			InjectionTemp: Scalar(defaultInjectionTemp),
			InjectionRate: Scalar(defaultInjectionRate),
		},
	})
	return m
}

// Rand returns the run-wide random source. Whenever randomness of any kind
// is needed, this is the stream to use.
func (s *RunState) Rand() *Source { return s.rand }

// NoiseSeed returns the seed for the run's coherent noise generator. It is
// the same effective seed the Source was created with, so fields and draws
// reproduce together.
func (s *RunState) NoiseSeed() int64 { return s.rand.Seed() }

// Override merges user from a loaded settings file over the receiver:
// general settings wholesale, background parameters key-by-key, heat pump
// parameters wholesale, and the random source is adopted from user so the
// one-Source-per-run invariant holds.
func (s *RunState) Override(user *RunState) {
	s.General = user.General
	user.Hydrogeological.Range(func(name string, p Parameter) bool {
		s.Hydrogeological.Set(name, p)
		return true
	})
	s.HeatPumpParams = user.HeatPumpParams
	s.Datapoints = user.Datapoints
	s.rand = user.rand
}

// Parameters returns all parameter declarations in resolution order:
// background parameters first, then heat pumps, each in insertion order.
func (s *RunState) Parameters() []Parameter {
	out := make([]Parameter, 0, s.Hydrogeological.Len()+s.HeatPumpParams.Len())
	s.Hydrogeological.Range(func(_ string, p Parameter) bool {
		out = append(out, p)
		return true
	})
	s.HeatPumpParams.Range(func(_ string, p Parameter) bool {
		out = append(out, p)
		return true
	})
	return out
}
