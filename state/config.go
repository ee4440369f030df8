// SPDX-License-Identifier: MIT
// Package: hydrovary/state
//
// config.go - general run configuration and its defaults.

package state

import (
	"fmt"
	"path/filepath"
	"time"
)

// Deterministic defaults (named, no magic numbers).
const (
	defaultCellResolution   = 5.0
	defaultNumberDatapoints = 1
	defaultFinalTime        = 27.5
	defaultTimeUnit         = "year"
	defaultRandomSeed       = int64(0)
	defaultOutputRoot       = "datasets_out"
)

var defaultNumberCells = [3]int{32, 256, 1}

// TimeSpan is the timespan the downstream simulator should cover.
// Value and unit are separate for flexibility; years are assumed by default.
type TimeSpan struct {
	FinalTime float64 `json:"final_time" yaml:"final_time"`
	Unit      string  `json:"unit" yaml:"unit"`
}

func (t TimeSpan) String() string {
	return fmt.Sprintf("%g [%s]", t.FinalTime, t.Unit)
}

// GeneralConfig holds the run-wide knobs that do not change during execution.
type GeneralConfig struct {
	// NumberCells is the grid size [x,y,z]. 2D settings input is normalized
	// to 3D by appending 1.
	NumberCells [3]int
	// CellResolution is the edge length of the (cubic) cells.
	CellResolution float64
	// ShuffleDatapoints enables the per-parameter cross-datapoint shuffle
	// that decorrelates independently ramped parameters.
	ShuffleDatapoints bool
	// Interactive makes the pipeline halt between stages for confirmation.
	Interactive bool
	// OutputDirectory receives the generated datapoint directories.
	OutputDirectory string
	// RandomSeed seeds the run's Source. Nil means nondeterministic.
	RandomSeed *int64
	// NumberDatapoints is the ensemble size.
	NumberDatapoints int
	// TimeToSimulate is carried through to the rendered input decks.
	TimeToSimulate TimeSpan
	// Profiling logs per-stage wall-clock timings.
	Profiling bool
}

// DefaultGeneral returns the configuration every run starts from. Seed 0 by
// default: a given settings file always produces the same ensemble unless
// the user opts out.
func DefaultGeneral() GeneralConfig {
	seed := defaultRandomSeed
	return GeneralConfig{
		NumberCells:       defaultNumberCells,
		CellResolution:    defaultCellResolution,
		ShuffleDatapoints: true,
		Interactive:       true,
		OutputDirectory:   filepath.Join(defaultOutputRoot, time.Now().UTC().Format("2006-01-02T15:04:05Z07:00")),
		RandomSeed:        &seed,
		NumberDatapoints:  defaultNumberDatapoints,
		TimeToSimulate:    TimeSpan{FinalTime: defaultFinalTime, Unit: defaultTimeUnit},
		Profiling:         false,
	}
}

// Validate checks the numeric knobs.
func (g GeneralConfig) Validate() error {
	if g.NumberDatapoints < 1 {
		return fmt.Errorf("number_datapoints=%d: %w", g.NumberDatapoints, ErrBadDatapointCount)
	}
	for axis, n := range g.NumberCells {
		if n < 1 {
			return fmt.Errorf("number_cells axis %d is %d: %w", axis, n, ErrBadDimension)
		}
	}
	return nil
}

// CellCount returns the total number of grid cells.
func (g GeneralConfig) CellCount() int {
	return g.NumberCells[0] * g.NumberCells[1] * g.NumberCells[2]
}
