// SPDX-License-Identifier: MIT
// Package: hydrovary/settings
//
// settings.go - YAML loading and section decoding.

package settings

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"hydrovary/state"
)

// ErrSchema indicates that the document failed schema validation. The
// wrapped message lists every violation with its path.
var ErrSchema = errors.New("settings: document rejected by schema")

// Load reads, validates and decodes a settings file into a RunState carrying
// the file's settings over the defaults.
func Load(path string) (*state.RunState, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("settings: %w", err)
	}
	return Parse(raw)
}

// Parse is Load for in-memory documents.
func Parse(raw []byte) (*state.RunState, error) {
	if err := checkSchema(raw); err != nil {
		return nil, err
	}

	var doc struct {
		General        yaml.Node `yaml:"general"`
		Hydrogeologics yaml.Node `yaml:"hydrogeological_parameters"`
		HeatPumps      yaml.Node `yaml:"heatpump_parameters"`
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("settings: %w", err)
	}

	opts, err := generalOptions(&doc.General)
	if err != nil {
		return nil, err
	}

	hydro, err := decodeParamSection(&doc.Hydrogeologics)
	if err != nil {
		return nil, fmt.Errorf("settings: hydrogeological_parameters: %w", err)
	}
	for _, p := range hydro {
		opts = append(opts, state.WithHydrogeological(p))
	}

	if doc.HeatPumps.Kind != 0 {
		pumps, err := decodeParamSection(&doc.HeatPumps)
		if err != nil {
			return nil, fmt.Errorf("settings: heatpump_parameters: %w", err)
		}
		// An explicit (even empty) heat pump section replaces the default
		// pump wholesale.
		opts = append(opts, state.WithHeatPumps(pumps...))
	}

	return state.New(opts...), nil
}

func checkSchema(raw []byte) error {
	v, err := NewValidator()
	if err != nil {
		return err
	}
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	violations := v.ValidateDocument(jsonify(doc))
	if len(violations) == 0 {
		return nil
	}
	msgs := make([]string, len(violations))
	for i, violation := range violations {
		msgs[i] = violation.String()
	}
	return fmt.Errorf("%w:\n  %s", ErrSchema, strings.Join(msgs, "\n  "))
}

// generalOptions turns the general section into construction options over
// the defaults. Key presence matters for random_seed: an explicit null opts
// out of determinism, an absent key keeps the default seed.
func generalOptions(node *yaml.Node) ([]state.Option, error) {
	if node.Kind == 0 {
		return nil, nil
	}

	var raw struct {
		NumberCells       []int      `yaml:"number_cells"`
		CellResolution    *float64   `yaml:"cell_resolution"`
		ShuffleDatapoints *bool      `yaml:"shuffle_datapoints"`
		Interactive       *bool      `yaml:"interactive"`
		OutputDirectory   *string    `yaml:"output_directory"`
		RandomSeed        *int64     `yaml:"random_seed"`
		NumberDatapoints  *int       `yaml:"number_datapoints"`
		TimeToSimulate    *yaml.Node `yaml:"time_to_simulate"`
		Profiling         *bool      `yaml:"profiling"`
	}
	if err := node.Decode(&raw); err != nil {
		return nil, fmt.Errorf("settings: general: %w", err)
	}

	g := state.DefaultGeneral()
	if raw.NumberCells != nil {
		cells, err := state.MakeCells3D(raw.NumberCells)
		if err != nil {
			return nil, fmt.Errorf("settings: number_cells: %w", err)
		}
		g.NumberCells = cells
	}
	if raw.CellResolution != nil {
		g.CellResolution = *raw.CellResolution
	}
	if raw.ShuffleDatapoints != nil {
		g.ShuffleDatapoints = *raw.ShuffleDatapoints
	}
	if raw.Interactive != nil {
		g.Interactive = *raw.Interactive
	}
	if raw.OutputDirectory != nil {
		g.OutputDirectory = *raw.OutputDirectory
	}
	if raw.NumberDatapoints != nil {
		g.NumberDatapoints = *raw.NumberDatapoints
	}
	if raw.Profiling != nil {
		g.Profiling = *raw.Profiling
	}
	if raw.TimeToSimulate != nil {
		span, err := decodeTimeSpan(raw.TimeToSimulate, g.TimeToSimulate)
		if err != nil {
			return nil, err
		}
		g.TimeToSimulate = span
	}
	if raw.RandomSeed != nil {
		g.RandomSeed = raw.RandomSeed
	} else if hasKey(node, "random_seed") {
		g.RandomSeed = nil
	}

	return []state.Option{state.WithGeneral(g)}, nil
}

func decodeTimeSpan(node *yaml.Node, def state.TimeSpan) (state.TimeSpan, error) {
	if node.Kind == yaml.ScalarNode {
		var f float64
		if err := node.Decode(&f); err != nil {
			return def, fmt.Errorf("settings: time_to_simulate: %w", err)
		}
		return state.TimeSpan{FinalTime: f, Unit: def.Unit}, nil
	}
	span := def
	if err := node.Decode(&span); err != nil {
		return def, fmt.Errorf("settings: time_to_simulate: %w", err)
	}
	return span, nil
}

func hasKey(node *yaml.Node, key string) bool {
	if node.Kind != yaml.MappingNode {
		return false
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return true
		}
	}
	return false
}

// decodeParamSection decodes a name-to-declaration mapping, preserving
// document order.
func decodeParamSection(node *yaml.Node) ([]state.Parameter, error) {
	if node.Kind == 0 {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("expected a mapping, got node kind %d", node.Kind)
	}

	var out []state.Parameter
	for i := 0; i+1 < len(node.Content); i += 2 {
		name := node.Content[i].Value
		p, err := decodeParameter(name, node.Content[i+1])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		out = append(out, p)
	}
	return out, nil
}

func decodeParameter(name string, node *yaml.Node) (state.Parameter, error) {
	var raw struct {
		Vary         string    `yaml:"vary"`
		Distribution string    `yaml:"distribution"`
		Value        yaml.Node `yaml:"value"`
	}
	if err := node.Decode(&raw); err != nil {
		return state.Parameter{}, err
	}

	p := state.Parameter{
		Name:         name,
		Vary:         state.VaryFixed,
		Distribution: state.DistributionUniform,
	}
	if raw.Vary != "" {
		p.Vary = state.Vary(raw.Vary)
	}
	if raw.Distribution != "" {
		p.Distribution = state.Distribution(raw.Distribution)
	}

	val, err := state.DecodeValue(&raw.Value)
	if err != nil {
		return state.Parameter{}, err
	}
	p.Value = val

	if err := p.Validate(); err != nil {
		return state.Parameter{}, err
	}
	return p, nil
}
