// SPDX-License-Identifier: MIT
// Package: hydrovary/state
//
// decode.go - YAML/JSON decoding of the parameter value union.
//
// The settings format is deliberately flexible: a value may be a bare
// number, a path string, a list, or one of several mapping shapes. The shape
// is recognized by its keys, in a fixed precedence, and decoded into exactly
// one union variant; anything unrecognized is an error, never a guess.
// Mapping order in the document is preserved (time series draw order depends
// on it).

package state

import (
	"errors"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ErrUnknownValueShape indicates a parameter value that matches none of the
// union variants.
var ErrUnknownValueShape = errors.New("state: unrecognized parameter value shape")

// DecodeValue decodes a settings value node into its union variant.
func DecodeValue(node *yaml.Node) (Value, error) {
	if node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	switch node.Kind {
	case yaml.ScalarNode:
		return decodeScalarValue(node)
	case yaml.SequenceNode:
		return decodeListValue(node)
	case yaml.MappingNode:
		return decodeMappingValue(node)
	default:
		return nil, fmt.Errorf("node kind %d: %w", node.Kind, ErrUnknownValueShape)
	}
}

func decodeScalarValue(node *yaml.Node) (Value, error) {
	var f float64
	if err := node.Decode(&f); err == nil && node.Tag != "!!str" {
		return Scalar(f), nil
	}
	var s string
	if err := node.Decode(&s); err == nil {
		return FileRef(s), nil
	}
	return nil, fmt.Errorf("scalar %q: %w", node.Value, ErrUnknownValueShape)
}

func decodeListValue(node *yaml.Node) (Value, error) {
	var ints []int
	if err := node.Decode(&ints); err == nil {
		return Ints(ints), nil
	}
	var floats []float64
	if err := node.Decode(&floats); err != nil {
		return nil, fmt.Errorf("list value: %w", ErrUnknownValueShape)
	}
	return Floats(floats), nil
}

func decodeMappingValue(node *yaml.Node) (Value, error) {
	keys := mappingKeys(node)
	switch {
	case keys["frequency"]:
		return decodePerlin(node)
	case keys["location"]:
		return decodeHeatPump(node)
	case keys["number"]:
		return decodeHeatPumpGroup(node)
	case keys["values"] || keys["time_unit"]:
		return decodeTimeSeries(node)
	case keys["min"] && keys["max"]:
		return decodeMinMax(node)
	default:
		return nil, fmt.Errorf("mapping with keys %v: %w", sortedKeys(keys), ErrUnknownValueShape)
	}
}

// DecodeSchedule decodes a heat pump operational value: a scalar, a min/max
// range, or a full time series.
func DecodeSchedule(node *yaml.Node) (Schedule, error) {
	if node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	switch node.Kind {
	case yaml.ScalarNode:
		var f float64
		if err := node.Decode(&f); err != nil {
			return nil, fmt.Errorf("schedule scalar %q: %w", node.Value, ErrUnknownValueShape)
		}
		return Scalar(f), nil
	case yaml.MappingNode:
		keys := mappingKeys(node)
		if keys["values"] || keys["time_unit"] {
			ts, err := decodeTimeSeries(node)
			if err != nil {
				return nil, err
			}
			return ts.(TimeSeries), nil
		}
		if keys["min"] && keys["max"] {
			mm, err := decodeMinMax(node)
			if err != nil {
				return nil, err
			}
			return mm.(MinMax), nil
		}
	}
	return nil, fmt.Errorf("schedule: %w", ErrUnknownValueShape)
}

func decodeMinMax(node *yaml.Node) (Value, error) {
	var mm MinMax
	if err := node.Decode(&mm); err != nil {
		return nil, fmt.Errorf("min/max value: %w", err)
	}
	if err := mm.Validate(); err != nil {
		return nil, err
	}
	return mm, nil
}

func decodePerlin(node *yaml.Node) (Value, error) {
	var raw struct {
		Frequency yaml.Node `yaml:"frequency"`
		Min       float64   `yaml:"min"`
		Max       float64   `yaml:"max"`
	}
	if err := node.Decode(&raw); err != nil {
		return nil, fmt.Errorf("perlin value: %w", err)
	}

	spec := PerlinSpec{Min: raw.Min, Max: raw.Max}
	switch raw.Frequency.Kind {
	case yaml.SequenceNode:
		var fs []float64
		if err := raw.Frequency.Decode(&fs); err != nil {
			return nil, fmt.Errorf("perlin frequency: %w", err)
		}
		vec, err := Make3D(fs)
		if err != nil {
			return nil, fmt.Errorf("perlin frequency: %w", err)
		}
		spec.Frequency = vec
	case yaml.MappingNode:
		var mm MinMax
		if err := raw.Frequency.Decode(&mm); err != nil {
			return nil, fmt.Errorf("perlin frequency: %w", err)
		}
		spec.Frequency = mm
	default:
		return nil, fmt.Errorf("perlin frequency: %w", ErrUnknownValueShape)
	}

	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return spec, nil
}

func decodeTimeSeries(node *yaml.Node) (Value, error) {
	var raw struct {
		TimeUnit string    `yaml:"time_unit"`
		Values   yaml.Node `yaml:"values"`
	}
	if err := node.Decode(&raw); err != nil {
		return nil, fmt.Errorf("time series: %w", err)
	}
	if raw.TimeUnit == "" {
		raw.TimeUnit = defaultTimeUnit
	}
	if raw.Values.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("time series values: %w", ErrUnknownValueShape)
	}

	ts := TimeSeries{TimeUnit: raw.TimeUnit}
	// Content holds key/value node pairs in document order.
	for i := 0; i+1 < len(raw.Values.Content); i += 2 {
		t, err := strconv.ParseFloat(raw.Values.Content[i].Value, 64)
		if err != nil {
			return nil, fmt.Errorf("time series step %q: %w", raw.Values.Content[i].Value, err)
		}
		step, err := DecodeSchedule(raw.Values.Content[i+1])
		if err != nil {
			return nil, err
		}
		if _, nested := step.(TimeSeries); nested {
			return nil, fmt.Errorf("time series step %g: nested series: %w", t, ErrUnknownValueShape)
		}
		ts.Steps = append(ts.Steps, TimeStep{Time: t, Value: step})
	}
	return ts, nil
}

func decodeHeatPump(node *yaml.Node) (Value, error) {
	var raw struct {
		Location      yaml.Node `yaml:"location"`
		InjectionTemp yaml.Node `yaml:"injection_temp"`
		InjectionRate yaml.Node `yaml:"injection_rate"`
	}
	if err := node.Decode(&raw); err != nil {
		return nil, fmt.Errorf("heat pump: %w", err)
	}

	hp := HeatPump{}
	switch raw.Location.Kind {
	case yaml.SequenceNode:
		var loc []float64
		if err := raw.Location.Decode(&loc); err != nil {
			return nil, fmt.Errorf("heat pump location: %w", err)
		}
		vec, err := Make3D(loc)
		if err != nil {
			return nil, fmt.Errorf("heat pump location: %w", err)
		}
		hp.Location = &vec
	case yaml.ScalarNode:
		if raw.Location.Tag != "!!null" {
			return nil, fmt.Errorf("heat pump location %q: %w", raw.Location.Value, ErrUnknownValueShape)
		}
		// null location: drawn randomly at variation time.
	case 0:
		// absent location behaves like null.
	default:
		return nil, fmt.Errorf("heat pump location: %w", ErrUnknownValueShape)
	}

	var err error
	if hp.InjectionTemp, err = DecodeSchedule(&raw.InjectionTemp); err != nil {
		return nil, fmt.Errorf("heat pump injection_temp: %w", err)
	}
	if hp.InjectionRate, err = DecodeSchedule(&raw.InjectionRate); err != nil {
		return nil, fmt.Errorf("heat pump injection_rate: %w", err)
	}
	return hp, nil
}

func decodeHeatPumpGroup(node *yaml.Node) (Value, error) {
	var raw struct {
		Number        int       `yaml:"number"`
		InjectionTemp yaml.Node `yaml:"injection_temp"`
		InjectionRate yaml.Node `yaml:"injection_rate"`
	}
	if err := node.Decode(&raw); err != nil {
		return nil, fmt.Errorf("heat pump group: %w", err)
	}
	if raw.Number < 1 {
		return nil, fmt.Errorf("heat pump group number=%d: %w", raw.Number, ErrBadGroupSize)
	}

	group := HeatPumpGroup{Number: raw.Number}
	var err error
	if group.InjectionTemp, err = DecodeSchedule(&raw.InjectionTemp); err != nil {
		return nil, fmt.Errorf("heat pump group injection_temp: %w", err)
	}
	if group.InjectionRate, err = DecodeSchedule(&raw.InjectionRate); err != nil {
		return nil, fmt.Errorf("heat pump group injection_rate: %w", err)
	}
	return group, nil
}

func mappingKeys(node *yaml.Node) map[string]bool {
	keys := make(map[string]bool, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		keys[node.Content[i].Value] = true
	}
	return keys
}

func sortedKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	// Small maps only; insertion order is irrelevant for an error message,
	// but a stable order keeps diagnostics reproducible.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j] < out[j-1]; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}
