// SPDX-License-Identifier: MIT
package state_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"hydrovary/state"
)

func decodeValue(t *testing.T, src string) (state.Value, error) {
	t.Helper()
	var node yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(src), &node))
	require.NotEmpty(t, node.Content)
	return state.DecodeValue(node.Content[0])
}

// TestDecodeValue_Scalars verifies that numbers decode to Scalar and
// strings to FileRef.
func TestDecodeValue_Scalars(t *testing.T) {
	v, err := decodeValue(t, "1.29e-10")
	require.NoError(t, err)
	assert.Equal(t, state.Scalar(1.29e-10), v)

	v, err = decodeValue(t, "42")
	require.NoError(t, err)
	assert.Equal(t, state.Scalar(42), v)

	v, err = decodeValue(t, "fields/permeability.json")
	require.NoError(t, err)
	assert.Equal(t, state.FileRef("fields/permeability.json"), v)
}

// TestDecodeValue_Lists verifies integer and float list decoding.
func TestDecodeValue_Lists(t *testing.T) {
	v, err := decodeValue(t, "[1, 2, 3]")
	require.NoError(t, err)
	assert.Equal(t, state.Ints{1, 2, 3}, v)

	v, err = decodeValue(t, "[1.5, 2.5]")
	require.NoError(t, err)
	assert.Equal(t, state.Floats{1.5, 2.5}, v)
}

// TestDecodeValue_MinMax verifies range decoding and order rejection.
func TestDecodeValue_MinMax(t *testing.T) {
	v, err := decodeValue(t, "{min: 1.0, max: 5.0}")
	require.NoError(t, err)
	assert.Equal(t, state.MinMax{Min: 1, Max: 5}, v)

	_, err = decodeValue(t, "{min: 5.0, max: 1.0}")
	assert.ErrorIs(t, err, state.ErrMinMaxOrder)
}

// TestDecodeValue_Perlin verifies both frequency shapes, including the
// 2D-to-3D normalization of a list frequency.
func TestDecodeValue_Perlin(t *testing.T) {
	v, err := decodeValue(t, "{frequency: [18, 18], min: 1.0, max: 2.0}")
	require.NoError(t, err)
	spec, ok := v.(state.PerlinSpec)
	require.True(t, ok)
	assert.Equal(t, state.Vec3{18, 18, 1}, spec.Frequency)
	assert.Equal(t, 1.0, spec.Min)
	assert.Equal(t, 2.0, spec.Max)

	v, err = decodeValue(t, "{frequency: {min: 2.0, max: 8.0}, min: 0.0, max: 1.0}")
	require.NoError(t, err)
	spec = v.(state.PerlinSpec)
	assert.Equal(t, state.MinMax{Min: 2, Max: 8}, spec.Frequency)
}

// TestDecodeValue_HeatPump verifies pump decoding with an explicit location,
// with a null location, and rejection of other location shapes.
func TestDecodeValue_HeatPump(t *testing.T) {
	v, err := decodeValue(t, "{location: [16, 32, 1], injection_temp: 13.6, injection_rate: 0.00024}")
	require.NoError(t, err)
	hp, ok := v.(state.HeatPump)
	require.True(t, ok)
	require.NotNil(t, hp.Location)
	assert.Equal(t, state.Vec3{16, 32, 1}, *hp.Location)
	assert.Equal(t, state.Scalar(13.6), hp.InjectionTemp)

	v, err = decodeValue(t, "{location: null, injection_temp: {min: 10, max: 15}, injection_rate: 0.00024}")
	require.NoError(t, err)
	hp = v.(state.HeatPump)
	assert.Nil(t, hp.Location)
	assert.Equal(t, state.MinMax{Min: 10, Max: 15}, hp.InjectionTemp)

	_, err = decodeValue(t, "{location: everywhere, injection_temp: 1, injection_rate: 1}")
	assert.ErrorIs(t, err, state.ErrUnknownValueShape)
}

// TestDecodeValue_HeatPumpGroup verifies group decoding and size rejection.
func TestDecodeValue_HeatPumpGroup(t *testing.T) {
	v, err := decodeValue(t, "{number: 3, injection_temp: {min: 10, max: 15}, injection_rate: 0.00024}")
	require.NoError(t, err)
	group, ok := v.(state.HeatPumpGroup)
	require.True(t, ok)
	assert.Equal(t, 3, group.Number)

	_, err = decodeValue(t, "{number: 0, injection_temp: 1, injection_rate: 1}")
	assert.ErrorIs(t, err, state.ErrBadGroupSize)
}

// TestDecodeValue_TimeSeries verifies that steps keep document order even
// when the time keys are unsorted.
func TestDecodeValue_TimeSeries(t *testing.T) {
	src := `
time_unit: year
values:
  5.0: {min: 1.0, max: 2.0}
  0.0: 13.6
  2.5: 11.0
`
	v, err := decodeValue(t, src)
	require.NoError(t, err)
	ts, ok := v.(state.TimeSeries)
	require.True(t, ok)
	assert.Equal(t, "year", ts.TimeUnit)
	require.Len(t, ts.Steps, 3)
	assert.Equal(t, 5.0, ts.Steps[0].Time)
	assert.Equal(t, state.MinMax{Min: 1, Max: 2}, ts.Steps[0].Value)
	assert.Equal(t, 0.0, ts.Steps[1].Time)
	assert.Equal(t, state.Scalar(13.6), ts.Steps[1].Value)
	assert.Equal(t, 2.5, ts.Steps[2].Time)
}

// TestDecodeValue_UnknownShape verifies rejection of mappings that match no
// union variant.
func TestDecodeValue_UnknownShape(t *testing.T) {
	_, err := decodeValue(t, "{wat: 1}")
	assert.ErrorIs(t, err, state.ErrUnknownValueShape)

	_, err = decodeValue(t, "{min: 1.0}")
	assert.ErrorIs(t, err, state.ErrUnknownValueShape, "min without max is not a range")
}
