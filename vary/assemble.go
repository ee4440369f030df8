// SPDX-License-Identifier: MIT
// Package: hydrovary/vary
//
// assemble.go - the DatapointAssembler and the cross-datapoint shuffle.

package vary

import (
	"fmt"

	"hydrovary/state"
)

// Assemble resolves every parameter for every datapoint index 0..N-1, in a
// strict deterministic order: datapoints outer, parameters inner (background
// parameters first, then heat pumps, each in insertion order). When the
// shuffle knob is on, the per-parameter cross-datapoint shuffle runs once
// afterwards.
//
// Any resolution failure aborts the whole run; no partial ensemble is kept.
func Assemble(st *state.RunState) error {
	for index := 0; index < st.General.NumberDatapoints; index++ {
		dp := state.NewDatapoint(index)
		for _, p := range st.Parameters() {
			data, err := Resolve(st, p, index)
			if err != nil {
				return fmt.Errorf("datapoint %d: %w", index, err)
			}
			dp.Data.Set(data.Name, data)
		}
		st.Datapoints = append(st.Datapoints, dp)
	}

	if st.General.ShuffleDatapoints {
		ShuffleDatapoints(st)
	}
	return nil
}

// ShuffleDatapoints permutes, independently for every parameter name, the
// assignment of already-resolved values to datapoints. The multiset of
// values per name is untouched; only which datapoint carries which value
// changes. Independent permutations are the point: two const-ramped
// parameters would otherwise march from min to max in lockstep across the
// ensemble.
//
// Parameter name sets are identical across datapoints by construction, so
// datapoint 0 serves as the name source.
func ShuffleDatapoints(st *state.RunState) {
	if len(st.Datapoints) == 0 {
		return
	}

	for _, name := range st.Datapoints[0].Data.Names() {
		values := make([]state.Data, len(st.Datapoints))
		for i, dp := range st.Datapoints {
			v, _ := dp.Data.Get(name)
			values[i] = v
		}

		st.Rand().Shuffle(len(values), func(i, j int) {
			values[i], values[j] = values[j], values[i]
		})

		for i, dp := range st.Datapoints {
			dp.Data.Set(name, values[i])
		}
	}
}
