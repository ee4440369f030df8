// SPDX-License-Identifier: MIT

// Package vary is the variation engine: it resolves every parameter
// declaration into a concrete value for each datapoint of the ensemble.
//
// Resolve dispatches on the (vary mode, value shape) pair:
//
//   - fixed: deep-copy the declared value; heat pumps additionally get their
//     time-dependent ranges sampled.
//   - const_within_datapoint: defined for min/max ranges only; the value is
//     ramped linearly (or log-linearly) across the datapoint indices.
//   - spatially_vary_within_datapoint: Perlin descriptors become 3D fields,
//     heat pumps get fresh random locations; plain scalars and bare min/max
//     ranges are usage errors with pointed diagnostics.
//
// Assemble drives Resolve over all parameters for all datapoints in a strict
// deterministic order and, when enabled, applies the per-parameter
// cross-datapoint shuffle afterwards. Without the shuffle, two independently
// ramped const parameters would both sit at their minima in datapoint 0 and
// their maxima in datapoint N-1, faking a perfect ensemble-level correlation
// between unrelated quantities.
package vary
