// SPDX-License-Identifier: MIT

// Package state holds the data model shared by every stage of the ensemble
// pipeline: parameter declarations, resolved data items, datapoints, the
// general run configuration and the single seeded random source.
//
// The central types are:
//
//   - Parameter: a named declaration of how one quantity is produced. Its
//     Value is a closed tagged union (Scalar, MinMax, TimeSeries, PerlinSpec,
//     HeatPump, HeatPumpGroup, FileRef, Field, ...), its Vary mode states how
//     the value differs across datapoints and its Distribution states the
//     sampling/interpolation space (uniform or logarithmic).
//   - Data: the concrete value resolved for one Parameter in one Datapoint.
//     Data never aliases the originating Parameter; every resolution boundary
//     performs a deep copy (Value.Clone).
//   - Datapoint: one fully resolved parameter set, i.e. one simulation run.
//   - RunState: the whole run. It owns the two parameter maps (background
//     hydrogeological parameters and heat pump parameters), the accumulated
//     datapoints and the Source.
//
// Determinism contract: the Source is created exactly once per RunState from
// the configured seed and is never re-seeded. Parameter maps are insertion
// ordered (ParamMap) so that the sequence of random draws is identical for
// identical inputs. Everything downstream relies on this.
package state
