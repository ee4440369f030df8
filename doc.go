// Package hydrovary generates ensembles of internally consistent input
// parameter sets ("datapoints") for groundwater heat transport simulations.
//
// A declarative settings file names the parameters of a simulation run and
// how each one varies: fixed, ramped across the ensemble, or spatially
// varying as a coherent noise field. hydrovary expands that declaration into
// N fully resolved datapoints, reproducibly from a single seed.
//
// The work is organized under focused subpackages:
//
//	state/      — run state, the parameter value union, the random source
//	settings/   — YAML loading with embedded JSON schema validation
//	prepare/    — file read-in, heat pump group expansion, coordinate conversion
//	validate/   — configuration gate and post-preparation checks
//	noisefield/ — Perlin noise fields and the pressure-gradient transform
//	vary/       — per-datapoint value resolution and ensemble assembly
//	pipeline/   — stage orchestration, logging, datapoint export
//	cmd/        — the hydrovary command line
//
// Determinism is the central contract: the same settings file and seed yield
// byte-identical datapoints, because every random draw comes from one shared
// source in one well-defined order.
package hydrovary
