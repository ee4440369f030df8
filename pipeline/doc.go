// SPDX-License-Identifier: MIT

// Package pipeline runs the variation stages end to end.
//
// Run drives load, validation, preparation, variation and export in order,
// logging stage boundaries and, when profiling is on, stage durations.
// In interactive mode it halts after validation to show the resolved run
// configuration and asks for confirmation before doing any work that costs
// time or touches the output directory.
package pipeline
