// SPDX-License-Identifier: MIT

// Package prepare normalizes a loaded run state before variation.
//
// Preparation runs four steps in a fixed order:
//
//  1. ReadFiles replaces file-reference values with the decoded file content.
//  2. ExpandHeatPumps replaces every heat pump group with concrete, uniquely
//     named and uniquely located heat pumps.
//  3. ConvertCoordinates turns heat pump cell indices into physical
//     cell-center coordinates, exactly once.
//  4. NormalizeSchedules lifts scalar and min/max injection values into
//     single-step time series so every pump speaks the same schedule shape.
//
// The order matters: expansion consumes random draws and must happen before
// coordinate conversion, and conversion must happen before anything reads a
// location as physical coordinates. Prepare runs the whole sequence.
package prepare
