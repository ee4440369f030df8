// SPDX-License-Identifier: MIT

// Package validate gates a run state before expensive work happens.
//
// Config checks the loaded settings: required background parameters, value
// shapes in the right family, file-reference rules. Prepared re-checks the
// state after preparation, when heat pump groups are expanded and locations
// are concrete. Failures are configuration errors meant for the user;
// anything that can only happen through a bug elsewhere reports
// state.ErrInvariant instead.
package validate
