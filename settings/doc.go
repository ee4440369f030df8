// SPDX-License-Identifier: MIT

// Package settings loads a run definition from a YAML file.
//
// Loading is two layered checks followed by a decode: the document is first
// validated against an embedded JSON schema (structure, key vocabulary,
// enum values), then decoded section by section into a state.RunState, with
// parameter values going through the state package's union decoder. The
// schema catches typos and shape mistakes with precise paths; the decoder
// only sees documents the schema already admitted.
//
// A loaded state carries the file's settings over the deterministic
// defaults: general settings and heat pumps replace wholesale, background
// parameters merge key by key.
package settings
