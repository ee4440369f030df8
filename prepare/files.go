// SPDX-License-Identifier: MIT
// Package: hydrovary/prepare
//
// files.go - file-reference read-in.
//
// A parameter value may be a path instead of an inline value. Read-in
// replaces the reference with the decoded file content so the variation
// stage never touches the filesystem. Paths are resolved relative to the
// settings file's directory (baseDir).

package prepare

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"hydrovary/state"
)

// ReadFiles resolves every FileRef in the background parameter map. JSON
// files are decoded into their value shape, plain text files become Text
// values. Anything else is rejected so the problem surfaces here and not in
// a rendered input deck.
func ReadFiles(st *state.RunState, baseDir string) error {
	var failed error
	st.Hydrogeological.Range(func(name string, p state.Parameter) bool {
		ref, ok := p.Value.(state.FileRef)
		if !ok {
			return true
		}
		val, err := readValueFile(resolvePath(baseDir, string(ref)))
		if err != nil {
			failed = fmt.Errorf("parameter %q: %w", name, err)
			return false
		}
		p.Value = val
		st.Hydrogeological.Set(name, p)
		return true
	})
	return failed
}

func resolvePath(baseDir, ref string) string {
	if filepath.IsAbs(ref) || baseDir == "" {
		return ref
	}
	return filepath.Join(baseDir, ref)
}

func readValueFile(path string) (state.Value, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return readJSONValue(path)
	case ".txt", "":
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return state.Text(raw), nil
	case ".h5":
		return nil, fmt.Errorf("%q: HDF5 fields are consumed by the renderer, not the variation engine: %w", path, ErrUnsupportedFile)
	default:
		return nil, fmt.Errorf("%q: %w", path, ErrUnsupportedFile)
	}
}

// readJSONValue decodes a JSON file through the same union decoder the
// settings loader uses. YAML is a JSON superset, so one decoder serves both.
func readJSONValue(path string) (state.Value, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var node yaml.Node
	if err := yaml.Unmarshal(raw, &node); err != nil {
		return nil, fmt.Errorf("%q: %w", path, err)
	}
	if node.Kind != yaml.DocumentNode || len(node.Content) == 0 {
		return nil, fmt.Errorf("%q: empty document: %w", path, state.ErrUnknownValueShape)
	}
	val, err := state.DecodeValue(node.Content[0])
	if err != nil {
		return nil, fmt.Errorf("%q: %w", path, err)
	}
	return val, nil
}
