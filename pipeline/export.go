// SPDX-License-Identifier: MIT
// Package: hydrovary/pipeline
//
// export.go - datapoint JSON export.
//
// Each datapoint becomes a directory "datapoint-<i>" holding datapoint.json
// with the resolved parameters in resolution order. The permeability value
// is replaced by the SHA-256 hash of its JSON encoding; a varied
// permeability field is by far the largest value in a datapoint and its
// content is reproducible from the seed, so the hash is enough to identify
// it. The settings file is copied next to the datapoints so an output
// directory is self-describing.

package pipeline

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"hydrovary/state"
)

const exportFileName = "datapoint.json"

// exportedDatapoint is the on-disk document. Parameters are an array, not an
// object, so resolution order survives the encoding.
type exportedDatapoint struct {
	Index      int          `json:"index"`
	Parameters []state.Data `json:"parameters"`
}

// Export writes every datapoint under the configured output directory.
// An existing datapoint file with identical content is left alone; differing
// content asks for confirmation before being overwritten (or logs a warning
// when not interactive).
func Export(logger *log.Logger, st *state.RunState, opts Options) error {
	opts.fill()
	outDir := st.General.OutputDirectory
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("export: %w", err)
	}

	if opts.SettingsFile != "" {
		if err := copySettings(opts.SettingsFile, outDir); err != nil {
			return err
		}
	}

	for _, dp := range st.Datapoints {
		if err := exportDatapoint(logger, dp, outDir, st.General.Interactive, opts); err != nil {
			return err
		}
	}
	logger.Info("export complete", "dir", outDir)
	return nil
}

func exportDatapoint(logger *log.Logger, dp *state.Datapoint, outDir string, interactive bool, opts Options) error {
	doc := exportedDatapoint{Index: dp.Index}
	var failed error
	dp.Data.Range(func(name string, d state.Data) bool {
		if name == state.ParamPermeability {
			hashed, err := hashValue(d.Value)
			if err != nil {
				failed = fmt.Errorf("export: datapoint %d: %w", dp.Index, err)
				return false
			}
			d.Value = hashed
		}
		doc.Parameters = append(doc.Parameters, d)
		return true
	})
	if failed != nil {
		return failed
	}

	encoded, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("export: datapoint %d: %w", dp.Index, err)
	}

	dir := filepath.Join(outDir, fmt.Sprintf("datapoint-%d", dp.Index))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	target := filepath.Join(dir, exportFileName)

	if existing, err := os.ReadFile(target); err == nil {
		if bytes.Equal(existing, encoded) {
			logger.Debug("datapoint unchanged", "index", dp.Index)
			return nil
		}
		if interactive {
			if !confirm(opts.Prompt, opts.PromptOut, fmt.Sprintf("%s exists with different content, overwrite?", target)) {
				return fmt.Errorf("export: refusing to overwrite %s", target)
			}
		} else {
			logger.Warn("overwriting datapoint with different content", "file", target)
		}
	}

	if err := os.WriteFile(target, encoded, 0o644); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return nil
}

// hashValue replaces a value with the hex SHA-256 of its JSON encoding.
func hashValue(v state.Value) (state.Value, error) {
	encoded, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	sum := sha256.Sum256(encoded)
	return state.Text("sha256:" + hex.EncodeToString(sum[:])), nil
}

func copySettings(src, outDir string) error {
	raw, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("export: copy settings: %w", err)
	}
	dst := filepath.Join(outDir, filepath.Base(src))
	if err := os.WriteFile(dst, raw, 0o644); err != nil {
		return fmt.Errorf("export: copy settings: %w", err)
	}
	return nil
}
