// SPDX-License-Identifier: MIT
// Package: hydrovary/pipeline
//
// pipeline.go - stage orchestration.

package pipeline

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"hydrovary/prepare"
	"hydrovary/settings"
	"hydrovary/state"
	"hydrovary/validate"
	"hydrovary/vary"
)

// Options configures one pipeline run.
type Options struct {
	// SettingsFile is the YAML run definition. Empty runs on defaults.
	SettingsFile string
	// NonInteractive disables all confirmation prompts regardless of the
	// settings file's interactive flag.
	NonInteractive bool

	// Prompt and PromptOut are the confirmation channel, defaulting to
	// stdin/stdout. Tests inject readers here.
	Prompt    io.Reader
	PromptOut io.Writer
}

func (o *Options) fill() {
	if o.Prompt == nil {
		o.Prompt = os.Stdin
	}
	if o.PromptOut == nil {
		o.PromptOut = os.Stdout
	}
}

// Run executes the full pipeline: load, validate, prepare, vary, export.
func Run(ctx context.Context, logger *log.Logger, opts Options) error {
	opts.fill()

	st := state.New()
	if opts.SettingsFile != "" {
		logger.Info("loading settings", "file", opts.SettingsFile)
		user, err := settings.Load(opts.SettingsFile)
		if err != nil {
			return err
		}
		st.Override(user)
	} else {
		logger.Info("no settings file given, running on defaults")
	}
	if opts.NonInteractive {
		st.General.Interactive = false
	}

	warnings, err := validate.Config(st)
	for _, w := range warnings {
		logger.Warn(w)
	}
	if err != nil {
		return fmt.Errorf("pipeline: settings rejected: %w", err)
	}

	logRunSummary(logger, st)
	if st.General.Interactive && !confirm(opts.Prompt, opts.PromptOut, "Run with this configuration?") {
		logger.Info("aborted by user")
		return nil
	}

	err = stage(ctx, logger, st, "prepare", func() error {
		return prepare.Prepare(st, filepath.Dir(opts.SettingsFile))
	})
	if err != nil {
		return err
	}
	if err := validate.Prepared(st); err != nil {
		return fmt.Errorf("pipeline: prepared state rejected: %w", err)
	}

	err = stage(ctx, logger, st, "vary", func() error {
		return vary.Assemble(st)
	})
	if err != nil {
		return err
	}
	logger.Info("datapoints assembled", "count", len(st.Datapoints))

	return stage(ctx, logger, st, "export", func() error {
		return Export(logger, st, opts)
	})
}

// stage runs fn with context and profiling bookkeeping.
func stage(ctx context.Context, logger *log.Logger, st *state.RunState, name string, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	logger.Debug("stage start", "stage", name)
	start := time.Now()
	if err := fn(); err != nil {
		return fmt.Errorf("pipeline: %s: %w", name, err)
	}
	if st.General.Profiling {
		logger.Info("stage done", "stage", name, "took", time.Since(start))
	}
	return nil
}

func logRunSummary(logger *log.Logger, st *state.RunState) {
	logger.Info("run configuration",
		"cells", st.General.NumberCells,
		"resolution", st.General.CellResolution,
		"datapoints", st.General.NumberDatapoints,
		"shuffle", st.General.ShuffleDatapoints,
		"seed", seedLabel(st),
		"output", st.General.OutputDirectory,
	)
	for _, p := range st.Parameters() {
		logger.Info("parameter", "name", p.Name, "vary", p.Vary, "distribution", p.Distribution)
	}
}

func seedLabel(st *state.RunState) string {
	if st.General.RandomSeed == nil {
		return fmt.Sprintf("none (effective %d)", st.NoiseSeed())
	}
	return fmt.Sprintf("%d", *st.General.RandomSeed)
}

// confirm asks a yes/no question and reads one line. Empty input counts as
// yes.
func confirm(r io.Reader, w io.Writer, question string) bool {
	fmt.Fprintf(w, "%s [Y/n] ", question)
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "", "y", "yes":
		return true
	default:
		return false
	}
}
