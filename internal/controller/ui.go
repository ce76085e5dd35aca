// Package controller provides output adapters for displaying transform runs.
package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "github.com/t83714/ts-module-alias-transformer/internal/model"
)

// StartOption is a functional option for the Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	quiet   bool
	verbose bool
	dryRun  bool
}

// WithQuiet suppresses per-file output.
func WithQuiet() StartOption {
	return func(c *StartConfig) {
		c.quiet = true
	}
}

// WithVerbose enables per-file output and the final outcome table.
func WithVerbose() StartOption {
	return func(c *StartConfig) {
		c.verbose = true
	}
}

// WithDryRun marks the run as a dry run so diffs are displayed instead of a
// progress bar.
func WithDryRun() StartOption {
	return func(c *StartConfig) {
		c.dryRun = true
	}
}

// UI defines the interface for displaying a transform run.
// Implementations can use different output methods (simple text, TUI).
type UI interface {
	Start(ctx context.Context, total int, options ...StartOption) error
	DisplayFileCompiled(ctx context.Context, outcome m.FileOutcome)
	DisplayFileSkipped(ctx context.Context, outcome m.FileOutcome)
	DisplayFileDiff(ctx context.Context, source m.Path, diff string)
	DisplaySummary(ctx context.Context, summary m.RunSummary)
	Close(ctx context.Context)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Console picks the concrete UI at Start time: an animated progress display
// on a terminal, plain printing everywhere else (and always for dry runs,
// quiet runs and verbose runs, whose output must stay scrollback-friendly).
type Console struct {
	cmd  *cobra.Command
	tty  bool
	impl UI
}

// NewUI creates a Console bound to the given command's output streams.
func NewUI(cmd *cobra.Command, tty bool) *Console {
	return &Console{cmd: cmd, tty: tty}
}

// Start selects and starts the underlying UI.
func (c *Console) Start(ctx context.Context, total int, options ...StartOption) error {
	cfg := StartConfig{}
	for _, opt := range options {
		opt(&cfg)
	}

	if c.tty && !cfg.quiet && !cfg.verbose && !cfg.dryRun {
		c.impl = NewTUI(c.cmd.OutOrStdout())
	} else {
		c.impl = NewSimpleUI(c.cmd)
	}

	return c.impl.Start(ctx, total, options...)
}

// DisplayFileCompiled forwards to the selected UI.
func (c *Console) DisplayFileCompiled(ctx context.Context, outcome m.FileOutcome) {
	if c.impl != nil {
		c.impl.DisplayFileCompiled(ctx, outcome)
	}
}

// DisplayFileSkipped forwards to the selected UI.
func (c *Console) DisplayFileSkipped(ctx context.Context, outcome m.FileOutcome) {
	if c.impl != nil {
		c.impl.DisplayFileSkipped(ctx, outcome)
	}
}

// DisplayFileDiff forwards to the selected UI.
func (c *Console) DisplayFileDiff(ctx context.Context, source m.Path, diff string) {
	if c.impl != nil {
		c.impl.DisplayFileDiff(ctx, source, diff)
	}
}

// DisplaySummary forwards to the selected UI.
func (c *Console) DisplaySummary(ctx context.Context, summary m.RunSummary) {
	if c.impl != nil {
		c.impl.DisplaySummary(ctx, summary)
	}
}

// Close forwards to the selected UI.
func (c *Console) Close(ctx context.Context) {
	if c.impl != nil {
		c.impl.Close(ctx)
	}
}
