package controller

import (
	"bytes"
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/t83714/ts-module-alias-transformer/internal/model"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	pathStyle    = lipgloss.NewStyle().Faint(true)
)

// SimpleUI implements UI using cobra Command's print helpers.
type SimpleUI struct {
	cmd      *cobra.Command
	cfg      StartConfig
	outcomes []m.FileOutcome
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, total int, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, opt := range options {
		opt(&s.cfg)
	}

	if s.cfg.verbose {
		s.printf("Processing %d file(s)\n", total)
	}

	return nil
}

// DisplayFileCompiled records one processed file and, in verbose mode,
// prints it.
func (s *SimpleUI) DisplayFileCompiled(ctx context.Context, outcome m.FileOutcome) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.outcomes = append(s.outcomes, outcome)

	if s.cfg.verbose {
		s.printf("%s %s -> %s\n", outcome.Status, pathStyle.Render(string(outcome.Source)), pathStyle.Render(string(outcome.Dest)))
	}
}

// DisplayFileSkipped warns about a file the rewriter produced no output for.
// Skips are surfaced even in quiet mode.
func (s *SimpleUI) DisplayFileSkipped(ctx context.Context, outcome m.FileOutcome) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.outcomes = append(s.outcomes, outcome)
	s.printf("%s\n", warnStyle.Render(fmt.Sprintf("warning: skipped %s: %s", outcome.Source, outcome.Reason)))
}

// DisplayFileDiff prints the unified diff a dry run produced for one file.
func (s *SimpleUI) DisplayFileDiff(ctx context.Context, source m.Path, diff string) {
	if err := ctx.Err(); err != nil {
		return
	}

	if s.cfg.quiet || diff == "" {
		return
	}

	s.printf("%s", diff)
}

// DisplaySummary prints the one-line run summary, plus the outcome table in
// verbose mode.
func (s *SimpleUI) DisplaySummary(ctx context.Context, summary m.RunSummary) {
	if err := ctx.Err(); err != nil {
		return
	}

	if s.cfg.verbose {
		s.printf("\n%s", renderOutcomeTable(s.outcomes))
	}

	line := fmt.Sprintf("Successfully compiled %d files.", summary.Compiled)
	if s.cfg.dryRun {
		line = fmt.Sprintf("Dry run: would compile %d files.", summary.Compiled)
	}

	s.printf("%s\n", successStyle.Render(line))
}

// Close finalizes the UI.
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

func (s *SimpleUI) printf(format string, args ...any) {
	s.cmd.Printf(format, args...)
}

func renderOutcomeTable(outcomes []m.FileOutcome) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Kind", "Status"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER})

	for _, outcome := range outcomes {
		table.Append([]string{string(outcome.Source), outcome.Kind.String(), string(outcome.Status)})
	}

	table.SetFooter([]string{fmt.Sprintf("Total Files %d", len(outcomes)), "", ""})
	table.Render()

	return tableBuffer.String()
}
