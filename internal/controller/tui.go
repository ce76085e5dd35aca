package controller

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	m "github.com/t83714/ts-module-alias-transformer/internal/model"
)

// TUI implements UI using Bubble Tea: a progress bar while files are being
// rewritten, then the summary as the final view.
type TUI struct {
	output  io.Writer
	program *tea.Program
	done    chan struct{}
	runErr  error
}

// NewTUI creates a new TUI writing to output.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output, done: make(chan struct{})}
}

type fileMsg struct {
	path    string
	skipped bool
}

type summaryMsg struct {
	summary m.RunSummary
}

// Start launches the Bubble Tea program in the background.
func (p *TUI) Start(ctx context.Context, total int, _ ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	model := newProgressModel(total)
	p.program = tea.NewProgram(model, tea.WithOutput(p.output))

	go func() {
		defer close(p.done)

		_, p.runErr = p.program.Run()
	}()

	return nil
}

// DisplayFileCompiled advances the progress bar.
func (p *TUI) DisplayFileCompiled(ctx context.Context, outcome m.FileOutcome) {
	if err := ctx.Err(); err != nil {
		return
	}

	p.program.Send(fileMsg{path: string(outcome.Source)})
}

// DisplayFileSkipped advances the progress bar and counts the skip.
func (p *TUI) DisplayFileSkipped(ctx context.Context, outcome m.FileOutcome) {
	if err := ctx.Err(); err != nil {
		return
	}

	p.program.Send(fileMsg{path: string(outcome.Source), skipped: true})
}

// DisplayFileDiff is a no-op: dry runs never use the TUI.
func (p *TUI) DisplayFileDiff(_ context.Context, _ m.Path, _ string) {}

// DisplaySummary hands the summary to the model and quits the program; the
// summary stays on screen as the final view.
func (p *TUI) DisplaySummary(ctx context.Context, summary m.RunSummary) {
	if err := ctx.Err(); err != nil {
		return
	}

	p.program.Send(summaryMsg{summary: summary})
}

// Close waits for the program to finish rendering its final view. The
// program only quits on its own after a summary, so runs that abort early
// must be told to exit before the wait.
func (p *TUI) Close(_ context.Context) {
	if p.program == nil {
		return
	}

	p.program.Quit()
	<-p.done

	if p.runErr != nil {
		slog.Warn("progress display exited with error", "error", p.runErr)
	}
}

// progressModel is the Bubble Tea model behind the progress display.
type progressModel struct {
	bar     progress.Model
	total   int
	seen    int
	skipped int
	current string
	summary *m.RunSummary
}

func newProgressModel(total int) progressModel {
	return progressModel{
		bar:   progress.New(progress.WithDefaultGradient()),
		total: total,
	}
}

// Init implements tea.Model.
func (pm progressModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (pm progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case fileMsg:
		pm.seen++
		pm.current = msg.path

		if msg.skipped {
			pm.skipped++
		}

		return pm, nil

	case summaryMsg:
		pm.summary = &msg.summary

		return pm, tea.Quit

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return pm, tea.Quit
		}
	}

	return pm, nil
}

// View implements tea.Model.
func (pm progressModel) View() string {
	if pm.summary != nil {
		line := successStyle.Render(fmt.Sprintf("Successfully compiled %d files.", pm.summary.Compiled))
		if pm.skipped > 0 {
			line += " " + warnStyle.Render(fmt.Sprintf("(%d skipped)", pm.skipped))
		}

		return line + "\n"
	}

	percent := 0.0
	if pm.total > 0 {
		percent = float64(pm.seen) / float64(pm.total)
	}

	view := pm.bar.ViewAs(percent)
	if pm.current != "" {
		view += "\n" + pathStyle.Render(pm.current)
	}

	return view + "\n"
}
