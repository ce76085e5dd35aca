package domain

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/t83714/ts-module-alias-transformer/internal/adapter"
	"github.com/t83714/ts-module-alias-transformer/internal/controller"
	m "github.com/t83714/ts-module-alias-transformer/internal/model"
)

// RunArgs carries everything one invocation needs.
type RunArgs struct {
	// Source is the file or directory to transform (required).
	Source m.Path

	// Dest is the destination file or directory. Empty means in-place.
	Dest m.Path

	// MappingConfigPath locates the manifest carrying the alias table.
	MappingConfigPath m.Path

	// Extensions is the include set for directory enumeration. Empty means
	// the default set.
	Extensions []string

	// DryRun computes and reports everything but writes nothing.
	DryRun bool

	// Quiet suppresses per-file output.
	Quiet bool

	// Verbose enables per-file output and the final outcome table.
	Verbose bool
}

// Workflow runs a whole transform: load the alias table once, enumerate the
// eligible files, then rewrite and materialize them strictly sequentially.
type Workflow interface {
	Run(ctx context.Context, args RunArgs) (m.RunSummary, error)
}

type workflow struct {
	manifest     adapter.ManifestAdapter
	fs           adapter.FSAdapter
	resolver     Resolver
	rewriter     Rewriter
	materializer Materializer
	ui           controller.UI
}

// NewWorkflow wires the workflow from its collaborators.
func NewWorkflow(
	manifest adapter.ManifestAdapter,
	fs adapter.FSAdapter,
	resolver Resolver,
	rewriter Rewriter,
	materializer Materializer,
	ui controller.UI,
) Workflow {
	return &workflow{
		manifest:     manifest,
		fs:           fs,
		resolver:     resolver,
		rewriter:     rewriter,
		materializer: materializer,
		ui:           ui,
	}
}

// Run implements Workflow.
//
// Failures from the manifest loader or the path resolver abort the run
// before (further) files are touched. Per-file "no output" conditions are
// non-fatal: the file is skipped with a warning and processing continues.
// There is no rollback; files written before a later failure stay written.
func (w *workflow) Run(ctx context.Context, args RunArgs) (m.RunSummary, error) {
	table, err := w.manifest.Load(args.MappingConfigPath)
	if err != nil {
		return m.RunSummary{}, err
	}

	resolution, err := w.resolver.Resolve(ResolveArgs{
		Source:     args.Source,
		Dest:       args.Dest,
		Extensions: args.Extensions,
	})
	if err != nil {
		return m.RunSummary{}, err
	}

	slog.Info("starting run",
		"source", resolution.SourceRoot,
		"dest", resolution.DestRoot,
		"files", len(resolution.Jobs),
		"mappings", table.Len(),
		"dryRun", args.DryRun,
	)

	if err := w.ui.Start(ctx, len(resolution.Jobs), startOptions(args)...); err != nil {
		return m.RunSummary{}, err
	}
	defer w.ui.Close(ctx)

	var summary m.RunSummary

	for _, job := range resolution.Jobs {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		if err := w.processJob(ctx, job, table, args.DryRun, &summary); err != nil {
			return summary, err
		}
	}

	w.ui.DisplaySummary(ctx, summary)

	return summary, nil
}

func (w *workflow) processJob(ctx context.Context, job m.FileJob, table m.AliasTable, dryRun bool, summary *m.RunSummary) error {
	content, err := w.fs.ReadFile(job.Source)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", job.Source, err)
	}

	result := w.rewriter.Rewrite(content, RewriteOptions{Table: table, Kind: job.Kind})
	if !result.OK {
		summary.Skipped++
		slog.Warn("skipping file", "path", job.Source, "reason", m.ErrNoOutputProduced)
		w.ui.DisplayFileSkipped(ctx, m.FileOutcome{
			Source: job.Source,
			Kind:   job.Kind,
			Status: m.StatusSkipped,
			Reason: m.ErrNoOutputProduced.Error(),
		})

		return nil
	}

	dest, err := w.materializer.DestPath(job)
	if err != nil {
		return err
	}

	if dryRun {
		if result.Changed {
			diff, err := unifiedDiff(string(content), result.Text, job.Source, dest)
			if err != nil {
				return err
			}

			w.ui.DisplayFileDiff(ctx, job.Source, diff)
		}
	} else if err := w.materializer.Write(dest, []byte(result.Text)); err != nil {
		return err
	}

	summary.Compiled++

	status := m.StatusCompiled
	if !result.Changed {
		summary.Unchanged++
		status = m.StatusUnchanged
	}

	slog.Debug("processed file", "path", job.Source, "dest", dest, "changed", result.Changed)
	w.ui.DisplayFileCompiled(ctx, m.FileOutcome{
		Source: job.Source,
		Dest:   dest,
		Kind:   job.Kind,
		Status: status,
	})

	return nil
}

func startOptions(args RunArgs) []controller.StartOption {
	var options []controller.StartOption

	if args.Quiet {
		options = append(options, controller.WithQuiet())
	}

	if args.Verbose {
		options = append(options, controller.WithVerbose())
	}

	if args.DryRun {
		options = append(options, controller.WithDryRun())
	}

	return options
}

func unifiedDiff(before, after string, source, dest m.Path) (string, error) {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: string(source),
		ToFile:   string(dest),
		Context:  3,
	})
	if err != nil {
		return "", fmt.Errorf("failed to diff %s: %w", source, err)
	}

	return diff, nil
}
