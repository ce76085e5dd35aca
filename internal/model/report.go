package model

// RewriteResult is the transient outcome of rewriting one file's contents.
type RewriteResult struct {
	// OK reports whether the rewriter produced output. When false the file
	// is skipped: not written and not counted.
	OK bool

	// Text is the rewritten content. Only meaningful when OK is true.
	Text string

	// Changed reports whether Text differs from the input.
	Changed bool
}

// OutcomeStatus labels how a single file ended up.
type OutcomeStatus string

// Available OutcomeStatus values.
const (
	StatusCompiled  OutcomeStatus = "compiled"
	StatusUnchanged OutcomeStatus = "unchanged"
	StatusSkipped   OutcomeStatus = "skipped"
)

// FileOutcome records the result for one processed file, for display.
type FileOutcome struct {
	Source Path
	Dest   Path
	Kind   FileKind
	Status OutcomeStatus
	Reason string
}

// RunSummary tallies a whole run. Unchanged files are written (or would be,
// in dry-run mode) and therefore also counted in Compiled.
type RunSummary struct {
	// Compiled is the number of files successfully processed.
	Compiled int

	// Unchanged is the subset of Compiled whose content did not change.
	Unchanged int

	// Skipped is the number of files the rewriter produced no output for.
	Skipped int
}
