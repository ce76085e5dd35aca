package model

import "errors"

// Fatal error classes. All of them abort the run; callers match with
// errors.Is and surface the wrapped context to the operator.
var (
	// ErrConfigNotFound means the manifest file does not exist.
	ErrConfigNotFound = errors.New("mapping config file not found")

	// ErrConfigKeyMissing means the manifest has no property under the
	// recognized configuration key.
	ErrConfigKeyMissing = errors.New("mapping config key missing")

	// ErrConfigKeyInvalidType means the configured property is not a flat
	// string-to-string object.
	ErrConfigKeyInvalidType = errors.New("mapping config key has invalid type")

	// ErrConfigKeyEmpty means the mapping object has zero entries.
	ErrConfigKeyEmpty = errors.New("mapping config is empty")

	// ErrSourceNotFound means the resolved source path does not exist.
	ErrSourceNotFound = errors.New("source path not found")

	// ErrDestinationMustBeDirectory means a directory source was paired with
	// a non-directory destination.
	ErrDestinationMustBeDirectory = errors.New("destination must be a directory")
)

// ErrNoOutputProduced is the per-file, non-fatal condition raised when the
// rewriter yields no output for a file. The file is skipped with a warning
// and processing continues.
var ErrNoOutputProduced = errors.New("no output produced")
