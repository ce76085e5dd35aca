// Package model defines the value types shared across the transformer.
package model

// Path represents a file system path.
type Path string

// FileKind classifies a file once at enumeration time so later stages never
// re-derive it from the file name.
type FileKind int

const (
	// SourceFile is ordinary build output (.js, .ts): only module specifiers
	// inside import/export/require forms are rewritten.
	SourceFile FileKind = iota

	// DeclarationFile is a TypeScript declaration file (.d.ts): in addition to
	// module specifiers, /// <reference types="..." /> directives are rewritten.
	DeclarationFile
)

// String returns a human-readable label for the file kind.
func (k FileKind) String() string {
	if k == DeclarationFile {
		return "declaration"
	}

	return "source"
}

// FileJob describes one file to process. It carries the classification of the
// source and destination roots so the materializer can compute the output
// path without touching the disk again.
type FileJob struct {
	// Source is the absolute path of the file to rewrite.
	Source Path

	// Kind tags the file as ordinary output or a declaration file.
	Kind FileKind

	// SourceRoot is the absolute path the user passed as <src>.
	SourceRoot Path

	// SourceIsDir reports whether SourceRoot is a directory.
	SourceIsDir bool

	// DestRoot is the absolute path the user passed as [dst] (defaults to
	// SourceRoot for in-place rewrites).
	DestRoot Path

	// DestIsDir reports whether DestRoot is a directory.
	DestIsDir bool
}
