package domain

import (
	"fmt"
	"path/filepath"

	"github.com/t83714/ts-module-alias-transformer/internal/adapter"
	m "github.com/t83714/ts-module-alias-transformer/internal/model"
)

// Materializer computes where a rewritten file lands and writes it there,
// creating parent directories as needed. It never deletes anything; existing
// files are overwritten without warning.
type Materializer interface {
	// DestPath maps a file job to its destination file path.
	DestPath(job m.FileJob) (m.Path, error)

	// Write persists content at path, creating missing parent directories.
	Write(path m.Path, content []byte) error
}

type materializer struct {
	fs adapter.FSAdapter
}

// NewMaterializer creates a Materializer backed by the given filesystem
// adapter.
func NewMaterializer(fs adapter.FSAdapter) Materializer {
	return &materializer{fs: fs}
}

// DestPath applies the three mapping rules in order:
//
//   - destination is a file: the destination path is used verbatim
//     (single-file overwrite mode);
//   - source is a file, destination a directory: destination plus the
//     source's base name;
//   - both are directories: destination plus the source file's path relative
//     to the source root, mirroring the subtree structure.
func (mt *materializer) DestPath(job m.FileJob) (m.Path, error) {
	if !job.DestIsDir {
		return job.DestRoot, nil
	}

	if !job.SourceIsDir {
		return mt.fs.JoinPath(string(job.DestRoot), filepath.Base(string(job.Source))), nil
	}

	rel, err := mt.fs.RelPath(job.SourceRoot, job.Source)
	if err != nil {
		return "", fmt.Errorf("failed to relativize %s against %s: %w", job.Source, job.SourceRoot, err)
	}

	return mt.fs.JoinPath(string(job.DestRoot), string(rel)), nil
}

// Write ensures the parent directory exists, then writes content.
func (mt *materializer) Write(path m.Path, content []byte) error {
	parent := m.Path(filepath.Dir(string(path)))
	if err := mt.fs.MkdirAll(parent, 0o750); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", parent, err)
	}

	if err := mt.fs.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
