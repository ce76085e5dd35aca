package adapter

import (
	"io/fs"
	"os"
	"path/filepath"

	m "github.com/t83714/ts-module-alias-transformer/internal/model"
)

// FSAdapter abstracts the filesystem operations the domain layer relies on
// when resolving paths and materializing output. It intentionally hides
// direct `os` access so the workflow logic can be tested without touching
// the disk.
type FSAdapter interface {
	// Stat returns metadata for a path so the domain can check existence or
	// distinguish files from directories.
	Stat(path m.Path) (os.FileInfo, error)

	// Abs resolves a path to absolute, separator-normalized form.
	Abs(path m.Path) (m.Path, error)

	// WalkFiles traverses the tree rooted at root in lexical order and calls
	// fn for every regular file. Directories are never passed to fn.
	WalkFiles(root m.Path, fn func(path m.Path) error) error

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFile writes content to a file with the given permissions,
	// overwriting any existing file at that path.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// MkdirAll creates a directory along with any missing ancestors.
	MkdirAll(path m.Path, perm os.FileMode) error

	// RelPath returns the relative path from base to target.
	RelPath(base, target m.Path) (m.Path, error)

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// LocalFSAdapter is the concrete FSAdapter backed by the os package.
type LocalFSAdapter struct{}

// NewLocalFSAdapter constructs a LocalFSAdapter ready to be wired into the
// workflow.
func NewLocalFSAdapter() *LocalFSAdapter {
	return &LocalFSAdapter{}
}

// Stat returns os.FileInfo metadata for the given path.
func (a *LocalFSAdapter) Stat(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// Abs resolves path to an absolute, cleaned form.
func (a *LocalFSAdapter) Abs(path m.Path) (m.Path, error) {
	abs, err := filepath.Abs(string(path))
	if err != nil {
		return "", err
	}

	return m.Path(abs), nil
}

// WalkFiles visits every regular file under root in lexical order.
func (a *LocalFSAdapter) WalkFiles(root m.Path, fn func(path m.Path) error) error {
	return filepath.WalkDir(string(root), func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		return fn(m.Path(path))
	})
}

// ReadFile loads file contents from disk.
func (a *LocalFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// WriteFile writes content to a file with the given permissions.
func (a *LocalFSAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	return os.WriteFile(string(path), content, perm)
}

// MkdirAll creates the directory at path and any missing ancestors.
func (a *LocalFSAdapter) MkdirAll(path m.Path, perm os.FileMode) error {
	return os.MkdirAll(string(path), perm)
}

// RelPath returns the relative path from base to target.
func (a *LocalFSAdapter) RelPath(base, target m.Path) (m.Path, error) {
	rel, err := filepath.Rel(string(base), string(target))
	if err != nil {
		return "", err
	}

	return m.Path(rel), nil
}

// JoinPath joins path elements into a single path.
func (a *LocalFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}
