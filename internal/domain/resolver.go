// Package domain contains the core path-resolution and rewrite logic.
package domain

import (
	"fmt"
	"os"
	"strings"

	"github.com/t83714/ts-module-alias-transformer/internal/adapter"
	m "github.com/t83714/ts-module-alias-transformer/internal/model"
)

// DefaultExtensions is the extension include set used when none is
// configured. It targets TypeScript build results plus plain .ts sources.
var DefaultExtensions = []string{"js", "ts", "d.ts"}

// ResolveArgs carries the raw source/destination paths and the extension
// include set for directory enumeration.
type ResolveArgs struct {
	Source     m.Path
	Dest       m.Path
	Extensions []string
}

// Resolution is the classified view of a source/destination pair plus the
// file jobs enumerated under the source root.
type Resolution struct {
	SourceRoot  m.Path
	SourceIsDir bool
	DestRoot    m.Path
	DestIsDir   bool
	Jobs        []m.FileJob
}

// Resolver turns a raw <src> [dst] pair into a Resolution.
type Resolver interface {
	Resolve(args ResolveArgs) (Resolution, error)
}

type resolver struct {
	fs adapter.FSAdapter
}

// NewResolver creates a Resolver backed by the given filesystem adapter.
func NewResolver(fs adapter.FSAdapter) Resolver {
	return &resolver{fs: fs}
}

// Resolve validates and classifies the source/destination pair and, for a
// directory source, enumerates every eligible file beneath it.
//
// When the destination does not exist it is created as a directory before
// classification. A directory source paired with a non-directory destination
// is an error.
func (r *resolver) Resolve(args ResolveArgs) (Resolution, error) {
	source, err := r.fs.Abs(args.Source)
	if err != nil {
		return Resolution{}, fmt.Errorf("failed to resolve source path %s: %w", args.Source, err)
	}

	sourceInfo, err := r.fs.Stat(source)
	if err != nil {
		if os.IsNotExist(err) {
			return Resolution{}, fmt.Errorf("%w: %s", m.ErrSourceNotFound, source)
		}

		return Resolution{}, fmt.Errorf("failed to stat source path %s: %w", source, err)
	}

	dest := args.Dest
	if dest == "" {
		dest = source
	}

	dest, err = r.fs.Abs(dest)
	if err != nil {
		return Resolution{}, fmt.Errorf("failed to resolve destination path %s: %w", args.Dest, err)
	}

	destInfo, err := r.fs.Stat(dest)
	if err != nil {
		if !os.IsNotExist(err) {
			return Resolution{}, fmt.Errorf("failed to stat destination path %s: %w", dest, err)
		}

		if err := r.fs.MkdirAll(dest, 0o750); err != nil {
			return Resolution{}, fmt.Errorf("failed to create destination directory %s: %w", dest, err)
		}

		destInfo, err = r.fs.Stat(dest)
		if err != nil {
			return Resolution{}, fmt.Errorf("failed to stat destination path %s: %w", dest, err)
		}
	}

	res := Resolution{
		SourceRoot:  source,
		SourceIsDir: sourceInfo.IsDir(),
		DestRoot:    dest,
		DestIsDir:   destInfo.IsDir(),
	}

	if res.SourceIsDir && !res.DestIsDir {
		return Resolution{}, fmt.Errorf("%w: %s", m.ErrDestinationMustBeDirectory, dest)
	}

	res.Jobs, err = r.enumerate(res, normalizeExtensions(args.Extensions))
	if err != nil {
		return Resolution{}, err
	}

	return res, nil
}

func (r *resolver) enumerate(res Resolution, extensions []string) ([]m.FileJob, error) {
	newJob := func(path m.Path) m.FileJob {
		return m.FileJob{
			Source:      path,
			Kind:        kindOf(path),
			SourceRoot:  res.SourceRoot,
			SourceIsDir: res.SourceIsDir,
			DestRoot:    res.DestRoot,
			DestIsDir:   res.DestIsDir,
		}
	}

	// A single-file source is always processed, whatever its extension.
	if !res.SourceIsDir {
		return []m.FileJob{newJob(res.SourceRoot)}, nil
	}

	var jobs []m.FileJob

	err := r.fs.WalkFiles(res.SourceRoot, func(path m.Path) error {
		if !hasAnyExtension(path, extensions) {
			return nil
		}

		jobs = append(jobs, newJob(path))

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate %s: %w", res.SourceRoot, err)
	}

	return jobs, nil
}

// kindOf tags the file once; downstream stages dispatch on the tag instead of
// re-inspecting the name.
func kindOf(path m.Path) m.FileKind {
	if strings.HasSuffix(string(path), ".d.ts") {
		return m.DeclarationFile
	}

	return m.SourceFile
}

// normalizeExtensions strips leading dots and drops empty entries so the
// include set accepts "js", ".js" and "d.ts" alike.
func normalizeExtensions(extensions []string) []string {
	if len(extensions) == 0 {
		return DefaultExtensions
	}

	out := make([]string, 0, len(extensions))

	for _, ext := range extensions {
		ext = strings.TrimPrefix(strings.TrimSpace(ext), ".")
		if ext == "" {
			continue
		}

		out = append(out, ext)
	}

	if len(out) == 0 {
		return DefaultExtensions
	}

	return out
}

// hasAnyExtension matches each extension as a dotted suffix, so multi-dot
// entries like "d.ts" work the same way single ones do.
func hasAnyExtension(path m.Path, extensions []string) bool {
	name := string(path)

	for _, ext := range extensions {
		if strings.HasSuffix(name, "."+ext) {
			return true
		}
	}

	return false
}
