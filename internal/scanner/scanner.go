// Package scanner enumerates candidate paths for the matcher.
package scanner

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/text/unicode/norm"
)

// Static adapts a fixed path slice to the matcher's Scanner interface.
type Static []string

// Paths returns the slice as-is.
func (s Static) Paths() []string {
	return s
}

// Options tunes a filesystem walk. The zero value walks everything
// except hidden entries and .git.
type Options struct {
	// IncludeHidden keeps entries the platform considers hidden.
	IncludeHidden bool
	// MaxDepth bounds directory nesting; 0 means unlimited. Depth 1 is
	// the root directory's own entries.
	MaxDepth int
	// MaxEntries caps the number of collected paths; 0 means unlimited.
	MaxEntries int
}

// Walker enumerates regular files under a root directory, breadth-first,
// as slash-separated NFC-normalized paths relative to the root. The walk
// runs once; the result is cached for subsequent Paths calls.
type Walker struct {
	root  string
	opts  Options
	paths []string
	done  bool
}

// NewWalker creates a Walker rooted at dir.
func NewWalker(dir string, opts Options) *Walker {
	return &Walker{root: dir, opts: opts}
}

// Scan walks the tree and returns the collected paths. Unreadable
// subdirectories are skipped; an unreadable root is an error.
func (w *Walker) Scan() ([]string, error) {
	if w.done {
		return w.paths, nil
	}
	if _, err := os.ReadDir(w.root); err != nil {
		return nil, fmt.Errorf("scanner: %w", err)
	}

	type dirNode struct {
		absPath string
		relPath string
		depth   int
	}

	var paths []string
	queue := []dirNode{{absPath: w.root, relPath: "", depth: 1}}

	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]

		entries, err := os.ReadDir(node.absPath)
		if err != nil {
			continue
		}

		for _, entry := range entries {
			name := entry.Name()
			fullPath := filepath.Join(node.absPath, name)

			if entry.IsDir() && name == ".git" {
				continue
			}
			if !w.opts.IncludeHidden && IsHidden(fullPath, name) {
				continue
			}

			rel := name
			if node.relPath != "" {
				rel = node.relPath + "/" + name
			}

			if entry.IsDir() {
				if w.opts.MaxDepth > 0 && node.depth >= w.opts.MaxDepth {
					continue
				}
				queue = append(queue, dirNode{
					absPath: fullPath,
					relPath: rel,
					depth:   node.depth + 1,
				})
				continue
			}

			paths = append(paths, norm.NFC.String(rel))
			if w.opts.MaxEntries > 0 && len(paths) >= w.opts.MaxEntries {
				w.paths = paths
				w.done = true
				return paths, nil
			}
		}
	}

	w.paths = paths
	w.done = true
	return paths, nil
}

// Paths implements the matcher's Scanner interface. Walk errors surface
// through Scan; here an unreadable root yields an empty collection.
func (w *Walker) Paths() []string {
	paths, err := w.Scan()
	if err != nil {
		return nil
	}
	return paths
}
