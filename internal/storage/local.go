// Package storage locates clipboard artifacts in the shared storage root and
// optionally mirrors them to S3-compatible object storage.
package storage

import (
	"fmt"
	"path/filepath"

	"github.com/dmitrijs2005/sharenodes/internal/common"
	"github.com/dmitrijs2005/sharenodes/internal/filex"
)

// Local maps artifact ids to files under a shared directory.
type Local struct {
	root string
	ext  string
}

// NewLocal returns a Local rooted at root. An empty ext means ".nk".
func NewLocal(root, ext string) *Local {
	if ext == "" {
		ext = common.DefaultArtifactExt
	}
	return &Local{root: root, ext: ext}
}

func (l *Local) Root() string { return l.root }

// Key returns the artifact's file name, "<id><ext>".
func (l *Local) Key(id string) string {
	return id + l.ext
}

// Path returns root/<id><ext>. It does not touch the filesystem.
func (l *Local) Path(id string) string {
	return filepath.Join(l.root, l.Key(id))
}

// EnsureRoot creates the root directory if needed and makes it absolute, so
// paths handed to other processes stay valid after a chdir.
func (l *Local) EnsureRoot() error {
	abs, err := filex.EnsureDir(l.root)
	if err != nil {
		return fmt.Errorf("storage root: %w", err)
	}
	l.root = abs
	return nil
}

// Exists reports whether the artifact file is present.
func (l *Local) Exists(id string) (bool, error) {
	return filex.Exists(l.Path(id))
}
