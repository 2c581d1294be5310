// Package services implements the clipboard flows: sending the current
// selection to coworkers and listing and pasting what others sent.
package services

import (
	"context"

	"github.com/dmitrijs2005/sharenodes/internal/models"
)

// ArtifactLocator maps artifact ids to paths. storage.Local satisfies it.
type ArtifactLocator interface {
	Path(id string) string
}

// Mirror copies artifacts to and from remote storage. storage.S3Mirror
// satisfies it.
type Mirror interface {
	Upload(ctx context.Context, id string) error
	Fetch(ctx context.Context, id string) error
}

// Resolver looks a login up in the directory. directory.Cache satisfies it.
type Resolver interface {
	Resolve(ctx context.Context, login string) (models.UserProfile, error)
}
