package users

import (
	"context"

	"github.com/dmitrijs2005/sharenodes/internal/models"
)

// Repository is read-mostly access to the user directory. Create exists for
// offline provisioning only; the runtime never writes profiles.
type Repository interface {
	// Create inserts a new profile. It never updates an existing login.
	Create(ctx context.Context, user *models.UserProfile) error

	// GetByLogin returns the profile or common.ErrorNotFound.
	GetByLogin(ctx context.Context, login string) (*models.UserProfile, error)

	// List returns every profile ordered by name.
	List(ctx context.Context) ([]models.UserProfile, error)
}
