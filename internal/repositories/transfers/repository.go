package transfers

import (
	"context"

	"github.com/dmitrijs2005/sharenodes/internal/models"
)

// Repository stores transfer records. Records are insert-only: there is no
// update or delete.
type Repository interface {
	// Create inserts one record.
	Create(ctx context.Context, record *models.TransferRecord) error

	// ListByDestination returns every record addressed to login, newest
	// first. Records with equal timestamps come back latest-inserted first.
	ListByDestination(ctx context.Context, login string) ([]models.TransferRecord, error)
}
