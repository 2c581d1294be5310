package transfers

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/sharenodes/internal/common"
	"github.com/dmitrijs2005/sharenodes/internal/dbx"
	"github.com/dmitrijs2005/sharenodes/internal/models"
)

// SQLiteRepository implements Repository for the embedded store. Timestamps
// are kept as UTC unix nanoseconds.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, rec *models.TransferRecord) error {
	query := ` INSERT INTO transfers (sender_login, destination_login, submitted_at, artifact_id, note)
			values (?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		rec.SenderLogin, rec.DestinationLogin, rec.SubmittedAt.UTC().UnixNano(), rec.ArtifactID, rec.Note)
	if err != nil {
		return fmt.Errorf("%w: failed to insert transfer: %w", common.ErrStoreUnavailable, err)
	}
	return nil
}

func (r *SQLiteRepository) ListByDestination(ctx context.Context, login string) ([]models.TransferRecord, error) {
	query := `select sender_login, destination_login, submitted_at, artifact_id, note from transfers
		where destination_login=? order by submitted_at desc, id desc`
	rows, err := r.db.QueryContext(ctx, query, login)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to select transfers: %w", common.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	result := make([]models.TransferRecord, 0)
	for rows.Next() {
		var item models.TransferRecord
		var nanos int64
		if err := rows.Scan(&item.SenderLogin, &item.DestinationLogin, &nanos, &item.ArtifactID, &item.Note); err != nil {
			return nil, fmt.Errorf("%w: scan error: %w", common.ErrStoreUnavailable, err)
		}
		item.SubmittedAt = time.Unix(0, nanos).UTC()
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: rows error: %w", common.ErrStoreUnavailable, err)
	}
	return result, nil
}
