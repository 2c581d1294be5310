// Package transfers implements transfer record storage over SQL backends.
package transfers

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/sharenodes/internal/common"
	"github.com/dmitrijs2005/sharenodes/internal/dbx"
	"github.com/dmitrijs2005/sharenodes/internal/models"
)

// PostgresRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, rec *models.TransferRecord) error {
	query := `
		INSERT INTO transfers (sender_login, destination_login, submitted_at, artifact_id, note)
		VALUES ($1, $2, $3, $4, $5)
	`
	res, err := r.db.ExecContext(ctx, query,
		rec.SenderLogin, rec.DestinationLogin, rec.SubmittedAt.UTC(), rec.ArtifactID, rec.Note)
	if err != nil {
		return fmt.Errorf("%w: db error: %w", common.ErrStoreUnavailable, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: rows affected error: %w", common.ErrStoreUnavailable, err)
	}
	if n != 1 {
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
	return nil
}

func (r *PostgresRepository) ListByDestination(ctx context.Context, login string) ([]models.TransferRecord, error) {
	query := ` SELECT sender_login, destination_login, submitted_at, artifact_id, note FROM transfers
		WHERE destination_login=$1
		ORDER BY submitted_at DESC, id DESC
		`
	rows, err := r.db.QueryContext(ctx, query, login)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to select transfers: %w", common.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	result := make([]models.TransferRecord, 0)
	for rows.Next() {
		var item models.TransferRecord
		if err := rows.Scan(&item.SenderLogin, &item.DestinationLogin, &item.SubmittedAt, &item.ArtifactID, &item.Note); err != nil {
			return nil, fmt.Errorf("%w: scan error: %w", common.ErrStoreUnavailable, err)
		}
		item.SubmittedAt = item.SubmittedAt.UTC()
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: rows error: %w", common.ErrStoreUnavailable, err)
	}
	return result, nil
}
