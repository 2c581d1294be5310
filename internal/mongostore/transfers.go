package mongostore

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/sharenodes/internal/common"
	"github.com/dmitrijs2005/sharenodes/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TransfersRepository implements transfers.Repository over the transfers
// collection. Documents get a generated ObjectID, which breaks ties between
// records sharing a timestamp in insertion order.
type TransfersRepository struct {
	collection *mongo.Collection
}

func NewTransfersRepository(db *mongo.Database) *TransfersRepository {
	return &TransfersRepository{collection: db.Collection(common.TransfersCollection)}
}

func (r *TransfersRepository) Create(ctx context.Context, rec *models.TransferRecord) error {
	if _, err := r.collection.InsertOne(ctx, transferDocument(rec)); err != nil {
		return fmt.Errorf("%w: db error: %w", common.ErrStoreUnavailable, err)
	}
	return nil
}

func (r *TransfersRepository) ListByDestination(ctx context.Context, login string) ([]models.TransferRecord, error) {
	cur, err := r.collection.Find(ctx, byDestination(login), inboxOptions())
	if err != nil {
		return nil, fmt.Errorf("%w: failed to select transfers: %w", common.ErrStoreUnavailable, err)
	}

	result := make([]models.TransferRecord, 0)
	if err := cur.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("%w: decode error: %w", common.ErrStoreUnavailable, err)
	}
	for i := range result {
		result[i].SubmittedAt = result[i].SubmittedAt.UTC()
	}
	return result, nil
}

func transferDocument(rec *models.TransferRecord) bson.D {
	return bson.D{
		{Key: "sender_login", Value: rec.SenderLogin},
		{Key: "destination_login", Value: rec.DestinationLogin},
		{Key: "submitted_at", Value: rec.SubmittedAt.UTC()},
		{Key: "artifact_id", Value: rec.ArtifactID},
		{Key: "note", Value: rec.Note},
	}
}

func byDestination(login string) bson.D {
	return bson.D{{Key: "destination_login", Value: login}}
}

func inboxOptions() *options.FindOptions {
	return options.Find().
		SetSort(bson.D{{Key: "submitted_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetProjection(bson.D{{Key: "_id", Value: 0}})
}
