package mongostore

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/sharenodes/internal/common"
	"github.com/dmitrijs2005/sharenodes/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UsersRepository implements users.Repository over the users collection.
type UsersRepository struct {
	collection *mongo.Collection
}

func NewUsersRepository(db *mongo.Database) *UsersRepository {
	return &UsersRepository{collection: db.Collection(common.UsersCollection)}
}

func (r *UsersRepository) Create(ctx context.Context, user *models.UserProfile) error {
	if _, err := r.collection.InsertOne(ctx, user); err != nil {
		return fmt.Errorf("%w: db error: %w", common.ErrStoreUnavailable, err)
	}
	return nil
}

func (r *UsersRepository) GetByLogin(ctx context.Context, login string) (*models.UserProfile, error) {
	var user models.UserProfile
	err := r.collection.FindOne(ctx, byLogin(login)).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("%w: db error: %w", common.ErrStoreUnavailable, err)
	}
	return &user, nil
}

func (r *UsersRepository) List(ctx context.Context) ([]models.UserProfile, error) {
	cur, err := r.collection.Find(ctx, bson.D{}, listUsersOptions())
	if err != nil {
		return nil, fmt.Errorf("%w: db error: %w", common.ErrStoreUnavailable, err)
	}

	result := make([]models.UserProfile, 0)
	if err := cur.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("%w: decode error: %w", common.ErrStoreUnavailable, err)
	}
	return result, nil
}

func byLogin(login string) bson.D {
	return bson.D{{Key: "login", Value: login}}
}

func listUsersOptions() *options.FindOptions {
	return options.Find().
		SetSort(bson.D{{Key: "name", Value: 1}, {Key: "login", Value: 1}}).
		SetProjection(bson.D{{Key: "_id", Value: 0}})
}
