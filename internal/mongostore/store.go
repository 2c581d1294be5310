// Package mongostore implements the user and transfer repositories over a
// MongoDB database, the document-store backend of the record store.
package mongostore

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/sharenodes/internal/common"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store owns a connected client and vends repositories over one database.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect dials uri, pings the server and ensures the inbox index exists.
func Connect(ctx context.Context, uri, database string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("%w: mongo connect: %w", common.ErrStoreUnavailable, err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("%w: mongo ping: %w", common.ErrStoreUnavailable, err)
	}

	s := &Store{client: client, db: client.Database(database)}
	if err := s.EnsureIndexes(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return s, nil
}

// EnsureIndexes creates the unique login index and the inbox index. It is
// idempotent.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	if _, err := s.db.Collection(common.UsersCollection).Indexes().CreateOne(ctx, loginIndex()); err != nil {
		return fmt.Errorf("%w: create users index: %w", common.ErrStoreUnavailable, err)
	}
	if _, err := s.db.Collection(common.TransfersCollection).Indexes().CreateOne(ctx, inboxIndex()); err != nil {
		return fmt.Errorf("%w: create transfers index: %w", common.ErrStoreUnavailable, err)
	}
	return nil
}

func (s *Store) Users() *UsersRepository {
	return NewUsersRepository(s.db)
}

func (s *Store) Transfers() *TransfersRepository {
	return NewTransfersRepository(s.db)
}

// DropUsers removes every profile. Used by offline provisioning only.
func (s *Store) DropUsers(ctx context.Context) error {
	if _, err := s.db.Collection(common.UsersCollection).DeleteMany(ctx, bson.D{}); err != nil {
		return fmt.Errorf("%w: db error: %w", common.ErrStoreUnavailable, err)
	}
	return nil
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func loginIndex() mongo.IndexModel {
	return mongo.IndexModel{
		Keys:    bson.D{{Key: "login", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("login_unique"),
	}
}

func inboxIndex() mongo.IndexModel {
	return mongo.IndexModel{
		Keys:    bson.D{{Key: "destination_login", Value: 1}, {Key: "submitted_at", Value: -1}},
		Options: options.Index().SetName("destination_submitted_at"),
	}
}
