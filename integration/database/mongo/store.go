package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/dmitrymomot/storefront/core/kv"
)

// DefaultCollection holds the mirrored records.
const DefaultCollection = "kv_records"

type record struct {
	Key       string    `bson:"_id"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// Store is a kv.Store persisted in a MongoDB collection.
type Store struct {
	coll *mongo.Collection
}

// StoreOption configures a Store.
type StoreOption func(*storeOptions)

type storeOptions struct {
	collection string
}

// WithCollection overrides DefaultCollection.
func WithCollection(name string) StoreOption {
	return func(o *storeOptions) {
		if name != "" {
			o.collection = name
		}
	}
}

// NewStore returns a Store writing to db.
func NewStore(db *mongo.Database, opts ...StoreOption) *Store {
	o := storeOptions{collection: DefaultCollection}
	for _, opt := range opts {
		opt(&o)
	}
	return &Store{coll: db.Collection(o.collection)}
}

// Get implements kv.Store.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", kv.ErrEmptyKey
	}
	var rec record
	err := s.coll.FindOne(ctx, bson.D{{Key: "_id", Value: key}}).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", kv.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("mongo: get %q: %w", key, err)
	}
	return rec.Value, nil
}

// Set implements kv.Store.
func (s *Store) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return kv.ErrEmptyKey
	}
	rec := record{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	_, err := s.coll.ReplaceOne(ctx, bson.D{{Key: "_id", Value: key}}, rec, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("mongo: set %q: %w", key, err)
	}
	return nil
}

// Delete implements kv.Store.
func (s *Store) Delete(ctx context.Context, key string) error {
	if key == "" {
		return kv.ErrEmptyKey
	}
	if _, err := s.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: key}}); err != nil {
		return fmt.Errorf("mongo: delete %q: %w", key, err)
	}
	return nil
}
