package snapshotRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type snapshotDocument struct {
	Key       string    `bson:"key"`
	Data      string    `bson:"data"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// MongoSnapshotRepo keeps one document per key in a collection.
type MongoSnapshotRepo struct {
	coll *mongo.Collection
}

// NewMongoSnapshotRepo wraps coll and ensures the unique key index exists.
func NewMongoSnapshotRepo(ctx context.Context, coll *mongo.Collection) (*MongoSnapshotRepo, error) {
	repo := &MongoSnapshotRepo{coll: coll}
	if err := repo.ensureIndexes(ctx); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *MongoSnapshotRepo) ensureIndexes(ctx context.Context) error {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "key", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create snapshot indexes: %w", err)
	}
	return nil
}

func (r *MongoSnapshotRepo) Load(ctx context.Context, key string) ([]byte, error) {
	ctx, cancel := newContext(ctx, defaultTimeout)
	defer cancel()

	var doc snapshotDocument
	err := r.coll.FindOne(ctx, bson.M{"key": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch snapshot %s: %w", key, err)
	}
	return []byte(doc.Data), nil
}

func (r *MongoSnapshotRepo) Save(ctx context.Context, key string, data []byte) error {
	ctx, cancel := newContext(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": snapshotDocument{Key: key, Data: string(data), UpdatedAt: time.Now().UTC()}}
	_, err := r.coll.UpdateOne(ctx, bson.M{"key": key}, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to save snapshot %s: %w", key, err)
	}
	return nil
}

func (r *MongoSnapshotRepo) Delete(ctx context.Context, key string) error {
	ctx, cancel := newContext(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.DeleteOne(ctx, bson.M{"key": key}); err != nil {
		return fmt.Errorf("failed to delete snapshot %s: %w", key, err)
	}
	return nil
}

func (r *MongoSnapshotRepo) Ping(ctx context.Context) error {
	ctx, cancel := newContext(ctx, 2*time.Second)
	defer cancel()

	return r.coll.Database().Client().Ping(ctx, nil)
}

// Close is a no-op; the client is owned by the database package.
func (r *MongoSnapshotRepo) Close() error { return nil }
