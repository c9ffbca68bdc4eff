package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/snapblocks/snapblocks/pkg/blockdef"
	"github.com/snapblocks/snapblocks/pkg/errors"
)

// MongoStore persists block definitions in a MongoDB collection.
// Definitions are stored with the block ID as the document _id.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoStore connects to MongoDB and verifies the connection with a ping.
func NewMongoStore(ctx context.Context, uri, database, collection string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "failed to connect to MongoDB")
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.Wrap(errors.ErrCodeStore, err, "MongoDB ping failed")
	}
	return &MongoStore{
		client: client,
		coll:   client.Database(database).Collection(collection),
	}, nil
}

// Put inserts or replaces a definition under its ID.
func (s *MongoStore) Put(ctx context.Context, def *blockdef.Definition) error {
	if err := def.Validate(); err != nil {
		return err
	}
	_, err := s.coll.ReplaceOne(ctx,
		bson.M{"_id": def.ID},
		def,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "failed to store block %q", def.ID)
	}
	return nil
}

// Get returns the definition with the given ID.
func (s *MongoStore) Get(ctx context.Context, id string) (*blockdef.Definition, error) {
	var def blockdef.Definition
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&def)
	if err == mongo.ErrNoDocuments {
		return nil, errors.New(errors.ErrCodeBlockNotFound, "block %q not found", id)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "failed to load block %q", id)
	}
	return &def, nil
}

// List returns all stored definitions ordered by ID.
func (s *MongoStore) List(ctx context.Context) ([]*blockdef.Definition, error) {
	cursor, err := s.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"_id": 1}))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "failed to list blocks")
	}
	defer cursor.Close(ctx)

	var defs []*blockdef.Definition
	if err := cursor.All(ctx, &defs); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "failed to decode blocks")
	}
	return defs, nil
}

// Delete removes the definition with the given ID.
func (s *MongoStore) Delete(ctx context.Context, id string) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "failed to delete block %q", id)
	}
	if res.DeletedCount == 0 {
		return errors.New(errors.ErrCodeBlockNotFound, "block %q not found", id)
	}
	return nil
}

// Close disconnects from MongoDB.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Ensure MongoStore implements Store.
var _ Store = (*MongoStore)(nil)
