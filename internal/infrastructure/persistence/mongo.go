package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/crm/backend/internal/domain/shared"
	"github.com/crm/backend/internal/infrastructure/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// MongoStore implements shared.Store on top of the official MongoDB driver.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
	logger *zap.Logger
}

// NewMongoStore connects to the configured MongoDB deployment and verifies
// connectivity with a ping.
func NewMongoStore(cfg *config.MongoConfig, logger *zap.Logger) (*MongoStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connecting to document store: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("pinging document store: %w", err)
	}

	return &MongoStore{
		client: client,
		db:     client.Database(cfg.Database),
		logger: logger,
	}, nil
}

// Close disconnects the underlying client.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Name returns the database name the store is bound to.
func (s *MongoStore) Name() string {
	return s.db.Name()
}

// Insert persists doc and returns the new identifier as a hex string.
// The document is stamped with a created_at timestamp; the caller's map is
// not mutated.
func (s *MongoStore) Insert(ctx context.Context, collection string, doc shared.Document) (string, error) {
	stamped := make(shared.Document, len(doc)+1)
	for k, v := range doc {
		stamped[k] = v
	}
	stamped["created_at"] = time.Now().UTC()

	res, err := s.db.Collection(collection).InsertOne(ctx, stamped)
	if err != nil {
		return "", fmt.Errorf("inserting into %s: %w", collection, err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("inserting into %s: unexpected identifier type %T", collection, res.InsertedID)
	}
	return oid.Hex(), nil
}

// Find returns documents matching filter with identifiers rendered as hex
// strings.
func (s *MongoStore) Find(ctx context.Context, collection string, filter shared.Document, opts shared.FindOptions) ([]shared.Document, error) {
	findOpts := options.Find()
	if opts.Limit > 0 {
		findOpts.SetLimit(opts.Limit)
	}
	if opts.Sort != nil {
		findOpts.SetSort(opts.Sort)
	}
	if opts.Projection != nil {
		findOpts.SetProjection(opts.Projection)
	}

	cursor, err := s.db.Collection(collection).Find(ctx, orEmpty(filter), findOpts)
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", collection, err)
	}
	defer cursor.Close(ctx)

	var docs []shared.Document
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decoding %s results: %w", collection, err)
	}

	for i := range docs {
		docs[i] = NormalizeDocument(docs[i])
	}
	return docs, nil
}

// Count returns the number of documents matching filter.
func (s *MongoStore) Count(ctx context.Context, collection string, filter shared.Document) (int64, error) {
	n, err := s.db.Collection(collection).CountDocuments(ctx, orEmpty(filter))
	if err != nil {
		return 0, fmt.Errorf("counting %s: %w", collection, err)
	}
	return n, nil
}

// Aggregate runs an aggregation pipeline and normalizes the results.
func (s *MongoStore) Aggregate(ctx context.Context, collection string, pipeline []shared.Document) ([]shared.Document, error) {
	stages := make([]any, len(pipeline))
	for i, stage := range pipeline {
		stages[i] = stage
	}

	cursor, err := s.db.Collection(collection).Aggregate(ctx, stages)
	if err != nil {
		return nil, fmt.Errorf("aggregating %s: %w", collection, err)
	}
	defer cursor.Close(ctx)

	var docs []shared.Document
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decoding %s aggregation: %w", collection, err)
	}

	for i := range docs {
		docs[i] = NormalizeDocument(docs[i])
	}
	return docs, nil
}

// UpdateByID overlays fields onto the document with the given identifier.
func (s *MongoStore) UpdateByID(ctx context.Context, collection, id string, fields shared.Document) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return shared.ErrInvalidID
	}

	res, err := s.db.Collection(collection).UpdateByID(ctx, oid, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("updating %s/%s: %w", collection, id, err)
	}
	if res.MatchedCount == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Collections lists the collection names present in the database.
func (s *MongoStore) Collections(ctx context.Context) ([]string, error) {
	names, err := s.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("listing collections: %w", err)
	}
	return names, nil
}

// Ping verifies connectivity to the deployment.
func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// orEmpty substitutes an empty filter for nil so the driver matches all
// documents.
func orEmpty(filter shared.Document) shared.Document {
	if filter == nil {
		return shared.Document{}
	}
	return filter
}
