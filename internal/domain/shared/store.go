package shared

import "context"

// Document is a single schemaless record as stored in a collection.
// Identifiers appear under "_id" and are rendered as hex strings on read.
type Document map[string]any

// FindOptions controls a Find call. A zero Limit means no explicit limit;
// callers that serve list endpoints apply their own default.
type FindOptions struct {
	Limit      int64
	Sort       Document
	Projection Document
}

// Store is the document-store gateway. Handlers and services depend on this
// interface only; the concrete MongoDB implementation lives in
// infrastructure/persistence.
type Store interface {
	// Insert persists doc into collection, stamps created_at, and returns
	// the new identifier as a hex string.
	Insert(ctx context.Context, collection string, doc Document) (string, error)

	// Find returns documents matching filter, subject to opts.
	Find(ctx context.Context, collection string, filter Document, opts FindOptions) ([]Document, error)

	// Count returns the number of documents matching filter.
	Count(ctx context.Context, collection string, filter Document) (int64, error)

	// Aggregate runs an aggregation pipeline against collection.
	Aggregate(ctx context.Context, collection string, pipeline []Document) ([]Document, error)

	// UpdateByID overlays fields onto the document with the given identifier.
	// Returns ErrInvalidID when id is not a valid identifier and ErrNotFound
	// when no document matches.
	UpdateByID(ctx context.Context, collection, id string, fields Document) error

	// Collections lists the collection names present in the store.
	Collections(ctx context.Context) ([]string, error)

	// Ping verifies connectivity to the store.
	Ping(ctx context.Context) error
}
