package persistence

import (
	"context"

	"github.com/crm/backend/internal/domain/shared"
)

// UnavailableStore is the gateway used when no document store is configured
// or the configured one cannot be reached at startup. The server still boots;
// every data-touching operation reports the store as unavailable.
type UnavailableStore struct{}

// NewUnavailableStore returns the no-store gateway.
func NewUnavailableStore() *UnavailableStore {
	return &UnavailableStore{}
}

func (*UnavailableStore) Insert(context.Context, string, shared.Document) (string, error) {
	return "", shared.ErrStoreUnavailable
}

func (*UnavailableStore) Find(context.Context, string, shared.Document, shared.FindOptions) ([]shared.Document, error) {
	return nil, shared.ErrStoreUnavailable
}

func (*UnavailableStore) Count(context.Context, string, shared.Document) (int64, error) {
	return 0, shared.ErrStoreUnavailable
}

func (*UnavailableStore) Aggregate(context.Context, string, []shared.Document) ([]shared.Document, error) {
	return nil, shared.ErrStoreUnavailable
}

func (*UnavailableStore) UpdateByID(context.Context, string, string, shared.Document) error {
	return shared.ErrStoreUnavailable
}

func (*UnavailableStore) Collections(context.Context) ([]string, error) {
	return nil, shared.ErrStoreUnavailable
}

func (*UnavailableStore) Ping(context.Context) error {
	return shared.ErrStoreUnavailable
}
