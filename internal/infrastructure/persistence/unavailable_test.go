package persistence

import (
	"context"
	"testing"

	"github.com/crm/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
)

func TestUnavailableStore_AllOperationsFail(t *testing.T) {
	store := NewUnavailableStore()
	ctx := context.Background()

	_, err := store.Insert(ctx, "lead", shared.Document{"name": "Ada"})
	assert.ErrorIs(t, err, shared.ErrStoreUnavailable)

	_, err = store.Find(ctx, "lead", nil, shared.FindOptions{})
	assert.ErrorIs(t, err, shared.ErrStoreUnavailable)

	_, err = store.Count(ctx, "lead", nil)
	assert.ErrorIs(t, err, shared.ErrStoreUnavailable)

	_, err = store.Aggregate(ctx, "deal", nil)
	assert.ErrorIs(t, err, shared.ErrStoreUnavailable)

	err = store.UpdateByID(ctx, "lead", "65f000000000000000000001", shared.Document{"status": "lost"})
	assert.ErrorIs(t, err, shared.ErrStoreUnavailable)

	_, err = store.Collections(ctx)
	assert.ErrorIs(t, err, shared.ErrStoreUnavailable)

	assert.ErrorIs(t, store.Ping(ctx), shared.ErrStoreUnavailable)
}
