package dashboard

import (
	"context"
	"testing"

	"github.com/crm/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) Insert(ctx context.Context, collection string, doc shared.Document) (string, error) {
	args := m.Called(ctx, collection, doc)
	return args.String(0), args.Error(1)
}

func (m *mockStore) Find(ctx context.Context, collection string, filter shared.Document, opts shared.FindOptions) ([]shared.Document, error) {
	args := m.Called(ctx, collection, filter, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]shared.Document), args.Error(1)
}

func (m *mockStore) Count(ctx context.Context, collection string, filter shared.Document) (int64, error) {
	args := m.Called(ctx, collection, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockStore) Aggregate(ctx context.Context, collection string, pipeline []shared.Document) ([]shared.Document, error) {
	args := m.Called(ctx, collection, pipeline)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]shared.Document), args.Error(1)
}

func (m *mockStore) UpdateByID(ctx context.Context, collection, id string, fields shared.Document) error {
	args := m.Called(ctx, collection, id, fields)
	return args.Error(0)
}

func (m *mockStore) Collections(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockStore) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func TestConversionRate(t *testing.T) {
	assert.Equal(t, 0.0, conversionRate(0, 0))
	assert.Equal(t, 50.0, conversionRate(1, 2))
	assert.Equal(t, 33.33, conversionRate(1, 3))
	assert.Equal(t, 66.67, conversionRate(2, 3))
	assert.Equal(t, 100.0, conversionRate(5, 5))
}

func TestSnapshot_ZeroLeadsYieldsZeroConversion(t *testing.T) {
	store := new(mockStore)
	store.On("Count", mock.Anything, "lead", shared.Document(nil)).Return(int64(0), nil)
	store.On("Count", mock.Anything, "deal", shared.Document(nil)).Return(int64(0), nil)
	store.On("Count", mock.Anything, "lead", shared.Document{"status": "qualified"}).Return(int64(0), nil)
	store.On("Aggregate", mock.Anything, "deal", mock.Anything).Return([]shared.Document{}, nil)
	store.On("Find", mock.Anything, "activity", shared.Document(nil), mock.Anything).
		Return([]shared.Document(nil), nil)

	service := NewService(store, zap.NewNop())
	snapshot, err := service.Snapshot(context.Background(), Filter{})

	assert.NoError(t, err)
	assert.Equal(t, 0.0, snapshot.Cards.ConversionRate)
	assert.Equal(t, 0.0, snapshot.Cards.Revenue)
	assert.NotNil(t, snapshot.RecentActivities)
	assert.Empty(t, snapshot.Pipeline)
}

func TestSnapshot_RevenueFromAggregation(t *testing.T) {
	store := new(mockStore)
	store.On("Count", mock.Anything, "lead", shared.Document(nil)).Return(int64(4), nil)
	store.On("Count", mock.Anything, "deal", shared.Document(nil)).Return(int64(3), nil)
	store.On("Count", mock.Anything, "lead", shared.Document{"status": "qualified"}).Return(int64(1), nil)
	store.On("Aggregate", mock.Anything, "deal", []shared.Document{
		{"$match": shared.Document{"stage": shared.Document{"$in": []string{"won", "closed-won"}}}},
		{"$group": shared.Document{"_id": nil, "total": shared.Document{"$sum": "$value"}}},
	}).Return([]shared.Document{{"total": 1234.5}}, nil)
	store.On("Aggregate", mock.Anything, "deal", []shared.Document{
		{"$group": shared.Document{"_id": "$stage", "count": shared.Document{"$sum": 1}}},
		{"$project": shared.Document{"stage": "$_id", "count": 1, "_id": 0}},
	}).Return([]shared.Document{{"stage": "won", "count": int32(2)}}, nil)
	store.On("Find", mock.Anything, "activity", shared.Document(nil), mock.Anything).
		Return([]shared.Document{{"subject": "Sent proposal", "type": "email"}}, nil)

	service := NewService(store, zap.NewNop())
	snapshot, err := service.Snapshot(context.Background(), Filter{})

	assert.NoError(t, err)
	assert.Equal(t, 1234.5, snapshot.Cards.Revenue)
	assert.Equal(t, 25.0, snapshot.Cards.ConversionRate)
	assert.Equal(t, []StageCount{{Stage: "won", Count: 2}}, snapshot.Pipeline)
	assert.Len(t, snapshot.RecentActivities, 1)
}

func TestSnapshot_PropagatesStoreError(t *testing.T) {
	store := new(mockStore)
	store.On("Count", mock.Anything, "lead", shared.Document(nil)).
		Return(int64(0), shared.ErrStoreUnavailable)

	service := NewService(store, zap.NewNop())
	_, err := service.Snapshot(context.Background(), Filter{})

	assert.ErrorIs(t, err, shared.ErrStoreUnavailable)
}
