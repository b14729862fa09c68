// Package dashboard composes the read-only aggregate queries behind the
// dashboard endpoint. The five queries are independent reads with no
// cross-query consistency guarantee; the snapshot is point-in-time only.
package dashboard

import (
	"context"

	"github.com/crm/backend/internal/domain/crm"
	"github.com/crm/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// wonStages are the deal stages that count toward revenue.
var wonStages = []string{"won", "closed-won"}

// recentActivityLimit caps the activity feed on the dashboard.
const recentActivityLimit = 10

// Service computes dashboard snapshots from the document store.
type Service struct {
	store  shared.Store
	logger *zap.Logger
}

// NewService creates a dashboard service.
func NewService(store shared.Store, logger *zap.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// Filter narrows a snapshot to a single owner. The zero value means no
// narrowing.
type Filter struct {
	OwnerID string
}

// Cards holds the four scalar metrics of the snapshot.
type Cards struct {
	TotalLeads     int64   `json:"totalLeads"`
	TotalDeals     int64   `json:"totalDeals"`
	Revenue        float64 `json:"revenue"`
	ConversionRate float64 `json:"conversionRate"`
}

// StageCount is one entry of the pipeline breakdown.
type StageCount struct {
	Stage string `json:"stage"`
	Count int64  `json:"count"`
}

// Snapshot is the composite dashboard payload.
type Snapshot struct {
	Cards            Cards             `json:"cards"`
	Pipeline         []StageCount      `json:"pipeline"`
	RecentActivities []shared.Document `json:"recentActivities"`
}

// Snapshot runs the aggregate queries and assembles the dashboard payload.
func (s *Service) Snapshot(ctx context.Context, filter Filter) (*Snapshot, error) {
	totalLeads, err := s.store.Count(ctx, crm.CollectionLead, scoped(nil, filter))
	if err != nil {
		return nil, err
	}

	totalDeals, err := s.store.Count(ctx, crm.CollectionDeal, scoped(nil, filter))
	if err != nil {
		return nil, err
	}

	revenue, err := s.revenue(ctx, filter)
	if err != nil {
		return nil, err
	}

	qualified, err := s.store.Count(ctx, crm.CollectionLead, scoped(shared.Document{"status": "qualified"}, filter))
	if err != nil {
		return nil, err
	}

	pipeline, err := s.pipelineBreakdown(ctx, filter)
	if err != nil {
		return nil, err
	}

	recent, err := s.recentActivities(ctx)
	if err != nil {
		return nil, err
	}

	return &Snapshot{
		Cards: Cards{
			TotalLeads:     totalLeads,
			TotalDeals:     totalDeals,
			Revenue:        revenue,
			ConversionRate: conversionRate(qualified, totalLeads),
		},
		Pipeline:         pipeline,
		RecentActivities: recent,
	}, nil
}

// revenue sums the value of deals in a won stage.
func (s *Service) revenue(ctx context.Context, filter Filter) (float64, error) {
	match := scoped(shared.Document{"stage": shared.Document{"$in": wonStages}}, filter)
	results, err := s.store.Aggregate(ctx, crm.CollectionDeal, []shared.Document{
		{"$match": match},
		{"$group": shared.Document{"_id": nil, "total": shared.Document{"$sum": "$value"}}},
	})
	if err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, nil
	}
	return asFloat(results[0]["total"]), nil
}

// pipelineBreakdown groups deals by stage.
func (s *Service) pipelineBreakdown(ctx context.Context, filter Filter) ([]StageCount, error) {
	stages := []shared.Document{
		{"$group": shared.Document{"_id": "$stage", "count": shared.Document{"$sum": 1}}},
		{"$project": shared.Document{"stage": "$_id", "count": 1, "_id": 0}},
	}
	if owner := scoped(nil, filter); len(owner) > 0 {
		stages = append([]shared.Document{{"$match": owner}}, stages...)
	}

	results, err := s.store.Aggregate(ctx, crm.CollectionDeal, stages)
	if err != nil {
		return nil, err
	}

	breakdown := make([]StageCount, 0, len(results))
	for _, doc := range results {
		stage, _ := doc["stage"].(string)
		breakdown = append(breakdown, StageCount{
			Stage: stage,
			Count: asInt64(doc["count"]),
		})
	}
	return breakdown, nil
}

// recentActivities fetches the most recently created activities, projected
// to subject, type, and creation time.
func (s *Service) recentActivities(ctx context.Context) ([]shared.Document, error) {
	docs, err := s.store.Find(ctx, crm.CollectionActivity, nil, shared.FindOptions{
		Limit:      recentActivityLimit,
		Sort:       shared.Document{"created_at": -1},
		Projection: shared.Document{"subject": 1, "type": 1, "created_at": 1},
	})
	if err != nil {
		return nil, err
	}
	if docs == nil {
		docs = []shared.Document{}
	}
	return docs, nil
}

// conversionRate is qualified/total expressed as a percentage, rounded to
// two decimal places. Zero leads yields zero.
func conversionRate(qualified, total int64) float64 {
	if total == 0 {
		return 0
	}
	rate := decimal.NewFromInt(qualified).
		Div(decimal.NewFromInt(total)).
		Mul(decimal.NewFromInt(100)).
		Round(2)
	f, _ := rate.Float64()
	return f
}

// scoped overlays the owner filter onto base when the snapshot is narrowed.
func scoped(base shared.Document, filter Filter) shared.Document {
	if filter.OwnerID == "" {
		return base
	}
	out := shared.Document{"owner_id": filter.OwnerID}
	for k, v := range base {
		out[k] = v
	}
	return out
}

// asFloat coerces the numeric types the store hands back after aggregation.
func asFloat(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case float32:
		return float64(t)
	case int64:
		return float64(t)
	case int32:
		return float64(t)
	case int:
		return float64(t)
	default:
		return 0
	}
}

func asInt64(v any) int64 {
	switch t := v.(type) {
	case int64:
		return t
	case int32:
		return int64(t)
	case int:
		return int64(t)
	case float64:
		return int64(t)
	default:
		return 0
	}
}
