package service

import (
	"context"

	"github.com/deppfellow/v1-api/internal/lib/counter"
	"github.com/deppfellow/v1-api/internal/model"
	"github.com/deppfellow/v1-api/internal/repository"
)

// MetricsService reports the usage counters. Reading them is not itself
// counted.
type MetricsService struct {
	products *repository.ProductRepository
	counters counter.Store
}

func NewMetricsService(products *repository.ProductRepository, counters counter.Store) *MetricsService {
	return &MetricsService{
		products: products,
		counters: counters,
	}
}

func (s *MetricsService) Get(ctx context.Context, _ *model.GetMetricsRequest) (*model.Metrics, error) {
	snap, err := s.counters.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	return &model.Metrics{
		Products: uint64(s.products.Count()),
		Orders:   snap.Orders,
		Users:    snap.Users,
		APICalls: snap.APICalls,
	}, nil
}
