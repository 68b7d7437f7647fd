package service

import (
	"context"

	"github.com/deppfellow/v1-api/internal/lib/counter"
	"github.com/deppfellow/v1-api/internal/logger"
	"github.com/deppfellow/v1-api/internal/model"
	"github.com/deppfellow/v1-api/internal/repository"
	"github.com/rs/zerolog"
)

type ProductService struct {
	products *repository.ProductRepository
	counters counter.Store
	logger   *zerolog.Logger
}

func NewProductService(products *repository.ProductRepository, counters counter.Store, logger *zerolog.Logger) *ProductService {
	return &ProductService{
		products: products,
		counters: counters,
		logger:   logger,
	}
}

// Search returns the catalog entries whose name contains the query, in
// catalog order. The query is echoed verbatim.
func (s *ProductService) Search(ctx context.Context, req *model.SearchProductsRequest) (*model.SearchProductsResponse, error) {
	if err := s.counters.Record(ctx, counter.APICalls); err != nil {
		return nil, err
	}

	results := s.products.Search(ctx, req.Query)

	logger.FromContext(ctx, s.logger).Debug().
		Str("query", req.Query).
		Int("results", len(results)).
		Msg("product search")

	return &model.SearchProductsResponse{
		Query:   req.Query,
		Results: results,
	}, nil
}
