package service

import (
	"context"
	"math"

	"github.com/deppfellow/v1-api/internal/errs"
	"github.com/deppfellow/v1-api/internal/lib/counter"
	"github.com/deppfellow/v1-api/internal/model"
	"github.com/rs/zerolog"
)

// ShippingRatePerUnit is the flat cost per unit of weight.
const ShippingRatePerUnit = 3.0

type ShippingService struct {
	counters counter.Store
	logger   *zerolog.Logger
}

func NewShippingService(counters counter.Store, logger *zerolog.Logger) *ShippingService {
	return &ShippingService{
		counters: counters,
		logger:   logger,
	}
}

// Calculate prices a parcel. A rejected weight still counts as an api call.
func (s *ShippingService) Calculate(ctx context.Context, req *model.CalculateShippingRequest) (*model.CalculateShippingResponse, error) {
	if err := s.counters.Record(ctx, counter.APICalls); err != nil {
		return nil, err
	}

	weight := *req.Weight
	if weight <= 0 {
		return nil, errs.NewBadRequestError("Weight must be positive", true, nil,
			[]errs.FieldError{{Field: "weight", Error: "must be positive"}}, nil)
	}

	cost := weight * ShippingRatePerUnit
	if math.IsInf(cost, 0) {
		return nil, errs.NewBadRequestError("Weight is too large", true, nil,
			[]errs.FieldError{{Field: "weight", Error: "is too large"}}, nil)
	}

	return &model.CalculateShippingResponse{
		Weight: weight,
		Cost:   cost,
	}, nil
}
