package service

import (
	"context"
	"fmt"
	"time"

	"github.com/deppfellow/v1-api/internal/lib/counter"
	"github.com/deppfellow/v1-api/internal/logger"
	"github.com/deppfellow/v1-api/internal/model"
	"github.com/deppfellow/v1-api/internal/repository"
	"github.com/deppfellow/v1-api/internal/sqlerr"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type OrderService struct {
	orders   repository.OrderStore
	counters counter.Store
	logger   *zerolog.Logger
	now      func() time.Time
}

func NewOrderService(orders repository.OrderStore, counters counter.Store, logger *zerolog.Logger) *OrderService {
	return &OrderService{
		orders:   orders,
		counters: counters,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *OrderService) Create(ctx context.Context, req *model.CreateOrderRequest) (*model.CreateOrderResponse, error) {
	if err := s.counters.Record(ctx, counter.APICalls, counter.Orders); err != nil {
		return nil, err
	}

	order := &model.Order{
		ID:        uuid.NewString(),
		Product:   req.Product,
		Quantity:  *req.Quantity,
		Status:    model.OrderStatusCreated,
		CreatedAt: s.now().UTC(),
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, sqlerr.HandleError(fmt.Errorf("table:orders: %w", err))
	}

	logger.FromContext(ctx, s.logger).Info().
		Str("order_id", order.ID).
		Str("product", order.Product).
		Int("quantity", order.Quantity).
		Msg("order created")

	return model.NewCreateOrderResponse(order), nil
}
