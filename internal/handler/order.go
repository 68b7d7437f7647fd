package handler

import (
	"github.com/deppfellow/v1-api/internal/model"
	"github.com/deppfellow/v1-api/internal/server"
	"github.com/deppfellow/v1-api/internal/service"
	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	Handler
	orderService *service.OrderService
}

func NewOrderHandler(s *server.Server, orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{
		Handler:      NewHandler(s),
		orderService: orderService,
	}
}

func (h *OrderHandler) CreateOrder(c echo.Context, req *model.CreateOrderRequest) (*model.CreateOrderResponse, error) {
	return h.orderService.Create(c.Request().Context(), req)
}
