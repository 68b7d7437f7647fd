package handler

import (
	"github.com/deppfellow/v1-api/internal/model"
	"github.com/deppfellow/v1-api/internal/server"
	"github.com/deppfellow/v1-api/internal/service"
	"github.com/labstack/echo/v4"
)

type ShippingHandler struct {
	Handler
	shippingService *service.ShippingService
}

func NewShippingHandler(s *server.Server, shippingService *service.ShippingService) *ShippingHandler {
	return &ShippingHandler{
		Handler:         NewHandler(s),
		shippingService: shippingService,
	}
}

func (h *ShippingHandler) CalculateShipping(c echo.Context, req *model.CalculateShippingRequest) (*model.CalculateShippingResponse, error) {
	return h.shippingService.Calculate(c.Request().Context(), req)
}
