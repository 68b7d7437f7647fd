package handler

import (
	"github.com/deppfellow/v1-api/internal/model"
	"github.com/deppfellow/v1-api/internal/server"
	"github.com/deppfellow/v1-api/internal/service"
	"github.com/labstack/echo/v4"
)

type SubscriptionHandler struct {
	Handler
	subscriptionService *service.SubscriptionService
}

func NewSubscriptionHandler(s *server.Server, subscriptionService *service.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{
		Handler:             NewHandler(s),
		subscriptionService: subscriptionService,
	}
}

func (h *SubscriptionHandler) Subscribe(c echo.Context, req *model.SubscribeRequest) (*model.SubscribeResponse, error) {
	return h.subscriptionService.Subscribe(c.Request().Context(), req)
}
