package router

import (
	"net/http"

	"github.com/deppfellow/v1-api/internal/handler"
	"github.com/deppfellow/v1-api/internal/model"
	"github.com/labstack/echo/v4"
)

func registerAPIRoutes(api *echo.Group, h *handler.Handlers) {
	api.POST("/products/search", handler.Handle(
		h.Product.Handler,
		h.Product.SearchProducts,
		http.StatusOK,
		&model.SearchProductsRequest{},
	))

	api.POST("/orders", handler.Handle(
		h.Order.Handler,
		h.Order.CreateOrder,
		http.StatusOK,
		&model.CreateOrderRequest{},
	))

	api.POST("/shipping/calculate", handler.Handle(
		h.Shipping.Handler,
		h.Shipping.CalculateShipping,
		http.StatusOK,
		&model.CalculateShippingRequest{},
	))

	api.POST("/users", handler.Handle(
		h.User.Handler,
		h.User.GetUser,
		http.StatusOK,
		&model.GetUserRequest{},
	))

	api.GET("/metrics", handler.Handle(
		h.Metrics.Handler,
		h.Metrics.GetMetrics,
		http.StatusOK,
		&model.GetMetricsRequest{},
	))

	api.POST("/subscribe", handler.Handle(
		h.Subscription.Handler,
		h.Subscription.Subscribe,
		http.StatusOK,
		&model.SubscribeRequest{},
	))
}
