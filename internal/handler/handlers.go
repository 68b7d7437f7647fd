package handler

import (
	"github.com/deppfellow/v1-api/internal/server"
	"github.com/deppfellow/v1-api/internal/service"
)

// Handlers groups all HTTP handlers so router setup receives one value.
type Handlers struct {
	System       *SystemHandler
	Health       *HealthHandler
	OpenAPI      *OpenAPIHandler
	Product      *ProductHandler
	Order        *OrderHandler
	Shipping     *ShippingHandler
	User         *UserHandler
	Metrics      *MetricsHandler
	Subscription *SubscriptionHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		System:       NewSystemHandler(s),
		Health:       NewHealthHandler(s),
		OpenAPI:      NewOpenAPIHandler(s),
		Product:      NewProductHandler(s, services.Products),
		Order:        NewOrderHandler(s, services.Orders),
		Shipping:     NewShippingHandler(s, services.Shipping),
		User:         NewUserHandler(s, services.Users),
		Metrics:      NewMetricsHandler(s, services.Metrics),
		Subscription: NewSubscriptionHandler(s, services.Subscriptions),
	}
}
