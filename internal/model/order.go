package model

import (
	"time"

	"github.com/deppfellow/v1-api/internal/validation"
)

type OrderStatus string

const (
	OrderStatusCreated OrderStatus = "created"
)

// Order is the stored form of an order.
type Order struct {
	ID        string
	Product   string
	Quantity  int
	Status    OrderStatus
	CreatedAt time.Time
}

// CreateOrderRequest is the body of POST /api/orders. Quantity is a pointer
// so that a missing quantity and a zero quantity get distinct messages.
type CreateOrderRequest struct {
	Product  string `json:"product" validate:"required"`
	Quantity *int   `json:"quantity" validate:"required,gt=0"`
}

func (r *CreateOrderRequest) Validate() error {
	return validation.Struct(r)
}

// CreateOrderResponse is returned once the order has been stored.
type CreateOrderResponse struct {
	OrderID string      `json:"order_id"`
	Product string      `json:"product"`
	Status  OrderStatus `json:"status"`
}

// NewCreateOrderResponse projects a stored order onto its response.
func NewCreateOrderResponse(o *Order) *CreateOrderResponse {
	return &CreateOrderResponse{
		OrderID: o.ID,
		Product: o.Product,
		Status:  o.Status,
	}
}
