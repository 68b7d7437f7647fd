package model

import "github.com/deppfellow/v1-api/internal/validation"

// CalculateShippingRequest is the body of POST /api/shipping/calculate.
//
// Weight is a pointer so a missing field (422) can be told apart from an
// explicit zero, which is a semantic error (400) decided by the service.
type CalculateShippingRequest struct {
	Weight *float64 `json:"weight" validate:"required"`
}

func (r *CalculateShippingRequest) Validate() error {
	return validation.Struct(r)
}

type CalculateShippingResponse struct {
	Weight float64 `json:"weight"`
	Cost   float64 `json:"cost"`
}
