package model

import "github.com/deppfellow/v1-api/internal/validation"

// Product is one catalog entry.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       *float64 `json:"price,omitempty"`
	Description *string  `json:"description,omitempty"`
}

// SearchProductsRequest is the body of POST /api/products/search. An empty
// query is rejected rather than treated as "match everything".
type SearchProductsRequest struct {
	Query string `json:"query" validate:"required"`
}

func (r *SearchProductsRequest) Validate() error {
	return validation.Struct(r)
}

// SearchProductsResponse echoes the query and lists matches in catalog order.
type SearchProductsResponse struct {
	Query   string    `json:"query"`
	Results []Product `json:"results"`
}
