package repository

import (
	"context"
	"strings"

	"github.com/deppfellow/v1-api/internal/model"
)

func price(v float64) *float64 { return &v }
func text(v string) *string    { return &v }

// catalog is the fixed product list served by search.
var catalog = []model.Product{
	{ID: "p1", Name: "Widget Pro", Price: price(49.99), Description: text("Professional-grade widget with extended warranty")},
	{ID: "p2", Name: "Widget Basic", Price: price(19.99), Description: text("Entry-level widget for everyday use")},
	{ID: "p3", Name: "Gadget X100", Price: price(129.00), Description: text("Flagship gadget with wireless control")},
	{ID: "p4", Name: "Gadget Mini", Price: price(59.00), Description: text("Compact gadget for tight spaces")},
	{ID: "p5", Name: "Smart Sensor", Price: price(34.50), Description: text("Temperature and humidity sensor")},
	{ID: "p6", Name: "Power Module", Price: price(79.00), Description: text("Regulated 12V power module")},
	{ID: "p7", Name: "Control Board", Price: price(99.00), Description: text("Programmable control board")},
	{ID: "p8", Name: "Display Panel", Price: price(149.00), Description: text("7 inch touch display panel")},
	{ID: "p9", Name: "Cable Kit", Price: price(12.99), Description: text("Assorted connection cables")},
	{ID: "p10", Name: "Battery Pack", Price: price(24.99), Description: text("Rechargeable battery pack")},
}

// ProductRepository serves the read-only product catalog.
type ProductRepository struct {
	products []model.Product
}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{products: catalog}
}

// NewProductRepositoryWith serves an arbitrary product list.
func NewProductRepositoryWith(products []model.Product) *ProductRepository {
	return &ProductRepository{products: products}
}

// Search returns products whose name contains query, ignoring case, in
// catalog order. The result is never nil.
func (r *ProductRepository) Search(_ context.Context, query string) []model.Product {
	needle := strings.ToLower(query)

	results := make([]model.Product, 0)
	for _, p := range r.products {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			results = append(results, p)
		}
	}

	return results
}

// Count returns the catalog size.
func (r *ProductRepository) Count() int {
	return len(r.products)
}
