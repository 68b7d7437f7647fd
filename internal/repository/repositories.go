package repository

import (
	"github.com/deppfellow/v1-api/internal/server"
)

// Repositories groups the data access objects used by the services.
type Repositories struct {
	Products *ProductRepository
	Orders   OrderStore
}

// NewRepositories picks the Postgres order store when the server holds a
// database connection and the in-memory store otherwise.
func NewRepositories(s *server.Server) *Repositories {
	var orders OrderStore = NewMemoryOrderRepository()
	if s.DB != nil {
		orders = NewPostgresOrderRepository(s.DB.Pool)
	}

	return &Repositories{
		Products: NewProductRepository(),
		Orders:   orders,
	}
}
