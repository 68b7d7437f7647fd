package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/deppfellow/v1-api/internal/model"
	"github.com/jackc/pgx/v5/pgconn"
)

// OrderStore persists created orders.
type OrderStore interface {
	Create(ctx context.Context, order *model.Order) error
}

// MemoryOrderRepository keeps orders in process memory.
type MemoryOrderRepository struct {
	mu     sync.RWMutex
	orders map[string]model.Order
}

func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{orders: make(map[string]model.Order)}
}

func (r *MemoryOrderRepository) Create(_ context.Context, order *model.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.orders[order.ID]; exists {
		return fmt.Errorf("order %s already exists", order.ID)
	}

	r.orders[order.ID] = *order

	return nil
}

// Get returns a stored order. Only the in-memory store can read orders
// back; the API never does.
func (r *MemoryOrderRepository) Get(id string) (model.Order, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.orders[id]
	return o, ok
}

func (r *MemoryOrderRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.orders)
}

// execer is the part of *pgxpool.Pool the order repository needs.
type execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// PostgresOrderRepository writes orders to the orders table created by the
// embedded migrations.
type PostgresOrderRepository struct {
	db execer
}

func NewPostgresOrderRepository(db execer) *PostgresOrderRepository {
	return &PostgresOrderRepository{db: db}
}

const insertOrderSQL = `
	INSERT INTO orders (id, product, quantity, status, created_at)
	VALUES ($1, $2, $3, $4, $5)`

func (r *PostgresOrderRepository) Create(ctx context.Context, order *model.Order) error {
	_, err := r.db.Exec(ctx, insertOrderSQL,
		order.ID,
		order.Product,
		order.Quantity,
		string(order.Status),
		order.CreatedAt,
	)
	if err != nil {
		// pgconn errors are kept wrapped so sqlerr can map them in the error handler.
		return fmt.Errorf("failed to insert order: %w", err)
	}

	return nil
}
