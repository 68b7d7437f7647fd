// Package counter holds the process-wide usage counters reported by
// GET /api/metrics.
//
// A Store is created once by the server and handed to every service that
// records usage. Counters only ever grow.
package counter

import "context"

// Name identifies one counter.
type Name string

const (
	Orders   Name = "orders"
	Users    Name = "users"
	APICalls Name = "api_calls"
)

// Names lists every counter in reporting order.
var Names = []Name{Orders, Users, APICalls}

// Snapshot is a point-in-time read of all counters.
type Snapshot struct {
	Orders   uint64
	Users    uint64
	APICalls uint64
}

// Store is a thread-safe set of monotonically increasing counters.
type Store interface {
	// Record increments every named counter by one. All increments of one
	// call are applied together or not at all.
	Record(ctx context.Context, names ...Name) error

	// Snapshot reads all counters.
	Snapshot(ctx context.Context) (Snapshot, error)

	Close() error
}
