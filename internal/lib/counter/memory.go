package counter

import (
	"context"
	"fmt"
	"sync/atomic"
)

// MemoryStore keeps counters in process memory. They reset on restart.
type MemoryStore struct {
	orders   atomic.Uint64
	users    atomic.Uint64
	apiCalls atomic.Uint64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) counter(name Name) (*atomic.Uint64, error) {
	switch name {
	case Orders:
		return &s.orders, nil
	case Users:
		return &s.users, nil
	case APICalls:
		return &s.apiCalls, nil
	default:
		return nil, fmt.Errorf("unknown counter %q", name)
	}
}

func (s *MemoryStore) Record(_ context.Context, names ...Name) error {
	// Resolve first so an unknown name leaves every counter untouched.
	counters := make([]*atomic.Uint64, 0, len(names))
	for _, name := range names {
		c, err := s.counter(name)
		if err != nil {
			return err
		}
		counters = append(counters, c)
	}

	for _, c := range counters {
		c.Add(1)
	}

	return nil
}

func (s *MemoryStore) Snapshot(_ context.Context) (Snapshot, error) {
	return Snapshot{
		Orders:   s.orders.Load(),
		Users:    s.users.Load(),
		APICalls: s.apiCalls.Load(),
	}, nil
}

func (s *MemoryStore) Close() error {
	return nil
}
