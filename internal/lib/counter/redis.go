package counter

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps counters in Redis so they survive restarts and are
// shared between replicas. Each counter is a plain integer key
// "<prefix>:<name>".
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore does not take ownership of client; Close is a no-op.
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: prefix,
	}
}

func (s *RedisStore) key(name Name) string {
	return s.prefix + ":" + string(name)
}

// Record increments the named counters inside one MULTI/EXEC.
func (s *RedisStore) Record(ctx context.Context, names ...Name) error {
	if len(names) == 0 {
		return nil
	}

	for _, name := range names {
		if !known(name) {
			return fmt.Errorf("unknown counter %q", name)
		}
	}

	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, name := range names {
			pipe.Incr(ctx, s.key(name))
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to record counters: %w", err)
	}

	return nil
}

func (s *RedisStore) Snapshot(ctx context.Context) (Snapshot, error) {
	keys := make([]string, len(Names))
	for i, name := range Names {
		keys[i] = s.key(name)
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to read counters: %w", err)
	}

	counts := make(map[Name]uint64, len(Names))
	for i, name := range Names {
		n, err := parseCount(values[i])
		if err != nil {
			return Snapshot{}, fmt.Errorf("counter %s: %w", name, err)
		}
		counts[name] = n
	}

	return Snapshot{
		Orders:   counts[Orders],
		Users:    counts[Users],
		APICalls: counts[APICalls],
	}, nil
}

func (s *RedisStore) Close() error {
	return nil
}

// parseCount reads an MGET value; a missing key counts as zero.
func parseCount(v any) (uint64, error) {
	switch val := v.(type) {
	case nil:
		return 0, nil
	case string:
		return strconv.ParseUint(val, 10, 64)
	case int64:
		return uint64(val), nil
	default:
		return 0, fmt.Errorf("unexpected value type %T", v)
	}
}

func known(name Name) bool {
	for _, n := range Names {
		if n == name {
			return true
		}
	}
	return false
}
