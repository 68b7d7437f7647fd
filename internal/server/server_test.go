package server

import (
	"context"
	"testing"

	"github.com/deppfellow/v1-api/internal/config"
	"github.com/deppfellow/v1-api/internal/lib/counter"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_MinimalConfig(t *testing.T) {
	logger := zerolog.Nop()

	s, err := New(context.Background(), config.DefaultConfig(), &logger, nil)
	require.NoError(t, err)

	assert.Nil(t, s.DB)
	assert.Nil(t, s.Redis)
	assert.Nil(t, s.Job)
	assert.IsType(t, &counter.MemoryStore{}, s.Counters)

	assert.NoError(t, s.Shutdown(context.Background()))
}

func TestNew_RedisCountersRequireRedis(t *testing.T) {
	logger := zerolog.Nop()

	cfg := config.DefaultConfig()
	cfg.Redis.Address = "127.0.0.1:1"
	cfg.Metrics.Store = config.MetricsStoreRedis

	_, err := New(context.Background(), cfg, &logger, nil)
	assert.Error(t, err)
}

func TestNew_RedisCountersWithoutAddress(t *testing.T) {
	logger := zerolog.Nop()

	cfg := config.DefaultConfig()
	cfg.Redis.Address = ""
	cfg.Metrics.Store = config.MetricsStoreRedis

	s, err := New(context.Background(), cfg, &logger, nil)
	assert.Nil(t, s)
	assert.EqualError(t, err, "metrics store redis requires a redis address")
}

func TestNew_UnreachableOptionalRedis(t *testing.T) {
	logger := zerolog.Nop()

	cfg := config.DefaultConfig()
	cfg.Redis.Address = "127.0.0.1:1"

	s, err := New(context.Background(), cfg, &logger, nil)
	require.NoError(t, err)

	assert.Nil(t, s.Redis)
	assert.Nil(t, s.Job)
	assert.NoError(t, s.Shutdown(context.Background()))
}

func TestStart_RequiresSetup(t *testing.T) {
	logger := zerolog.Nop()

	s, err := New(context.Background(), config.DefaultConfig(), &logger, nil)
	require.NoError(t, err)

	assert.EqualError(t, s.Start(), "HTTP server not initialized")
}
