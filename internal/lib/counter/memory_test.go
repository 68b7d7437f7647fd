package counter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"
)

func TestMemoryStore_Record(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Record(ctx, APICalls))
	require.NoError(t, store.Record(ctx, APICalls, Orders))
	require.NoError(t, store.Record(ctx, APICalls, Users))

	snap, err := store.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, Snapshot{Orders: 1, Users: 1, APICalls: 3}, snap)
}

func TestMemoryStore_UnknownCounterIsAtomic(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	err := store.Record(ctx, APICalls, Name("widgets"))
	assert.Error(t, err)

	snap, err := store.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, Snapshot{}, snap)
}

func TestMemoryStore_ConcurrentRecord(t *testing.T) {
	defer goleak.VerifyNone(t)

	const n = 1000

	ctx := context.Background()
	store := NewMemoryStore()

	var g errgroup.Group
	for i := 0; i < n; i++ {
		g.Go(func() error {
			return store.Record(ctx, APICalls, Orders)
		})
		g.Go(func() error {
			_, err := store.Snapshot(ctx)
			return err
		})
	}
	require.NoError(t, g.Wait())

	snap, err := store.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(n), snap.APICalls)
	assert.Equal(t, uint64(n), snap.Orders)
	assert.Zero(t, snap.Users)
}
