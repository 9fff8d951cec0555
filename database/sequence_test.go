package database

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MonirMohammed1995/matrimony-management-server/config"
)

// testStore connects to the Mongo deployment named by MONGO_TEST_URI
// and skips the test when none is available.
func testStore(t *testing.T) *Store {
	t.Helper()

	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set, skipping Mongo integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	store, err := Connect(ctx, config.MongoConfig{
		URI:            uri,
		Database:       "matrimony_test",
		ConnectTimeout: 15 * time.Second,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = store.DB.Drop(ctx)
		_ = store.Disconnect(ctx)
	})

	return store
}

func TestNextIDStartsAtOne(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	id, err := store.NextID(ctx, "testSeq")
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	id, err = store.NextID(ctx, "testSeq")
	require.NoError(t, err)
	assert.Equal(t, int64(2), id)
}

func TestNextIDSequencesAreIndependent(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	a, err := store.NextID(ctx, "seqA")
	require.NoError(t, err)
	b, err := store.NextID(ctx, "seqB")
	require.NoError(t, err)

	assert.Equal(t, int64(1), a)
	assert.Equal(t, int64(1), b)
}

func TestNextIDConcurrentAllocationsAreDistinct(t *testing.T) {
	store := testStore(t)

	const n = 50
	ids := make(chan int64, n)
	var wg sync.WaitGroup

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			id, err := store.NextID(ctx, "concurrentSeq")
			assert.NoError(t, err)
			ids <- id
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool, n)
	for id := range ids {
		assert.False(t, seen[id], "id %d allocated twice", id)
		seen[id] = true
	}
	require.Len(t, seen, n)

	// No gaps relative to the counter's prior value of zero.
	for i := int64(1); i <= n; i++ {
		assert.True(t, seen[i], "id %d missing from allocation set", i)
	}
}
