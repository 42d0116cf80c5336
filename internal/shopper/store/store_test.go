package store

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/fekuna/omnipos-catalog-service/internal/shopper"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.Get(ctx, "missing")
	assert.ErrorIs(t, err, shopper.ErrNotFound)

	value := []byte(`[39,21]`)
	require.NoError(t, s.Set(ctx, "k", value, 0))
	value[1] = 'x'

	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `[39,21]`, string(got))
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 2, 14, 12, 0, 0, 0, time.UTC)
	s := NewMemoryStore()
	s.now = func() time.Time { return now }

	require.NoError(t, s.Set(ctx, "k", []byte("v"), time.Minute))
	_, err := s.Get(ctx, "k")
	require.NoError(t, err)

	now = now.Add(time.Minute)
	_, err = s.Get(ctx, "k")
	assert.ErrorIs(t, err, shopper.ErrNotFound)
}

func TestMemoryStoreUpdate(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	var seen [][]byte
	appendByte := func(current []byte) ([]byte, error) {
		seen = append(seen, current)
		return append(current, 'x'), nil
	}
	require.NoError(t, s.Update(ctx, "k", 0, appendByte))
	require.NoError(t, s.Update(ctx, "k", 0, appendByte))
	assert.Nil(t, seen[0])
	assert.Equal(t, "x", string(seen[1]))

	boom := errors.New("boom")
	err := s.Update(ctx, "k", 0, func([]byte) ([]byte, error) { return nil, boom })
	assert.ErrorIs(t, err, boom)

	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "xx", string(got))
}

func TestMemoryStoreUpdateSerializesWriters(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	const writers = 50
	start := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			err := s.Update(ctx, "counter", time.Minute, func(current []byte) ([]byte, error) {
				n := 0
				if current != nil {
					n, _ = strconv.Atoi(string(current))
				}
				return []byte(strconv.Itoa(n + 1)), nil
			})
			assert.NoError(t, err)
		}()
	}
	close(start)
	wg.Wait()

	got, err := s.Get(ctx, "counter")
	require.NoError(t, err)
	assert.Equal(t, strconv.Itoa(writers), string(got))
}

func TestRedisStoreSurfacesConnectionErrors(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		MaxRetries:  -1,
		DialTimeout: 200 * time.Millisecond,
	})
	t.Cleanup(func() { client.Close() })
	s := NewRedisStore(client)

	_, err := s.Get(context.Background(), "k")
	require.Error(t, err)
	assert.NotErrorIs(t, err, shopper.ErrNotFound)
	assert.Error(t, s.Set(context.Background(), "k", []byte("v"), time.Minute))

	called := false
	err = s.Update(context.Background(), "k", time.Minute, func(current []byte) ([]byte, error) {
		called = true
		return current, nil
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUpdateConflict)
	assert.False(t, called)
}
