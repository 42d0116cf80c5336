package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/fekuna/omnipos-catalog-service/internal/catalog"
	"github.com/fekuna/omnipos-catalog-service/internal/logger"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func testCatalog(t *testing.T, n int) *catalog.Catalog {
	t.Helper()
	products := make([]model.Product, n)
	for i := range products {
		products[i] = model.Product{
			ID:            int64(i + 1),
			Title:         "Pattern",
			OriginalPrice: decimal.RequireFromString("14.99"),
			SalePrice:     decimal.RequireFromString("4.99"),
		}
	}
	c, err := catalog.New(products)
	require.NoError(t, err)
	return c
}

type clock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *clock) now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *clock) advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func newRegistry(t *testing.T, ttl time.Duration) (*Registry, *clock) {
	t.Helper()
	r, err := NewRegistry(testCatalog(t, 30), 12, ttl, logger.NewNop())
	require.NoError(t, err)
	clk := &clock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	r.now = clk.now
	return r, clk
}

func TestNewRegistryRejectsNilCatalog(t *testing.T) {
	_, err := NewRegistry(nil, 12, time.Minute, logger.NewNop())
	assert.ErrorIs(t, err, catalog.ErrNilCatalog)
}

func TestCreateAndGet(t *testing.T) {
	r, _ := newRegistry(t, time.Minute)

	s, err := r.Create()
	require.NoError(t, err)
	require.NotEmpty(t, s.ID)
	assert.Equal(t, 1, r.Len())

	got, ok := r.Get(s.ID)
	require.True(t, ok)
	assert.Same(t, s, got)

	_, ok = r.Get("nope")
	assert.False(t, ok)
}

func TestSessionsAreIndependent(t *testing.T) {
	r, _ := newRegistry(t, time.Minute)
	a, err := r.Create()
	require.NoError(t, err)
	b, err := r.Create()
	require.NoError(t, err)

	require.NoError(t, a.Do(func(ctl *catalog.Controller) error {
		require.True(t, ctl.ChangePage(3))
		return nil
	}))
	require.NoError(t, b.Do(func(ctl *catalog.Controller) error {
		assert.Equal(t, 1, ctl.State().CurrentPage)
		return nil
	}))
}

func TestRestoreReplaysSnapshot(t *testing.T) {
	r, _ := newRegistry(t, time.Minute)

	s, err := r.Restore("abc", &catalog.ViewSnapshot{Page: 2, PageSize: 5})
	require.NoError(t, err)
	require.NoError(t, s.Do(func(ctl *catalog.Controller) error {
		state := ctl.State()
		assert.Equal(t, 2, state.CurrentPage)
		assert.Equal(t, 5, state.PageSize)
		return nil
	}))

	again, err := r.Restore("abc", nil)
	require.NoError(t, err)
	assert.Same(t, s, again)
}

func TestSweepDropsIdleSessions(t *testing.T) {
	r, clk := newRegistry(t, time.Minute)
	idle, err := r.Create()
	require.NoError(t, err)
	busy, err := r.Create()
	require.NoError(t, err)

	clk.advance(45 * time.Second)
	_, ok := r.Get(busy.ID)
	require.True(t, ok)
	clk.advance(30 * time.Second)

	assert.Equal(t, 1, r.Sweep())
	_, ok = r.Get(idle.ID)
	assert.False(t, ok)
	_, ok = r.Get(busy.ID)
	assert.True(t, ok)
}

func TestSweepWithoutTTLKeepsEverything(t *testing.T) {
	r, clk := newRegistry(t, 0)
	_, err := r.Create()
	require.NoError(t, err)

	clk.advance(24 * time.Hour)
	assert.Equal(t, 0, r.Sweep())
	assert.Equal(t, 1, r.Len())
}

func TestRunStopsWithContext(t *testing.T) {
	r, clk := newRegistry(t, time.Minute)
	_, err := r.Create()
	require.NoError(t, err)
	clk.advance(time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		r.Run(ctx, 5*time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool { return r.Len() == 0 }, time.Second, 5*time.Millisecond)
	cancel()
	<-done
}

func TestConcurrentDo(t *testing.T) {
	r, _ := newRegistry(t, time.Minute)
	s, err := r.Create()
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(page int) {
			defer wg.Done()
			_ = s.Do(func(ctl *catalog.Controller) error {
				ctl.ChangePage(page%3 + 1)
				return nil
			})
		}(i)
	}
	wg.Wait()

	require.NoError(t, s.Do(func(ctl *catalog.Controller) error {
		assert.LessOrEqual(t, ctl.State().CurrentPage, 3)
		return nil
	}))
}
