package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

func newTestManager(ttl time.Duration) (*Manager, *fakeClock) {
	clock := &fakeClock{t: time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)}
	m := NewManager(ttl, slog.Default())
	m.now = clock.Now
	return m, clock
}

func TestManager_CreateAndGet(t *testing.T) {
	m, _ := newTestManager(time.Hour)

	token, s, err := m.Create()
	require.NoError(t, err)
	assert.Len(t, token, 43)
	assert.Equal(t, Anonymous, s.View().State)

	got, err := m.Get(token)
	require.NoError(t, err)
	assert.Same(t, s, got)
}

func TestManager_StoresOnlyHashes(t *testing.T) {
	m, _ := newTestManager(time.Hour)

	token, _, err := m.Create()
	require.NoError(t, err)

	_, raw := m.sessions[token]
	assert.False(t, raw)
	_, hashed := m.sessions[hashToken(token)]
	assert.True(t, hashed)
}

func TestManager_Get_Unknown(t *testing.T) {
	m, _ := newTestManager(time.Hour)

	_, err := m.Get("nope")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = m.Get("")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestManager_IdleExpiry(t *testing.T) {
	m, clock := newTestManager(time.Hour)

	token, _, err := m.Create()
	require.NoError(t, err)

	clock.Advance(50 * time.Minute)
	_, err = m.Get(token)
	require.NoError(t, err, "activity refreshes the idle timer")

	clock.Advance(50 * time.Minute)
	_, err = m.Get(token)
	require.NoError(t, err)

	clock.Advance(61 * time.Minute)
	_, err = m.Get(token)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 0, m.Len())
}

func TestManager_Sweep(t *testing.T) {
	m, clock := newTestManager(time.Hour)

	old, _, err := m.Create()
	require.NoError(t, err)
	clock.Advance(30 * time.Minute)
	fresh, _, err := m.Create()
	require.NoError(t, err)

	clock.Advance(45 * time.Minute)
	assert.Equal(t, 1, m.Sweep())

	_, err = m.Get(old)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = m.Get(fresh)
	assert.NoError(t, err)
}

func TestManager_End(t *testing.T) {
	m, _ := newTestManager(time.Hour)

	token, _, err := m.Create()
	require.NoError(t, err)

	m.End(token)
	m.End("unknown")

	_, err = m.Get(token)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestManager_Run_StopsOnCancel(t *testing.T) {
	m, _ := newTestManager(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		m.Run(ctx, time.Millisecond)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop")
	}
}

func TestManager_ConcurrentAccess(t *testing.T) {
	m, _ := newTestManager(time.Hour)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			token, _, err := m.Create()
			if !assert.NoError(t, err) {
				return
			}
			_, err = m.Get(token)
			assert.NoError(t, err)
			m.Sweep()
		}()
	}
	wg.Wait()
	assert.Equal(t, 20, m.Len())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "anonymous", Anonymous.String())
	assert.Equal(t, "authenticated", Authenticated.String())
}
