package lock

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SscSPs/backoffice_ledger/internal/apperrors"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T, opts Options) (*RedisManager, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisManager(client, opts), mr
}

func TestRedisManager_SerializesHolders(t *testing.T) {
	m, _ := newTestManager(t, Options{Expiry: 5 * time.Second, Tries: 200, RetryDelay: 5 * time.Millisecond})

	var inside, maxInside int32
	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := m.WithLock(context.Background(), EntryLockName("e-1"), func(ctx context.Context) error {
				n := atomic.AddInt32(&inside, 1)
				for {
					cur := atomic.LoadInt32(&maxInside)
					if n <= cur || atomic.CompareAndSwapInt32(&maxInside, cur, n) {
						break
					}
				}
				time.Sleep(10 * time.Millisecond)
				atomic.AddInt32(&inside, -1)
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), maxInside)
}

func TestRedisManager_ContentionIsTransient(t *testing.T) {
	m, _ := newTestManager(t, Options{Expiry: 5 * time.Second, Tries: 1, RetryDelay: time.Millisecond})

	held := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		done <- m.WithLock(context.Background(), "lock:x", func(ctx context.Context) error {
			close(held)
			<-release
			return nil
		})
	}()
	<-held

	err := m.WithLock(context.Background(), "lock:x", func(ctx context.Context) error { return nil })
	assert.True(t, errors.Is(err, apperrors.ErrTransient), "got %v", err)

	close(release)
	require.NoError(t, <-done)
}

func TestRedisManager_PropagatesFnError(t *testing.T) {
	m, mr := newTestManager(t, Options{})
	boom := errors.New("boom")

	err := m.WithLock(context.Background(), "lock:y", func(ctx context.Context) error { return boom })
	assert.ErrorIs(t, err, boom)
	assert.False(t, mr.Exists("lock:y"), "lock is released after fn returns")
}

func TestRedisManager_ReleaseFailureKeepsFnResult(t *testing.T) {
	m, mr := newTestManager(t, Options{})

	committed := false
	err := m.WithLock(context.Background(), EntryLockName("e-1"), func(ctx context.Context) error {
		committed = true
		mr.Close()
		return nil
	})
	assert.True(t, committed)
	assert.NoError(t, err)
}

func TestRedisManager_ReleasesOnPanic(t *testing.T) {
	m, mr := newTestManager(t, Options{})

	func() {
		defer func() {
			assert.Equal(t, "boom", recover())
		}()
		_ = m.WithLock(context.Background(), "lock:panic", func(ctx context.Context) error {
			require.True(t, mr.Exists("lock:panic"))
			panic("boom")
		})
	}()

	assert.False(t, mr.Exists("lock:panic"))
	require.NoError(t, m.WithLock(context.Background(), "lock:panic", func(ctx context.Context) error { return nil }))
}

func TestNopManager(t *testing.T) {
	called := false
	err := NopManager{}.WithLock(context.Background(), "any", func(ctx context.Context) error {
		called = true
		return nil
	})
	assert.NoError(t, err)
	assert.True(t, called)
}
