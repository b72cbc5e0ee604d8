// Package lock provides named mutual exclusion across service instances.
package lock

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/backoffice_ledger/internal/apperrors"
	"github.com/SscSPs/backoffice_ledger/internal/middleware"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

// Manager runs a function while holding a named lock.
type Manager interface {
	WithLock(ctx context.Context, name string, fn func(ctx context.Context) error) error
}

// EntryLockName is the lock name guarding transitions of one journal entry.
func EntryLockName(entryID string) string {
	return "lock:journal-entry:" + entryID
}

// NopManager runs fn without locking. Database row locks still serialize writers.
type NopManager struct{}

func (NopManager) WithLock(ctx context.Context, _ string, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// RedisManager implements Manager with redsync on a single redis client.
type RedisManager struct {
	rs         *redsync.Redsync
	expiry     time.Duration
	tries      int
	retryDelay time.Duration
}

// Options tunes RedisManager.
type Options struct {
	Expiry     time.Duration
	Tries      int
	RetryDelay time.Duration
}

// NewRedisManager builds a RedisManager from an existing go-redis client.
func NewRedisManager(client redis.UniversalClient, opts Options) *RedisManager {
	if opts.Expiry <= 0 {
		opts.Expiry = 10 * time.Second
	}
	if opts.Tries <= 0 {
		opts.Tries = 32
	}
	if opts.RetryDelay <= 0 {
		opts.RetryDelay = 50 * time.Millisecond
	}
	return &RedisManager{
		rs:         redsync.New(goredis.NewPool(client)),
		expiry:     opts.Expiry,
		tries:      opts.Tries,
		retryDelay: opts.RetryDelay,
	}
}

// NewRedisManagerFromURL parses a redis:// URL and builds a RedisManager.
func NewRedisManagerFromURL(ctx context.Context, url string, opts Options) (*RedisManager, *redis.Client, error) {
	redisOpts, err := redis.ParseURL(url)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}
	client := redis.NewClient(redisOpts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return NewRedisManager(client, opts), client, nil
}

var _ Manager = (*RedisManager)(nil)
var _ Manager = NopManager{}

// WithLock acquires name, runs fn and releases the lock. Failing to acquire the lock is
// reported as apperrors.ErrTransient; once fn has run, its error is returned unchanged.
func (m *RedisManager) WithLock(ctx context.Context, name string, fn func(ctx context.Context) error) error {
	mutex := m.rs.NewMutex(name,
		redsync.WithExpiry(m.expiry),
		redsync.WithTries(m.tries),
		redsync.WithRetryDelay(m.retryDelay),
	)

	if err := mutex.LockContext(ctx); err != nil {
		return fmt.Errorf("%w: acquire %s: %v", apperrors.ErrTransient, name, err)
	}

	// Runs on panic too. A failed release is only logged; fn's result stands and the
	// key expires on its own.
	defer func() {
		ok, err := mutex.UnlockContext(context.WithoutCancel(ctx))
		switch {
		case err != nil && !errors.Is(err, redsync.ErrLockAlreadyExpired):
			middleware.GetLoggerFromCtx(ctx).Warn("Failed to release lock",
				slog.String("lock", name), slog.String("error", err.Error()))
		case err == nil && !ok:
			middleware.GetLoggerFromCtx(ctx).Warn("Lock was not held at release", slog.String("lock", name))
		}
	}()

	return fn(ctx)
}
