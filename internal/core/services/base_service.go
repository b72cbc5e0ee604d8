package services

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/backoffice_ledger/internal/apperrors"
	"github.com/SscSPs/backoffice_ledger/internal/core/domain"
	"github.com/SscSPs/backoffice_ledger/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	clock *postingClock
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting. Outcomes a caller is expected to
// handle (not found, validation, conflicts) are logged at warn level.
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	if isExpected(err) {
		logger.Warn(msg, args...)
		return
	}
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// now returns the service clock's current time, truncated to microseconds.
func (s *BaseService) now() time.Time {
	if s.clock == nil {
		return time.Now().UTC().Truncate(time.Microsecond)
	}
	return s.clock.Now()
}

func isExpected(err error) bool {
	return errors.Is(err, apperrors.ErrNotFound) ||
		errors.Is(err, apperrors.ErrValidation) ||
		errors.Is(err, apperrors.ErrConflict) ||
		errors.Is(err, apperrors.ErrDuplicate) ||
		errors.Is(err, apperrors.ErrConfiguration)
}

func newAudit(actor domain.Actor, now time.Time) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     actor.UserID,
		LastUpdatedAt: now,
		LastUpdatedBy: actor.UserID,
	}
}

func touch(a *domain.AuditFields, actor domain.Actor, now time.Time) {
	a.LastUpdatedAt = now
	a.LastUpdatedBy = actor.UserID
}

// postingClock hands out strictly increasing timestamps at microsecond resolution,
// which is what the database stores. Two posts in the same process never share a
// PostedAt, so (PostedAt, EntryID) gives a stable posting order.
type postingClock struct {
	mu   sync.Mutex
	last time.Time
	src  func() time.Time
}

func newPostingClock(src func() time.Time) *postingClock {
	if src == nil {
		src = time.Now
	}
	return &postingClock{src: src}
}

// Now returns max(src(), last+1µs).
func (c *postingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.src().UTC().Truncate(time.Microsecond)
	if !t.After(c.last) {
		t = c.last.Add(time.Microsecond)
	}
	c.last = t
	return t
}
