package providers

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"tba-stats-service/event"
	"tba-stats-service/internal/logging"
)

const (
	defaultMaxRetries      = 3
	defaultInitialInterval = 200 * time.Millisecond
)

// retryingSource wraps a Source with exponential-backoff retries for
// transient upstream failures. Non-temporary status errors and missing
// credentials are surfaced immediately.
type retryingSource struct {
	inner           Source
	name            string
	logger          *slog.Logger
	maxRetries      uint64
	initialInterval time.Duration
}

// NewRetryingSource wraps the given source with retries. Zero maxRetries or
// interval fall back to defaults.
func NewRetryingSource(inner Source, name string, logger *slog.Logger, maxRetries uint64, initialInterval time.Duration) Source {
	if maxRetries == 0 {
		maxRetries = defaultMaxRetries
	}
	if initialInterval <= 0 {
		initialInterval = defaultInitialInterval
	}
	return &retryingSource{
		inner:           inner,
		name:            name,
		logger:          logger,
		maxRetries:      maxRetries,
		initialInterval: initialInterval,
	}
}

func (r *retryingSource) FetchEvent(ctx context.Context, key string, opts ...event.Option) (*event.Event, error) {
	var fetched *event.Event
	attempt := 0

	op := func() error {
		attempt++
		ev, err := r.inner.FetchEvent(ctx, key, opts...)
		if err == nil {
			fetched = ev
			return nil
		}
		if !retryable(err) {
			return backoff.Permanent(err)
		}
		logWithSource(ctx, r.logger, slog.LevelWarn, r.name, "event fetch retry",
			logging.FieldEvent, key, logging.FieldAttempt, attempt, "error", err)
		return err
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = r.initialInterval
	if err := backoff.Retry(op, backoff.WithContext(backoff.WithMaxRetries(bo, r.maxRetries), ctx)); err != nil {
		return nil, err
	}
	return fetched, nil
}

// retryable treats credential problems and non-temporary upstream statuses as
// permanent; everything else (network errors, 5xx, 429) is worth another try.
func retryable(err error) bool {
	if errors.Is(err, ErrMissingCredentials) {
		return false
	}
	if se, ok := AsStatusError(err); ok {
		return se.Temporary()
	}
	return true
}
