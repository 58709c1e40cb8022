package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/gridironfacts/nfl-data-service/internal/logging"
	"github.com/gridironfacts/nfl-data-service/internal/metrics"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
)

type backoffFunc func(attempt int) time.Duration

// retryingSource wraps a Source with retry/backoff behavior around each fetch.
type retryingSource struct {
	inner       Source
	logger      *slog.Logger
	metrics     *metrics.Recorder
	maxAttempts int
	backoffFn   backoffFunc
	now         func() time.Time
}

// NewRetryingSource wraps the given source with retries. If maxAttempts/backoff
// are <= 0, defaults are used.
func NewRetryingSource(inner Source, logger *slog.Logger, recorder *metrics.Recorder, maxAttempts int, backoff time.Duration) Source {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	return &retryingSource{
		inner:       inner,
		logger:      logger,
		metrics:     recorder,
		maxAttempts: maxAttempts,
		backoffFn: func(attempt int) time.Duration {
			return time.Duration(attempt) * backoff
		},
		now: time.Now,
	}
}

func (r *retryingSource) FetchGames(ctx context.Context) ([]RawGame, error) {
	return fetchWithRetry(ctx, r, "games", r.inner.FetchGames)
}

func (r *retryingSource) FetchStandings(ctx context.Context) ([]RawStanding, error) {
	return fetchWithRetry(ctx, r, "standings", r.inner.FetchStandings)
}

func (r *retryingSource) FetchLeaders(ctx context.Context) ([]RawLeaderCategory, error) {
	return fetchWithRetry(ctx, r, "leaders", r.inner.FetchLeaders)
}

func (r *retryingSource) FetchNews(ctx context.Context) ([]RawArticle, error) {
	return fetchWithRetry(ctx, r, "news", r.inner.FetchNews)
}

func fetchWithRetry[T any](ctx context.Context, r *retryingSource, category string, fn func(context.Context) ([]T, error)) ([]T, error) {
	var lastErr error

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		start := r.now()
		records, err := fn(ctx)
		r.metrics.RecordSourceAttempt(category, r.now().Sub(start), err)
		if err == nil {
			return records, nil
		}
		lastErr = err

		if attempt == r.maxAttempts {
			break
		}

		r.logWarn(ctx, "source fetch retry",
			slog.String(logging.FieldCategory, category),
			"attempt", attempt, "max_attempts", r.maxAttempts, "err", err)

		// backoff with context awareness
		delay := r.backoffFn(attempt)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}

	r.logWarn(ctx, "source fetch failed",
		slog.String(logging.FieldCategory, category),
		"attempts", r.maxAttempts, "err", lastErr)
	return nil, lastErr
}

func (r *retryingSource) logWarn(ctx context.Context, msg string, args ...any) {
	logger := logging.FromContext(ctx, r.logger)
	if logger != nil {
		logger.Warn(msg, args...)
	}
}
