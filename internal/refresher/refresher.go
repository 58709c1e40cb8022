// Package refresher keeps the dashboard cache warm by periodically running
// the aggregate fetch, so the first page load after boot is served from
// cache rather than waiting on the upstream API.
package refresher

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/gridironfacts/nfl-data-service/internal/dataservice"
	"github.com/gridironfacts/nfl-data-service/internal/logging"
	"github.com/gridironfacts/nfl-data-service/internal/metrics"
)

const defaultInterval = 2 * time.Minute

// DashboardFetcher is the slice of the data service the refresher needs.
type DashboardFetcher interface {
	AllData(ctx context.Context) (dataservice.DashboardData, error)
}

// Refresher warms all dashboard categories on an interval.
type Refresher struct {
	svc      DashboardFetcher
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration
	now      func() time.Time

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the refresh loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the refresher has had a recent success and is not
// failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Refresher with sane defaults.
func New(svc DashboardFetcher, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Refresher {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Refresher{
		svc:      svc,
		logger:   logger,
		metrics:  recorder,
		interval: interval,
		now:      time.Now,
		done:     make(chan struct{}),
	}
}

// Start begins refreshing until the context is cancelled or Stop is called.
func (r *Refresher) Start(ctx context.Context) {
	r.startMu.Lock()
	if r.started {
		r.startMu.Unlock()
		return
	}
	r.started = true
	r.startMu.Unlock()

	r.ticker = time.NewTicker(r.interval)

	go func() {
		logging.Info(r.logger, "refresher started",
			slog.Int64(logging.FieldDurationMS, r.interval.Milliseconds()))
		// Initial warm on boot.
		r.refreshOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				r.stopTicker()
				logging.Info(r.logger, "refresher stopped")
				return
			case <-r.done:
				r.stopTicker()
				logging.Info(r.logger, "refresher stopped")
				return
			case <-r.ticker.C:
				r.refreshOnce(ctx)
			}
		}
	}()
}

// Stop halts the refresh loop.
func (r *Refresher) Stop(ctx context.Context) error {
	_ = ctx
	r.stopOnce.Do(func() {
		close(r.done)
	})
	return nil
}

// Status returns a copy of the current loop status.
func (r *Refresher) Status() Status {
	r.statusMu.RLock()
	defer r.statusMu.RUnlock()
	return r.status
}

func (r *Refresher) refreshOnce(ctx context.Context) {
	start := r.now()
	data, err := r.svc.AllData(ctx)
	duration := r.now().Sub(start)
	r.metrics.RecordRefreshCycle(duration, err)

	r.statusMu.Lock()
	r.status.LastAttempt = start
	if err != nil {
		r.status.ConsecutiveFailures++
		r.status.LastError = err.Error()
	} else {
		r.status.ConsecutiveFailures = 0
		r.status.LastError = ""
		r.status.LastSuccess = start
	}
	r.statusMu.Unlock()

	if err != nil {
		logging.Warn(r.logger, "refresh cycle failed", "err", err)
		return
	}
	logging.Info(r.logger, "refresh cycle complete",
		slog.Int(logging.FieldCount, len(data.LiveGames)),
		slog.Int64(logging.FieldDurationMS, duration.Milliseconds()))
}

func (r *Refresher) stopTicker() {
	if r.ticker != nil {
		r.ticker.Stop()
	}
}
