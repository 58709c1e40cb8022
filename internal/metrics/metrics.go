package metrics

import (
	"sync"
	"time"
)

type categoryStats struct {
	fetches          int
	errors           int
	cacheHits        int
	cacheMisses      int
	fallbacks        int
	lastFetchLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about category fetches and
// cache behavior. It is intentionally simple so it can be swapped for a real
// backend later.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*categoryStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*categoryStats),
		otel:  otel,
	}
}

// RecordSourceAttempt increments counters for an upstream fetch and stores the
// last observed latency.
func (r *Recorder) RecordSourceAttempt(category string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.statsLocked(category)
	stats.fetches++
	stats.lastFetchLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordSourceAttempt(category, duration, err)
	}
}

// RecordCacheHit tracks a fresh cache entry serving a category request.
func (r *Recorder) RecordCacheHit(category string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.statsLocked(category).cacheHits++
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordCache(category, true)
	}
}

// RecordCacheMiss tracks a request that had to go upstream.
func (r *Recorder) RecordCacheMiss(category string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.statsLocked(category).cacheMisses++
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordCache(category, false)
	}
}

// RecordFallback tracks a category request answered with placeholder data.
func (r *Recorder) RecordFallback(category string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.statsLocked(category).fallbacks++
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordFallback(category)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// RecordRefreshCycle tracks cache-warmer cycles and errors.
func (r *Recorder) RecordRefreshCycle(duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordRefresh(duration, err)
}

// Snapshot is a copy of the current stats for one category.
type Snapshot struct {
	Fetches          int
	Errors           int
	CacheHits        int
	CacheMisses      int
	Fallbacks        int
	LastFetchLatency time.Duration
}

func (r *Recorder) Snapshot(category string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	stats := r.snapshot(category)
	return Snapshot{
		Fetches:          stats.fetches,
		Errors:           stats.errors,
		CacheHits:        stats.cacheHits,
		CacheMisses:      stats.cacheMisses,
		Fallbacks:        stats.fallbacks,
		LastFetchLatency: stats.lastFetchLatency,
	}
}

// SourceFetches returns the total upstream attempts recorded for a category.
func (r *Recorder) SourceFetches(category string) int {
	return r.Snapshot(category).Fetches
}

// SourceErrors returns the total failed attempts recorded for a category.
func (r *Recorder) SourceErrors(category string) int {
	return r.Snapshot(category).Errors
}

// Fallbacks returns the number of placeholder substitutions for a category.
func (r *Recorder) Fallbacks(category string) int {
	return r.Snapshot(category).Fallbacks
}

// statsLocked returns the per-category stats; callers must hold r.mu.
func (r *Recorder) statsLocked(category string) *categoryStats {
	stats, ok := r.stats[category]
	if !ok {
		stats = &categoryStats{}
		r.stats[category] = stats
	}
	return stats
}

func (r *Recorder) snapshot(category string) categoryStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.stats[category]; ok && stats != nil {
		return *stats
	}
	return categoryStats{}
}
