package metrics

import (
	"errors"
	"testing"
	"time"
)

func TestRecorderCountsPerCategory(t *testing.T) {
	r := NewRecorder()

	r.RecordSourceAttempt("games", 50*time.Millisecond, nil)
	r.RecordSourceAttempt("games", 75*time.Millisecond, errors.New("boom"))
	r.RecordCacheHit("games")
	r.RecordCacheMiss("games")
	r.RecordCacheMiss("games")
	r.RecordFallback("games")

	snap := r.Snapshot("games")
	if snap.Fetches != 2 || snap.Errors != 1 {
		t.Fatalf("unexpected fetch counters %+v", snap)
	}
	if snap.CacheHits != 1 || snap.CacheMisses != 2 {
		t.Fatalf("unexpected cache counters %+v", snap)
	}
	if snap.Fallbacks != 1 {
		t.Fatalf("unexpected fallback counter %+v", snap)
	}
	if snap.LastFetchLatency != 75*time.Millisecond {
		t.Fatalf("unexpected latency %v", snap.LastFetchLatency)
	}

	if other := r.Snapshot("news"); other != (Snapshot{}) {
		t.Fatalf("expected empty snapshot for untouched category, got %+v", other)
	}
}

func TestRecorderAccessors(t *testing.T) {
	r := NewRecorder()
	r.RecordSourceAttempt("news", time.Millisecond, errors.New("boom"))
	r.RecordFallback("news")

	if r.SourceFetches("news") != 1 {
		t.Fatalf("unexpected fetches %d", r.SourceFetches("news"))
	}
	if r.SourceErrors("news") != 1 {
		t.Fatalf("unexpected errors %d", r.SourceErrors("news"))
	}
	if r.Fallbacks("news") != 1 {
		t.Fatalf("unexpected fallbacks %d", r.Fallbacks("news"))
	}
}

func TestRecorderNilSafe(t *testing.T) {
	var r *Recorder
	// Must not panic.
	r.RecordSourceAttempt("games", time.Millisecond, nil)
	r.RecordCacheHit("games")
	r.RecordCacheMiss("games")
	r.RecordFallback("games")
	r.RecordHTTPRequest("GET", "/games", 200, time.Millisecond)
	r.RecordRefreshCycle(time.Millisecond, nil)
	if snap := r.Snapshot("games"); snap != (Snapshot{}) {
		t.Fatalf("expected zero snapshot, got %+v", snap)
	}
}
