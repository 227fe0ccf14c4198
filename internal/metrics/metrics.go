package metrics

import (
	"sync"
	"time"
)

type sourceStats struct {
	fetches          int
	errors           int
	cacheHits        int
	solves           int
	solveErrors      int
	lastFetchLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about upstream fetches and
// OPR solves. It is intentionally simple so it can back assertions in tests
// while forwarding to real instruments when telemetry is enabled.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*sourceStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*sourceStats),
		otel:  otel,
	}
}

// RecordFetch increments counters for an upstream fetch and stores the last
// observed latency.
func (r *Recorder) RecordFetch(source string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	stats := r.ensureStats(source)
	stats.fetches++
	stats.lastFetchLatency = duration
	if err != nil {
		stats.errors++
	}
	if r.otel != nil {
		r.otel.recordFetch(source, duration, err)
	}
}

// RecordCacheHit tracks a conditional request answered from the local cache.
func (r *Recorder) RecordCacheHit(source string) {
	if r == nil {
		return
	}

	r.ensureStats(source).cacheHits++
	if r.otel != nil {
		r.otel.recordCacheHit(source)
	}
}

// RecordSolve tracks one OPR computation for an event.
func (r *Recorder) RecordSolve(source string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	stats := r.ensureStats(source)
	stats.solves++
	if err != nil {
		stats.solveErrors++
	}
	if r.otel != nil {
		r.otel.recordSolve(source, duration, err)
	}
}

// Fetches returns the total fetches recorded for a source.
func (r *Recorder) Fetches(source string) int {
	return r.Snapshot(source).Fetches
}

// FetchErrors returns the total failed fetches recorded for a source.
func (r *Recorder) FetchErrors(source string) int {
	return r.Snapshot(source).Errors
}

// CacheHits returns the number of cache revalidation hits seen for a source.
func (r *Recorder) CacheHits(source string) int {
	return r.Snapshot(source).CacheHits
}

// LastFetchLatency returns the last recorded fetch latency for a source.
func (r *Recorder) LastFetchLatency(source string) time.Duration {
	return r.Snapshot(source).LastFetchLatency
}

// Snapshot is a copy of the current stats for one source.
type Snapshot struct {
	Fetches          int
	Errors           int
	CacheHits        int
	Solves           int
	SolveErrors      int
	LastFetchLatency time.Duration
}

func (r *Recorder) Snapshot(source string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	stats := r.snapshot(source)
	return Snapshot{
		Fetches:          stats.fetches,
		Errors:           stats.errors,
		CacheHits:        stats.cacheHits,
		Solves:           stats.solves,
		SolveErrors:      stats.solveErrors,
		LastFetchLatency: stats.lastFetchLatency,
	}
}

func (r *Recorder) ensureStats(source string) *sourceStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[source]
	if !ok {
		stats = &sourceStats{}
		r.stats[source] = stats
	}
	return stats
}

func (r *Recorder) snapshot(source string) sourceStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.stats[source]; ok && stats != nil {
		return *stats
	}
	return sourceStats{}
}
