package providers

import (
	"context"
	"log/slog"
	"time"

	"tba-stats-service/event"
	"tba-stats-service/internal/logging"
	"tba-stats-service/internal/metrics"
)

// instrumentedSource records fetch metrics and structured logs around an
// inner Source.
type instrumentedSource struct {
	inner    Source
	name     string
	logger   *slog.Logger
	recorder *metrics.Recorder
}

// NewInstrumentedSource decorates a Source with metrics and logging. A nil
// recorder or logger disables the respective concern.
func NewInstrumentedSource(inner Source, name string, logger *slog.Logger, recorder *metrics.Recorder) Source {
	return &instrumentedSource{
		inner:    inner,
		name:     name,
		logger:   logger,
		recorder: recorder,
	}
}

func (s *instrumentedSource) FetchEvent(ctx context.Context, key string, opts ...event.Option) (*event.Event, error) {
	start := time.Now()
	ev, err := s.inner.FetchEvent(ctx, key, opts...)
	elapsed := time.Since(start)

	s.recorder.RecordFetch(s.name, elapsed, err)
	if err != nil {
		logWithSource(ctx, s.logger, slog.LevelError, s.name, "event fetch failed",
			logging.FieldEvent, key, logging.FieldDurationMS, elapsed.Milliseconds(), "error", err)
		return nil, err
	}
	logWithSource(ctx, s.logger, slog.LevelInfo, s.name, "event fetched",
		logging.FieldEvent, key, logging.FieldDurationMS, elapsed.Milliseconds(),
		logging.FieldCount, len(ev.Teams()))
	return ev, nil
}
