// Package app composes an upstream Source with the statistics engine.
package app

import (
	"context"
	"log/slog"
	"time"

	"tba-stats-service/event"
	"tba-stats-service/internal/logging"
	"tba-stats-service/internal/metrics"
	"tba-stats-service/providers"
	"tba-stats-service/stats"
)

// Service coordinates event retrieval and OPR computation.
type Service struct {
	source   providers.Source
	logger   *slog.Logger
	recorder *metrics.Recorder
}

// NewService constructs a Service. Logger and recorder may be nil.
func NewService(source providers.Source, logger *slog.Logger, recorder *metrics.Recorder) *Service {
	return &Service{
		source:   source,
		logger:   logging.WithComponent(logger, "app"),
		recorder: recorder,
	}
}

// Event fetches and builds a single event.
func (s *Service) Event(ctx context.Context, key string, opts ...event.Option) (*event.Event, error) {
	return s.source.FetchEvent(ctx, key, opts...)
}

// EventOPR fetches an event and computes contribution ratings for the
// requested statistics. The "total" statistic is always included.
func (s *Service) EventOPR(ctx context.Context, key string, specs map[string]stats.Spec) (map[string]map[string]float64, error) {
	ev, err := s.source.FetchEvent(ctx, key)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	result, err := stats.OPR(ev, specs)
	elapsed := time.Since(start)
	s.recorder.RecordSolve(key, elapsed, err)
	if err != nil {
		logging.Error(s.logger, "opr solve failed", err,
			logging.FieldEvent, key, logging.FieldDurationMS, elapsed.Milliseconds())
		return nil, err
	}

	logging.Info(s.logger, "opr solved",
		logging.FieldEvent, key,
		logging.FieldCount, len(result),
		logging.FieldDurationMS, elapsed.Milliseconds())
	return result, nil
}

// TeamRanking returns a team's ranking row for an event, keyed by the ranking
// table headers.
func (s *Service) TeamRanking(ctx context.Context, key string, id event.TeamID) (map[string]any, bool, error) {
	ev, err := s.source.FetchEvent(ctx, key)
	if err != nil {
		return nil, false, err
	}
	return ev.TeamRanking(id)
}
