// Package fixture provides a canned in-memory Source useful for tests and
// offline development.
package fixture

import (
	"context"
	"net/http"

	"tba-stats-service/event"
	"tba-stats-service/providers"
)

// Source serves pre-built events from memory.
type Source struct {
	events map[string]*event.Event
	err    error
}

// New creates a fixture source holding the given events, keyed by event key.
func New(events ...*event.Event) *Source {
	byKey := make(map[string]*event.Event, len(events))
	for _, ev := range events {
		byKey[ev.Key()] = ev
	}
	return &Source{events: byKey}
}

// NewFailing creates a fixture source whose every fetch fails with err.
func NewFailing(err error) *Source {
	return &Source{err: err}
}

// FetchEvent returns the stored event for key, or a 404 StatusError.
func (s *Source) FetchEvent(ctx context.Context, key string, opts ...event.Option) (*event.Event, error) {
	_ = ctx
	_ = opts
	if s.err != nil {
		return nil, s.err
	}
	ev, ok := s.events[key]
	if !ok {
		return nil, &providers.StatusError{
			URL:        "fixture://" + key,
			StatusCode: http.StatusNotFound,
		}
	}
	return ev, nil
}
