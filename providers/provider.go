// Package providers defines how upstream event data reaches the core model,
// plus decorators adding retries, logging and metrics around any Source.
package providers

import (
	"context"

	"tba-stats-service/event"
)

// Source defines how a fully-populated Event is fetched and normalized.
// Implementations must return well-formed payloads or an explicit error; the
// core never constructs an Event from partial data.
type Source interface {
	FetchEvent(ctx context.Context, key string, opts ...event.Option) (*event.Event, error)
}
