// Package providers contains the flight-data collaborators that retrieve
// priced travel options for the optimizer. How the options are obtained (an
// HTTP API, a local fixture) is irrelevant to the search; providers only have
// to return candidate lists.
package providers

import (
	"context"
	"errors"

	"github.com/cmalloy/trip-finder/internal/trip"
)

// SegmentProvider retrieves single-segment options for one
// origin/destination/date query.
type SegmentProvider interface {
	SearchSegments(ctx context.Context, origin, destination, date string) ([]trip.Segment, error)
}

// RoundTripProvider retrieves priced outbound+return pairs for one
// origin/destination date pair.
type RoundTripProvider interface {
	SearchRoundTrips(ctx context.Context, origin, destination, outboundDate, returnDate string) ([]trip.RoundTripOption, error)
}

// Provider combines both retrieval directions; the fixture and HTTP
// collaborators implement both.
type Provider interface {
	SegmentProvider
	RoundTripProvider
}

// ErrProviderUnavailable is returned when a provider is unavailable.
var ErrProviderUnavailable = errors.New("provider unavailable")
