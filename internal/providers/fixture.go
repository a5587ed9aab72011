package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/cmalloy/trip-finder/internal/trip"
)

// FixtureProvider serves candidate records from a local JSON file. It exists
// for offline runs and tests; the file is read once at construction.
type FixtureProvider struct {
	segments   []trip.Segment
	roundTrips []trip.RoundTripOption
}

type fixtureFile struct {
	Segments   []trip.Segment         `json:"segments"`
	RoundTrips []trip.RoundTripOption `json:"roundtrips"`
}

// NewFixtureProvider loads the fixture at path.
func NewFixtureProvider(path string) (*FixtureProvider, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture %s: %w", path, err)
	}

	var fixture fixtureFile
	if err := json.Unmarshal(data, &fixture); err != nil {
		return nil, fmt.Errorf("failed to parse fixture %s: %w", path, err)
	}

	return &FixtureProvider{
		segments:   fixture.Segments,
		roundTrips: fixture.RoundTrips,
	}, nil
}

// SearchSegments returns the fixture segments matching the query.
func (p *FixtureProvider) SearchSegments(ctx context.Context, origin, destination, date string) ([]trip.Segment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var matches []trip.Segment
	for _, s := range p.segments {
		if s.Origin == origin && s.Destination == destination && s.DepartureDate == date {
			matches = append(matches, s)
		}
	}
	return matches, nil
}

// SearchRoundTrips returns the fixture round trips matching the query.
func (p *FixtureProvider) SearchRoundTrips(ctx context.Context, origin, destination, outboundDate, returnDate string) ([]trip.RoundTripOption, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var matches []trip.RoundTripOption
	for _, rt := range p.roundTrips {
		if rt.Origin == origin && rt.Destination == destination &&
			rt.OutboundDate == outboundDate && rt.ReturnDate == returnDate {
			matches = append(matches, rt)
		}
	}
	return matches, nil
}
