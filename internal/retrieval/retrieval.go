// Package retrieval turns a search configuration into materialized candidate
// lists for the optimizer. It fans provider queries out per airport pair and
// date, normalizes the returned records, and deduplicates them; the optimizer
// itself never sees raw provider output.
package retrieval

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/cmalloy/trip-finder/internal/config"
	"github.com/cmalloy/trip-finder/internal/providers"
	"github.com/cmalloy/trip-finder/internal/trip"
	"github.com/cmalloy/trip-finder/pkg/constants"
	"go.uber.org/zap"
)

// Retriever collects candidate lists from a provider.
type Retriever struct {
	segments   providers.SegmentProvider
	roundTrips providers.RoundTripProvider
	logger     *zap.Logger
}

// NewRetriever creates a Retriever backed by the given provider.
func NewRetriever(provider providers.Provider, logger *zap.Logger) *Retriever {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Retriever{segments: provider, roundTrips: provider, logger: logger}
}

// route is one directed airport pair within an itinerary position.
type route struct {
	origin      string
	destination string
}

// segmentRoutes returns the airport pairs to query for each segment position
// of the configured itinerary shape.
func segmentRoutes(s config.SearchConfig) [][]route {
	positions := [][]route{crossRoutes(s.Origins, s.Stopover1)}
	if len(s.Stopover2) == 0 {
		return append(positions, crossRoutes(s.Stopover1, s.Origins))
	}

	positions = append(positions, crossRoutes(s.Stopover1, s.Stopover2))
	if s.ReturnVia == constants.ReturnViaStopover1 {
		positions = append(positions, crossRoutes(s.Stopover2, s.Stopover1))
		return append(positions, crossRoutes(s.Stopover1, s.Origins))
	}
	return append(positions, crossRoutes(s.Stopover2, s.Origins))
}

// RetrieveSegments materializes one candidate list per segment position.
// Individual query failures are logged and tolerated; a position with no
// surviving records simply yields an empty list, which the optimizer treats
// as "no data".
func (r *Retriever) RetrieveSegments(ctx context.Context, s config.SearchConfig) ([][]trip.Segment, error) {
	routesByPosition := segmentRoutes(s)
	if len(routesByPosition) != len(s.SegmentDateLists) {
		return nil, fmt.Errorf("itinerary shape has %d positions but %d date lists were parsed",
			len(routesByPosition), len(s.SegmentDateLists))
	}

	lists := make([][]trip.Segment, len(routesByPosition))
	for position, routes := range routesByPosition {
		var (
			mu      sync.Mutex
			wg      sync.WaitGroup
			records []trip.Segment
			failed  int
		)

		start := time.Now()
		for _, rt := range routes {
			for _, date := range s.SegmentDateLists[position] {
				rt, date := rt, date
				wg.Add(1)
				go func() {
					defer wg.Done()
					found, err := r.segments.SearchSegments(ctx, rt.origin, rt.destination, date)
					mu.Lock()
					defer mu.Unlock()
					if err != nil {
						failed++
						r.logger.Warn("segment query failed",
							zap.String("op", "retrieval.RetrieveSegments"),
							zap.String("origin", rt.origin),
							zap.String("destination", rt.destination),
							zap.String("date", date),
							zap.Error(err),
						)
						return
					}
					records = append(records, found...)
				}()
			}
		}
		wg.Wait()

		lists[position] = r.normalizeSegments(records)
		r.logger.Info("segment position retrieved",
			zap.String("op", "retrieval.RetrieveSegments"),
			zap.Int("position", position+1),
			zap.Int("records", len(lists[position])),
			zap.Int("failed_queries", failed),
			zap.Duration("duration", time.Since(start)),
		)
	}

	return lists, nil
}

// RetrieveRoundTrips materializes the outer (origin<->stopover1) and, when a
// second stopover is configured, the inner (stopover1<->stopover2) candidate
// lists. Date pairs where the return does not follow the outbound are skipped
// up front rather than queried.
func (r *Retriever) RetrieveRoundTrips(ctx context.Context, s config.SearchConfig) (outer, inner []trip.RoundTripOption) {
	outer = r.retrieveRoundTripList(ctx, "round trip 1",
		crossRoutes(s.Origins, s.Stopover1), s.RT1OutboundList, s.RT1ReturnList)

	if len(s.Stopover2) > 0 {
		inner = r.retrieveRoundTripList(ctx, "round trip 2",
			crossRoutes(s.Stopover1, s.Stopover2), s.RT2OutboundList, s.RT2ReturnList)
	}

	return outer, inner
}

func crossRoutes(from, to []string) []route {
	routes := make([]route, 0, len(from)*len(to))
	for _, f := range from {
		for _, t := range to {
			routes = append(routes, route{origin: f, destination: t})
		}
	}
	return routes
}

func (r *Retriever) retrieveRoundTripList(ctx context.Context, label string, routes []route, outboundDates, returnDates []string) []trip.RoundTripOption {
	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		records []trip.RoundTripOption
		failed  int
	)

	start := time.Now()
	for _, rt := range routes {
		for _, outbound := range outboundDates {
			for _, ret := range returnDates {
				if ret <= outbound {
					continue
				}
				rt, outbound, ret := rt, outbound, ret
				wg.Add(1)
				go func() {
					defer wg.Done()
					found, err := r.roundTrips.SearchRoundTrips(ctx, rt.origin, rt.destination, outbound, ret)
					mu.Lock()
					defer mu.Unlock()
					if err != nil {
						failed++
						r.logger.Warn("round trip query failed",
							zap.String("op", "retrieval.RetrieveRoundTrips"),
							zap.String("origin", rt.origin),
							zap.String("destination", rt.destination),
							zap.String("outbound", outbound),
							zap.String("return", ret),
							zap.Error(err),
						)
						return
					}
					records = append(records, found...)
				}()
			}
		}
	}
	wg.Wait()

	normalized := r.normalizeRoundTrips(records)
	r.logger.Info(label+" retrieved",
		zap.String("op", "retrieval.RetrieveRoundTrips"),
		zap.Int("records", len(normalized)),
		zap.Int("failed_queries", failed),
		zap.Duration("duration", time.Since(start)),
	)
	return normalized
}

// normalizeSegments drops invalid records and deduplicates by date, price,
// departure time, and airline.
func (r *Retriever) normalizeSegments(records []trip.Segment) []trip.Segment {
	seen := make(map[string]struct{}, len(records))
	kept := make([]trip.Segment, 0, len(records))
	for _, s := range records {
		s.Origin = strings.ToUpper(strings.TrimSpace(s.Origin))
		s.Destination = strings.ToUpper(strings.TrimSpace(s.Destination))
		if s.Origin == "" || s.Destination == "" {
			continue
		}
		if s.Price < 0 {
			continue
		}
		if _, err := time.Parse(constants.DateLayout, s.DepartureDate); err != nil {
			r.logger.Warn("dropping segment with unparseable date",
				zap.String("op", "retrieval.normalizeSegments"),
				zap.String("date", s.DepartureDate),
			)
			continue
		}

		key := fmt.Sprintf("%s|%.2f|%s|%s", s.DepartureDate, s.Price, s.DepartureTime, s.Airline)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, s)
	}
	return kept
}

// normalizeRoundTrips drops invalid records and deduplicates by date pair,
// price, outbound departure time, and outbound airline.
func (r *Retriever) normalizeRoundTrips(records []trip.RoundTripOption) []trip.RoundTripOption {
	seen := make(map[string]struct{}, len(records))
	kept := make([]trip.RoundTripOption, 0, len(records))
	for _, rt := range records {
		rt.Origin = strings.ToUpper(strings.TrimSpace(rt.Origin))
		rt.Destination = strings.ToUpper(strings.TrimSpace(rt.Destination))
		if rt.Origin == "" || rt.Destination == "" {
			continue
		}
		if rt.TotalPrice < 0 {
			continue
		}
		if _, err := time.Parse(constants.DateLayout, rt.OutboundDate); err != nil {
			r.logger.Warn("dropping round trip with unparseable outbound date",
				zap.String("op", "retrieval.normalizeRoundTrips"),
				zap.String("date", rt.OutboundDate),
			)
			continue
		}
		if _, err := time.Parse(constants.DateLayout, rt.ReturnDate); err != nil {
			r.logger.Warn("dropping round trip with unparseable return date",
				zap.String("op", "retrieval.normalizeRoundTrips"),
				zap.String("date", rt.ReturnDate),
			)
			continue
		}

		key := fmt.Sprintf("%s|%s|%.2f|%s|%s", rt.OutboundDate, rt.ReturnDate, rt.TotalPrice, rt.OutboundDepartureTime, rt.OutboundAirline)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, rt)
	}
	return kept
}
