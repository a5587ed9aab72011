// Package optimizer implements the trip combination search: it enumerates
// every combination of candidate travel options across itinerary positions,
// keeps the combinations whose dates satisfy the configured minimum-stay
// constraints, and returns the cheapest ones. The search is brute force over
// the Cartesian product of the input lists; callers are expected to pre-filter
// candidates by date range when supplying very large lists.
package optimizer

import (
	"fmt"
	"sort"
	"time"

	"github.com/cmalloy/trip-finder/internal/trip"
	"github.com/cmalloy/trip-finder/pkg/constants"
	"go.uber.org/zap"
)

// Constraints holds the minimum-stay thresholds enforced at each stopover.
// They are set at construction and immutable thereafter.
type Constraints struct {
	MinStopover1Days int
	MinStopover2Days int
}

// DefaultConstraints returns the standard thresholds (4 days at stopover 1,
// 10 days at stopover 2).
func DefaultConstraints() Constraints {
	return Constraints{
		MinStopover1Days: constants.DefaultMinStopover1Days,
		MinStopover2Days: constants.DefaultMinStopover2Days,
	}
}

// SegmentOptimizer finds the cheapest valid chains of 2-4 single-segment
// options. It performs no I/O and shares no mutable state across calls.
type SegmentOptimizer struct {
	constraints Constraints
	logger      *zap.Logger
}

// NewSegmentOptimizer creates a SegmentOptimizer with the given constraints.
func NewSegmentOptimizer(constraints Constraints, logger *zap.Logger) *SegmentOptimizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SegmentOptimizer{constraints: constraints, logger: logger}
}

// ValidateDates reports whether a chain of 2-4 departure dates forms a legal
// itinerary. Dates must be strictly increasing; equal adjacent dates fail even
// when the corresponding threshold is zero. The gap at the first stopover
// boundary must be at least MinStopover1Days and the gap at the second (when
// present) at least MinStopover2Days. The third boundary of a 4-segment chain
// (the transit back through stopover 1) only requires strict ordering.
// A malformed date is a caller error and is returned as such.
func (o *SegmentOptimizer) ValidateDates(dates ...string) (bool, error) {
	if len(dates) < 2 || len(dates) > 4 {
		return false, fmt.Errorf("expected between 2 and 4 dates, got %d", len(dates))
	}

	parsed := make([]time.Time, len(dates))
	for i, d := range dates {
		t, err := time.Parse(constants.DateLayout, d)
		if err != nil {
			return false, fmt.Errorf("invalid date %q: %w", d, err)
		}
		parsed[i] = t
	}

	// Per-boundary minimum stays. The trailing zero covers the 4-segment
	// transit boundary, which has no stay requirement.
	minimums := [3]int{o.constraints.MinStopover1Days, o.constraints.MinStopover2Days, 0}

	for i := 0; i < len(parsed)-1; i++ {
		if !parsed[i].Before(parsed[i+1]) {
			return false, nil
		}
		gapDays := int(parsed[i+1].Sub(parsed[i]).Hours() / 24)
		if gapDays < minimums[i] {
			return false, nil
		}
	}

	return true, nil
}

// FindBestCombinations enumerates every tuple formed by picking one segment
// from each list in order, validates the tuple's dates, and returns the topN
// cheapest valid itineraries sorted ascending by total price. Ties keep
// enumeration order. An empty input list yields an empty result without
// enumeration.
func (o *SegmentOptimizer) FindBestCombinations(lists [][]trip.Segment, topN int) ([]trip.Itinerary, error) {
	if len(lists) < 2 || len(lists) > 4 {
		return nil, fmt.Errorf("expected between 2 and 4 segment lists, got %d", len(lists))
	}

	totalCombinations := 1
	for i, list := range lists {
		if len(list) == 0 {
			o.logger.Debug("segment list is empty, nothing to combine",
				zap.String("op", "optimizer.FindBestCombinations"),
				zap.Int("position", i+1),
			)
			return nil, nil
		}
		totalCombinations *= len(list)
	}

	o.logger.Debug("enumerating segment combinations",
		zap.String("op", "optimizer.FindBestCombinations"),
		zap.Int("positions", len(lists)),
		zap.Int("combinations", totalCombinations),
	)

	var valid []trip.Itinerary
	current := make([]trip.Segment, len(lists))
	dates := make([]string, len(lists))

	var enumerate func(position int) error
	enumerate = func(position int) error {
		if position == len(lists) {
			ok, err := o.ValidateDates(dates...)
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
			segments := make([]trip.Segment, len(current))
			copy(segments, current)
			total := 0.0
			for _, s := range segments {
				total += s.Price
			}
			valid = append(valid, trip.Itinerary{Segments: segments, TotalPrice: total})
			return nil
		}
		for _, segment := range lists[position] {
			current[position] = segment
			dates[position] = segment.DepartureDate
			if err := enumerate(position + 1); err != nil {
				return err
			}
		}
		return nil
	}

	if err := enumerate(0); err != nil {
		return nil, err
	}

	o.logger.Info("segment combination search complete",
		zap.String("op", "optimizer.FindBestCombinations"),
		zap.Int("combinations", totalCombinations),
		zap.Int("valid", len(valid)),
	)

	return rank(valid, func(it trip.Itinerary) float64 { return it.TotalPrice }, topN), nil
}

// rank sorts items ascending by price and truncates to topN. The sort is
// stable so that equally priced items keep the order the search produced them
// in. topN <= 0 yields an empty result; topN beyond the set returns it whole.
func rank[T any](items []T, price func(T) float64, topN int) []T {
	sort.SliceStable(items, func(i, j int) bool {
		return price(items[i]) < price(items[j])
	})
	if topN <= 0 {
		return nil
	}
	if topN > len(items) {
		topN = len(items)
	}
	return items[:topN]
}
