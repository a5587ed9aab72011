package optimizer

import (
	"fmt"
	"time"

	"github.com/cmalloy/trip-finder/internal/trip"
	"github.com/cmalloy/trip-finder/pkg/constants"
	"go.uber.org/zap"
)

// RoundTripOptimizer finds the cheapest valid combinations of one or two
// independently priced round trips: an outer origin<->stopover1 pair and an
// optional nested stopover1<->stopover2 pair.
type RoundTripOptimizer struct {
	constraints Constraints
	logger      *zap.Logger
}

// NewRoundTripOptimizer creates a RoundTripOptimizer with the given constraints.
func NewRoundTripOptimizer(constraints Constraints, logger *zap.Logger) *RoundTripOptimizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RoundTripOptimizer{constraints: constraints, logger: logger}
}

// ValidateDates reports whether the outer round trip, optionally nested with
// an inner one, forms a legal itinerary.
//
// With no inner round trip the only requirement is outbound strictly before
// return; no minimum stay applies on this path. With an inner round
// trip the four dates must nest strictly
// (outer.out < inner.out < inner.ret < outer.ret), the gap from outer
// departure to inner departure must cover MinStopover1Days, and the inner
// trip itself must cover MinStopover2Days.
func (o *RoundTripOptimizer) ValidateDates(outer trip.RoundTripOption, inner *trip.RoundTripOption) (bool, error) {
	outerOut, err := time.Parse(constants.DateLayout, outer.OutboundDate)
	if err != nil {
		return false, fmt.Errorf("invalid outbound date %q: %w", outer.OutboundDate, err)
	}
	outerRet, err := time.Parse(constants.DateLayout, outer.ReturnDate)
	if err != nil {
		return false, fmt.Errorf("invalid return date %q: %w", outer.ReturnDate, err)
	}

	if inner == nil {
		return outerOut.Before(outerRet), nil
	}

	innerOut, err := time.Parse(constants.DateLayout, inner.OutboundDate)
	if err != nil {
		return false, fmt.Errorf("invalid outbound date %q: %w", inner.OutboundDate, err)
	}
	innerRet, err := time.Parse(constants.DateLayout, inner.ReturnDate)
	if err != nil {
		return false, fmt.Errorf("invalid return date %q: %w", inner.ReturnDate, err)
	}

	// The inner round trip must nest strictly inside the outer one.
	if !(outerOut.Before(innerOut) && innerOut.Before(innerRet) && innerRet.Before(outerRet)) {
		return false, nil
	}

	stopover1Days := int(innerOut.Sub(outerOut).Hours() / 24)
	if stopover1Days < o.constraints.MinStopover1Days {
		return false, nil
	}

	stopover2Days := int(innerRet.Sub(innerOut).Hours() / 24)
	if stopover2Days < o.constraints.MinStopover2Days {
		return false, nil
	}

	return true, nil
}

// FindBestCombinations returns the topN cheapest valid round-trip itineraries
// sorted ascending by total price, ties keeping enumeration order.
//
// With an empty inner list every outer option whose outbound date precedes its
// return date stands alone as a valid itinerary; no cross product is formed.
// Otherwise every (outer, inner) pair is validated. An empty outer list yields
// an empty result.
func (o *RoundTripOptimizer) FindBestCombinations(outer, inner []trip.RoundTripOption, topN int) ([]trip.RoundTripItinerary, error) {
	if len(outer) == 0 {
		o.logger.Debug("outer round-trip list is empty, nothing to combine",
			zap.String("op", "optimizer.RoundTripOptimizer.FindBestCombinations"),
		)
		return nil, nil
	}

	var valid []trip.RoundTripItinerary

	if len(inner) == 0 {
		for _, rt := range outer {
			ok, err := o.ValidateDates(rt, nil)
			if err != nil {
				return nil, err
			}
			if ok {
				valid = append(valid, trip.RoundTripItinerary{Outer: rt, TotalPrice: rt.TotalPrice})
			}
		}

		o.logger.Info("single round-trip search complete",
			zap.String("op", "optimizer.RoundTripOptimizer.FindBestCombinations"),
			zap.Int("candidates", len(outer)),
			zap.Int("valid", len(valid)),
		)

		return rank(valid, func(it trip.RoundTripItinerary) float64 { return it.TotalPrice }, topN), nil
	}

	o.logger.Debug("enumerating round-trip combinations",
		zap.String("op", "optimizer.RoundTripOptimizer.FindBestCombinations"),
		zap.Int("combinations", len(outer)*len(inner)),
	)

	for _, rt1 := range outer {
		for _, rt2 := range inner {
			ok, err := o.ValidateDates(rt1, &rt2)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
			nested := rt2
			valid = append(valid, trip.RoundTripItinerary{
				Outer:      rt1,
				Inner:      &nested,
				TotalPrice: rt1.TotalPrice + rt2.TotalPrice,
			})
		}
	}

	o.logger.Info("round-trip combination search complete",
		zap.String("op", "optimizer.RoundTripOptimizer.FindBestCombinations"),
		zap.Int("combinations", len(outer)*len(inner)),
		zap.Int("valid", len(valid)),
	)

	return rank(valid, func(it trip.RoundTripItinerary) float64 { return it.TotalPrice }, topN), nil
}
