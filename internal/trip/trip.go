// Package trip defines the data structures shared between the retrieval
// collaborators and the optimizer: single-segment options, round-trip options,
// and the assembled itineraries produced by the search.
package trip

import (
	"fmt"

	"github.com/cmalloy/trip-finder/pkg/datetime"
)

// Segment is a single priced, directed travel option between two points on one
// date. The optimizer reasons only about DepartureDate and Price; the remaining
// fields are descriptive and are echoed through to results unmodified. Segments
// are never mutated once constructed.
type Segment struct {
	Origin        string  `json:"origin"`
	Destination   string  `json:"destination"`
	DepartureDate string  `json:"departure_date"`
	Price         float64 `json:"price"`
	Airline       string  `json:"airline"`
	DepartureTime string  `json:"departure_time"`
	ArrivalTime   string  `json:"arrival_time"`
	Duration      string  `json:"duration"`
	Stops         int     `json:"stops"`
	SourceURL     string  `json:"url,omitempty"`
}

func (s Segment) String() string {
	return fmt.Sprintf("%s->%s on %s (%.2f)", s.Origin, s.Destination, s.DepartureDate, s.Price)
}

// RoundTripOption is a single priced outbound+return pair covering one
// stopover boundary. Outbound is strictly before return for any option that
// survives validation.
type RoundTripOption struct {
	Origin                string  `json:"origin"`
	Destination           string  `json:"destination"`
	OutboundDate          string  `json:"outbound_date"`
	ReturnDate            string  `json:"return_date"`
	TotalPrice            float64 `json:"total_price"`
	OutboundAirline       string  `json:"outbound_airline"`
	ReturnAirline         string  `json:"return_airline"`
	OutboundDepartureTime string  `json:"outbound_departure_time"`
	OutboundArrivalTime   string  `json:"outbound_arrival_time"`
	OutboundDuration      string  `json:"outbound_duration"`
	OutboundStops         int     `json:"outbound_stops"`
	ReturnDepartureTime   string  `json:"return_departure_time"`
	ReturnArrivalTime     string  `json:"return_arrival_time"`
	ReturnDuration        string  `json:"return_duration"`
	ReturnStops           int     `json:"return_stops"`
	SourceURL             string  `json:"url,omitempty"`
}

func (r RoundTripOption) String() string {
	return fmt.Sprintf("%s<->%s (%s to %s) %.2f", r.Origin, r.Destination, r.OutboundDate, r.ReturnDate, r.TotalPrice)
}

// Itinerary is an ordered chain of 2-4 segments produced by the search, with
// the derived total price. It borrows its segments from the input lists and is
// read-only.
type Itinerary struct {
	Segments   []Segment `json:"segments"`
	TotalPrice float64   `json:"total_price"`
}

// StayDays returns the length in days of each stopover, one entry per adjacent
// segment pair.
func (it Itinerary) StayDays() ([]int, error) {
	if len(it.Segments) < 2 {
		return nil, nil
	}
	stays := make([]int, 0, len(it.Segments)-1)
	for i := 0; i < len(it.Segments)-1; i++ {
		days, err := datetime.DaysBetween(it.Segments[i].DepartureDate, it.Segments[i+1].DepartureDate)
		if err != nil {
			return nil, err
		}
		stays = append(stays, days)
	}
	return stays, nil
}

// TotalDays returns the length of the whole trip in days, from the first
// departure to the last.
func (it Itinerary) TotalDays() (int, error) {
	if len(it.Segments) < 2 {
		return 0, nil
	}
	first := it.Segments[0].DepartureDate
	last := it.Segments[len(it.Segments)-1].DepartureDate
	return datetime.DaysBetween(first, last)
}

// RoundTripItinerary combines one or two round trips into a single itinerary:
// an outer origin<->stopover1 pair and an optional nested stopover1<->stopover2
// pair.
type RoundTripItinerary struct {
	Outer      RoundTripOption  `json:"roundtrip1_origin_stopover1"`
	Inner      *RoundTripOption `json:"roundtrip2_stopover1_stopover2,omitempty"`
	TotalPrice float64          `json:"total_price"`
}

// Stopover1Days returns the days spent at the first stopover, or 0 when no
// inner round trip exists (the stay is then implicit in the outer return date).
func (it RoundTripItinerary) Stopover1Days() (int, error) {
	if it.Inner == nil {
		return 0, nil
	}
	return datetime.DaysBetween(it.Outer.OutboundDate, it.Inner.OutboundDate)
}

// Stopover2Days returns the days spent at the second stopover, or 0 when no
// inner round trip exists.
func (it RoundTripItinerary) Stopover2Days() (int, error) {
	if it.Inner == nil {
		return 0, nil
	}
	return datetime.DaysBetween(it.Inner.OutboundDate, it.Inner.ReturnDate)
}

// TotalDays returns the length of the whole trip in days.
func (it RoundTripItinerary) TotalDays() (int, error) {
	return datetime.DaysBetween(it.Outer.OutboundDate, it.Outer.ReturnDate)
}
