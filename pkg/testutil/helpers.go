// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/cmalloy/trip-finder/internal/trip"
)

// Segment builds a segment record with plausible descriptive attributes.
func Segment(origin, destination, date string, price float64) trip.Segment {
	return trip.Segment{
		Origin:        origin,
		Destination:   destination,
		DepartureDate: date,
		Price:         price,
		Airline:       "TestAir",
		DepartureTime: "10:00",
		ArrivalTime:   "18:00",
		Duration:      "8h",
		Stops:         0,
	}
}

// RoundTrip builds a round-trip record with plausible descriptive attributes.
func RoundTrip(origin, destination, outboundDate, returnDate string, totalPrice float64) trip.RoundTripOption {
	return trip.RoundTripOption{
		Origin:                origin,
		Destination:           destination,
		OutboundDate:          outboundDate,
		ReturnDate:            returnDate,
		TotalPrice:            totalPrice,
		OutboundAirline:       "TestAir",
		ReturnAirline:         "TestAir",
		OutboundDepartureTime: "10:00",
		OutboundArrivalTime:   "18:00",
		OutboundDuration:      "8h",
		ReturnDepartureTime:   "20:00",
		ReturnArrivalTime:     "06:00",
		ReturnDuration:        "10h",
	}
}
