// Package output provides utilities for formatting and displaying search
// results.
package output

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/cmalloy/trip-finder/internal/trip"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// SegmentItineraryResult is the serializable form of a segment-chain result.
type SegmentItineraryResult struct {
	TotalPrice float64        `json:"total_price"`
	TotalDays  int            `json:"total_days"`
	StayDays   []int          `json:"stay_days"`
	Segments   []trip.Segment `json:"segments"`
}

// RoundTripItineraryResult is the serializable form of a round-trip result.
type RoundTripItineraryResult struct {
	TotalPrice    float64               `json:"total_price"`
	TotalDays     int                   `json:"total_days"`
	Stopover1Days int                   `json:"stopover1_days"`
	Stopover2Days int                   `json:"stopover2_days"`
	RoundTrip1    trip.RoundTripOption  `json:"roundtrip1_origin_stopover1"`
	RoundTrip2    *trip.RoundTripOption `json:"roundtrip2_stopover1_stopover2,omitempty"`
}

// BuildSegmentResults converts itineraries into their serializable form,
// deriving trip length and per-stopover stays.
func BuildSegmentResults(results []trip.Itinerary) ([]SegmentItineraryResult, error) {
	rows := make([]SegmentItineraryResult, 0, len(results))
	for _, it := range results {
		stays, err := it.StayDays()
		if err != nil {
			return nil, err
		}
		totalDays, err := it.TotalDays()
		if err != nil {
			return nil, err
		}
		rows = append(rows, SegmentItineraryResult{
			TotalPrice: it.TotalPrice,
			TotalDays:  totalDays,
			StayDays:   stays,
			Segments:   it.Segments,
		})
	}
	return rows, nil
}

// BuildRoundTripResults converts round-trip itineraries into their
// serializable form.
func BuildRoundTripResults(results []trip.RoundTripItinerary) ([]RoundTripItineraryResult, error) {
	rows := make([]RoundTripItineraryResult, 0, len(results))
	for _, it := range results {
		stop1, err := it.Stopover1Days()
		if err != nil {
			return nil, err
		}
		stop2, err := it.Stopover2Days()
		if err != nil {
			return nil, err
		}
		totalDays, err := it.TotalDays()
		if err != nil {
			return nil, err
		}
		rows = append(rows, RoundTripItineraryResult{
			TotalPrice:    it.TotalPrice,
			TotalDays:     totalDays,
			Stopover1Days: stop1,
			Stopover2Days: stop2,
			RoundTrip1:    it.Outer,
			RoundTrip2:    it.Inner,
		})
	}
	return rows, nil
}

// PrettyFormatSegments outputs a human-readable report of ranked segment-chain
// itineraries.
func PrettyFormatSegments(results []trip.Itinerary) error {
	p := message.NewPrinter(language.English)
	rows, err := BuildSegmentResults(results)
	if err != nil {
		return err
	}

	for i, row := range rows {
		_, _ = p.Printf("--- Option #%d | total %.2f | %d days ---\n", i+1, row.TotalPrice, row.TotalDays)
		for j, s := range row.Segments {
			_, _ = p.Printf("  Segment %d: %s -> %s on %s\n", j+1, s.Origin, s.Destination, s.DepartureDate)
			_, _ = p.Printf("    %s | %s -> %s | %s | %d stops | %.2f\n",
				s.Airline, s.DepartureTime, s.ArrivalTime, s.Duration, s.Stops, s.Price)
			if j < len(row.StayDays) {
				fmt.Printf("    Stay before next segment: %d days\n", row.StayDays[j])
			}
		}
		if i < len(rows)-1 {
			fmt.Printf("\n")
		}
	}
	return nil
}

// PrettyFormatRoundTrips outputs a human-readable report of ranked round-trip
// itineraries.
func PrettyFormatRoundTrips(results []trip.RoundTripItinerary) error {
	p := message.NewPrinter(language.English)
	rows, err := BuildRoundTripResults(results)
	if err != nil {
		return err
	}

	for i, row := range rows {
		_, _ = p.Printf("--- Option #%d | total %.2f | %d days ---\n", i+1, row.TotalPrice, row.TotalDays)
		printRoundTrip(p, "Round trip 1", row.RoundTrip1)
		if row.RoundTrip2 != nil {
			fmt.Printf("  Stay at stopover 1: %d days\n", row.Stopover1Days)
			printRoundTrip(p, "Round trip 2", *row.RoundTrip2)
			fmt.Printf("  Stay at stopover 2: %d days\n", row.Stopover2Days)
		}
		if i < len(rows)-1 {
			fmt.Printf("\n")
		}
	}
	return nil
}

func printRoundTrip(p *message.Printer, label string, rt trip.RoundTripOption) {
	_, _ = p.Printf("  %s: %s <-> %s | %.2f\n", label, rt.Origin, rt.Destination, rt.TotalPrice)
	_, _ = p.Printf("    Outbound %s: %s | %s -> %s | %s | %d stops\n",
		rt.OutboundDate, rt.OutboundAirline, rt.OutboundDepartureTime, rt.OutboundArrivalTime, rt.OutboundDuration, rt.OutboundStops)
	_, _ = p.Printf("    Return   %s: %s | %s -> %s | %s | %d stops\n",
		rt.ReturnDate, rt.ReturnAirline, rt.ReturnDepartureTime, rt.ReturnArrivalTime, rt.ReturnDuration, rt.ReturnStops)
}

// WriteJSON writes the given results to path as indented JSON.
func WriteJSON(path string, results interface{}) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write results to %s: %w", path, err)
	}
	return nil
}
