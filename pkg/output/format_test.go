package output

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/cmalloy/trip-finder/internal/trip"
	"github.com/cmalloy/trip-finder/pkg/testutil"
)

func TestBuildSegmentResults(t *testing.T) {
	itineraries := []trip.Itinerary{
		{
			Segments: []trip.Segment{
				testutil.Segment("LHR", "HKG", "2026-02-05", 450),
				testutil.Segment("HKG", "TPE", "2026-02-10", 120),
				testutil.Segment("TPE", "LHR", "2026-02-21", 480),
			},
			TotalPrice: 1050,
		},
	}

	rows, err := BuildSegmentResults(itineraries)
	if err != nil {
		t.Fatalf("BuildSegmentResults() error = %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}

	row := rows[0]
	if row.TotalPrice != 1050 {
		t.Errorf("total price = %.2f, expected 1050", row.TotalPrice)
	}
	if row.TotalDays != 16 {
		t.Errorf("total days = %d, expected 16", row.TotalDays)
	}
	if len(row.StayDays) != 2 || row.StayDays[0] != 5 || row.StayDays[1] != 11 {
		t.Errorf("stay days = %v, expected [5 11]", row.StayDays)
	}
}

func TestBuildSegmentResultsMalformedDate(t *testing.T) {
	itineraries := []trip.Itinerary{
		{
			Segments: []trip.Segment{
				testutil.Segment("LHR", "HKG", "not-a-date", 450),
				testutil.Segment("HKG", "LHR", "2026-02-20", 430),
			},
		},
	}

	if _, err := BuildSegmentResults(itineraries); err == nil {
		t.Error("expected an error for a malformed segment date")
	}
}

func TestBuildRoundTripResults(t *testing.T) {
	inner := testutil.RoundTrip("HKG", "TPE", "2026-02-10", "2026-02-21", 260)
	itineraries := []trip.RoundTripItinerary{
		{
			Outer:      testutil.RoundTrip("LHR", "HKG", "2026-02-05", "2026-02-26", 820),
			Inner:      &inner,
			TotalPrice: 1080,
		},
		{
			Outer:      testutil.RoundTrip("LHR", "HKG", "2026-02-05", "2026-02-26", 820),
			TotalPrice: 820,
		},
	}

	rows, err := BuildRoundTripResults(itineraries)
	if err != nil {
		t.Fatalf("BuildRoundTripResults() error = %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	nested := rows[0]
	if nested.Stopover1Days != 5 || nested.Stopover2Days != 11 || nested.TotalDays != 21 {
		t.Errorf("nested days = %d/%d/%d, expected 5/11/21",
			nested.Stopover1Days, nested.Stopover2Days, nested.TotalDays)
	}
	if nested.RoundTrip2 == nil {
		t.Error("expected the nested round trip to be present")
	}

	single := rows[1]
	if single.Stopover1Days != 0 || single.Stopover2Days != 0 {
		t.Errorf("single round trip days = %d/%d, expected 0/0", single.Stopover1Days, single.Stopover2Days)
	}
	if single.RoundTrip2 != nil {
		t.Error("expected no nested round trip")
	}
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.json")
	rows := []SegmentItineraryResult{
		{
			TotalPrice: 880,
			TotalDays:  15,
			StayDays:   []int{15},
			Segments: []trip.Segment{
				testutil.Segment("LHR", "HKG", "2026-02-05", 450),
				testutil.Segment("HKG", "LHR", "2026-02-20", 430),
			},
		},
	}

	if err := WriteJSON(path, rows); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read results file: %v", err)
	}

	var decoded []SegmentItineraryResult
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("results file is not valid JSON: %v", err)
	}
	if len(decoded) != 1 || decoded[0].TotalPrice != 880 {
		t.Errorf("decoded results = %+v", decoded)
	}
	if len(decoded[0].Segments) != 2 {
		t.Errorf("expected 2 segments in the decoded result, got %d", len(decoded[0].Segments))
	}
}

func TestWriteJSONBadPath(t *testing.T) {
	if err := WriteJSON(filepath.Join(t.TempDir(), "missing", "results.json"), []SegmentItineraryResult{}); err == nil {
		t.Error("expected an error writing to a missing directory")
	}
}
