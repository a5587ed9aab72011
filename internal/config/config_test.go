package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cmalloy/trip-finder/pkg/constants"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadConfiguration(t *testing.T) {
	path := writeConfig(t, `
search:
  mode: segments
  origins: [LHR, LGW]
  stopover1: [HKG]
  stopover2: [TPE]
  segmentDates:
    - "2026-02-05"
    - "2026-02-10"
    - "2026-02-21"
  minStopover1Days: 3
  minStopover2Days: 7
  topN: 5
provider:
  type: fixture
  fixturePath: fixtures/flights.json
logging:
  level: debug
output:
  format: json
`)

	conf, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if conf.Search.Mode != constants.ModeSegments {
		t.Errorf("mode = %q, expected segments", conf.Search.Mode)
	}
	if len(conf.Search.Origins) != 2 {
		t.Errorf("expected 2 origins, got %d", len(conf.Search.Origins))
	}
	if conf.Search.MinStopover1Days != 3 || conf.Search.MinStopover2Days != 7 {
		t.Errorf("thresholds = %d/%d, expected 3/7", conf.Search.MinStopover1Days, conf.Search.MinStopover2Days)
	}
	if conf.Search.TopN != 5 {
		t.Errorf("topN = %d, expected 5", conf.Search.TopN)
	}
	if conf.Provider.FixturePath != "fixtures/flights.json" {
		t.Errorf("fixturePath = %q", conf.Provider.FixturePath)
	}
	if conf.Logging.Level != "debug" {
		t.Errorf("logging level = %q, expected debug", conf.Logging.Level)
	}
}

func TestLoadConfigurationDefaults(t *testing.T) {
	path := writeConfig(t, `
search:
  origins: [LHR]
  stopover1: [HKG]
  segmentDates:
    - "2026-02-05"
    - "2026-02-15"
provider:
  type: fixture
  fixturePath: fixtures/flights.json
`)

	conf, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if conf.Search.Mode != constants.ModeSegments {
		t.Errorf("default mode = %q, expected segments", conf.Search.Mode)
	}
	if conf.Search.MinStopover1Days != constants.DefaultMinStopover1Days {
		t.Errorf("default minStopover1Days = %d, expected %d", conf.Search.MinStopover1Days, constants.DefaultMinStopover1Days)
	}
	if conf.Search.MinStopover2Days != constants.DefaultMinStopover2Days {
		t.Errorf("default minStopover2Days = %d, expected %d", conf.Search.MinStopover2Days, constants.DefaultMinStopover2Days)
	}
	if conf.Search.TopN != constants.DefaultTopN {
		t.Errorf("default topN = %d, expected %d", conf.Search.TopN, constants.DefaultTopN)
	}
	if conf.Search.ReturnVia != constants.ReturnDirect {
		t.Errorf("default returnVia = %q, expected direct", conf.Search.ReturnVia)
	}
	if conf.Output.File != constants.DefaultResultsFile {
		t.Errorf("default output file = %q, expected %q", conf.Output.File, constants.DefaultResultsFile)
	}
}

func TestSegmentPositions(t *testing.T) {
	tests := []struct {
		name      string
		stopover2 []string
		returnVia string
		expected  int
	}{
		{name: "single stopover", stopover2: nil, returnVia: constants.ReturnDirect, expected: 2},
		{name: "double stopover direct return", stopover2: []string{"TPE"}, returnVia: constants.ReturnDirect, expected: 3},
		{name: "double stopover via stopover1", stopover2: []string{"TPE"}, returnVia: constants.ReturnViaStopover1, expected: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := SearchConfig{Stopover2: tt.stopover2, ReturnVia: tt.returnVia}
			if got := s.SegmentPositions(); got != tt.expected {
				t.Errorf("SegmentPositions() = %d, expected %d", got, tt.expected)
			}
		})
	}
}

func TestParseDateListsSegments(t *testing.T) {
	conf := Configuration{
		Search: SearchConfig{
			Mode:      constants.ModeSegments,
			Origins:   []string{"LHR"},
			Stopover1: []string{"HKG"},
			Stopover2: []string{"TPE"},
			ReturnVia: constants.ReturnDirect,
			SegmentDates: []string{
				"2026-02-05",
				"2026-02-10:2026-02-12",
				"2026-02-21,2026-02-22",
			},
		},
	}

	if err := conf.ParseDateLists(); err != nil {
		t.Fatalf("ParseDateLists() error = %v", err)
	}

	lists := conf.Search.SegmentDateLists
	if len(lists) != 3 {
		t.Fatalf("expected 3 date lists, got %d", len(lists))
	}
	if len(lists[0]) != 1 || len(lists[1]) != 3 || len(lists[2]) != 2 {
		t.Errorf("list sizes = %d/%d/%d, expected 1/3/2", len(lists[0]), len(lists[1]), len(lists[2]))
	}
}

func TestParseDateListsWrongPositionCount(t *testing.T) {
	conf := Configuration{
		Search: SearchConfig{
			Mode:         constants.ModeSegments,
			Origins:      []string{"LHR"},
			Stopover1:    []string{"HKG"},
			SegmentDates: []string{"2026-02-05"},
		},
	}

	if err := conf.ParseDateLists(); err == nil {
		t.Error("expected an error when segment date specs do not match the itinerary shape")
	}
}

func TestParseDateListsRoundTrips(t *testing.T) {
	conf := Configuration{
		Search: SearchConfig{
			Mode:             constants.ModeRoundTrips,
			Origins:          []string{"LHR"},
			Stopover1:        []string{"HKG"},
			Stopover2:        []string{"TPE"},
			RT1OutboundDates: "2026-02-05:2026-02-06",
			RT1ReturnDates:   "2026-02-26",
			RT2OutboundDates: "2026-02-10",
			RT2ReturnDates:   "2026-02-21",
		},
	}

	if err := conf.ParseDateLists(); err != nil {
		t.Fatalf("ParseDateLists() error = %v", err)
	}
	if len(conf.Search.RT1OutboundList) != 2 {
		t.Errorf("RT1 outbound list has %d dates, expected 2", len(conf.Search.RT1OutboundList))
	}
	if len(conf.Search.RT2ReturnList) != 1 {
		t.Errorf("RT2 return list has %d dates, expected 1", len(conf.Search.RT2ReturnList))
	}
}

func TestParseDateListsUnknownMode(t *testing.T) {
	conf := Configuration{Search: SearchConfig{Mode: "teleport"}}
	if err := conf.ParseDateLists(); err == nil {
		t.Error("expected an error for an unknown mode")
	}
}

func TestValidateConfiguration(t *testing.T) {
	conf := Configuration{
		Search: SearchConfig{
			Mode:             "teleport",
			MinStopover1Days: -1,
			TopN:             0,
			ReturnVia:        "direct",
		},
		Provider: ProviderConfig{Type: "fixture"},
	}

	warnings := conf.ValidateConfiguration()
	if len(warnings) == 0 {
		t.Fatal("expected warnings for an invalid configuration")
	}

	// Unknown mode, no origins, no stopover1, negative threshold, zero topN,
	// and a fixture provider without a path should each be flagged.
	if len(warnings) < 6 {
		t.Errorf("expected at least 6 warnings, got %d: %v", len(warnings), warnings)
	}
}

func TestValidateConfigurationClean(t *testing.T) {
	conf := Configuration{
		Search: SearchConfig{
			Mode:             constants.ModeSegments,
			Origins:          []string{"LHR"},
			Stopover1:        []string{"HKG"},
			ReturnVia:        constants.ReturnDirect,
			MinStopover1Days: 4,
			MinStopover2Days: 10,
			TopN:             10,
		},
		Provider: ProviderConfig{Type: constants.ProviderFixture, FixturePath: "fixtures/flights.json"},
	}

	if warnings := conf.ValidateConfiguration(); len(warnings) != 0 {
		t.Errorf("expected no warnings, got %v", warnings)
	}
}
