// Package config defines the data structures related to configuration and
// includes functions for loading and parsing the config.
package config

import (
	"fmt"

	"github.com/cmalloy/trip-finder/pkg/constants"
	"github.com/cmalloy/trip-finder/pkg/datetime"
	"github.com/spf13/viper"
)

// DateLayout is the format expected in config files and is also the output
// date format.
const DateLayout = constants.DateLayout

// Configuration holds all configuration for trip-finder.
type Configuration struct {
	Search   SearchConfig
	Provider ProviderConfig
	Logging  LoggingConfig `yaml:"logging,omitempty"`
	Output   OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, json
	File   string `yaml:"file,omitempty"`   // results file for the json format
}

// ProviderConfig selects and parameterizes the flight-data collaborator.
type ProviderConfig struct {
	Type           string // fixture, http
	FixturePath    string
	BaseURL        string
	TimeoutSeconds int
}

// SearchConfig describes the itinerary to search for: the airports at each
// position, the candidate dates per segment or round trip, and the stay
// constraints.
type SearchConfig struct {
	Mode      string // segments, roundtrips
	Origins   []string
	Stopover1 []string
	Stopover2 []string
	ReturnVia string // direct (3 segments), stopover1 (4 segments)

	// SegmentDates holds one date specification per segment position, e.g.
	// "2026-02-05" or "2026-02-05:2026-02-07,2026-02-09".
	SegmentDates []string

	// Round-trip date specifications, outbound and return per round trip.
	RT1OutboundDates string
	RT1ReturnDates   string
	RT2OutboundDates string
	RT2ReturnDates   string

	MinStopover1Days int
	MinStopover2Days int
	TopN             int

	// Expanded by ParseDateLists.
	SegmentDateLists [][]string `yaml:"-"`
	RT1OutboundList  []string   `yaml:"-"`
	RT1ReturnList    []string   `yaml:"-"`
	RT2OutboundList  []string   `yaml:"-"`
	RT2ReturnList    []string   `yaml:"-"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	viper.SetDefault("search.mode", constants.ModeSegments)
	viper.SetDefault("search.returnVia", constants.ReturnDirect)
	viper.SetDefault("search.minStopover1Days", constants.DefaultMinStopover1Days)
	viper.SetDefault("search.minStopover2Days", constants.DefaultMinStopover2Days)
	viper.SetDefault("search.topN", constants.DefaultTopN)
	viper.SetDefault("provider.type", constants.ProviderFixture)
	viper.SetDefault("provider.timeoutSeconds", constants.DefaultProviderTimeoutSeconds)
	viper.SetDefault("output.file", constants.DefaultResultsFile)

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// SegmentPositions returns how many segment lists the configured itinerary
// shape requires: 2 without a second stopover, 3 with a direct return from
// stopover 2, 4 when the return routes back through stopover 1.
func (s *SearchConfig) SegmentPositions() int {
	if len(s.Stopover2) == 0 {
		return 2
	}
	if s.ReturnVia == constants.ReturnViaStopover1 {
		return 4
	}
	return 3
}

// ParseDateLists expands every date specification in the configuration into
// concrete per-position date lists and stores them back into the SearchConfig.
func (conf *Configuration) ParseDateLists() error {
	s := &conf.Search

	switch s.Mode {
	case constants.ModeSegments:
		positions := s.SegmentPositions()
		if len(s.SegmentDates) != positions {
			return fmt.Errorf("itinerary shape requires %d segment date specifications, got %d",
				positions, len(s.SegmentDates))
		}
		s.SegmentDateLists = make([][]string, 0, positions)
		for i, spec := range s.SegmentDates {
			dates, err := datetime.ExpandDateList(spec)
			if err != nil {
				return fmt.Errorf("segment %d dates: %w", i+1, err)
			}
			s.SegmentDateLists = append(s.SegmentDateLists, dates)
		}
		return nil

	case constants.ModeRoundTrips:
		var err error
		if s.RT1OutboundList, err = datetime.ExpandDateList(s.RT1OutboundDates); err != nil {
			return fmt.Errorf("round trip 1 outbound dates: %w", err)
		}
		if s.RT1ReturnList, err = datetime.ExpandDateList(s.RT1ReturnDates); err != nil {
			return fmt.Errorf("round trip 1 return dates: %w", err)
		}
		if len(s.Stopover2) == 0 {
			return nil
		}
		if s.RT2OutboundList, err = datetime.ExpandDateList(s.RT2OutboundDates); err != nil {
			return fmt.Errorf("round trip 2 outbound dates: %w", err)
		}
		if s.RT2ReturnList, err = datetime.ExpandDateList(s.RT2ReturnDates); err != nil {
			return fmt.Errorf("round trip 2 return dates: %w", err)
		}
		return nil

	default:
		return fmt.Errorf("unknown search mode %q", s.Mode)
	}
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string
	s := c.Search

	if s.Mode != constants.ModeSegments && s.Mode != constants.ModeRoundTrips {
		warnings = append(warnings, fmt.Sprintf("unknown search mode %q, expected %q or %q",
			s.Mode, constants.ModeSegments, constants.ModeRoundTrips))
	}
	if len(s.Origins) == 0 {
		warnings = append(warnings, "no origin airports configured")
	}
	if len(s.Stopover1) == 0 {
		warnings = append(warnings, "no stopover 1 airports configured")
	}
	if s.MinStopover1Days < 0 {
		warnings = append(warnings, fmt.Sprintf("minStopover1Days is negative (%d)", s.MinStopover1Days))
	}
	if s.MinStopover2Days < 0 {
		warnings = append(warnings, fmt.Sprintf("minStopover2Days is negative (%d)", s.MinStopover2Days))
	}
	if s.TopN <= 0 {
		warnings = append(warnings, fmt.Sprintf("topN is %d, the result set will be empty", s.TopN))
	}
	if s.Mode == constants.ModeSegments && s.ReturnVia != constants.ReturnDirect && s.ReturnVia != constants.ReturnViaStopover1 {
		warnings = append(warnings, fmt.Sprintf("unknown returnVia %q, expected %q or %q",
			s.ReturnVia, constants.ReturnDirect, constants.ReturnViaStopover1))
	}
	if s.Mode == constants.ModeRoundTrips && len(s.Stopover2) > 0 &&
		(s.RT2OutboundDates == "" || s.RT2ReturnDates == "") {
		warnings = append(warnings, "stopover 2 is configured but round trip 2 dates are missing")
	}

	switch c.Provider.Type {
	case constants.ProviderFixture:
		if c.Provider.FixturePath == "" {
			warnings = append(warnings, "fixture provider selected but no fixturePath configured")
		}
	case constants.ProviderHTTP:
		if c.Provider.BaseURL == "" {
			warnings = append(warnings, "http provider selected but no baseURL configured")
		}
	default:
		warnings = append(warnings, fmt.Sprintf("unknown provider type %q", c.Provider.Type))
	}

	return warnings
}
