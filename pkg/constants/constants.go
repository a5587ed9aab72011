// Package constants provides shared constants for the trip-finder application.
package constants

// DateLayout is the calendar date format expected in config files, provider
// responses, and output. Itinerary-level reasoning uses dates only, no time
// component.
const DateLayout = "2006-01-02"

// Optimizer defaults
const (
	// DefaultMinStopover1Days is the default minimum stay at the first stopover
	DefaultMinStopover1Days = 4

	// DefaultMinStopover2Days is the default minimum stay at the second stopover
	DefaultMinStopover2Days = 10

	// DefaultTopN is the default number of cheapest itineraries to return
	DefaultTopN = 10
)

// Search mode constants
const (
	// ModeSegments searches ordered lists of single-segment options
	ModeSegments = "segments"

	// ModeRoundTrips searches lists of paired outbound+return options
	ModeRoundTrips = "roundtrips"
)

// Itinerary shape constants for the segment-chain mode
const (
	// ReturnDirect flies stopover2 -> origin directly (3 segments)
	ReturnDirect = "direct"

	// ReturnViaStopover1 routes the return through stopover1 (4 segments)
	ReturnViaStopover1 = "stopover1"
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatJSON is the machine-readable output format
	OutputFormatJSON = "json"
)

// Provider constants
const (
	// ProviderFixture loads candidate records from a local JSON fixture
	ProviderFixture = "fixture"

	// ProviderHTTP queries a flight-data HTTP endpoint
	ProviderHTTP = "http"

	// DefaultProviderTimeoutSeconds bounds a single provider request
	DefaultProviderTimeoutSeconds = 30
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"

	// DefaultResultsFile is the default JSON results file name
	DefaultResultsFile = "trip_results.json"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the search API
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum request body size for
	// candidate-list uploads (4 MB)
	DefaultMaxBodySizeBytes int64 = 4 * 1024 * 1024
)
