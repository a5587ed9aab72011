package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/cmalloy/trip-finder/internal/trip"
)

// HTTPProvider queries a flight-data HTTP endpoint.
type HTTPProvider struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPProvider creates a new HTTPProvider.
func NewHTTPProvider(baseURL string, timeout time.Duration) *HTTPProvider {
	return &HTTPProvider{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// SearchSegments fetches single-segment options via HTTP GET.
func (p *HTTPProvider) SearchSegments(ctx context.Context, origin, destination, date string) ([]trip.Segment, error) {
	query := url.Values{}
	query.Set("origin", origin)
	query.Set("destination", destination)
	query.Set("date", date)

	var segments []trip.Segment
	if err := p.get(ctx, "/segments", query, &segments); err != nil {
		return nil, err
	}
	return segments, nil
}

// SearchRoundTrips fetches outbound+return pairs via HTTP GET.
func (p *HTTPProvider) SearchRoundTrips(ctx context.Context, origin, destination, outboundDate, returnDate string) ([]trip.RoundTripOption, error) {
	query := url.Values{}
	query.Set("origin", origin)
	query.Set("destination", destination)
	query.Set("outbound", outboundDate)
	query.Set("return", returnDate)

	var options []trip.RoundTripOption
	if err := p.get(ctx, "/roundtrips", query, &options); err != nil {
		return nil, err
	}
	return options, nil
}

func (p *HTTPProvider) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	u, err := url.Parse(p.baseURL + path)
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}
	u.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("provider returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	return nil
}
