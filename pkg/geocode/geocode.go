// Package geocode resolves street addresses to coordinates through the
// Google Geocoding API.
package geocode

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/tidwall/gjson"
)

//go:generate mockgen -destination=../mocks/mock_geocoder.go -package=mocks github.com/koinonia-app/koinonia/pkg/geocode Geocoder

// Coordinates is a WGS84 latitude/longitude pair.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Geocoder resolves an address plus postal code to coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, address, postalCode string) (*Coordinates, error)
}

// ErrNoResults is returned when the provider recognizes the request but
// finds no matching location.
type ErrNoResults struct {
	Address string
}

func (e *ErrNoResults) Error() string {
	return fmt.Sprintf("no geocoding results for address: %s", e.Address)
}

// Config holds the configuration for the Google geocoder
type Config struct {
	Endpoint string
	APIKey   string
}

type googleGeocoder struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

// NewGoogleGeocoder creates a geocoder backed by the Google Geocoding API.
func NewGoogleGeocoder(cfg Config) Geocoder {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = "https://maps.googleapis.com/maps/api/geocode/json"
	}
	return &googleGeocoder{
		endpoint: endpoint,
		apiKey:   cfg.APIKey,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (g *googleGeocoder) Geocode(ctx context.Context, address, postalCode string) (*Coordinates, error) {
	if address == "" || postalCode == "" {
		return nil, fmt.Errorf("address and postal code are required for geocoding")
	}

	fullAddress := fmt.Sprintf("%s, %s", address, postalCode)

	params := url.Values{}
	params.Set("address", fullAddress)
	params.Set("key", g.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create geocoding request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocoding request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoding request returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read geocoding response: %w", err)
	}

	status := gjson.GetBytes(body, "status").String()
	if status != "OK" {
		return nil, &ErrNoResults{Address: fullAddress}
	}

	location := gjson.GetBytes(body, "results.0.geometry.location")
	if !location.Exists() {
		return nil, &ErrNoResults{Address: fullAddress}
	}

	return &Coordinates{
		Lat: location.Get("lat").Float(),
		Lng: location.Get("lng").Float(),
	}, nil
}
