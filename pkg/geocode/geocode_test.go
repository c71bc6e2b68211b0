package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeocode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "10 Downing Street, SW1A 2AA", r.URL.Query().Get("address"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": "OK",
			"results": [
				{"geometry": {"location": {"lat": 51.5034, "lng": -0.1276}}}
			]
		}`))
	}))
	defer server.Close()

	geocoder := NewGoogleGeocoder(Config{Endpoint: server.URL, APIKey: "test-key"})

	coords, err := geocoder.Geocode(context.Background(), "10 Downing Street", "SW1A 2AA")
	require.NoError(t, err)
	assert.InDelta(t, 51.5034, coords.Lat, 0.0001)
	assert.InDelta(t, -0.1276, coords.Lng, 0.0001)
}

func TestGeocodeNoResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
	}))
	defer server.Close()

	geocoder := NewGoogleGeocoder(Config{Endpoint: server.URL, APIKey: "test-key"})

	coords, err := geocoder.Geocode(context.Background(), "Nowhere Street", "XX0 0XX")
	require.Error(t, err)
	assert.Nil(t, coords)

	var noResults *ErrNoResults
	assert.ErrorAs(t, err, &noResults)
}

func TestGeocodeMissingAddress(t *testing.T) {
	geocoder := NewGoogleGeocoder(Config{APIKey: "test-key"})

	_, err := geocoder.Geocode(context.Background(), "", "SW1A 2AA")
	require.Error(t, err)

	_, err = geocoder.Geocode(context.Background(), "10 Downing Street", "")
	require.Error(t, err)
}

func TestGeocodeServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	geocoder := NewGoogleGeocoder(Config{Endpoint: server.URL, APIKey: "test-key"})

	_, err := geocoder.Geocode(context.Background(), "10 Downing Street", "SW1A 2AA")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}
