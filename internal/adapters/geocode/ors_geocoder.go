package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"vedic-chart-service/internal/domain"
	"vedic-chart-service/internal/platform/obs"
)

const defaultBaseURL = "https://api.openrouteservice.org"

// Config carries the place-search credentials and endpoint. BaseURL is
// optional and exists mainly so tests can point the adapter at a local
// server.
type Config struct {
	APIKey  string
	BaseURL string
}

// ORSGeocoder resolves free-text places using the OpenRouteService place
// search. Lookups are single-shot: the first failure for a place is final
// (callers surface it; nothing here retries).
type ORSGeocoder struct {
	session *http.Client
	apiKey  string
	baseURL string
}

func NewORSGeocoder(cfg Config) (*ORSGeocoder, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("geocoder api key is empty")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &ORSGeocoder{
		session: &http.Client{Timeout: 10 * time.Second},
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

type geocodeResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"features"`
}

// Geocode resolves a place to the coordinates of its first search result.
// Every failure mode comes back as a *domain.GeocodeError.
func (o *ORSGeocoder) Geocode(ctx context.Context, place string) (_ domain.Location, err error) {
	defer obs.Time(ctx, "ors.geocode")(&err)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.baseURL+"/geocode/search", nil)
	if err != nil {
		return domain.Location{}, &domain.GeocodeError{Place: place, Reason: "build request: " + err.Error()}
	}
	req.Header.Set("Authorization", o.apiKey)
	req.Header.Set("Accept", "application/json")

	q := req.URL.Query()
	q.Set("text", place)
	q.Set("size", "1")
	req.URL.RawQuery = q.Encode()

	resp, err := o.session.Do(req)
	if err != nil {
		return domain.Location{}, &domain.GeocodeError{Place: place, Reason: "execute request: " + err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Location{}, &domain.GeocodeError{Place: place, Reason: "unexpected status " + resp.Status}
	}

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.Location{}, &domain.GeocodeError{Place: place, Reason: "decode response: " + err.Error()}
	}

	if len(decoded.Features) == 0 {
		return domain.Location{}, &domain.GeocodeError{Place: place, Reason: "no results"}
	}

	coords := decoded.Features[0].Geometry.Coordinates
	if len(coords) != 2 {
		return domain.Location{}, &domain.GeocodeError{Place: place, Reason: "result has no coordinate pair"}
	}

	// ORS geometry lists longitude first.
	return domain.Location{Lat: coords[1], Lon: coords[0]}, nil
}
