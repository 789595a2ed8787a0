package ephemeris

import (
	"context"

	"vedic-chart-service/internal/ports"
)

// MockEphemeris serves canned longitudes and proxy answers, recording what
// it was asked for.
type MockEphemeris struct {
	Longitudes map[string]float64
	Response   ports.ProxyResponse
	Err        error

	Calls        int
	LastLocation string
	LastTime     string
	LastEndpoint string
	LastParams   map[string]any
}

func (m *MockEphemeris) PlanetLongitudes(ctx context.Context, location, timeOfBirth string) (map[string]float64, error) {
	m.Calls++
	m.LastLocation = location
	m.LastTime = timeOfBirth
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Longitudes, nil
}

func (m *MockEphemeris) Proxy(ctx context.Context, endpoint string, params map[string]any) (ports.ProxyResponse, error) {
	m.Calls++
	m.LastEndpoint = endpoint
	m.LastParams = params
	if m.Err != nil {
		return ports.ProxyResponse{}, m.Err
	}
	return m.Response, nil
}
