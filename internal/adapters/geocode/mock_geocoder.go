package geocode

import (
	"context"

	"vedic-chart-service/internal/domain"
)

// MockGeocoder answers every lookup with a fixed location or error and
// counts calls so tests can assert how often the network would be hit.
type MockGeocoder struct {
	Location domain.Location
	Err      error

	Calls     int
	LastPlace string
}

func (m *MockGeocoder) Geocode(ctx context.Context, place string) (domain.Location, error) {
	m.Calls++
	m.LastPlace = place
	if m.Err != nil {
		return domain.Location{}, m.Err
	}
	return m.Location, nil
}
