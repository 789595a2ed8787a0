package ports

import (
	"context"

	"vedic-chart-service/internal/domain"
)

// Contract for resolving a free-text place description to coordinates.
type Geocoder interface {
	// Resolve the place to a single coordinate pair using the first result
	// of a place search. One lookup per call; failures are final.
	Geocode(ctx context.Context, place string) (domain.Location, error)
}
