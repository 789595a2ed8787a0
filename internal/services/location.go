package services

import (
	"context"
	"strconv"
	"strings"

	"vedic-chart-service/internal/domain"
	"vedic-chart-service/internal/ports"
)

// ResolveLocation turns a free-text place into coordinates plus the string
// form the ephemeris query should carry. A place that is already exactly
// two comma-separated floats passes through untouched with no lookup;
// anything else goes to the geocoder exactly once.
func ResolveLocation(ctx context.Context, place string, geocoder ports.Geocoder) (domain.Location, string, error) {
	if loc, ok := parseLatLon(place); ok {
		return loc, place, nil
	}

	loc, err := geocoder.Geocode(ctx, place)
	if err != nil {
		return domain.Location{}, "", err
	}
	return loc, loc.String(), nil
}

func parseLatLon(place string) (domain.Location, bool) {
	parts := strings.Split(place, ",")
	if len(parts) != 2 {
		return domain.Location{}, false
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return domain.Location{}, false
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return domain.Location{}, false
	}

	return domain.Location{Lat: lat, Lon: lon}, true
}
