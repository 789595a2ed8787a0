package services

import (
	"context"
	"fmt"

	"vedic-chart-service/internal/domain"
	"vedic-chart-service/internal/ports"
)

type ChartRequest struct {
	Place string
	Date  string
	Time  string
}

// PlanetSummary is one planet's placement derived from its longitude.
type PlanetSummary struct {
	Name         string
	Longitude    float64
	Sign         string
	DegreeInSign float64
	Nakshatra    string
	Pada         int
}

// ChartResult is the full answer for one birth moment: where and when the
// query resolved to, the Panchang limbs, and a summary per planet the
// ephemeris reported.
type ChartResult struct {
	Location    string
	ZoneName    string
	UTCOffset   string
	TimeOfBirth string
	Panchang    domain.Panchang
	Planets     []PlanetSummary
}

// BuildChart runs the whole pipeline for a birth moment: resolve the place
// to coordinates, the coordinates and local time to a zone and offset,
// compose the ephemeris time string, fetch longitudes, and derive the
// Panchang. Sun and Moon are required; every other planet is summarized
// only if the payload carried it.
func BuildChart(
	ctx context.Context,
	req ChartRequest,
	geocoder ports.Geocoder,
	zones ports.ZoneFinder,
	eph ports.Ephemeris,
) (*ChartResult, error) {
	loc, locString, err := ResolveLocation(ctx, req.Place, geocoder)
	if err != nil {
		return nil, fmt.Errorf("build chart: resolve location: %w", err)
	}

	resolved, err := ResolveTimezone(loc, req.Date, req.Time, zones)
	if err != nil {
		return nil, fmt.Errorf("build chart: resolve timezone: %w", err)
	}

	timeOfBirth, err := BuildTimeString(req.Date, req.Time, resolved.UTCOffset)
	if err != nil {
		return nil, fmt.Errorf("build chart: build time string: %w", err)
	}

	longitudes, err := eph.PlanetLongitudes(ctx, locString, timeOfBirth)
	if err != nil {
		return nil, fmt.Errorf("build chart: fetch planet data: %w", err)
	}

	sun, sunOK := longitudes["Sun"]
	moon, moonOK := longitudes["Moon"]
	if !sunOK || !moonOK {
		missing := make([]string, 0, 2)
		if !sunOK {
			missing = append(missing, "Sun")
		}
		if !moonOK {
			missing = append(missing, "Moon")
		}
		return nil, &domain.ExtractionError{Missing: missing}
	}

	planets := make([]PlanetSummary, 0, len(longitudes))
	for _, name := range domain.PlanetNames {
		lon, ok := longitudes[name]
		if !ok {
			continue
		}
		rashi := domain.RashiFor(lon)
		nakshatra := domain.NakshatraFor(lon)
		planets = append(planets, PlanetSummary{
			Name:         name,
			Longitude:    domain.NormalizeDegrees(lon),
			Sign:         rashi.Name,
			DegreeInSign: rashi.DegreeInSign,
			Nakshatra:    nakshatra.Name,
			Pada:         nakshatra.Pada,
		})
	}

	return &ChartResult{
		Location:    locString,
		ZoneName:    resolved.ZoneName,
		UTCOffset:   resolved.UTCOffset,
		TimeOfBirth: timeOfBirth,
		Panchang:    domain.PanchangFor(sun, moon),
		Planets:     planets,
	}, nil
}
