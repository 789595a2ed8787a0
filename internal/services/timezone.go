package services

import (
	"fmt"
	"time"

	"vedic-chart-service/internal/domain"
	"vedic-chart-service/internal/ports"
)

// ResolvedTime is the zone-aware rendering of a naive local date-time.
type ResolvedTime struct {
	ZoneName  string
	UTCOffset string
}

// ResolveTimezone finds the IANA zone covering a coordinate and localizes
// the naive date-time there, applying the zone database's rules for that
// date (historical DST included, not the zone's current offset). The
// offset comes back as signed ±HH:MM.
func ResolveTimezone(loc domain.Location, date, timeOfDay string, zones ports.ZoneFinder) (ResolvedTime, error) {
	zone := zones.ZoneName(loc.Lat, loc.Lon)
	if zone == "" {
		return ResolvedTime{}, &domain.TimezoneResolutionError{Reason: "no zone covers " + loc.String()}
	}

	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return ResolvedTime{}, &domain.FormatError{Field: "date", Value: date, Want: "YYYY-MM-DD"}
	}

	clock, err := time.Parse("15:04", timeOfDay)
	if err != nil {
		clock, err = time.Parse("15:04:05", timeOfDay)
		if err != nil {
			return ResolvedTime{}, &domain.FormatError{Field: "time", Value: timeOfDay, Want: "HH:MM or HH:MM:SS"}
		}
	}

	zoneLoc, err := time.LoadLocation(zone)
	if err != nil {
		return ResolvedTime{}, &domain.TimezoneResolutionError{Reason: fmt.Sprintf("load zone %q: %v", zone, err)}
	}

	hour, minute, second := clock.Clock()
	local := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, second, 0, zoneLoc)
	_, offsetSeconds := local.Zone()

	return ResolvedTime{ZoneName: zone, UTCOffset: formatOffset(offsetSeconds / 60)}, nil
}

// formatOffset renders whole minutes as ±HH:MM, sign always present.
func formatOffset(minutes int) string {
	sign := "+"
	if minutes < 0 {
		sign = "-"
		minutes = -minutes
	}
	return fmt.Sprintf("%s%02d:%02d", sign, minutes/60, minutes%60)
}
