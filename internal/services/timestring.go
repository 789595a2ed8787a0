package services

import (
	"strings"

	"vedic-chart-service/internal/domain"
)

// BuildTimeString composes the absolute-time microformat the ephemeris
// query embeds in its URL path: "{time}/{day}/{month}/{year}/{tz}". The
// date components are reused verbatim from the dash-separated input, never
// reformatted.
func BuildTimeString(date, timeOfDay, tzOffset string) (string, error) {
	if timeOfDay == "" {
		return "", &domain.FormatError{Field: "time", Value: timeOfDay, Want: "HH:MM or HH:MM:SS"}
	}
	if tzOffset == "" {
		return "", &domain.FormatError{Field: "timezone", Value: tzOffset, Want: "±HH:MM"}
	}

	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		return "", &domain.FormatError{Field: "date", Value: date, Want: "YYYY-MM-DD"}
	}
	year, month, day := parts[0], parts[1], parts[2]

	return timeOfDay + "/" + day + "/" + month + "/" + year + "/" + tzOffset, nil
}
