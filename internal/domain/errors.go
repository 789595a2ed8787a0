package domain

import (
	"fmt"
	"strings"
)

// GeocodeError reports a place that could not be resolved to coordinates:
// empty result set, missing or unparseable coordinate fields, or a failed
// lookup request.
type GeocodeError struct {
	Place  string
	Reason string
}

func (e *GeocodeError) Error() string {
	return fmt.Sprintf("geocode %q: %s", e.Place, e.Reason)
}

// TimezoneResolutionError reports a coordinate no zone covers, or a zone
// that could not be loaded from the zone database.
type TimezoneResolutionError struct {
	Reason string
}

func (e *TimezoneResolutionError) Error() string {
	return "resolve timezone: " + e.Reason
}

// FormatError reports a malformed date, time or timezone string.
type FormatError struct {
	Field string
	Value string
	Want  string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid %s %q: want %s", e.Field, e.Value, e.Want)
}

// ExtractionError reports required planets still absent after the payload
// has been searched exhaustively.
type ExtractionError struct {
	Missing []string
}

func (e *ExtractionError) Error() string {
	return "ephemeris payload missing required planets: " + strings.Join(e.Missing, ", ")
}

// UpstreamError reports the external ephemeris service being unreachable or
// answering with a domain-level failure. Status is the upstream HTTP status
// when one was received, 0 for transport failures.
type UpstreamError struct {
	Status int
	Reason string
}

func (e *UpstreamError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("upstream status %d: %s", e.Status, e.Reason)
	}
	return "upstream: " + e.Reason
}
