package timezone

import "github.com/bradfitz/latlong"

// LatLongFinder maps coordinates to IANA zone names using the embedded
// bradfitz/latlong tables. The lookup is offline, so it never fails with
// an error; uncovered coordinates come back as an empty name.
type LatLongFinder struct{}

func NewLatLongFinder() *LatLongFinder {
	return &LatLongFinder{}
}

func (f *LatLongFinder) ZoneName(lat, lon float64) string {
	return latlong.LookupZoneName(lat, lon)
}
