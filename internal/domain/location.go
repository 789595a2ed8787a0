package domain

import "strconv"

// Immutable geographic coordinates (latitude, longitude).
type Location struct {
	Lat float64
	Lon float64
}

// String renders the canonical "lat,lon" form used in ephemeris queries.
func (l Location) String() string {
	return strconv.FormatFloat(l.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(l.Lon, 'f', -1, 64)
}
