package ports

// Contract for locating the IANA time zone covering a coordinate.
type ZoneFinder interface {
	// Return the zone identifier (e.g. "Europe/Paris") for the coordinate,
	// or "" when no zone covers it.
	ZoneName(lat, lon float64) string
}
