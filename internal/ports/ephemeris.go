package ports

import "context"

// ProxyResponse is a raw upstream answer relayed without interpretation.
type ProxyResponse struct {
	Status      int
	ContentType string
	Body        []byte
}

// Port: a boundary for the external ephemeris service.
type Ephemeris interface {
	// Fetch per-planet longitudes for a location ("lat,lon" or place name)
	// at an absolute time in the service's "HH:MM[:SS]/DD/MM/YYYY/±HH:MM"
	// microformat. Planets the payload does not carry are absent from the
	// map; the caller decides which absences are fatal.
	PlanetLongitudes(ctx context.Context, location, timeOfBirth string) (map[string]float64, error)

	// Relay a single GET to an arbitrary ephemeris endpoint with the
	// service credentials attached. Any HTTP answer, success or not, is
	// returned as-is; only transport failures are errors.
	Proxy(ctx context.Context, endpoint string, params map[string]any) (ProxyResponse, error)
}
