package api

import (
	"net/http"

	"vedic-chart-service/internal/api/handlers"
	"vedic-chart-service/internal/platform/snapshot"
	"vedic-chart-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
// A nil snapshot writer disables chart snapshots.
func NewRouter(
	geocoder ports.Geocoder,
	zones ports.ZoneFinder,
	eph ports.Ephemeris,
	snapshots *snapshot.Writer,
) http.Handler {
	mux := http.NewServeMux()

	chartHandler := &handlers.ChartHandler{
		Geocoder:  geocoder,
		Zones:     zones,
		Ephemeris: eph,
		Snapshots: snapshots,
	}
	proxyHandler := &handlers.VedAstroHandler{Ephemeris: eph}

	mux.HandleFunc("/", handlers.Root)
	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/panchang", handlers.Panchang)
	mux.HandleFunc("/chart", chartHandler.Build)
	mux.HandleFunc("/interpret", handlers.Interpret)
	mux.HandleFunc("/vedastro", proxyHandler.Proxy)

	return loggingMiddleware(mux)
}
