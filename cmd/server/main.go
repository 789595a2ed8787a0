package main

import (
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"vedic-chart-service/internal/adapters/ephemeris"
	"vedic-chart-service/internal/adapters/geocode"
	"vedic-chart-service/internal/adapters/timezone"
	"vedic-chart-service/internal/api"
	"vedic-chart-service/internal/config"
	"vedic-chart-service/internal/platform/snapshot"
)

// main is the application composition root.
// It wires concrete adapters (ORS, VedAstro, latlong) behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")

	orsKey := os.Getenv("ORS_API_KEY")
	if strings.TrimSpace(orsKey) == "" {
		log.Fatal("ORS_API_KEY is required")
	}
	vedastroKey := os.Getenv("VEDASTRO_API_KEY")
	if strings.TrimSpace(vedastroKey) == "" {
		log.Fatal("VEDASTRO_API_KEY is required")
	}

	geocoder, err := geocode.NewORSGeocoder(geocode.Config{APIKey: orsKey})
	if err != nil {
		log.Fatal(err)
	}

	eph, err := ephemeris.NewVedAstroClient(ephemeris.Config{
		APIKey:     vedastroKey,
		BaseURL:    config.Get("VEDASTRO_BASE_URL", ""),
		AuthHeader: config.Get("VEDASTRO_AUTH_HEADER", ""),
		AuthPrefix: config.Get("VEDASTRO_AUTH_PREFIX", ""),
	})
	if err != nil {
		log.Fatal(err)
	}

	zones := timezone.NewLatLongFinder()

	// Snapshots are opt-in: without a directory the chart handler skips them.
	var snapshots *snapshot.Writer
	if dir := config.Get("SNAPSHOT_DIR", ""); dir != "" {
		snapshots = snapshot.NewWriter(dir)
	}

	router := api.NewRouter(geocoder, zones, eph, snapshots)

	// Timeouts are tuned for chart building against the external ephemeris
	// (the VedAstro call alone may take tens of seconds).
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}
