package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"vedic-chart-service/internal/domain"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// errorStatus maps a pipeline error to an HTTP status and client-facing
// message. Unrecognized errors surface as a bare internal server error.
func errorStatus(err error) (int, string) {
	var (
		formatErr   *domain.FormatError
		geocodeErr  *domain.GeocodeError
		zoneErr     *domain.TimezoneResolutionError
		extractErr  *domain.ExtractionError
		upstreamErr *domain.UpstreamError
	)
	switch {
	case errors.As(err, &formatErr):
		return http.StatusBadRequest, formatErr.Error()
	case errors.As(err, &geocodeErr):
		return http.StatusBadRequest, geocodeErr.Error()
	case errors.As(err, &zoneErr):
		return http.StatusBadRequest, zoneErr.Error()
	case errors.As(err, &extractErr):
		return http.StatusBadGateway, extractErr.Error()
	case errors.As(err, &upstreamErr):
		return http.StatusBadGateway, upstreamErr.Error()
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}
