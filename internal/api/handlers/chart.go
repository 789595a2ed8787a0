package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"

	"vedic-chart-service/internal/api/dto"
	"vedic-chart-service/internal/platform/snapshot"
	"vedic-chart-service/internal/ports"
	"vedic-chart-service/internal/services"
)

type ChartHandler struct {
	Geocoder  ports.Geocoder
	Zones     ports.ZoneFinder
	Ephemeris ports.Ephemeris
	Snapshots *snapshot.Writer
}

// Build orchestrates the full chart pipeline for one birth moment.
// It coordinates geocoding, timezone resolution, and the ephemeris fetch.
func (h *ChartHandler) Build(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.ChartRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	if strings.TrimSpace(req.Place) == "" {
		writeError(w, r, http.StatusBadRequest, "place is required")
		return
	}
	if strings.TrimSpace(req.Date) == "" {
		writeError(w, r, http.StatusBadRequest, "date is required")
		return
	}
	if strings.TrimSpace(req.Time) == "" {
		writeError(w, r, http.StatusBadRequest, "time is required")
		return
	}

	svcReq := services.ChartRequest{
		Place: req.Place,
		Date:  req.Date,
		Time:  req.Time,
	}

	result, err := services.BuildChart(r.Context(), svcReq, h.Geocoder, h.Zones, h.Ephemeris)
	if err != nil {
		log.Printf("build chart failed: %v", err)
		status, msg := errorStatus(err)
		writeError(w, r, status, msg)
		return
	}

	res := dto.ChartResponse{
		Location: result.Location,
		Timezone: dto.TimezoneResponse{
			Zone:      result.ZoneName,
			UTCOffset: result.UTCOffset,
		},
		TimeOfBirth: result.TimeOfBirth,
		Panchang:    panchangResponse(result.Panchang),
		Planets:     make([]dto.ChartPlanetResponse, 0, len(result.Planets)),
	}
	for _, p := range result.Planets {
		res.Planets = append(res.Planets, dto.ChartPlanetResponse{
			Name:         p.Name,
			Longitude:    p.Longitude,
			Sign:         p.Sign,
			DegreeInSign: p.DegreeInSign,
			Nakshatra:    p.Nakshatra,
			Pada:         p.Pada,
		})
	}

	if h.Snapshots != nil {
		if path, err := h.Snapshots.Write(res); err != nil {
			log.Printf("chart snapshot failed: %v", err)
		} else {
			log.Printf("chart snapshot written: path=%s", path)
		}
	}

	writeJSON(w, r, http.StatusOK, res)
}
