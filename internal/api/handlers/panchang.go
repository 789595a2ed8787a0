package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"vedic-chart-service/internal/api/dto"
	"vedic-chart-service/internal/domain"
)

// Panchang computes the lunisolar elements from a pair of sidereal
// longitudes supplied by the caller. No ephemeris call is involved.
func Panchang(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.PanchangRequest

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

	if req.Sun == nil || req.Moon == nil {
		writeError(w, r, http.StatusBadRequest, "sun and moon longitudes are required")
		return
	}

	p := domain.PanchangFor(*req.Sun, *req.Moon)
	writeJSON(w, r, http.StatusOK, panchangResponse(p))
}

func panchangResponse(p domain.Panchang) dto.PanchangResponse {
	return dto.PanchangResponse{
		Tithi: dto.TithiResponse{
			Index:    p.Tithi.Index,
			Name:     p.Tithi.Name,
			Paksha:   p.Tithi.Paksha,
			Progress: p.Tithi.Progress,
		},
		Nakshatra: dto.NakshatraResponse{
			Index:    p.Nakshatra.Index,
			Name:     p.Nakshatra.Name,
			Pada:     p.Nakshatra.Pada,
			Progress: p.Nakshatra.Progress,
		},
		Yoga: dto.ElementResponse{
			Index:    p.Yoga.Index,
			Name:     p.Yoga.Name,
			Progress: p.Yoga.Progress,
		},
		Karana: dto.ElementResponse{
			Index:    p.Karana.Index,
			Name:     p.Karana.Name,
			Progress: p.Karana.Progress,
		},
	}
}
