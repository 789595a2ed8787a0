package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"

	"vedic-chart-service/internal/api/dto"
	"vedic-chart-service/internal/ports"
)

type VedAstroHandler struct {
	Ephemeris ports.Ephemeris
}

// Proxy forwards an arbitrary VedAstro calculator call and relays whatever
// the upstream answered, status and body included. Only transport failures
// are translated into an error envelope.
func (h *VedAstroHandler) Proxy(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.VedAstroRequest

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

	if strings.TrimSpace(req.Endpoint) == "" {
		writeError(w, r, http.StatusBadRequest, "endpoint is required")
		return
	}

	res, err := h.Ephemeris.Proxy(r.Context(), req.Endpoint, req.Params)
	if err != nil {
		log.Printf("vedastro proxy failed: %v", err)
		status, msg := errorStatus(err)
		writeError(w, r, status, msg)
		return
	}

	contentType := res.ContentType
	if contentType == "" {
		contentType = "application/json"
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(res.Status)
	if _, err := w.Write(res.Body); err != nil {
		log.Printf("proxy write failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}
