package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"vedic-chart-service/internal/api/dto"
	"vedic-chart-service/internal/domain"
	"vedic-chart-service/internal/services"
)

// Interpret builds the analyst prompt and a deterministic reading for a
// caller-supplied natal chart. Every field is optional; the services layer
// fills in style and output defaults.
func Interpret(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.InterpretRequest

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

	chart := natalChartInput(req)
	result := services.InterpretChart(chart)

	writeJSON(w, r, http.StatusOK, dto.InterpretResponse{
		Prompt:         result.Prompt,
		Interpretation: result.Interpretation,
	})
}

func natalChartInput(req dto.InterpretRequest) domain.NatalChartInput {
	chart := domain.NatalChartInput{
		Ayanamsa:            req.Ayanamsa,
		FocusAreas:          req.FocusAreas,
		Questions:           req.Questions,
		InterpretationStyle: req.InterpretationStyle,
		RequiredOutputs:     req.RequiredOutputs,
		Notes:               req.Notes,
	}

	if req.Birth != nil {
		chart.Birth = &domain.BirthData{
			Date:     req.Birth.Date,
			Time:     req.Birth.Time,
			Timezone: req.Birth.Timezone,
			Location: req.Birth.Location,
		}
	}

	for _, p := range req.Planets {
		chart.Planets = append(chart.Planets, domain.PlanetPosition{
			Name:      p.Name,
			Longitude: p.Longitude,
			Sign:      p.Sign,
			House:     p.House,
			Nakshatra: p.Nakshatra,
			Pada:      p.Pada,
		})
	}
	for _, h := range req.Houses {
		chart.Houses = append(chart.Houses, domain.HousePosition{
			Number:    h.Number,
			Sign:      h.Sign,
			Lord:      h.Lord,
			Longitude: h.Longitude,
		})
	}
	for _, a := range req.Aspects {
		chart.Aspects = append(chart.Aspects, domain.Aspect{
			Source: a.Source,
			Target: a.Target,
			Type:   a.Type,
			Orb:    a.Orb,
		})
	}

	return chart
}
