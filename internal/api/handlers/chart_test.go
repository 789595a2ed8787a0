package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"vedic-chart-service/internal/adapters/ephemeris"
	"vedic-chart-service/internal/adapters/geocode"
	"vedic-chart-service/internal/adapters/timezone"
	"vedic-chart-service/internal/api/dto"
	"vedic-chart-service/internal/domain"
	"vedic-chart-service/internal/platform/snapshot"
)

func chartHandler() (*ChartHandler, *ephemeris.MockEphemeris) {
	eph := &ephemeris.MockEphemeris{Longitudes: map[string]float64{
		"Sun":  280.5,
		"Moon": 95.25,
	}}
	h := &ChartHandler{
		Geocoder:  &geocode.MockGeocoder{},
		Zones:     &timezone.MockZoneFinder{Zone: "Asia/Kolkata"},
		Ephemeris: eph,
	}
	return h, eph
}

func TestChartBuildFullResponse(t *testing.T) {
	h, eph := chartHandler()

	body := `{"place": "13.08,80.27", "date": "1990-11-03", "time": "23:45"}`
	rec := postJSON(t, h.Build, "/chart", body)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var res dto.ChartResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if res.Location != "13.08,80.27" {
		t.Errorf("location = %q, want the passthrough form", res.Location)
	}
	if res.Timezone.Zone != "Asia/Kolkata" || res.Timezone.UTCOffset != "+05:30" {
		t.Errorf("timezone = %+v", res.Timezone)
	}
	if res.TimeOfBirth != "23:45/03/11/1990/+05:30" {
		t.Errorf("time of birth = %q", res.TimeOfBirth)
	}
	if eph.LastTime != res.TimeOfBirth {
		t.Errorf("ephemeris queried with %q, response reports %q", eph.LastTime, res.TimeOfBirth)
	}

	if res.Panchang.Tithi.Index != 15 || res.Panchang.Tithi.Name != "Purnima" {
		t.Errorf("tithi = %+v, want index 15 Purnima", res.Panchang.Tithi)
	}
	if res.Panchang.Tithi.Progress != 0.5625 {
		t.Errorf("tithi progress = %v, want 0.5625", res.Panchang.Tithi.Progress)
	}

	if len(res.Planets) != 2 {
		t.Fatalf("got %d planets, want 2", len(res.Planets))
	}
	if res.Planets[0].Name != "Sun" || res.Planets[1].Name != "Moon" {
		t.Errorf("planet order = %q, %q, want Sun then Moon", res.Planets[0].Name, res.Planets[1].Name)
	}
	sun := res.Planets[0]
	if sun.Longitude != 280.5 || sun.Sign != "Makara" {
		t.Errorf("sun = %+v, want 280.5 in Makara", sun)
	}
}

func TestChartBuildWritesSnapshot(t *testing.T) {
	h, _ := chartHandler()
	dir := t.TempDir()
	h.Snapshots = snapshot.NewWriter(dir)

	body := `{"place": "13.08,80.27", "date": "1990-11-03", "time": "23:45"}`
	rec := postJSON(t, h.Build, "/chart", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	matches, err := filepath.Glob(filepath.Join(dir, "chart-*.json"))
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("got %d snapshot files, want 1", len(matches))
	}

	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read snapshot: %v", err)
	}
	if !strings.Contains(string(data), `"panchang"`) {
		t.Errorf("snapshot does not contain the chart response: %s", data)
	}
}

func TestChartBuildValidatesInput(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"missing place", `{"date": "1990-11-03", "time": "23:45"}`},
		{"blank place", `{"place": "  ", "date": "1990-11-03", "time": "23:45"}`},
		{"missing date", `{"place": "13.08,80.27", "time": "23:45"}`},
		{"missing time", `{"place": "13.08,80.27", "date": "1990-11-03"}`},
		{"unknown field", `{"place": "a", "date": "b", "time": "c", "tz": "d"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h, eph := chartHandler()
			rec := postJSON(t, h.Build, "/chart", tc.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
			}
			if eph.Calls != 0 {
				t.Errorf("ephemeris called %d times for a rejected request", eph.Calls)
			}
		})
	}
}

func TestChartBuildMapsResolutionErrorsToBadRequest(t *testing.T) {
	h, _ := chartHandler()
	h.Geocoder = &geocode.MockGeocoder{
		Err: &domain.GeocodeError{Place: "Atlantis", Reason: "no results"},
	}

	body := `{"place": "Atlantis", "date": "1990-11-03", "time": "23:45"}`
	rec := postJSON(t, h.Build, "/chart", body)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if !strings.Contains(rec.Body.String(), "Atlantis") {
		t.Errorf("error body %q does not name the place", rec.Body.String())
	}
}

func TestChartBuildMapsUpstreamErrorsToBadGateway(t *testing.T) {
	h, _ := chartHandler()
	h.Ephemeris = &ephemeris.MockEphemeris{
		Err: &domain.UpstreamError{Reason: "all candidates failed"},
	}

	body := `{"place": "13.08,80.27", "date": "1990-11-03", "time": "23:45"}`
	rec := postJSON(t, h.Build, "/chart", body)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadGateway)
	}
}

func TestChartBuildRejectsNonPOST(t *testing.T) {
	h, _ := chartHandler()
	req := httptest.NewRequest(http.MethodGet, "/chart", nil)
	rec := httptest.NewRecorder()

	h.Build(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}
