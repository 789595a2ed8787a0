package ephemeris

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vedic-chart-service/internal/domain"
)

const planetPayload = `{
	"Status": "Pass",
	"Payload": {
		"AllPlanetData": [
			{"Sun": {"PlanetNirayanaLongitude": "280.5"}},
			{"Moon": {"PlanetNirayanaLongitude": "95.25"}}
		]
	}
}`

func TestNewVedAstroClientRequiresKey(t *testing.T) {
	if _, err := NewVedAstroClient(Config{}); err == nil {
		t.Fatal("expected error for empty api key, got nil")
	}
}

func TestPlanetLongitudesFirstCandidate(t *testing.T) {
	var paths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization header = %q, want %q", got, "Bearer test-key")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(planetPayload))
	}))
	defer server.Close()

	c, err := NewVedAstroClient(Config{APIKey: "test-key", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewVedAstroClient: %v", err)
	}

	longs, err := c.PlanetLongitudes(context.Background(), "13.08,80.27", "23:45/03/11/1990/+05:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(paths) != 1 {
		t.Fatalf("made %d requests, want 1", len(paths))
	}
	want := "/api/Calculate/AllPlanetData/PlanetName/All/Location/13.08,80.27/Time/23:45/03/11/1990/+05:30/Ayanamsa/LAHIRI"
	if paths[0] != want {
		t.Errorf("path = %q, want %q", paths[0], want)
	}
	if longs["Sun"] != 280.5 || longs["Moon"] != 95.25 {
		t.Errorf("longitudes = %v, want Sun 280.5 Moon 95.25", longs)
	}
}

func TestPlanetLongitudesFallsBackToNextCandidate(t *testing.T) {
	var paths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		if strings.Contains(r.URL.Path, "Ayanamsa") {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(planetPayload))
	}))
	defer server.Close()

	c, err := NewVedAstroClient(Config{APIKey: "test-key", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewVedAstroClient: %v", err)
	}

	longs, err := c.PlanetLongitudes(context.Background(), "13.08,80.27", "23:45/03/11/1990/+05:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(paths) != 2 {
		t.Fatalf("made %d requests, want 2", len(paths))
	}
	if strings.Contains(paths[1], "Ayanamsa") || !strings.Contains(paths[1], "/api/Calculate/AllPlanetData/") {
		t.Errorf("second candidate path = %q", paths[1])
	}
	if longs["Sun"] != 280.5 {
		t.Errorf("Sun = %v, want 280.5", longs["Sun"])
	}
}

func TestPlanetLongitudesDomainFailExhaustsCandidates(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.Write([]byte(`{"Status":"Fail","Payload":"error details"}`))
	}))
	defer server.Close()

	c, err := NewVedAstroClient(Config{APIKey: "test-key", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewVedAstroClient: %v", err)
	}

	_, err = c.PlanetLongitudes(context.Background(), "13.08,80.27", "23:45/03/11/1990/+05:30")
	var upErr *domain.UpstreamError
	if !errors.As(err, &upErr) {
		t.Fatalf("expected *domain.UpstreamError, got %T (%v)", err, err)
	}
	if attempts != 3 {
		t.Errorf("made %d attempts, want 3 (one per candidate)", attempts)
	}
	if !strings.Contains(upErr.Reason, `service status "Fail"`) {
		t.Errorf("reason %q does not mention the Fail status", upErr.Reason)
	}
}

func TestProxyPassesThroughSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/Calculate/HouseData" {
			t.Errorf("path = %q, want /api/Calculate/HouseData", r.URL.Path)
		}
		if got := r.URL.Query().Get("hour"); got != "5" {
			t.Errorf("hour param = %q, want %q", got, "5")
		}
		if got := r.URL.Query().Get("zone"); got != "Asia/Kolkata" {
			t.Errorf("zone param = %q, want %q", got, "Asia/Kolkata")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":1}`))
	}))
	defer server.Close()

	c, err := NewVedAstroClient(Config{APIKey: "test-key", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewVedAstroClient: %v", err)
	}

	resp, err := c.Proxy(context.Background(), "/api/Calculate/HouseData", map[string]any{
		"hour": float64(5),
		"zone": "Asia/Kolkata",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Status != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.Status)
	}
	if string(resp.Body) != `{"ok":1}` {
		t.Errorf("body = %q, want %q", resp.Body, `{"ok":1}`)
	}
	if resp.ContentType != "application/json" {
		t.Errorf("content type = %q, want application/json", resp.ContentType)
	}
}

func TestProxyPassesThroughUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("no such calculation"))
	}))
	defer server.Close()

	c, err := NewVedAstroClient(Config{APIKey: "test-key", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewVedAstroClient: %v", err)
	}

	resp, err := c.Proxy(context.Background(), "api/Calculate/Nope", nil)
	if err != nil {
		t.Fatalf("upstream HTTP errors should pass through, got error: %v", err)
	}
	if resp.Status != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.Status)
	}
	if string(resp.Body) != "no such calculation" {
		t.Errorf("body = %q", resp.Body)
	}
}

func TestProxyTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	c, err := NewVedAstroClient(Config{APIKey: "test-key", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewVedAstroClient: %v", err)
	}

	_, err = c.Proxy(context.Background(), "api/Calculate/HouseData", nil)
	var upErr *domain.UpstreamError
	if !errors.As(err, &upErr) {
		t.Fatalf("expected *domain.UpstreamError, got %T (%v)", err, err)
	}
	if !strings.Contains(upErr.Reason, "VedAstro request failed") {
		t.Errorf("reason %q does not carry the transport failure message", upErr.Reason)
	}
}

func TestAuthorizeHeaderShapes(t *testing.T) {
	cases := []struct {
		name       string
		cfg        Config
		wantHeader string
		wantValue  string
	}{
		{
			name:       "defaults",
			cfg:        Config{APIKey: "k"},
			wantHeader: "Authorization",
			wantValue:  "Bearer k",
		},
		{
			name:       "custom header no prefix",
			cfg:        Config{APIKey: "k", AuthHeader: "x-api-key", AuthPrefix: " "},
			wantHeader: "x-api-key",
			wantValue:  "k",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = r.Header.Get(tc.wantHeader)
				w.Write([]byte(`{}`))
			}))
			defer server.Close()

			tc.cfg.BaseURL = server.URL
			c, err := NewVedAstroClient(tc.cfg)
			if err != nil {
				t.Fatalf("NewVedAstroClient: %v", err)
			}
			if _, err := c.Proxy(context.Background(), "anything", nil); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.wantValue {
				t.Errorf("%s = %q, want %q", tc.wantHeader, got, tc.wantValue)
			}
		})
	}
}
