package ephemeris

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"vedic-chart-service/internal/domain"
	"vedic-chart-service/internal/platform/obs"
	"vedic-chart-service/internal/ports"
)

const defaultBaseURL = "https://api.vedastro.org"

// Config carries the ephemeris service credentials and endpoint shape.
// AuthHeader and AuthPrefix exist because deployments differ in how the key
// is presented (plain Authorization, x-api-key, with or without a scheme).
type Config struct {
	BaseURL    string
	APIKey     string
	AuthHeader string
	AuthPrefix string
}

// VedAstroClient fetches planetary data from the VedAstro API. The service
// has shipped several URL schemes for the same calculation, so the client
// keeps an ordered list of candidates and takes the first that answers
// sensibly. Each candidate gets exactly one attempt.
type VedAstroClient struct {
	session    *http.Client
	baseURL    string
	apiKey     string
	authHeader string
	authPrefix string
}

func NewVedAstroClient(cfg Config) (*VedAstroClient, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("vedastro api key is empty")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	authHeader := cfg.AuthHeader
	if authHeader == "" {
		authHeader = "Authorization"
	}
	authPrefix := cfg.AuthPrefix
	if authPrefix == "" {
		authPrefix = "Bearer"
	}

	return &VedAstroClient{
		session:    &http.Client{Timeout: 40 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     cfg.APIKey,
		authHeader: authHeader,
		authPrefix: authPrefix,
	}, nil
}

func (c *VedAstroClient) authorize(req *http.Request) {
	value := c.apiKey
	if strings.TrimSpace(c.authPrefix) != "" {
		value = strings.TrimSpace(c.authPrefix + " " + c.apiKey)
	}
	req.Header.Set(c.authHeader, value)
}

// candidateURLs lists the known URL schemes for the all-planet calculation,
// most specific first. The time string's slashes are structural path
// segments of the service's microformat and must not be escaped.
func (c *VedAstroClient) candidateURLs(location, timeOfBirth string) []string {
	loc := url.PathEscape(location)
	return []string{
		fmt.Sprintf("%s/api/Calculate/AllPlanetData/PlanetName/All/Location/%s/Time/%s/Ayanamsa/LAHIRI", c.baseURL, loc, timeOfBirth),
		fmt.Sprintf("%s/api/Calculate/AllPlanetData/PlanetName/All/Location/%s/Time/%s", c.baseURL, loc, timeOfBirth),
		fmt.Sprintf("%s/api/AllPlanetData/PlanetName/All/Location/%s/Time/%s", c.baseURL, loc, timeOfBirth),
	}
}

// PlanetLongitudes fetches the all-planet payload and extracts whatever
// longitudes it carries. An empty or partial map is not an error here; the
// caller knows which planets it cannot do without.
func (c *VedAstroClient) PlanetLongitudes(ctx context.Context, location, timeOfBirth string) (_ map[string]float64, err error) {
	defer obs.Time(ctx, "vedastro.planetLongitudes")(&err)

	body, err := c.fetchAllPlanetData(ctx, location, timeOfBirth)
	if err != nil {
		return nil, err
	}
	return ExtractLongitudes(body), nil
}

func (c *VedAstroClient) fetchAllPlanetData(ctx context.Context, location, timeOfBirth string) ([]byte, error) {
	candidates := c.candidateURLs(location, timeOfBirth)
	failures := make([]string, 0, len(candidates))

	for _, candidate := range candidates {
		body, reason := c.tryCandidate(ctx, candidate)
		if reason == "" {
			return body, nil
		}
		failures = append(failures, fmt.Sprintf("GET %s: %s", candidate, reason))
	}

	return nil, &domain.UpstreamError{
		Reason: "all candidates failed: " + strings.Join(failures, "; "),
	}
}

// tryCandidate performs one attempt against one URL scheme. A non-empty
// reason means the candidate is unusable; variants are not retried.
func (c *VedAstroClient) tryCandidate(ctx context.Context, rawURL string) (body []byte, reason string) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, "build request: " + err.Error()
	}
	c.authorize(req)
	req.Header.Set("Accept", "application/json")

	resp, err := c.session.Do(req)
	if err != nil {
		return nil, "execute request: " + err.Error()
	}
	defer resp.Body.Close()

	body, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, "read response: " + err.Error()
	}

	if resp.StatusCode != http.StatusOK {
		return nil, "unexpected status " + resp.Status
	}
	if !json.Valid(body) {
		return nil, "response is not JSON"
	}

	// The service reports some failures as 200 with a Fail status.
	var probe struct {
		Status string `json:"Status"`
	}
	if err := json.Unmarshal(body, &probe); err == nil && probe.Status == "Fail" {
		return nil, `service status "Fail"`
	}

	return body, ""
}

// Proxy relays one GET to an arbitrary ephemeris endpoint with the client's
// credentials attached. Whatever HTTP answer arrives is handed back as-is;
// only transport failures become errors.
func (c *VedAstroClient) Proxy(ctx context.Context, endpoint string, params map[string]any) (_ ports.ProxyResponse, err error) {
	defer obs.Time(ctx, "vedastro.proxy")(&err)

	rawURL := c.baseURL + "/" + strings.TrimLeft(endpoint, "/")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return ports.ProxyResponse{}, &domain.UpstreamError{Reason: "VedAstro request failed: " + err.Error()}
	}
	c.authorize(req)
	req.Header.Set("Accept", "application/json")

	if len(params) > 0 {
		q := req.URL.Query()
		for key, value := range params {
			q.Set(key, queryValue(value))
		}
		req.URL.RawQuery = q.Encode()
	}

	resp, err := c.session.Do(req)
	if err != nil {
		return ports.ProxyResponse{}, &domain.UpstreamError{Reason: "VedAstro request failed: " + err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return ports.ProxyResponse{}, &domain.UpstreamError{
			Status: resp.StatusCode,
			Reason: "VedAstro request failed: " + err.Error(),
		}
	}

	return ports.ProxyResponse{
		Status:      resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}

// queryValue renders a decoded JSON value as a query parameter.
func queryValue(v any) string {
	switch value := v.(type) {
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	case nil:
		return ""
	default:
		return fmt.Sprint(value)
	}
}
