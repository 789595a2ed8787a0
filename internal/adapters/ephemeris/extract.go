package ephemeris

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"

	"vedic-chart-service/internal/domain"
)

// Degree fields the service has used across schema versions, in priority
// order.
var degreeFields = []string{
	"PlanetNirayanaLongitude",
	"NirayanaLongitude",
	"Longitude",
	"longitude",
	"TotalDegrees",
}

// Keys whose string value names the planet an object describes.
var planetMarkerKeys = []string{"Name", "PlanetName"}

// allPlanetEnvelope is the documented payload shape: a list of single-key
// objects, each keyed by a planet name.
type allPlanetEnvelope struct {
	Payload struct {
		AllPlanetData []map[string]map[string]any `json:"AllPlanetData"`
	} `json:"Payload"`
}

// ExtractLongitudes recovers per-planet longitudes from a raw ephemeris
// payload of drifting shape. It first reads the documented envelope, then
// falls back to an exhaustive walk of the whole document for any planet
// still missing. Result keys use the domain.PlanetNames spellings whatever
// the payload's casing. Planets it cannot find are simply absent; the
// function itself never fails. A malformed value is "not found", not an
// error.
func ExtractLongitudes(payload []byte) map[string]float64 {
	found := make(map[string]float64)

	var envelope allPlanetEnvelope
	if err := json.Unmarshal(payload, &envelope); err == nil {
		for _, entry := range envelope.Payload.AllPlanetData {
			for key, fields := range entry {
				planet, ok := knownPlanet(key)
				if !ok {
					continue
				}
				if _, done := found[planet]; done {
					continue
				}
				if deg, ok := degreeFromFields(fields); ok {
					found[planet] = deg
				}
			}
		}
	}

	if len(found) < len(domain.PlanetNames) {
		var doc any
		if err := json.Unmarshal(payload, &doc); err == nil {
			walkForLongitudes(doc, found)
		}
	}

	return found
}

func knownPlanet(name string) (string, bool) {
	for _, p := range domain.PlanetNames {
		if strings.EqualFold(name, p) {
			return p, true
		}
	}
	return "", false
}

// degreeFromFields reads the highest-priority recognized degree field
// present in an object's immediate fields.
func degreeFromFields(fields map[string]any) (float64, bool) {
	for _, field := range degreeFields {
		if raw, ok := fields[field]; ok {
			if deg, ok := coerceDegree(raw); ok {
				return deg, true
			}
		}
	}
	return 0, false
}

// walkForLongitudes recurses through every mapping and sequence node,
// recording the first degree value found per planet. Map keys are visited
// in sorted order so "first match wins" is deterministic.
func walkForLongitudes(node any, found map[string]float64) {
	switch n := node.(type) {
	case map[string]any:
		keys := make([]string, 0, len(n))
		for k := range n {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		// Style 1: the key itself names the planet and the degree sits
		// somewhere beneath it.
		for _, k := range keys {
			planet, ok := knownPlanet(k)
			if !ok {
				continue
			}
			if _, done := found[planet]; done {
				continue
			}
			if deg, ok := findDegree(n[k]); ok {
				found[planet] = deg
			}
		}

		// Style 2: a sibling marker field names the planet described by
		// this object.
		for _, marker := range planetMarkerKeys {
			for _, k := range keys {
				if !strings.EqualFold(k, marker) {
					continue
				}
				name, ok := n[k].(string)
				if !ok {
					continue
				}
				planet, ok := knownPlanet(name)
				if !ok {
					continue
				}
				if _, done := found[planet]; done {
					continue
				}
				if deg, ok := degreeFromFields(n); ok {
					found[planet] = deg
				}
			}
		}

		for _, k := range keys {
			walkForLongitudes(n[k], found)
		}

	case []any:
		for _, item := range n {
			walkForLongitudes(item, found)
		}
	}
}

// findDegree searches a subtree for the first recognized degree field.
func findDegree(node any) (float64, bool) {
	switch n := node.(type) {
	case map[string]any:
		if deg, ok := degreeFromFields(n); ok {
			return deg, true
		}
		keys := make([]string, 0, len(n))
		for k := range n {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if deg, ok := findDegree(n[k]); ok {
				return deg, true
			}
		}
	case []any:
		for _, item := range n {
			if deg, ok := findDegree(item); ok {
				return deg, true
			}
		}
	}
	return 0, false
}

// coerceDegree accepts JSON numbers and numeric strings, tolerating
// whitespace and a trailing degree sign. Anything else is "not found".
func coerceDegree(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case string:
		s := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(v), "°"))
		deg, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return deg, true
	}
	return 0, false
}
