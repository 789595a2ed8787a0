package services

import (
	"fmt"
	"strconv"
	"strings"

	"vedic-chart-service/internal/domain"
)

// DefaultRequiredOutputs are the sections an interpretation must cover when
// the caller does not name its own.
var DefaultRequiredOutputs = []string{
	"karmic analysis",
	"psychological dynamics",
	"unconscious projections",
	"transformation cycles",
	"financial patterns",
	"relationship patterns",
}

const defaultInterpretationStyle = "deep psychological and symbolic; avoid generic astrology."

const (
	promptPreamble = "You are a Vedic astrology analyst. Provide a grounded, compassionate interpretation " +
		"with practical guidance. Prioritize the user's questions and focus areas."
	promptClosing = "Return sections that explicitly address the required outputs, then include: " +
		"(1) core themes, (2) strengths, (3) challenges, (4) timing cues, " +
		"(5) suggested practices."
)

// Interpretation pairs the prompt handed to a downstream model with the
// deterministic summary built from the chart itself.
type Interpretation struct {
	Prompt         string
	Interpretation string
}

// BuildPrompt renders a natal chart as sectioned text. Sections for absent
// data are dropped; style and required outputs always appear, falling back
// to the defaults.
func BuildPrompt(chart domain.NatalChartInput) string {
	var sections []string

	if chart.Birth != nil {
		sections = append(sections, fmt.Sprintf(
			"Birth data:\n- date: %s\n- time: %s\n- timezone: %s\n- location: %s",
			orUnknown(chart.Birth.Date),
			orUnknown(chart.Birth.Time),
			orUnknown(chart.Birth.Timezone),
			orUnknown(chart.Birth.Location),
		))
	}

	if chart.Ayanamsa != "" {
		sections = append(sections, "Ayanamsa: "+chart.Ayanamsa)
	}

	if len(chart.Planets) > 0 {
		lines := make([]string, 0, len(chart.Planets))
		for _, p := range chart.Planets {
			lines = append(lines, formatPlanetLine(p))
		}
		sections = append(sections, "Planets:\n"+strings.Join(lines, "\n"))
	}

	if len(chart.Houses) > 0 {
		lines := make([]string, 0, len(chart.Houses))
		for _, h := range chart.Houses {
			lines = append(lines, fmt.Sprintf(
				"- house %d: sign %s, lord %s",
				h.Number, orUnknown(h.Sign), orUnknown(h.Lord),
			))
		}
		sections = append(sections, "Houses:\n"+strings.Join(lines, "\n"))
	}

	if len(chart.Aspects) > 0 {
		lines := make([]string, 0, len(chart.Aspects))
		for _, a := range chart.Aspects {
			kind := a.Type
			if kind == "" {
				kind = "aspect"
			}
			orb := "n/a"
			if a.Orb != nil {
				orb = strconv.FormatFloat(*a.Orb, 'g', -1, 64)
			}
			lines = append(lines, fmt.Sprintf("- %s %s %s (orb %s)", a.Source, kind, a.Target, orb))
		}
		sections = append(sections, "Aspects:\n"+strings.Join(lines, "\n"))
	}

	if len(chart.FocusAreas) > 0 {
		sections = append(sections, "Focus areas:\n"+bulleted(chart.FocusAreas))
	}

	if len(chart.Questions) > 0 {
		sections = append(sections, "Questions:\n"+bulleted(chart.Questions))
	}

	style := chart.InterpretationStyle
	if style == "" {
		style = defaultInterpretationStyle
	}
	required := chart.RequiredOutputs
	if len(required) == 0 {
		required = DefaultRequiredOutputs
	}
	sections = append(sections, "Interpretation style: "+style)
	sections = append(sections, "Required outputs:\n"+bulleted(required))

	if chart.Notes != "" {
		sections = append(sections, "Notes:\n"+chart.Notes)
	}

	return promptPreamble + "\n\n" + strings.Join(sections, "\n\n") + "\n\n" + promptClosing
}

// InterpretChart builds the prompt and a deterministic reading centered on
// the luminaries and the ascendant.
func InterpretChart(chart domain.NatalChartInput) Interpretation {
	prompt := BuildPrompt(chart)

	sun := findPlanet(chart.Planets, "Sun")
	moon := findPlanet(chart.Planets, "Moon")
	asc := findPlanet(chart.Planets, "Asc")
	if asc == nil {
		asc = findPlanet(chart.Planets, "Ascendant")
	}

	lines := []string{
		"Core themes from the natal chart are derived from the luminaries and chart angles.",
	}

	if sun != nil {
		lines = append(lines, placementLine("Sun emphasis: identity and life purpose are colored by", sun))
	}
	if moon != nil {
		lines = append(lines, placementLine("Moon emphasis: emotional needs center on", moon))
	}
	if asc != nil {
		lines = append(lines, placementLine("Ascendant: approach to life is expressed through", asc))
	}

	if len(chart.FocusAreas) > 0 {
		lines = append(lines, "Focus areas noted: "+strings.Join(chart.FocusAreas, ", ")+".")
	}
	if len(chart.Questions) > 0 {
		lines = append(lines, "Questions to address: "+strings.Join(chart.Questions, "; ")+".")
	}

	if len(chart.RequiredOutputs) > 0 || chart.InterpretationStyle != "" {
		lines = append(lines, "This interpretation follows the requested style and outputs.")
	}

	if len(lines) == 1 {
		lines = append(lines, "Add planet positions, houses, and aspects for a richer interpretation.")
	}

	return Interpretation{
		Prompt:         prompt,
		Interpretation: strings.Join(lines, " "),
	}
}

func formatPlanetLine(p domain.PlanetPosition) string {
	parts := []string{p.Name}
	if p.Sign != "" {
		parts = append(parts, "in "+p.Sign)
	}
	if p.House != nil {
		parts = append(parts, fmt.Sprintf("house %d", *p.House))
	}
	if p.Nakshatra != "" {
		parts = append(parts, "nakshatra "+p.Nakshatra)
	}
	if p.Pada != nil {
		parts = append(parts, fmt.Sprintf("pada %d", *p.Pada))
	}
	if p.Longitude != nil {
		parts = append(parts, fmt.Sprintf("%.4f°", *p.Longitude))
	}
	return " - " + strings.Join(parts, ", ")
}

func findPlanet(planets []domain.PlanetPosition, name string) *domain.PlanetPosition {
	for i := range planets {
		if strings.EqualFold(planets[i].Name, name) {
			return &planets[i]
		}
	}
	return nil
}

func placementLine(prefix string, p *domain.PlanetPosition) string {
	sign := p.Sign
	if sign == "" {
		sign = "its sign"
	}
	if p.House != nil {
		return fmt.Sprintf("%s %s in house %d.", prefix, sign, *p.House)
	}
	return prefix + " " + sign + "."
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}

func bulleted(items []string) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, "- "+item)
	}
	return strings.Join(lines, "\n")
}
