package domain

// PlanetNames is the fixed set of chart bodies, in presentation order.
var PlanetNames = []string{
	"Sun", "Moon", "Mars", "Mercury", "Jupiter",
	"Venus", "Saturn", "Rahu", "Ketu",
}

// BirthData carries the birth moment and place as the caller supplied them,
// after resolution: location in canonical "lat,lon" form, timezone as a
// signed ±HH:MM offset.
type BirthData struct {
	Date     string
	Time     string
	Timezone string
	Location string
}

// PlanetPosition is one planet's placement in a natal chart. Longitude is
// the nirayana longitude in degrees. Fields the source could not provide
// stay nil or empty and are skipped by the interpretation formatter.
type PlanetPosition struct {
	Name      string
	Longitude *float64
	Sign      string
	House     *int
	Nakshatra string
	Pada      *int
}

// HousePosition is one house cusp in a natal chart.
type HousePosition struct {
	Number    int
	Sign      string
	Lord      string
	Longitude *float64
}

// Aspect is an angular relationship between two chart points.
type Aspect struct {
	Source string
	Target string
	Type   string
	Orb    *float64
}

// NatalChartInput is the full chart handed to the interpretation prompt
// builder. Every field is optional; the builder renders only what is set.
type NatalChartInput struct {
	Birth               *BirthData
	Ayanamsa            string
	Planets             []PlanetPosition
	Houses              []HousePosition
	Aspects             []Aspect
	FocusAreas          []string
	Questions           []string
	InterpretationStyle string
	RequiredOutputs     []string
	Notes               string
}
