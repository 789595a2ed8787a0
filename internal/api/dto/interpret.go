package dto

type BirthDataRequest struct {
	Date     string `json:"date"`
	Time     string `json:"time"`
	Timezone string `json:"timezone"`
	Location string `json:"location"`
}

type PlanetPositionRequest struct {
	Name      string   `json:"name"`
	Longitude *float64 `json:"longitude"`
	Sign      string   `json:"sign"`
	House     *int     `json:"house"`
	Nakshatra string   `json:"nakshatra"`
	Pada      *int     `json:"pada"`
}

type HousePositionRequest struct {
	Number    int      `json:"number"`
	Sign      string   `json:"sign"`
	Lord      string   `json:"lord"`
	Longitude *float64 `json:"longitude"`
}

type AspectRequest struct {
	Source string   `json:"source"`
	Target string   `json:"target"`
	Type   string   `json:"type"`
	Orb    *float64 `json:"orb"`
}

type InterpretRequest struct {
	Birth               *BirthDataRequest       `json:"birth"`
	Ayanamsa            string                  `json:"ayanamsa"`
	Planets             []PlanetPositionRequest `json:"planets"`
	Houses              []HousePositionRequest  `json:"houses"`
	Aspects             []AspectRequest         `json:"aspects"`
	FocusAreas          []string                `json:"focus_areas"`
	Questions           []string                `json:"questions"`
	InterpretationStyle string                  `json:"interpretation_style"`
	RequiredOutputs     []string                `json:"required_outputs"`
	Notes               string                  `json:"notes"`
}

type InterpretResponse struct {
	Prompt         string `json:"prompt"`
	Interpretation string `json:"interpretation"`
}
