package dto

type ChartRequest struct {
	Place string `json:"place"`
	Date  string `json:"date"`
	Time  string `json:"time"`
}

type TimezoneResponse struct {
	Zone      string `json:"zone"`
	UTCOffset string `json:"utc_offset"`
}

type ChartPlanetResponse struct {
	Name         string  `json:"name"`
	Longitude    float64 `json:"longitude"`
	Sign         string  `json:"sign"`
	DegreeInSign float64 `json:"degree_in_sign"`
	Nakshatra    string  `json:"nakshatra"`
	Pada         int     `json:"pada"`
}

type ChartResponse struct {
	Location    string                `json:"location"`
	Timezone    TimezoneResponse      `json:"timezone"`
	TimeOfBirth string                `json:"time_of_birth"`
	Panchang    PanchangResponse      `json:"panchang"`
	Planets     []ChartPlanetResponse `json:"planets"`
}
