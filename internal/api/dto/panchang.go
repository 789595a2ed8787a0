package dto

// Sun and Moon are pointers so a missing field can be told apart from a
// legitimate 0° longitude.
type PanchangRequest struct {
	Sun  *float64 `json:"sun"`
	Moon *float64 `json:"moon"`
}

type ElementResponse struct {
	Index    int     `json:"index"`
	Name     string  `json:"name"`
	Progress float64 `json:"progress"`
}

type TithiResponse struct {
	Index    int     `json:"index"`
	Name     string  `json:"name"`
	Paksha   string  `json:"paksha"`
	Progress float64 `json:"progress"`
}

type NakshatraResponse struct {
	Index    int     `json:"index"`
	Name     string  `json:"name"`
	Pada     int     `json:"pada"`
	Progress float64 `json:"progress"`
}

type PanchangResponse struct {
	Tithi     TithiResponse     `json:"tithi"`
	Nakshatra NakshatraResponse `json:"nakshatra"`
	Yoga      ElementResponse   `json:"yoga"`
	Karana    ElementResponse   `json:"karana"`
}
