package dto

type VedAstroRequest struct {
	Endpoint string         `json:"endpoint"`
	Params   map[string]any `json:"params"`
}
