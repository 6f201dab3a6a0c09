package request_models

type ResourceLinkRequest struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

type CreateAttractionRequest struct {
	Name            string                `json:"name" binding:"required"`
	Category        string                `json:"category" binding:"required"`
	Tags            []string              `json:"tags"`
	PriceRange      string                `json:"price_range"`
	Duration        string                `json:"duration"`
	Location        string                `json:"location"`
	VenueSize       string                `json:"venue_size"`
	WalkingDistance string                `json:"walking_distance"`
	Notes           string                `json:"notes"`
	Resources       []ResourceLinkRequest `json:"resources"`
	Nearby          []string              `json:"nearby_attractions"`
	Todos           []string              `json:"todos"`
}

type UpdateAttractionRequest struct {
	CreateAttractionRequest
}
