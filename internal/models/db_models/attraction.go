package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

const (
	AttractionStatusPending  = "pending"
	AttractionStatusApproved = "approved"
)

// ResourceLink is a labeled external link attached to an attraction.
// Both fields must be set together; validation happens before any write.
type ResourceLink struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

type Attraction struct {
	BaseModel
	Name            string         `gorm:"not null" json:"name"`
	Category        string         `gorm:"index" json:"category"`
	Tags            pq.StringArray `gorm:"type:text[]" json:"tags"`
	PriceRange      string         `json:"price_range,omitempty"`
	Duration        string         `json:"duration,omitempty"`
	Location        string         `json:"location,omitempty"`
	VenueSize       string         `json:"venue_size,omitempty"`
	WalkingDistance string         `json:"walking_distance,omitempty"`
	Notes           string         `json:"notes,omitempty"`
	Resources       []ResourceLink `gorm:"serializer:json" json:"resources,omitempty"`
	Nearby          pq.StringArray `gorm:"type:text[];column:nearby_attractions" json:"nearby_attractions,omitempty"`
	Todos           pq.StringArray `gorm:"type:text[]" json:"todos,omitempty"`

	Status    string    `gorm:"index;default:pending" json:"status"`
	CreatedBy uuid.UUID `gorm:"type:uuid;index" json:"created_by"`
}

func (Attraction) TableName() string { return "attractions" }
