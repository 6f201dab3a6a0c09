package response_models

import (
	"gotham/internal/schedule"
)

type SavedTripResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	StartDate       string `json:"start_date"`
	EndDate         string `json:"end_date"`
	CreatedAt       int64  `json:"created_at"`
	AttractionCount int    `json:"attraction_count"`
}

type SaveTripResponse struct {
	TripID string `json:"trip_id"`
}

// TripDetailResponse carries the stored schedule metadata plus the day list
// reconstructed over the full calendar range, items re-enriched from the
// catalog where the ids still resolve.
type TripDetailResponse struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	StartDate string         `json:"start_date"`
	EndDate   string         `json:"end_date"`
	CreatedAt int64          `json:"created_at"`
	Days      []schedule.Day `json:"days"`
}
