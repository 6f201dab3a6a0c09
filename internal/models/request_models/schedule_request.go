package request_models

type SetDateRangeRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type SetActiveDayRequest struct {
	Index int `json:"index"`
}

type AddScheduleItemRequest struct {
	AttractionID string `json:"attraction_id" binding:"required"`
}

type RemoveScheduleItemRequest struct {
	DayIndex     int    `json:"day_index"`
	AttractionID string `json:"attraction_id" binding:"required"`
}
