package request_models

type SaveTripItemRequest struct {
	ID   string `json:"id" binding:"required"`
	Name string `json:"name"`
}

type SaveTripDayRequest struct {
	Date  string                `json:"date" binding:"required"`
	Items []SaveTripItemRequest `json:"items"`
}

type SaveTripRequest struct {
	Name      string               `json:"name"`
	StartDate string               `json:"start_date" binding:"required"`
	EndDate   string               `json:"end_date" binding:"required"`
	Days      []SaveTripDayRequest `json:"days" binding:"required"`
}
