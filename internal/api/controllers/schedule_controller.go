package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gotham/internal/models/request_models"
	"gotham/internal/schedule"
	"gotham/internal/services"
	"gotham/pkg/utils"
)

type ScheduleController struct {
	scheduleService   *schedule.Service
	attractionService services.AttractionServiceInterface
}

func NewScheduleController(
	scheduleService *schedule.Service,
	attractionService services.AttractionServiceInterface,
) *ScheduleController {
	return &ScheduleController{
		scheduleService:   scheduleService,
		attractionService: attractionService,
	}
}

// GetSchedule godoc
// @Summary Get the working draft
// @Tags Schedule
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /schedule [get]
func (s *ScheduleController) GetSchedule(c *gin.Context) {
	state := s.scheduleService.Get(c.Request.Context(), c.GetString("user_id"))
	utils.RespondSuccess(c, state, "Schedule fetched successfully")
}

// SetDateRange godoc
// @Summary Set the trip date range
// @Description Regenerates the day list from start to end inclusive, discarding prior day assignments. An invalid range clears the day list instead of failing.
// @Tags Schedule
// @Accept json
// @Produce json
// @Param request body request_models.SetDateRangeRequest true "ISO dates"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /schedule/date-range [put]
func (s *ScheduleController) SetDateRange(c *gin.Context) {
	var req request_models.SetDateRangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	state := s.scheduleService.SetDateRange(c.Request.Context(), c.GetString("user_id"), req.StartDate, req.EndDate)
	utils.RespondSuccess(c, state, "Date range updated")
}

// SetActiveDay godoc
// @Summary Point new additions at a day
// @Tags Schedule
// @Accept json
// @Produce json
// @Param request body request_models.SetActiveDayRequest true "Day index"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /schedule/active-day [put]
func (s *ScheduleController) SetActiveDay(c *gin.Context) {
	var req request_models.SetActiveDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	state, err := s.scheduleService.SetActiveDay(c.Request.Context(), c.GetString("user_id"), req.Index)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, state, "Active day updated")
}

// AddItem godoc
// @Summary Add an attraction to the active day
// @Description Adding an id the day already holds is a no-op
// @Tags Schedule
// @Accept json
// @Produce json
// @Param request body request_models.AddScheduleItemRequest true "Attraction ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /schedule/items [post]
func (s *ScheduleController) AddItem(c *gin.Context) {
	var req request_models.AddScheduleItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Attraction ID is required")
		return
	}

	attraction, err := s.attractionService.GetAttractionByID(c.Request.Context(), req.AttractionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	state, err := s.scheduleService.AddToActiveDay(c.Request.Context(), c.GetString("user_id"), schedule.Attraction{
		ID:       attraction.ID.String(),
		Name:     attraction.Name,
		Category: attraction.Category,
		Tags:     attraction.Tags,
	})
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, state, "Attraction added to schedule")
}

// RemoveItem godoc
// @Summary Remove an attraction from a day
// @Tags Schedule
// @Accept json
// @Produce json
// @Param request body request_models.RemoveScheduleItemRequest true "Day index and attraction ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /schedule/items [delete]
func (s *ScheduleController) RemoveItem(c *gin.Context) {
	var req request_models.RemoveScheduleItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Attraction ID is required")
		return
	}

	state, err := s.scheduleService.RemoveFromDay(c.Request.Context(), c.GetString("user_id"), req.DayIndex, req.AttractionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, state, "Attraction removed from schedule")
}

// ResetSchedule godoc
// @Summary Clear the working draft
// @Tags Schedule
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /schedule/reset [post]
func (s *ScheduleController) ResetSchedule(c *gin.Context) {
	state := s.scheduleService.Reset(c.Request.Context(), c.GetString("user_id"))
	utils.RespondSuccess(c, state, "Schedule reset")
}
