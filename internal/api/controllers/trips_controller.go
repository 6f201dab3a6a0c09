package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gotham/internal/models/request_models"
	"gotham/internal/models/response_models"
	"gotham/internal/schedule"
	"gotham/internal/services"
	"gotham/pkg/utils"
)

type TripsController struct {
	tripService     services.TripServiceInterface
	scheduleService *schedule.Service
}

func NewTripsController(
	tripService services.TripServiceInterface,
	scheduleService *schedule.Service,
) *TripsController {
	return &TripsController{
		tripService:     tripService,
		scheduleService: scheduleService,
	}
}

// SaveTrip godoc
// @Summary Save a trip
// @Description Persists a named copy of the day plan. Both dates must parse and at least one day must hold an attraction.
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body request_models.SaveTripRequest true "Trip payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips [post]
func (t *TripsController) SaveTrip(c *gin.Context) {
	var req request_models.SaveTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	// Preconditions live here, not in the service: dates must be real and
	// the plan must not be empty.
	if _, err := utils.ParseDate(req.StartDate); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid start date")
		return
	}
	if _, err := utils.ParseDate(req.EndDate); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid end date")
		return
	}
	hasItems := false
	for _, day := range req.Days {
		if len(day.Items) > 0 {
			hasItems = true
			break
		}
	}
	if !hasItems {
		utils.RespondError(c, http.StatusBadRequest, "Add at least one attraction before saving")
		return
	}

	tripID, err := t.tripService.SaveTrip(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.SaveTripResponse{TripID: tripID}, "Trip saved successfully")
}

// ListTrips godoc
// @Summary List the caller's saved trips
// @Description Active trips only, newest first, each with its attraction count
// @Tags Trips
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips [get]
func (t *TripsController) ListTrips(c *gin.Context) {
	trips := t.tripService.LoadUserTrips(c.Request.Context(), c.GetString("user_id"))
	utils.RespondSuccess(c, trips, "Trips fetched successfully")
}

// GetTripDetails godoc
// @Summary Get one saved trip
// @Description Rebuilds the full day list; stored items are re-enriched from the live catalog where their ids still resolve
// @Tags Trips
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId} [get]
func (t *TripsController) GetTripDetails(c *gin.Context) {
	tripID := c.Param("tripId")
	if tripID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	details, err := t.tripService.LoadTripDetails(c.Request.Context(), c.GetString("user_id"), tripID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, details, "Trip details fetched successfully")
}

// RestoreTrip godoc
// @Summary Load a saved trip into the working draft
// @Description Replaces the current schedule draft with the saved trip's day list
// @Tags Trips
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId}/restore [post]
func (t *TripsController) RestoreTrip(c *gin.Context) {
	tripID := c.Param("tripId")
	if tripID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	userID := c.GetString("user_id")
	details, err := t.tripService.LoadTripDetails(c.Request.Context(), userID, tripID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	state := t.scheduleService.Replace(c.Request.Context(), userID, schedule.State{
		StartDate: details.StartDate,
		EndDate:   details.EndDate,
		Days:      details.Days,
	})
	utils.RespondSuccess(c, state, "Trip loaded into schedule")
}

// DeleteTrip godoc
// @Summary Delete a saved trip
// @Description Soft delete: the trip is marked inactive and drops out of listings
// @Tags Trips
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId} [delete]
func (t *TripsController) DeleteTrip(c *gin.Context) {
	tripID := c.Param("tripId")
	if tripID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	if err := t.tripService.DeleteTripByID(c.Request.Context(), c.GetString("user_id"), tripID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Trip deleted successfully")
}
