package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gotham/internal/models/request_models"
	"gotham/internal/repositories"
	"gotham/internal/services"
	"gotham/pkg/utils"
)

type AttractionsController struct {
	attractionService services.AttractionServiceInterface
}

func NewAttractionsController(attractionService services.AttractionServiceInterface) *AttractionsController {
	return &AttractionsController{
		attractionService: attractionService,
	}
}

func parsePaging(c *gin.Context) (int, int, bool) {
	pageStr := c.DefaultQuery("page", "1")
	pageSizeStr := c.DefaultQuery("pageSize", "20")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return 0, 0, false
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return 0, 0, false
	}
	return page, pageSize, true
}

// ListAttractions godoc
// @Summary List approved attractions
// @Description Fetch the public catalog, optionally narrowed by category, tag or name search
// @Tags Attractions
// @Produce json
// @Param category query string false "Category name"
// @Param tag query string false "Tag"
// @Param q query string false "Name search"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20) minimum(1) maximum(100)
// @Success 200 {object} utils.APIResponse
// @Router /attractions [get]
func (a *AttractionsController) ListAttractions(c *gin.Context) {
	page, pageSize, ok := parsePaging(c)
	if !ok {
		return
	}

	filter := repositories.AttractionFilter{
		Category: c.Query("category"),
		Tag:      c.Query("tag"),
		Query:    c.Query("q"),
	}

	attractions, err := a.attractionService.ListAttractions(c.Request.Context(), filter, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, attractions, "Attractions fetched successfully")
}

// GetAttractionByID godoc
// @Summary Get one attraction
// @Tags Attractions
// @Produce json
// @Param id path string true "Attraction ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /attractions/{id} [get]
func (a *AttractionsController) GetAttractionByID(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Attraction ID is required")
		return
	}

	attraction, err := a.attractionService.GetAttractionByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, attraction, "Attraction fetched successfully")
}

// CreateAttraction godoc
// @Summary Submit a new attraction
// @Description Creates a pending attraction owned by the caller; an admin must approve it before it shows up in the public catalog
// @Tags Attractions
// @Accept json
// @Produce json
// @Param request body request_models.CreateAttractionRequest true "Attraction payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /attractions [post]
func (a *AttractionsController) CreateAttraction(c *gin.Context) {
	var req request_models.CreateAttractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	attraction, err := a.attractionService.CreateAttraction(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, attraction, "Attraction submitted successfully")
}

// UpdateAttraction godoc
// @Summary Update an attraction
// @Description Allowed for the creator or an admin; status and ownership never change through an edit
// @Tags Attractions
// @Accept json
// @Produce json
// @Param id path string true "Attraction ID"
// @Param request body request_models.UpdateAttractionRequest true "Attraction payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /attractions/{id} [put]
func (a *AttractionsController) UpdateAttraction(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Attraction ID is required")
		return
	}

	var req request_models.UpdateAttractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	attraction, err := a.attractionService.UpdateAttraction(c.Request.Context(), c.GetString("user_id"), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, attraction, "Attraction updated successfully")
}

// DeleteAttraction godoc
// @Summary Delete an attraction
// @Description Admins may delete any attraction; a creator only while theirs is still pending
// @Tags Attractions
// @Produce json
// @Param id path string true "Attraction ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /attractions/{id} [delete]
func (a *AttractionsController) DeleteAttraction(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Attraction ID is required")
		return
	}

	if err := a.attractionService.DeleteAttraction(c.Request.Context(), c.GetString("user_id"), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Attraction deleted successfully")
}

// ApproveAttraction godoc
// @Summary Approve a pending attraction
// @Description Admin only; the transition is one-way
// @Tags Admin
// @Produce json
// @Param id path string true "Attraction ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/attractions/{id}/approve [post]
func (a *AttractionsController) ApproveAttraction(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Attraction ID is required")
		return
	}

	if err := a.attractionService.ApproveAttraction(c.Request.Context(), c.GetString("user_id"), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Attraction approved successfully")
}

// ListPending godoc
// @Summary List pending attractions
// @Tags Admin
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20)
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/attractions/pending [get]
func (a *AttractionsController) ListPending(c *gin.Context) {
	page, pageSize, ok := parsePaging(c)
	if !ok {
		return
	}

	attractions, err := a.attractionService.ListPending(c.Request.Context(), c.GetString("user_id"), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, attractions, "Pending attractions fetched successfully")
}

// ListMine godoc
// @Summary List the caller's submissions
// @Tags Attractions
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /my/attractions [get]
func (a *AttractionsController) ListMine(c *gin.Context) {
	attractions, err := a.attractionService.ListMine(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, attractions, "Submissions fetched successfully")
}
