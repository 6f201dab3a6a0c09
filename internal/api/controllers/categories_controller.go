package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gotham/internal/services"
	"gotham/pkg/utils"
)

type CategoriesController struct {
	categoryService services.CategoryServiceInterface
}

func NewCategoriesController(categoryService services.CategoryServiceInterface) *CategoriesController {
	return &CategoriesController{
		categoryService: categoryService,
	}
}

// ListCategories godoc
// @Summary List categories
// @Tags Categories
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /categories [get]
func (cc *CategoriesController) ListCategories(c *gin.Context) {
	categories, err := cc.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, categories, "Categories fetched successfully")
}

// CreateCategory godoc
// @Summary Add a category
// @Description Categories are append-only; there is no rename or delete
// @Tags Categories
// @Accept json
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /categories [post]
func (cc *CategoriesController) CreateCategory(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Category name is required")
		return
	}

	if err := cc.categoryService.CreateCategory(c.Request.Context(), req.Name); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Category created successfully")
}
